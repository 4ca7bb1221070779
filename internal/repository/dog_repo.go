package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"menagerie/internal/model"
)

type DogRepository struct {
	db Querier
}

func NewDogRepository(db Querier) *DogRepository {
	return &DogRepository{db: db}
}

func (r *DogRepository) List(ctx context.Context) ([]model.Dog, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, age, trait, color FROM dogs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	defer rows.Close()

	dogs := make([]model.Dog, 0)
	for rows.Next() {
		var dog model.Dog
		if err := rows.Scan(&dog.ID, &dog.Name, &dog.Age, &dog.Trait, &dog.Color); err != nil {
			return nil, fmt.Errorf("scan dog: %w", err)
		}
		dogs = append(dogs, dog)
	}

	return dogs, rows.Err()
}

func (r *DogRepository) FindByID(ctx context.Context, id int64) (model.Dog, error) {
	var dog model.Dog
	err := r.db.QueryRow(ctx,
		`SELECT id, name, age, trait, color FROM dogs WHERE id = $1`, id).
		Scan(&dog.ID, &dog.Name, &dog.Age, &dog.Trait, &dog.Color)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Dog{}, model.ErrDogNotFound
	}
	if err != nil {
		return model.Dog{}, fmt.Errorf("find dog by id: %w", err)
	}

	return dog, nil
}

func (r *DogRepository) Create(ctx context.Context, dog model.Dog) (model.Dog, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO dogs (name, age, trait, color)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		dog.Name, dog.Age, dog.Trait, dog.Color).Scan(&dog.ID)
	if err != nil {
		return model.Dog{}, fmt.Errorf("create dog: %w", err)
	}

	return dog, nil
}
