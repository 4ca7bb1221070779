package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"menagerie/internal/model"
)

type FoxRepository struct {
	db Querier
}

func NewFoxRepository(db Querier) *FoxRepository {
	return &FoxRepository{db: db}
}

func (r *FoxRepository) List(ctx context.Context) ([]model.Fox, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, age, trait, color FROM foxes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list foxes: %w", err)
	}
	defer rows.Close()

	foxes := make([]model.Fox, 0)
	for rows.Next() {
		var fox model.Fox
		if err := rows.Scan(&fox.ID, &fox.Name, &fox.Age, &fox.Trait, &fox.Color); err != nil {
			return nil, fmt.Errorf("scan fox: %w", err)
		}
		foxes = append(foxes, fox)
	}

	return foxes, rows.Err()
}

func (r *FoxRepository) FindByID(ctx context.Context, id int64) (model.Fox, error) {
	var fox model.Fox
	err := r.db.QueryRow(ctx,
		`SELECT id, name, age, trait, color FROM foxes WHERE id = $1`, id).
		Scan(&fox.ID, &fox.Name, &fox.Age, &fox.Trait, &fox.Color)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Fox{}, model.ErrFoxNotFound
	}
	if err != nil {
		return model.Fox{}, fmt.Errorf("find fox by id: %w", err)
	}

	return fox, nil
}

func (r *FoxRepository) Create(ctx context.Context, fox model.Fox) (model.Fox, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO foxes (name, age, trait, color)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		fox.Name, fox.Age, fox.Trait, fox.Color).Scan(&fox.ID)
	if err != nil {
		return model.Fox{}, fmt.Errorf("create fox: %w", err)
	}

	return fox, nil
}

// JumpedOver returns the dogs the fox has jumped over.
func (r *FoxRepository) JumpedOver(ctx context.Context, foxID int64) ([]model.Dog, error) {
	rows, err := r.db.Query(ctx,
		`SELECT d.id, d.name, d.age, d.trait, d.color
		 FROM dogs d
		 JOIN fox_dog_links l ON l.dog_id = d.id
		 WHERE l.fox_id = $1
		 ORDER BY d.id`, foxID)
	if err != nil {
		return nil, fmt.Errorf("list jumped-over dogs: %w", err)
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

// Link records that the fox jumped over the dog. Foreign key violations
// mean one endpoint vanished between the existence check and the insert;
// a duplicate link is accepted as already recorded.
func (r *FoxRepository) Link(ctx context.Context, link model.FoxDogLink) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO fox_dog_links (fox_id, dog_id) VALUES ($1, $2)`,
		link.FoxID, link.DogID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return nil
		case pgerrcode.ForeignKeyViolation:
			return model.ErrInvalidInput
		}
	}
	if err != nil {
		return fmt.Errorf("link fox to dog: %w", err)
	}

	return nil
}
