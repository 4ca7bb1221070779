package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"menagerie/internal/model"
)

type ExampleRepository struct {
	db Querier
}

func NewExampleRepository(db Querier) *ExampleRepository {
	return &ExampleRepository{db: db}
}

func (r *ExampleRepository) List(ctx context.Context) ([]model.Example, error) {
	rows, err := r.db.Query(ctx,
		`SELECT uuid, integer, float, string, timestamp, date, elapsed_ns
		 FROM examples ORDER BY timestamp`)
	if err != nil {
		return nil, fmt.Errorf("list examples: %w", err)
	}
	defer rows.Close()

	examples := make([]model.Example, 0)
	for rows.Next() {
		example, err := scanExample(rows)
		if err != nil {
			return nil, fmt.Errorf("scan example: %w", err)
		}
		examples = append(examples, example)
	}

	return examples, rows.Err()
}

func (r *ExampleRepository) FindByUUID(ctx context.Context, id uuid.UUID) (model.Example, error) {
	row := r.db.QueryRow(ctx,
		`SELECT uuid, integer, float, string, timestamp, date, elapsed_ns
		 FROM examples WHERE uuid = $1`, id)

	example, err := scanExample(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Example{}, model.ErrExampleNotFound
	}
	if err != nil {
		return model.Example{}, fmt.Errorf("find example by uuid: %w", err)
	}

	return example, nil
}

func (r *ExampleRepository) Create(ctx context.Context, example model.Example) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO examples (uuid, integer, float, string, timestamp, date, elapsed_ns)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		example.UUID, example.Integer, example.Float, example.String,
		example.Timestamp, example.Date, example.Elapsed.Nanoseconds())
	if err != nil {
		return fmt.Errorf("create example: %w", err)
	}

	return nil
}

func scanExample(row pgx.Row) (model.Example, error) {
	var (
		example   model.Example
		elapsedNS int64
	)
	err := row.Scan(&example.UUID, &example.Integer, &example.Float,
		&example.String, &example.Timestamp, &example.Date, &elapsedNS)
	if err != nil {
		return model.Example{}, err
	}

	example.Elapsed = time.Duration(elapsedNS)
	return example, nil
}
