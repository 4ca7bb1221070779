package service

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"menagerie/internal/model"
)

type ExampleStore interface {
	List(ctx context.Context) ([]model.Example, error)
	FindByUUID(ctx context.Context, id uuid.UUID) (model.Example, error)
	Create(ctx context.Context, example model.Example) error
}

type ExampleService struct {
	examples ExampleStore
}

func NewExampleService(examples ExampleStore) *ExampleService {
	return &ExampleService{examples: examples}
}

func (s *ExampleService) List(ctx context.Context) ([]model.Example, error) {
	return s.examples.List(ctx)
}

func (s *ExampleService) Get(ctx context.Context, id uuid.UUID) (model.Example, error) {
	return s.examples.FindByUUID(ctx, id)
}

// Create fills every omitted field with a generated default, mirroring
// the column defaults of the original schema.
func (s *ExampleService) Create(ctx context.Context, req model.CreateExampleRequest) (model.Example, error) {
	if strings.TrimSpace(req.String) == "" {
		return model.Example{}, model.ErrInvalidInput
	}

	now := time.Now().UTC()
	example := model.Example{
		UUID:      uuid.New(),
		Float:     rand.Float64(),
		String:    req.String,
		Timestamp: now,
		Date:      now.Truncate(24 * time.Hour),
		Elapsed:   time.Duration(rand.Int64N(int64(24 * time.Hour))),
	}

	if req.Integer != nil {
		example.Integer = *req.Integer
	}
	if req.Float != nil {
		example.Float = *req.Float
	}
	if req.Timestamp != nil {
		example.Timestamp = req.Timestamp.UTC()
	}
	if req.Date != nil {
		example.Date = req.Date.UTC().Truncate(24 * time.Hour)
	}
	if req.Elapsed != nil {
		example.Elapsed = *req.Elapsed
	}

	if err := s.examples.Create(ctx, example); err != nil {
		return model.Example{}, err
	}

	return example, nil
}
