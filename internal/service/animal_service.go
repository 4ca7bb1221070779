package service

import (
	"context"
	"math/rand/v2"
	"strings"

	"menagerie/internal/model"
)

type FoxStore interface {
	List(ctx context.Context) ([]model.Fox, error)
	FindByID(ctx context.Context, id int64) (model.Fox, error)
	Create(ctx context.Context, fox model.Fox) (model.Fox, error)
	JumpedOver(ctx context.Context, foxID int64) ([]model.Dog, error)
	Link(ctx context.Context, link model.FoxDogLink) error
}

type DogStore interface {
	List(ctx context.Context) ([]model.Dog, error)
	FindByID(ctx context.Context, id int64) (model.Dog, error)
	Create(ctx context.Context, dog model.Dog) (model.Dog, error)
}

// AnimalService handles the fox and dog collections and the jumped-over
// links between them.
type AnimalService struct {
	foxes FoxStore
	dogs  DogStore
}

func NewAnimalService(foxes FoxStore, dogs DogStore) *AnimalService {
	return &AnimalService{foxes: foxes, dogs: dogs}
}

func (s *AnimalService) ListFoxes(ctx context.Context) ([]model.Fox, error) {
	return s.foxes.List(ctx)
}

func (s *AnimalService) GetFox(ctx context.Context, id int64) (model.Fox, error) {
	return s.foxes.FindByID(ctx, id)
}

func (s *AnimalService) CreateFox(ctx context.Context, req model.CreateAnimalRequest) (model.Fox, error) {
	trait, color, err := resolveFlavor(req)
	if err != nil {
		return model.Fox{}, err
	}

	return s.foxes.Create(ctx, model.Fox{
		Name:  strings.TrimSpace(req.Name),
		Age:   req.Age,
		Trait: trait,
		Color: color,
	})
}

func (s *AnimalService) FoxJumpedOver(ctx context.Context, foxID int64) ([]model.Dog, error) {
	if _, err := s.foxes.FindByID(ctx, foxID); err != nil {
		return nil, err
	}

	return s.foxes.JumpedOver(ctx, foxID)
}

func (s *AnimalService) ListDogs(ctx context.Context) ([]model.Dog, error) {
	return s.dogs.List(ctx)
}

func (s *AnimalService) GetDog(ctx context.Context, id int64) (model.Dog, error) {
	return s.dogs.FindByID(ctx, id)
}

func (s *AnimalService) CreateDog(ctx context.Context, req model.CreateAnimalRequest) (model.Dog, error) {
	trait, color, err := resolveFlavor(req)
	if err != nil {
		return model.Dog{}, err
	}

	return s.dogs.Create(ctx, model.Dog{
		Name:  strings.TrimSpace(req.Name),
		Age:   req.Age,
		Trait: trait,
		Color: color,
	})
}

// LinkFoxDog records that a fox jumped over a dog. Both endpoints are
// checked first so a missing fox and a missing dog report distinctly.
func (s *AnimalService) LinkFoxDog(ctx context.Context, link model.FoxDogLink) error {
	if _, err := s.foxes.FindByID(ctx, link.FoxID); err != nil {
		return err
	}
	if _, err := s.dogs.FindByID(ctx, link.DogID); err != nil {
		return err
	}

	return s.foxes.Link(ctx, link)
}

// resolveFlavor validates the optional trait/color pair and rolls random
// values for whichever is omitted.
func resolveFlavor(req model.CreateAnimalRequest) (model.Trait, model.Color, error) {
	if strings.TrimSpace(req.Name) == "" || req.Age < 0 {
		return "", "", model.ErrInvalidInput
	}

	trait := req.Trait
	if trait == "" {
		trait = model.Traits[rand.IntN(len(model.Traits))]
	} else if !trait.Valid() {
		return "", "", model.ErrInvalidInput
	}

	color := req.Color
	if color == "" {
		color = model.Colors[rand.IntN(len(model.Colors))]
	} else if !color.Valid() {
		return "", "", model.ErrInvalidInput
	}

	return trait, color, nil
}
