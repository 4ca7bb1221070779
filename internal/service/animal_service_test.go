package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"menagerie/internal/model"
)

type fakeFoxStore struct {
	foxes  map[int64]model.Fox
	links  []model.FoxDogLink
	nextID int64
	dogs   *fakeDogStore
}

func newFakeFoxStore(dogs *fakeDogStore) *fakeFoxStore {
	return &fakeFoxStore{foxes: map[int64]model.Fox{}, nextID: 1, dogs: dogs}
}

func (f *fakeFoxStore) List(context.Context) ([]model.Fox, error) {
	out := make([]model.Fox, 0, len(f.foxes))
	for _, fox := range f.foxes {
		out = append(out, fox)
	}
	return out, nil
}

func (f *fakeFoxStore) FindByID(_ context.Context, id int64) (model.Fox, error) {
	fox, ok := f.foxes[id]
	if !ok {
		return model.Fox{}, model.ErrFoxNotFound
	}
	return fox, nil
}

func (f *fakeFoxStore) Create(_ context.Context, fox model.Fox) (model.Fox, error) {
	fox.ID = f.nextID
	f.nextID++
	f.foxes[fox.ID] = fox
	return fox, nil
}

func (f *fakeFoxStore) JumpedOver(_ context.Context, foxID int64) ([]model.Dog, error) {
	dogs := make([]model.Dog, 0)
	for _, link := range f.links {
		if link.FoxID == foxID {
			dogs = append(dogs, f.dogs.dogs[link.DogID])
		}
	}
	return dogs, nil
}

func (f *fakeFoxStore) Link(_ context.Context, link model.FoxDogLink) error {
	f.links = append(f.links, link)
	return nil
}

type fakeDogStore struct {
	dogs   map[int64]model.Dog
	nextID int64
}

func newFakeDogStore() *fakeDogStore {
	return &fakeDogStore{dogs: map[int64]model.Dog{}, nextID: 1}
}

func (f *fakeDogStore) List(context.Context) ([]model.Dog, error) {
	out := make([]model.Dog, 0, len(f.dogs))
	for _, dog := range f.dogs {
		out = append(out, dog)
	}
	return out, nil
}

func (f *fakeDogStore) FindByID(_ context.Context, id int64) (model.Dog, error) {
	dog, ok := f.dogs[id]
	if !ok {
		return model.Dog{}, model.ErrDogNotFound
	}
	return dog, nil
}

func (f *fakeDogStore) Create(_ context.Context, dog model.Dog) (model.Dog, error) {
	dog.ID = f.nextID
	f.nextID++
	f.dogs[dog.ID] = dog
	return dog, nil
}

func newTestAnimalService() (*AnimalService, *fakeFoxStore, *fakeDogStore) {
	dogs := newFakeDogStore()
	foxes := newFakeFoxStore(dogs)
	return NewAnimalService(foxes, dogs), foxes, dogs
}

func TestCreateFox(t *testing.T) {
	svc, _, _ := newTestAnimalService()
	ctx := context.Background()

	t.Run("keeps an explicit trait and color", func(t *testing.T) {
		fox, err := svc.CreateFox(ctx, model.CreateAnimalRequest{
			Name: "juniper", Age: 3, Trait: model.TraitSneaky, Color: model.ColorRed,
		})
		require.NoError(t, err)
		require.NotZero(t, fox.ID)
		require.Equal(t, model.TraitSneaky, fox.Trait)
		require.Equal(t, model.ColorRed, fox.Color)
	})

	t.Run("rolls random flavor when omitted", func(t *testing.T) {
		fox, err := svc.CreateFox(ctx, model.CreateAnimalRequest{Name: "ember", Age: 1})
		require.NoError(t, err)
		require.True(t, fox.Trait.Valid())
		require.True(t, fox.Color.Valid())
	})

	t.Run("rejects an unknown trait", func(t *testing.T) {
		_, err := svc.CreateFox(ctx, model.CreateAnimalRequest{
			Name: "ember", Age: 1, Trait: "invisible",
		})
		require.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		_, err := svc.CreateFox(ctx, model.CreateAnimalRequest{Name: "  ", Age: 1})
		require.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("rejects a negative age", func(t *testing.T) {
		_, err := svc.CreateFox(ctx, model.CreateAnimalRequest{Name: "ember", Age: -1})
		require.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestLinkFoxDog(t *testing.T) {
	svc, foxes, _ := newTestAnimalService()
	ctx := context.Background()

	fox, err := svc.CreateFox(ctx, model.CreateAnimalRequest{Name: "juniper", Age: 3})
	require.NoError(t, err)
	dog, err := svc.CreateDog(ctx, model.CreateAnimalRequest{Name: "rex", Age: 5})
	require.NoError(t, err)

	t.Run("links existing animals", func(t *testing.T) {
		err := svc.LinkFoxDog(ctx, model.FoxDogLink{FoxID: fox.ID, DogID: dog.ID})
		require.NoError(t, err)
		require.Len(t, foxes.links, 1)

		jumped, err := svc.FoxJumpedOver(ctx, fox.ID)
		require.NoError(t, err)
		require.Len(t, jumped, 1)
		require.Equal(t, "rex", jumped[0].Name)
	})

	t.Run("reports a missing fox", func(t *testing.T) {
		err := svc.LinkFoxDog(ctx, model.FoxDogLink{FoxID: 99, DogID: dog.ID})
		require.ErrorIs(t, err, model.ErrFoxNotFound)
	})

	t.Run("reports a missing dog", func(t *testing.T) {
		err := svc.LinkFoxDog(ctx, model.FoxDogLink{FoxID: fox.ID, DogID: 99})
		require.ErrorIs(t, err, model.ErrDogNotFound)
	})
}

func TestFoxJumpedOverUnknownFox(t *testing.T) {
	svc, _, _ := newTestAnimalService()

	_, err := svc.FoxJumpedOver(context.Background(), 42)
	require.ErrorIs(t, err, model.ErrFoxNotFound)
}
