package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"menagerie/internal/config"
	"menagerie/internal/handler"
	"menagerie/internal/middleware"
	"menagerie/internal/model"
	"menagerie/internal/router"
	"menagerie/internal/service"
	"menagerie/internal/token"
)

// In-memory stores standing in for the Postgres repositories.

type memUserStore struct {
	accounts map[string]model.Account
}

func (m *memUserStore) Create(_ context.Context, account model.Account) error {
	if _, exists := m.accounts[account.Username]; exists {
		return model.ErrDuplicateAccount
	}
	m.accounts[account.Username] = account
	return nil
}

func (m *memUserStore) FindByUsername(_ context.Context, username string) (model.Account, error) {
	account, exists := m.accounts[username]
	if !exists {
		return model.Account{}, model.ErrAccountNotFound
	}
	return account, nil
}

type memFoxStore struct {
	foxes  map[int64]model.Fox
	links  []model.FoxDogLink
	nextID int64
	dogs   *memDogStore
}

func (m *memFoxStore) List(context.Context) ([]model.Fox, error) {
	out := make([]model.Fox, 0, len(m.foxes))
	for _, fox := range m.foxes {
		out = append(out, fox)
	}
	return out, nil
}

func (m *memFoxStore) FindByID(_ context.Context, id int64) (model.Fox, error) {
	fox, ok := m.foxes[id]
	if !ok {
		return model.Fox{}, model.ErrFoxNotFound
	}
	return fox, nil
}

func (m *memFoxStore) Create(_ context.Context, fox model.Fox) (model.Fox, error) {
	fox.ID = m.nextID
	m.nextID++
	m.foxes[fox.ID] = fox
	return fox, nil
}

func (m *memFoxStore) JumpedOver(_ context.Context, foxID int64) ([]model.Dog, error) {
	dogs := make([]model.Dog, 0)
	for _, link := range m.links {
		if link.FoxID == foxID {
			dogs = append(dogs, m.dogs.dogs[link.DogID])
		}
	}
	return dogs, nil
}

func (m *memFoxStore) Link(_ context.Context, link model.FoxDogLink) error {
	m.links = append(m.links, link)
	return nil
}

type memDogStore struct {
	dogs   map[int64]model.Dog
	nextID int64
}

func (m *memDogStore) List(context.Context) ([]model.Dog, error) {
	out := make([]model.Dog, 0, len(m.dogs))
	for _, dog := range m.dogs {
		out = append(out, dog)
	}
	return out, nil
}

func (m *memDogStore) FindByID(_ context.Context, id int64) (model.Dog, error) {
	dog, ok := m.dogs[id]
	if !ok {
		return model.Dog{}, model.ErrDogNotFound
	}
	return dog, nil
}

func (m *memDogStore) Create(_ context.Context, dog model.Dog) (model.Dog, error) {
	dog.ID = m.nextID
	m.nextID++
	m.dogs[dog.ID] = dog
	return dog, nil
}

type memExampleStore struct {
	examples map[uuid.UUID]model.Example
}

func (m *memExampleStore) List(context.Context) ([]model.Example, error) {
	out := make([]model.Example, 0, len(m.examples))
	for _, example := range m.examples {
		out = append(out, example)
	}
	return out, nil
}

func (m *memExampleStore) FindByUUID(_ context.Context, id uuid.UUID) (model.Example, error) {
	example, ok := m.examples[id]
	if !ok {
		return model.Example{}, model.ErrExampleNotFound
	}
	return example, nil
}

func (m *memExampleStore) Create(_ context.Context, example model.Example) error {
	m.examples[example.UUID] = example
	return nil
}

type testEnv struct {
	server *httptest.Server
	users  *memUserStore
}

func newTestEnv(t *testing.T, ttl time.Duration) *testEnv {
	t.Helper()

	codec, err := token.NewCodec("test-secret", "HS256")
	require.NoError(t, err)

	users := &memUserStore{accounts: map[string]model.Account{}}
	dogs := &memDogStore{dogs: map[int64]model.Dog{}, nextID: 1}
	foxes := &memFoxStore{foxes: map[int64]model.Fox{}, nextID: 1, dogs: dogs}
	examples := &memExampleStore{examples: map[uuid.UUID]model.Example{}}

	authService := service.NewAuthService(users, codec, ttl)
	authMiddleware := middleware.NewAuthMiddleware(authService)
	authHandler := handler.NewAuthHandler(authService)
	animalHandler := handler.NewAnimalHandler(service.NewAnimalService(foxes, dogs))
	exampleHandler := handler.NewExampleHandler(service.NewExampleService(examples))

	cfg := &config.Config{
		ServerPort:       "8080",
		RequestTimeout:   30 * time.Second,
		JWTSecret:        "test-secret",
		JWTAlgorithm:     "HS256",
		JWTTTL:           ttl,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     10000,
		AuthRateLimitRPM: 10000,
	}

	server := httptest.NewServer(router.New(cfg, nil, authMiddleware, authHandler, animalHandler, exampleHandler))
	t.Cleanup(server.Close)

	return &testEnv{server: server, users: users}
}

func doRequest(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}
