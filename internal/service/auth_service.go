package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"menagerie/internal/model"
	"menagerie/internal/token"
)

const bcryptCost = 12

// UserStore is the credential store contract the authenticator needs.
type UserStore interface {
	Create(ctx context.Context, account model.Account) error
	FindByUsername(ctx context.Context, username string) (model.Account, error)
}

// AuthService verifies credentials and mints access tokens. The token
// codec owns the signing secret; the service owns the TTL policy.
type AuthService struct {
	users UserStore
	codec *token.Codec
	ttl   time.Duration
}

func NewAuthService(users UserStore, codec *token.Codec, ttl time.Duration) *AuthService {
	return &AuthService{users: users, codec: codec, ttl: ttl}
}

// Register hashes the password and persists a new account. Duplicate
// usernames surface as model.ErrDuplicateAccount from the store's
// uniqueness constraint; there is no pre-check.
func (s *AuthService) Register(ctx context.Context, username string, password string) (model.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return model.Account{}, model.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.Account{}, fmt.Errorf("hash password: %w", err)
	}

	salt, err := bcryptSalt(string(hash))
	if err != nil {
		return model.Account{}, err
	}

	account := model.Account{
		Username:     username,
		PasswordHash: string(hash),
		Salt:         salt,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, account); err != nil {
		return model.Account{}, err
	}

	return account, nil
}

// Login checks the submitted pair against the stored hash and issues a
// token whose subject is the username. An unknown username and a wrong
// password stay distinct error kinds here; the handler collapses both
// into one 401 so responses do not reveal which usernames exist.
func (s *AuthService) Login(ctx context.Context, username string, password string) (string, error) {
	account, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", model.ErrBadCredentials
	}

	signed, err := s.codec.Encode(token.Claims{
		Subject:   account.Username,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return signed, nil
}

// ValidateToken decodes a bearer token into its claims. Used by the auth
// middleware; all failures are model.ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (token.Claims, error) {
	return s.codec.Decode(tokenString)
}

// CurrentUser loads the account a verified claim refers to. The account
// may have been deleted after the token was issued; that surfaces as
// model.ErrAccountNotFound and is bounded by the token TTL.
func (s *AuthService) CurrentUser(ctx context.Context, subject string) (model.Account, error) {
	return s.users.FindByUsername(ctx, subject)
}

// bcryptSalt extracts the 22-character salt segment from a bcrypt hash
// ($<version>$<cost>$<22 salt chars><31 hash chars>). The hash embeds the
// salt, so the separate column exists for schema compatibility only.
func bcryptSalt(hash string) (string, error) {
	parts := strings.SplitN(hash, "$", 4)
	if len(parts) != 4 || len(parts[3]) < 22 {
		return "", fmt.Errorf("malformed bcrypt hash")
	}

	return parts[3][:22], nil
}
