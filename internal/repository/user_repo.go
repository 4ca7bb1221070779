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

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the account and relies on the primary key constraint to
// surface duplicates, closing the check-then-insert race.
func (r *UserRepository) Create(ctx context.Context, account model.Account) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (username, password_hash, salt, created_at)
		 VALUES ($1, $2, $3, $4)`,
		account.Username, account.PasswordHash, account.Salt, account.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return model.ErrDuplicateAccount
	}
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.Account, error) {
	var account model.Account
	err := r.db.QueryRow(ctx,
		`SELECT username, password_hash, salt, created_at
		 FROM users WHERE username = $1`, username).
		Scan(&account.Username, &account.PasswordHash, &account.Salt, &account.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find account by username: %w", err)
	}

	return account, nil
}
