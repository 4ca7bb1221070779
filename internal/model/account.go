package model

import "time"

// Account is the persisted credential record. The username is the primary
// key and immutable once created.
type Account struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccountView is the client-facing projection of an Account. Hashes and
// salts never leave the server.
type AccountView struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func (a Account) View() AccountView {
	return AccountView{Username: a.Username, CreatedAt: a.CreatedAt}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
