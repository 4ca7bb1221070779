package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"menagerie/internal/middleware"
	"menagerie/internal/model"
	"menagerie/internal/service"
	"menagerie/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Token handles POST /api/token. Credentials arrive form-encoded; the
// response carries the bearer token. Unknown usernames and wrong
// passwords collapse into one 401 so the endpoint cannot be used to
// enumerate accounts.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	if err := r.ParseForm(); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid form body", http.StatusBadRequest))
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeError(w, apierror.New("BAD_REQUEST", "username and password are required", http.StatusBadRequest))
		return
	}

	signed, err := h.service.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			err = model.ErrBadCredentials
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
	})
}

// Register handles POST /register. The response is the public account
// view only; hashes and salts stay server-side.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", http.StatusBadRequest))
		return
	}

	account, err := h.service.Register(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, account.View())
}

// Me handles GET /users/me. The auth middleware has already verified the
// token; the account may still have vanished since issuance.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	account, err := h.service.CurrentUser(r.Context(), claims.Subject)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, account.View())
}
