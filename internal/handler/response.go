package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"menagerie/internal/model"
	"menagerie/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError translates domain errors into HTTP responses. Token failures
// share one message regardless of cause; credential failures never say
// whether the username exists.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := model.ErrorBody{
		Code:    "INTERNAL_ERROR",
		Message: "unexpected server error",
	}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
	case errors.Is(err, model.ErrAccountNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "account not found"
	case errors.Is(err, model.ErrDuplicateAccount):
		status = http.StatusBadRequest
		body.Code = "ALREADY_REGISTERED"
		body.Message = "account already registered"
	case errors.Is(err, model.ErrBadCredentials):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "invalid credentials"
	case errors.Is(err, model.ErrInvalidToken), errors.Is(err, model.ErrUnauthorized):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "could not validate credentials"
	case errors.Is(err, model.ErrFoxNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "fox not found"
	case errors.Is(err, model.ErrDogNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "dog not found"
	case errors.Is(err, model.ErrExampleNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "example not found"
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "invalid input"
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.ErrorResponse{Error: body})
}
