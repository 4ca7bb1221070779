package middleware

import (
	"encoding/json"
	"net/http"

	"menagerie/internal/model"
)

func writeError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		Error: model.ErrorBody{Code: code, Message: message},
	})
}
