package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"menagerie/internal/model"
	"menagerie/internal/service"
	"menagerie/pkg/apierror"
)

type AnimalHandler struct {
	service *service.AnimalService
}

func NewAnimalHandler(service *service.AnimalService) *AnimalHandler {
	return &AnimalHandler{service: service}
}

func (h *AnimalHandler) ListFoxes(w http.ResponseWriter, r *http.Request) {
	foxes, err := h.service.ListFoxes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, foxes)
}

func (h *AnimalHandler) GetFox(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	fox, err := h.service.GetFox(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, fox)
}

func (h *AnimalHandler) CreateFox(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", http.StatusBadRequest))
		return
	}

	fox, err := h.service.CreateFox(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, fox)
}

func (h *AnimalHandler) FoxJumpedOver(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	dogs, err := h.service.FoxJumpedOver(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dogs)
}

func (h *AnimalHandler) ListDogs(w http.ResponseWriter, r *http.Request) {
	dogs, err := h.service.ListDogs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dogs)
}

func (h *AnimalHandler) GetDog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	dog, err := h.service.GetDog(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dog)
}

func (h *AnimalHandler) CreateDog(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", http.StatusBadRequest))
		return
	}

	dog, err := h.service.CreateDog(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dog)
}

func (h *AnimalHandler) LinkFoxDog(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.FoxDogLink
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", http.StatusBadRequest))
		return
	}

	if err := h.service.LinkFoxDog(r.Context(), payload); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, payload)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "id must be an integer", http.StatusBadRequest))
		return 0, false
	}

	return id, true
}
