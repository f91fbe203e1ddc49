package formation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kabore-dev/prepa-concours/internal/auth"
	"github.com/kabore-dev/prepa-concours/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var f Formation
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	if err := h.service.Create(r.Context(), &f); err != nil {
		log.WithError(err).Error("Échec de la création de la formation")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, f)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	formations, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Échec du listage des formations")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, formations)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	f, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, ErrAccessDenied) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		log.WithError(err).Error("Échec du chargement de la formation")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if f == nil {
		http.Error(w, "formation not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, f)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.WithError(err).Error("Échec de la suppression de la formation")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
