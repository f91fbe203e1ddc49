package attempt

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kabore-dev/prepa-concours/internal/auth"
	"github.com/kabore-dev/prepa-concours/internal/config"
)

type Handler struct {
	service AttemptService
}

func NewHandler(s AttemptService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListMyAttempts(w http.ResponseWriter, r *http.Request) {
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

	attempts, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Erreur lors du listage des tentatives")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, attempts)
}

func (h *Handler) GetAttempt(w http.ResponseWriter, r *http.Request) {
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

	attemptID := chi.URLParam(r, "id")
	if attemptID == "" {
		http.Error(w, "attempt id required", http.StatusBadRequest)
		return
	}

	attempt, err := h.service.GetByID(r.Context(), userID, attemptID)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		log.WithError(err).Error("Erreur lors de la recherche de la tentative")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if attempt == nil {
		http.Error(w, "attempt not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, attempt)
}
