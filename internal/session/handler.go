package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kabore-dev/prepa-concours/internal/auth"
	"github.com/kabore-dev/prepa-concours/internal/config"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
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

	var payload struct {
		QuizID string `json:"quiz_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.QuizID == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s, err := h.store.Start(r.Context(), userID, payload.QuizID)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccessDenied):
			// la session ACCESS_DENIED existe, le client voit l'état
			config.JSON(w, http.StatusForbidden, s.view())
		case errors.Is(err, ErrNotStarted):
			config.JSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
		case errors.Is(err, ErrQuizNotFound):
			http.Error(w, "quiz not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Échec du démarrage de la session")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, s.view())
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.resolve(w, r)
	if !ok {
		return
	}
	config.JSON(w, http.StatusOK, s.view())
}

func (h *Handler) BeginSession(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.store.Begin)
}

func (h *Handler) ToggleOption(w http.ResponseWriter, r *http.Request) {
	s, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var payload struct {
		Option string `json:"option"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.store.ToggleOption(r.Context(), s.ID, payload.Option)
	if err != nil {
		writeTransitionError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.store.Next)
}

func (h *Handler) PreviousQuestion(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.store.Previous)
}

func (h *Handler) SubmitSession(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.store.Submit)
}

func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.resolve(w, r)
	if !ok {
		return
	}

	if err := h.store.Close(r.Context(), s.ID); err != nil {
		writeTransitionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*View, error)) {
	s, ok := h.resolve(w, r)
	if !ok {
		return
	}

	view, err := op(r.Context(), s.ID)
	if err != nil {
		writeTransitionError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, view)
}

// resolve charge la session de l'URL et vérifie qu'elle appartient bien
// à l'utilisateur authentifié.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return nil, false
	}

	s, err := h.store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	if s.UserID.String() != claims.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return nil, false
	}
	return s, true
}

func writeTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnanswered),
		errors.Is(err, ErrAlreadySubmitted),
		errors.Is(err, ErrNotInProgress),
		errors.Is(err, ErrUnknownOption):
		config.JSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
