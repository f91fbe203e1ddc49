package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kabore-dev/prepa-concours/internal/auth"
	"github.com/kabore-dev/prepa-concours/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Utilisateur non authentifié pour créer un quiz")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Quiz      Quiz        `json:"quiz"`
		Questions []*Question `json:"questions"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Corps de requête invalide pour créer un quiz")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(payload.Questions) == 0 {
		log.Warn("Tentative de créer un quiz sans questions")
		http.Error(w, "quiz must contain at least one question", http.StatusBadRequest)
		return
	}

	owner, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	payload.Quiz.CreatedBy = &owner

	if payload.Quiz.ID == uuid.Nil {
		payload.Quiz.ID = uuid.New()
	}
	for _, q := range payload.Questions {
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		q.QuizID = payload.Quiz.ID
	}

	if err := h.service.CreateQuizWithQuestions(r.Context(), &payload.Quiz, payload.Questions); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Erreur lors de la création du quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"quiz":      payload.Quiz,
		"questions": payload.Questions,
	})
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		http.Error(w, "quiz id required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteQuiz(r.Context(), quizID); err != nil {
		log.WithError(err).Error("Erreur lors de la suppression du quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		http.Error(w, "quiz id required", http.StatusBadRequest)
		return
	}

	var question Question
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		log.WithError(err).Error("Corps de requête invalide pour ajouter une question")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.AddQuestionToQuiz(r.Context(), quizID, &question); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Erreur lors de l'ajout de la question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "question added successfully",
		"question": question,
	})
}

func (h *Handler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	questionID := chi.URLParam(r, "questionID")
	if quizID == "" || questionID == "" {
		http.Error(w, "quiz and question ids required", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveQuestion(r.Context(), quizID, questionID); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Erreur lors de la suppression de la question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question removed successfully",
	})
}

func (h *Handler) GetQuizWithQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		http.Error(w, "quiz id required", http.StatusBadRequest)
		return
	}

	quizWithQuestions, err := h.service.GetQuizWithQuestions(r.Context(), quizID)
	if err != nil {
		log.WithError(err).Error("Erreur lors de la recherche du quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if quizWithQuestions == nil {
		http.Error(w, "quiz not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, quizWithQuestions)
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizzes, err := h.service.ListQuizzes(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		log.WithError(err).Error("Erreur lors du listage des quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

// WatchQuizzes diffuse la liste des quiz en Server-Sent Events. Chaque
// événement porte un instantané complet; l'abonnement est résilié dès
// que le client se déconnecte.
func (h *Handler) WatchQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	snapshots, cancel := h.service.Watch()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	initial, err := h.service.ListQuizzes(r.Context(), "")
	if err != nil {
		log.WithError(err).Error("Erreur lors de l'instantané initial")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeEvent(w, initial)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case snapshot, open := <-snapshots:
			if !open {
				return
			}
			writeEvent(w, snapshot)
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, snapshot []*Quiz) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
}
