package aiquiz

import (
	"encoding/json"
	"net/http"

	"github.com/kabore-dev/prepa-concours/internal/config"
	"github.com/kabore-dev/prepa-concours/internal/quiz"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuiz accepte {topic, numberOfQuestions, difficulty, source} et
// répond {quiz} ou {error}. Tout échec du pipeline (contrat de schéma,
// banque inaccessible, modèle sans sortie) se traduit par un statut 500.
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	generated, err := h.service.GenerateQuiz(r.Context(), req)
	if err != nil {
		log.WithError(err).Errorf("Échec de la génération du quiz: %v", err)
		config.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}

	config.JSON(w, http.StatusOK, map[string]*quiz.Quiz{
		"quiz": generated,
	})
}

// GenerateQuestion régénère une seule question pour le constructeur
// manuel de quiz.
func (h *Handler) GenerateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req struct {
		Topic      string          `json:"topic"`
		Difficulty quiz.Difficulty `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.service.GenerateSingleQuestion(r.Context(), req.Topic, req.Difficulty)
	if err != nil {
		log.WithError(err).Errorf("Échec de la génération de la question: %v", err)
		config.JSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
		return
	}

	config.JSON(w, http.StatusOK, map[string]*quiz.Question{
		"question": question,
	})
}
