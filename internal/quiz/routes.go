package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kabore-dev/prepa-concours/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.CreateQuiz)
	r.Get("/", h.ListQuizzes)
	r.Get("/watch", h.WatchQuizzes)
	r.Get("/{id}", h.GetQuizWithQuestions)
	r.Delete("/{id}", h.DeleteQuiz)
	r.Post("/{id}/questions", h.AddQuestion)
	r.Delete("/{id}/questions/{questionID}", h.RemoveQuestion)
	return r
}
