package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kabore-dev/prepa-concours/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.StartSession)
	r.Get("/{id}", h.GetSession)
	r.Post("/{id}/begin", h.BeginSession)
	r.Post("/{id}/toggle", h.ToggleOption)
	r.Post("/{id}/next", h.NextQuestion)
	r.Post("/{id}/previous", h.PreviousQuestion)
	r.Post("/{id}/submit", h.SubmitSession)
	r.Delete("/{id}", h.CloseSession)
	return r
}
