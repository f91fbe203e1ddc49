package attempt

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kabore-dev/prepa-concours/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Get("/", h.ListMyAttempts)
	r.Get("/{id}", h.GetAttempt)
	return r
}
