package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/kabore-dev/prepa-concours/internal/aiquiz"
	"github.com/kabore-dev/prepa-concours/internal/attempt"
	"github.com/kabore-dev/prepa-concours/internal/auth"
	"github.com/kabore-dev/prepa-concours/internal/formation"
	"github.com/kabore-dev/prepa-concours/internal/middlewares"
	"github.com/kabore-dev/prepa-concours/internal/quiz"
	"github.com/kabore-dev/prepa-concours/internal/session"
	"github.com/kabore-dev/prepa-concours/internal/transaction"
	"github.com/kabore-dev/prepa-concours/internal/user"
)

type RouterConfig struct {
	UserHandler        *user.Handler
	QuizHandler        *quiz.Handler
	AIQuizHandler      *aiquiz.Handler
	SessionHandler     *session.Handler
	AttemptHandler     *attempt.Handler
	TransactionHandler *transaction.Handler
	FormationHandler   *formation.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
		r.Mount("/transactions", transaction.Routes(cfg.TransactionHandler))
		r.Mount("/formations", formation.Routes(cfg.FormationHandler))
	})

	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	r.Mount("/sessions", session.Routes(cfg.SessionHandler))
	r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))

	return r
}
