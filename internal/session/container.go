package session

import (
	"github.com/kabore-dev/prepa-concours/internal/attempt"
	"github.com/kabore-dev/prepa-concours/internal/quiz"
	"github.com/kabore-dev/prepa-concours/internal/user"
)

type SessionContainer struct {
	Handler *Handler
	Store   *Store
}

func NewSessionContainer(quizzes quiz.QuizRepository, users user.UserRepository, attempts attempt.AttemptService) *SessionContainer {
	store := NewStore(quizzes, users, attempts)
	handler := NewHandler(store)

	return &SessionContainer{
		Handler: handler,
		Store:   store,
	}
}
