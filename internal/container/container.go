package container

import (
	"context"
	"log"
	"os"

	"github.com/kabore-dev/prepa-concours/internal/aiquiz"
	"github.com/kabore-dev/prepa-concours/internal/attempt"
	"github.com/kabore-dev/prepa-concours/internal/auth"
	"github.com/kabore-dev/prepa-concours/internal/config"
	"github.com/kabore-dev/prepa-concours/internal/formation"
	"github.com/kabore-dev/prepa-concours/internal/quiz"
	"github.com/kabore-dev/prepa-concours/internal/session"
	"github.com/kabore-dev/prepa-concours/internal/transaction"
	"github.com/kabore-dev/prepa-concours/internal/user"
)

type Container struct {
	UserContainer        *user.UserContainer
	QuizContainer        *quiz.QuizContainer
	AIQuizContainer      *aiquiz.AIQuizContainer
	AttemptContainer     *attempt.AttemptContainer
	SessionContainer     *session.SessionContainer
	TransactionContainer *transaction.Container
	FormationContainer   *formation.Container
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	quizContainer := quiz.NewQuizContainer(config.DB)
	aiQuizContainer := aiquiz.NewAIQuizContainer()
	attemptContainer := attempt.NewAttemptContainer(config.DB)
	sessionContainer := session.NewSessionContainer(
		quizContainer.Repo,
		userContainer.Repo,
		attemptContainer.Service,
	)
	transactionContainer := transaction.NewContainer(config.DB, userContainer.Repo)
	formationContainer := formation.NewContainer(config.DB, userContainer.Repo)

	return &Container{
		UserContainer:        userContainer,
		QuizContainer:        quizContainer,
		AIQuizContainer:      aiQuizContainer,
		AttemptContainer:     attemptContainer,
		SessionContainer:     sessionContainer,
		TransactionContainer: transactionContainer,
		FormationContainer:   formationContainer,
	}
}
