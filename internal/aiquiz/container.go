package aiquiz

import "context"

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer() *AIQuizContainer {
	ctx := context.Background()
	provider, _ := NewGeminiProvider(ctx)
	trivia := NewTriviaClient()
	service := NewService(provider, trivia)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}
