package aiquiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kabore-dev/prepa-concours/internal/config"
	"github.com/kabore-dev/prepa-concours/internal/quiz"
	"gorm.io/datatypes"
)

type Service interface {
	GenerateQuiz(ctx context.Context, req GenerateRequest) (*quiz.Quiz, error)
	GenerateSingleQuestion(ctx context.Context, topic string, difficulty quiz.Difficulty) (*quiz.Question, error)
}

type service struct {
	provider Provider
	trivia   *TriviaClient
}

func NewService(provider Provider, trivia *TriviaClient) Service {
	return &service{provider: provider, trivia: trivia}
}

func (s *service) GenerateQuiz(ctx context.Context, req GenerateRequest) (*quiz.Quiz, error) {
	log := config.WithContext(ctx)

	if req.Topic == "" {
		return nil, &quiz.ValidationError{Field: "topic", Reason: "thème requis"}
	}
	if !req.Difficulty.IsValid() {
		return nil, &quiz.ValidationError{Field: "difficulty", Reason: fmt.Sprintf("valeur inconnue %q", req.Difficulty)}
	}

	count := req.NumberOfQuestions
	if count < quiz.MinGeneratedQuestions {
		count = quiz.MinGeneratedQuestions
	}
	if count > quiz.MaxGeneratedQuestions {
		count = quiz.MaxGeneratedQuestions
	}

	var (
		result *quiz.Quiz
		err    error
	)
	switch req.Source {
	case SourceBank:
		result, err = s.fromBank(ctx, req, count)
	case SourceModel, "":
		result, err = s.fromModel(ctx, req, count)
	default:
		return nil, &quiz.ValidationError{Field: "source", Reason: fmt.Sprintf("valeur inconnue %q", req.Source)}
	}
	if err != nil {
		return nil, err
	}

	if err := quiz.ValidateGenerated(result); err != nil {
		log.WithError(err).Warn("Quiz généré rejeté par le contrat de schéma")
		return nil, err
	}
	return result, nil
}

func (s *service) GenerateSingleQuestion(ctx context.Context, topic string, difficulty quiz.Difficulty) (*quiz.Question, error) {
	if topic == "" {
		return nil, &quiz.ValidationError{Field: "topic", Reason: "thème requis"}
	}
	if !difficulty.IsValid() {
		return nil, &quiz.ValidationError{Field: "difficulty", Reason: fmt.Sprintf("valeur inconnue %q", difficulty)}
	}

	generated, err := s.provider.SendPrompt(ctx, systemPrompt, BuildSingleQuestionPrompt(topic, difficulty))
	if err != nil {
		return nil, err
	}

	question := toQuestion(generated.Questions[0], 0)
	if err := quiz.ValidateQuestion(question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *service) fromModel(ctx context.Context, req GenerateRequest, count int) (*quiz.Quiz, error) {
	generated, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req.Topic, req.Difficulty, count))
	if err != nil {
		return nil, err
	}

	questions := make([]quiz.Question, 0, len(generated.Questions))
	for i, g := range generated.Questions {
		questions = append(questions, toQuestion(g, i))
	}

	title := generated.Title
	if title == "" {
		title = fmt.Sprintf("Quiz: %s", req.Topic)
	}

	return s.assemble(req, title, generated.Description, questions), nil
}

func (s *service) fromBank(ctx context.Context, req GenerateRequest, count int) (*quiz.Quiz, error) {
	questions, err := s.trivia.FetchQuestions(ctx, req.Topic, req.Difficulty, count)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Quiz: %s", req.Topic)
	description := fmt.Sprintf("Questions d'entraînement sur « %s » issues de la banque publique.", req.Topic)
	return s.assemble(req, title, description, questions), nil
}

// assemble produit l'objet quiz canonique; une minute par question.
func (s *service) assemble(req GenerateRequest, title, description string, questions []quiz.Question) *quiz.Quiz {
	q := &quiz.Quiz{
		ID:              uuid.New(),
		Title:           title,
		Description:     description,
		Category:        req.Topic,
		Difficulty:      req.Difficulty,
		AccessType:      quiz.AccessGratuit,
		DurationMinutes: len(questions),
		TotalQuestions:  len(questions),
	}
	for i := range questions {
		questions[i].QuizID = q.ID
		questions[i].OrderIndex = i
	}
	q.Questions = questions
	return q
}

func toQuestion(g GeneratedQuestion, index int) quiz.Question {
	return quiz.NormalizeQuestion(quiz.Question{
		Text:           g.Text,
		Options:        datatypes.JSONSlice[string](g.Options),
		CorrectAnswers: datatypes.JSONSlice[string](g.CorrectAnswers),
		Explanation:    g.Explanation,
		OrderIndex:     index,
	})
}
