package aiquiz

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kabore-dev/prepa-concours/internal/quiz"
)

type fakeProvider struct {
	generated *GeneratedQuiz
	err       error
	lastUser  string
}

func (f *fakeProvider) SendPrompt(ctx context.Context, system, user string) (*GeneratedQuiz, error) {
	f.lastUser = user
	if f.err != nil {
		return nil, f.err
	}
	return f.generated, nil
}

func generatedFixture(n int) *GeneratedQuiz {
	g := &GeneratedQuiz{Title: "Droit public", Description: "Révision"}
	for i := 0; i < n; i++ {
		g.Questions = append(g.Questions, GeneratedQuestion{
			Text:           "Question",
			Options:        []string{"A", "B", "C", "D"},
			CorrectAnswers: []string{"A"},
			Explanation:    "parce que",
		})
	}
	return g
}

func TestGenerateQuizFromModel(t *testing.T) {
	provider := &fakeProvider{generated: generatedFixture(5)}
	svc := NewService(provider, NewTriviaClient())

	result, err := svc.GenerateQuiz(context.Background(), GenerateRequest{
		Topic:             "droit constitutionnel",
		NumberOfQuestions: 5,
		Difficulty:        quiz.DifficultyMoyen,
		Source:            SourceModel,
	})
	if err != nil {
		t.Fatalf("GenerateQuiz a échoué: %v", err)
	}

	if result.Title != "Droit public" {
		t.Errorf("titre incorrect: %q", result.Title)
	}
	if result.TotalQuestions != 5 || len(result.Questions) != 5 {
		t.Errorf("nombre de questions incohérent: total=%d len=%d", result.TotalQuestions, len(result.Questions))
	}
	if result.DurationMinutes != 5 {
		t.Errorf("durée attendue d'une minute par question, reçu %d", result.DurationMinutes)
	}
	for i, q := range result.Questions {
		if q.OrderIndex != i {
			t.Errorf("OrderIndex incorrect à l'indice %d: %d", i, q.OrderIndex)
		}
		if len(q.Options) != quiz.OptionCount {
			t.Errorf("question %d: %d options après normalisation", i, len(q.Options))
		}
	}
}

func TestGenerateQuizCountClamping(t *testing.T) {
	provider := &fakeProvider{generated: generatedFixture(4)}
	svc := NewService(provider, NewTriviaClient())

	_, err := svc.GenerateQuiz(context.Background(), GenerateRequest{
		Topic:             "logique",
		NumberOfQuestions: 1,
		Difficulty:        quiz.DifficultyFacile,
	})
	if err != nil {
		t.Fatalf("GenerateQuiz a échoué: %v", err)
	}
	if !strings.Contains(provider.lastUser, "4 questions") {
		t.Errorf("la quantité aurait dû être ramenée à 4: %q", provider.lastUser)
	}

	provider.generated = generatedFixture(15)
	_, err = svc.GenerateQuiz(context.Background(), GenerateRequest{
		Topic:             "logique",
		NumberOfQuestions: 40,
		Difficulty:        quiz.DifficultyFacile,
	})
	if err != nil {
		t.Fatalf("GenerateQuiz a échoué: %v", err)
	}
	if !strings.Contains(provider.lastUser, "15 questions") {
		t.Errorf("la quantité aurait dû être plafonnée à 15: %q", provider.lastUser)
	}
}

func TestGenerateQuizNoContent(t *testing.T) {
	provider := &fakeProvider{err: ErrNoContent}
	svc := NewService(provider, NewTriviaClient())

	_, err := svc.GenerateQuiz(context.Background(), GenerateRequest{
		Topic:      "histoire",
		Difficulty: quiz.DifficultyDifficile,
		Source:     SourceModel,
	})
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("ErrNoContent attendu, reçu: %v", err)
	}
}

func TestGenerateQuizRejectsBadRequest(t *testing.T) {
	svc := NewService(&fakeProvider{generated: generatedFixture(4)}, NewTriviaClient())

	cases := []struct {
		name string
		req  GenerateRequest
	}{
		{"EmptyTopic", GenerateRequest{Difficulty: quiz.DifficultyFacile}},
		{"BadDifficulty", GenerateRequest{Topic: "maths", Difficulty: "expert"}},
		{"BadSource", GenerateRequest{Topic: "maths", Difficulty: quiz.DifficultyFacile, Source: "autre"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.GenerateQuiz(context.Background(), c.req)
			var vErr *quiz.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("ValidationError attendue, reçu: %v", err)
			}
		})
	}
}

func TestGenerateQuizValidatesModelOutput(t *testing.T) {
	// le modèle retourne une question sans bonne réponse exploitable
	bad := generatedFixture(4)
	bad.Questions[2].CorrectAnswers = []string{"Z"}

	svc := NewService(&fakeProvider{generated: bad}, NewTriviaClient())
	_, err := svc.GenerateQuiz(context.Background(), GenerateRequest{
		Topic:      "maths",
		Difficulty: quiz.DifficultyMoyen,
	})

	var vErr *quiz.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ValidationError attendue pour une sortie modèle invalide, reçu: %v", err)
	}
}

func TestGenerateSingleQuestion(t *testing.T) {
	provider := &fakeProvider{generated: generatedFixture(1)}
	svc := NewService(provider, NewTriviaClient())

	question, err := svc.GenerateSingleQuestion(context.Background(), "géographie", quiz.DifficultyFacile)
	if err != nil {
		t.Fatalf("GenerateSingleQuestion a échoué: %v", err)
	}
	if len(question.Options) != quiz.OptionCount {
		t.Errorf("attendu %d options, reçu %d", quiz.OptionCount, len(question.Options))
	}
	if !strings.Contains(provider.lastUser, "une seule question") {
		t.Errorf("prompt mono-question attendu: %q", provider.lastUser)
	}
}

func TestBuildUserPromptEmbedsRequest(t *testing.T) {
	prompt := BuildUserPrompt("culture générale", quiz.DifficultyDifficile, 10)
	for _, want := range []string{"10 questions", "culture générale", "difficile"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("le prompt devrait contenir %q: %s", want, prompt)
		}
	}
}
