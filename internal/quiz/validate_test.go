package quiz

import (
	"errors"
	"testing"

	"gorm.io/datatypes"
)

func validQuestion(text string) Question {
	return Question{
		Text:           text,
		Options:        datatypes.JSONSlice[string]{"A", "B", "C", "D"},
		CorrectAnswers: datatypes.JSONSlice[string]{"B"},
		Explanation:    "parce que",
	}
}

func validQuiz(n int) *Quiz {
	q := &Quiz{
		Title:           "Culture générale",
		Category:        "histoire",
		Difficulty:      DifficultyMoyen,
		AccessType:      AccessGratuit,
		DurationMinutes: 10,
	}
	for i := 0; i < n; i++ {
		q.Questions = append(q.Questions, validQuestion("Question"))
	}
	q.TotalQuestions = n
	return q
}

func TestValidate(t *testing.T) {
	t.Run("ValidQuiz", func(t *testing.T) {
		if err := Validate(validQuiz(5)); err != nil {
			t.Fatalf("Validate a rejeté un quiz valide: %v", err)
		}
	})

	t.Run("UnknownDifficulty", func(t *testing.T) {
		q := validQuiz(5)
		q.Difficulty = "expert"
		assertValidationError(t, Validate(q), "difficulty")
	})

	t.Run("NegativeDuration", func(t *testing.T) {
		q := validQuiz(5)
		q.DurationMinutes = -1
		assertValidationError(t, Validate(q), "duration_minutes")
	})

	t.Run("NoQuestions", func(t *testing.T) {
		q := validQuiz(0)
		assertValidationError(t, Validate(q), "questions")
	})

	t.Run("TotalQuestionsMismatch", func(t *testing.T) {
		q := validQuiz(5)
		q.TotalQuestions = 3
		assertValidationError(t, Validate(q), "total_questions")
	})

	t.Run("CorrectAnswerNotAnOption", func(t *testing.T) {
		q := validQuiz(2)
		q.Questions[1].CorrectAnswers = datatypes.JSONSlice[string]{"E"}
		assertValidationError(t, Validate(q), "questions[1]")
	})

	t.Run("NoCorrectAnswer", func(t *testing.T) {
		q := validQuiz(2)
		q.Questions[0].CorrectAnswers = nil
		assertValidationError(t, Validate(q), "questions[0]")
	})

	t.Run("TooFewOptions", func(t *testing.T) {
		q := validQuiz(1)
		q.Questions[0].Options = datatypes.JSONSlice[string]{"A", "B"}
		q.Questions[0].CorrectAnswers = datatypes.JSONSlice[string]{"A"}
		assertValidationError(t, Validate(q), "questions[0]")
	})
}

func TestValidateGenerated(t *testing.T) {
	t.Run("WithinBounds", func(t *testing.T) {
		if err := ValidateGenerated(validQuiz(4)); err != nil {
			t.Fatalf("ValidateGenerated a rejeté un quiz de 4 questions: %v", err)
		}
		if err := ValidateGenerated(validQuiz(15)); err != nil {
			t.Fatalf("ValidateGenerated a rejeté un quiz de 15 questions: %v", err)
		}
	})

	t.Run("TooFew", func(t *testing.T) {
		assertValidationError(t, ValidateGenerated(validQuiz(3)), "questions")
	})

	t.Run("TooMany", func(t *testing.T) {
		assertValidationError(t, ValidateGenerated(validQuiz(16)), "questions")
	})
}

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatal("une ValidationError était attendue, aucune erreur reçue")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("erreur inattendue (pas une ValidationError): %v", err)
	}
	if vErr.Field != field {
		t.Errorf("champ incorrect. Attendu: %s, Reçu: %s", field, vErr.Field)
	}
}
