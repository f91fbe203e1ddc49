package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type stubQuizRepo struct {
	quiz    *Quiz
	removed [][2]string
}

func (s *stubQuizRepo) Create(q *Quiz) error { return nil }
func (s *stubQuizRepo) GetByID(id string) (*Quiz, error) {
	if s.quiz != nil && s.quiz.ID.String() == id {
		return s.quiz, nil
	}
	return nil, nil
}
func (s *stubQuizRepo) List() ([]*Quiz, error)                       { return nil, nil }
func (s *stubQuizRepo) ListByCategory(string) ([]*Quiz, error)       { return nil, nil }
func (s *stubQuizRepo) Delete(id string) error                       { return nil }
func (s *stubQuizRepo) AddQuestions([]*Question) error               { return nil }
func (s *stubQuizRepo) ListQuestionsByQuiz(string) ([]*Question, error) {
	return nil, nil
}

func (s *stubQuizRepo) RemoveQuestion(quizID, questionID string) error {
	s.removed = append(s.removed, [2]string{quizID, questionID})
	for i, q := range s.quiz.Questions {
		if q.ID.String() == questionID {
			s.quiz.Questions = append(s.quiz.Questions[:i], s.quiz.Questions[i+1:]...)
			s.quiz.TotalQuestions--
			return nil
		}
	}
	return errors.New("question introuvable")
}

func quizWithQuestions(n int) *Quiz {
	q := &Quiz{
		ID:         uuid.New(),
		Title:      "Culture générale",
		Category:   "histoire",
		Difficulty: DifficultyMoyen,
		AccessType: AccessGratuit,
	}
	for i := 0; i < n; i++ {
		q.Questions = append(q.Questions, Question{
			ID:             uuid.New(),
			QuizID:         q.ID,
			Text:           "Question",
			Options:        datatypes.JSONSlice[string]{"A", "B", "C", "D"},
			CorrectAnswers: datatypes.JSONSlice[string]{"A"},
			OrderIndex:     i,
		})
	}
	q.TotalQuestions = n
	return q
}

func TestRemoveQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("KeepsCounterConsistent", func(t *testing.T) {
		repo := &stubQuizRepo{quiz: quizWithQuestions(3)}
		svc := NewService(nil, repo, NewHub())
		target := repo.quiz.Questions[1].ID.String()

		if err := svc.RemoveQuestion(ctx, repo.quiz.ID.String(), target); err != nil {
			t.Fatalf("RemoveQuestion a échoué: %v", err)
		}

		if len(repo.removed) != 1 {
			t.Fatalf("une seule suppression attendue, reçu %d", len(repo.removed))
		}
		if repo.removed[0] != [2]string{repo.quiz.ID.String(), target} {
			t.Errorf("suppression sur le mauvais couple quiz/question: %v", repo.removed[0])
		}
		if repo.quiz.TotalQuestions != len(repo.quiz.Questions) {
			t.Errorf("total_questions (%d) incohérent avec les questions restantes (%d)",
				repo.quiz.TotalQuestions, len(repo.quiz.Questions))
		}
		if repo.quiz.TotalQuestions != 2 {
			t.Errorf("total_questions attendu 2 après suppression, reçu %d", repo.quiz.TotalQuestions)
		}
	})

	t.Run("RefusesLastQuestion", func(t *testing.T) {
		repo := &stubQuizRepo{quiz: quizWithQuestions(1)}
		svc := NewService(nil, repo, NewHub())

		err := svc.RemoveQuestion(ctx, repo.quiz.ID.String(), repo.quiz.Questions[0].ID.String())
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("ValidationError attendue pour la dernière question, reçu: %v", err)
		}
		if len(repo.removed) != 0 {
			t.Error("la dernière question ne doit jamais être supprimée")
		}
		if repo.quiz.TotalQuestions != 1 {
			t.Errorf("le quiz ne doit pas être modifié: total_questions = %d", repo.quiz.TotalQuestions)
		}
	})

	t.Run("UnknownQuiz", func(t *testing.T) {
		repo := &stubQuizRepo{quiz: quizWithQuestions(2)}
		svc := NewService(nil, repo, NewHub())

		if err := svc.RemoveQuestion(ctx, uuid.NewString(), uuid.NewString()); err == nil {
			t.Fatal("une erreur était attendue pour un quiz inconnu")
		}
		if len(repo.removed) != 0 {
			t.Error("aucune suppression ne doit être tentée pour un quiz inconnu")
		}
	})
}
