package attempt

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kabore-dev/prepa-concours/internal/config"
	"github.com/kabore-dev/prepa-concours/internal/quiz"
	"gorm.io/datatypes"
)

// ErrForbidden signale la lecture d'une tentative par un autre
// utilisateur que son propriétaire.
var ErrForbidden = errors.New("tentative appartenant à un autre utilisateur")

type AttemptService interface {
	Submit(ctx context.Context, userID uuid.UUID, qz *quiz.Quiz, answers map[int][]string) (*QuizAttempt, error)
	GetByID(ctx context.Context, userID uuid.UUID, attemptID string) (*QuizAttempt, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*QuizAttempt, error)
}

type attemptService struct {
	repo AttemptRepository
}

func NewService(repo AttemptRepository) AttemptService {
	return &attemptService{repo: repo}
}

// Submit note la tentative puis la persiste. La notation est locale et
// toujours disponible: en cas d'échec de persistance, la tentative
// notée est retournée avec l'erreur, pour que l'appelant puisse
// afficher le score malgré tout.
func (s *attemptService) Submit(ctx context.Context, userID uuid.UUID, qz *quiz.Quiz, answers map[int][]string) (*QuizAttempt, error) {
	log := config.WithContext(ctx)

	result := Grade(qz.Questions, answers)

	attempt := &QuizAttempt{
		ID:             uuid.New(),
		UserID:         userID,
		QuizID:         qz.ID,
		QuizTitle:      qz.Title,
		TotalQuestions: result.TotalQuestions,
		CorrectCount:   result.CorrectCount,
		Score:          result.Score,
		Details:        datatypes.NewJSONType(result.Details),
	}

	if err := s.repo.Create(attempt); err != nil {
		log.WithError(err).Error("Échec de la persistance de la tentative, le score reste disponible")
		return attempt, err
	}

	log.Info("Tentative enregistrée", "attempt_id", attempt.ID.String())
	return attempt, nil
}

func (s *attemptService) GetByID(ctx context.Context, userID uuid.UUID, attemptID string) (*QuizAttempt, error) {
	log := config.WithContext(ctx)

	attempt, err := s.repo.GetByID(attemptID)
	if err != nil {
		log.Errorf("Erreur lors de la recherche de la tentative: %v", err)
		return nil, err
	}
	if attempt == nil {
		return nil, nil
	}
	if attempt.UserID != userID {
		return nil, ErrForbidden
	}
	return attempt, nil
}

func (s *attemptService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*QuizAttempt, error) {
	log := config.WithContext(ctx)

	attempts, err := s.repo.ListByUser(userID.String())
	if err != nil {
		log.Errorf("Erreur lors du listage des tentatives: %v", err)
		return nil, err
	}
	return attempts, nil
}
