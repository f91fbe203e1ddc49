package quiz

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kabore-dev/prepa-concours/internal/config"
	"gorm.io/gorm"
)

type QuizService interface {
	CreateQuizWithQuestions(ctx context.Context, quiz *Quiz, questions []*Question) error
	DeleteQuiz(ctx context.Context, quizID string) error
	AddQuestionToQuiz(ctx context.Context, quizID string, question *Question) error
	RemoveQuestion(ctx context.Context, quizID, questionID string) error
	GetQuizWithQuestions(ctx context.Context, quizID string) (*QuizWithQuestionsDTO, error)
	ListQuizzes(ctx context.Context, category string) ([]*Quiz, error)
	Watch() (<-chan []*Quiz, func())
}

type quizService struct {
	repo QuizRepository
	db   *gorm.DB
	hub  *Hub
}

func NewService(db *gorm.DB, repo QuizRepository, hub *Hub) QuizService {
	return &quizService{
		repo: repo,
		db:   db,
		hub:  hub,
	}
}

func (s *quizService) CreateQuizWithQuestions(ctx context.Context, quiz *Quiz, questions []*Question) error {
	log := config.WithContext(ctx)
	log.Info("Création d'un nouveau quiz...")

	for i := range questions {
		*questions[i] = NormalizeQuestion(*questions[i])
		questions[i].OrderIndex = i
	}
	quiz.TotalQuestions = len(questions)
	quiz.Questions = nil

	candidate := *quiz
	for _, q := range questions {
		candidate.Questions = append(candidate.Questions, *q)
	}
	if err := Validate(&candidate); err != nil {
		log.WithError(err).Warn("Quiz rejeté par le contrat de schéma")
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			log.Errorf("Erreur lors de la création du quiz: %v", err)
			return err
		}

		for i := range questions {
			questions[i].QuizID = quiz.ID
		}

		if err := tx.Create(&questions).Error; err != nil {
			log.Errorf("Erreur lors de la création des questions: %v", err)
			return err
		}

		log.Info("Quiz créé avec succès", "quiz_id", quiz.ID.String())
		return nil
	})
	if err != nil {
		return err
	}

	s.publishSnapshot(ctx)
	return nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, quizID string) error {
	log := config.WithContext(ctx)
	log.Info("Suppression du quiz...", "quiz_id", quizID)

	if err := s.repo.Delete(quizID); err != nil {
		log.Errorf("Erreur lors de la suppression du quiz: %v", err)
		return err
	}

	log.Info("Quiz supprimé avec succès")
	s.publishSnapshot(ctx)
	return nil
}

func (s *quizService) AddQuestionToQuiz(ctx context.Context, quizID string, question *Question) error {
	log := config.WithContext(ctx)
	log.Info("Ajout d'une question au quiz...")

	qz, err := s.repo.GetByID(quizID)
	if err != nil {
		log.Errorf("Erreur lors de la recherche du quiz: %v", err)
		return err
	}
	if qz == nil {
		err := errors.New("quiz introuvable")
		log.Warnf("Quiz introuvable: %v", err)
		return err
	}

	*question = NormalizeQuestion(*question)
	if err := validateQuestion(len(qz.Questions), *question); err != nil {
		log.WithError(err).Warn("Question rejetée par le contrat de schéma")
		return err
	}

	question.QuizID = qz.ID
	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}
	question.OrderIndex = len(qz.Questions)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		return tx.Model(&Quiz{}).Where("id = ?", qz.ID).
			Update("total_questions", gorm.Expr("total_questions + 1")).Error
	})
	if err != nil {
		log.Errorf("Erreur lors de l'ajout de la question: %v", err)
		return err
	}

	log.Info("Question ajoutée avec succès", "question_id", question.ID.String())
	return nil
}

func (s *quizService) RemoveQuestion(ctx context.Context, quizID, questionID string) error {
	log := config.WithContext(ctx)
	log.Info("Suppression de la question...", "question_id", questionID)

	qz, err := s.repo.GetByID(quizID)
	if err != nil {
		log.Errorf("Erreur lors de la recherche du quiz: %v", err)
		return err
	}
	if qz == nil {
		err := errors.New("quiz introuvable")
		log.Warnf("Quiz introuvable: %v", err)
		return err
	}
	// le contrat de schéma exige au moins une question par quiz
	if len(qz.Questions) <= 1 {
		return &ValidationError{Field: "questions", Reason: "au moins une question requise"}
	}

	if err := s.repo.RemoveQuestion(quizID, questionID); err != nil {
		log.Errorf("Erreur lors de la suppression de la question: %v", err)
		return err
	}

	log.Info("Question supprimée avec succès", "question_id", questionID)
	return nil
}

func (s *quizService) GetQuizWithQuestions(ctx context.Context, quizID string) (*QuizWithQuestionsDTO, error) {
	log := config.WithContext(ctx)

	quiz, err := s.repo.GetByID(quizID)
	if err != nil {
		log.Errorf("Erreur lors de la recherche du quiz: %v", err)
		return nil, err
	}
	if quiz == nil {
		return nil, nil
	}

	questions, err := s.repo.ListQuestionsByQuiz(quizID)
	if err != nil {
		log.Errorf("Erreur lors du chargement des questions: %v", err)
		return nil, err
	}

	return &QuizWithQuestionsDTO{
		Quiz:      quiz,
		Questions: questions,
	}, nil
}

func (s *quizService) ListQuizzes(ctx context.Context, category string) ([]*Quiz, error) {
	log := config.WithContext(ctx)

	var (
		quizzes []*Quiz
		err     error
	)
	if category != "" {
		quizzes, err = s.repo.ListByCategory(category)
	} else {
		quizzes, err = s.repo.List()
	}
	if err != nil {
		log.Errorf("Erreur lors du listage des quiz: %v", err)
		return nil, err
	}
	return quizzes, nil
}

func (s *quizService) Watch() (<-chan []*Quiz, func()) {
	return s.hub.Subscribe()
}

func (s *quizService) publishSnapshot(ctx context.Context) {
	quizzes, err := s.repo.List()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Impossible de publier l'instantané des quiz")
		return
	}
	s.hub.Publish(quizzes)
}
