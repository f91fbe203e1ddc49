package quiz

import (
	"errors"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(q *Quiz) error
	GetByID(id string) (*Quiz, error)
	List() ([]*Quiz, error)
	ListByCategory(category string) ([]*Quiz, error)
	Delete(id string) error

	AddQuestions(questions []*Question) error
	ListQuestionsByQuiz(quizID string) ([]*Question, error)
	RemoveQuestion(quizID, questionID string) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(q *Quiz) error {
	return r.db.Create(q).Error
}

func (r *quizRepository) GetByID(id string) (*Quiz, error) {
	var quiz Quiz
	if err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) List() ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.Order("created_at DESC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) ListByCategory(category string) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Delete(id string) error {
	return r.db.Delete(&Quiz{}, "id = ?", id).Error
}

func (r *quizRepository) AddQuestions(questions []*Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}

func (r *quizRepository) ListQuestionsByQuiz(quizID string) ([]*Question, error) {
	var questions []*Question
	if err := r.db.
		Where("quiz_id = ?", quizID).
		Order("order_index ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// RemoveQuestion supprime la question et décrémente le compteur du quiz
// dans la même transaction: total_questions reste égal au nombre de
// questions persistées.
func (r *quizRepository) RemoveQuestion(quizID, questionID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&Question{}, "id = ? AND quiz_id = ?", questionID, quizID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&Quiz{}).Where("id = ?", quizID).
			Update("total_questions", gorm.Expr("total_questions - 1")).Error
	})
}
