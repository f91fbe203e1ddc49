package transaction

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(t *Transaction) error
	FindByID(id uuid.UUID) (*Transaction, error)
	FindAllByUserID(userID uuid.UUID) ([]Transaction, error)
	Update(t *Transaction) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(t *Transaction) error {
	return r.db.Create(t).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Transaction, error) {
	var t Transaction
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]Transaction, error) {
	var transactions []Transaction
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *repository) Update(t *Transaction) error {
	return r.db.Save(t).Error
}
