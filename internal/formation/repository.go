package formation

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(f *Formation) error
	FindByID(id uuid.UUID) (*Formation, error)
	FindAll() ([]Formation, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(f *Formation) error {
	return r.db.Create(f).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Formation, error) {
	var f Formation
	if err := r.db.First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *repository) FindAll() ([]Formation, error) {
	var formations []Formation
	if err := r.db.Order("created_at DESC").Find(&formations).Error; err != nil {
		return nil, err
	}
	return formations, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Formation{}, "id = ?", id).Error
}
