package formation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kabore-dev/prepa-concours/internal/config"
	"github.com/kabore-dev/prepa-concours/internal/quiz"
	"github.com/kabore-dev/prepa-concours/internal/user"
)

// ErrAccessDenied signale une formation premium demandée par un profil
// sans abonnement valide.
var ErrAccessDenied = errors.New("formation réservée aux abonnés premium")

type Service interface {
	Create(ctx context.Context, f *Formation) error
	List(ctx context.Context) ([]Formation, error)
	Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*Formation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	users user.UserRepository
}

func NewService(repo Repository, users user.UserRepository) Service {
	return &service{repo: repo, users: users}
}

func (s *service) Create(ctx context.Context, f *Formation) error {
	log := config.WithContext(ctx)

	if f.Title == "" || f.Category == "" {
		return errors.New("titre et catégorie requis")
	}
	if f.AccessType == "" {
		f.AccessType = quiz.AccessGratuit
	}
	if !f.AccessType.IsValid() {
		return errors.New("type d'accès inconnu")
	}

	if err := s.repo.Create(f); err != nil {
		log.WithError(err).Error("Échec de la création de la formation")
		return err
	}
	log.Info("Formation créée", "formation_id", f.ID.String())
	return nil
}

func (s *service) List(ctx context.Context) ([]Formation, error) {
	return s.repo.FindAll()
}

// Get applique le même contrôle d'accès que les quiz: une formation
// premium n'est lisible que par un profil premium.
func (s *service) Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*Formation, error) {
	f, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}

	if f.AccessType == quiz.AccessPremium {
		profile, err := s.users.GetByID(userID.String())
		if err != nil {
			return nil, err
		}
		if profile == nil || !profile.IsPremium() {
			return nil, ErrAccessDenied
		}
	}
	return f, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(id)
}
