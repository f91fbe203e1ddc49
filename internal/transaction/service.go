package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kabore-dev/prepa-concours/internal/config"
	"github.com/kabore-dev/prepa-concours/internal/user"
)

const premiumDuration = 30 * 24 * time.Hour

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateTransactionDTO) (*TransactionResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]TransactionResponse, error)
	Confirm(ctx context.Context, id uuid.UUID, reference string) (*TransactionResponse, error)
}

type service struct {
	repo  Repository
	users user.UserRepository
}

func NewService(repo Repository, users user.UserRepository) Service {
	return &service{repo: repo, users: users}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateTransactionDTO) (*TransactionResponse, error) {
	log := config.WithContext(ctx)

	if !dto.Provider.IsValid() {
		return nil, fmt.Errorf("opérateur inconnu %q", dto.Provider)
	}
	if dto.AmountFCFA <= 0 {
		return nil, errors.New("montant invalide")
	}
	if dto.Phone == "" {
		return nil, errors.New("numéro de téléphone requis")
	}

	encrypted, err := config.Encrypt(dto.Phone)
	if err != nil {
		log.WithError(err).Error("Échec du chiffrement du numéro")
		return nil, err
	}

	t := Transaction{
		UserID:         userID,
		Provider:       dto.Provider,
		AmountFCFA:     dto.AmountFCFA,
		Status:         StatusPending,
		PhoneEncrypted: encrypted,
	}
	if err := s.repo.Create(&t); err != nil {
		log.WithError(err).Error("Échec de la création de la transaction")
		return nil, err
	}

	log.Info("Transaction créée", "transaction_id", t.ID.String())
	return s.toResponse(&t), nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]TransactionResponse, error) {
	transactions, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		return nil, err
	}

	var responses []TransactionResponse
	for i := range transactions {
		responses = append(responses, *s.toResponse(&transactions[i]))
	}
	return responses, nil
}

// Confirm marque la transaction comme aboutie et active l'abonnement
// premium du candidat pour trente jours.
func (s *service) Confirm(ctx context.Context, id uuid.UUID, reference string) (*TransactionResponse, error) {
	log := config.WithContext(ctx)

	t, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.New("transaction introuvable")
	}
	if t.Status != StatusPending {
		return nil, errors.New("transaction déjà traitée")
	}

	t.Status = StatusCompleted
	t.Reference = reference
	if err := s.repo.Update(t); err != nil {
		log.WithError(err).Error("Échec de la mise à jour de la transaction")
		return nil, err
	}

	expires := time.Now().Add(premiumDuration)
	if err := s.users.UpdateSubscription(t.UserID.String(), user.SubscriptionPremium, &expires); err != nil {
		log.WithError(err).Error("Échec de l'activation de l'abonnement premium")
		return nil, err
	}

	log.Info("Abonnement premium activé", "user_id", t.UserID.String())
	return s.toResponse(t), nil
}

func (s *service) toResponse(t *Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:         t.ID,
		UserID:     t.UserID,
		Provider:   t.Provider,
		AmountFCFA: t.AmountFCFA,
		Status:     t.Status,
		Reference:  t.Reference,
		CreatedAt:  t.CreatedAt,
	}
}
