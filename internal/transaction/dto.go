package transaction

import (
	"time"

	"github.com/google/uuid"
)

type CreateTransactionDTO struct {
	Provider   Provider `json:"provider"`
	AmountFCFA int      `json:"amount_fcfa"`
	Phone      string   `json:"phone"`
}

type TransactionResponse struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uuid.UUID         `json:"user_id"`
	Provider   Provider          `json:"provider"`
	AmountFCFA int               `json:"amount_fcfa"`
	Status     TransactionStatus `json:"status"`
	Reference  string            `json:"reference,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}
