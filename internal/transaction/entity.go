package transaction

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID             uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Provider       Provider          `gorm:"type:text;not null" json:"provider"`
	AmountFCFA     int               `gorm:"not null" json:"amount_fcfa"`
	Status         TransactionStatus `gorm:"type:text;not null" json:"status"`
	PhoneEncrypted string            `gorm:"type:text;not null" json:"-"`
	Reference      string            `gorm:"type:text" json:"reference,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}
