package user

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionType string

const (
	SubscriptionGratuit SubscriptionType = "gratuit"
	SubscriptionPremium SubscriptionType = "premium"
)

type User struct {
	ID                    uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name                  string           `gorm:"type:text;not null" json:"name"`
	Email                 string           `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Role                  string           `gorm:"type:text;not null;default:'candidat'" json:"role"`
	SubscriptionType      SubscriptionType `gorm:"type:text;not null;default:'gratuit'" json:"subscription_type"`
	SubscriptionExpiresAt *time.Time       `json:"subscription_expires_at,omitempty"`
	CreatedAt             time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsPremium tient compte de l'expiration de l'abonnement: un abonnement
// premium échu redevient un profil gratuit.
func (u *User) IsPremium() bool {
	if u.SubscriptionType != SubscriptionPremium {
		return false
	}
	if u.SubscriptionExpiresAt != nil && time.Now().After(*u.SubscriptionExpiresAt) {
		return false
	}
	return true
}
