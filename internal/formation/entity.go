package formation

import (
	"time"

	"github.com/google/uuid"
	"github.com/kabore-dev/prepa-concours/internal/quiz"
)

// Formation regroupe les supports d'un concours: fiches PDF, vidéos de
// cours et description du programme.
type Formation struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string          `gorm:"type:text;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Category    string          `gorm:"type:text;not null;index" json:"category"`
	AccessType  quiz.AccessType `gorm:"type:text;not null;default:'gratuit'" json:"access_type"`
	PDFURL      string          `gorm:"type:text" json:"pdf_url,omitempty"`
	VideoURL    string          `gorm:"type:text" json:"video_url,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
