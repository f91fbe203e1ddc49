package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title           string     `gorm:"type:text;not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Category        string     `gorm:"type:text;not null;index" json:"category"`
	Difficulty      Difficulty `gorm:"type:text;not null" json:"difficulty"`
	AccessType      AccessType `gorm:"type:text;not null;default:'gratuit'" json:"access_type"`
	DurationMinutes int        `gorm:"not null;default:0" json:"duration_minutes"`
	IsMockExam      bool       `gorm:"not null;default:false" json:"is_mock_exam"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	TotalQuestions  int        `gorm:"not null;default:0" json:"total_questions"`
	CreatedBy       *uuid.UUID `gorm:"type:uuid;index" json:"created_by,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type Question struct {
	ID             uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID         uuid.UUID                   `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Text           string                      `gorm:"type:text;not null" json:"text"`
	Options        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswers datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"correct_answers"`
	Explanation    string                      `gorm:"type:text" json:"explanation"`
	OrderIndex     int                         `gorm:"not null" json:"order_index"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime" json:"created_at"`
}

type QuizWithQuestionsDTO struct {
	Quiz      *Quiz       `json:"quiz"`
	Questions []*Question `json:"questions"`
}
