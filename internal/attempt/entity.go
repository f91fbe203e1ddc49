package attempt

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizAttempt est l'enregistrement immuable d'un passage de quiz,
// créé une seule fois à la soumission et jamais modifié ensuite.
type QuizAttempt struct {
	ID             uuid.UUID                                     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID                                     `gorm:"type:uuid;not null;index" json:"user_id"`
	QuizID         uuid.UUID                                     `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuizTitle      string                                        `gorm:"type:text;not null" json:"quiz_title"`
	TotalQuestions int                                           `gorm:"not null" json:"total_questions"`
	CorrectCount   int                                           `gorm:"not null" json:"correct_count"`
	Score          int                                           `gorm:"not null" json:"score"`
	Details        datatypes.JSONType[map[string]AnswerDetail]   `gorm:"type:jsonb" json:"details"`
	CreatedAt      time.Time                                     `gorm:"autoCreateTime" json:"created_at"`
}
