package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a derived record: one per program per distinct follow-up date.
// Sessions are synthesized lazily by the materializer and soft-deleted when
// the follow-up list for their date is deleted. At most one non-deleted
// session may exist per (program, date); see database.Initialize for the
// partial unique index.
type Session struct {
	BaseModel
	ProgramID   uuid.UUID `json:"program_id" gorm:"type:uuid;not null;index" validate:"required"`
	SessionDate time.Time `json:"session_date" gorm:"type:date;not null" validate:"required"`
	Topic       string    `json:"topic" gorm:"size:200;not null"`
	SpeakerName string    `json:"speaker_name" gorm:"size:100;not null"`

	// Relationships
	Program Program `json:"program,omitempty" gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}
