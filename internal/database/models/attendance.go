package models

import (
	"github.com/google/uuid"
)

// Attendance records whether a user was present at a session
type Attendance struct {
	BaseModel
	SessionID uuid.UUID `json:"session_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_attendances_session_user" validate:"required"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_attendances_session_user" validate:"required"`
	Present   bool      `json:"present" gorm:"default:false"`

	// Relationships
	Session Session `json:"session,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Attendance
func (Attendance) TableName() string {
	return "attendances"
}
