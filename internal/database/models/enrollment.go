package models

import (
	"github.com/google/uuid"
)

// Enrollment links a user to a program they participate in
type Enrollment struct {
	BaseModel
	ProgramID uuid.UUID `json:"program_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_enrollments_program_user" validate:"required"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_enrollments_program_user" validate:"required"`

	// Relationships
	Program Program `json:"program,omitempty" gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE"`
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Enrollment
func (Enrollment) TableName() string {
	return "enrollments"
}
