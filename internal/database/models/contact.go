package models

import (
	"github.com/google/uuid"
)

// Contact represents an outreach contact owned by an admin. A contact may
// optionally be tied to a program, which scopes derived sessions.
type Contact struct {
	BaseModel
	FullName     string     `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Phone        string     `json:"phone" gorm:"size:20;not null" validate:"required,max=20"`
	OwnerAdminID uuid.UUID  `json:"owner_admin_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProgramID    *uuid.UUID `json:"program_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	OwnerAdmin User     `json:"owner_admin,omitempty" gorm:"foreignKey:OwnerAdminID;constraint:OnDelete:CASCADE"`
	Program    *Program `json:"program,omitempty" gorm:"foreignKey:ProgramID"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}
