package models

import (
	"time"

	"github.com/google/uuid"
)

// FollowUpAssignment is one ledger row: a contact assigned to a volunteer for
// a follow-up call on a given date. At most one non-deleted row may exist per
// (contact, date); the partial unique index enforcing that is created in
// database.Initialize since GORM tags cannot express the deleted_at predicate.
type FollowUpAssignment struct {
	BaseModel
	ContactID    uuid.UUID  `json:"contact_id" gorm:"type:uuid;not null;index" validate:"required"`
	VolunteerID  uuid.UUID  `json:"volunteer_id" gorm:"type:uuid;not null;index" validate:"required"`
	FollowUpDate time.Time  `json:"follow_up_date" gorm:"type:date;not null;index" validate:"required"`
	Status       CallStatus `json:"status" gorm:"type:varchar(30);not null;default:'not_called'"`
	Remarks      string     `json:"remarks" gorm:"type:text"`
	CalledByID   *uuid.UUID `json:"called_by_id,omitempty" gorm:"type:uuid"`
	CalledAt     *time.Time `json:"called_at,omitempty"`

	// Relationships
	Contact   Contact `json:"contact,omitempty" gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
	Volunteer User    `json:"volunteer,omitempty" gorm:"foreignKey:VolunteerID"`
	CalledBy  *User   `json:"called_by,omitempty" gorm:"foreignKey:CalledByID"`
}

// TableName returns the table name for FollowUpAssignment
func (FollowUpAssignment) TableName() string {
	return "follow_up_assignments"
}
