package testutils

import (
	"fmt"
	"time"

	"temple-outreach-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenient test setup
type FactorySet struct {
	User     *UserFactory
	Program  *ProgramFactory
	Contact  *ContactFactory
	FollowUp *FollowUpFactory
	Session  *SessionFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     NewUserFactory(),
		Program:  NewProgramFactory(),
		Contact:  NewContactFactory(),
		FollowUp: NewFollowUpFactory(),
		Session:  NewSessionFactory(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName: "Test Volunteer",
		// Unique email per instance to avoid index collisions
		Email:        fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		Phone:        "+1-555-0100",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         models.RoleVolunteer,
		IsActive:     true,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithName sets a custom full name for the user
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.FullName = name
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// ProgramFactory provides methods to create test Program data
type ProgramFactory struct{}

// NewProgramFactory creates a new ProgramFactory
func NewProgramFactory() *ProgramFactory {
	return &ProgramFactory{}
}

// Create creates a test Program with default values
func (f *ProgramFactory) Create() *models.Program {
	id := uuid.New()
	return &models.Program{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        fmt.Sprintf("Youth Program %s", id.String()[:8]),
		Description: "A test program",
	}
}

// WithName sets a custom name for the program
func (f *ProgramFactory) WithName(name string) *models.Program {
	program := f.Create()
	program.Name = name
	return program
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a test Contact with default values
func (f *ContactFactory) Create(ownerAdminID uuid.UUID) *models.Contact {
	return &models.Contact{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:     "Test Contact",
		Phone:        "+1-555-0200",
		OwnerAdminID: ownerAdminID,
	}
}

// WithName sets a custom full name for the contact
func (f *ContactFactory) WithName(ownerAdminID uuid.UUID, name string) *models.Contact {
	contact := f.Create(ownerAdminID)
	contact.FullName = name
	return contact
}

// WithProgram attaches the contact to a program
func (f *ContactFactory) WithProgram(ownerAdminID, programID uuid.UUID) *models.Contact {
	contact := f.Create(ownerAdminID)
	contact.ProgramID = &programID
	return contact
}

// FollowUpFactory provides methods to create test FollowUpAssignment data
type FollowUpFactory struct{}

// NewFollowUpFactory creates a new FollowUpFactory
func NewFollowUpFactory() *FollowUpFactory {
	return &FollowUpFactory{}
}

// Create creates a test FollowUpAssignment with default values
func (f *FollowUpFactory) Create(contactID, volunteerID uuid.UUID, date time.Time) *models.FollowUpAssignment {
	return &models.FollowUpAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ContactID:    contactID,
		VolunteerID:  volunteerID,
		FollowUpDate: models.TruncateToDay(date),
		Status:       models.StatusNotCalled,
	}
}

// SessionFactory provides methods to create test Session data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates a test Session with default values
func (f *SessionFactory) Create(programID uuid.UUID, date time.Time) *models.Session {
	return &models.Session{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProgramID:   programID,
		SessionDate: models.TruncateToDay(date),
		Topic:       "Session",
		SpeakerName: "To be updated",
	}
}
