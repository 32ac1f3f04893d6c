package repository

import (
	"time"

	"temple-outreach-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetExistingIDs(ids []uuid.UUID) ([]uuid.UUID, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// ContactRepositoryInterface defines the interface for contact repository operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	GetByID(id uuid.UUID) (*models.Contact, error)
	ListByOwner(ownerAdminID uuid.UUID) ([]models.Contact, error)
	ListByProgram(programID uuid.UUID) ([]models.Contact, error)
	Delete(id uuid.UUID) error
}

// FollowUpRepositoryInterface defines the interface for follow-up ledger operations
type FollowUpRepositoryInterface interface {
	CreateBatch(assignments []models.FollowUpAssignment) error
	CountForOwnerOnDate(ownerAdminID uuid.UUID, date time.Time) (int64, error)
	GetByContactAndDate(contactID uuid.UUID, date time.Time) (*models.FollowUpAssignment, error)
	ListForOwnerOnDate(ownerAdminID uuid.UUID, date time.Time, status *models.CallStatus) ([]models.FollowUpAssignment, error)
	ListForProgramOnDate(programID uuid.UUID, date time.Time, status *models.CallStatus) ([]models.FollowUpAssignment, error)
	Update(assignment *models.FollowUpAssignment) error
	DeleteForProgramOnDate(programID uuid.UUID, date time.Time) (int64, error)
	DistinctDatesForProgram(programID uuid.UUID) ([]time.Time, error)
}

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	Create(session *models.Session) error
	GetByID(id uuid.UUID) (*models.Session, error)
	ListByProgram(programID uuid.UUID) ([]models.Session, error)
	DeleteForProgramOnDate(programID uuid.UUID, date time.Time) (int64, error)
}
