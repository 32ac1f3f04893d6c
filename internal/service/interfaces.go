package service

import (
	"temple-outreach-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// FollowUpServiceInterface defines the interface for follow-up workflow operations
type FollowUpServiceInterface interface {
	CreateList(adminID uuid.UUID, req *CreateFollowUpListRequest) (*CreateFollowUpListResponse, error)
	ListForProgram(programID uuid.UUID, dateStr string, status *models.CallStatus) ([]FollowUpAssignmentResponse, error)
	ListForOwner(adminID uuid.UUID, dateStr string, status *models.CallStatus) ([]FollowUpAssignmentResponse, error)
	RecordOutcome(callerID uuid.UUID, req *RecordOutcomeRequest) (*FollowUpAssignmentResponse, error)
	DeleteListForDate(programID uuid.UUID, dateStr string) (*DeleteFollowUpListResponse, error)
}

// SessionServiceInterface defines the interface for session operations
type SessionServiceInterface interface {
	ListForProgram(programID uuid.UUID) ([]SessionResponse, error)
	EnsureSessions(programID uuid.UUID) error
}

// UserServiceInterface defines the interface for user operations
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetUser(id uuid.UUID) (*UserResponse, error)
	ListUsers(limit, offset int) (*UserListResponse, error)
	UpdateUser(callerID uuid.UUID, callerRole models.UserRole, targetID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(callerRole models.UserRole, targetID uuid.UUID) error
}

// ProgramServiceInterface defines the interface for program operations
type ProgramServiceInterface interface {
	CreateProgram(req *CreateProgramRequest) (*ProgramResponse, error)
	GetProgram(id uuid.UUID) (*ProgramResponse, error)
	GetProgramByName(name string) (*ProgramResponse, error)
	ListPrograms(limit, offset int) (*ProgramListResponse, error)
	Enroll(programID uuid.UUID, req *EnrollRequest) (*EnrollmentResponse, error)
	ListEnrollments(programID uuid.UUID) ([]EnrollmentResponse, error)
}

// ContactServiceInterface defines the interface for contact operations
type ContactServiceInterface interface {
	CreateContact(ownerAdminID uuid.UUID, req *CreateContactRequest) (*ContactResponse, error)
	ListContacts(ownerAdminID uuid.UUID) ([]ContactResponse, error)
	ListContactsByProgram(programID uuid.UUID) ([]ContactResponse, error)
	DeleteContact(ownerAdminID, contactID uuid.UUID) error
}

// AttendanceServiceInterface defines the interface for attendance operations
type AttendanceServiceInterface interface {
	Mark(sessionID uuid.UUID, req *MarkAttendanceRequest) (*AttendanceResponse, error)
	ListBySession(sessionID uuid.UUID) ([]AttendanceResponse, error)
}
