package service

import (
	"errors"
	"fmt"

	"temple-outreach-backend/internal/database/models"
	apperrors "temple-outreach-backend/internal/errors"
	"temple-outreach-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceService records who showed up to a session
type AttendanceService struct {
	repo        *repository.AttendanceRepository
	sessionRepo *repository.SessionRepository
	userRepo    *repository.UserRepository
	validator   *validator.Validate
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(repo *repository.AttendanceRepository, sessionRepo *repository.SessionRepository, userRepo *repository.UserRepository, validator *validator.Validate) *AttendanceService {
	return &AttendanceService{
		repo:        repo,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		validator:   validator,
	}
}

// MarkAttendanceRequest represents the request to mark attendance
type MarkAttendanceRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Present bool      `json:"present"`
}

// AttendanceResponse represents an attendance record in API responses
type AttendanceResponse struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
	FullName  string    `json:"full_name"`
	Present   bool      `json:"present"`
}

// Mark records attendance for a user at a session. Marking the same pair
// again overwrites the present flag.
func (s *AttendanceService) Mark(sessionID uuid.UUID, req *MarkAttendanceRequest) (*AttendanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.sessionRepo.GetByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, apperrors.NewStoreError("get session", err)
	}

	user, err := s.userRepo.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStoreError("get user", err)
	}

	attendance := &models.Attendance{
		SessionID: sessionID,
		UserID:    req.UserID,
		Present:   req.Present,
	}

	if err := s.repo.Upsert(attendance); err != nil {
		return nil, apperrors.NewStoreError("mark attendance", err)
	}

	return &AttendanceResponse{
		ID:        attendance.ID,
		SessionID: sessionID,
		UserID:    user.ID,
		FullName:  user.FullName,
		Present:   attendance.Present,
	}, nil
}

// ListBySession retrieves a session's attendance records
func (s *AttendanceService) ListBySession(sessionID uuid.UUID) ([]AttendanceResponse, error) {
	if _, err := s.sessionRepo.GetByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, apperrors.NewStoreError("get session", err)
	}

	attendances, err := s.repo.ListBySession(sessionID)
	if err != nil {
		return nil, apperrors.NewStoreError("list attendance", err)
	}

	responses := make([]AttendanceResponse, len(attendances))
	for i, attendance := range attendances {
		responses[i] = AttendanceResponse{
			ID:        attendance.ID,
			SessionID: attendance.SessionID,
			UserID:    attendance.UserID,
			FullName:  attendance.User.FullName,
			Present:   attendance.Present,
		}
	}
	return responses, nil
}
