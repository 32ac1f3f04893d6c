package service

import (
	"errors"
	"time"

	"temple-outreach-backend/internal/database/models"
	apperrors "temple-outreach-backend/internal/errors"
	"temple-outreach-backend/internal/logger"
	"temple-outreach-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Placeholder values for sessions materialized from follow-up dates. Admins
// fill in the real topic and speaker later.
const (
	PlaceholderTopic   = "Session"
	PlaceholderSpeaker = "To be updated"
)

// SessionService materializes program sessions from follow-up activity and
// serves the session listing.
type SessionService struct {
	db           *gorm.DB
	repo         *repository.SessionRepository
	followUpRepo *repository.FollowUpRepository
	programRepo  *repository.ProgramRepository
}

// NewSessionService creates a new session service
func NewSessionService(db *gorm.DB, repo *repository.SessionRepository, followUpRepo *repository.FollowUpRepository, programRepo *repository.ProgramRepository) *SessionService {
	return &SessionService{
		db:           db,
		repo:         repo,
		followUpRepo: followUpRepo,
		programRepo:  programRepo,
	}
}

// SessionResponse represents a session in API responses
type SessionResponse struct {
	ID          uuid.UUID `json:"id"`
	ProgramID   uuid.UUID `json:"program_id"`
	SessionDate string    `json:"session_date"`
	Topic       string    `json:"topic"`
	SpeakerName string    `json:"speaker_name"`
}

// missingSessionDates returns the follow-up dates that have no session yet.
// Both inputs are compared at day granularity.
func missingSessionDates(followUpDates []time.Time, sessions []models.Session) []time.Time {
	existing := make(map[time.Time]struct{}, len(sessions))
	for _, session := range sessions {
		existing[models.TruncateToDay(session.SessionDate)] = struct{}{}
	}

	var missing []time.Time
	for _, date := range followUpDates {
		day := models.TruncateToDay(date)
		if _, ok := existing[day]; ok {
			continue
		}
		existing[day] = struct{}{}
		missing = append(missing, day)
	}
	return missing
}

// ListForProgram returns a program's sessions, newest first, after
// reconciling them against the program's follow-up dates: every date that has
// assignments gets a placeholder session. Repeated calls create nothing new.
func (s *SessionService) ListForProgram(programID uuid.UUID) ([]SessionResponse, error) {
	if _, err := s.programRepo.GetByID(programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, apperrors.NewStoreError("get program", err)
	}

	if err := s.EnsureSessions(programID); err != nil {
		return nil, err
	}

	sessions, err := s.repo.ListByProgram(programID)
	if err != nil {
		return nil, apperrors.NewStoreError("list sessions", err)
	}

	responses := make([]SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = SessionResponse{
			ID:          session.ID,
			ProgramID:   session.ProgramID,
			SessionDate: session.SessionDate.Format("2006-01-02"),
			Topic:       session.Topic,
			SpeakerName: session.SpeakerName,
		}
	}
	return responses, nil
}

// EnsureSessions creates placeholder sessions for every follow-up date of the
// program that lacks one. Concurrent materialization of the same date is
// absorbed by the unique index on (program, date).
func (s *SessionService) EnsureSessions(programID uuid.UUID) error {
	dates, err := s.followUpRepo.DistinctDatesForProgram(programID)
	if err != nil {
		return apperrors.NewStoreError("list follow-up dates", err)
	}
	if len(dates) == 0 {
		return nil
	}

	sessions, err := s.repo.ListByProgram(programID)
	if err != nil {
		return apperrors.NewStoreError("list sessions", err)
	}

	for _, date := range missingSessionDates(dates, sessions) {
		session := &models.Session{
			ProgramID:   programID,
			SessionDate: date,
			Topic:       PlaceholderTopic,
			SpeakerName: PlaceholderSpeaker,
		}
		if err := s.repo.Create(session); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return apperrors.NewStoreError("create session", err)
		}
		logger.New().WithFields(map[string]interface{}{
			"program_id": programID,
			"date":       date.Format("2006-01-02"),
		}).Info("session materialized from follow-up date")
	}
	return nil
}
