package repository

import (
	"time"

	"temple-outreach-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for derived sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session
func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(id uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListByProgram retrieves a program's live sessions, most recent first
func (r *SessionRepository) ListByProgram(programID uuid.UUID) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.
		Where("program_id = ?", programID).
		Order("session_date DESC").
		Find(&sessions).Error
	return sessions, err
}

// DeleteForProgramOnDate soft-deletes the session(s) for a program on a
// calendar day. Returns the number of rows deleted.
func (r *SessionRepository) DeleteForProgramOnDate(programID uuid.UUID, date time.Time) (int64, error) {
	start, end := models.DayBounds(date)
	result := r.db.
		Where("program_id = ? AND session_date >= ? AND session_date < ?", programID, start, end).
		Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
