package repository

import (
	"temple-outreach-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepository handles database operations for session attendance
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert records attendance for a (session, user) pair, updating the present
// flag when a row already exists. Idempotent.
func (r *AttendanceRepository) Upsert(attendance *models.Attendance) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"present", "updated_at"}),
	}).Create(attendance).Error
}

// ListBySession retrieves attendance records for a session with users loaded
func (r *AttendanceRepository) ListBySession(sessionID uuid.UUID) ([]models.Attendance, error) {
	var attendances []models.Attendance
	err := r.db.
		Where("session_id = ?", sessionID).
		Preload("User").
		Find(&attendances).Error
	return attendances, err
}
