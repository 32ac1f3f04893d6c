package repository

import (
	"time"

	"temple-outreach-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowUpRepository handles database operations for the follow-up ledger
type FollowUpRepository struct {
	db *gorm.DB
}

// NewFollowUpRepository creates a new follow-up repository
func NewFollowUpRepository(db *gorm.DB) *FollowUpRepository {
	return &FollowUpRepository{db: db}
}

// CreateBatch inserts a batch of assignments in a single statement
func (r *FollowUpRepository) CreateBatch(assignments []models.FollowUpAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.Create(&assignments).Error
}

// CountForOwnerOnDate counts live assignments on a date whose contact belongs
// to the given admin. Used as the pre-insert conflict check.
func (r *FollowUpRepository) CountForOwnerOnDate(ownerAdminID uuid.UUID, date time.Time) (int64, error) {
	start, end := models.DayBounds(date)
	var count int64
	err := r.db.Model(&models.FollowUpAssignment{}).
		Where("contact_id IN (?)",
			r.db.Model(&models.Contact{}).Select("id").Where("owner_admin_id = ?", ownerAdminID),
		).
		Where("follow_up_date >= ? AND follow_up_date < ?", start, end).
		Count(&count).Error
	return count, err
}

// GetByContactAndDate retrieves the single live assignment for a contact on a date
func (r *FollowUpRepository) GetByContactAndDate(contactID uuid.UUID, date time.Time) (*models.FollowUpAssignment, error) {
	start, end := models.DayBounds(date)
	var assignment models.FollowUpAssignment
	err := r.db.
		Where("contact_id = ? AND follow_up_date >= ? AND follow_up_date < ?", contactID, start, end).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListForOwnerOnDate retrieves assignments for an admin's contact set on a
// date, sorted by contact display name.
func (r *FollowUpRepository) ListForOwnerOnDate(ownerAdminID uuid.UUID, date time.Time, status *models.CallStatus) ([]models.FollowUpAssignment, error) {
	start, end := models.DayBounds(date)
	query := r.db.
		Joins("JOIN contacts ON contacts.id = follow_up_assignments.contact_id").
		Where("contacts.owner_admin_id = ?", ownerAdminID).
		Where("follow_up_assignments.follow_up_date >= ? AND follow_up_assignments.follow_up_date < ?", start, end)
	if status != nil {
		query = query.Where("follow_up_assignments.status = ?", *status)
	}

	var assignments []models.FollowUpAssignment
	err := query.
		Order("contacts.full_name ASC").
		Preload("Contact").
		Find(&assignments).Error
	return assignments, err
}

// ListForProgramOnDate retrieves assignments for a program's contacts on a
// date, sorted by contact display name.
func (r *FollowUpRepository) ListForProgramOnDate(programID uuid.UUID, date time.Time, status *models.CallStatus) ([]models.FollowUpAssignment, error) {
	start, end := models.DayBounds(date)
	query := r.db.
		Joins("JOIN contacts ON contacts.id = follow_up_assignments.contact_id").
		Where("contacts.program_id = ?", programID).
		Where("follow_up_assignments.follow_up_date >= ? AND follow_up_assignments.follow_up_date < ?", start, end)
	if status != nil {
		query = query.Where("follow_up_assignments.status = ?", *status)
	}

	var assignments []models.FollowUpAssignment
	err := query.
		Order("contacts.full_name ASC").
		Preload("Contact").
		Find(&assignments).Error
	return assignments, err
}

// Update persists changes to an assignment
func (r *FollowUpRepository) Update(assignment *models.FollowUpAssignment) error {
	return r.db.Save(assignment).Error
}

// DeleteForProgramOnDate soft-deletes all assignments for a program whose
// date falls on the given calendar day. Returns the number of rows deleted.
func (r *FollowUpRepository) DeleteForProgramOnDate(programID uuid.UUID, date time.Time) (int64, error) {
	start, end := models.DayBounds(date)
	result := r.db.
		Where("contact_id IN (?)",
			r.db.Model(&models.Contact{}).Select("id").Where("program_id = ?", programID),
		).
		Where("follow_up_date >= ? AND follow_up_date < ?", start, end).
		Delete(&models.FollowUpAssignment{})
	return result.RowsAffected, result.Error
}

// DistinctDatesForProgram returns the distinct follow-up dates present among
// live assignments for a program's contacts, oldest first.
func (r *FollowUpRepository) DistinctDatesForProgram(programID uuid.UUID) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.Model(&models.FollowUpAssignment{}).
		Distinct("follow_up_date").
		Where("contact_id IN (?)",
			r.db.Model(&models.Contact{}).Select("id").Where("program_id = ?", programID),
		).
		Order("follow_up_date ASC").
		Pluck("follow_up_date", &dates).Error
	return dates, err
}
