package repository

import (
	"temple-outreach-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRepository handles database operations for outreach contacts
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact
func (r *ContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// GetByID retrieves a contact by ID
func (r *ContactRepository) GetByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListByOwner retrieves an admin's contacts ordered by creation time.
// The stable order is what makes list partitioning deterministic.
func (r *ContactRepository) ListByOwner(ownerAdminID uuid.UUID) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.
		Where("owner_admin_id = ?", ownerAdminID).
		Order("created_at ASC").
		Find(&contacts).Error
	return contacts, err
}

// ListByProgram retrieves contacts attached to a program ordered by creation time
func (r *ContactRepository) ListByProgram(programID uuid.UUID) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.
		Where("program_id = ?", programID).
		Order("created_at ASC").
		Find(&contacts).Error
	return contacts, err
}

// Delete soft-deletes a contact
func (r *ContactRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}
