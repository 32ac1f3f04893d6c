package repository

import (
	"temple-outreach-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgramRepository handles database operations for programs and enrollments
type ProgramRepository struct {
	db *gorm.DB
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// Create inserts a new program
func (r *ProgramRepository) Create(program *models.Program) error {
	return r.db.Create(program).Error
}

// GetByID retrieves a program by ID
func (r *ProgramRepository) GetByID(id uuid.UUID) (*models.Program, error) {
	var program models.Program
	err := r.db.First(&program, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// GetByName retrieves a program by name
func (r *ProgramRepository) GetByName(name string) (*models.Program, error) {
	var program models.Program
	err := r.db.First(&program, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// GetAll retrieves programs with pagination
func (r *ProgramRepository) GetAll(limit, offset int) ([]models.Program, int64, error) {
	var programs []models.Program
	var total int64

	if err := r.db.Model(&models.Program{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&programs).Error
	return programs, total, err
}

// CreateEnrollment inserts an enrollment
func (r *ProgramRepository) CreateEnrollment(enrollment *models.Enrollment) error {
	return r.db.Create(enrollment).Error
}

// ListEnrollments retrieves a program's enrollments with the enrolled users
func (r *ProgramRepository) ListEnrollments(programID uuid.UUID) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.
		Where("program_id = ?", programID).
		Preload("User").
		Find(&enrollments).Error
	return enrollments, err
}
