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

// ProgramService handles program and enrollment management
type ProgramService struct {
	repo      *repository.ProgramRepository
	userRepo  *repository.UserRepository
	validator *validator.Validate
}

// NewProgramService creates a new program service
func NewProgramService(repo *repository.ProgramRepository, userRepo *repository.UserRepository, validator *validator.Validate) *ProgramService {
	return &ProgramService{repo: repo, userRepo: userRepo, validator: validator}
}

// CreateProgramRequest represents the request to create a program
type CreateProgramRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// EnrollRequest represents the request to enroll a user in a program
type EnrollRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// ProgramResponse represents a program in API responses
type ProgramResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// ProgramListResponse represents a paginated program listing
type ProgramListResponse struct {
	Programs []ProgramResponse `json:"programs"`
	Total    int64             `json:"total"`
}

// EnrollmentResponse represents an enrollment with the enrolled user
type EnrollmentResponse struct {
	ID       uuid.UUID       `json:"id"`
	UserID   uuid.UUID       `json:"user_id"`
	FullName string          `json:"full_name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
}

// CreateProgram creates a new program
func (s *ProgramService) CreateProgram(req *CreateProgramRequest) (*ProgramResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	program := &models.Program{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(program); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrProgramExists
		}
		return nil, apperrors.NewStoreError("create program", err)
	}

	resp := toProgramResponse(program)
	return &resp, nil
}

// GetProgramByName retrieves a program by its exact name
func (s *ProgramService) GetProgramByName(name string) (*ProgramResponse, error) {
	program, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, apperrors.NewStoreError("get program by name", err)
	}
	resp := toProgramResponse(program)
	return &resp, nil
}

// GetProgram retrieves a program by ID
func (s *ProgramService) GetProgram(id uuid.UUID) (*ProgramResponse, error) {
	program, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, apperrors.NewStoreError("get program", err)
	}
	resp := toProgramResponse(program)
	return &resp, nil
}

// ListPrograms retrieves programs with pagination
func (s *ProgramService) ListPrograms(limit, offset int) (*ProgramListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	programs, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, apperrors.NewStoreError("list programs", err)
	}

	responses := make([]ProgramResponse, len(programs))
	for i, program := range programs {
		responses[i] = toProgramResponse(&program)
	}
	return &ProgramListResponse{Programs: responses, Total: total}, nil
}

// Enroll adds a user to a program. Enrolling twice is a conflict.
func (s *ProgramService) Enroll(programID uuid.UUID, req *EnrollRequest) (*EnrollmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, apperrors.NewStoreError("get program", err)
	}

	user, err := s.userRepo.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStoreError("get user", err)
	}

	enrollment := &models.Enrollment{
		ProgramID: programID,
		UserID:    req.UserID,
	}

	if err := s.repo.CreateEnrollment(enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEnrollmentExists
		}
		return nil, apperrors.NewStoreError("create enrollment", err)
	}

	return &EnrollmentResponse{
		ID:       enrollment.ID,
		UserID:   user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// ListEnrollments retrieves a program's enrollments
func (s *ProgramService) ListEnrollments(programID uuid.UUID) ([]EnrollmentResponse, error) {
	if _, err := s.repo.GetByID(programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, apperrors.NewStoreError("get program", err)
	}

	enrollments, err := s.repo.ListEnrollments(programID)
	if err != nil {
		return nil, apperrors.NewStoreError("list enrollments", err)
	}

	responses := make([]EnrollmentResponse, len(enrollments))
	for i, enrollment := range enrollments {
		responses[i] = EnrollmentResponse{
			ID:       enrollment.ID,
			UserID:   enrollment.UserID,
			FullName: enrollment.User.FullName,
			Email:    enrollment.User.Email,
			Role:     enrollment.User.Role,
		}
	}
	return responses, nil
}

func toProgramResponse(program *models.Program) ProgramResponse {
	return ProgramResponse{
		ID:          program.ID,
		Name:        program.Name,
		Description: program.Description,
	}
}
