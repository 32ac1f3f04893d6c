package service

import (
	"errors"
	"fmt"

	"temple-outreach-backend/internal/database/models"
	apperrors "temple-outreach-backend/internal/errors"
	"temple-outreach-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// ContactService handles the outreach contact book
type ContactService struct {
	repo        *repository.ContactRepository
	programRepo *repository.ProgramRepository
	validator   *validator.Validate
	sanitizer   *bluemonday.Policy
}

// NewContactService creates a new contact service
func NewContactService(repo *repository.ContactRepository, programRepo *repository.ProgramRepository, validator *validator.Validate) *ContactService {
	return &ContactService{
		repo:        repo,
		programRepo: programRepo,
		validator:   validator,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

// CreateContactRequest represents the request to create a contact
type CreateContactRequest struct {
	FullName  string     `json:"full_name" validate:"required,min=2,max=100"`
	Phone     string     `json:"phone" validate:"required,max=20"`
	ProgramID *uuid.UUID `json:"program_id,omitempty"`
}

// ContactResponse represents a contact in API responses
type ContactResponse struct {
	ID           uuid.UUID  `json:"id"`
	FullName     string     `json:"full_name"`
	Phone        string     `json:"phone"`
	OwnerAdminID uuid.UUID  `json:"owner_admin_id"`
	ProgramID    *uuid.UUID `json:"program_id,omitempty"`
}

// CreateContact adds a contact to the caller admin's book
func (s *ContactService) CreateContact(ownerAdminID uuid.UUID, req *CreateContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.ProgramID != nil {
		if _, err := s.programRepo.GetByID(*req.ProgramID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProgramNotFound
			}
			return nil, apperrors.NewStoreError("get program", err)
		}
	}

	contact := &models.Contact{
		FullName:     s.sanitizer.Sanitize(req.FullName),
		Phone:        req.Phone,
		OwnerAdminID: ownerAdminID,
		ProgramID:    req.ProgramID,
	}

	if err := s.repo.Create(contact); err != nil {
		return nil, apperrors.NewStoreError("create contact", err)
	}

	resp := toContactResponse(contact)
	return &resp, nil
}

// ListContacts retrieves the caller admin's contacts in insertion order
func (s *ContactService) ListContacts(ownerAdminID uuid.UUID) ([]ContactResponse, error) {
	contacts, err := s.repo.ListByOwner(ownerAdminID)
	if err != nil {
		return nil, apperrors.NewStoreError("list contacts", err)
	}

	responses := make([]ContactResponse, len(contacts))
	for i, contact := range contacts {
		responses[i] = toContactResponse(&contact)
	}
	return responses, nil
}

// ListContactsByProgram retrieves the contacts attached to a program in
// insertion order
func (s *ContactService) ListContactsByProgram(programID uuid.UUID) ([]ContactResponse, error) {
	if _, err := s.programRepo.GetByID(programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, apperrors.NewStoreError("get program", err)
	}

	contacts, err := s.repo.ListByProgram(programID)
	if err != nil {
		return nil, apperrors.NewStoreError("list contacts by program", err)
	}

	responses := make([]ContactResponse, len(contacts))
	for i, contact := range contacts {
		responses[i] = toContactResponse(&contact)
	}
	return responses, nil
}

// DeleteContact soft-deletes a contact owned by the caller admin
func (s *ContactService) DeleteContact(ownerAdminID, contactID uuid.UUID) error {
	contact, err := s.repo.GetByID(contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContactNotFound
		}
		return apperrors.NewStoreError("get contact", err)
	}

	if contact.OwnerAdminID != ownerAdminID {
		return apperrors.NewAuthorizationError("contact belongs to another admin")
	}

	if err := s.repo.Delete(contactID); err != nil {
		return apperrors.NewStoreError("delete contact", err)
	}
	return nil
}

func toContactResponse(contact *models.Contact) ContactResponse {
	return ContactResponse{
		ID:           contact.ID,
		FullName:     contact.FullName,
		Phone:        contact.Phone,
		OwnerAdminID: contact.OwnerAdminID,
		ProgramID:    contact.ProgramID,
	}
}
