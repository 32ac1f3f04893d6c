package service

import (
	"errors"
	"fmt"
	"time"

	"temple-outreach-backend/internal/database/models"
	apperrors "temple-outreach-backend/internal/errors"
	"temple-outreach-backend/internal/logger"
	"temple-outreach-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// FollowUpService handles the follow-up list workflow: partitioning an
// admin's contacts across volunteers, reading and deleting lists, and
// recording call outcomes.
type FollowUpService struct {
	db          *gorm.DB
	repo        *repository.FollowUpRepository
	contactRepo *repository.ContactRepository
	userRepo    *repository.UserRepository
	sessionRepo *repository.SessionRepository
	programRepo *repository.ProgramRepository
	validator   *validator.Validate
	sanitizer   *bluemonday.Policy
}

// NewFollowUpService creates a new follow-up service
func NewFollowUpService(db *gorm.DB, repo *repository.FollowUpRepository, contactRepo *repository.ContactRepository, userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository, programRepo *repository.ProgramRepository, validator *validator.Validate) *FollowUpService {
	return &FollowUpService{
		db:          db,
		repo:        repo,
		contactRepo: contactRepo,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		programRepo: programRepo,
		validator:   validator,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

// CreateFollowUpListRequest represents the request to create a follow-up list.
// The owning admin is never part of the body; it is bound to the verified caller.
type CreateFollowUpListRequest struct {
	VolunteerIDs []uuid.UUID `json:"volunteer_ids" validate:"required,min=1"`
	Date         string      `json:"date" validate:"required"`
}

// CreateFollowUpListResponse represents the result of creating a follow-up list
type CreateFollowUpListResponse struct {
	CreatedCount int    `json:"created_count"`
	Date         string `json:"date"`
}

// RecordOutcomeRequest represents the request to record a call outcome.
// Remarks distinguishes "not provided" (nil) from "cleared" (empty string).
type RecordOutcomeRequest struct {
	ContactID uuid.UUID          `json:"contact_id" validate:"required"`
	Date      string             `json:"date" validate:"required"`
	Status    *models.CallStatus `json:"status,omitempty"`
	Remarks   *string            `json:"remarks,omitempty"`
}

// DeleteFollowUpListResponse reports what a list deletion removed
type DeleteFollowUpListResponse struct {
	DeletedAssignments int64 `json:"deleted_assignments"`
	DeletedSessions    int64 `json:"deleted_sessions"`
}

// FollowUpAssignmentResponse represents an assignment in API responses
type FollowUpAssignmentResponse struct {
	ID           uuid.UUID         `json:"id"`
	ContactID    uuid.UUID         `json:"contact_id"`
	ContactName  string            `json:"contact_name"`
	ContactPhone string            `json:"contact_phone"`
	VolunteerID  uuid.UUID         `json:"volunteer_id"`
	FollowUpDate string            `json:"follow_up_date"`
	Status       models.CallStatus `json:"status"`
	Remarks      string            `json:"remarks"`
	CalledByID   *uuid.UUID        `json:"called_by_id,omitempty"`
	CalledAt     *string           `json:"called_at,omitempty"`
}

// parseCalendarDate parses an ISO-8601 date, accepting a bare calendar date
// or a full timestamp. The time component is discarded either way.
func parseCalendarDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date", "must be an ISO-8601 date")
	}
	return models.TruncateToDay(t.Local()), nil
}

// partitionContacts splits contacts into contiguous near-equal buckets, one
// per volunteer, filling earlier volunteers first: the first n mod v buckets
// hold ceil(n/v) contacts, the rest floor(n/v). Deterministic for the same
// inputs.
func partitionContacts(contacts []models.Contact, volunteerIDs []uuid.UUID) [][]models.Contact {
	n := len(contacts)
	v := len(volunteerIDs)
	base := n / v
	remainder := n % v

	buckets := make([][]models.Contact, v)
	start := 0
	for i := range volunteerIDs {
		size := base
		if i < remainder {
			size++
		}
		buckets[i] = contacts[start : start+size]
		start += size
	}
	return buckets
}

// CreateList partitions the admin's contacts across the given volunteers and
// writes one not_called ledger row per contact for the date. All-or-nothing:
// an existing list for the date aborts with a conflict and zero writes.
func (s *FollowUpService) CreateList(adminID uuid.UUID, req *CreateFollowUpListRequest) (*CreateFollowUpListResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := parseCalendarDate(req.Date)
	if err != nil {
		return nil, err
	}

	// Verify the admin exists
	if _, err := s.userRepo.GetByID(adminID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStoreError("get admin", err)
	}

	// Verify all volunteers exist
	existing, err := s.userRepo.GetExistingIDs(req.VolunteerIDs)
	if err != nil {
		return nil, apperrors.NewStoreError("verify volunteers", err)
	}
	if len(existing) != len(uniqueIDs(req.VolunteerIDs)) {
		return nil, apperrors.ErrVolunteerNotFound
	}

	contacts, err := s.contactRepo.ListByOwner(adminID)
	if err != nil {
		return nil, apperrors.NewStoreError("list contacts", err)
	}

	// A contact-free admin is valid: success with zero writes
	if len(contacts) == 0 {
		return &CreateFollowUpListResponse{CreatedCount: 0, Date: date.Format("2006-01-02")}, nil
	}

	count, err := s.repo.CountForOwnerOnDate(adminID, date)
	if err != nil {
		return nil, apperrors.NewStoreError("check existing list", err)
	}
	if count > 0 {
		return nil, apperrors.ErrFollowUpListExists
	}

	buckets := partitionContacts(contacts, req.VolunteerIDs)
	assignments := make([]models.FollowUpAssignment, 0, len(contacts))
	for i, bucket := range buckets {
		for _, contact := range bucket {
			assignments = append(assignments, models.FollowUpAssignment{
				ContactID:    contact.ID,
				VolunteerID:  req.VolunteerIDs[i],
				FollowUpDate: date,
				Status:       models.StatusNotCalled,
			})
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return repository.NewFollowUpRepository(tx).CreateBatch(assignments)
	})
	if err != nil {
		// The unique index on (contact, date) backstops the check-then-insert
		// race: a concurrent creation rolls the whole batch back.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrFollowUpListExists
		}
		return nil, apperrors.NewStoreError("create follow-up list", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"admin_id":   adminID,
		"date":       date.Format("2006-01-02"),
		"volunteers": len(req.VolunteerIDs),
		"created":    len(assignments),
	}).Info("follow-up list created")

	return &CreateFollowUpListResponse{
		CreatedCount: len(assignments),
		Date:         date.Format("2006-01-02"),
	}, nil
}

// ListForProgram returns a program's assignments for a date, sorted by
// contact display name. Soft-deleted rows are excluded.
func (s *FollowUpService) ListForProgram(programID uuid.UUID, dateStr string, status *models.CallStatus) ([]FollowUpAssignmentResponse, error) {
	date, err := parseCalendarDate(dateStr)
	if err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, apperrors.ErrInvalidCallStatus
	}

	if _, err := s.programRepo.GetByID(programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, apperrors.NewStoreError("get program", err)
	}

	assignments, err := s.repo.ListForProgramOnDate(programID, date, status)
	if err != nil {
		return nil, apperrors.NewStoreError("list assignments", err)
	}
	return s.toResponses(assignments), nil
}

// ListForOwner returns the caller admin's assignments for a date, sorted by
// contact display name.
func (s *FollowUpService) ListForOwner(adminID uuid.UUID, dateStr string, status *models.CallStatus) ([]FollowUpAssignmentResponse, error) {
	date, err := parseCalendarDate(dateStr)
	if err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, apperrors.ErrInvalidCallStatus
	}

	assignments, err := s.repo.ListForOwnerOnDate(adminID, date, status)
	if err != nil {
		return nil, apperrors.NewStoreError("list assignments", err)
	}
	return s.toResponses(assignments), nil
}

// RecordOutcome updates the ledger row for (contact, date) with the call
// result. The recorder never creates rows; a missing assignment means no
// list was created for that date.
func (s *FollowUpService) RecordOutcome(callerID uuid.UUID, req *RecordOutcomeRequest) (*FollowUpAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidCallStatus
	}

	date, err := parseCalendarDate(req.Date)
	if err != nil {
		return nil, err
	}

	assignment, err := s.repo.GetByContactAndDate(req.ContactID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFollowUpAssignmentNotFound
		}
		return nil, apperrors.NewStoreError("get assignment", err)
	}

	if req.Status != nil {
		assignment.Status = *req.Status
	}
	if req.Remarks != nil {
		assignment.Remarks = s.sanitizer.Sanitize(*req.Remarks)
	}
	now := time.Now()
	assignment.CalledByID = &callerID
	assignment.CalledAt = &now

	if err := s.repo.Update(assignment); err != nil {
		return nil, apperrors.NewStoreError("update assignment", err)
	}

	resp := s.toResponse(assignment)
	return &resp, nil
}

// DeleteListForDate removes a program's assignments for a calendar day along
// with the derived session for that day. Both deletions run in one
// transaction so no orphaned session survives.
func (s *FollowUpService) DeleteListForDate(programID uuid.UUID, dateStr string) (*DeleteFollowUpListResponse, error) {
	date, err := parseCalendarDate(dateStr)
	if err != nil {
		return nil, err
	}

	if _, err := s.programRepo.GetByID(programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, apperrors.NewStoreError("get program", err)
	}

	var resp DeleteFollowUpListResponse
	err = s.db.Transaction(func(tx *gorm.DB) error {
		deletedAssignments, err := repository.NewFollowUpRepository(tx).DeleteForProgramOnDate(programID, date)
		if err != nil {
			return err
		}
		deletedSessions, err := repository.NewSessionRepository(tx).DeleteForProgramOnDate(programID, date)
		if err != nil {
			return err
		}
		resp.DeletedAssignments = deletedAssignments
		resp.DeletedSessions = deletedSessions
		return nil
	})
	if err != nil {
		return nil, apperrors.NewStoreError("delete follow-up list", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"program_id":          programID,
		"date":                date.Format("2006-01-02"),
		"deleted_assignments": resp.DeletedAssignments,
		"deleted_sessions":    resp.DeletedSessions,
	}).Info("follow-up list deleted")

	return &resp, nil
}

func (s *FollowUpService) toResponses(assignments []models.FollowUpAssignment) []FollowUpAssignmentResponse {
	responses := make([]FollowUpAssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		responses[i] = s.toResponse(&assignment)
	}
	return responses
}

func (s *FollowUpService) toResponse(assignment *models.FollowUpAssignment) FollowUpAssignmentResponse {
	response := FollowUpAssignmentResponse{
		ID:           assignment.ID,
		ContactID:    assignment.ContactID,
		ContactName:  assignment.Contact.FullName,
		ContactPhone: assignment.Contact.Phone,
		VolunteerID:  assignment.VolunteerID,
		FollowUpDate: assignment.FollowUpDate.Format("2006-01-02"),
		Status:       assignment.Status,
		Remarks:      assignment.Remarks,
		CalledByID:   assignment.CalledByID,
	}
	if assignment.CalledAt != nil {
		calledAt := assignment.CalledAt.Format(time.RFC3339)
		response.CalledAt = &calledAt
	}
	return response
}

// uniqueIDs deduplicates a UUID slice preserving order
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
