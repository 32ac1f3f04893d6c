package service

import (
	"errors"
	"fmt"

	"temple-outreach-backend/internal/database/models"
	apperrors "temple-outreach-backend/internal/errors"
	"temple-outreach-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles user management with role-based edit permissions
type UserService struct {
	repo      *repository.UserRepository
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo *repository.UserRepository, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, validator: validator}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

// UpdateUserRequest represents the request to update a user. Nil fields are
// left untouched.
type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID       uuid.UUID       `json:"id"`
	FullName string          `json:"full_name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Role     models.UserRole `json:"role"`
	IsActive bool            `json:"is_active"`
}

// UserListResponse represents a paginated user listing
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}

// CreateUser registers a new user with a bcrypt-hashed password
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.UserRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, apperrors.NewStoreError("create user", err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStoreError("get user", err)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// ListUsers retrieves users with pagination
func (s *UserService) ListUsers(limit, offset int) (*UserListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	users, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, apperrors.NewStoreError("list users", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = toUserResponse(&user)
	}
	return &UserListResponse{Users: responses, Total: total}, nil
}

// UpdateUser applies the given changes to a user. The caller must outrank the
// target, except that users may always edit their own record. Role changes
// additionally require the caller to hold the target role or above.
func (s *UserService) UpdateUser(callerID uuid.UUID, callerRole models.UserRole, targetID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewStoreError("get user", err)
	}

	selfEdit := callerID == targetID
	if !selfEdit && !callerRole.Outranks(user.Role) {
		return nil, apperrors.ErrEditNotPermitted
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		newRole := models.UserRole(*req.Role)
		if !newRole.IsValid() {
			return nil, apperrors.ErrInvalidRole
		}
		// Nobody grants a role above their own, self-edit included
		if newRole.Rank() > callerRole.Rank() {
			return nil, apperrors.ErrEditNotPermitted
		}
		user.Role = newRole
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, apperrors.NewStoreError("update user", err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// DeleteUser soft-deletes a user
func (s *UserService) DeleteUser(callerRole models.UserRole, targetID uuid.UUID) error {
	user, err := s.repo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.NewStoreError("get user", err)
	}

	if !callerRole.Outranks(user.Role) {
		return apperrors.ErrEditNotPermitted
	}

	if err := s.repo.Delete(targetID); err != nil {
		return apperrors.NewStoreError("delete user", err)
	}
	return nil
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Phone:    user.Phone,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}
