package auth

import (
	"errors"
	"fmt"
	"time"

	"temple-outreach-backend/internal/database/models"
	apperrors "temple-outreach-backend/internal/errors"
	"temple-outreach-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims carries the authenticated identity inside the JWT
type Claims struct {
	UserID uuid.UUID       `json:"uid"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and validates access tokens
type Service struct {
	config   *Config
	userRepo *repository.UserRepository
}

// NewService creates a new auth service
func NewService(config *Config, userRepo *repository.UserRepository) *Service {
	return &Service{config: config, userRepo: userRepo}
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt string          `json:"expires_at"`
	UserID    uuid.UUID       `json:"user_id"`
	FullName  string          `json:"full_name"`
	Role      models.UserRole `json:"role"`
}

// Login verifies credentials and issues a signed token. Inactive users are
// rejected even with the right password.
func (s *Service) Login(req *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.NewStoreError("get user by email", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	expiresAt := time.Now().Add(s.config.TokenTTL())
	token, err := s.IssueToken(user, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		UserID:    user.ID,
		FullName:  user.FullName,
		Role:      user.Role,
	}, nil
}

// IssueToken signs a token for the user with the given expiry
func (s *Service) IssueToken(user *models.User, expiresAt time.Time) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

// ValidateToken parses and verifies a token, returning its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	}, jwt.WithIssuer(s.config.Issuer))
	if err != nil {
		return nil, apperrors.NewAuthenticationError("invalid or expired token")
	}
	if !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid or expired token")
	}
	return claims, nil
}
