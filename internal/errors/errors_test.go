package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorIs(t *testing.T) {
	assert.True(t, stderrors.Is(ErrUserNotFound, ErrUserNotFound))
	assert.False(t, stderrors.Is(ErrUserNotFound, ErrProgramNotFound))

	wrapped := fmt.Errorf("lookup failed: %w", ErrFollowUpAssignmentNotFound)
	assert.True(t, stderrors.Is(wrapped, ErrFollowUpAssignmentNotFound))
}

func TestAlreadyExistsErrorMessage(t *testing.T) {
	assert.Equal(t, "follow-up list already exists for this date", ErrFollowUpListExists.Error())
	assert.Equal(t, "user already exists with this email", ErrUserExists.Error())
}

func TestHelperClassification(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		checker func(error) bool
	}{
		{"not found", ErrContactNotFound, IsNotFound},
		{"already exists", ErrFollowUpListExists, IsAlreadyExists},
		{"validation", NewValidationError("date", "must be an ISO-8601 date"), IsValidation},
		{"authentication", ErrInvalidCredentials, IsAuthentication},
		{"authorization", ErrEditNotPermitted, IsAuthorization},
		{"store", NewStoreError("create", stderrors.New("connection reset")), IsStore},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.checker(tc.err))
		})
	}
}

func TestHelpersRejectOtherKinds(t *testing.T) {
	assert.False(t, IsNotFound(ErrFollowUpListExists))
	assert.False(t, IsAlreadyExists(ErrContactNotFound))
	assert.False(t, IsAuthorization(ErrInvalidCredentials))
	assert.False(t, IsStore(stderrors.New("plain")))
}

func TestHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("while creating list: %w", ErrFollowUpListExists)
	assert.True(t, IsAlreadyExists(wrapped))
}

func TestStoreErrorUnwrap(t *testing.T) {
	cause := stderrors.New("deadlock detected")
	err := NewStoreError("create follow-up list", cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "create follow-up list")
	assert.Contains(t, err.Error(), "deadlock detected")
}

func TestValidationErrorMessage(t *testing.T) {
	withField := NewValidationError("date", "is required")
	assert.Equal(t, "validation error: date - is required", withField.Error())

	withoutField := NewValidationError("", "bad payload")
	assert.Equal(t, "validation error: bad payload", withoutField.Error())
}
