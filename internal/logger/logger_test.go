package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWithContext tests identity extraction from the request context
func TestWithContext(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{
			name:     "user id present",
			ctx:      context.WithValue(context.Background(), "user_id", "abc-123"), //nolint:staticcheck
			expected: "abc-123",
		},
		{
			name:     "email fallback",
			ctx:      context.WithValue(context.Background(), "email", "ramesh@temple.org"), //nolint:staticcheck
			expected: "ramesh@temple.org",
		},
		{
			name:     "anonymous caller",
			ctx:      context.Background(),
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := WithContext(tt.ctx)
			assert.Equal(t, tt.expected, log.Entry.Data["user"])
		})
	}
}

// TestWithFields tests field accumulation
func TestWithFields(t *testing.T) {
	log := New().WithFields(map[string]interface{}{"a": 1, "b": "two"})

	assert.Equal(t, 1, log.Entry.Data["a"])
	assert.Equal(t, "two", log.Entry.Data["b"])
}
