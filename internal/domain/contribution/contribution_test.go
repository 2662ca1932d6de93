package contribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cragbase/cragbase/internal/shared/errors"
)

func TestNewContribution(t *testing.T) {
	boulderID := uint(4)

	t.Run("valid", func(t *testing.T) {
		c, err := NewContribution(" Ada ", "ada@example.com", 1, &boulderID, "The start holds are **wrong**.")
		require.NoError(t, err)
		assert.Equal(t, "Ada", c.Name())
		assert.Equal(t, uint(1), c.AreaID())
		assert.Equal(t, &boulderID, c.BoulderID())
		assert.False(t, c.SubmittedAt().IsZero())
	})

	tests := []struct {
		name    string
		email   string
		areaID  uint
		message string
		field   string
		rule    string
	}{
		{"bad email", "not-an-email", 1, "hi", "email", errors.RuleFormat},
		{"missing area", "ada@example.com", 0, "hi", "area_id", errors.RuleRequired},
		{"blank message", "ada@example.com", 1, "   ", "message", errors.RuleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewContribution("Ada", tt.email, tt.areaID, nil, tt.message)
			require.Error(t, err)
			fe, ok := errors.GetAppError(err).FieldError(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.rule, fe.Rule)
		})
	}
}
