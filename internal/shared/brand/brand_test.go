package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cragbase/cragbase/internal/shared/config"
)

func TestNew(t *testing.T) {
	t.Run("builds sender from name and contact email", func(t *testing.T) {
		b, err := New(config.BrandConfig{
			Name:    "Cragbase",
			URL:     "https://cragbase.example",
			Contact: config.BrandContactConfig{Email: "hello@cragbase.example"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Cragbase", b.Name())
		assert.Equal(t, "https://cragbase.example", b.URL())
		assert.Equal(t, "hello@cragbase.example", b.Contact().Email())
		assert.Equal(t, "Cragbase <hello@cragbase.example>", b.Sender())
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := New(config.BrandConfig{Contact: config.BrandContactConfig{Email: "a@b.c"}})
		assert.Error(t, err)
	})

	t.Run("contact email is required", func(t *testing.T) {
		_, err := New(config.BrandConfig{Name: "Cragbase"})
		assert.Error(t, err)
	})
}
