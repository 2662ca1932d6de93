package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ToHTMLSanitized(t *testing.T) {
	svc := NewService()

	t.Run("renders emphasis", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("The *crimp* on the left is **broken**.")
		require.NoError(t, err)
		assert.Contains(t, out, "<em>crimp</em>")
		assert.Contains(t, out, "<strong>broken</strong>")
	})

	t.Run("strips scripts", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("hello <script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
	})

	t.Run("links get nofollow", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("see https://example.com/topo")
		require.NoError(t, err)
		assert.Contains(t, out, `rel="nofollow`)
	})
}

func TestService_ToPlainText(t *testing.T) {
	out, err := NewService().ToPlainText("Sit start on the **undercling** & go left")
	require.NoError(t, err)
	assert.Equal(t, "Sit start on the undercling & go left", out)
}
