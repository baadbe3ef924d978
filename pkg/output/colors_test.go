package output

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func Test_WithHyperlink(t *testing.T) {
	t.Run("Link and name", func(t *testing.T) {
		color.NoColor = false
		actual := WithHyperlink("http://localhost:8100", "dev server")
		expected := "\x1b[96m\x1b]8;;http://localhost:8100\adev server\x1b]8;;\a\x1b[0m"

		require.Equal(t, expected, actual)
	})

	t.Run("Link only", func(t *testing.T) {
		color.NoColor = false
		actual := WithHyperlink("http://localhost:8100", "")
		expected := "\x1b[96m\x1b]8;;http://localhost:8100\ahttp://localhost:8100\x1b]8;;\a\x1b[0m"

		require.Equal(t, expected, actual)
	})

	t.Run("No color", func(t *testing.T) {
		color.NoColor = true
		actual := WithHyperlink("http://localhost:8100", "")
		expected := "http://localhost:8100"

		require.Equal(t, expected, actual)
	})
}
