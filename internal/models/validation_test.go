package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTextTrims(t *testing.T) {
	text, err := NormalizeText("  Buy milk \n")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", text)
}

func TestNormalizeTextBounds(t *testing.T) {
	text, err := NormalizeText(strings.Repeat("a", MaxTextLength))
	require.NoError(t, err)
	assert.Len(t, text, MaxTextLength)

	_, err = NormalizeText(strings.Repeat("a", MaxTextLength+1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNormalizeTextRejectsEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := NormalizeText(raw)
		require.Error(t, err, "input %q", raw)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "text", verr.Field)
		assert.Equal(t, "text must not be empty", verr.Message)
	}
}

func TestNormalizeTextTrailingWhitespaceDoesNotCount(t *testing.T) {
	// 500 meaningful characters padded with whitespace is still valid.
	raw := "  " + strings.Repeat("b", MaxTextLength) + "  "
	text, err := NormalizeText(raw)
	require.NoError(t, err)
	assert.Len(t, text, MaxTextLength)
}
