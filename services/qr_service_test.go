package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTipURL(t *testing.T) {
	assert.Equal(t, "https://tips.example.com/tip/42", TipURL("https://tips.example.com", 42))
}

func TestGenerateRoomQR(t *testing.T) {
	png, err := GenerateRoomQR("https://tips.example.com", 42, 256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "expected a PNG image")
}
