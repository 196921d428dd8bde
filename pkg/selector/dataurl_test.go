package selector

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDataURL(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G'}
	url := EncodeDataURL("image/png", raw)

	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestEncodeDataURL_Empty(t *testing.T) {
	assert.Equal(t, "data:image/webp;base64,", EncodeDataURL("image/webp", nil))
}
