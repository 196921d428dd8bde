package selector

import (
	"encoding/base64"
	"strings"
)

// EncodeDataURL renders raw bytes as a base64 data URL for the given
// media type, e.g. "data:image/png;base64,iVBOR...".
func EncodeDataURL(mimeType string, data []byte) string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mimeType) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mimeType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}
