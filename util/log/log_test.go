//go:build !release

package log

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := log.Writer()
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(old)
		log.SetFlags(flags)
	})
	return &buf
}

func TestPrintf(t *testing.T) {
	buf := capture(t)
	Printf("selected %s", "image.png")
	assert.Contains(t, buf.String(), "selected image.png")
}

func TestPrintln(t *testing.T) {
	buf := capture(t)
	Println("drop accepted")
	assert.Contains(t, buf.String(), "drop accepted")
}

func TestDebugf(t *testing.T) {
	buf := capture(t)
	Debugf("loading=%v", true)
	assert.Contains(t, buf.String(), "[DEBUG] loading=true")
}
