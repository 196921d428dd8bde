package selector

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sync"
	"testing"
)

// stubSource hands out a preconfigured candidate file.
type stubSource struct {
	file     File
	err      error
	prompted int
}

func (s *stubSource) Prompt(cb func(File, error)) {
	s.prompted++
	cb(s.file, s.err)
}

// notifyRecorder captures notifier invocations across goroutines.
type notifyRecorder struct {
	mu       sync.Mutex
	titles   []string
	messages []string
}

func (n *notifyRecorder) notify(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.titles = append(n.titles, title)
	n.messages = append(n.messages, message)
}

func (n *notifyRecorder) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.titles)
}

// slowFile blocks Open's reader until released, to hold a selection in
// flight for as long as a test needs.
type slowFile struct {
	name    string
	mime    string
	data    []byte
	release chan struct{}
}

func newSlowFile(name, mime string, data []byte) *slowFile {
	return &slowFile{name: name, mime: mime, data: data, release: make(chan struct{})}
}

func (f *slowFile) Name() string     { return f.name }
func (f *slowFile) MIMEType() string { return f.mime }

func (f *slowFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(&gatedReader{gate: f.release, r: bytes.NewReader(f.data)}), nil
}

type gatedReader struct {
	gate <-chan struct{}
	r    io.Reader
}

func (g *gatedReader) Read(p []byte) (int, error) {
	<-g.gate
	return g.r.Read(p)
}

// makeTestPNG encodes a solid-color PNG of the given dimensions.
func makeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{255, 0, 0, 255}}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
	return buf.Bytes()
}
