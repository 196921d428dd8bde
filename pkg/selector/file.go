package selector

import (
	"bytes"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// File is one candidate object handed to the selector, from either the
// platform file dialog or a drop gesture. It carries the declared media
// type of the underlying object; nothing is read until Open is called.
type File interface {
	Name() string
	MIMEType() string
	Open() (io.ReadCloser, error)
}

// uriFile adapts a fyne URI to the File interface.
type uriFile struct {
	uri fyne.URI
}

// FileFromURI wraps a fyne URI, typically one delivered by a window drop.
func FileFromURI(u fyne.URI) File {
	return &uriFile{uri: u}
}

func (f *uriFile) Name() string {
	return f.uri.Name()
}

func (f *uriFile) MIMEType() string {
	return f.uri.MimeType()
}

func (f *uriFile) Open() (io.ReadCloser, error) {
	return storage.Reader(f.uri)
}

// openedFile wraps a reader the file dialog has already opened. The
// reader is handed out once; a second Open reopens the URI.
type openedFile struct {
	rc   fyne.URIReadCloser
	used bool
}

func newOpenedFile(rc fyne.URIReadCloser) File {
	return &openedFile{rc: rc}
}

func (f *openedFile) Name() string {
	return f.rc.URI().Name()
}

func (f *openedFile) MIMEType() string {
	return f.rc.URI().MimeType()
}

func (f *openedFile) Open() (io.ReadCloser, error) {
	if f.used {
		return storage.Reader(f.rc.URI())
	}
	f.used = true
	return f.rc, nil
}

// MemFile is an in-memory File. It backs tests and lets headless callers
// feed the loader without touching the filesystem.
type MemFile struct {
	name string
	mime string
	data []byte
}

// NewMemFile creates a MemFile with the given declared media type.
func NewMemFile(name, mime string, data []byte) *MemFile {
	return &MemFile{name: name, mime: mime, data: data}
}

// Name returns the file name.
func (f *MemFile) Name() string { return f.name }

// MIMEType returns the declared media type.
func (f *MemFile) MIMEType() string { return f.mime }

// Open returns a reader over the in-memory contents.
func (f *MemFile) Open() (io.ReadCloser, error) {
	if f.data == nil {
		return nil, fmt.Errorf("%s has no contents", f.name)
	}
	return io.NopCloser(bytes.NewReader(f.data)), nil
}
