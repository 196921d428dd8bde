package selector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"strings"
	"time"

	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/dixieflatline76/Pique/util"
	"github.com/dixieflatline76/Pique/util/log"
)

// Selection errors reported by Loader.Select. User-facing feedback goes
// through the Notifier; these values exist so callers can test outcomes.
var (
	ErrNotAnImage        = errors.New("file is not an image")
	ErrSelectionInFlight = errors.New("another selection is in progress")
	ErrTooLarge          = errors.New("file exceeds the size cap")
)

// Result is delivered to the selection callback exactly once per
// successful selection. Ownership of the decoded image transfers to the
// callback; the loader keeps no reference.
type Result struct {
	ID      string      // correlation id, also used in logs
	Name    string      // name of the selected file
	DataURL string      // raw bytes as a base64 data URL
	Image   image.Image // decoded bitmap
}

// Callback receives the outcome of one successful selection.
type Callback func(Result)

// Notifier surfaces a blocking, user-facing message. The application
// wires this to a modal dialog; tests substitute their own.
type Notifier func(title, message string)

// Options tune a Loader. Zero values keep the permissive defaults:
// no size cap and no read/decode timeout.
type Options struct {
	MaxBytes int           // reject files larger than this; 0 disables the check
	Timeout  time.Duration // abandon a selection after this long; 0 disables
}

// Loader validates a candidate file and runs the asynchronous
// read/decode pipeline. At most one selection is in flight at a time;
// attempts to start another are rejected until the current one settles.
type Loader struct {
	cb        Callback
	notify    Notifier
	opts      Options
	inFlight  *semaphore.Weighted
	loading   *util.SafeFlag
	onLoading func(bool)
	completed *util.SafeCounter
}

// NewLoader creates a loader delivering results to cb and user-facing
// failures to notify.
func NewLoader(cb Callback, notify Notifier, opts Options) *Loader {
	if cb == nil {
		cb = func(Result) {}
	}
	if notify == nil {
		notify = func(title, message string) {
			log.Printf("%s: %s", title, message)
		}
	}
	return &Loader{
		cb:        cb,
		notify:    notify,
		opts:      opts,
		inFlight:  semaphore.NewWeighted(1),
		loading:   util.NewSafeBool(),
		completed: util.NewSafeInt(),
	}
}

// Loading reports whether a selection pipeline is currently running.
func (l *Loader) Loading() bool {
	return l.loading.Value()
}

// Completed returns the number of selections delivered so far.
func (l *Loader) Completed() int {
	return l.completed.Value()
}

// SetLoadingHook registers a hook called on every loading state edge.
// The hook runs on the pipeline goroutine; UI callers must hop to the
// render thread themselves.
func (l *Loader) SetLoadingHook(h func(loading bool)) {
	l.onLoading = h
}

// Notify forwards a message to the loader's notifier.
func (l *Loader) Notify(title, message string) {
	l.notify(title, message)
}

// Select validates f and starts the read/decode pipeline. The media type
// gate runs synchronously and leaves all state untouched when it fails;
// everything after runs on its own goroutine.
func (l *Loader) Select(f File) error {
	mime := f.MIMEType()
	if !strings.HasPrefix(mime, "image/") {
		log.Printf("Rejected %s: declared type %q is not an image", f.Name(), mime)
		l.notify("Unsupported file",
			fmt.Sprintf("%s is not an image file. Please choose a JPG, PNG or WebP image.", f.Name()))
		return ErrNotAnImage
	}

	if !l.inFlight.TryAcquire(1) {
		log.Debugf("Ignoring %s: selection already in flight", f.Name())
		return ErrSelectionInFlight
	}

	id := uuid.NewString()
	l.setLoading(true)
	log.Debugf("Selection %s started: %s (%s)", id, f.Name(), mime)

	go l.run(id, f, mime)
	return nil
}

func (l *Loader) run(id string, f File, mime string) {
	// Release before the loading flag clears, so a false flag always
	// means a new selection will be admitted.
	defer l.setLoading(false)
	defer l.inFlight.Release(1)

	ctx := context.Background()
	if l.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.opts.Timeout)
		defer cancel()
	}

	res, err := l.load(ctx, id, f, mime)
	if err != nil {
		log.Printf("Selection %s failed: %v", id, err)
		l.notify("Could not load image",
			fmt.Sprintf("%s could not be loaded. The file may be damaged or in an unsupported format.", f.Name()))
		return
	}

	l.cb(*res)
	l.completed.Increment()
	log.Debugf("Selection %s delivered: %dx%d px",
		id, res.Image.Bounds().Dx(), res.Image.Bounds().Dy())
}

// load reads the file contents and decodes them. Read completion
// strictly precedes decode start, which strictly precedes delivery.
func (l *Loader) load(ctx context.Context, id string, f File, mime string) (*Result, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Name(), err)
	}
	defer rc.Close()

	raw, err := l.readAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Name(), err)
	}

	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	img, err := decodeImage(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f.Name(), err)
	}

	return &Result{
		ID:      id,
		Name:    f.Name(),
		DataURL: EncodeDataURL(mime, raw),
		Image:   img,
	}, nil
}

// readAll reads the full contents, honoring the optional size cap.
func (l *Loader) readAll(r io.Reader) ([]byte, error) {
	if l.opts.MaxBytes <= 0 {
		return io.ReadAll(r)
	}
	raw, err := io.ReadAll(io.LimitReader(r, int64(l.opts.MaxBytes)+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > l.opts.MaxBytes {
		return nil, ErrTooLarge
	}
	return raw, nil
}

func (l *Loader) setLoading(v bool) {
	l.loading.Set(v)
	if l.onLoading != nil {
		l.onLoading(v)
	}
}

// decodeImage decodes with the registered formats. The decoder itself
// cannot be interrupted, so cancellation is handled around it.
func decodeImage(ctx context.Context, raw []byte) (image.Image, error) {
	type decodeResult struct {
		img image.Image
		err error
	}
	resultChan := make(chan decodeResult, 1)

	go func() {
		img, _, err := image.Decode(bytes.NewReader(raw))
		resultChan <- decodeResult{img: img, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultChan:
		if result.err != nil {
			return nil, result.err
		}
		return result.img, nil
	}
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
