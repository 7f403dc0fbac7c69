package inquiry

import (
	"io"
	"sync"

	"github.com/pkg/browser"
)

// Opener hands a URL to some handler.
type Opener interface {
	Open(url string) error
}

// BrowserOpener opens URLs with the platform's default handler, which for
// mailto: URLs is the user's mail client. The handler's output is discarded
// so it cannot draw over the terminal UI.
type BrowserOpener struct{}

func init() {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// RecordingOpener remembers opened URLs instead of launching anything.
// Used by tests and the draft command's --dry-run.
type RecordingOpener struct {
	mu   sync.Mutex
	urls []string
	Err  error
}

func (r *RecordingOpener) Open(url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
	return r.Err
}

// URLs returns the URLs opened so far.
func (r *RecordingOpener) URLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.urls))
	copy(out, r.urls)
	return out
}
