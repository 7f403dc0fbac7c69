// Package inquiry turns the contact form into a pre-filled email draft and
// hands it to the platform mail handler. Nothing is sent or stored here.
package inquiry

import (
	"context"
	"fmt"
	"log/slog"
)

// Submitter composes drafts and opens them.
type Submitter struct {
	settings Settings
	opener   Opener
	logger   *slog.Logger
	newRef   func() string
}

// NewSubmitter creates a Submitter. A nil logger discards records.
func NewSubmitter(settings Settings, opener Opener, logger *slog.Logger) *Submitter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Submitter{
		settings: settings,
		opener:   opener,
		logger:   logger,
		newRef:   NewReference,
	}
}

// Submit validates the form, composes the draft and opens it. The draft is
// returned even when opening fails so the caller can show the mailto link.
func (s *Submitter) Submit(ctx context.Context, f Form, d Diagnosis) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	if err := f.Validate(); err != nil {
		return Draft{}, err
	}

	draft := Compose(s.settings, f, d, s.newRef())

	if err := s.opener.Open(draft.MailtoURL()); err != nil {
		s.logger.Warn("open mail draft failed", "reference", draft.Reference, "error", err)
		return draft, fmt.Errorf("open mail client: %w", err)
	}

	s.logger.Info("mail draft opened",
		"reference", draft.Reference,
		"intent", f.IntentLabel(),
		"has_result", d.HasResult,
		"total", d.Result.Total,
	)
	return draft, nil
}
