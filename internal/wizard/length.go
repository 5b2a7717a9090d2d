package wizard

import (
	"context"
	"log/slog"
	"sync"

	"trendclip/internal/model"
)

const DefaultStyle = "informative"

type IdeaSource interface {
	VideoIdeas(ctx context.Context, headlines []model.NewsItem, style string) ([]string, error)
}

// LengthStep turns a length choice into video ideas. One selection is in
// flight at a time; selections made while it loads are rejected with ErrBusy.
type LengthStep struct {
	store *Store
	nav   Navigator
	ideas IdeaSource
	style string

	lifecycle Lifecycle[[]string]

	mu      sync.Mutex
	pending model.VideoLength
}

func NewLengthStep(store *Store, nav Navigator, ideas IdeaSource, style string) *LengthStep {
	if style == "" {
		style = DefaultStyle
	}
	return &LengthStep{store: store, nav: nav, ideas: ideas, style: style}
}

func (s *LengthStep) Options() []model.VideoLength {
	return model.Lengths()
}

// Enter redirects to the headline step when no headline is selected. It
// reports whether the step can be shown.
func (s *LengthStep) Enter() bool {
	if s.store.Snapshot().Headline == nil {
		s.nav.Go(StepHeadline)
		return false
	}
	return true
}

// Select requests video ideas for the current headline. On success the length
// and ideas are stored together and the wizard advances to the content step.
// Failures are returned and also kept in Status for inline display.
func (s *LengthStep) Select(ctx context.Context, length model.VideoLength) error {
	if !length.Valid() {
		return ErrUnknownLength
	}

	st := s.store.Snapshot()
	if st.Headline == nil {
		s.nav.Go(StepHeadline)
		return nil
	}
	headline := *st.Headline

	token, ok := s.lifecycle.Begin()
	if !ok {
		return ErrBusy
	}
	s.setPending(length)
	defer s.clearPending(length)

	items := []model.NewsItem{model.NewsItemFromHeadline(headline)}
	ideas, err := s.ideas.VideoIdeas(ctx, items, s.style)
	if err != nil {
		slog.Error("Failed to generate video ideas", "headline", headline.Title, "error", err)
		stepErr := &StepError{Message: msgIdeasFailed, Err: err}
		s.lifecycle.Fail(token, stepErr)
		return stepErr
	}

	if !s.lifecycle.Resolve(token, ideas) {
		slog.Debug("Discarding superseded video ideas", "length", length)
		return nil
	}

	applied := s.store.UpdateIf(func(cur State) bool {
		return cur.Session == st.Session && cur.Headline != nil && cur.Headline.ID == headline.ID
	}, func(cur *State) {
		cur.VideoLength = length
		cur.VideoIdeas = append([]string{}, ideas...)
	})
	if !applied {
		slog.Debug("Discarding video ideas for a stale headline", "headline", headline.Title)
		return nil
	}

	slog.Debug("Video ideas generated", "length", length, "count", len(ideas))
	s.nav.Go(StepContent)
	return nil
}

func (s *LengthStep) Status() Status[[]string] {
	return s.lifecycle.Status()
}

// Pending returns the length currently being requested, if any.
func (s *LengthStep) Pending() (model.VideoLength, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending, s.pending != ""
}

func (s *LengthStep) setPending(l model.VideoLength) {
	s.mu.Lock()
	s.pending = l
	s.mu.Unlock()
}

func (s *LengthStep) clearPending(l model.VideoLength) {
	s.mu.Lock()
	if s.pending == l {
		s.pending = ""
	}
	s.mu.Unlock()
}

func (s *LengthStep) Reset() {
	s.lifecycle.Reset()
	s.mu.Lock()
	s.pending = ""
	s.mu.Unlock()
}
