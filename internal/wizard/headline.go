package wizard

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"trendclip/internal/model"
)

const DefaultCategory = "general"

type NewsSource interface {
	TrendingNews(ctx context.Context, category, country string) ([]model.NewsItem, error)
}

// HeadlineStep loads trending headlines for the selected category. Fetch
// failures degrade to an empty list; this step never shows an error.
type HeadlineStep struct {
	store           *Store
	nav             Navigator
	news            NewsSource
	country         string
	defaultCategory string

	lifecycle Lifecycle[[]model.Headline]

	mu      sync.Mutex
	fetched string
	started bool
}

type HeadlineOptions struct {
	Country         string
	DefaultCategory string
}

func NewHeadlineStep(store *Store, nav Navigator, news NewsSource, opts HeadlineOptions) *HeadlineStep {
	if opts.DefaultCategory == "" {
		opts.DefaultCategory = DefaultCategory
	}
	return &HeadlineStep{
		store:           store,
		nav:             nav,
		news:            news,
		country:         opts.Country,
		defaultCategory: opts.DefaultCategory,
	}
}

// Query returns the category sent to the backend: the selected category's
// lower-cased name, or the default when nothing was selected.
func (s *HeadlineStep) Query() string {
	return s.queryFor(s.store.Snapshot())
}

func (s *HeadlineStep) queryFor(st State) string {
	if st.Category == nil || st.Category.Name == "" {
		return s.defaultCategory
	}
	return strings.ToLower(st.Category.Name)
}

// Enter fetches headlines as the step is shown.
func (s *HeadlineStep) Enter(ctx context.Context) Status[[]model.Headline] {
	return s.load(ctx, s.store.Snapshot())
}

// Sync fetches again only if the category changed since the last fetch.
func (s *HeadlineStep) Sync(ctx context.Context) Status[[]model.Headline] {
	st := s.store.Snapshot()

	s.mu.Lock()
	unchanged := s.started && s.fetched == s.queryFor(st)
	s.mu.Unlock()

	if unchanged {
		return s.lifecycle.Status()
	}
	return s.load(ctx, st)
}

func (s *HeadlineStep) load(ctx context.Context, st State) Status[[]model.Headline] {
	query := s.queryFor(st)

	s.mu.Lock()
	s.fetched = query
	s.started = true
	s.mu.Unlock()

	token := s.lifecycle.Supersede()

	items, err := s.news.TrendingNews(ctx, query, s.country)
	if err != nil {
		slog.Warn("Failed to load headlines", "category", query, "error", err)
		items = nil
	}

	headlines := make([]model.Headline, 0, len(items))
	for _, item := range items {
		headlines = append(headlines, item.Headline())
	}

	if s.store.Snapshot().Session != st.Session {
		slog.Debug("Discarding headlines for a reset wizard", "category", query)
		return s.lifecycle.Status()
	}
	if !s.lifecycle.Resolve(token, headlines) {
		slog.Debug("Discarding superseded headlines", "category", query)
	}
	return s.lifecycle.Status()
}

func (s *HeadlineStep) Status() Status[[]model.Headline] {
	return s.lifecycle.Status()
}

// Select stores the headline with the given id and advances to the length step.
func (s *HeadlineStep) Select(id string) error {
	h, ok := s.find(id)
	if !ok {
		return ErrUnknownHeadline
	}
	s.store.SetHeadline(h)
	s.nav.Go(StepLength)
	return nil
}

// ArticleURL looks up the original article link without selecting it.
func (s *HeadlineStep) ArticleURL(id string) (string, bool) {
	h, ok := s.find(id)
	if !ok || h.URL == "" {
		return "", false
	}
	return h.URL, true
}

func (s *HeadlineStep) find(id string) (model.Headline, bool) {
	status := s.lifecycle.Status()
	if status.Phase != PhaseReady {
		return model.Headline{}, false
	}
	for _, h := range status.Value {
		if h.ID == id {
			return h, true
		}
	}
	return model.Headline{}, false
}

// Reset forgets loaded headlines and drops any fetch in flight.
func (s *HeadlineStep) Reset() {
	s.mu.Lock()
	s.fetched = ""
	s.started = false
	s.mu.Unlock()
	s.lifecycle.Reset()
}
