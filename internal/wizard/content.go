package wizard

import (
	"context"
	"log/slog"
	"sync"

	"trendclip/internal/backend"
	"trendclip/internal/clipboard"
	"trendclip/internal/model"
)

const DefaultPlatform = "tiktok"

type PackageSource interface {
	ContentPackage(ctx context.Context, req backend.PackageRequest) (*model.ContentPackage, error)
}

type Copier interface {
	Copy(text string) clipboard.Method
}

type ContentPhase int

const (
	ContentUninitialized ContentPhase = iota
	ContentFetchPending
	ContentReady
	ContentErrored
	ContentRegenerating
)

func (p ContentPhase) String() string {
	switch p {
	case ContentUninitialized:
		return "uninitialized"
	case ContentFetchPending:
		return "fetch_pending"
	case ContentReady:
		return "ready"
	case ContentErrored:
		return "errored"
	case ContentRegenerating:
		return "regenerating"
	default:
		return "unknown"
	}
}

func (p ContentPhase) Loading() bool {
	return p == ContentFetchPending || p == ContentRegenerating
}

type Tab int

const (
	TabScript Tab = iota
	TabGraphics
	TabThumbnails
)

func (t Tab) String() string {
	switch t {
	case TabScript:
		return "script"
	case TabGraphics:
		return "graphics"
	case TabThumbnails:
		return "thumbnails"
	default:
		return "unknown"
	}
}

func Tabs() []Tab {
	return []Tab{TabScript, TabGraphics, TabThumbnails}
}

// CopyAll selects every entry of a tab in CopyText.
const CopyAll = -1

// ContentView is a render-ready projection of the content step. Package is
// only set when Phase is ContentReady and Err only when it is ContentErrored.
type ContentView struct {
	Blocked  bool
	Phase    ContentPhase
	Headline model.Headline
	Length   model.VideoLength
	Tab      Tab
	Package  *model.ContentPackage
	Err      error
}

// ContentStep generates the content package for the selected headline and
// length. The first fetch is triggered by Ensure once the step is mounted;
// Regenerate repeats the same request on demand.
type ContentStep struct {
	store    *Store
	nav      Navigator
	source   PackageSource
	copier   Copier
	platform string
	style    string

	mu        sync.Mutex
	mounted   bool
	phase     ContentPhase
	err       error
	token     uint64
	autoFired map[PackageKey]bool
	tab       Tab
}

type ContentOptions struct {
	Platform string
	Style    string
	Copier   Copier
}

func NewContentStep(store *Store, nav Navigator, source PackageSource, opts ContentOptions) *ContentStep {
	if opts.Platform == "" {
		opts.Platform = DefaultPlatform
	}
	if opts.Style == "" {
		opts.Style = DefaultStyle
	}
	return &ContentStep{
		store:     store,
		nav:       nav,
		source:    source,
		copier:    opts.Copier,
		platform:  opts.Platform,
		style:     opts.Style,
		autoFired: make(map[PackageKey]bool),
	}
}

// Mount marks the step as shown. Nothing is fetched before Mount.
func (s *ContentStep) Mount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mounted = true
}

// Unmount leaves the step. A fetch still in flight will not be applied, and a
// later Mount behaves like a fresh visit.
func (s *ContentStep) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mounted = false
	s.token++
	s.phase = ContentUninitialized
	s.err = nil
	s.autoFired = make(map[PackageKey]bool)
}

// Ensure fires the automatic fetch when the step is mounted, a headline and a
// positive duration are present, no package is cached for them, and no
// automatic fetch has fired yet for this headline and duration.
func (s *ContentStep) Ensure(ctx context.Context) ContentView {
	st := s.store.Snapshot()
	key, ok := st.Key()
	if !ok {
		return ContentView{Blocked: true}
	}

	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return ContentView{Blocked: true}
	}
	if st.CachedPackage() != nil && s.phase == ContentUninitialized {
		s.phase = ContentReady
		s.err = nil
		s.mu.Unlock()
		return s.View()
	}
	if s.autoFired[key] || s.phase.Loading() || st.VideoLength.Seconds() <= 0 {
		s.mu.Unlock()
		return s.View()
	}
	s.autoFired[key] = true
	s.mu.Unlock()

	s.fetch(ctx, st, key, false)
	return s.View()
}

// Regenerate requests a fresh package for the same inputs, replacing the
// current one on success. It is only available after a fetch has settled.
func (s *ContentStep) Regenerate(ctx context.Context) (ContentView, error) {
	st := s.store.Snapshot()
	key, ok := st.Key()
	if !ok {
		return ContentView{Blocked: true}, nil
	}

	s.mu.Lock()
	switch {
	case !s.mounted:
		s.mu.Unlock()
		return ContentView{Blocked: true}, nil
	case s.phase.Loading():
		s.mu.Unlock()
		return s.View(), ErrBusy
	case s.phase == ContentUninitialized:
		s.mu.Unlock()
		return s.View(), ErrNotReady
	}
	s.mu.Unlock()

	s.fetch(ctx, st, key, true)
	view := s.View()
	return view, view.Err
}

func (s *ContentStep) fetch(ctx context.Context, st State, key PackageKey, regenerate bool) {
	req := backend.PackageRequest{
		Idea:     st.Headline.Title,
		Platform: s.platform,
		Duration: st.VideoLength.Seconds(),
		Style:    s.style,
	}

	s.mu.Lock()
	s.token++
	token := s.token
	s.err = nil
	if regenerate {
		s.phase = ContentRegenerating
	} else {
		s.phase = ContentFetchPending
	}
	s.mu.Unlock()

	slog.Debug("Requesting content package", "idea", req.Idea, "duration", req.Duration, "regenerate", regenerate)
	pkg, err := s.source.ContentPackage(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.token {
		slog.Debug("Discarding superseded content package", "idea", req.Idea)
		return
	}

	if err != nil {
		slog.Error("Failed to generate content package", "idea", req.Idea, "error", err)
		msg := msgContentFailed
		if regenerate {
			msg = msgRegenerateFailed
		}
		s.phase = ContentErrored
		s.err = &StepError{Message: msg, Err: err}
		return
	}

	applied := s.store.UpdateIf(func(cur State) bool {
		curKey, ok := cur.Key()
		return ok && cur.Session == st.Session && curKey == key
	}, func(cur *State) {
		cp := pkg.Clone()
		cur.Package = &cp
		cur.PackageKey = key
	})
	if !applied {
		slog.Debug("Discarding content package for stale selections", "idea", req.Idea)
		s.phase = ContentUninitialized
		return
	}

	s.phase = ContentReady
	s.err = nil
}

// View projects the current state. It shows the package, the error or the
// loading phase, never a mix of them.
func (s *ContentStep) View() ContentView {
	st := s.store.Snapshot()
	if _, ok := st.Key(); !ok {
		return ContentView{Blocked: true}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mounted {
		return ContentView{Blocked: true}
	}

	view := ContentView{
		Phase:    s.phase,
		Headline: *st.Headline,
		Length:   st.VideoLength,
		Tab:      s.tab,
	}

	switch s.phase {
	case ContentReady:
		if pkg := st.CachedPackage(); pkg != nil {
			view.Package = pkg
		} else {
			view.Phase = ContentUninitialized
		}
	case ContentErrored:
		view.Err = s.err
	}
	return view
}

func (s *ContentStep) SetTab(t Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = t
}

// Copy puts the selected text on the clipboard. item indexes the script
// sections (intro, body, conclusion) or the list entries of the tab; CopyAll
// copies the whole tab. Empty text is not copied.
func (s *ContentStep) Copy(tab Tab, item int) (clipboard.Method, error) {
	view := s.View()
	if view.Package == nil {
		return clipboard.MethodNone, ErrNotReady
	}

	text := CopyText(*view.Package, tab, item)
	if text == "" || s.copier == nil {
		return clipboard.MethodNone, nil
	}
	return s.copier.Copy(text), nil
}

// startOver resets the store and this step, then returns to the first step.
// Wizard.StartOver also resets the other steps.
func (s *ContentStep) startOver() {
	s.store.Reset()

	s.mu.Lock()
	s.token++
	s.phase = ContentUninitialized
	s.err = nil
	s.autoFired = make(map[PackageKey]bool)
	s.tab = TabScript
	s.mu.Unlock()

	s.nav.Go(StepCategory)
}

// CopyText resolves the text copied for a tab entry.
func CopyText(pkg model.ContentPackage, tab Tab, item int) string {
	switch tab {
	case TabScript:
		switch item {
		case CopyAll:
			return pkg.Script.Text()
		case 0:
			return pkg.Script.Intro
		case 1:
			return pkg.Script.Body
		case 2:
			return pkg.Script.Conclusion
		}
	case TabGraphics:
		return pick(pkg.Graphics, item, pkg.GraphicsText())
	case TabThumbnails:
		return pick(pkg.Thumbnails, item, pkg.ThumbnailsText())
	}
	return ""
}

func pick(items []string, item int, all string) string {
	if item == CopyAll {
		return all
	}
	if item < 0 || item >= len(items) {
		return ""
	}
	return items[item]
}
