package wizard

import (
	"sync"

	"trendclip/internal/model"
)

// PackageKey identifies the inputs a content package was generated for.
type PackageKey struct {
	HeadlineID string
	Length     model.VideoLength
}

// State is a point-in-time copy of the wizard selections. Nil pointers and the
// empty VideoLength mean absent.
type State struct {
	Category    *model.Category
	Headline    *model.Headline
	VideoLength model.VideoLength
	VideoIdeas  []string
	Package     *model.ContentPackage
	PackageKey  PackageKey

	// Session changes on every Reset.
	Session uint64
}

func (s State) clone() State {
	out := s
	if s.Category != nil {
		c := *s.Category
		out.Category = &c
	}
	if s.Headline != nil {
		h := *s.Headline
		out.Headline = &h
	}
	if s.VideoIdeas != nil {
		out.VideoIdeas = append([]string(nil), s.VideoIdeas...)
	}
	if s.Package != nil {
		p := s.Package.Clone()
		out.Package = &p
	}
	return out
}

// Key reports the package key for the current headline and length, and
// whether both are present.
func (s State) Key() (PackageKey, bool) {
	if s.Headline == nil || s.VideoLength == "" {
		return PackageKey{}, false
	}
	return PackageKey{HeadlineID: s.Headline.ID, Length: s.VideoLength}, true
}

// CachedPackage returns the stored package only if it was generated for the
// current headline and length.
func (s State) CachedPackage() *model.ContentPackage {
	key, ok := s.Key()
	if !ok || s.Package == nil || s.PackageKey != key {
		return nil
	}
	return s.Package
}

// Store holds the wizard selections for one process. All access goes through
// the mutex so readers always see a whole state.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Session: 1}}
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *Store) SetCategory(c model.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Category = &c
}

func (s *Store) SetHeadline(h model.Headline) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Headline = &h
}

func (s *Store) SetVideoLength(l model.VideoLength) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.VideoLength = l
}

func (s *Store) SetVideoIdeas(ideas []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.VideoIdeas = append([]string{}, ideas...)
}

// SetContentPackage replaces any stored package.
func (s *Store) SetContentPackage(key PackageKey, p model.ContentPackage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p.Clone()
	s.state.Package = &cp
	s.state.PackageKey = key
}

// Reset clears every selection and starts a new session.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Session: s.state.Session + 1}
}

// UpdateIf runs fn on the live state if pred holds for it, both under the
// write lock. It reports whether fn ran.
func (s *Store) UpdateIf(pred func(State) bool, fn func(*State)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !pred(s.state) {
		return false
	}
	fn(&s.state)
	return true
}
