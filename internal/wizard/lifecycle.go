package wizard

import "sync"

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Status is what a view may render. Value is only set in PhaseReady and Err
// only in PhaseErrored.
type Status[T any] struct {
	Phase Phase
	Value T
	Err   error
}

// Lifecycle tracks one fetch at a time. Every Begin hands out a token and only
// the holder of the latest token may settle the fetch.
type Lifecycle[T any] struct {
	mu    sync.Mutex
	phase Phase
	value T
	err   error
	token uint64
}

// Begin starts a fetch unless one is already loading.
func (l *Lifecycle[T]) Begin() (uint64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.phase == PhaseLoading {
		return 0, false
	}
	return l.start(), true
}

// Supersede starts a fetch, orphaning any fetch still in flight.
func (l *Lifecycle[T]) Supersede() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.start()
}

func (l *Lifecycle[T]) start() uint64 {
	l.token++
	l.phase = PhaseLoading
	var zero T
	l.value = zero
	l.err = nil
	return l.token
}

func (l *Lifecycle[T]) Resolve(token uint64, value T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.token || l.phase != PhaseLoading {
		return false
	}
	l.phase = PhaseReady
	l.value = value
	return true
}

func (l *Lifecycle[T]) Fail(token uint64, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.token || l.phase != PhaseLoading {
		return false
	}
	l.phase = PhaseErrored
	l.err = err
	return true
}

// Reset drops any in-flight fetch and returns to idle.
func (l *Lifecycle[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.token++
	l.phase = PhaseIdle
	var zero T
	l.value = zero
	l.err = nil
}

func (l *Lifecycle[T]) Status() Status[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := Status[T]{Phase: l.phase}
	switch l.phase {
	case PhaseReady:
		s.Value = l.value
	case PhaseErrored:
		s.Err = l.err
	}
	return s
}
