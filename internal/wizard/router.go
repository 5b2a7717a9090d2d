package wizard

import (
	"log/slog"
	"sync"
)

type Step int

const (
	StepCategory Step = iota
	StepHeadline
	StepLength
	StepContent
)

func (s Step) String() string {
	switch s {
	case StepCategory:
		return "category"
	case StepHeadline:
		return "headline"
	case StepLength:
		return "length"
	case StepContent:
		return "content"
	default:
		return "unknown"
	}
}

// Navigator moves the wizard between steps.
type Navigator interface {
	Go(step Step)
	Current() Step
}

type Router struct {
	mu      sync.RWMutex
	current Step
}

func NewRouter() *Router {
	return &Router{current: StepCategory}
}

func (r *Router) Go(step Step) {
	r.mu.Lock()
	prev := r.current
	r.current = step
	r.mu.Unlock()

	if prev != step {
		slog.Debug("Wizard step changed", "from", prev, "to", step)
	}
}

// Back returns to the previous step; the first step stays put.
func (r *Router) Back() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current > StepCategory {
		r.current--
	}
}

func (r *Router) Current() Step {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}
