package wizard

import (
	"errors"
	"testing"
)

func TestCategoriesCatalogue(t *testing.T) {
	got := Categories()
	if len(got) != 8 {
		t.Fatalf("Categories() returned %d entries, want 8", len(got))
	}
	seen := make(map[string]bool)
	for _, c := range got {
		if c.ID == "" || c.Name == "" || c.Icon == "" {
			t.Errorf("incomplete category %+v", c)
		}
		if seen[c.ID] {
			t.Errorf("duplicate category id %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestCategoryStepSelect(t *testing.T) {
	for _, c := range Categories() {
		t.Run(c.ID, func(t *testing.T) {
			store := NewStore()
			router := NewRouter()
			step := NewCategoryStep(store, router)

			if err := step.Select(c.ID); err != nil {
				t.Fatalf("Select() error = %v", err)
			}

			st := store.Snapshot()
			if st.Category == nil || *st.Category != c {
				t.Errorf("stored category = %+v, want %+v", st.Category, c)
			}
			if router.Current() != StepHeadline {
				t.Errorf("Current() = %v, want headline", router.Current())
			}
		})
	}
}

func TestCategoryStepUnknown(t *testing.T) {
	store := NewStore()
	router := NewRouter()
	step := NewCategoryStep(store, router)

	if err := step.Select("weather"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Select() error = %v, want ErrUnknownCategory", err)
	}
	if store.Snapshot().Category != nil {
		t.Error("unknown category must not be stored")
	}
	if router.Current() != StepCategory {
		t.Error("unknown category must not advance")
	}
}

func TestRouterBack(t *testing.T) {
	r := NewRouter()
	r.Back()
	if r.Current() != StepCategory {
		t.Errorf("Back() on first step moved to %v", r.Current())
	}

	r.Go(StepContent)
	r.Back()
	if r.Current() != StepLength {
		t.Errorf("Back() from content = %v, want length", r.Current())
	}
}
