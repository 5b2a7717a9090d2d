package wizard

import "trendclip/internal/model"

var categories = []model.Category{
	{ID: "politics", Name: "Politics", Icon: "politics"},
	{ID: "business", Name: "Business", Icon: "business"},
	{ID: "technology", Name: "Technology", Icon: "technology"},
	{ID: "science", Name: "Science", Icon: "science"},
	{ID: "health", Name: "Health", Icon: "health"},
	{ID: "entertainment", Name: "Entertainment", Icon: "entertainment"},
	{ID: "sports", Name: "Sports", Icon: "sports"},
	{ID: "finance", Name: "Finance", Icon: "finance"},
}

// Categories returns the fixed category catalogue in display order.
func Categories() []model.Category {
	out := make([]model.Category, len(categories))
	copy(out, categories)
	return out
}

func FindCategory(id string) (model.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

type CategoryStep struct {
	store *Store
	nav   Navigator
}

func NewCategoryStep(store *Store, nav Navigator) *CategoryStep {
	return &CategoryStep{store: store, nav: nav}
}

func (s *CategoryStep) Options() []model.Category {
	return Categories()
}

// Select stores the category and advances to the headline step.
func (s *CategoryStep) Select(id string) error {
	c, ok := FindCategory(id)
	if !ok {
		return ErrUnknownCategory
	}
	s.store.SetCategory(c)
	s.nav.Go(StepHeadline)
	return nil
}
