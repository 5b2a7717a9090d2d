package wizard

// Backend is the remote service the wizard talks to.
type Backend interface {
	NewsSource
	IdeaSource
	PackageSource
}

type Options struct {
	Backend         Backend
	Copier          Copier
	Country         string
	DefaultCategory string
	Platform        string
	Style           string
}

// Wizard wires one store and router to the four step controllers.
type Wizard struct {
	Store  *Store
	Router *Router

	Category  *CategoryStep
	Headlines *HeadlineStep
	Length    *LengthStep
	Content   *ContentStep
}

func New(opts Options) *Wizard {
	store := NewStore()
	router := NewRouter()

	return &Wizard{
		Store:    store,
		Router:   router,
		Category: NewCategoryStep(store, router),
		Headlines: NewHeadlineStep(store, router, opts.Backend, HeadlineOptions{
			Country:         opts.Country,
			DefaultCategory: opts.DefaultCategory,
		}),
		Length: NewLengthStep(store, router, opts.Backend, opts.Style),
		Content: NewContentStep(store, router, opts.Backend, ContentOptions{
			Platform: opts.Platform,
			Style:    opts.Style,
			Copier:   opts.Copier,
		}),
	}
}

// StartOver resets every step and the store, then returns to the first step.
func (w *Wizard) StartOver() {
	w.Headlines.Reset()
	w.Length.Reset()
	w.Content.startOver()
}
