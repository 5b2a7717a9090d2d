package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"trendclip/internal/model"
	"trendclip/internal/wizard"
)

var ErrNoHeadlines = errors.New("no headlines found")

// Pipeline drives the wizard end to end without prompting.
type Pipeline struct {
	service *Service
}

type RunRequest struct {
	// Category is a catalogue id; empty uses the default news category.
	Category string
	// Headline is a 1-based position in the list or a headline id; empty
	// picks the first headline.
	Headline string
	Length   model.VideoLength
	Export   bool
}

type RunResult struct {
	Headline model.Headline
	Length   model.VideoLength
	Ideas    []string
	Package  model.ContentPackage
	Exported []string
}

func NewPipeline(service *Service) *Pipeline {
	return &Pipeline{service: service}
}

func (p *Pipeline) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	w := p.service.NewWizard()

	if req.Category != "" {
		if err := w.Category.Select(req.Category); err != nil {
			return nil, fmt.Errorf("category %q: %w", req.Category, err)
		}
	}

	slog.Info("Loading headlines...", "category", w.Headlines.Query())
	status := w.Headlines.Enter(ctx)
	if len(status.Value) == 0 {
		return nil, ErrNoHeadlines
	}

	headline, err := pickHeadline(status.Value, req.Headline)
	if err != nil {
		return nil, err
	}
	if err := w.Headlines.Select(headline.ID); err != nil {
		return nil, err
	}

	slog.Info("Generating video ideas...", "headline", headline.Title, "length", req.Length)
	if err := w.Length.Select(ctx, req.Length); err != nil {
		return nil, err
	}
	if w.Router.Current() != wizard.StepContent {
		return nil, fmt.Errorf("wizard stopped at the %s step", w.Router.Current())
	}

	slog.Info("Generating content package...")
	w.Content.Mount()
	defer w.Content.Unmount()

	view := w.Content.Ensure(ctx)
	if view.Err != nil {
		return nil, view.Err
	}
	if view.Package == nil {
		return nil, fmt.Errorf("content step ended in the %s phase", view.Phase)
	}

	st := w.Store.Snapshot()
	result := &RunResult{
		Headline: headline,
		Length:   st.VideoLength,
		Ideas:    st.VideoIdeas,
		Package:  view.Package.Clone(),
	}

	if req.Export {
		locations, err := p.service.Export(ctx)
		if err != nil {
			return result, err
		}
		result.Exported = locations
	}

	return result, nil
}

func pickHeadline(list []model.Headline, sel string) (model.Headline, error) {
	if sel == "" {
		return list[0], nil
	}
	if n, err := strconv.Atoi(sel); err == nil {
		if n < 1 || n > len(list) {
			return model.Headline{}, fmt.Errorf("headline %d out of range 1-%d: %w", n, len(list), wizard.ErrUnknownHeadline)
		}
		return list[n-1], nil
	}
	for _, h := range list {
		if h.ID == sel {
			return h, nil
		}
	}
	return model.Headline{}, fmt.Errorf("headline %q: %w", sel, wizard.ErrUnknownHeadline)
}
