package wizard

import (
	"context"
	"errors"
	"sync"

	"trendclip/internal/backend"
	"trendclip/internal/clipboard"
	"trendclip/internal/model"
)

var errTransport = errors.New("connection refused")

type newsCall struct {
	category string
	country  string
}

type ideasCall struct {
	headlines []model.NewsItem
	style     string
}

type fakeBackend struct {
	mu sync.Mutex

	newsFn    func(ctx context.Context, category string) ([]model.NewsItem, error)
	ideasFn   func(ctx context.Context) ([]string, error)
	packageFn func(ctx context.Context, call int) (*model.ContentPackage, error)

	newsCalls    []newsCall
	ideasCalls   []ideasCall
	packageCalls []backend.PackageRequest
}

func (f *fakeBackend) TrendingNews(ctx context.Context, category, country string) ([]model.NewsItem, error) {
	f.mu.Lock()
	f.newsCalls = append(f.newsCalls, newsCall{category: category, country: country})
	fn := f.newsFn
	f.mu.Unlock()

	if fn == nil {
		return []model.NewsItem{}, nil
	}
	return fn(ctx, category)
}

func (f *fakeBackend) VideoIdeas(ctx context.Context, headlines []model.NewsItem, style string) ([]string, error) {
	f.mu.Lock()
	f.ideasCalls = append(f.ideasCalls, ideasCall{headlines: headlines, style: style})
	fn := f.ideasFn
	f.mu.Unlock()

	if fn == nil {
		return []string{"idea"}, nil
	}
	return fn(ctx)
}

func (f *fakeBackend) ContentPackage(ctx context.Context, req backend.PackageRequest) (*model.ContentPackage, error) {
	f.mu.Lock()
	f.packageCalls = append(f.packageCalls, req)
	call := len(f.packageCalls)
	fn := f.packageFn
	f.mu.Unlock()

	if fn == nil {
		return samplePackage("pkg"), nil
	}
	return fn(ctx, call)
}

func (f *fakeBackend) newsCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.newsCalls)
}

func (f *fakeBackend) ideasCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ideasCalls)
}

func (f *fakeBackend) packageRequests() []backend.PackageRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]backend.PackageRequest(nil), f.packageCalls...)
}

type recordingCopier struct {
	texts []string
}

func (c *recordingCopier) Copy(text string) clipboard.Method {
	c.texts = append(c.texts, text)
	return clipboard.MethodSystem
}

func samplePackage(tag string) *model.ContentPackage {
	return &model.ContentPackage{
		Script:     model.Script{Intro: tag + "-intro", Body: tag + "-body", Conclusion: tag + "-conclusion"},
		Graphics:   []string{tag + "-g1", tag + "-g2"},
		Thumbnails: []string{tag + "-t1"},
	}
}

func strPtr(s string) *string { return &s }

func sampleNews() []model.NewsItem {
	return []model.NewsItem{
		{Title: "X", Source: "S", URL: "u1", Description: "d", PublishedAt: "t", Content: nil},
		{Title: "Y", Source: "S2", URL: "u2", Description: "d2", PublishedAt: "t2", Content: strPtr("body")},
	}
}

// gate blocks a fake call until released and reports when it started.
type gate struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGate() *gate {
	return &gate{started: make(chan struct{}), release: make(chan struct{})}
}

func (g *gate) wait() {
	g.once.Do(func() { close(g.started) })
	<-g.release
}

func newTestWizard(fb *fakeBackend, copier Copier) *Wizard {
	return New(Options{Backend: fb, Copier: copier, Country: "us"})
}
