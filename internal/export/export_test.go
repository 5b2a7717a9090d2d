package export

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"trendclip/internal/model"
	"trendclip/internal/storage"
	"trendclip/internal/wizard"
)

var created = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

func sampleBundle() Bundle {
	return Bundle{
		Headline: model.Headline{ID: "https://n.example/1", Title: "AI Beats Chess Champion!", Source: "Wire", URL: "https://n.example/1"},
		Length:   model.Length30s,
		Duration: 30,
		Ideas:    []string{"idea one"},
		Package: model.ContentPackage{
			Script:     model.Script{Intro: "A", Body: "B", Conclusion: "C"},
			Graphics:   []string{"g1"},
			Thumbnails: []string{"t1", "t2"},
		},
		CreatedAt: created,
	}
}

func TestDirName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "AI Beats Chess Champion!", "20260304_050607_ai-beats-chess-champion"},
		{"empty", "", "20260304_050607_untitled"},
		{"punctuationOnly", "!!!", "20260304_050607_untitled"},
		{"truncated", strings.Repeat("word ", 30), "20260304_050607_" + strings.TrimRight(strings.Repeat("word-", 10), "-")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirName(created, tt.title); got != tt.want {
				t.Errorf("DirName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExportLocal(t *testing.T) {
	dir := t.TempDir()
	e := New(storage.NewLocalStorage(dir))

	locs, err := e.Export(context.Background(), sampleBundle())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(locs) != 2 {
		t.Fatalf("Export() locations = %v, want 2", locs)
	}

	exportDir := filepath.Join(dir, "20260304_050607_ai-beats-chess-champion")
	data, err := os.ReadFile(filepath.Join(exportDir, "package.json"))
	if err != nil {
		t.Fatalf("read package.json: %v", err)
	}

	var got Bundle
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode package.json: %v", err)
	}
	if got.Package.Script.Body != "B" || got.Duration != 30 || got.Headline.Title != "AI Beats Chess Champion!" {
		t.Errorf("package.json = %+v", got)
	}

	script, err := os.ReadFile(filepath.Join(exportDir, "script.txt"))
	if err != nil {
		t.Fatalf("read script.txt: %v", err)
	}
	for _, want := range []string{"AI Beats Chess Champion!", "## INTRO\nA", "## THUMBNAILS\n1. t1\n2. t2", "Length: 30 Seconds (30s)"} {
		if !strings.Contains(string(script), want) {
			t.Errorf("script.txt missing %q:\n%s", want, script)
		}
	}
}

type failingStorage struct{}

func (failingStorage) Save(context.Context, string, []byte) (string, error) {
	return "", errors.New("bucket unavailable")
}

func (failingStorage) List(context.Context) ([]string, error) { return nil, nil }

func TestExportStopsOnFailure(t *testing.T) {
	dir := t.TempDir()
	e := New(storage.NewLocalStorage(dir), failingStorage{})

	locs, err := e.Export(context.Background(), sampleBundle())
	if err == nil {
		t.Fatal("Export() should fail when a target fails")
	}
	if len(locs) != 2 {
		t.Errorf("locations before failure = %v, want the 2 local files", locs)
	}
}

func TestExportNoTargets(t *testing.T) {
	if _, err := New().Export(context.Background(), sampleBundle()); err == nil {
		t.Error("Export() without targets should fail")
	}
}

func TestBundleFromState(t *testing.T) {
	store := wizard.NewStore()

	if _, err := BundleFromState(store.Snapshot(), created); !errors.Is(err, ErrNothingToExport) {
		t.Errorf("empty state error = %v, want ErrNothingToExport", err)
	}

	h := model.Headline{ID: "u1", Title: "X", URL: "u1"}
	store.SetHeadline(h)
	store.SetVideoLength(model.Length1m)
	store.SetVideoIdeas([]string{"i1"})
	store.SetContentPackage(wizard.PackageKey{HeadlineID: "u1", Length: model.Length1m}, model.ContentPackage{
		Script: model.Script{Intro: "hi"},
	})

	b, err := BundleFromState(store.Snapshot(), created)
	if err != nil {
		t.Fatalf("BundleFromState() error = %v", err)
	}
	if b.Duration != 60 || b.Package.Script.Intro != "hi" || b.Ideas[0] != "i1" || b.Headline != h {
		t.Errorf("bundle = %+v", b)
	}

	store.SetVideoLength(model.Length15s)
	if _, err := BundleFromState(store.Snapshot(), created); !errors.Is(err, ErrNothingToExport) {
		t.Error("package for another length must not be exported")
	}
}
