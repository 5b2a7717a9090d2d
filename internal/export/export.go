package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"trendclip/internal/model"
	"trendclip/internal/storage"
	"trendclip/internal/wizard"
)

const (
	timestampLayout = "20060102_150405"
	maxSlugLength   = 50

	packageFile = "package.json"
	scriptFile  = "script.txt"
)

var ErrNothingToExport = errors.New("no content package to export")

// Bundle is everything written for one exported package.
type Bundle struct {
	Headline  model.Headline       `json:"headline"`
	Length    model.VideoLength    `json:"length"`
	Duration  int                  `json:"duration"`
	Ideas     []string             `json:"ideas"`
	Package   model.ContentPackage `json:"package"`
	CreatedAt time.Time            `json:"createdAt"`
}

// BundleFromState captures the package generated for the current selections.
func BundleFromState(st wizard.State, now time.Time) (Bundle, error) {
	pkg := st.CachedPackage()
	if pkg == nil {
		return Bundle{}, ErrNothingToExport
	}
	return Bundle{
		Headline:  *st.Headline,
		Length:    st.VideoLength,
		Duration:  st.VideoLength.Seconds(),
		Ideas:     append([]string{}, st.VideoIdeas...),
		Package:   pkg.Clone(),
		CreatedAt: now,
	}, nil
}

// DirName is the export directory for a bundle: the creation time followed by
// a slug of the headline title.
func DirName(createdAt time.Time, title string) string {
	s := slug.Make(title)
	if len(s) > maxSlugLength {
		s = strings.TrimRight(s[:maxSlugLength], "-")
	}
	if s == "" {
		s = "untitled"
	}
	return fmt.Sprintf("%s_%s", createdAt.Format(timestampLayout), s)
}

type Exporter struct {
	targets []storage.Storage
}

func New(targets ...storage.Storage) *Exporter {
	return &Exporter{targets: targets}
}

func (e *Exporter) Targets() []storage.Storage {
	return e.targets
}

// Export writes package.json and script.txt to every target and returns the
// written locations. It stops at the first target that fails.
func (e *Exporter) Export(ctx context.Context, b Bundle) ([]string, error) {
	if len(e.targets) == 0 {
		return nil, errors.New("no export targets configured")
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode bundle: %w", err)
	}

	dir := DirName(b.CreatedAt, b.Headline.Title)
	files := []struct {
		name string
		data []byte
	}{
		{path.Join(dir, packageFile), data},
		{path.Join(dir, scriptFile), []byte(ScriptText(b))},
	}

	var locations []string
	for _, target := range e.targets {
		for _, f := range files {
			loc, err := target.Save(ctx, f.name, f.data)
			if err != nil {
				return locations, fmt.Errorf("export %s: %w", f.name, err)
			}
			locations = append(locations, loc)
		}
	}

	slog.Info("Exported content package", "dir", dir, "files", len(locations))
	return locations, nil
}

// ScriptText renders a bundle as a plain text document.
func ScriptText(b Bundle) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", b.Headline.Title)
	if b.Headline.Source != "" {
		fmt.Fprintf(&sb, "Source: %s\n", b.Headline.Source)
	}
	if b.Headline.URL != "" {
		fmt.Fprintf(&sb, "URL: %s\n", b.Headline.URL)
	}
	fmt.Fprintf(&sb, "Length: %s (%ds)\n", b.Length.Label(), b.Duration)

	section(&sb, "INTRO", b.Package.Script.Intro)
	section(&sb, "BODY", b.Package.Script.Body)
	section(&sb, "CONCLUSION", b.Package.Script.Conclusion)
	list(&sb, "GRAPHICS", b.Package.Graphics)
	list(&sb, "THUMBNAILS", b.Package.Thumbnails)
	list(&sb, "VIDEO IDEAS", b.Ideas)

	return sb.String()
}

func section(sb *strings.Builder, title, text string) {
	fmt.Fprintf(sb, "\n## %s\n%s\n", title, text)
}

func list(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n## %s\n", title)
	for i, item := range items {
		fmt.Fprintf(sb, "%d. %s\n", i+1, item)
	}
}
