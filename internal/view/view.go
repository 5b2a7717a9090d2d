// Package view renders wizard state for the terminal. Every function is a pure
// projection of its arguments.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trendclip/internal/model"
	"trendclip/internal/wizard"
)

const (
	msgLoadingHeadlines = "Loading headlines..."
	msgNoHeadlines      = "No headlines found"
	msgLoadingContent   = "Loading content..."
	msgRegenerating     = "Regenerating content..."
	msgGenerating       = "Generating ideas..."
	msgNoContent        = "No content available"

	noIntro      = "No intro generated yet"
	noBody       = "No body content generated yet"
	noConclusion = "No conclusion generated yet"
	noGraphics   = "No graphics suggestions generated yet"
	noThumbnails = "No thumbnail concepts generated yet"
)

var stepNames = []string{"Category", "Headline", "Length", "Content"}

// Progress renders the step trail with the current step highlighted.
func Progress(current wizard.Step) string {
	parts := make([]string, len(stepNames))
	for i, name := range stepNames {
		if wizard.Step(i) == current {
			parts[i] = activeStyle.Render(name)
		} else {
			parts[i] = mutedStyle.Render(name)
		}
	}
	return strings.Join(parts, mutedStyle.Render(" › "))
}

func Title(text string) string {
	return titleStyle.Render(text)
}

func Warning(text string) string {
	return warnStyle.Render(text)
}

func Error(err error) string {
	if err == nil {
		return ""
	}
	return errorStyle.Render(err.Error())
}

// HeadlinesTitle names the list after the selected category, General when
// none was chosen.
func HeadlinesTitle(category *model.Category) string {
	name := "General"
	if category != nil && category.Name != "" {
		name = category.Name
	}
	return Title(name + " Headlines - Select one to generate video content")
}

// Headlines renders the loading state, the empty state, or the list. It never
// renders an error.
func Headlines(status wizard.Status[[]model.Headline]) string {
	if status.Phase == wizard.PhaseLoading {
		return mutedStyle.Render(msgLoadingHeadlines)
	}
	if status.Phase != wizard.PhaseReady {
		return ""
	}

	if len(status.Value) == 0 {
		return msgNoHeadlines
	}

	cards := make([]string, 0, len(status.Value))
	for i, h := range status.Value {
		cards = append(cards, HeadlineCard(i+1, h))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func HeadlineCard(n int, h model.Headline) string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render(fmt.Sprintf("%d. %s", n, h.Title)))
	if h.Source != "" {
		sb.WriteString("\n" + mutedStyle.Render(h.Source))
	}
	if h.Description != "" {
		sb.WriteString("\n" + h.Description)
	}
	return cardStyle.Render(sb.String())
}

// LengthOptions lists every length with its description. The pending option
// is marked and a failed request shows its message under the list.
func LengthOptions(headline model.Headline, pending model.VideoLength, status wizard.Status[[]string]) string {
	lines := []string{
		Title("Choose a video length"),
		mutedStyle.Render("Headline: ") + headline.Title,
		"",
	}

	for _, l := range model.Lengths() {
		line := headingStyle.Render(l.Label()) + " " + mutedStyle.Render(l.Description())
		if l == pending {
			line += " " + warnStyle.Render(msgGenerating)
		}
		lines = append(lines, line)
	}

	if status.Phase == wizard.PhaseErrored {
		lines = append(lines, "", Error(status.Err))
	}
	return strings.Join(lines, "\n")
}

// Content renders exactly one of the loading message, the error, or the tabs.
// A blocked step renders nothing.
func Content(v wizard.ContentView) string {
	if v.Blocked {
		return ""
	}

	header := strings.Join([]string{
		headingStyle.Render("Selected Headline:") + " " + v.Headline.Title,
		headingStyle.Render("Video Length:") + " " + string(v.Length),
	}, "\n")

	var body string
	switch {
	case v.Phase == wizard.ContentRegenerating:
		body = mutedStyle.Render(msgRegenerating)
	case v.Phase.Loading():
		body = mutedStyle.Render(msgLoadingContent)
	case v.Phase == wizard.ContentErrored:
		body = Error(v.Err)
	case v.Phase == wizard.ContentReady && v.Package != nil:
		body = Tabs(v.Tab) + "\n\n" + Tab(*v.Package, v.Tab)
	default:
		body = mutedStyle.Render(msgNoContent)
	}
	return header + "\n\n" + body
}

func tabName(t wizard.Tab) string {
	switch t {
	case wizard.TabScript:
		return "Video Script"
	case wizard.TabGraphics:
		return "Graphics Ideas"
	case wizard.TabThumbnails:
		return "Thumbnail Concepts"
	default:
		return t.String()
	}
}

func Tabs(active wizard.Tab) string {
	parts := make([]string, 0, len(wizard.Tabs()))
	for _, t := range wizard.Tabs() {
		if t == active {
			parts = append(parts, activeStyle.Render("["+tabName(t)+"]"))
		} else {
			parts = append(parts, mutedStyle.Render(" "+tabName(t)+" "))
		}
	}
	return strings.Join(parts, "  ")
}

// Tab renders one tab of a package, substituting placeholders for empty
// fields.
func Tab(pkg model.ContentPackage, t wizard.Tab) string {
	switch t {
	case wizard.TabScript:
		return lipgloss.JoinVertical(lipgloss.Left,
			section("Introduction", pkg.Script.Intro, noIntro),
			section("Body", pkg.Script.Body, noBody),
			section("Conclusion", pkg.Script.Conclusion, noConclusion),
		)
	case wizard.TabGraphics:
		return list("Graphics Suggestions", pkg.Graphics, noGraphics)
	case wizard.TabThumbnails:
		return list("Thumbnail Concepts", pkg.Thumbnails, noThumbnails)
	default:
		return ""
	}
}

func section(title, text, placeholder string) string {
	if text == "" {
		text = mutedStyle.Render(placeholder)
	}
	return cardStyle.Render(headingStyle.Render(title) + "\n" + text)
}

func list(title string, items []string, placeholder string) string {
	if len(items) == 0 {
		return cardStyle.Render(headingStyle.Render(title) + "\n" + mutedStyle.Render(placeholder))
	}
	lines := []string{headingStyle.Render(title)}
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// Debug dumps the store the way a development panel would.
func Debug(st wizard.State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "session: %d\n", st.Session)
	if st.Category != nil {
		fmt.Fprintf(&sb, "category: %s\n", st.Category.ID)
	} else {
		sb.WriteString("category: -\n")
	}
	if st.Headline != nil {
		fmt.Fprintf(&sb, "headline: %s\n", st.Headline.Title)
	} else {
		sb.WriteString("headline: -\n")
	}
	length := string(st.VideoLength)
	if length == "" {
		length = "-"
	}
	fmt.Fprintf(&sb, "length: %s\n", length)
	fmt.Fprintf(&sb, "ideas: %d\n", len(st.VideoIdeas))
	fmt.Fprintf(&sb, "package: %t", st.CachedPackage() != nil)
	return mutedStyle.Render(sb.String())
}
