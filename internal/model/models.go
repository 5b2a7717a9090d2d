package model

import "strings"

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Headline struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	URL         string `json:"url"`
}

// NewsItem is the backend's representation of a trending article.
type NewsItem struct {
	Source      string  `json:"source"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	PublishedAt string  `json:"publishedAt,omitempty"`
	Content     *string `json:"content"`
}

// Headline maps the item 1:1, using the URL as identity.
func (n NewsItem) Headline() Headline {
	return Headline{
		ID:          n.URL,
		Title:       n.Title,
		Description: n.Description,
		Source:      n.Source,
		URL:         n.URL,
	}
}

// NewsItemFromHeadline rebuilds the wire item sent back to the ideas endpoint.
// Content is always present, empty when the headline carries none.
func NewsItemFromHeadline(h Headline) NewsItem {
	content := ""
	return NewsItem{
		Source:      h.Source,
		Title:       h.Title,
		Description: h.Description,
		URL:         h.URL,
		Content:     &content,
	}
}

type Script struct {
	Intro      string `json:"intro"`
	Body       string `json:"body"`
	Conclusion string `json:"conclusion"`
}

type ContentPackage struct {
	Script     Script   `json:"script"`
	Graphics   []string `json:"graphics"`
	Thumbnails []string `json:"thumbnails"`
}

const copySeparator = "\n\n"

// Text joins intro, body and conclusion in that order.
func (s Script) Text() string {
	return strings.Join([]string{s.Intro, s.Body, s.Conclusion}, copySeparator)
}

func (p ContentPackage) GraphicsText() string {
	return strings.Join(p.Graphics, copySeparator)
}

func (p ContentPackage) ThumbnailsText() string {
	return strings.Join(p.Thumbnails, copySeparator)
}

func (p ContentPackage) Clone() ContentPackage {
	return ContentPackage{
		Script:     p.Script,
		Graphics:   cloneStrings(p.Graphics),
		Thumbnails: cloneStrings(p.Thumbnails),
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
