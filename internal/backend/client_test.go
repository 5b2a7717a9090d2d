package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"trendclip/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Options{BaseURL: server.URL + "/", HTTPClient: server.Client()})
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Options{})
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", client.BaseURL(), DefaultBaseURL)
	}
}

func TestTrendingNews(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		country     string
		status      int
		body        string
		wantCountry string
		wantErr     bool
		wantTitles  []string
	}{
		{
			name:        "preservesOrder",
			category:    "technology",
			country:     "gb",
			status:      http.StatusOK,
			body:        `{"status":"success","data":[{"title":"B","url":"u2"},{"title":"A","url":"u1"},{"title":"C","url":"u3"}]}`,
			wantCountry: "gb",
			wantTitles:  []string{"B", "A", "C"},
		},
		{
			name:        "defaultCountry",
			category:    "general",
			status:      http.StatusOK,
			body:        `{"data":[]}`,
			wantCountry: "us",
			wantTitles:  []string{},
		},
		{
			name:        "missingData",
			category:    "science",
			status:      http.StatusOK,
			body:        `{"status":"success"}`,
			wantCountry: "us",
			wantTitles:  []string{},
		},
		{
			name:        "serverError",
			category:    "science",
			status:      http.StatusInternalServerError,
			body:        `{"detail":"NewsAPI request failed: 401"}`,
			wantCountry: "us",
			wantErr:     true,
		},
		{
			name:        "malformedJSON",
			category:    "science",
			status:      http.StatusOK,
			body:        `{"data":`,
			wantCountry: "us",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET, got %s", r.Method)
				}
				if r.URL.Path != trendingPath {
					t.Errorf("expected path %s, got %s", trendingPath, r.URL.Path)
				}
				if got := r.URL.Query().Get("category"); got != tt.category {
					t.Errorf("category = %q, want %q", got, tt.category)
				}
				if got := r.URL.Query().Get("country"); got != tt.wantCountry {
					t.Errorf("country = %q, want %q", got, tt.wantCountry)
				}
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			items, err := client.TrendingNews(context.Background(), tt.category, tt.country)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TrendingNews() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if len(items) != len(tt.wantTitles) {
				t.Fatalf("TrendingNews() returned %d items, want %d", len(items), len(tt.wantTitles))
			}
			for i, title := range tt.wantTitles {
				if items[i].Title != title {
					t.Errorf("items[%d].Title = %q, want %q", i, items[i].Title, title)
				}
			}
		})
	}
}

func TestTrendingNewsNullContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":[{"title":"X","source":"S","url":"u1","description":"d","publishedAt":"t","content":null}]}`)
	})

	items, err := client.TrendingNews(context.Background(), "technology", "")
	if err != nil {
		t.Fatalf("TrendingNews() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Content != nil {
		t.Errorf("Content = %v, want nil", *items[0].Content)
	}
	if items[0].PublishedAt != "t" {
		t.Errorf("PublishedAt = %q, want t", items[0].PublishedAt)
	}
}

func TestVideoIdeas(t *testing.T) {
	var got videoIdeasRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != videoIdeasPath {
			t.Errorf("expected path %s, got %s", videoIdeasPath, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected Content-Type application/json")
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = io.WriteString(w, `{"status":"success","ideas":["one","two"]}`)
	})

	headline := model.NewsItemFromHeadline(model.Headline{ID: "u1", Title: "X", URL: "u1"})
	ideas, err := client.VideoIdeas(context.Background(), []model.NewsItem{headline}, "informative")
	if err != nil {
		t.Fatalf("VideoIdeas() error = %v", err)
	}

	if len(ideas) != 2 || ideas[0] != "one" || ideas[1] != "two" {
		t.Errorf("VideoIdeas() = %v", ideas)
	}
	if got.Style != "informative" {
		t.Errorf("style = %q, want informative", got.Style)
	}
	if len(got.Headlines) != 1 || got.Headlines[0].Content == nil || *got.Headlines[0].Content != "" {
		t.Errorf("headlines = %+v, want one item with empty content", got.Headlines)
	}
}

func TestVideoIdeasStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"Headlines are required"}`)
	})

	_, err := client.VideoIdeas(context.Background(), nil, "informative")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", statusErr.StatusCode)
	}
	if statusErr.Detail != "Headlines are required" {
		t.Errorf("Detail = %q", statusErr.Detail)
	}
}

func TestContentPackage(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   bool
		wantIntro string
	}{
		{
			name:      "success",
			status:    http.StatusOK,
			body:      `{"status":"success","package":{"script":{"intro":"I","body":"B","conclusion":"C"},"graphics":["g"],"thumbnails":["t"]}}`,
			wantIntro: "I",
		},
		{
			name:   "missingPackage",
			status: http.StatusOK,
			body:   `{"status":"success"}`,
		},
		{
			name:    "serverError",
			status:  http.StatusBadGateway,
			body:    `bad gateway`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got PackageRequest
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != packagePath {
					t.Errorf("expected path %s, got %s", packagePath, r.URL.Path)
				}
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			req := PackageRequest{Idea: "X", Platform: "tiktok", Duration: 30, Style: "informative"}
			pkg, err := client.ContentPackage(context.Background(), req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ContentPackage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != req {
				t.Errorf("request body = %+v, want %+v", got, req)
			}
			if tt.wantErr {
				return
			}
			if pkg == nil {
				t.Fatal("ContentPackage() returned nil package")
			}
			if pkg.Script.Intro != tt.wantIntro {
				t.Errorf("Script.Intro = %q, want %q", pkg.Script.Intro, tt.wantIntro)
			}
		})
	}
}

func TestStatusErrorWithoutDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.ContentPackage(context.Background(), PackageRequest{Idea: "X"})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.Detail != "" {
		t.Errorf("Detail = %q, want empty", statusErr.Detail)
	}
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(Options{BaseURL: server.URL})
	if _, err := client.TrendingNews(context.Background(), "general", "us"); err == nil {
		t.Error("expected error for unreachable host")
	}
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"detail":"Idea is required"}`, "Idea is required"},
		{`{"detail":[{"msg":"field required"}]}`, `[{"msg":"field required"}]`},
		{`not json`, ""},
		{`{}`, ""},
	}

	for _, tt := range tests {
		if got := errorDetail([]byte(tt.body)); got != tt.want {
			t.Errorf("errorDetail(%q) = %q, want %q", tt.body, got, tt.want)
		}
	}
}
