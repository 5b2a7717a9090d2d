package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"trendclip/internal/model"
	"trendclip/pkg/httputil"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultCountry = "us"

	trendingPath   = "/api/news/trending"
	videoIdeasPath = "/api/content/video-ideas"
	packagePath    = "/api/content/generate-package"
)

type Client struct {
	httpClient httputil.Doer
	baseURL    string
}

type Options struct {
	BaseURL    string
	HTTPClient httputil.Doer
}

type PackageRequest struct {
	Idea     string `json:"idea"`
	Platform string `json:"platform"`
	Duration int    `json:"duration"`
	Style    string `json:"style"`
}

type videoIdeasRequest struct {
	Headlines []model.NewsItem `json:"headlines"`
	Style     string           `json:"style"`
}

type trendingResponse struct {
	Data []model.NewsItem `json:"data"`
}

type videoIdeasResponse struct {
	Ideas []string `json:"ideas"`
}

type packageResponse struct {
	Package *model.ContentPackage `json:"package"`
}

// StatusError reports a non-2xx response from the backend.
type StatusError struct {
	StatusCode int
	Status     string
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend error: %s: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend error: %s", e.Status)
}

func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) TrendingNews(ctx context.Context, category, country string) ([]model.NewsItem, error) {
	if country == "" {
		country = DefaultCountry
	}

	query := url.Values{}
	query.Set("category", category)
	query.Set("country", country)

	var resp trendingResponse
	if err := c.doJSON(ctx, http.MethodGet, trendingPath, query, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch trending news: %w", err)
	}

	if resp.Data == nil {
		return []model.NewsItem{}, nil
	}
	return resp.Data, nil
}

func (c *Client) VideoIdeas(ctx context.Context, headlines []model.NewsItem, style string) ([]string, error) {
	body := videoIdeasRequest{Headlines: headlines, Style: style}

	var resp videoIdeasResponse
	if err := c.doJSON(ctx, http.MethodPost, videoIdeasPath, nil, body, &resp); err != nil {
		return nil, fmt.Errorf("generate video ideas: %w", err)
	}

	if resp.Ideas == nil {
		return []string{}, nil
	}
	return resp.Ideas, nil
}

func (c *Client) ContentPackage(ctx context.Context, req PackageRequest) (*model.ContentPackage, error) {
	var resp packageResponse
	if err := c.doJSON(ctx, http.MethodPost, packagePath, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("generate content package: %w", err)
	}

	if resp.Package == nil {
		return &model.ContentPackage{}, nil
	}
	return resp.Package, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	slog.Debug("Backend request", "method", method, "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Detail:     errorDetail(data),
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// errorDetail extracts FastAPI's {"detail": "..."} envelope when present.
func errorDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}
	return string(envelope.Detail)
}
