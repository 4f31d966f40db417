package poster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound indicates the provider has no record for the requested title.
var ErrNotFound = errors.New("poster metadata not found")

// Metadata is the subset of provider fields the client exposes.
type Metadata struct {
	Title     string
	Synopsis  string
	Genre     string
	PosterURL string
}

// Client looks up movie metadata (including a poster URL) from an
// OMDb-compatible provider.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether the provider credentials are set.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

type lookupResponse struct {
	Title    string `json:"Title"`
	Plot     string `json:"Plot"`
	Genre    string `json:"Genre"`
	Poster   string `json:"Poster"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Lookup fetches metadata for title. Provider-side misses map to ErrNotFound.
func (c *Client) Lookup(ctx context.Context, title string) (*Metadata, error) {
	if !c.Configured() {
		return nil, errors.New("poster provider is not configured")
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("t", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build poster request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poster request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("poster provider returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode poster response: %w", err)
	}

	if strings.EqualFold(body.Response, "false") {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, body.Error)
	}

	meta := &Metadata{
		Title:     body.Title,
		Synopsis:  body.Plot,
		Genre:     body.Genre,
		PosterURL: body.Poster,
	}
	if meta.PosterURL == "N/A" {
		meta.PosterURL = ""
	}
	return meta, nil
}
