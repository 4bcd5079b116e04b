// Package jobsearch looks up live job postings for a role through the Jooble
// REST API.
package jobsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/smarthire/internal/types"
)

// DefaultBaseURL is the Jooble API root. The key is appended as the last path
// segment.
const DefaultBaseURL = "https://jooble.org/api"

// DefaultTimeout is the HTTP request timeout for job lookups.
const DefaultTimeout = 15 * time.Second

// MaxResults caps how many postings a lookup returns.
const MaxResults = 5

// Error represents a failure during a job lookup.
type Error struct {
	Role    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job search for %q: %s: %v", e.Role, e.Message, e.Cause)
	}
	return fmt.Sprintf("job search for %q: %s", e.Role, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client queries Jooble for postings matching a role.
type Client struct {
	baseURL    string
	apiKey     string
	location   string
	httpClient *http.Client
}

// NewClient creates a Jooble client. location may be empty for a worldwide
// search.
func NewClient(apiKey, location string) *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		location:   location,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// WithBaseURL overrides the API root, for tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type searchRequest struct {
	Keywords   string `json:"keywords"`
	Location   string `json:"location"`
	Page       int    `json:"page"`
	SearchMode int    `json:"searchMode"`
}

type searchResponse struct {
	Jobs []struct {
		Title    string `json:"title"`
		Company  string `json:"company"`
		Location string `json:"location"`
		Snippet  string `json:"snippet"`
		Link     string `json:"link"`
	} `json:"jobs"`
}

// Search returns up to MaxResults postings for the role. Fields missing from
// the API response are filled with a placeholder so downstream rendering
// never deals with empty cells.
func (c *Client) Search(ctx context.Context, role string) ([]types.JobPosting, error) {
	if c.apiKey == "" {
		return nil, &Error{Role: role, Message: "API key not configured"}
	}

	payload, err := json.Marshal(searchRequest{
		Keywords:   role,
		Location:   c.location,
		Page:       1,
		SearchMode: 1,
	})
	if err != nil {
		return nil, &Error{Role: role, Message: "failed to encode request", Cause: err}
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Role: role, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Role: role, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Role: role, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Role: role, Message: "failed to read response body", Cause: err}
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &Error{Role: role, Message: "failed to decode response", Cause: err}
	}

	postings := make([]types.JobPosting, 0, MaxResults)
	for _, j := range parsed.Jobs {
		if len(postings) == MaxResults {
			break
		}
		postings = append(postings, types.JobPosting{
			Title:    orPlaceholder(j.Title),
			Company:  orPlaceholder(j.Company),
			Location: orPlaceholder(j.Location),
			Snippet:  orPlaceholder(stripHTML(j.Snippet)),
			Link:     orPlaceholder(j.Link),
		})
	}
	return postings, nil
}

func orPlaceholder(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return types.PlaceholderField
	}
	return s
}

// stripHTML flattens the markup Jooble embeds in snippets to plain text. On
// parse failure the raw string is returned as-is.
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
