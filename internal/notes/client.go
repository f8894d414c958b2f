package notes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Service defines the note operations the UI depends on.
// This interface is implemented by *Client and can be used for testing.
type Service interface {
	List(ctx context.Context, search string) ([]Note, error)
	Get(ctx context.Context, id string) (*Note, error)
	Create(ctx context.Context, input NoteInput) (*Note, error)
	Update(ctx context.Context, id string, input NoteInput) (*Note, error)
	Delete(ctx context.Context, id string) error
	Versions(ctx context.Context, id string) ([]NoteVersion, error)
	Restore(ctx context.Context, noteID, versionID string) error
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// ServiceError represents a non-success response from the notes API.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Client talks to the notes HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultServerURL   = "127.0.0.1:8000"
	defaultUserAgent   = "quill/0.1"
	requestTimeout     = 5 * time.Second
	errorBodyExcerpt   = 100
	genericErrorDetail = "Error occurred"
)

// NewClient builds a Client using the provided server URL or host:port value.
func NewClient(serverURL string) (*Client, error) {
	base, err := parseBaseURL(serverURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// List retrieves note summaries, optionally filtered by a search term.
// An empty term lists everything; ordering is the server's.
func (c *Client) List(ctx context.Context, search string) ([]Note, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/api/notes/"}
	if term := strings.TrimSpace(search); term != "" {
		values := url.Values{}
		values.Set("search", term)
		rel.RawQuery = values.Encode()
	}
	var payload []Note
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Get retrieves a single note for editing.
func (c *Client) Get(ctx context.Context, id string) (*Note, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Note
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+id, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Create stores a new note and returns it with its server-assigned id.
func (c *Client) Create(ctx context.Context, input NoteInput) (*Note, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Note
	if err := c.do(ctx, http.MethodPost, "/api/notes/", &input, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Update replaces a note's title and content, creating a new version server-side.
func (c *Client) Update(ctx context.Context, id string, input NoteInput) (*Note, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Note
	if err := c.do(ctx, http.MethodPut, "/api/notes/"+id, &input, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Delete removes a note and its history.
func (c *Client) Delete(ctx context.Context, id string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, "/api/notes/"+id, nil, nil)
}

// Versions retrieves the version history for a note, newest ordering per the server.
func (c *Client) Versions(ctx context.Context, id string) ([]NoteVersion, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []NoteVersion
	if err := c.do(ctx, http.MethodGet, "/api/notes/"+id+"/versions", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Restore rewinds a note to a prior version. The service records this as a new
// version rather than rewriting history.
func (c *Client) Restore(ctx context.Context, noteID, versionID string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/api/notes/"+noteID+"/restore/"+versionID, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, body, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if isJSONResponse(resp) {
		return decodeJSON(resp, dest)
	}
	return decodeText(resp, dest)
}

// decodeJSON handles responses the service declared as JSON. Failure statuses
// carry the error message in the body's "detail" field.
func decodeJSON(resp *http.Response, dest any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		detail := genericErrorDetail
		var failure struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(raw, &failure); err == nil && strings.TrimSpace(failure.Detail) != "" {
			detail = failure.Detail
		}
		return &ServiceError{Status: resp.StatusCode, Message: detail}
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeText handles non-JSON responses. Failures produce a status-plus-excerpt
// error; successes hand back raw text when the caller wants it.
func decodeText(resp *http.Response, dest any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		excerpt := string(raw)
		if len(excerpt) > errorBodyExcerpt {
			excerpt = excerpt[:errorBodyExcerpt]
		}
		return &ServiceError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, excerpt),
		}
	}
	if text, ok := dest.(*string); ok {
		*text = string(raw)
	}
	return nil
}

func isJSONResponse(resp *http.Response) bool {
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "application/json")
	}
	return mediaType == "application/json"
}

func parseBaseURL(serverURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverURL)
	if trimmed == "" {
		trimmed = defaultServerURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server_url %q: %w", serverURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
