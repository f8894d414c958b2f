package notes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultServerURL {
		t.Fatalf("host = %q, want %q", u.Host, defaultServerURL)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchesEndpointsAndEncodesQueries(t *testing.T) {
	t.Parallel()

	var gotListQuery url.Values
	var gotUserAgent string
	var gotCreateBody NoteInput
	var gotUpdateBody NoteInput
	var gotContentType string
	var paths []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/notes/":
			gotListQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode([]Note{{ID: "n1", Title: "First", Version: 2}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/notes/":
			gotContentType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotCreateBody)
			_ = json.NewEncoder(w).Encode(Note{ID: "x7", Title: gotCreateBody.Title, Content: gotCreateBody.Content, Version: 1})
		case r.Method == http.MethodGet && r.URL.Path == "/api/notes/n1":
			_ = json.NewEncoder(w).Encode(Note{ID: "n1", Title: "First", Content: "body", Version: 2})
		case r.Method == http.MethodPut && r.URL.Path == "/api/notes/n1":
			_ = json.NewDecoder(r.Body).Decode(&gotUpdateBody)
			_ = json.NewEncoder(w).Encode(Note{ID: "n1", Title: gotUpdateBody.Title, Version: 3})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/notes/n1":
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Note deleted successfully"})
		case r.Method == http.MethodGet && r.URL.Path == "/api/notes/n1/versions":
			_ = json.NewEncoder(w).Encode([]NoteVersion{{ID: "v1", NoteID: "n1", Version: 1}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/notes/n1/restore/v1":
			_ = json.NewEncoder(w).Encode(Note{ID: "n1", Version: 4})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	items, err := c.List(ctx, "shopping list")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "n1" {
		t.Fatalf("List items = %#v, want 1 item id=n1", items)
	}
	if gotListQuery.Get("search") != "shopping list" {
		t.Fatalf("List query = %v, want search encoded", gotListQuery)
	}

	note, err := c.Get(ctx, "n1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if note.Content != "body" {
		t.Fatalf("Get note = %#v, want content=body", note)
	}

	created, err := c.Create(ctx, NoteInput{Title: "T", Content: "C"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != "x7" {
		t.Fatalf("Create id = %q, want x7", created.ID)
	}
	if gotCreateBody.Title != "T" || gotCreateBody.Content != "C" {
		t.Fatalf("Create body = %#v, want title/content", gotCreateBody)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Create Content-Type = %q, want application/json", gotContentType)
	}

	if _, err := c.Update(ctx, "n1", NoteInput{Title: "T2", Content: "C2"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if gotUpdateBody.Title != "T2" {
		t.Fatalf("Update body = %#v, want title=T2", gotUpdateBody)
	}

	if err := c.Delete(ctx, "n1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	versions, err := c.Versions(ctx, "n1")
	if err != nil {
		t.Fatalf("Versions returned error: %v", err)
	}
	if len(versions) != 1 || versions[0].ID != "v1" {
		t.Fatalf("Versions = %#v, want 1 record id=v1", versions)
	}

	if err := c.Restore(ctx, "n1", "v1"); err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}

	want := []string{
		"GET /api/notes/",
		"GET /api/notes/n1",
		"POST /api/notes/",
		"PUT /api/notes/n1",
		"DELETE /api/notes/n1",
		"GET /api/notes/n1/versions",
		"POST /api/notes/n1/restore/v1",
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}

	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "quill/") {
		t.Fatalf("User-Agent = %q, want quill/*", gotUserAgent)
	}
}

func TestClient_ListOmitsEmptySearch(t *testing.T) {
	t.Parallel()

	var gotRawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.List(context.Background(), "   "); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if gotRawQuery != "" {
		t.Fatalf("raw query = %q, want empty", gotRawQuery)
	}
}

func TestClient_JSONErrorUsesDetailField(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Note not found"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Get(context.Background(), "missing")
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error = %v, want *ServiceError", err)
	}
	if svcErr.Status != http.StatusNotFound || svcErr.Message != "Note not found" {
		t.Fatalf("ServiceError = %#v, want 404 Note not found", svcErr)
	}
}

func TestClient_JSONErrorFallsBackToGenericMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"unexpected": true}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.List(context.Background(), "")
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error = %v, want *ServiceError", err)
	}
	if svcErr.Message != genericErrorDetail {
		t.Fatalf("message = %q, want %q", svcErr.Message, genericErrorDetail)
	}
}

func TestClient_NonJSONErrorTruncatesBody(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 500)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(long))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Get(context.Background(), "n1")
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error = %v, want *ServiceError", err)
	}
	if svcErr.Status != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", svcErr.Status)
	}
	if !strings.HasPrefix(svcErr.Message, "HTTP 502: ") {
		t.Fatalf("message = %q, want HTTP 502 prefix", svcErr.Message)
	}
	if got := len(strings.TrimPrefix(svcErr.Message, "HTTP 502: ")); got != errorBodyExcerpt {
		t.Fatalf("excerpt length = %d, want %d", got, errorBodyExcerpt)
	}
}

func TestClient_NonJSONSuccessReturnsRawText(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	var text string
	if err := c.do(context.Background(), http.MethodGet, "/anything", nil, &text); err != nil {
		t.Fatalf("do returned error: %v", err)
	}
	if text != "ok" {
		t.Fatalf("text = %q, want ok", text)
	}
}
