// Package notes provides an HTTP client for the quill notes service API.
//
// # Overview
//
// This package defines the API client for communicating with the notes
// service. It handles HTTP communication, JSON serialization, and type-safe
// representation of notes and their version history.
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: the Service interface, HTTP client, and response handling
//   - types.go: data structures mirroring the notes API schema
//
// The Service interface is the seam the UI depends on; Client is its HTTP
// implementation. Tests substitute a fake Service to drive UI flows without
// a server.
//
// # Client Usage
//
// Create a client using the server URL from configuration:
//
//	client, err := notes.NewClient("127.0.0.1:8000")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	// List notes, optionally filtered by a search term
//	items, err := client.List(ctx, "meeting")
//
//	// Fetch, create, update, delete a single note
//	note, err := client.Get(ctx, id)
//	note, err = client.Create(ctx, notes.NoteInput{Title: t, Content: c})
//	note, err = client.Update(ctx, id, notes.NoteInput{Title: t, Content: c})
//	err = client.Delete(ctx, id)
//
//	// Version history
//	versions, err := client.Versions(ctx, id)
//	err = client.Restore(ctx, id, versionID)
//
// # API Endpoints
//
// The client speaks to the following endpoints:
//
//   - GET    /api/notes/?search=term   List notes, newest first
//   - POST   /api/notes/               Create a note
//   - GET    /api/notes/{id}           Fetch one note
//   - PUT    /api/notes/{id}           Update a note (bumps its version)
//   - DELETE /api/notes/{id}           Delete a note and its history
//   - GET    /api/notes/{id}/versions  List saved versions, newest first
//   - POST   /api/notes/{id}/restore/{versionId}  Restore a version
//
// The search parameter is omitted from the query string when empty.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json header
//   - Include User-Agent: quill/0.1 header
//   - Have a 5-second timeout (configurable via http.Client)
//   - Return wrapped errors with context about what failed
//
// # Error Handling
//
// Responses with status >= 400 become a *ServiceError. For JSON error
// bodies the message is taken from the "detail" field, falling back to a
// generic message when the field is absent or the body is malformed. For
// non-JSON error bodies the message carries the status code and a short
// excerpt of the body.
//
// Example error messages:
//   - "Note not found" (from a JSON detail field)
//   - "Error occurred" (JSON error without detail)
//   - "HTTP 502: upstream connect error..." (non-JSON body, truncated)
//
// Network-level failures are wrapped with fmt.Errorf and are not
// ServiceErrors.
//
// # Type System
//
// Note is the single note shape used for both list rows and single-note
// fetches: ID, title, content, timestamps, and the current version number.
//
// NoteVersion is one saved revision: its own ID, the owning note's ID, the
// title and content as of that revision, the version number, and when it
// was saved.
//
// NoteInput carries the two user-editable fields for create and update.
//
// # Timestamp Parsing
//
// Note and NoteVersion provide helpers for timestamp parsing:
//
//   - ParsedCreatedAt(): Returns time.Time for creation timestamp
//   - ParsedUpdatedAt(): Returns time.Time for last update timestamp
//
// These methods handle multiple timestamp formats:
//   - RFC3339Nano (with nanoseconds)
//   - RFC3339 (ISO 8601)
//   - Server format: "2006-01-02 15:04:05" (local timezone)
//
// Invalid or missing timestamps return time.Time{} (zero value).
//
// # URL Construction
//
// The client accepts several server URL formats:
//
//   - "127.0.0.1:8000" → http://127.0.0.1:8000
//   - "http://localhost:8000" → http://localhost:8000
//   - "https://notes.example.com" → https://notes.example.com
//
// The scheme defaults to "http://" if not specified.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying http.Client
// handles connection pooling and concurrent requests internally.
//
// # Testing Considerations
//
// When testing code that uses this package:
//   - Use httptest.Server to mock the notes API
//   - Test both success and error paths
//   - Check handling of JSON and non-JSON error bodies
//   - Test URL parsing edge cases
//
// # Design Rationale
//
// The package is intentionally minimal:
//   - No caching (the UI refreshes explicitly after every mutation)
//   - No retries (failures surface to the user as notices)
//   - No streaming (request/response is sufficient for a single user)
//
// This keeps the client simple and predictable while meeting all current
// needs.
package notes
