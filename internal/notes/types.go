package notes

import "time"

// Note mirrors the payload returned by the notes API for both list rows and
// single-note fetches (the service uses one shape for both).
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Version   int    `json:"version"`
}

// NoteVersion describes one historical snapshot of a note.
type NoteVersion struct {
	ID        string `json:"id"`
	NoteID    string `json:"note_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Version   int    `json:"version"`
	CreatedAt string `json:"created_at"`
}

// NoteInput is the request body for create and update calls.
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (n Note) ParsedCreatedAt() time.Time {
	return parseTime(n.CreatedAt)
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (n Note) ParsedUpdatedAt() time.Time {
	return parseTime(n.UpdatedAt)
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (v NoteVersion) ParsedCreatedAt() time.Time {
	return parseTime(v.CreatedAt)
}

const serviceTimestampLayout = "2006-01-02 15:04:05"

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(serviceTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
