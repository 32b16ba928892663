package models

import "time"

// ExportEntry is one line of the export journal.
type ExportEntry struct {
	ID         int           `json:"id"`
	SessionID  string        `json:"session_id"`
	EventType  string        `json:"event_type"`
	Organizer  string        `json:"organizer"`
	Performer  string        `json:"performer"`
	Mode       PerformerMode `json:"mode"`
	SongCount  int           `json:"song_count"`
	Format     string        `json:"format"`
	Filename   string        `json:"filename"`
	ExportedAt time.Time     `json:"exported_at"`
}
