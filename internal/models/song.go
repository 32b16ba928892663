package models

import "time"

// Song is one performed work. Execution marks a short performance, under thirty
// seconds.
type Song struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Composer  string `json:"composer"`
	Execution bool   `json:"execution"`
}

// RecognizedSong is a match reported by the recognition service.
type RecognizedSong struct {
	Index     int     `json:"index"`
	StartTime int     `json:"start_time"`
	Title     string  `json:"title"`
	Artist    string  `json:"artist"`
	Composer  string  `json:"composer"`
	Score     float64 `json:"score"`
	Duration  *int    `json:"duration"`
}

// Song converts the match into a ledger entry without an ID. A recognized track
// is assumed to be a full performance.
func (r RecognizedSong) Song() Song {
	return Song{
		Title:    r.Title,
		Artist:   r.Artist,
		Composer: r.Composer,
	}
}

// DurationTime reports the recognized track length, zero when unknown.
func (r RecognizedSong) DurationTime() time.Duration {
	if r.Duration == nil {
		return 0
	}

	return time.Duration(*r.Duration) * time.Second
}
