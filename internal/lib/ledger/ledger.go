package ledger

import (
	"slices"

	"bordero/internal/models"
)

// Ledger is the ordered track list of a borderò. Insertion order is print order.
// IDs are expected to be unique; adding a duplicate ID is a caller bug.
type Ledger struct {
	songs []models.Song
}

func New(songs ...models.Song) *Ledger {
	return &Ledger{songs: append([]models.Song{}, songs...)}
}

func (l *Ledger) Add(song models.Song) {
	l.songs = append(l.songs, song)
}

// Remove deletes the song with the given id and reports whether it was there.
func (l *Ledger) Remove(id string) bool {
	idx := l.index(id)
	if idx == -1 {
		return false
	}

	l.songs = slices.Delete(l.songs, idx, idx+1)

	return true
}

// Update replaces the song with the same ID in place.
func (l *Ledger) Update(song models.Song) bool {
	idx := l.index(song.ID)
	if idx == -1 {
		return false
	}

	l.songs[idx] = song

	return true
}

func (l *Ledger) Get(id string) (models.Song, bool) {
	idx := l.index(id)
	if idx == -1 {
		return models.Song{}, false
	}

	return l.songs[idx], true
}

func (l *Ledger) Count() int {
	return len(l.songs)
}

// Songs returns a copy of the ledger in order.
func (l *Ledger) Songs() []models.Song {
	return append([]models.Song{}, l.songs...)
}

func (l *Ledger) Reset() {
	l.songs = nil
}

func (l *Ledger) index(id string) int {
	return slices.IndexFunc(l.songs, func(s models.Song) bool {
		return s.ID == id
	})
}
