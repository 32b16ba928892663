package memory

import (
	"fmt"
	"sync"
	"time"

	"bordero/internal/lib/ledger"
	"bordero/internal/models"
	"bordero/internal/storage"

	"github.com/google/uuid"
)

// session is one editing session: the mutable borderò and its track ledger.
type session struct {
	event     models.EventInfo
	performer models.PerformerInfo
	songs     *ledger.Ledger
	// touched is the time of the last write
	touched time.Time
}

func newSession(now time.Time) *session {
	return &session{
		event:     models.NewEventInfo(),
		performer: models.NewPerformerInfo(),
		songs:     ledger.New(),
		touched:   now,
	}
}

func (s *session) snapshot() models.Record {
	return models.Record{
		Event:     s.event,
		Performer: s.performer,
		Songs:     s.songs.Songs(),
	}.Snapshot()
}

// Storage owns every editing session. Writers are serialised; readers get
// snapshots that never alias session state.
type Storage struct {
	mu       sync.RWMutex
	sessions map[string]*session
	newID    func() string
	now      func() time.Time
}

func New() *Storage {
	return &Storage{
		sessions: make(map[string]*session),
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// writable returns the session for a mutation and marks it as active.
// Callers hold the write lock.
func (s *Storage) writable(id string) (*session, bool) {
	sess, ok := s.sessions[id]
	if ok {
		sess.touched = s.now()
	}
	return sess, ok
}

func (s *Storage) CreateSession() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	if _, ok := s.sessions[id]; ok {
		return "", fmt.Errorf("failed to create session: duplicate id %s", id)
	}

	s.sessions[id] = newSession(s.now())

	return id, nil
}

func (s *Storage) GetBordero(id string) (models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return models.Record{}, storage.ErrSessionNotFound
	}

	return sess.snapshot(), nil
}

func (s *Storage) UpdateEvent(id string, patch models.EventPatch) (models.EventInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.writable(id)
	if !ok {
		return models.EventInfo{}, storage.ErrSessionNotFound
	}

	sess.event = sess.event.Merge(patch)

	return sess.event, nil
}

func (s *Storage) UpdatePerformer(id string, patch models.PerformerPatch) (models.PerformerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.writable(id)
	if !ok {
		return models.PerformerInfo{}, storage.ErrSessionNotFound
	}

	sess.performer = sess.performer.Merge(patch)

	return sess.snapshot().Performer, nil
}

// AddSong appends song to the session ledger, assigning an ID when it has none.
func (s *Storage) AddSong(id string, song models.Song) (models.Song, error) {
	added, err := s.AddSongs(id, []models.Song{song})
	if err != nil {
		return models.Song{}, err
	}

	return added[0], nil
}

func (s *Storage) AddSongs(id string, songs []models.Song) ([]models.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.writable(id)
	if !ok {
		return nil, storage.ErrSessionNotFound
	}

	added := make([]models.Song, 0, len(songs))
	for _, song := range songs {
		if song.ID == "" {
			song.ID = s.newID()
		}
		sess.songs.Add(song)
		added = append(added, song)
	}

	return added, nil
}

func (s *Storage) UpdateSong(id string, song models.Song) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.writable(id)
	if !ok {
		return storage.ErrSessionNotFound
	}

	if !sess.songs.Update(song) {
		return storage.ErrSongNotFound
	}

	return nil
}

func (s *Storage) RemoveSong(id, songID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.writable(id)
	if !ok {
		return storage.ErrSessionNotFound
	}

	if !sess.songs.Remove(songID) {
		return storage.ErrSongNotFound
	}

	return nil
}

// ResetBordero puts the session back to a new, empty borderò.
func (s *Storage) ResetBordero(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return storage.ErrSessionNotFound
	}

	s.sessions[id] = newSession(s.now())

	return nil
}

func (s *Storage) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return storage.ErrSessionNotFound
	}

	delete(s.sessions, id)

	return nil
}

// PurgeIdle deletes every session not written to for longer than maxIdle and
// reports how many were removed. Reads do not count as activity.
func (s *Storage) PurgeIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	purged := 0

	for id, sess := range s.sessions {
		if sess.touched.Before(cutoff) {
			delete(s.sessions, id)
			purged++
		}
	}

	return purged
}

// Len reports the number of open sessions.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
