package request

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var (
	ErrBorderoIDRequired = errors.New("bordero id is required")
	ErrInvalidBorderoID  = errors.New("invalid bordero id format")
	ErrSongIDRequired    = errors.New("song id is required")
)

// BorderoID reads the {id} URL parameter, which must be a UUID.
func BorderoID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		return "", ErrBorderoIDRequired
	}

	if _, err := uuid.Parse(id); err != nil {
		return "", ErrInvalidBorderoID
	}

	return id, nil
}

// SongID reads the {songId} URL parameter. Song IDs are opaque.
func SongID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "songId")
	if id == "" {
		return "", ErrSongIDRequired
	}

	return id, nil
}
