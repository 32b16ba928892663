package storage

import "errors"

var (
	ErrSessionNotFound = errors.New("bordero session not found")
	ErrSongNotFound    = errors.New("song not found")
)
