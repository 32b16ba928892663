package postgres

import (
	"os"
	"strconv"
	"testing"
	"time"

	"bordero/internal/config"
	"bordero/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("skipping Postgres integration tests: TEST_DB_HOST is not set")
	}

	port := 5432
	if v := os.Getenv("TEST_DB_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		require.NoError(t, err)
		port = p
	}

	s, err := InitDB(&config.Database{
		Host:     host,
		Port:     port,
		User:     os.Getenv("TEST_DB_USER"),
		Password: os.Getenv("TEST_DB_PASSWORD"),
		DBName:   os.Getenv("TEST_DB_NAME"),
		SSLMode:  "disable",
	})
	if err != nil {
		t.Skipf("skipping Postgres integration tests: %v", err)
	}

	_, err = s.DB.Exec(`TRUNCATE exports RESTART IDENTITY`)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestExportJournal(t *testing.T) {
	s := newTestStorage(t)

	exportedAt := time.Date(2025, 2, 14, 23, 45, 0, 0, time.UTC)

	first := models.ExportEntry{
		SessionID:  "0b8a1b7e-4a53-4cf4-8d1e-3b9f2f0d7c11",
		EventType:  "107-OR",
		Organizer:  "Pro Loco",
		Performer:  "I Rossi",
		Mode:       models.ModeBand,
		SongCount:  12,
		Format:     "pdf",
		Filename:   "bordero.pdf",
		ExportedAt: exportedAt,
	}

	id, err := s.SaveExport(first)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	second := first
	second.Mode = models.ModeSolo
	second.ExportedAt = exportedAt.Add(time.Hour)

	id, err = s.SaveExport(second)
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	exports, err := s.GetExports()
	require.NoError(t, err)
	require.Len(t, exports, 2)

	assert.Equal(t, 2, exports[0].ID)
	assert.Equal(t, models.ModeSolo, exports[0].Mode)
	assert.True(t, second.ExportedAt.Equal(exports[0].ExportedAt))
	assert.Equal(t, models.ModeBand, exports[1].Mode)
	assert.Equal(t, 12, exports[1].SongCount)
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.Migrate())
	require.NoError(t, s.Migrate())
}
