package postgres

import (
	"database/sql"
	"fmt"

	"bordero/internal/config"
	"bordero/internal/models"

	_ "github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS exports (
		id          SERIAL PRIMARY KEY,
		session_id  TEXT NOT NULL,
		event_type  TEXT NOT NULL,
		organizer   TEXT NOT NULL,
		performer   TEXT NOT NULL,
		mode        TEXT NOT NULL,
		song_count  INTEGER NOT NULL,
		format      TEXT NOT NULL,
		filename    TEXT NOT NULL,
		exported_at TIMESTAMPTZ NOT NULL
	)`

// Storage is the export journal. It records that a borderò was exported, not
// the borderò itself.
type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Storage) Migrate() error {
	if _, err := s.DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to create exports table: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveExport(entry models.ExportEntry) (int, error) {
	query := `
		INSERT INTO exports (session_id, event_type, organizer, performer, mode, song_count, format, filename, exported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query,
		entry.SessionID,
		entry.EventType,
		entry.Organizer,
		entry.Performer,
		string(entry.Mode),
		entry.SongCount,
		entry.Format,
		entry.Filename,
		entry.ExportedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save export: %w", err)
	}

	return id, nil
}

func (s *Storage) GetExports() ([]models.ExportEntry, error) {
	query := `
		SELECT id, session_id, event_type, organizer, performer, mode, song_count, format, filename, exported_at
		FROM exports
		ORDER BY exported_at DESC, id DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get exports: %w", err)
	}
	defer rows.Close()

	exports := []models.ExportEntry{}
	for rows.Next() {
		var entry models.ExportEntry
		var mode string

		err = rows.Scan(
			&entry.ID,
			&entry.SessionID,
			&entry.EventType,
			&entry.Organizer,
			&entry.Performer,
			&mode,
			&entry.SongCount,
			&entry.Format,
			&entry.Filename,
			&entry.ExportedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan export: %w", err)
		}

		entry.Mode = models.PerformerMode(mode)
		exports = append(exports, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exports: %w", err)
	}

	return exports, nil
}
