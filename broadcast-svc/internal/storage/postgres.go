package storage

import (
	"database/sql"
	"fmt"

	"boum-cafe/broadcast-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func daysToStrings(days []domain.Day) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = string(d)
	}
	return out
}

func (r *PostgresRepository) ListActiveSchedules() ([]domain.Schedule, error) {
	rows, err := r.DB.Query(`
		SELECT id, broadcast_type, days_of_week, hour, minute,
			COALESCE(vibration_number, ''), COALESCE(vehicle_number, ''),
			COALESCE(custom_text, ''), COALESCE(closing_type, ''), is_active, created_at
		FROM broadcast_schedules
		WHERE is_active = TRUE
		ORDER BY hour ASC, minute ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []domain.Schedule
	for rows.Next() {
		var s domain.Schedule
		var days []string
		if err := rows.Scan(&s.ID, &s.Kind, pq.Array(&days), &s.Hour, &s.Minute,
			&s.VibrationNumber, &s.VehicleNumber, &s.CustomText, &s.ClosingType,
			&s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.Days = make([]domain.Day, len(days))
		for i, d := range days {
			s.Days[i] = domain.Day(d)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (r *PostgresRepository) CreateSchedule(s *domain.Schedule) error {
	return r.DB.QueryRow(`
		INSERT INTO broadcast_schedules (id, broadcast_type, days_of_week, hour, minute,
			vibration_number, vehicle_number, custom_text, closing_type, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`,
		s.ID, s.Kind, pq.Array(daysToStrings(s.Days)), s.Hour, s.Minute,
		nullIfEmpty(s.VibrationNumber), nullIfEmpty(s.VehicleNumber),
		nullIfEmpty(s.CustomText), nullIfEmpty(string(s.ClosingType)), s.IsActive).
		Scan(&s.CreatedAt)
}

func (r *PostgresRepository) DeleteSchedule(id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM broadcast_schedules WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const playlistColumns = `id, title, COALESCE(description, ''), audio_url, COALESCE(artist, ''),
	COALESCE(artwork_url, ''), COALESCE(version_tag, ''), is_active`

func scanPlaylist(row interface{ Scan(dest ...any) error }, p *domain.Playlist) error {
	return row.Scan(&p.ID, &p.Title, &p.Description, &p.AudioURL, &p.Artist, &p.ArtworkURL, &p.VersionTag, &p.IsActive)
}

func (r *PostgresRepository) ListActivePlaylists() ([]domain.Playlist, error) {
	rows, err := r.DB.Query(`SELECT ` + playlistColumns + ` FROM playlists WHERE is_active = TRUE ORDER BY title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []domain.Playlist
	for rows.Next() {
		var p domain.Playlist
		if err := scanPlaylist(rows, &p); err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

func (r *PostgresRepository) GetPlaylist(id string) (*domain.Playlist, error) {
	var p domain.Playlist
	if err := scanPlaylist(r.DB.QueryRow(`SELECT `+playlistColumns+` FROM playlists WHERE id = $1`, id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS broadcast_schedules (
			id UUID PRIMARY KEY,
			broadcast_type TEXT NOT NULL CHECK (broadcast_type IN ('vibration', 'vehicle', 'smoking', 'closing', 'custom')),
			days_of_week TEXT[] NOT NULL,
			hour INTEGER NOT NULL CHECK (hour BETWEEN 0 AND 23),
			minute INTEGER NOT NULL CHECK (minute BETWEEN 0 AND 59),
			vibration_number TEXT,
			vehicle_number TEXT,
			custom_text TEXT,
			closing_type TEXT CHECK (closing_type IN ('floor', 'store')),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS playlists (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			audio_url TEXT NOT NULL,
			artist TEXT,
			artwork_url TEXT,
			version_tag TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
