package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Track is a recording attached to an album and its owning artist.
type Track struct {
	ID       string `json:"id"`
	ArtistID string `json:"artist_id"`
	AlbumID  string `json:"album_id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Hidden   bool   `json:"hidden"`
}

// TrackFilter narrows track listings. Pointer fields are ignored when nil.
type TrackFilter struct {
	ArtistID string
	AlbumID  string
	Hidden   *bool
}

// TrackUpdate carries a partial update. Nil fields are left untouched.
type TrackUpdate struct {
	Name     *string
	Duration *int
	Hidden   *bool
}

// CreateTrack inserts a new track and returns its id.
func (s *Store) CreateTrack(ctx context.Context, artistID, albumID, name string, duration int, hidden bool) (string, error) {
	id, err := NewID()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO tracks (id, artist_id, album_id, name, duration, hidden)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, artistID, albumID, name, duration, hidden); err != nil {
		return "", fmt.Errorf("insert track: %w", err)
	}

	return id, nil
}

// TrackByID returns the track with the given id.
func (s *Store) TrackByID(ctx context.Context, id string) (*Track, error) {
	var t Track
	err := s.db.QueryRowContext(ctx, `
		SELECT id, artist_id, album_id, name, duration, hidden
		FROM tracks
		WHERE id = $1
	`, id).Scan(&t.ID, &t.ArtistID, &t.AlbumID, &t.Name, &t.Duration, &t.Hidden)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup track: %w", err)
	}
	return &t, nil
}

// Tracks lists tracks matching the filter in natural retrieval order.
func (s *Store) Tracks(ctx context.Context, filter TrackFilter, limit, offset int) ([]Track, error) {
	var (
		where []string
		args  []any
	)
	if filter.ArtistID != "" {
		args = append(args, filter.ArtistID)
		where = append(where, fmt.Sprintf("artist_id = $%d", len(args)))
	}
	if filter.AlbumID != "" {
		args = append(args, filter.AlbumID)
		where = append(where, fmt.Sprintf("album_id = $%d", len(args)))
	}
	if filter.Hidden != nil {
		args = append(args, *filter.Hidden)
		where = append(where, fmt.Sprintf("hidden = $%d", len(args)))
	}

	query := `
		SELECT id, artist_id, album_id, name, duration, hidden
		FROM tracks`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select tracks: %w", err)
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		var t Track
		if err := rows.Scan(&t.ID, &t.ArtistID, &t.AlbumID, &t.Name, &t.Duration, &t.Hidden); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracks: %w", err)
	}

	return tracks, nil
}

// UpdateTrack applies the non-nil fields of update.
func (s *Store) UpdateTrack(ctx context.Context, id string, update TrackUpdate) error {
	var (
		set  []string
		args = []any{id}
	)
	if update.Name != nil {
		args = append(args, *update.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if update.Duration != nil {
		args = append(args, *update.Duration)
		set = append(set, fmt.Sprintf("duration = $%d", len(args)))
	}
	if update.Hidden != nil {
		args = append(args, *update.Hidden)
		set = append(set, fmt.Sprintf("hidden = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}
	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE tracks SET %s WHERE id = $1`, strings.Join(set, ", "))
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update track: %w", err)
	}
	return nil
}

// DeleteTrack removes the track with the given id.
func (s *Store) DeleteTrack(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM tracks
		WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("delete track: %w", err)
	}
	return nil
}
