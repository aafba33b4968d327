package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Album is a catalog release owned by exactly one artist.
type Album struct {
	ID       string `json:"id"`
	ArtistID string `json:"artist_id"`
	Name     string `json:"name"`
	Year     int    `json:"year"`
	Hidden   bool   `json:"hidden"`
}

// AlbumFilter narrows album listings. Pointer fields are ignored when nil.
type AlbumFilter struct {
	ArtistID string
	Hidden   *bool
}

// AlbumUpdate carries a partial update. Nil fields are left untouched.
type AlbumUpdate struct {
	Name   *string
	Year   *int
	Hidden *bool
}

// CreateAlbum inserts a new album and returns its id.
func (s *Store) CreateAlbum(ctx context.Context, artistID, name string, year int, hidden bool) (string, error) {
	id, err := NewID()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO albums (id, artist_id, name, year, hidden)
		VALUES ($1, $2, $3, $4, $5)
	`, id, artistID, name, year, hidden); err != nil {
		return "", fmt.Errorf("insert album: %w", err)
	}

	return id, nil
}

// AlbumByID returns the album with the given id.
func (s *Store) AlbumByID(ctx context.Context, id string) (*Album, error) {
	var a Album
	err := s.db.QueryRowContext(ctx, `
		SELECT id, artist_id, name, year, hidden
		FROM albums
		WHERE id = $1
	`, id).Scan(&a.ID, &a.ArtistID, &a.Name, &a.Year, &a.Hidden)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup album: %w", err)
	}
	return &a, nil
}

// Albums lists albums matching the filter in natural retrieval order.
func (s *Store) Albums(ctx context.Context, filter AlbumFilter, limit, offset int) ([]Album, error) {
	var (
		where []string
		args  []any
	)
	if filter.ArtistID != "" {
		args = append(args, filter.ArtistID)
		where = append(where, fmt.Sprintf("artist_id = $%d", len(args)))
	}
	if filter.Hidden != nil {
		args = append(args, *filter.Hidden)
		where = append(where, fmt.Sprintf("hidden = $%d", len(args)))
	}

	query := `
		SELECT id, artist_id, name, year, hidden
		FROM albums`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select albums: %w", err)
	}
	defer rows.Close()

	var albums []Album
	for rows.Next() {
		var a Album
		if err := rows.Scan(&a.ID, &a.ArtistID, &a.Name, &a.Year, &a.Hidden); err != nil {
			return nil, fmt.Errorf("scan album: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate albums: %w", err)
	}

	return albums, nil
}

// UpdateAlbum applies the non-nil fields of update.
func (s *Store) UpdateAlbum(ctx context.Context, id string, update AlbumUpdate) error {
	var (
		set  []string
		args = []any{id}
	)
	if update.Name != nil {
		args = append(args, *update.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if update.Year != nil {
		args = append(args, *update.Year)
		set = append(set, fmt.Sprintf("year = $%d", len(args)))
	}
	if update.Hidden != nil {
		args = append(args, *update.Hidden)
		set = append(set, fmt.Sprintf("hidden = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}
	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE albums SET %s WHERE id = $1`, strings.Join(set, ", "))
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update album: %w", err)
	}
	return nil
}

// DeleteAlbum removes the album with the given id.
func (s *Store) DeleteAlbum(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM albums
		WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	return nil
}
