package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Artist is a catalog performer.
type Artist struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Grammy int    `json:"grammy"`
	Hidden bool   `json:"hidden"`
}

// ArtistFilter narrows artist listings. Pointer fields are ignored when nil.
type ArtistFilter struct {
	Grammy *int
	Hidden *bool
}

// ArtistUpdate carries a partial update. Nil fields are left untouched.
type ArtistUpdate struct {
	Name   *string
	Grammy *int
	Hidden *bool
}

// CreateArtist inserts a new artist and returns its id.
func (s *Store) CreateArtist(ctx context.Context, name string, grammy int, hidden bool) (string, error) {
	id, err := NewID()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO artists (id, name, grammy, hidden)
		VALUES ($1, $2, $3, $4)
	`, id, name, grammy, hidden); err != nil {
		return "", fmt.Errorf("insert artist: %w", err)
	}

	return id, nil
}

// ArtistByID returns the artist with the given id.
func (s *Store) ArtistByID(ctx context.Context, id string) (*Artist, error) {
	var a Artist
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, grammy, hidden
		FROM artists
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.Grammy, &a.Hidden)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup artist: %w", err)
	}
	return &a, nil
}

// Artists lists artists matching the filter in natural retrieval order.
func (s *Store) Artists(ctx context.Context, filter ArtistFilter, limit, offset int) ([]Artist, error) {
	var (
		where []string
		args  []any
	)
	if filter.Grammy != nil {
		args = append(args, *filter.Grammy)
		where = append(where, fmt.Sprintf("grammy = $%d", len(args)))
	}
	if filter.Hidden != nil {
		args = append(args, *filter.Hidden)
		where = append(where, fmt.Sprintf("hidden = $%d", len(args)))
	}

	query := `
		SELECT id, name, grammy, hidden
		FROM artists`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	var artists []Artist
	for rows.Next() {
		var a Artist
		if err := rows.Scan(&a.ID, &a.Name, &a.Grammy, &a.Hidden); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}

// UpdateArtist applies the non-nil fields of update. Present fields overwrite
// unconditionally; there is no diffing against current values.
func (s *Store) UpdateArtist(ctx context.Context, id string, update ArtistUpdate) error {
	var (
		set  []string
		args = []any{id}
	)
	if update.Name != nil {
		args = append(args, *update.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if update.Grammy != nil {
		args = append(args, *update.Grammy)
		set = append(set, fmt.Sprintf("grammy = $%d", len(args)))
	}
	if update.Hidden != nil {
		args = append(args, *update.Hidden)
		set = append(set, fmt.Sprintf("hidden = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}
	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE artists SET %s WHERE id = $1`, strings.Join(set, ", "))
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update artist: %w", err)
	}
	return nil
}

// DeleteArtist removes the artist with the given id.
func (s *Store) DeleteArtist(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM artists
		WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	return nil
}
