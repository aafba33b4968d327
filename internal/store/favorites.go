package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Favorite marks a catalog item as favourited. Uniqueness is global by
// item id, not per user.
type Favorite struct {
	ID       string `json:"favorite_id"`
	Category string `json:"category"`
	ItemID   string `json:"item_id"`
	UserID   string `json:"-"`
}

// CreateFavorite inserts a favourite and returns its id.
func (s *Store) CreateFavorite(ctx context.Context, category, itemID, userID string) (string, error) {
	id, err := NewID()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO favorites (id, category, item_id, user_id)
		VALUES ($1, $2, $3, $4)
	`, id, category, itemID, userID); err != nil {
		if isUniqueViolation(err) {
			return "", ErrFavoriteExists
		}
		return "", fmt.Errorf("insert favorite: %w", err)
	}

	return id, nil
}

// FavoriteByID returns the favourite with the given id.
func (s *Store) FavoriteByID(ctx context.Context, id string) (*Favorite, error) {
	var f Favorite
	err := s.db.QueryRowContext(ctx, `
		SELECT id, category, item_id, user_id
		FROM favorites
		WHERE id = $1
	`, id).Scan(&f.ID, &f.Category, &f.ItemID, &f.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup favorite: %w", err)
	}
	return &f, nil
}

// FavoriteByItem returns the favourite referencing itemID, regardless of owner.
func (s *Store) FavoriteByItem(ctx context.Context, itemID string) (*Favorite, error) {
	var f Favorite
	err := s.db.QueryRowContext(ctx, `
		SELECT id, category, item_id, user_id
		FROM favorites
		WHERE item_id = $1
	`, itemID).Scan(&f.ID, &f.Category, &f.ItemID, &f.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup favorite by item: %w", err)
	}
	return &f, nil
}

// Favorites lists the favourites of one user within a category.
func (s *Store) Favorites(ctx context.Context, userID, category string, limit, offset int) ([]Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, item_id, user_id
		FROM favorites
		WHERE user_id = $1 AND category = $2
		LIMIT $3 OFFSET $4
	`, userID, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select favorites: %w", err)
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.Category, &f.ItemID, &f.UserID); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}

	return favorites, nil
}

// DeleteFavorite removes the favourite with the given id.
func (s *Store) DeleteFavorite(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM favorites
		WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}
