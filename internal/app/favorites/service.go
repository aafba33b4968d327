// Package favorites implements favouriting across artists, albums and
// tracks. A given item can be favourited at most once, by anyone.
package favorites

import (
	"context"
	"errors"
	"fmt"

	"soundcrate/internal/app"
	"soundcrate/internal/app/validate"
	"soundcrate/internal/store"
)

// View is a favourite read payload with the favourited item's name joined
// and the owner id dropped.
type View struct {
	FavoriteID string `json:"favorite_id"`
	Category   string `json:"category"`
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
}

// Service coordinates favourite operations over the store.
type Service struct {
	store   *store.Store
	checker *validate.Checker
}

// New builds the favourites service.
func New(st *store.Store, checker *validate.Checker) *Service {
	return &Service{store: st, checker: checker}
}

// Add favourites an item for the calling user. The uniqueness check runs
// before category validation, matching the contracted check order.
func (s *Service) Add(ctx context.Context, userID, category, itemID string) error {
	if category == "" || itemID == "" || !store.IsID(itemID) {
		return app.BadRequest(app.MsgBadRequest)
	}

	if err := s.checker.FavoriteUnique(ctx, itemID); err != nil {
		return err
	}
	if _, err := s.checker.FavoriteTarget(ctx, category, itemID); err != nil {
		return err
	}

	if _, err := s.store.CreateFavorite(ctx, category, itemID, userID); err != nil {
		if errors.Is(err, store.ErrFavoriteExists) {
			return app.Conflict("Favourite already exists.")
		}
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

// Remove deletes a favourite by its own id.
func (s *Service) Remove(ctx context.Context, id string) error {
	if !store.IsID(id) {
		return app.BadRequest(app.MsgBadRequest)
	}

	if _, err := s.store.FavoriteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return app.NotFound(app.MsgNotFound)
		}
		return fmt.Errorf("lookup favorite: %w", err)
	}

	return s.store.DeleteFavorite(ctx, id)
}

// List returns the calling user's favourites within a category, with item
// names joined and clamped to the page window.
func (s *Service) List(ctx context.Context, userID, category string, page app.Page) ([]View, error) {
	if !validate.ValidCategory(category) {
		return nil, app.BadRequest("Invalid item type")
	}

	favorites, err := s.store.Favorites(ctx, userID, category, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(favorites))
	for _, f := range favorites {
		name, err := s.itemName(ctx, f.Category, f.ItemID)
		if err != nil {
			return nil, err
		}
		views = append(views, View{
			FavoriteID: f.ID,
			Category:   f.Category,
			ItemID:     f.ItemID,
			Name:       name,
		})
	}

	return app.ClampWindow(views, page), nil
}

// itemName resolves the favourited item's display name. A dangling
// reference is an internal error here, not a placeholder.
func (s *Service) itemName(ctx context.Context, category, itemID string) (string, error) {
	switch category {
	case validate.CategoryArtist:
		artist, err := s.store.ArtistByID(ctx, itemID)
		if err != nil {
			return "", fmt.Errorf("join favorite artist: %w", err)
		}
		return artist.Name, nil
	case validate.CategoryAlbum:
		album, err := s.store.AlbumByID(ctx, itemID)
		if err != nil {
			return "", fmt.Errorf("join favorite album: %w", err)
		}
		return album.Name, nil
	case validate.CategoryTrack:
		track, err := s.store.TrackByID(ctx, itemID)
		if err != nil {
			return "", fmt.Errorf("join favorite track: %w", err)
		}
		return track.Name, nil
	}
	return "", fmt.Errorf("unknown favorite category %q", category)
}
