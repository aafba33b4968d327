// Package validate confirms that cross-entity references resolve to
// existing, relationship-consistent records. It has no side effects; every
// check is a lookup plus a rule.
package validate

import (
	"context"
	"errors"
	"fmt"

	"soundcrate/internal/app"
	"soundcrate/internal/store"
)

// Favourite target categories.
const (
	CategoryArtist = "artist"
	CategoryAlbum  = "album"
	CategoryTrack  = "track"
)

// ArtistFinder looks up artists by id.
type ArtistFinder interface {
	ArtistByID(ctx context.Context, id string) (*store.Artist, error)
}

// AlbumFinder looks up albums by id.
type AlbumFinder interface {
	AlbumByID(ctx context.Context, id string) (*store.Album, error)
}

// TrackFinder looks up tracks by id.
type TrackFinder interface {
	TrackByID(ctx context.Context, id string) (*store.Track, error)
}

// FavoriteFinder looks up favourites by the favourited item.
type FavoriteFinder interface {
	FavoriteByItem(ctx context.Context, itemID string) (*store.Favorite, error)
}

// Checker runs referential checks over repository lookups.
type Checker struct {
	Artists   ArtistFinder
	Albums    AlbumFinder
	Tracks    TrackFinder
	Favorites FavoriteFinder
}

// ArtistExists resolves id to an artist or reports 404.
func (c *Checker) ArtistExists(ctx context.Context, id string) (*store.Artist, error) {
	artist, err := c.Artists.ArtistByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, app.NotFound(app.MsgNotFound)
		}
		return nil, fmt.Errorf("check artist: %w", err)
	}
	return artist, nil
}

// AlbumExists resolves id to an album or reports 404.
func (c *Checker) AlbumExists(ctx context.Context, id string) (*store.Album, error) {
	album, err := c.Albums.AlbumByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, app.NotFound(app.MsgNotFound)
		}
		return nil, fmt.Errorf("check album: %w", err)
	}
	return album, nil
}

// AlbumBelongsToArtist verifies the album is owned by artistID. A mismatch
// is 403, not 404: the album exists, the claimed relationship does not.
func (c *Checker) AlbumBelongsToArtist(album *store.Album, artistID string) error {
	if album.ArtistID != artistID {
		return app.Forbidden(app.MsgForbidden)
	}
	return nil
}

// FavoriteTarget resolves (category, itemID) to the referenced item's name.
// An unrecognized category is 400, an absent item 404.
func (c *Checker) FavoriteTarget(ctx context.Context, category, itemID string) (string, error) {
	var (
		name string
		err  error
	)
	switch category {
	case CategoryArtist:
		var artist *store.Artist
		if artist, err = c.Artists.ArtistByID(ctx, itemID); err == nil {
			name = artist.Name
		}
	case CategoryAlbum:
		var album *store.Album
		if album, err = c.Albums.AlbumByID(ctx, itemID); err == nil {
			name = album.Name
		}
	case CategoryTrack:
		var track *store.Track
		if track, err = c.Tracks.TrackByID(ctx, itemID); err == nil {
			name = track.Name
		}
	default:
		return "", app.BadRequest("Invalid item type")
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", app.NotFound(app.MsgNotFound)
		}
		return "", fmt.Errorf("check favorite target: %w", err)
	}
	return name, nil
}

// FavoriteUnique reports 409 when itemID is already favourited by anyone.
// Uniqueness is global across users, by item id.
func (c *Checker) FavoriteUnique(ctx context.Context, itemID string) error {
	_, err := c.Favorites.FavoriteByItem(ctx, itemID)
	if err == nil {
		return app.Conflict("Favourite already exists.")
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("check favorite uniqueness: %w", err)
}

// ValidCategory reports whether category names a favourite target type.
func ValidCategory(category string) bool {
	switch category {
	case CategoryArtist, CategoryAlbum, CategoryTrack:
		return true
	}
	return false
}
