// Package albums implements album catalog workflows, enforcing that every
// album references an existing artist.
package albums

import (
	"context"
	"errors"
	"fmt"

	"soundcrate/internal/app"
	"soundcrate/internal/app/validate"
	"soundcrate/internal/store"
)

// CreateInput is the payload for creating an album. All fields are required
// and ArtistID must resolve to an existing artist.
type CreateInput struct {
	ArtistID string
	Name     string
	Year     *int
	Hidden   *bool
}

// UpdateInput is a partial album update; at least one field must be set.
type UpdateInput struct {
	Name   *string
	Year   *int
	Hidden *bool
}

// ListFilter narrows album listings.
type ListFilter struct {
	ArtistID string
	Hidden   *bool
}

// Service coordinates album operations over the store.
type Service struct {
	store   *store.Store
	checker *validate.Checker
}

// New builds the album service.
func New(st *store.Store, checker *validate.Checker) *Service {
	return &Service{store: st, checker: checker}
}

// Create validates the payload and its artist reference, then inserts.
func (s *Service) Create(ctx context.Context, in CreateInput) error {
	if in.ArtistID == "" || in.Name == "" || in.Year == nil || in.Hidden == nil || !store.IsID(in.ArtistID) {
		return app.BadRequest(app.MsgBadRequest)
	}

	if _, err := s.checker.ArtistExists(ctx, in.ArtistID); err != nil {
		return err
	}

	if _, err := s.store.CreateAlbum(ctx, in.ArtistID, in.Name, *in.Year, *in.Hidden); err != nil {
		return err
	}
	return nil
}

// List returns albums matching the filter, clamped to the page window. An
// artist_id filter must reference an existing artist.
func (s *Service) List(ctx context.Context, filter ListFilter, page app.Page) ([]store.Album, error) {
	storeFilter := store.AlbumFilter{Hidden: filter.Hidden}
	if filter.ArtistID != "" {
		if !store.IsID(filter.ArtistID) {
			return nil, app.BadRequest(app.MsgBadRequest)
		}
		if _, err := s.store.ArtistByID(ctx, filter.ArtistID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, app.NotFound("Artist not found, not valid artist ID.")
			}
			return nil, fmt.Errorf("check artist filter: %w", err)
		}
		storeFilter.ArtistID = filter.ArtistID
	}

	albums, err := s.store.Albums(ctx, storeFilter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return app.ClampWindow(albums, page), nil
}

// Get returns a single album by id.
func (s *Service) Get(ctx context.Context, id string) (*store.Album, error) {
	if !store.IsID(id) {
		return nil, app.BadRequest(app.MsgBadRequest)
	}
	album, err := s.store.AlbumByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, app.NotFound(app.MsgNotFound)
		}
		return nil, fmt.Errorf("lookup album: %w", err)
	}
	return album, nil
}

// Update applies a partial update to an existing album.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) error {
	if !store.IsID(id) {
		return app.BadRequest(app.MsgBadRequest)
	}
	if in.Name == nil && in.Year == nil && in.Hidden == nil {
		return app.BadRequest(app.MsgBadRequest)
	}

	if _, err := s.store.AlbumByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return app.NotFound(app.MsgNotFound)
		}
		return fmt.Errorf("lookup album: %w", err)
	}

	return s.store.UpdateAlbum(ctx, id, store.AlbumUpdate{
		Name:   in.Name,
		Year:   in.Year,
		Hidden: in.Hidden,
	})
}

// Delete removes an album and returns its name for the response message.
func (s *Service) Delete(ctx context.Context, id string) (string, error) {
	if !store.IsID(id) {
		return "", app.BadRequest(app.MsgBadRequest)
	}

	album, err := s.store.AlbumByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", app.NotFound(app.MsgNotFound)
		}
		return "", fmt.Errorf("lookup album: %w", err)
	}

	if err := s.store.DeleteAlbum(ctx, id); err != nil {
		return "", err
	}
	return album.Name, nil
}
