// Package artists implements artist catalog workflows.
package artists

import (
	"context"
	"errors"
	"fmt"

	"soundcrate/internal/app"
	"soundcrate/internal/store"
)

// CreateInput is the payload for creating an artist. All fields are required.
type CreateInput struct {
	Name   string
	Grammy *int
	Hidden *bool
}

// UpdateInput is a partial artist update; at least one field must be set.
// A present false for Hidden is applied like any other value.
type UpdateInput struct {
	Name   *string
	Grammy *int
	Hidden *bool
}

// Service coordinates artist operations over the store.
type Service struct {
	store *store.Store
}

// New builds the artist service.
func New(st *store.Store) *Service {
	return &Service{store: st}
}

// Create validates the payload and inserts the artist.
func (s *Service) Create(ctx context.Context, in CreateInput) error {
	if in.Name == "" || in.Grammy == nil || in.Hidden == nil {
		return app.BadRequest(app.MsgBadRequest)
	}
	if _, err := s.store.CreateArtist(ctx, in.Name, *in.Grammy, *in.Hidden); err != nil {
		return err
	}
	return nil
}

// List returns artists matching the filter, clamped to the page window.
func (s *Service) List(ctx context.Context, filter store.ArtistFilter, page app.Page) ([]store.Artist, error) {
	artists, err := s.store.Artists(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return app.ClampWindow(artists, page), nil
}

// Get returns a single artist by id.
func (s *Service) Get(ctx context.Context, id string) (*store.Artist, error) {
	if !store.IsID(id) {
		return nil, app.BadRequest(app.MsgBadRequest)
	}
	artist, err := s.store.ArtistByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, app.NotFound("Artist Not Found")
		}
		return nil, fmt.Errorf("lookup artist: %w", err)
	}
	return artist, nil
}

// Update applies a partial update to an existing artist.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) error {
	if !store.IsID(id) {
		return app.BadRequest(app.MsgBadRequest)
	}
	if in.Name == nil && in.Grammy == nil && in.Hidden == nil {
		return app.BadRequest(app.MsgBadRequest)
	}

	if _, err := s.store.ArtistByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return app.NotFound("Artist Not Found")
		}
		return fmt.Errorf("lookup artist: %w", err)
	}

	return s.store.UpdateArtist(ctx, id, store.ArtistUpdate{
		Name:   in.Name,
		Grammy: in.Grammy,
		Hidden: in.Hidden,
	})
}

// Delete removes an artist and returns its name for the response message.
func (s *Service) Delete(ctx context.Context, id string) (string, error) {
	if !store.IsID(id) {
		return "", app.BadRequest(app.MsgBadRequest)
	}

	artist, err := s.store.ArtistByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", app.NotFound("Artist Not Found")
		}
		return "", fmt.Errorf("lookup artist: %w", err)
	}

	if err := s.store.DeleteArtist(ctx, id); err != nil {
		return "", err
	}
	return artist.Name, nil
}
