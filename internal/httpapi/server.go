// Package httpapi wires HTTP handlers to the resource services. Every
// protected route passes through authentication, then a per-operation role
// gate, before its handler runs.
package httpapi

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"soundcrate/internal/app"
	"soundcrate/internal/app/albums"
	"soundcrate/internal/app/artists"
	"soundcrate/internal/app/favorites"
	"soundcrate/internal/app/tracks"
	"soundcrate/internal/auth"
	"soundcrate/internal/store"
)

// UserService captures the account operations needed by the HTTP handlers.
type UserService interface {
	Signup(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, userID string) error
	List(ctx context.Context, roleFilter string, page app.Page) ([]store.User, error)
	Add(ctx context.Context, email, password string, role auth.Role) error
	Delete(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}

// ArtistService describes artist catalog workflows.
type ArtistService interface {
	Create(ctx context.Context, in artists.CreateInput) error
	List(ctx context.Context, filter store.ArtistFilter, page app.Page) ([]store.Artist, error)
	Get(ctx context.Context, id string) (*store.Artist, error)
	Update(ctx context.Context, id string, in artists.UpdateInput) error
	Delete(ctx context.Context, id string) (string, error)
}

// AlbumService describes album catalog workflows.
type AlbumService interface {
	Create(ctx context.Context, in albums.CreateInput) error
	List(ctx context.Context, filter albums.ListFilter, page app.Page) ([]store.Album, error)
	Get(ctx context.Context, id string) (*store.Album, error)
	Update(ctx context.Context, id string, in albums.UpdateInput) error
	Delete(ctx context.Context, id string) (string, error)
}

// TrackService describes track catalog workflows.
type TrackService interface {
	Create(ctx context.Context, in tracks.CreateInput) error
	List(ctx context.Context, filter tracks.ListFilter, page app.Page) ([]tracks.View, error)
	Get(ctx context.Context, id string) (*tracks.View, error)
	Update(ctx context.Context, id string, in tracks.UpdateInput) error
	Delete(ctx context.Context, id string) (string, error)
}

// FavoriteService describes favouriting workflows.
type FavoriteService interface {
	Add(ctx context.Context, userID, category, itemID string) error
	Remove(ctx context.Context, id string) error
	List(ctx context.Context, userID, category string, page app.Page) ([]favorites.View, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	users     UserService
	artists   ArtistService
	albums    AlbumService
	tracks    TrackService
	favorites FavoriteService
	tokens    *auth.Manager
	logger    zerolog.Logger
}

// New configures a Server with the given services and token manager.
func New(
	users UserService,
	artists ArtistService,
	albums AlbumService,
	tracks TrackService,
	favorites FavoriteService,
	tokens *auth.Manager,
	logger zerolog.Logger,
) *Server {
	return &Server{
		users:     users,
		artists:   artists,
		albums:    albums,
		tracks:    tracks,
		favorites: favorites,
		tokens:    tokens,
		logger:    logger,
	}
}

// Routes exposes the full HTTP surface.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// User routes
	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /logout", s.requireAuth(s.handleLogout))
	mux.HandleFunc("GET /users", s.requireAuth(s.requireRole(auth.OpListUsers, s.handleListUsers)))
	mux.HandleFunc("POST /users/add-user", s.requireAuth(s.requireRole(auth.OpAddUser, s.handleAddUser)))
	mux.HandleFunc("DELETE /users/{id}", s.requireAuth(s.requireRole(auth.OpDeleteUser, s.handleDeleteUser)))
	mux.HandleFunc("PUT /users/update-password", s.requireAuth(s.requireRole(auth.OpUpdatePassword, s.handleUpdatePassword)))

	// Artist routes
	mux.HandleFunc("POST /artists/add-artist", s.requireAuth(s.requireRole(auth.OpWriteArtist, s.handleAddArtist)))
	mux.HandleFunc("GET /artists", s.requireAuth(s.handleListArtists))
	mux.HandleFunc("GET /artists/{id}", s.requireAuth(s.handleGetArtist))
	mux.HandleFunc("PUT /artists/{id}", s.requireAuth(s.requireRole(auth.OpWriteArtist, s.handleUpdateArtist)))
	mux.HandleFunc("DELETE /artists/{id}", s.requireAuth(s.requireRole(auth.OpWriteArtist, s.handleDeleteArtist)))

	// Album routes
	mux.HandleFunc("POST /albums/add-album", s.requireAuth(s.requireRole(auth.OpWriteAlbum, s.handleAddAlbum)))
	mux.HandleFunc("GET /albums", s.requireAuth(s.handleListAlbums))
	mux.HandleFunc("GET /albums/{id}", s.requireAuth(s.handleGetAlbum))
	mux.HandleFunc("PUT /albums/{id}", s.requireAuth(s.requireRole(auth.OpWriteAlbum, s.handleUpdateAlbum)))
	mux.HandleFunc("DELETE /albums/{id}", s.requireAuth(s.requireRole(auth.OpWriteAlbum, s.handleDeleteAlbum)))

	// Track routes
	mux.HandleFunc("POST /tracks/add-track", s.requireAuth(s.requireRole(auth.OpWriteTrack, s.handleAddTrack)))
	mux.HandleFunc("GET /tracks", s.requireAuth(s.handleListTracks))
	mux.HandleFunc("GET /tracks/{id}", s.requireAuth(s.handleGetTrack))
	mux.HandleFunc("PUT /tracks/{id}", s.requireAuth(s.requireRole(auth.OpWriteTrack, s.handleUpdateTrack)))
	mux.HandleFunc("DELETE /tracks/{id}", s.requireAuth(s.requireRole(auth.OpWriteTrack, s.handleDeleteTrack)))

	// Favourite routes: authentication only, no role gate.
	mux.HandleFunc("POST /favorites/add-favorite", s.requireAuth(s.handleAddFavorite))
	mux.HandleFunc("DELETE /favorites/remove-favorite/{id}", s.requireAuth(s.handleRemoveFavorite))
	mux.HandleFunc("GET /favorites/{category}", s.requireAuth(s.handleListFavorites))

	var handler http.Handler = mux
	handler = recovery(s.logger)(handler)
	handler = requestLogging(s.logger)(handler)
	return handler
}
