package main

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"soundcrate/internal/app/albums"
	"soundcrate/internal/app/artists"
	"soundcrate/internal/app/favorites"
	"soundcrate/internal/app/tracks"
	"soundcrate/internal/app/users"
	"soundcrate/internal/app/validate"
	"soundcrate/internal/auth"
	"soundcrate/internal/httpapi"
	"soundcrate/internal/store"
)

func newHTTPHandler(cfg Config, db *sql.DB, logger zerolog.Logger) (http.Handler, error) {
	dataStore := store.New(db)

	tokens, err := auth.NewManager(cfg.JWTSecret, cfg.TokenExpiry)
	if err != nil {
		return nil, err
	}

	checker := &validate.Checker{
		Artists:   dataStore,
		Albums:    dataStore,
		Tracks:    dataStore,
		Favorites: dataStore,
	}

	userSvc := users.New(dataStore, tokens, cfg.BcryptCost)
	artistSvc := artists.New(dataStore)
	albumSvc := albums.New(dataStore, checker)
	trackSvc := tracks.New(dataStore, checker)
	favoriteSvc := favorites.New(dataStore, checker)

	server := httpapi.New(userSvc, artistSvc, albumSvc, trackSvc, favoriteSvc, tokens, logger)
	return withCORS(cfg.AllowedOrigins, server.Routes()), nil
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if len(allowedOrigins) == 0 || origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
