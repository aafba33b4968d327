package httpapi

import (
	"encoding/json"
	"net/http"

	"soundcrate/internal/app"
	"soundcrate/internal/app/favorites"
	"soundcrate/internal/auth"
)

type favoriteRequest struct {
	Category string `json:"category"`
	ItemID   string `json:"item_id"`
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, app.MsgBadRequest, nil)
		return
	}

	principal, _ := auth.PrincipalFromContext(r.Context())
	if err := s.favorites.Add(r.Context(), principal.UserID, req.Category, req.ItemID); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, "Favorite added successfully.", nil)
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	if err := s.favorites.Remove(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusOK, "Favorite removed successfully.", nil)
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())
	list, err := s.favorites.List(r.Context(), principal.UserID, r.PathValue("category"), parsePage(r.URL.Query()))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	if list == nil {
		list = []favorites.View{}
	}
	writeEnvelope(w, http.StatusOK, "Favorites retrieved successfully.", list)
}
