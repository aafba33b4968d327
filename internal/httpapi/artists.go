package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"soundcrate/internal/app"
	"soundcrate/internal/app/artists"
	"soundcrate/internal/store"
)

type artistRequest struct {
	Name   *string `json:"name"`
	Grammy *int    `json:"grammy"`
	Hidden *bool   `json:"hidden"`
}

func (s *Server) handleAddArtist(w http.ResponseWriter, r *http.Request) {
	var req artistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, app.MsgBadRequest, nil)
		return
	}

	in := artists.CreateInput{Grammy: req.Grammy, Hidden: req.Hidden}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if err := s.artists.Create(r.Context(), in); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, "Artist created successfully.", nil)
}

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	grammy, err := parseIntFilter(query, "grammy")
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	hidden, err := parseBoolFilter(query, "hidden")
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	list, err := s.artists.List(r.Context(), store.ArtistFilter{Grammy: grammy, Hidden: hidden}, parsePage(query))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	if list == nil {
		list = []store.Artist{}
	}
	writeEnvelope(w, http.StatusOK, "Artists retrieved successfully.", list)
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	artist, err := s.artists.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusOK, "Artist retrieved successfully.", artist)
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	var req artistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, app.MsgBadRequest, nil)
		return
	}

	in := artists.UpdateInput{Name: req.Name, Grammy: req.Grammy, Hidden: req.Hidden}
	if err := s.artists.Update(r.Context(), r.PathValue("id"), in); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusNoContent, "Artist updated successfully.", nil)
}

func (s *Server) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	name, err := s.artists.Delete(r.Context(), id)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusOK,
		fmt.Sprintf("Artist:%s deleted successfully.", name),
		map[string]string{"artist_id": id})
}
