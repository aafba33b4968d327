package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"soundcrate/internal/app"
	"soundcrate/internal/app/albums"
	"soundcrate/internal/store"
)

type albumRequest struct {
	ArtistID *string `json:"artist_id"`
	Name     *string `json:"name"`
	Year     *int    `json:"year"`
	Hidden   *bool   `json:"hidden"`
}

func (s *Server) handleAddAlbum(w http.ResponseWriter, r *http.Request) {
	var req albumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, app.MsgBadRequest, nil)
		return
	}

	in := albums.CreateInput{Year: req.Year, Hidden: req.Hidden}
	if req.ArtistID != nil {
		in.ArtistID = *req.ArtistID
	}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if err := s.albums.Create(r.Context(), in); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, "Album created successfully.", nil)
}

func (s *Server) handleListAlbums(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	hidden, err := parseBoolFilter(query, "hidden")
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	filter := albums.ListFilter{ArtistID: query.Get("artist_id"), Hidden: hidden}
	list, err := s.albums.List(r.Context(), filter, parsePage(query))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	if list == nil {
		list = []store.Album{}
	}
	writeEnvelope(w, http.StatusOK, "Albums retrieved successfully.", list)
}

func (s *Server) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := s.albums.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusOK, "Album retrieved successfully.", album)
}

func (s *Server) handleUpdateAlbum(w http.ResponseWriter, r *http.Request) {
	var req albumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, app.MsgBadRequest, nil)
		return
	}

	in := albums.UpdateInput{Name: req.Name, Year: req.Year, Hidden: req.Hidden}
	if err := s.albums.Update(r.Context(), r.PathValue("id"), in); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusNoContent, "Album updated successfully.", nil)
}

func (s *Server) handleDeleteAlbum(w http.ResponseWriter, r *http.Request) {
	name, err := s.albums.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusOK, fmt.Sprintf("Album:%s deleted successfully.", name), nil)
}
