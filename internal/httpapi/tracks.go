package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"soundcrate/internal/app"
	"soundcrate/internal/app/tracks"
)

type trackRequest struct {
	ArtistID *string `json:"artist_id"`
	AlbumID  *string `json:"album_id"`
	Name     *string `json:"name"`
	Duration *int    `json:"duration"`
	Hidden   *bool   `json:"hidden"`
}

func (s *Server) handleAddTrack(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, app.MsgBadRequest, nil)
		return
	}

	in := tracks.CreateInput{Duration: req.Duration, Hidden: req.Hidden}
	if req.ArtistID != nil {
		in.ArtistID = *req.ArtistID
	}
	if req.AlbumID != nil {
		in.AlbumID = *req.AlbumID
	}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if err := s.tracks.Create(r.Context(), in); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, "Track created successfully.", nil)
}

func (s *Server) handleListTracks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	hidden, err := parseBoolFilter(query, "hidden")
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	filter := tracks.ListFilter{
		ArtistID: query.Get("artist_id"),
		AlbumID:  query.Get("album_id"),
		Hidden:   hidden,
	}
	list, err := s.tracks.List(r.Context(), filter, parsePage(query))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	if list == nil {
		list = []tracks.View{}
	}
	writeEnvelope(w, http.StatusOK, "Tracks retrieved successfully.", list)
}

func (s *Server) handleGetTrack(w http.ResponseWriter, r *http.Request) {
	track, err := s.tracks.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusOK, "Track retrieved successfully.", track)
}

func (s *Server) handleUpdateTrack(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, app.MsgBadRequest, nil)
		return
	}

	in := tracks.UpdateInput{Name: req.Name, Duration: req.Duration, Hidden: req.Hidden}
	if err := s.tracks.Update(r.Context(), r.PathValue("id"), in); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusNoContent, "Track updated successfully.", nil)
}

func (s *Server) handleDeleteTrack(w http.ResponseWriter, r *http.Request) {
	name, err := s.tracks.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusOK, fmt.Sprintf("Track:%s deleted successfully.", name), nil)
}
