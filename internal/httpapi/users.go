package httpapi

import (
	"encoding/json"
	"net/http"

	"soundcrate/internal/app"
	"soundcrate/internal/auth"
	"soundcrate/internal/store"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type updatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, app.MsgBadRequest, nil)
		return
	}

	if err := s.users.Signup(r.Context(), req.Email, req.Password); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, "User created successfully.", nil)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, app.MsgBadRequest, nil)
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusOK, "Login successful.", map[string]string{"token": token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())
	if err := s.users.Logout(r.Context(), principal.UserID); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusOK, "User logged out successfully", nil)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	users, err := s.users.List(r.Context(), query.Get("role"), parsePage(query))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	if users == nil {
		users = []store.User{}
	}
	writeEnvelope(w, http.StatusOK, "Users retrieved successfully.", users)
}

func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, app.MsgBadRequest, nil)
		return
	}

	if err := s.users.Add(r.Context(), req.Email, req.Password, auth.Role(req.Role)); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, "User created successfully.", nil)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusOK, "User deleted successfully.", nil)
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req updatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, app.MsgBadRequest, nil)
		return
	}

	principal, _ := auth.PrincipalFromContext(r.Context())
	if err := s.users.UpdatePassword(r.Context(), principal.UserID, req.OldPassword, req.NewPassword); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeEnvelope(w, http.StatusNoContent, "Password updated successfully", nil)
}
