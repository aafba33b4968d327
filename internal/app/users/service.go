// Package users implements account workflows: signup, login, administration
// and self-service password changes.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"soundcrate/internal/app"
	"soundcrate/internal/auth"
	"soundcrate/internal/store"
)

// Service coordinates account operations over the store.
type Service struct {
	store      *store.Store
	tokens     *auth.Manager
	bcryptCost int
}

// New builds the user service.
func New(st *store.Store, tokens *auth.Manager, bcryptCost int) *Service {
	return &Service{store: st, tokens: tokens, bcryptCost: bcryptCost}
}

// Signup registers the very first account, which becomes the admin. Any
// later signup is rejected: additional accounts are created by the admin.
func (s *Service) Signup(ctx context.Context, email, password string) error {
	if email == "" {
		return app.BadRequest("Bad Request, Reason:Email")
	}
	if password == "" {
		return app.BadRequest("Bad Request, Reason:Password")
	}

	if _, err := s.store.UserByEmail(ctx, email); err == nil {
		return app.Conflict("Email already exists.")
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("check email: %w", err)
	}

	count, err := s.store.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count != 0 {
		return app.Conflict("Admin already exists.")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}

	if _, err := s.store.CreateUser(ctx, email, hash, string(auth.RoleAdmin)); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return app.Conflict("Email already exists.")
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// Login verifies credentials and issues an access token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" {
		return "", app.BadRequest("Bad Request, Reason:Email")
	}
	if password == "" {
		return "", app.BadRequest("Bad Request, Reason:Password")
	}

	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			auth.CompareDummy(password)
			return "", app.NotFound("User not found")
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", app.Unauthorized("Incorrect Password")
	}

	token, err := s.tokens.Generate(user.ID, auth.Role(user.Role))
	if err != nil {
		return "", err
	}
	return token, nil
}

// Logout confirms the principal still maps to a live account.
func (s *Service) Logout(ctx context.Context, userID string) error {
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return app.NotFound("User not found.")
		}
		return fmt.Errorf("lookup user: %w", err)
	}
	return nil
}

// List returns non-admin accounts. A role query of "editor" (any case)
// narrows to editors; any other non-empty value narrows to viewers.
func (s *Service) List(ctx context.Context, roleFilter string, page app.Page) ([]store.User, error) {
	var filter store.UserFilter
	if roleFilter != "" {
		if strings.EqualFold(roleFilter, string(auth.RoleEditor)) {
			filter.Role = string(auth.RoleEditor)
		} else {
			filter.Role = string(auth.RoleViewer)
		}
	}

	users, err := s.store.Users(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return app.ClampWindow(users, page), nil
}

// Add creates an account with the given role. Admin accounts cannot be
// created this way; there is exactly one, made by the first signup.
func (s *Service) Add(ctx context.Context, email, password string, role auth.Role) error {
	if email == "" || password == "" || role == "" || role == auth.RoleAdmin {
		return app.BadRequest(app.MsgBadRequest)
	}
	if !auth.ValidRole(role) {
		return app.BadRequest(app.MsgBadRequest)
	}

	if _, err := s.store.UserByEmail(ctx, email); err == nil {
		return app.Conflict("Email already exists")
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("check email: %w", err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}

	if _, err := s.store.CreateUser(ctx, email, hash, string(role)); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return app.Conflict("Email already exists")
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// Delete removes an account. Admin accounts can never be deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !store.IsID(id) {
		return app.BadRequest(app.MsgBadRequest)
	}

	user, err := s.store.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return app.NotFound("User not found.")
		}
		return fmt.Errorf("lookup user: %w", err)
	}
	if auth.Role(user.Role) == auth.RoleAdmin {
		return app.Forbidden(app.MsgForbidden)
	}

	return s.store.DeleteUser(ctx, id)
}

// UpdatePassword rotates the principal's own password after verifying the
// current one.
func (s *Service) UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return app.BadRequest(app.MsgBadRequest)
	}

	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return app.NotFound("User not found.")
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	if !auth.VerifyPassword(oldPassword, user.PasswordHash) {
		return app.Unauthorized(app.MsgUnauthorized)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.store.UpdateUserPassword(ctx, userID, hash)
}
