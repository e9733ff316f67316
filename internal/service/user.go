package service

import (
	"context"
	"fmt"

	"github.com/casernelab/firequiz/internal/core"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Users core.UserRepository
}

// UserService exposes account administration. Every operation checks the
// acting session; only admins may manage users.
type UserService struct {
	users core.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{users: opts.Users}
}

// Create provisions an account with an explicit role. The password arrives
// in plaintext and is hashed here.
func (s *UserService) Create(ctx context.Context, actor domainauth.Session, req *model.CreateUserRequest, password string) (*model.User, error) {
	if !actor.CanManageUsers() {
		return nil, core.ErrForbidden
	}
	if password != "" {
		if len(password) < model.MinPasswordLen {
			return nil, fmt.Errorf("password must be at least %d characters", model.MinPasswordLen)
		}
		hash, err := HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		req.PasswordHash = hash
	}
	return s.users.Create(ctx, req)
}

// GetByID retrieves any account for admins; other roles may only read their
// own record.
func (s *UserService) GetByID(ctx context.Context, actor domainauth.Session, id string) (*model.User, error) {
	if !actor.CanManageUsers() && actor.UserID != id {
		return nil, core.ErrForbidden
	}
	return s.users.GetByID(ctx, id)
}

// List returns a page of accounts.
func (s *UserService) List(ctx context.Context, actor domainauth.Session, opts model.UsersListOptions) ([]*model.User, error) {
	if !actor.CanManageUsers() {
		return nil, core.ErrForbidden
	}
	return s.users.List(ctx, opts)
}

// Update modifies an account. Admins cannot demote themselves, which keeps
// at least one admin reachable.
func (s *UserService) Update(ctx context.Context, actor domainauth.Session, id string, req model.UpdateUserRequest) (*model.User, error) {
	if !actor.CanManageUsers() {
		return nil, core.ErrForbidden
	}
	if req.Role != nil && actor.UserID == id && !req.Role.IsAdmin() {
		return nil, fmt.Errorf("%w: cannot remove your own admin role", core.ErrForbidden)
	}
	return s.users.Update(ctx, id, req)
}

// Delete removes an account. Self-deletion is refused.
func (s *UserService) Delete(ctx context.Context, actor domainauth.Session, id string) (bool, error) {
	if !actor.CanManageUsers() {
		return false, core.ErrForbidden
	}
	if actor.UserID == id {
		return false, fmt.Errorf("%w: cannot delete your own account", core.ErrForbidden)
	}
	return s.users.Delete(ctx, id)
}
