// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package service composes the credential codec, token manager and
// stores into the operations exposed by the GraphQL endpoint. Every
// operation returns either a value or one of the modeled outcome
// errors; nothing in this package is fatal to the process.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"pressroom/internal/auth"
	"pressroom/internal/models"
	"pressroom/internal/schema"
	"pressroom/internal/store"
)

// Modeled authorization outcomes.
var (
	// ErrUnauthorized covers missing, invalid or expired credentials,
	// and lookups that must not leak account existence.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the identity is valid but its permission does
	// not match the requirement.
	ErrForbidden = errors.New("forbidden")
)

// AuthService implements the credential and identity operations.
type AuthService struct {
	users  *store.UserStore
	tokens *auth.TokenManager
}

// NewAuthService creates an AuthService over the given store and token
// manager.
func NewAuthService(users *store.UserStore, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new user with guest permission. The username and
// password are checked against the declared shape before hashing; a
// username collision surfaces as store.ErrDuplicateKey.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if err := schema.Users.CheckString("username", username); err != nil {
		return nil, err
	}
	if len(password) < schema.PasswordMinLen {
		return nil, schema.Invalid("password", fmt.Sprintf("shorter than %d characters", schema.PasswordMinLen))
	}
	if len(password) > schema.PasswordMaxLen {
		return nil, schema.Invalid("password", fmt.Sprintf("longer than %d characters", schema.PasswordMaxLen))
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if err := schema.Users.CheckBytes("passwd_hash", hash); err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Permission:   models.PermissionGuest,
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

// Login verifies the credentials and issues a bearer token bound to the
// username. A missing user and a wrong password are indistinguishable to
// the caller — both are ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return "", ErrUnauthorized
	}

	return s.tokens.Issue(user.Username)
}

// AuthenticateToken validates a bearer token and loads the user it
// asserts. When required is non-nil the user's permission must match it
// exactly; a mismatch is ErrForbidden.
func (s *AuthService) AuthenticateToken(ctx context.Context, token string, required *models.Permission) (*models.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.users.FindByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if required != nil {
		if err := RequirePermission(user, *required); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// RequirePermission checks the user's permission against the
// requirement by exact match. There is no level ordering: admin does
// not satisfy a staff requirement.
func RequirePermission(user *models.User, required models.Permission) error {
	if user == nil || user.Permission != required {
		return ErrForbidden
	}
	return nil
}

// UsersList returns every user. Admin only.
func (s *AuthService) UsersList(ctx context.Context, actor *models.User) ([]models.User, error) {
	if err := RequirePermission(actor, models.PermissionAdmin); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// ChangePermission sets the target user's permission level. Admin only.
// A matched update that modifies nothing surfaces as store.ErrNoChange.
// The read-modify-write is not transactional: concurrent admin edits of
// the same user can lose an update. Known limitation.
func (s *AuthService) ChangePermission(ctx context.Context, actor *models.User, targetID string, p models.Permission) (*models.User, error) {
	if err := RequirePermission(actor, models.PermissionAdmin); err != nil {
		return nil, err
	}
	if !p.Valid() {
		return nil, schema.Invalid("permission", "not an allowed value")
	}

	id, err := store.ParseID(targetID)
	if err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, id, bson.M{"permission": string(p)}); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

// UpdateInfo applies the name fields of patch to the user. The
// permission key is stripped from the patch even if present: this path
// must never change a permission level, whatever the caller sends.
// Any other field outside the name pair is rejected.
func (s *AuthService) UpdateInfo(ctx context.Context, user *models.User, patch map[string]string) (*models.User, error) {
	delete(patch, "permission")

	set := bson.M{}
	for name, value := range patch {
		switch name {
		case "f_name", "l_name":
			if err := schema.Users.CheckString(name, value); err != nil {
				return nil, err
			}
			set[name] = value
		default:
			return nil, schema.Invalid(name, "cannot be updated")
		}
	}
	if len(set) == 0 {
		return nil, schema.Invalid("patch", "no updatable fields")
	}

	if err := s.users.Update(ctx, user.ID, set); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, user.ID)
}
