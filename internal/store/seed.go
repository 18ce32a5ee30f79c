package store

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"pressroom/internal/models"
)

// Seed populates the store with initial development data.
// It creates a default admin user if the users collection is empty, so a
// fresh checkout can exercise the admin-gated mutations immediately.
func Seed(ctx context.Context, users *UserStore) error {
	existing, err := users.List(ctx)
	if err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("store already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	if _, err := users.Insert(ctx, &models.User{
		Username:     "pressadmin",
		PasswordHash: hash,
		Permission:   models.PermissionAdmin,
	}); err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("store seeded with default admin user",
		"username", "pressadmin",
		"password", "changeme123",
	)

	return nil
}
