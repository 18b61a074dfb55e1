package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/config"
)

// UserEnsurer creates a user unless the username already exists
type UserEnsurer interface {
	EnsureUser(ctx context.Context, username, password string, role models.Role) (bool, error)
}

// CreateDefaultData creates the initial administrator account. Catalog rows
// are seeded by the migrations. Nothing is done when no admin password is
// configured.
func CreateDefaultData(ctx context.Context, users UserEnsurer, cfg config.SeedConfig, lgr zerolog.Logger) error {
	username := strings.TrimSpace(cfg.AdminUsername)
	if username == "" || cfg.AdminPassword == "" {
		lgr.Info().Msg("No admin credentials configured, skipping admin seed")
		return nil
	}

	lgr.Info().Str("username", username).Msg("Checking/Creating default admin user...")
	created, err := users.EnsureUser(ctx, username, cfg.AdminPassword, models.RoleAdmin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return fmt.Errorf("seeding admin user: %w", err)
	}

	if created {
		lgr.Info().Str("username", username).Msg("Default admin user created")
	} else {
		lgr.Debug().Str("username", username).Msg("Default admin user already exists")
	}
	return nil
}
