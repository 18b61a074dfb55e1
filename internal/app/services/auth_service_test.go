package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/app/services/mocks"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/auth"
	"go.uber.org/mock/gomock"
)

func newAuthService(t *testing.T) (*AuthService, *mocks.MockUserStore, *auth.JWTService) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "schooladmin-test",
	})
	return NewAuthService(users, jwtService, zerolog.Nop()), users, jwtService
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	admin := &models.User{ID: 1, Username: "admin", PasswordHash: hash, Role: models.RoleAdmin}

	t.Run("valid credentials", func(t *testing.T) {
		svc, users, jwtService := newAuthService(t)
		users.EXPECT().GetUserByUsername(ctx, "admin").Return(admin, nil)

		resp, err := svc.Login(ctx, &dto.LoginRequest{Username: " admin ", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "admin", resp.Role)
		assert.Equal(t, 3600, resp.ExpiresIn)

		claims, err := jwtService.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, users, _ := newAuthService(t)
		users.EXPECT().GetUserByUsername(ctx, "admin").Return(admin, nil)

		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, users, _ := newAuthService(t)
		users.EXPECT().GetUserByUsername(ctx, "ghost").Return(nil, apperrors.NewResourceNotFoundError("user not found"))

		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "ghost", Password: "x"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestEnsureUserHashesPassword(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newAuthService(t)
	users.EXPECT().EnsureUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) (bool, error) {
			assert.Equal(t, "admin", u.Username)
			assert.Equal(t, models.RoleAdmin, u.Role)
			assert.True(t, auth.CheckPassword(u.PasswordHash, "s3cret-pass"))
			return true, nil
		})

	created, err := svc.EnsureUser(ctx, "admin", "s3cret-pass", models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, created)
}
