package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks the credentials and issues an access token. Unknown users and
// wrong passwords are reported the same way.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Warn().Str("username", username).Msg("Login attempt for unknown user")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn().Str("username", username).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return &dto.LoginResponse{
		Token:     token,
		Role:      string(user.Role),
		UserID:    user.ID,
		ExpiresIn: expiresIn,
	}, nil
}

// EnsureUser creates a user with the given password unless the username is taken
func (s *AuthService) EnsureUser(ctx context.Context, username, password string, role models.Role) (bool, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("error hashing password: %w", err)
	}
	created, err := s.userRepo.EnsureUser(ctx, &models.User{
		Username:     strings.TrimSpace(username),
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return false, writeError(err, "creating", "user")
	}
	return created, nil
}
