package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"usecase-market/internal/auth"
	"usecase-market/internal/model"
	"usecase-market/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// authService implements AuthService with bcrypt credentials and JWT
// session tokens.
type authService struct {
	userRepo repository.UserRepository
	codec    *auth.TokenCodec
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository, codec *auth.TokenCodec, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		codec:    codec,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// SignUp registers a new account and issues a session token.
func (s *authService) SignUp(ctx context.Context, req *model.SignUpRequest) (*model.SessionResponse, error) {
	if err := validateSignUp(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to check existing account")
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}
	if existing != nil {
		s.logger.Warn().Str("email", email).Msg("sign-up for existing email")
		return nil, model.ErrEmailExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to create account")
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	token, err := s.codec.Generate(user.ID, user.Email)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to issue token")
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("account created")

	return &model.SessionResponse{Token: token, User: *user}, nil
}

// SignIn verifies credentials and issues a session token.
func (s *authService) SignIn(ctx context.Context, req *model.SignInRequest) (*model.SessionResponse, error) {
	if req == nil || req.Email == "" || req.Password == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up account")
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn().Str("email", email).Msg("sign-in rejected")
		return nil, model.ErrBadCredentials
	}

	token, err := s.codec.Generate(user.ID, user.Email)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to issue token")
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("signed in")

	return &model.SessionResponse{Token: token, User: *user}, nil
}

// SignOut ends the session. Tokens are stateless, so there is nothing to
// revoke server-side; the client discards the token.
func (s *authService) SignOut(ctx context.Context, userID string) error {
	s.logger.Info().Str("user_id", userID).Msg("signed out")
	return nil
}

// validateSignUp validates the registration request.
func validateSignUp(req *model.SignUpRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeMissingField, "Request body is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Email is required")
	}
	if !strings.Contains(req.Email, "@") {
		return model.NewDomainError(model.ErrCodeMissingField, "Email address is not valid")
	}
	if len(req.Password) < auth.MinPasswordLength {
		return model.NewDomainError(model.ErrCodeMissingField,
			fmt.Sprintf("Password must be at least %d characters", auth.MinPasswordLength))
	}
	return nil
}
