package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/app/models/dto"
	"github.com/campushire/campushire/internal/pkg/apperrors"
	"github.com/campushire/campushire/internal/pkg/auth"
	"github.com/campushire/campushire/internal/pkg/validation"
)

// AuthService handles account registration and login.
type AuthService struct {
	users      UserStore
	colleges   CollegeStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, colleges CollegeStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:      users,
		colleges:   colleges,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *AuthService) validateRegistration(req *dto.RegisterRequest) error {
	if !validation.IsValidName(strings.TrimSpace(req.Name)) {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}
	if !validation.IsValidEmail(strings.ToLower(req.Email)) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidPassword(req.Password) {
		return fmt.Errorf("%w: password must be at least %d characters",
			apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}
	if !req.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, req.Role)
	}
	if req.Role == models.RoleStudent && req.College == nil {
		return fmt.Errorf("%w: students must register under a college", apperrors.ErrValidationFailed)
	}
	if !req.Role.RequiresCollege() && req.College != nil {
		return fmt.Errorf("%w: recruiters do not register under a college", apperrors.ErrValidationFailed)
	}
	return nil
}

// Register creates an account for the requested role and returns a signed
// token for it. A College registration also creates the college itself, with
// the account name as the college name; the two inserts are atomic.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashed,
		Role:     req.Role,
	}

	switch req.Role {
	case models.RoleStudent:
		// The target college must already exist.
		college, err := s.colleges.GetByID(ctx, *req.College)
		if err != nil {
			return nil, err
		}
		user.CollegeID = &college.ID

		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}

	case models.RoleCollege:
		taken, err := s.colleges.NameExists(ctx, user.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check college name: %w", err)
		}
		if taken {
			return nil, apperrors.ErrCollegeAlreadyExists
		}

		college := &models.College{Name: user.Name}
		if err := s.users.CreateCollegeUser(ctx, college, user); err != nil {
			return nil, err
		}

	case models.RoleRecruiter:
		if company := strings.TrimSpace(req.Company); company != "" {
			user.Company = &company
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	s.logger.Info().
		Int64("userID", user.ID).
		Str("role", string(user.Role)).
		Msg("User registered")

	return s.issueToken(user)
}

// Login verifies the credentials and returns a signed token. A wrong email
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Debug().Int64("userID", user.ID).Msg("User logged in")

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: user,
	}, nil
}
