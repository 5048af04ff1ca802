package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/waitlist-service/internal/domain/dto"
	"github.com/guttosm/waitlist-service/internal/domain/model"
	"github.com/guttosm/waitlist-service/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService authenticates staff members.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
	// EnsureStaff creates the account when no staff member uses email yet.
	EnsureStaff(ctx context.Context, email, password, name string) error
}

// AuthServiceImpl implements AuthService.
// It checks credentials against the staff store and delegates tokens to TokenService.
type AuthServiceImpl struct {
	staffRepo    repository.StaffRepositoryInterface
	tokenService TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(staffRepo repository.StaffRepositoryInterface, tokenService TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{
		staffRepo:    staffRepo,
		tokenService: tokenService,
	}
}

// Login authenticates a staff member and returns an access token.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	if s.staffRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	staff, err := s.staffRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, fmt.Errorf("failed to find staff by email: %w", err)
	}
	if staff == nil || !staff.Active {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateAccessToken(staff)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	log.Info().Str("staff_id", staff.ID.Hex()).Msg("staff logged in")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.tokenService.TTL().Seconds()),
		Staff:     dto.StaffResponse{Email: staff.Email, Name: staff.Name},
	}, nil
}

// ValidateToken validates an access token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(_ context.Context, tokenString string) (*dto.Claims, error) {
	return s.tokenService.ValidateAccessToken(tokenString)
}

// EnsureStaff creates the account when no staff member uses email yet.
func (s *AuthServiceImpl) EnsureStaff(ctx context.Context, email, password, name string) error {
	if s.staffRepo == nil {
		return ErrRepositoryNotConfigured
	}

	existing, err := s.staffRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return fmt.Errorf("failed to find staff by email: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	staff := &model.Staff{
		Email:    strings.ToLower(email),
		Password: string(hash),
		Name:     name,
		Active:   true,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}

	log.Info().Str("email", staff.Email).Msg("staff account created")
	return nil
}
