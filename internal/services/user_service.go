package services

import (
	"context"
	"errors"
	"time"

	"photoshare-backend/internal/auth"
	"photoshare-backend/internal/config"
	"photoshare-backend/internal/models"
	"photoshare-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, login, and profile reads/updates.
type UserService struct {
	users      repository.UserRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewUserService(users repository.UserRepository, cfg config.Config) *UserService {
	return &UserService{
		users:      users,
		jwtSecret:  []byte(cfg.JWTSecret),
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account and signs the caller in. A taken email
// yields ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique index is the backstop for a register race.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{ID: user.ID, Token: token}, nil
}

// Login verifies the credentials and returns a fresh token plus the minimal
// profile fields the client needs.
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		ID:           user.ID,
		ProfileImage: user.ProfileImage,
		Token:        token,
	}, nil
}

// GetByID returns a user's public profile.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile applies a partial self-service edit to the requester's own
// account. Nil fields are left untouched; a new password is re-hashed.
func (s *UserService) UpdateProfile(ctx context.Context, user *models.User, upd models.ProfileUpdate) (*models.User, error) {
	if upd.Name != nil && *upd.Name != "" {
		user.Name = *upd.Name
	}
	if upd.Password != nil && *upd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if upd.Bio != nil && *upd.Bio != "" {
		user.Bio = *upd.Bio
	}
	if upd.ProfileImage != nil && *upd.ProfileImage != "" {
		user.ProfileImage = *upd.ProfileImage
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
