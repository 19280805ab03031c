package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/auth"
	"github.com/arblack/trade-tracker/internal/model"
	"github.com/arblack/trade-tracker/internal/repository"
)

// AuthService handles signup, login, session tokens, and user administration.
type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *auth.TokenIssuer
}

// NewAuthService creates a new AuthService with the provided dependencies.
func NewAuthService(userRepo *repository.UserRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Signup registers a new user and returns it with a session token.
func (s *AuthService) Signup(ctx context.Context, req request.SignupRequest) (model.User, string, error) {
	if _, err := s.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return model.User{}, "", apperrors.ErrUsernameTaken
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return model.User{}, "", err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return model.User{}, "", err
	}

	user := model.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Insert(ctx, &user); err != nil {
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.User{}, "", err
	}

	return user, token, nil
}

// Login authenticates a user by username and password. A banned user is
// rejected with apperrors.ErrUserBanned even when the credentials are valid.
func (s *AuthService) Login(ctx context.Context, req request.LoginRequest) (model.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return model.User{}, "", apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, "", err
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return model.User{}, "", err
	}

	ban, err := s.userRepo.GetBan(ctx, user.ID)
	if err != nil {
		return model.User{}, "", err
	}
	if ban != nil && ban.Active(time.Now().UTC()) {
		return model.User{}, "", apperrors.ErrUserBanned
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.User{}, "", err
	}

	return user, token, nil
}

// Authenticate resolves a session token to its user. A token for a deleted
// user or a user banned since issuance is rejected.
func (s *AuthService) Authenticate(ctx context.Context, token string) (model.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return model.User{}, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return model.User{}, apperrors.ErrInvalidToken
	}
	if err != nil {
		return model.User{}, err
	}

	ban, err := s.userRepo.GetBan(ctx, user.ID)
	if err != nil {
		return model.User{}, err
	}
	if ban != nil && ban.Active(time.Now().UTC()) {
		return model.User{}, apperrors.ErrUserBanned
	}

	return user, nil
}

// GetUser retrieves one user by ID.
func (s *AuthService) GetUser(ctx context.Context, userID string) (model.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ListUsers retrieves all users with ban state, for the admin view.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	return s.userRepo.List(ctx)
}

// BanUser applies a ban to a user. A permanent ban ignores the duration; a
// zero duration with Permanent unset lifts any active ban.
func (s *AuthService) BanUser(ctx context.Context, userID string, req request.BanUserRequest) (*model.UserBan, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	ban := &model.UserBan{
		ID:        uuid.New().String(),
		UserID:    userID,
		Permanent: req.Permanent,
	}
	if !req.Permanent && req.DurationHours > 0 {
		until := time.Now().UTC().Add(time.Duration(req.DurationHours * float64(time.Hour)))
		ban.BanUntil = &until
	}

	if err := s.userRepo.UpsertBan(ctx, ban); err != nil {
		return nil, err
	}

	return ban, nil
}
