package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rneelams/TaskManager---backend/internal/auth/domain"
	"github.com/rneelams/TaskManager---backend/internal/auth/dto"
	autherror "github.com/rneelams/TaskManager---backend/internal/errors"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
	}
}

// Signup creates the user with a hashed password, opens a refresh session and
// mints the first access token.
func (s *UserService) Signup(ctx context.Context, input dto.SignupInput) (*domain.User, *dto.AuthTokens, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, nil, autherror.ErrInvalidInput
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// Login resolves the user by credentials and issues a fresh session plus
// access token. The bcrypt comparison is the sole gate.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*domain.User, *dto.AuthTokens, error) {
	user, err := s.FindByCredentials(ctx, input.Email, input.Password)
	if err != nil {
		return nil, nil, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, tokens, nil
}

// FindByCredentials locates a user by normalized email and verifies the
// password against the stored hash.
func (s *UserService) FindByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	return user, nil
}

// CreateSession issues a refresh token and durably appends a session record
// for it. The append is a single INSERT, so concurrent logins for the same
// user never lose an update.
func (s *UserService) CreateSession(ctx context.Context, user *domain.User) (string, error) {
	refreshToken, err := s.tokenService.Issue(user.ID, PurposeRefresh, s.tokenService.RefreshTokenTTL())
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: now.Add(s.tokenService.RefreshTokenTTL()),
		CreatedAt: now,
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		return "", err
	}

	return refreshToken, nil
}

// GenerateAccessToken mints a short-lived stateless token. No persistence.
func (s *UserService) GenerateAccessToken(user *domain.User) (string, error) {
	return s.tokenService.Issue(user.ID, PurposeAccess, s.tokenService.AccessTokenTTL())
}

// VerifySession backs the session guard: it resolves the user, prunes expired
// sessions, and accepts only a stored, unexpired refresh token.
func (s *UserService) VerifySession(ctx context.Context, userID, refreshToken string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if err := s.repo.DeleteExpiredSessions(ctx, userID); err != nil {
		log.Printf("warn: failed to prune expired sessions for user %s: %v", userID, err)
	}

	sessions, err := s.repo.GetSessionsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range sessions {
		if sessions[i].Token == refreshToken && !sessions[i].Expired(now) {
			return user, nil
		}
	}

	return nil, autherror.ErrSessionInvalid
}

// Logout removes the session holding the given refresh token.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	return s.repo.DeleteSession(ctx, refreshToken)
}

func (s *UserService) issueTokens(ctx context.Context, user *domain.User) (*dto.AuthTokens, error) {
	refreshToken, err := s.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
