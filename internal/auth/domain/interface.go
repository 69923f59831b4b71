package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/rneelams/TaskManager---backend/internal/auth/domain UserRepository

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	CreateSession(ctx context.Context, session *Session) error
	GetSessionsByUserID(ctx context.Context, userID string) ([]Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, userID string) error
}
