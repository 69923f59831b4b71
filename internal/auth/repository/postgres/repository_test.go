package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rneelams/TaskManager---backend/internal/auth/domain"
	repo "github.com/rneelams/TaskManager---backend/internal/auth/repository/postgres"
)

var userColumns = []string{"id", "email", "password_hash", "created_at", "updated_at"}

func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	userEmail := "test@example.com"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(userEmail).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", userEmail, "hash", time.Now(), time.Now()))

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
		assert.Equal(t, userEmail, user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(userEmail).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(userEmail).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, userEmail)
		assert.Error(t, err)
	})
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", "test@example.com", "hash", time.Now(), time.Now()))

		user, err := r.GetByID(ctx, "user-123")
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("missing-id").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByID(ctx, "missing-id")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	user := &domain.User{
		ID:           "user-123",
		Email:        "new@example.com",
		PasswordHash: "new-hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Create(ctx, user))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.Create(ctx, user))
	})
}

func TestCreateSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "session-1",
		UserID:    "user-123",
		Token:     "refresh-token",
		ExpiresAt: time.Now().Add(240 * time.Hour),
		CreatedAt: time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO sessions").
			WithArgs(session.ID, session.UserID, session.Token, session.ExpiresAt, session.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.CreateSession(ctx, session))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO sessions").
			WithArgs(session.ID, session.UserID, session.Token, session.ExpiresAt, session.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.CreateSession(ctx, session))
	})
}

func TestGetSessionsByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	columns := []string{"id", "user_id", "token", "expires_at", "created_at"}

	t.Run("returns all sessions", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, token").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("session-1", "user-123", "token-1", time.Now().Add(time.Hour), time.Now()).
				AddRow("session-2", "user-123", "token-2", time.Now().Add(time.Hour), time.Now()))

		sessions, err := r.GetSessionsByUserID(ctx, "user-123")
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, "token-1", sessions[0].Token)
		assert.Equal(t, "token-2", sessions[1].Token)
	})

	t.Run("no sessions", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, token").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(columns))

		sessions, err := r.GetSessionsByUserID(ctx, "user-123")
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, token").
			WithArgs("user-123").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetSessionsByUserID(ctx, "user-123")
		assert.Error(t, err)
	})
}

func TestDeleteSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("refresh-token").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, r.DeleteSession(context.Background(), "refresh-token"))
}

func TestDeleteExpiredSessions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("user-123").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	assert.NoError(t, r.DeleteExpiredSessions(context.Background(), "user-123"))
}
