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

	todoerror "github.com/rneelams/TaskManager---backend/internal/errors"
	"github.com/rneelams/TaskManager---backend/internal/todo/domain"
	repo "github.com/rneelams/TaskManager---backend/internal/todo/repository/postgres"
)

var (
	listColumns = []string{"id", "title", "created_at", "updated_at"}
	taskColumns = []string{"id", "list_id", "title", "completed", "created_at", "updated_at"}
)

func TestGetLists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("returns lists", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, title").
			WillReturnRows(pgxmock.NewRows(listColumns).
				AddRow("list-1", "groceries", time.Now(), time.Now()).
				AddRow("list-2", "chores", time.Now(), time.Now()))

		lists, err := r.GetLists(ctx)
		require.NoError(t, err)
		require.Len(t, lists, 2)
		assert.Equal(t, "groceries", lists[0].Title)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, title").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetLists(ctx)
		assert.Error(t, err)
	})
}

func TestCreateList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	list := &domain.List{
		ID:        "list-1",
		Title:     "groceries",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO lists").
		WithArgs(list.ID, list.Title, list.CreatedAt, list.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, r.CreateList(context.Background(), list))
}

func TestUpdateList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	title := "renamed"

	mock.ExpectExec("UPDATE lists").
		WithArgs("list-1", &title).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, r.UpdateList(context.Background(), "list-1", domain.ListPatch{Title: &title}))
}

func TestDeleteList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("returns removed document", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM lists").
			WithArgs("list-1").
			WillReturnRows(pgxmock.NewRows(listColumns).
				AddRow("list-1", "groceries", time.Now(), time.Now()))

		removed, err := r.DeleteList(ctx, "list-1")
		require.NoError(t, err)
		assert.Equal(t, "list-1", removed.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM lists").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		_, err := r.DeleteList(ctx, "missing")
		assert.ErrorIs(t, err, todoerror.ErrListNotFound)
	})
}

func TestGetTasks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT id, list_id").
		WithArgs("list-1").
		WillReturnRows(pgxmock.NewRows(taskColumns).
			AddRow("task-1", "list-1", "milk", false, time.Now(), time.Now()))

	tasks, err := r.GetTasks(context.Background(), "list-1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "milk", tasks[0].Title)
	assert.False(t, tasks[0].Completed)
}

func TestCreateTask(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	task := &domain.Task{
		ID:        "task-1",
		ListID:    "list-1",
		Title:     "milk",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO tasks").
		WithArgs(task.ID, task.ListID, task.Title, task.Completed, task.CreatedAt, task.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, r.CreateTask(context.Background(), task))
}

func TestUpdateTask(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	completed := true

	mock.ExpectExec("UPDATE tasks").
		WithArgs("task-1", "list-1", (*string)(nil), &completed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = r.UpdateTask(context.Background(), "list-1", "task-1", domain.TaskPatch{Completed: &completed})
	assert.NoError(t, err)
}

func TestDeleteTask(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("returns removed document", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM tasks").
			WithArgs("task-1", "list-1").
			WillReturnRows(pgxmock.NewRows(taskColumns).
				AddRow("task-1", "list-1", "milk", true, time.Now(), time.Now()))

		removed, err := r.DeleteTask(ctx, "list-1", "task-1")
		require.NoError(t, err)
		assert.Equal(t, "task-1", removed.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM tasks").
			WithArgs("missing", "list-1").
			WillReturnError(pgx.ErrNoRows)

		_, err := r.DeleteTask(ctx, "list-1", "missing")
		assert.ErrorIs(t, err, todoerror.ErrTaskNotFound)
	})
}
