package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	todoerror "github.com/rneelams/TaskManager---backend/internal/errors"
	"github.com/rneelams/TaskManager---backend/internal/todo/domain"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetLists(ctx context.Context) ([]domain.List, error) {
	query := `
		SELECT id, title, created_at, updated_at
		FROM lists
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get lists: %w", err)
	}
	defer rows.Close()

	var lists []domain.List
	for rows.Next() {
		var l domain.List
		if err := rows.Scan(&l.ID, &l.Title, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, l)
	}

	return lists, rows.Err()
}

func (r *PostgresRepository) CreateList(ctx context.Context, list *domain.List) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO lists (id, title, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
    `, list.ID, list.Title, list.CreatedAt, list.UpdatedAt)

	return err
}

func (r *PostgresRepository) UpdateList(ctx context.Context, id string, patch domain.ListPatch) error {
	query := `
		UPDATE lists
		SET title = COALESCE($2, title), updated_at = now()
		WHERE id = $1;
	`
	_, err := r.db.Exec(ctx, query, id, patch.Title)
	return err
}

// DeleteList removes the list and returns the removed document, mirroring the
// findOneAndRemove contract. Tasks go with it via the FK cascade.
func (r *PostgresRepository) DeleteList(ctx context.Context, id string) (*domain.List, error) {
	query := `
		DELETE FROM lists
		WHERE id = $1
		RETURNING id, title, created_at, updated_at;
	`
	row := r.db.QueryRow(ctx, query, id)

	var l domain.List
	err := row.Scan(&l.ID, &l.Title, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, todoerror.ErrListNotFound
		}
		return nil, fmt.Errorf("failed to delete list: %w", err)
	}

	return &l, nil
}

func (r *PostgresRepository) GetTasks(ctx context.Context, listID string) ([]domain.Task, error) {
	query := `
		SELECT id, list_id, title, completed, created_at, updated_at
		FROM tasks
		WHERE list_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.ListID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (r *PostgresRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO tasks (id, list_id, title, completed, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, task.ID, task.ListID, task.Title, task.Completed, task.CreatedAt, task.UpdatedAt)

	return err
}

func (r *PostgresRepository) UpdateTask(ctx context.Context, listID, taskID string, patch domain.TaskPatch) error {
	query := `
		UPDATE tasks
		SET title = COALESCE($3, title),
		    completed = COALESCE($4, completed),
		    updated_at = now()
		WHERE id = $1 AND list_id = $2;
	`
	_, err := r.db.Exec(ctx, query, taskID, listID, patch.Title, patch.Completed)
	return err
}

// DeleteTask removes the task scoped to its list and returns the removed
// document.
func (r *PostgresRepository) DeleteTask(ctx context.Context, listID, taskID string) (*domain.Task, error) {
	query := `
		DELETE FROM tasks
		WHERE id = $1 AND list_id = $2
		RETURNING id, list_id, title, completed, created_at, updated_at;
	`
	row := r.db.QueryRow(ctx, query, taskID, listID)

	var t domain.Task
	err := row.Scan(&t.ID, &t.ListID, &t.Title, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, todoerror.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return &t, nil
}

var _ domain.TodoRepository = (*PostgresRepository)(nil)
