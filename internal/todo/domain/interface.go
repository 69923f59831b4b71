package domain

//go:generate mockgen -destination=../../mocks/mock_todo_repository.go -package=mocks github.com/rneelams/TaskManager---backend/internal/todo/domain TodoRepository

import "context"

// ListPatch and TaskPatch carry partial updates; nil fields are left as-is.
type ListPatch struct {
	Title *string
}

type TaskPatch struct {
	Title     *string
	Completed *bool
}

type TodoRepository interface {
	GetLists(ctx context.Context) ([]List, error)
	CreateList(ctx context.Context, list *List) error
	UpdateList(ctx context.Context, id string, patch ListPatch) error
	DeleteList(ctx context.Context, id string) (*List, error)

	GetTasks(ctx context.Context, listID string) ([]Task, error)
	CreateTask(ctx context.Context, task *Task) error
	UpdateTask(ctx context.Context, listID, taskID string, patch TaskPatch) error
	DeleteTask(ctx context.Context, listID, taskID string) (*Task, error)
}
