package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	todoerror "github.com/rneelams/TaskManager---backend/internal/errors"
	"github.com/rneelams/TaskManager---backend/internal/todo/domain"
	"github.com/rneelams/TaskManager---backend/internal/todo/dto"
)

// TodoHandler exposes the list/task CRUD surface. The handlers are
// persistence pass-throughs; the repository carries all the behavior.
type TodoHandler struct {
	repo domain.TodoRepository
}

func NewTodoHandler(repo domain.TodoRepository) *TodoHandler {
	return &TodoHandler{repo: repo}
}

func (h *TodoHandler) GetLists(c *fiber.Ctx) error {
	lists, err := h.repo.GetLists(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to fetch lists"})
	}
	if lists == nil {
		lists = []domain.List{}
	}

	return c.Status(fiber.StatusOK).JSON(lists)
}

func (h *TodoHandler) CreateList(c *fiber.Ctx) error {
	var input dto.CreateListInput
	if err := c.BodyParser(&input); err != nil || input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	now := time.Now()
	list := &domain.List{
		ID:        uuid.NewString(),
		Title:     input.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.repo.CreateList(c.Context(), list); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to create list"})
	}

	return c.Status(fiber.StatusOK).JSON(list)
}

func (h *TodoHandler) UpdateList(c *fiber.Ctx) error {
	var input dto.UpdateListInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	patch := domain.ListPatch{Title: input.Title}
	if err := h.repo.UpdateList(c.Context(), c.Params("id"), patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to update list"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "updated successfully"})
}

func (h *TodoHandler) DeleteList(c *fiber.Ctx) error {
	removed, err := h.repo.DeleteList(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, todoerror.ErrListNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": todoerror.ErrListNotFound.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to delete list"})
	}

	return c.Status(fiber.StatusOK).JSON(removed)
}

func (h *TodoHandler) GetTasks(c *fiber.Ctx) error {
	tasks, err := h.repo.GetTasks(c.Context(), c.Params("listId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to fetch tasks"})
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	return c.Status(fiber.StatusOK).JSON(tasks)
}

func (h *TodoHandler) CreateTask(c *fiber.Ctx) error {
	var input dto.CreateTaskInput
	if err := c.BodyParser(&input); err != nil || input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	now := time.Now()
	task := &domain.Task{
		ID:        uuid.NewString(),
		ListID:    c.Params("listId"),
		Title:     input.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.repo.CreateTask(c.Context(), task); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to create task"})
	}

	return c.Status(fiber.StatusOK).JSON(task)
}

func (h *TodoHandler) UpdateTask(c *fiber.Ctx) error {
	var input dto.UpdateTaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	patch := domain.TaskPatch{Title: input.Title, Completed: input.Completed}
	if err := h.repo.UpdateTask(c.Context(), c.Params("listId"), c.Params("taskId"), patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to update task"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "updated successfully"})
}

func (h *TodoHandler) DeleteTask(c *fiber.Ctx) error {
	removed, err := h.repo.DeleteTask(c.Context(), c.Params("listId"), c.Params("taskId"))
	if err != nil {
		if errors.Is(err, todoerror.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": todoerror.ErrTaskNotFound.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to delete task"})
	}

	return c.Status(fiber.StatusOK).JSON(removed)
}
