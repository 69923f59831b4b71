package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *TodoHandler) {
	app.Get("/lists", h.GetLists)
	app.Post("/lists", h.CreateList)
	app.Patch("/lists/:id", h.UpdateList)
	app.Delete("/lists/:id", h.DeleteList)

	app.Get("/lists/:listId/tasks", h.GetTasks)
	app.Post("/lists/:listId/tasks", h.CreateTask)
	app.Patch("/lists/:listId/tasks/:taskId", h.UpdateTask)
	app.Delete("/lists/:listId/tasks/:taskId", h.DeleteTask)
}
