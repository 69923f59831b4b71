package handler

import (
	"github.com/gofiber/fiber/v2"
)

// VerifySession guards routes that require an authenticated session. The
// request must carry the refresh token and the user id as headers; on success
// the resolved user and token are attached to the request context.
func (h *AuthHandler) VerifySession(c *fiber.Ctx) error {
	refreshToken := c.Get(HeaderRefreshToken)
	userID := c.Get(HeaderUserID)

	if refreshToken == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing " + HeaderRefreshToken + " or " + HeaderUserID + " header",
		})
	}

	user, err := h.userService.VerifySession(c.Context(), userID, refreshToken)
	if err != nil {
		_, msg := clientError(err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
	}

	c.Locals(LocalUser, user)
	c.Locals(LocalUserID, user.ID)
	c.Locals(LocalRefreshToken, refreshToken)

	return c.Next()
}
