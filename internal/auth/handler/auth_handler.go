package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rneelams/TaskManager---backend/internal/auth/domain"
	"github.com/rneelams/TaskManager---backend/internal/auth/dto"
	"github.com/rneelams/TaskManager---backend/internal/auth/service"
	autherror "github.com/rneelams/TaskManager---backend/internal/errors"
)

const (
	HeaderRefreshToken = "x-refresh-token"
	HeaderAccessToken  = "x-access-token"
	HeaderUserID       = "_id"
)

// Locals keys set by the session guard for downstream handlers.
const (
	LocalUser         = "user"
	LocalUserID       = "user_id"
	LocalRefreshToken = "refresh_token"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Signup handles POST /users: create the user, open a session and hand both
// tokens back in response headers alongside the user document.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, tokens, err := h.userService.Signup(c.Context(), input)
	if err != nil {
		status, msg := clientError(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	c.Set(HeaderRefreshToken, tokens.RefreshToken)
	c.Set(HeaderAccessToken, tokens.AccessToken)

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

// Login handles POST /users/login with the same token-issuance tail as Signup.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	user, tokens, err := h.userService.Login(c.Context(), input)
	if err != nil {
		status, msg := clientError(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	c.Set(HeaderRefreshToken, tokens.RefreshToken)
	c.Set(HeaderAccessToken, tokens.AccessToken)

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

// AccessToken handles GET /users/me/access-token for a guarded request,
// minting a fresh short-lived token for the already-verified user.
func (h *AuthHandler) AccessToken(c *fiber.Ctx) error {
	user, ok := c.Locals(LocalUser).(*domain.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "session not verified"})
	}

	accessToken, err := h.userService.GenerateAccessToken(user)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to generate access token"})
	}

	c.Set(HeaderAccessToken, accessToken)

	return c.Status(fiber.StatusOK).JSON(dto.AccessTokenOutput{AccessToken: accessToken})
}

// Logout handles DELETE /users/me/session, removing the presented session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	refreshToken, ok := c.Locals(LocalRefreshToken).(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "session not verified"})
	}

	if err := h.userService.Logout(c.Context(), refreshToken); err != nil {
		status, msg := clientError(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.SendStatus(fiber.StatusOK)
}

// clientError maps service failures onto the uniform one-field error
// contract. Store internals never reach the client.
func clientError(err error) (int, string) {
	switch {
	case errors.Is(err, autherror.ErrInvalidInput):
		return fiber.StatusBadRequest, autherror.ErrInvalidInput.Error()
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return fiber.StatusBadRequest, autherror.ErrEmailAlreadyInUse.Error()
	case errors.Is(err, autherror.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, autherror.ErrInvalidCredentials.Error()
	case errors.Is(err, autherror.ErrUserNotFound):
		return fiber.StatusUnauthorized, "user not found, make sure that the refresh token and user id are correct"
	case errors.Is(err, autherror.ErrSessionInvalid):
		return fiber.StatusUnauthorized, autherror.ErrSessionInvalid.Error()
	default:
		return fiber.StatusBadRequest, "request failed"
	}
}
