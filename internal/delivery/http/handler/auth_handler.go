package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/delivery/http/middleware"
	"github.com/horecaseek-service/internal/pkg/utils"
	"github.com/horecaseek-service/internal/usecase"
	"github.com/horecaseek-service/internal/usecase/dto"
)

// AuthHandler - sign-up, confirmation, login, refresh, logout
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

// NewAuthHandler - creates a new AuthHandler
func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// SignUp godoc
// @Summary Create a new account
// @Description Registers an account and issues a one-time email confirmation code delivered out of band.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Email and password"
// @Success 200 {object} utils.SuccessResponse{data=dto.SignUpResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.authUC.SignUp(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Confirm godoc
// @Summary Confirm an email address
// @Description Consumes a one-time confirmation code hash. Codes are single use.
// @Tags Auth
// @Produce json
// @Param token_hash query string true "Confirmation code hash from the emailed link"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/confirm [get]
func (h *AuthHandler) Confirm(c *fiber.Ctx) error {
	req := dto.ConfirmRequest{TokenHash: c.Query("token_hash")}

	if err := h.authUC.Confirm(c.Context(), &req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"confirmed": true}, nil)
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and issues an access/refresh pair. The access token is also set as a cookie for browser navigation.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	session, err := h.authUC.Login(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.setAccessCookie(c, session)
	return utils.SendSuccess(c, session, nil)
}

// Refresh godoc
// @Summary Rotate a refresh token
// @Description Invalidates the presented refresh token and issues a new session pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	session, err := h.authUC.Refresh(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.setAccessCookie(c, session)
	return utils.SendSuccess(c, session, nil)
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the refresh session and clears the access cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LogoutRequest false "Refresh token"
// @Success 200 {object} utils.SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	// Body is optional on logout.
	_ = c.BodyParser(&req)

	if err := h.authUC.Logout(c.Context(), &req); err != nil {
		return utils.SendError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return utils.SendSuccess(c, fiber.Map{"logged_out": true}, nil)
}

func (h *AuthHandler) setAccessCookie(c *fiber.Ctx, session *dto.SessionResponse) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessCookie,
		Value:    session.AccessToken,
		Expires:  time.Unix(session.AccessExpiresAt, 0),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
