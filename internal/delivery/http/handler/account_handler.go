package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/delivery/http/middleware"
	"github.com/horecaseek-service/internal/pkg/errors"
	"github.com/horecaseek-service/internal/pkg/utils"
	"github.com/horecaseek-service/internal/usecase"
)

// AccountHandler - the role-resolved account page
type AccountHandler struct {
	accountUC *usecase.AccountUseCase
	logger    *zap.Logger
}

// NewAccountHandler - creates a new AccountHandler
func NewAccountHandler(accountUC *usecase.AccountUseCase, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		logger:    logger,
	}
}

// GetAccountView godoc
// @Summary Load the caller's account view
// @Description Resolves the profile role once: professionals get their establishments, clients their spots, newest first, each with its display mean.
// @Tags Account
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.AccountView}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /protected/account [get]
func (h *AccountHandler) GetAccountView(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		// The gate redirects browsers; API callers get the error as data.
		return utils.SendError(c, errors.ErrAuthRequired)
	}

	view, err := h.accountUC.LoadAccountView(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, view, nil)
}
