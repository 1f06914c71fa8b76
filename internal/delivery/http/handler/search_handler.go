package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/pkg/utils"
	"github.com/horecaseek-service/internal/usecase"
)

// SearchHandler - merged listing search
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - creates a new SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Search listings
// @Description Case-insensitive substring search: establishments by name or category, spots by description. Establishments always come before spots; ten results per page.
// @Tags Search
// @Produce json
// @Param q query string false "Search query"
// @Param page query int false "1-indexed page" default(1)
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Router /search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	result, err := h.searchUC.Search(c.Context(), c.Query("q"), c.QueryInt("page", 1))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Page:  result.Page,
		Limit: usecase.SearchPageSize,
	})
}
