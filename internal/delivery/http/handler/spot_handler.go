package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/delivery/http/middleware"
	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/pkg/errors"
	"github.com/horecaseek-service/internal/pkg/utils"
	"github.com/horecaseek-service/internal/usecase"
	"github.com/horecaseek-service/internal/usecase/dto"
)

// SpotHandler - user-shared spots
type SpotHandler struct {
	spotUC   *usecase.SpotUseCase
	ratingUC *usecase.RatingUseCase
	logger   *zap.Logger
}

// NewSpotHandler - creates a new SpotHandler
func NewSpotHandler(spotUC *usecase.SpotUseCase, ratingUC *usecase.RatingUseCase, logger *zap.Logger) *SpotHandler {
	return &SpotHandler{
		spotUC:   spotUC,
		ratingUC: ratingUC,
		logger:   logger,
	}
}

// ListAll godoc
// @Summary List all spots
// @Description Backs the public /spots page, newest first.
// @Tags Spots
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.SpotResponse}
// @Router /spots [get]
func (h *SpotHandler) ListAll(c *fiber.Ctx) error {
	result, err := h.spotUC.ListAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// GetByID godoc
// @Summary Get one spot
// @Tags Spots
// @Produce json
// @Param id path string true "Spot id"
// @Success 200 {object} utils.SuccessResponse{data=dto.SpotResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /spots/{id} [get]
func (h *SpotHandler) GetByID(c *fiber.Ctx) error {
	result, err := h.spotUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Vote godoc
// @Summary Vote on a spot
// @Tags Spots
// @Accept json
// @Produce json
// @Param id path string true "Spot id"
// @Param request body object true "{\"rating\": 4}"
// @Success 200 {object} utils.SuccessResponse{data=usecase.VoteResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /spots/{id}/vote [post]
func (h *SpotHandler) Vote(c *fiber.Ctx) error {
	rating, err := parseRating(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.ratingUC.RecordVote(c.Context(), domain.ListingSpot, c.Params("id"), rating)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ListMine godoc
// @Summary List the caller's own spots
// @Tags Spots
// @Produce json
// @Security api_key
// @Success 200 {object} utils.SuccessResponse{data=[]dto.SpotResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /protected/spot [get]
func (h *SpotHandler) ListMine(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.SendError(c, errors.ErrAuthRequired)
	}

	result, err := h.spotUC.ListMine(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// Create godoc
// @Summary Share a new spot
// @Description Multipart form: description, coordinates, initial 1-5 vote, optional name and images. The submitter's vote seeds the rating.
// @Tags Spots
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SpotResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /protected/spot [post]
func (h *SpotHandler) Create(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.SendError(c, errors.ErrAuthRequired)
	}

	req := &dto.CreateSpotRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}
	if err := h.parseSpotNumbers(c, &req.Latitude, &req.Longitude); err != nil {
		return utils.SendError(c, err)
	}
	if v := c.FormValue("initial_vote"); v != "" {
		vote, err := strconv.Atoi(v)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidRating)
		}
		req.InitialVote = vote
	}

	form, err := c.MultipartForm()
	if err == nil {
		images, err := readFormFiles(form, "images")
		if err != nil {
			h.logger.Warn("Failed to read spot images", zap.Error(err))
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		req.Images = images
	}

	result, err := h.spotUC.Create(c.Context(), userID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Update godoc
// @Summary Edit an owned spot
// @Description New image files are appended to the existing set.
// @Tags Spots
// @Accept mpfd
// @Produce json
// @Param id path string true "Spot id"
// @Success 200 {object} utils.SuccessResponse{data=dto.SpotResponse}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /protected/spot/{id} [put]
func (h *SpotHandler) Update(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.SendError(c, errors.ErrAuthRequired)
	}

	req := &dto.UpdateSpotRequest{
		ID:          c.Params("id"),
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}
	if err := h.parseSpotNumbers(c, &req.Latitude, &req.Longitude); err != nil {
		return utils.SendError(c, err)
	}

	form, err := c.MultipartForm()
	if err == nil {
		images, err := readFormFiles(form, "images")
		if err != nil {
			h.logger.Warn("Failed to read spot images", zap.Error(err))
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		req.NewImages = images
	}

	result, err := h.spotUC.Update(c.Context(), userID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

func (h *SpotHandler) parseSpotNumbers(c *fiber.Ctx, lat, lon **float64) error {
	if v := c.FormValue("latitude"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.ErrInvalidCoordinates
		}
		*lat = &f
	}
	if v := c.FormValue("longitude"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.ErrInvalidCoordinates
		}
		*lon = &f
	}
	return nil
}
