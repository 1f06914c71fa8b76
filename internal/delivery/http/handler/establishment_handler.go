package handler

import (
	"encoding/json"
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

// EstablishmentHandler - professional venue listings
type EstablishmentHandler struct {
	estUC    *usecase.EstablishmentUseCase
	ratingUC *usecase.RatingUseCase
	logger   *zap.Logger
}

// NewEstablishmentHandler - creates a new EstablishmentHandler
func NewEstablishmentHandler(estUC *usecase.EstablishmentUseCase, ratingUC *usecase.RatingUseCase, logger *zap.Logger) *EstablishmentHandler {
	return &EstablishmentHandler{
		estUC:    estUC,
		ratingUC: ratingUC,
		logger:   logger,
	}
}

// ListByCategory godoc
// @Summary List establishments of one category
// @Description Backs the public /restaurants, /bars, /traiteurs and /hotels pages.
// @Tags Establishments
// @Produce json
// @Param category path string true "restaurant, bar, traiteur or hotel"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.EstablishmentResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /{category}s [get]
func (h *EstablishmentHandler) ListByCategory(category domain.Category) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := h.estUC.ListByCategory(c.Context(), string(category))
		if err != nil {
			return utils.SendError(c, err)
		}

		return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
	}
}

// GetByID godoc
// @Summary Get one establishment
// @Tags Establishments
// @Produce json
// @Param id path string true "Establishment id"
// @Success 200 {object} utils.SuccessResponse{data=dto.EstablishmentResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /establishment/{id} [get]
func (h *EstablishmentHandler) GetByID(c *fiber.Ctx) error {
	result, err := h.estUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Vote godoc
// @Summary Vote on an establishment
// @Description Folds one 1-5 rating into the establishment's accumulator.
// @Tags Establishments
// @Accept json
// @Produce json
// @Param id path string true "Establishment id"
// @Param request body object true "{\"rating\": 4}"
// @Success 200 {object} utils.SuccessResponse{data=usecase.VoteResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /establishment/{id}/vote [post]
func (h *EstablishmentHandler) Vote(c *fiber.Ctx) error {
	rating, err := parseRating(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.ratingUC.RecordVote(c.Context(), domain.ListingEstablishment, c.Params("id"), rating)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ListMine godoc
// @Summary List the caller's own establishments
// @Tags Establishments
// @Produce json
// @Security api_key
// @Success 200 {object} utils.SuccessResponse{data=[]dto.EstablishmentResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /protected/establishment [get]
func (h *EstablishmentHandler) ListMine(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.SendError(c, errors.ErrAuthRequired)
	}

	result, err := h.estUC.ListMine(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// Create godoc
// @Summary Submit a new establishment
// @Description Multipart form with the listing fields plus gallery files. Validation runs before any upload.
// @Tags Establishments
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.EstablishmentResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /protected/establishment [post]
func (h *EstablishmentHandler) Create(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.SendError(c, errors.ErrAuthRequired)
	}

	req, err := h.parseEstablishmentForm(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.estUC.Create(c.Context(), userID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Update godoc
// @Summary Edit an owned establishment
// @Description New gallery files are appended to the existing gallery.
// @Tags Establishments
// @Accept mpfd
// @Produce json
// @Param id path string true "Establishment id"
// @Success 200 {object} utils.SuccessResponse{data=dto.EstablishmentResponse}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /protected/establishment/{id} [put]
func (h *EstablishmentHandler) Update(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.SendError(c, errors.ErrAuthRequired)
	}

	created, err := h.parseEstablishmentForm(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := &dto.UpdateEstablishmentRequest{
		ID:           c.Params("id"),
		Name:         created.Name,
		Category:     created.Category,
		Email:        created.Email,
		Phone:        created.Phone,
		Website:      created.Website,
		Latitude:     created.Latitude,
		Longitude:    created.Longitude,
		PriceRange:   created.PriceRange,
		OpeningHours: created.OpeningHours,
		NewGallery:   created.Gallery,
	}

	result, err := h.estUC.Update(c.Context(), userID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// parseEstablishmentForm reads the multipart submission into the create
// request shape. Missing numeric fields stay nil/zero for the validator to
// reject.
func (h *EstablishmentHandler) parseEstablishmentForm(c *fiber.Ctx) (*dto.CreateEstablishmentRequest, error) {
	req := &dto.CreateEstablishmentRequest{
		Name:     c.FormValue("name"),
		Category: c.FormValue("category"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
		Website:  c.FormValue("website"),
	}

	if v := c.FormValue("latitude"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.ErrInvalidCoordinates
		}
		req.Latitude = &lat
	}
	if v := c.FormValue("longitude"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.ErrInvalidCoordinates
		}
		req.Longitude = &lon
	}
	if v := c.FormValue("price_range"); v != "" {
		pr, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
				"field": "price_range",
			})
		}
		req.PriceRange = pr
	}
	if v := c.FormValue("opening_hours"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.OpeningHours); err != nil {
			// Unparseable hours fall back to the raw-string variant.
			req.OpeningHours = domain.OpeningHours{Raw: v}
		}
	}

	form, err := c.MultipartForm()
	if err == nil {
		gallery, err := readFormFiles(form, "gallery")
		if err != nil {
			h.logger.Warn("Failed to read gallery upload", zap.Error(err))
			return nil, errors.ErrInvalidRequest
		}
		req.Gallery = gallery
	}

	return req, nil
}

// parseRating decodes {"rating": n} strictly: a fractional rating is
// rejected, not truncated.
func parseRating(c *fiber.Ctx) (int, error) {
	var body struct {
		Rating json.Number `json:"rating"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return 0, errors.ErrInvalidRequest
	}

	rating, err := body.Rating.Int64()
	if err != nil {
		return 0, errors.ErrInvalidRating
	}
	return int(rating), nil
}
