package handler

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/horecaseek-service/internal/delivery/http/middleware"
	"github.com/horecaseek-service/internal/pkg/errors"
	"github.com/horecaseek-service/internal/pkg/utils"
	"github.com/horecaseek-service/internal/usecase"
	"github.com/horecaseek-service/internal/usecase/dto"
)

// ProfileHandler - the caller's profile record
type ProfileHandler struct {
	profileUC *usecase.ProfileUseCase
	logger    *zap.Logger
}

// NewProfileHandler - creates a new ProfileHandler
func NewProfileHandler(profileUC *usecase.ProfileUseCase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		logger:    logger,
	}
}

// Upsert godoc
// @Summary Create or update the caller's profile
// @Description Multipart form: full_name, role (client|professional), optional phone and avatar file.
// @Tags Profile
// @Accept mpfd
// @Produce json
// @Param full_name formData string true "Display name"
// @Param role formData string true "client or professional"
// @Param phone formData string false "Phone number"
// @Param avatar formData file false "Avatar image"
// @Success 200 {object} utils.SuccessResponse{data=dto.ProfileResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /protected/profile [post]
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.SendError(c, errors.ErrAuthRequired)
	}

	req := dto.UpsertProfileRequest{
		FullName: c.FormValue("full_name"),
		Phone:    c.FormValue("phone"),
		Role:     c.FormValue("role"),
	}

	if file, err := c.FormFile("avatar"); err == nil && file != nil {
		upload, err := readFormFile(file)
		if err != nil {
			h.logger.Warn("Failed to read avatar upload", zap.Error(err))
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		req.Avatar = upload
	}

	result, err := h.profileUC.Upsert(c.Context(), userID, &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetOwn godoc
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ProfileResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /protected/profile [get]
func (h *ProfileHandler) GetOwn(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return utils.SendError(c, errors.ErrAuthRequired)
	}

	result, err := h.profileUC.GetOwn(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// readFormFile loads one multipart file into memory.
func readFormFile(fh *multipart.FileHeader) (*dto.FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &dto.FileUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// readFormFiles loads every file under one multipart field.
func readFormFiles(form *multipart.Form, field string) ([]dto.FileUpload, error) {
	if form == nil {
		return nil, nil
	}

	headers := form.File[field]
	files := make([]dto.FileUpload, 0, len(headers))
	for _, fh := range headers {
		upload, err := readFormFile(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, *upload)
	}
	return files, nil
}
