package handlers

import (
	"Recipe-Share/domain"
	"Recipe-Share/internal/api/presenters"
	"Recipe-Share/pkg/media"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ImageHandler interface {
		UploadImage(c *fiber.Ctx) error
		DeleteImage(c *fiber.Ctx) error
	}

	imageHandler struct {
		mediaService media.MediaService
		validator    *validator.Validate
	}
)

func NewImageHandler(mediaService media.MediaService, validator *validator.Validate) ImageHandler {
	return &imageHandler{
		mediaService: mediaService,
		validator:    validator,
	}
}

func (h *imageHandler) UploadImage(c *fiber.Ctx) error {
	req := new(domain.UploadImageRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	url, err := h.mediaService.UploadImage(c.UserContext(), userID(c), req.Path, req.Photo)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedUploadImage, err)
	}
	return presenters.SuccessResponse(c, domain.UploadImageResponse{URL: url}, fiber.StatusCreated, domain.MessageSuccessUploadImage)
}

func (h *imageHandler) DeleteImage(c *fiber.Ctx) error {
	ref := c.Query("ref")
	if ref == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteImage, domain.ErrInvalidImageFormat)
	}
	if err := h.mediaService.DeleteImage(c.UserContext(), userID(c), ref); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err, fiber.StatusInternalServerError), domain.MessageFailedDeleteImage, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteImage)
}
