package handlers

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/internal/api/presenters"
	"Cooking-Companion-Backend/pkg/attachment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AttachmentHandler interface {
		CreateAttachment(c *fiber.Ctx) error
		UploadAttachment(c *fiber.Ctx) error
		GetAttachments(c *fiber.Ctx) error
		DeleteAttachment(c *fiber.Ctx) error
	}

	attachmentHandler struct {
		attachmentService attachment.AttachmentService
		validator         *validator.Validate
	}
)

func NewAttachmentHandler(attachmentService attachment.AttachmentService, validator *validator.Validate) AttachmentHandler {
	return &attachmentHandler{
		attachmentService: attachmentService,
		validator:         validator,
	}
}

func (h *attachmentHandler) CreateAttachment(c *fiber.Ctx) error {
	parentType := c.Params("type")
	parentID := c.Params("id")
	req := new(domain.CreateAttachmentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAttachment, err)
	}

	res, err := h.attachmentService.CreateAttachment(c.Context(), parentType, parentID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateAttachment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateAttachment)
}

func (h *attachmentHandler) UploadAttachment(c *fiber.Ctx) error {
	parentType := c.Params("type")
	parentID := c.Params("id")
	req := new(domain.UploadAttachmentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.File = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAttachment, err)
	}

	res, err := h.attachmentService.UploadAttachment(c.Context(), parentType, parentID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateAttachment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateAttachment)
}

func (h *attachmentHandler) GetAttachments(c *fiber.Ctx) error {
	req := domain.ListAttachmentsRequest{
		ParentType: c.Params("type"),
		ParentID:   c.Params("id"),
		Kind:       c.Query("kind", ""),
	}

	attachments, err := h.attachmentService.GetAttachments(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetAttachments, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"attachments": attachments}, fiber.StatusOK, domain.MessageSuccessGetAttachments)
}

func (h *attachmentHandler) DeleteAttachment(c *fiber.Ctx) error {
	attachmentID := c.Params("id")

	if err := h.attachmentService.DeleteAttachment(c.Context(), attachmentID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteAttachment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteAttachment)
}
