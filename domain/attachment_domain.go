package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetAttachments   = "success get attachments"
	MessageSuccessCreateAttachment = "attachment created successfully"
	MessageSuccessDeleteAttachment = "attachment deleted successfully"

	MessageFailedGetAttachments   = "failed to get attachments"
	MessageFailedCreateAttachment = "failed to create attachment"
	MessageFailedDeleteAttachment = "failed to delete attachment"

	ErrAttachmentNotFound     = errors.New("attachment not found")
	ErrUnsupportedKind        = errors.New("unsupported attachment kind")
	ErrUnsupportedParentType  = errors.New("unsupported parent type")
	ErrParentNotFound         = errors.New("attachment parent not found")
	ErrAttachmentPayloadKind  = errors.New("attachment payload does not match kind")
	ErrAttachmentFileRequired = errors.New("attachment file is required for image and pdf kinds")
)

type (
	// CreateAttachmentRequest covers the text payload kinds (note and url).
	CreateAttachmentRequest struct {
		Kind      string `json:"kind" validate:"required,oneof=note url"`
		Title     string `json:"title" validate:"max=200"`
		Body      string `json:"body"`
		URL       string `json:"url" validate:"omitempty,url"`
		SortOrder int    `json:"sort_order" validate:"min=0"`
		IsPinned  bool   `json:"is_pinned"`
	}

	// UploadAttachmentRequest covers the file payload kinds (image and pdf).
	UploadAttachmentRequest struct {
		Kind      string                `form:"kind" validate:"required,oneof=image pdf"`
		Title     string                `form:"title" validate:"max=200"`
		Caption   string                `form:"caption" validate:"max=300"`
		SortOrder int                   `form:"sort_order" validate:"min=0"`
		File      *multipart.FileHeader `form:"-" validate:"required"`
	}

	ListAttachmentsRequest struct {
		ParentType string
		ParentID   string
		Kind       string
	}

	AttachmentResponse struct {
		ID               string    `json:"id"`
		ParentType       string    `json:"parent_type"`
		ParentID         string    `json:"parent_id"`
		Kind             string    `json:"kind"`
		Title            string    `json:"title,omitempty"`
		Body             string    `json:"body,omitempty"`
		URL              string    `json:"url,omitempty"`
		FileURL          string    `json:"file_url,omitempty"`
		OriginalFilename string    `json:"original_filename,omitempty"`
		Caption          string    `json:"caption,omitempty"`
		SortOrder        int       `json:"sort_order"`
		IsPinned         bool      `json:"is_pinned"`
		CreatedAt        time.Time `json:"created_at"`
	}
)
