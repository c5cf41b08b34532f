package attachment

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/entities"
	"Cooking-Companion-Backend/internal/utils/storage"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AttachmentService interface {
		CreateAttachment(ctx context.Context, parentType, parentID string, req domain.CreateAttachmentRequest) (domain.AttachmentResponse, error)
		UploadAttachment(ctx context.Context, parentType, parentID string, req domain.UploadAttachmentRequest) (domain.AttachmentResponse, error)
		GetAttachments(ctx context.Context, req domain.ListAttachmentsRequest) ([]domain.AttachmentResponse, error)
		DeleteAttachment(ctx context.Context, attachmentID string) error
	}

	attachmentService struct {
		attachmentRepository AttachmentRepository
		s3                   storage.AwsS3
	}
)

func NewAttachmentService(attachmentRepository AttachmentRepository, s3 storage.AwsS3) AttachmentService {
	return &attachmentService{
		attachmentRepository: attachmentRepository,
		s3:                   s3,
	}
}

// CreateAttachment handles the text payload kinds, note and url.
func (s *attachmentService) CreateAttachment(ctx context.Context, parentType, parentID string, req domain.CreateAttachmentRequest) (domain.AttachmentResponse, error) {
	parentUUID, err := s.resolveParent(ctx, parentType, parentID)
	if err != nil {
		return domain.AttachmentResponse{}, err
	}

	switch req.Kind {
	case entities.AttachmentKindNote:
		if req.Body == "" {
			return domain.AttachmentResponse{}, domain.ErrAttachmentPayloadKind
		}
	case entities.AttachmentKindURL:
		if req.URL == "" {
			return domain.AttachmentResponse{}, domain.ErrAttachmentPayloadKind
		}
	default:
		return domain.AttachmentResponse{}, domain.ErrUnsupportedKind
	}

	attachment := &entities.Attachment{
		ID:         uuid.New(),
		ParentType: parentType,
		ParentID:   parentUUID,
		Kind:       req.Kind,
		Title:      req.Title,
		Body:       req.Body,
		URL:        req.URL,
		SortOrder:  req.SortOrder,
		IsPinned:   req.IsPinned,
	}

	if err := s.attachmentRepository.CreateAttachment(ctx, attachment); err != nil {
		return domain.AttachmentResponse{}, err
	}
	return toAttachmentResponse(attachment), nil
}

// UploadAttachment handles the file payload kinds, image and pdf. The payload
// goes to object storage and only the public link is persisted.
func (s *attachmentService) UploadAttachment(ctx context.Context, parentType, parentID string, req domain.UploadAttachmentRequest) (domain.AttachmentResponse, error) {
	parentUUID, err := s.resolveParent(ctx, parentType, parentID)
	if err != nil {
		return domain.AttachmentResponse{}, err
	}

	if req.File == nil {
		return domain.AttachmentResponse{}, domain.ErrAttachmentFileRequired
	}

	var folder string
	var allowed []string
	switch req.Kind {
	case entities.AttachmentKindImage:
		folder = "cooking-companion/images"
		allowed = storage.AllowImage
	case entities.AttachmentKindPDF:
		folder = "cooking-companion/pdfs"
		allowed = storage.AllowPDF
	default:
		return domain.AttachmentResponse{}, domain.ErrUnsupportedKind
	}

	attachmentID := uuid.New()
	objectKey, err := s.s3.UploadFile(attachmentID.String(), req.File, folder, allowed...)
	if err != nil {
		if errors.Is(err, storage.ErrContentTypeNotAllowed) {
			return domain.AttachmentResponse{}, domain.ErrAttachmentPayloadKind
		}
		return domain.AttachmentResponse{}, err
	}

	attachment := &entities.Attachment{
		ID:               attachmentID,
		ParentType:       parentType,
		ParentID:         parentUUID,
		Kind:             req.Kind,
		Title:            req.Title,
		FileURL:          s.s3.GetPublicLinkKey(objectKey),
		OriginalFilename: req.File.Filename,
		Caption:          req.Caption,
		SortOrder:        req.SortOrder,
	}

	if err := s.attachmentRepository.CreateAttachment(ctx, attachment); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.AttachmentResponse{}, err
	}
	return toAttachmentResponse(attachment), nil
}

func (s *attachmentService) GetAttachments(ctx context.Context, req domain.ListAttachmentsRequest) ([]domain.AttachmentResponse, error) {
	if _, err := s.resolveParent(ctx, req.ParentType, req.ParentID); err != nil {
		return nil, err
	}

	attachments, err := s.attachmentRepository.GetAttachments(ctx, req.ParentType, req.ParentID, req.Kind)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AttachmentResponse, 0, len(attachments))
	for _, attachment := range attachments {
		result = append(result, toAttachmentResponse(attachment))
	}
	return result, nil
}

func (s *attachmentService) DeleteAttachment(ctx context.Context, attachmentID string) error {
	attachment, err := s.attachmentRepository.GetAttachmentByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAttachmentNotFound
		}
		return err
	}

	if err := s.attachmentRepository.DeleteAttachment(ctx, attachmentID); err != nil {
		return err
	}

	// Best effort cleanup, the row is already gone.
	if attachment.FileURL != "" {
		_ = s.s3.DeleteFile(s.s3.GetObjectKeyFromLink(attachment.FileURL))
	}
	return nil
}

func (s *attachmentService) resolveParent(ctx context.Context, parentType, parentID string) (uuid.UUID, error) {
	switch parentType {
	case entities.ParentTypeRecipe, entities.ParentTypeDish, entities.ParentTypeCookSession, entities.ParentTypeCookResult:
	default:
		return uuid.Nil, domain.ErrUnsupportedParentType
	}

	parentUUID, err := uuid.Parse(parentID)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}

	exists, err := s.attachmentRepository.ParentExists(ctx, parentType, parentID)
	if err != nil {
		return uuid.Nil, err
	}
	if !exists {
		return uuid.Nil, domain.ErrParentNotFound
	}
	return parentUUID, nil
}

func toAttachmentResponse(attachment *entities.Attachment) domain.AttachmentResponse {
	return domain.AttachmentResponse{
		ID:               attachment.ID.String(),
		ParentType:       attachment.ParentType,
		ParentID:         attachment.ParentID.String(),
		Kind:             attachment.Kind,
		Title:            attachment.Title,
		Body:             attachment.Body,
		URL:              attachment.URL,
		FileURL:          attachment.FileURL,
		OriginalFilename: attachment.OriginalFilename,
		Caption:          attachment.Caption,
		SortOrder:        attachment.SortOrder,
		IsPinned:         attachment.IsPinned,
		CreatedAt:        attachment.CreatedAt,
	}
}
