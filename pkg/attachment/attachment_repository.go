package attachment

import (
	"Cooking-Companion-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AttachmentRepository interface {
		CreateAttachment(ctx context.Context, attachment *entities.Attachment) error
		GetAttachmentByID(ctx context.Context, id string) (*entities.Attachment, error)
		GetAttachments(ctx context.Context, parentType, parentID, kind string) ([]*entities.Attachment, error)
		DeleteAttachment(ctx context.Context, id string) error
		ParentExists(ctx context.Context, parentType, parentID string) (bool, error)
	}

	attachmentRepository struct {
		db *gorm.DB
	}
)

func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) CreateAttachment(ctx context.Context, attachment *entities.Attachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

func (r *attachmentRepository) GetAttachmentByID(ctx context.Context, id string) (*entities.Attachment, error) {
	var attachment entities.Attachment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&attachment).Error; err != nil {
		return nil, err
	}
	return &attachment, nil
}

// GetAttachments returns the parent's attachments in creation order.
func (r *attachmentRepository) GetAttachments(ctx context.Context, parentType, parentID, kind string) ([]*entities.Attachment, error) {
	var attachments []*entities.Attachment

	q := r.db.WithContext(ctx).
		Where("parent_type = ? AND parent_id = ?", parentType, parentID)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}

	if err := q.Order("created_at asc").Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

func (r *attachmentRepository) DeleteAttachment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Attachment{}).Error
}

// ParentExists resolves the parent type tag through an explicit dispatch table
// over the supported entity tables. Unknown tags report false.
func (r *attachmentRepository) ParentExists(ctx context.Context, parentType, parentID string) (bool, error) {
	model, ok := parentModel(parentType)
	if !ok {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", parentID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func parentModel(parentType string) (interface{}, bool) {
	switch parentType {
	case entities.ParentTypeRecipe:
		return &entities.Recipe{}, true
	case entities.ParentTypeDish:
		return &entities.Dish{}, true
	case entities.ParentTypeCookSession:
		return &entities.CookSession{}, true
	case entities.ParentTypeCookResult:
		return &entities.CookResult{}, true
	default:
		return nil, false
	}
}
