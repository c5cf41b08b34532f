package entities

import (
	"github.com/google/uuid"
)

const (
	AttachmentKindNote  = "note"
	AttachmentKindImage = "image"
	AttachmentKindURL   = "url"
	AttachmentKindPDF   = "pdf"

	ParentTypeRecipe      = "recipe"
	ParentTypeDish        = "dish"
	ParentTypeCookSession = "cook_session"
	ParentTypeCookResult  = "cook_result"
)

// Attachment is a polymorphic record hanging off any of the four tracked
// entity types. ParentType plus ParentID identify the owner; exactly one of
// the payload columns is populated depending on Kind.
type Attachment struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ParentType       string    `gorm:"index:idx_attachment_parent" json:"parent_type"` // recipe, dish, cook_session, cook_result
	ParentID         uuid.UUID `gorm:"type:uuid;index:idx_attachment_parent" json:"parent_id"`
	Kind             string    `gorm:"index" json:"kind"` // note, image, url, pdf
	Title            string    `json:"title,omitempty"`
	Body             string    `gorm:"type:text" json:"body,omitempty"` // note kind
	URL              string    `json:"url,omitempty"`                   // url kind
	FileURL          string    `json:"file_url,omitempty"`              // image and pdf kinds, object storage link
	OriginalFilename string    `json:"original_filename,omitempty"`
	Caption          string    `json:"caption,omitempty"`
	SortOrder        int       `json:"sort_order"`
	IsPinned         bool      `json:"is_pinned"`

	Timestamp
}
