package attachment

import (
	"Cooking-Companion-Backend/domain"
	"Cooking-Companion-Backend/entities"
	"Cooking-Companion-Backend/internal/utils/storage"
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.Recipe{},
		&entities.Dish{},
		&entities.CookSession{},
		&entities.CookResult{},
		&entities.Attachment{},
	))
	return db
}

// fakeS3 keeps uploads in memory so file attachment flows run without AWS.
type fakeS3 struct {
	objects map[string][]byte
	deleted []string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if len(allowedTypes) > 0 {
		ok := false
		for _, allowed := range allowedTypes {
			if contentType == allowed {
				ok = true
				break
			}
		}
		if !ok {
			return "", storage.ErrContentTypeNotAllowed
		}
	}
	objectKey := folder + "/" + fileName
	f.objects[objectKey] = nil
	return objectKey, nil
}

func (f *fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	f.objects[objectKey] = nil
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	delete(f.objects, objectKey)
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://fake.test/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	return link[len("https://fake.test/"):]
}

func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&body, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}

func seedParents(t *testing.T, db *gorm.DB) (*entities.Recipe, *entities.Dish) {
	t.Helper()
	r := &entities.Recipe{ID: uuid.New(), Title: "Focaccia", IsActive: true}
	require.NoError(t, db.Create(r).Error)
	d := &entities.Dish{ID: uuid.New(), RecipeID: r.ID, Name: "Rosemary Focaccia", IsActive: true}
	require.NoError(t, db.Create(d).Error)
	return r, d
}

func TestCreateNoteAndURLAttachments(t *testing.T) {
	db := setupTestDB(t)
	service := NewAttachmentService(NewAttachmentRepository(db), newFakeS3())
	ctx := context.Background()

	r, _ := seedParents(t, db)

	note, err := service.CreateAttachment(ctx, entities.ParentTypeRecipe, r.ID.String(), domain.CreateAttachmentRequest{
		Kind:     entities.AttachmentKindNote,
		Title:    "Hydration",
		Body:     "80% hydration works better than the stated 75%",
		IsPinned: true,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.AttachmentKindNote, note.Kind)
	assert.True(t, note.IsPinned)

	link, err := service.CreateAttachment(ctx, entities.ParentTypeRecipe, r.ID.String(), domain.CreateAttachmentRequest{
		Kind: entities.AttachmentKindURL,
		URL:  "https://example.com/focaccia-video",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/focaccia-video", link.URL)
}

func TestCreateAttachmentPayloadMismatch(t *testing.T) {
	db := setupTestDB(t)
	service := NewAttachmentService(NewAttachmentRepository(db), newFakeS3())
	ctx := context.Background()

	r, _ := seedParents(t, db)

	// A note without a body carries no payload.
	_, err := service.CreateAttachment(ctx, entities.ParentTypeRecipe, r.ID.String(), domain.CreateAttachmentRequest{
		Kind: entities.AttachmentKindNote,
	})
	assert.ErrorIs(t, err, domain.ErrAttachmentPayloadKind)

	// Same for a url kind without a url.
	_, err = service.CreateAttachment(ctx, entities.ParentTypeRecipe, r.ID.String(), domain.CreateAttachmentRequest{
		Kind: entities.AttachmentKindURL,
		Body: "this is not a url",
	})
	assert.ErrorIs(t, err, domain.ErrAttachmentPayloadKind)
}

func TestCreateAttachmentUnsupportedKind(t *testing.T) {
	db := setupTestDB(t)
	service := NewAttachmentService(NewAttachmentRepository(db), newFakeS3())

	r, _ := seedParents(t, db)
	_, err := service.CreateAttachment(context.Background(), entities.ParentTypeRecipe, r.ID.String(), domain.CreateAttachmentRequest{
		Kind: "voice_memo",
		Body: "x",
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedKind)
}

func TestCreateAttachmentParentChecks(t *testing.T) {
	db := setupTestDB(t)
	service := NewAttachmentService(NewAttachmentRepository(db), newFakeS3())
	ctx := context.Background()

	req := domain.CreateAttachmentRequest{Kind: entities.AttachmentKindNote, Body: "x"}

	_, err := service.CreateAttachment(ctx, "pantry", uuid.NewString(), req)
	assert.ErrorIs(t, err, domain.ErrUnsupportedParentType)

	_, err = service.CreateAttachment(ctx, entities.ParentTypeRecipe, "not-a-uuid", req)
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = service.CreateAttachment(ctx, entities.ParentTypeRecipe, uuid.NewString(), req)
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestUploadImageAttachment(t *testing.T) {
	db := setupTestDB(t)
	s3 := newFakeS3()
	service := NewAttachmentService(NewAttachmentRepository(db), s3)
	ctx := context.Background()

	_, d := seedParents(t, db)

	file := makeFileHeader(t, "crumb.png", "image/png", []byte("png-bytes"))
	uploaded, err := service.UploadAttachment(ctx, entities.ParentTypeDish, d.ID.String(), domain.UploadAttachmentRequest{
		Kind:    entities.AttachmentKindImage,
		Caption: "Open crumb on the second bake",
		File:    file,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.AttachmentKindImage, uploaded.Kind)
	assert.Equal(t, "crumb.png", uploaded.OriginalFilename)
	assert.Contains(t, uploaded.FileURL, "cooking-companion/images/")
	assert.Len(t, s3.objects, 1)
}

func TestUploadAttachmentWrongContentType(t *testing.T) {
	db := setupTestDB(t)
	service := NewAttachmentService(NewAttachmentRepository(db), newFakeS3())

	_, d := seedParents(t, db)
	file := makeFileHeader(t, "notes.txt", "text/plain", []byte("plain text"))
	_, err := service.UploadAttachment(context.Background(), entities.ParentTypeDish, d.ID.String(), domain.UploadAttachmentRequest{
		Kind: entities.AttachmentKindPDF,
		File: file,
	})
	assert.ErrorIs(t, err, domain.ErrAttachmentPayloadKind)
}

func TestGetAttachmentsCreationOrder(t *testing.T) {
	db := setupTestDB(t)
	service := NewAttachmentService(NewAttachmentRepository(db), newFakeS3())
	ctx := context.Background()

	r, d := seedParents(t, db)

	// Insert directly to control created_at ordering.
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, body := range []string{"first", "second", "third"} {
		a := &entities.Attachment{
			ID:         uuid.New(),
			ParentType: entities.ParentTypeRecipe,
			ParentID:   r.ID,
			Kind:       entities.AttachmentKindNote,
			Body:       body,
		}
		a.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		a.UpdatedAt = a.CreatedAt
		require.NoError(t, db.Create(a).Error)
	}
	require.NoError(t, db.Create(&entities.Attachment{
		ID:         uuid.New(),
		ParentType: entities.ParentTypeDish,
		ParentID:   d.ID,
		Kind:       entities.AttachmentKindNote,
		Body:       "other parent",
	}).Error)

	attachments, err := service.GetAttachments(ctx, domain.ListAttachmentsRequest{
		ParentType: entities.ParentTypeRecipe,
		ParentID:   r.ID.String(),
	})
	require.NoError(t, err)
	require.Len(t, attachments, 3)
	assert.Equal(t, "first", attachments[0].Body)
	assert.Equal(t, "second", attachments[1].Body)
	assert.Equal(t, "third", attachments[2].Body)
}

func TestDeleteAttachmentCleansUpStorage(t *testing.T) {
	db := setupTestDB(t)
	s3 := newFakeS3()
	service := NewAttachmentService(NewAttachmentRepository(db), s3)
	ctx := context.Background()

	_, d := seedParents(t, db)
	file := makeFileHeader(t, "recipe-card.pdf", "application/pdf", []byte("pdf-bytes"))
	uploaded, err := service.UploadAttachment(ctx, entities.ParentTypeDish, d.ID.String(), domain.UploadAttachmentRequest{
		Kind: entities.AttachmentKindPDF,
		File: file,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteAttachment(ctx, uploaded.ID))
	assert.Empty(t, s3.objects)
	require.Len(t, s3.deleted, 1)

	err = service.DeleteAttachment(ctx, uploaded.ID)
	assert.ErrorIs(t, err, domain.ErrAttachmentNotFound)
}
