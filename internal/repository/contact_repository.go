package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio/internal/model"
)

// ContactMessageRepository defines contact message persistence operations.
// Messages are write-once; there is no update path.
type ContactMessageRepository interface {
	Create(ctx context.Context, message *model.ContactMessage) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	List(ctx context.Context, offset, limit int) ([]model.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository builds a GORM-backed repository.
func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *contactMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	var message model.ContactMessage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *contactMessageRepository) List(ctx context.Context, offset, limit int) ([]model.ContactMessage, error) {
	var messages []model.ContactMessage
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *contactMessageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ContactMessage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *contactMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ContactMessage{}).Error
}
