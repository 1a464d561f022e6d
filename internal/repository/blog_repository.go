package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio/internal/model"
)

// BlogRepository defines blog persistence operations.
type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	// FindByTitle returns a blog holding the title, excluding the given id.
	// Used for the uniqueness check before an update.
	FindByTitle(ctx context.Context, title string, excludeID uuid.UUID) (*model.Blog, error)
	List(ctx context.Context, offset, limit int) ([]model.Blog, error)
	Count(ctx context.Context) (int64, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository builds a GORM-backed repository.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *model.Blog) error {
	return r.db.WithContext(ctx).Create(blog).Error
}

func (r *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	var blog model.Blog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) FindByTitle(ctx context.Context, title string, excludeID uuid.UUID) (*model.Blog, error) {
	var blog model.Blog
	if err := r.db.WithContext(ctx).
		Where("title = ? AND id <> ?", title, excludeID).
		First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) List(ctx context.Context, offset, limit int) ([]model.Blog, error) {
	var blogs []model.Blog
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Blog{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *blogRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Blog{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Blog{}).Error
}
