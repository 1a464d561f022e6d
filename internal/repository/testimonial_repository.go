package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio/internal/model"
)

// TestimonialRepository defines testimonial persistence operations.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *model.Testimonial) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Testimonial, error)
	List(ctx context.Context, offset, limit int) ([]model.Testimonial, error)
	Count(ctx context.Context) (int64, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository builds a GORM-backed repository.
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

func (r *testimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Testimonial, error) {
	var testimonial model.Testimonial
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&testimonial).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *testimonialRepository) List(ctx context.Context, offset, limit int) ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *testimonialRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Testimonial{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *testimonialRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Testimonial{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *testimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Testimonial{}).Error
}
