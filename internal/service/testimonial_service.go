package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio/internal/cache"
	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const testimonialCacheTTL = 5 * time.Minute

// CreateTestimonialInput carries the fields for a new testimonial.
type CreateTestimonialInput struct {
	Name    string
	Role    string
	Message string
	Work    string
	Image   string
}

// UpdateTestimonialInput is a partial update. Nil fields are left untouched.
type UpdateTestimonialInput struct {
	Name    *string
	Role    *string
	Message *string
	Work    *string
	Image   *string
}

// TestimonialService handles testimonial CRUD.
type TestimonialService interface {
	Create(ctx context.Context, input CreateTestimonialInput) (*model.Testimonial, error)
	List(ctx context.Context, page, pageSize int) ([]model.Testimonial, repository.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Testimonial, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTestimonialInput) (*model.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Testimonial, error)
}

type testimonialService struct {
	repo  repository.TestimonialRepository
	cache *cache.Client
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(repo repository.TestimonialRepository, cache *cache.Client) TestimonialService {
	return &testimonialService{repo: repo, cache: cache}
}

func (s *testimonialService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("testimonial:%s", id.String())
}

func (s *testimonialService) Create(ctx context.Context, input CreateTestimonialInput) (*model.Testimonial, error) {
	testimonial := &model.Testimonial{
		Name:    input.Name,
		Role:    input.Role,
		Message: input.Message,
		Work:    input.Work,
		Image:   input.Image,
	}
	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return testimonial, nil
}

func (s *testimonialService) List(ctx context.Context, page, pageSize int) ([]model.Testimonial, repository.Pagination, error) {
	page, pageSize = repository.NormalizePage(page, pageSize)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, repository.Pagination{}, fmt.Errorf("count testimonials: %w", err)
	}

	pagination := repository.NewPagination(page, pageSize, total)
	testimonials, err := s.repo.List(ctx, pagination.Offset(), pageSize)
	if err != nil {
		return nil, repository.Pagination{}, fmt.Errorf("list testimonials: %w", err)
	}
	return testimonials, pagination, nil
}

func (s *testimonialService) GetByID(ctx context.Context, id uuid.UUID) (*model.Testimonial, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Testimonial
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	testimonial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("find testimonial: %w", err)
	}

	if payload, err := json.Marshal(testimonial); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, testimonialCacheTTL)
	}
	return testimonial, nil
}

func (s *testimonialService) Update(ctx context.Context, id uuid.UUID, input UpdateTestimonialInput) (*model.Testimonial, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("find testimonial: %w", err)
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Role != nil {
		fields["role"] = *input.Role
	}
	if input.Message != nil {
		fields["message"] = *input.Message
	}
	if input.Work != nil {
		fields["work"] = *input.Work
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update testimonial: %w", err)
		}
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return s.repo.FindByID(ctx, id)
}

func (s *testimonialService) Delete(ctx context.Context, id uuid.UUID) (*model.Testimonial, error) {
	testimonial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("find testimonial: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete testimonial: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return testimonial, nil
}
