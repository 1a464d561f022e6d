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

const blogCacheTTL = 5 * time.Minute

// CreateBlogInput carries the fields for a new blog. Image is the already
// resolved attachment address, empty when no file was uploaded.
type CreateBlogInput struct {
	Author  string
	Sector  string
	Title   string
	Content string
	Image   string
}

// UpdateBlogInput is a partial update. Nil fields are left untouched.
type UpdateBlogInput struct {
	Author  *string
	Sector  *string
	Title   *string
	Content *string
	Image   *string
}

// BlogService handles blog CRUD.
type BlogService interface {
	Create(ctx context.Context, input CreateBlogInput) (*model.Blog, error)
	List(ctx context.Context, page, pageSize int) ([]model.Blog, repository.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBlogInput) (*model.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Blog, error)
}

type blogService struct {
	repo  repository.BlogRepository
	cache *cache.Client
}

// NewBlogService creates a new blog service.
func NewBlogService(repo repository.BlogRepository, cache *cache.Client) BlogService {
	return &blogService{repo: repo, cache: cache}
}

func (s *blogService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("blog:%s", id.String())
}

// Create persists a new blog. Attachment ingestion has already happened;
// an upload failure never reaches this point.
func (s *blogService) Create(ctx context.Context, input CreateBlogInput) (*model.Blog, error) {
	blog := &model.Blog{
		Author:  input.Author,
		Sector:  input.Sector,
		Title:   input.Title,
		Content: input.Content,
	}
	if input.Image != "" {
		blog.Image = &input.Image
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return blog, nil
}

// List returns one page of blogs ordered by creation date descending.
func (s *blogService) List(ctx context.Context, page, pageSize int) ([]model.Blog, repository.Pagination, error) {
	page, pageSize = repository.NormalizePage(page, pageSize)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, repository.Pagination{}, fmt.Errorf("count blogs: %w", err)
	}

	pagination := repository.NewPagination(page, pageSize, total)
	blogs, err := s.repo.List(ctx, pagination.Offset(), pageSize)
	if err != nil {
		return nil, repository.Pagination{}, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, pagination, nil
}

// GetByID retrieves a blog with read-through caching.
func (s *blogService) GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Blog
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}

	if payload, err := json.Marshal(blog); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, blogCacheTTL)
	}
	return blog, nil
}

// Update applies merge semantics: only non-nil input fields overwrite the
// stored record. A title held by any other blog rejects the whole update.
func (s *blogService) Update(ctx context.Context, id uuid.UUID, input UpdateBlogInput) (*model.Blog, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}

	if input.Title != nil {
		other, err := s.repo.FindByTitle(ctx, *input.Title, id)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check title: %w", err)
		}
		if other != nil {
			return nil, errors.ErrTitleTaken
		}
	}

	fields := map[string]interface{}{}
	if input.Author != nil {
		fields["author"] = *input.Author
	}
	if input.Sector != nil {
		fields["sector"] = *input.Sector
	}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update blog: %w", err)
		}
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return s.repo.FindByID(ctx, id)
}

// Delete removes a blog and returns the deleted snapshot.
func (s *blogService) Delete(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete blog: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return blog, nil
}
