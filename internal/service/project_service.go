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

const projectCacheTTL = 5 * time.Minute

// MaxProjectImages caps the gallery size on project creation.
const MaxProjectImages = 10

// CreateProjectInput carries the fields for a new project. Images are the
// already resolved attachment addresses, in upload order.
type CreateProjectInput struct {
	Title       string
	Description string
	Category    string
	Images      []string
}

// UpdateProjectInput is a partial update. Nil fields are left untouched.
type UpdateProjectInput struct {
	Title       *string
	Description *string
	Category    *string
	Images      *[]string
}

// ProjectService handles project CRUD.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*model.Project, error)
	List(ctx context.Context, page, pageSize int) ([]model.Project, repository.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Project, error)
}

type projectService struct {
	repo  repository.ProjectRepository
	cache *cache.Client
}

// NewProjectService creates a new project service.
func NewProjectService(repo repository.ProjectRepository, cache *cache.Client) ProjectService {
	return &projectService{repo: repo, cache: cache}
}

func (s *projectService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("project:%s", id.String())
}

func (s *projectService) Create(ctx context.Context, input CreateProjectInput) (*model.Project, error) {
	project := &model.Project{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Images:      input.Images,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context, page, pageSize int) ([]model.Project, repository.Pagination, error) {
	page, pageSize = repository.NormalizePage(page, pageSize)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, repository.Pagination{}, fmt.Errorf("count projects: %w", err)
	}

	pagination := repository.NewPagination(page, pageSize, total)
	projects, err := s.repo.List(ctx, pagination.Offset(), pageSize)
	if err != nil {
		return nil, repository.Pagination{}, fmt.Errorf("list projects: %w", err)
	}
	return projects, pagination, nil
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	if payload, err := json.Marshal(project); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, projectCacheTTL)
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*model.Project, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Images != nil {
		// Serialized by hand: Updates with a map bypasses the model's
		// JSON serializer.
		encoded, err := json.Marshal(*input.Images)
		if err != nil {
			return nil, fmt.Errorf("encode images: %w", err)
		}
		fields["images"] = string(encoded)
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update project: %w", err)
		}
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return s.repo.FindByID(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete project: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return project, nil
}
