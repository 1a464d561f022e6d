package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// CreateMessageInput carries the public contact form fields.
type CreateMessageInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactService handles contact messages. Creation is public; reads and
// deletes are admin only, enforced at the route level.
type ContactService interface {
	Create(ctx context.Context, input CreateMessageInput) (*model.ContactMessage, error)
	List(ctx context.Context, page, pageSize int) ([]model.ContactMessage, repository.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
}

type contactService struct {
	repo repository.ContactMessageRepository
}

// NewContactService creates a new contact message service.
func NewContactService(repo repository.ContactMessageRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Create(ctx context.Context, input CreateMessageInput) (*model.ContactMessage, error) {
	message := &model.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

func (s *contactService) List(ctx context.Context, page, pageSize int) ([]model.ContactMessage, repository.Pagination, error) {
	page, pageSize = repository.NormalizePage(page, pageSize)

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, repository.Pagination{}, fmt.Errorf("count messages: %w", err)
	}

	pagination := repository.NewPagination(page, pageSize, total)
	messages, err := s.repo.List(ctx, pagination.Offset(), pageSize)
	if err != nil {
		return nil, repository.Pagination{}, fmt.Errorf("list messages: %w", err)
	}
	return messages, pagination, nil
}

func (s *contactService) GetByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	message, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}
	return message, nil
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	message, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete message: %w", err)
	}
	return message, nil
}
