package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio/internal/errors"
	"portfolio/internal/model"
)

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context, offset, limit int) ([]model.Project, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProjectService_List_Pagination(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		pageSize       int
		total          int64
		expectedOffset int
		expectedLimit  int
		expectedPages  int
	}{
		{
			name:           "defaults applied for zero values",
			page:           0,
			pageSize:       0,
			total:          25,
			expectedOffset: 0,
			expectedLimit:  10,
			expectedPages:  3,
		},
		{
			name:           "second page",
			page:           2,
			pageSize:       10,
			total:          25,
			expectedOffset: 10,
			expectedLimit:  10,
			expectedPages:  3,
		},
		{
			name:           "page beyond range returns empty list with valid metadata",
			page:           9,
			pageSize:       10,
			total:          25,
			expectedOffset: 80,
			expectedLimit:  10,
			expectedPages:  3,
		},
		{
			name:           "empty collection",
			page:           1,
			pageSize:       10,
			total:          0,
			expectedOffset: 0,
			expectedLimit:  10,
			expectedPages:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProjectRepository)
			repo.On("Count", mock.Anything).Return(tt.total, nil)
			repo.On("List", mock.Anything, tt.expectedOffset, tt.expectedLimit).Return([]model.Project{}, nil)

			svc := NewProjectService(repo, nil)
			projects, pagination, err := svc.List(context.Background(), tt.page, tt.pageSize)
			require.NoError(t, err)

			assert.Empty(t, projects)
			assert.Equal(t, tt.total, pagination.TotalItems)
			assert.Equal(t, tt.expectedPages, pagination.TotalPages)
			repo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Create_PreservesImageOrder(t *testing.T) {
	repo := new(MockProjectRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

	svc := NewProjectService(repo, nil)
	project, err := svc.Create(context.Background(), CreateProjectInput{
		Title:       "T",
		Description: "D",
		Category:    "C",
		Images:      []string{"uploads/1.png", "uploads/2.png", "uploads/3.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"uploads/1.png", "uploads/2.png", "uploads/3.png"}, project.Images)
}

func TestProjectService_Update_PartialIsolation(t *testing.T) {
	id := uuid.New()
	stored := &model.Project{ID: id, Title: "Old", Description: "Keep", Category: "Keep"}

	repo := new(MockProjectRepository)
	repo.On("FindByID", mock.Anything, id).Return(stored, nil)
	repo.On("UpdateFields", mock.Anything, id, map[string]interface{}{"title": "New"}).Return(nil)

	svc := NewProjectService(repo, nil)
	_, err := svc.Update(context.Background(), id, UpdateProjectInput{Title: strptr("New")})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	id := uuid.New()
	repo := new(MockProjectRepository)
	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewProjectService(repo, nil)
	_, err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, errors.ErrProjectNotFound)
}
