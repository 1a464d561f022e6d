package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
	ingester       *storage.Ingester
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService, ingester *storage.Ingester) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, ingester: ingester}
}

// CreateProjectRequest represents a project creation form. Gallery files
// travel as multipart field "images".
type CreateProjectRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Category    string `form:"category"`
}

// UpdateProjectRequest is a partial update; absent keys leave the stored
// fields untouched.
type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Images      *[]string `json:"images"`
}

// ProjectListResponse mirrors the listing shape the front-end consumes.
type ProjectListResponse struct {
	Projects      []model.Project `json:"projects"`
	TotalProjects int64           `json:"totalProjects"`
	CurrentPage   int             `json:"currentPage"`
	TotalPages    int             `json:"totalPages"`
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param category formData string false "Category"
// @Param images formData file false "Gallery images (up to 10)"
// @Success 201 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /project/create [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// All-or-nothing: a failed batch never creates the project.
	form, _ := c.MultipartForm()
	images, err := h.ingester.Multi(c.Request().Context(), form, "images", service.MaxProjectImages)
	if err != nil {
		return respondError(c, err)
	}

	project, err := h.projectService.Create(c.Request().Context(), service.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Images:      images,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, project)
}

// List godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Param page query int false "Page"
// @Param pageSize query int false "Page size"
// @Success 200 {object} ProjectListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	page, pageSize := pageParams(c)
	projects, pagination, err := h.projectService.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	if projects == nil {
		projects = []model.Project{}
	}
	return c.JSON(http.StatusOK, ProjectListResponse{
		Projects:      projects,
		TotalProjects: pagination.TotalItems,
		CurrentPage:   pagination.Page,
		TotalPages:    pagination.TotalPages,
	})
}

// GetByID godoc
// @Summary Get a project by id
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} model.Project
// @Failure 404 {object} errors.ErrorResponse
// @Router /project/{id} [get]
func (h *ProjectHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, errors.ErrProjectNotFound)
	if err != nil {
		return respondError(c, err)
	}
	project, err := h.projectService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

// Update godoc
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body UpdateProjectRequest true "Partial fields"
// @Success 200 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /project/update-project/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := pathID(c, errors.ErrProjectNotFound)
	if err != nil {
		return respondError(c, err)
	}

	var req UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	project, err := h.projectService.Update(c.Request().Context(), id, service.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Images:      req.Images,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

// Delete godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} model.Project
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /project/delete-project/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := pathID(c, errors.ErrProjectNotFound)
	if err != nil {
		return respondError(c, err)
	}
	project, err := h.projectService.Delete(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}
