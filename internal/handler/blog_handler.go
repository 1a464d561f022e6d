package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// BlogHandler handles blog endpoints.
type BlogHandler struct {
	blogService service.BlogService
	ingester    *storage.Ingester
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(blogService service.BlogService, ingester *storage.Ingester) *BlogHandler {
	return &BlogHandler{blogService: blogService, ingester: ingester}
}

// CreateBlogRequest represents a blog creation form. The optional image
// file travels alongside as multipart field "image".
type CreateBlogRequest struct {
	Author  string `form:"author" validate:"required"`
	Sector  string `form:"sector"`
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
}

// UpdateBlogRequest is a partial update; absent keys leave the stored
// fields untouched.
type UpdateBlogRequest struct {
	Author  *string `json:"author"`
	Sector  *string `json:"sector"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

// BlogListResponse is one page of blogs.
type BlogListResponse struct {
	Blogs      []model.Blog          `json:"blogs"`
	Pagination repository.Pagination `json:"pagination"`
}

// Create godoc
// @Summary Create a blog
// @Tags blogs
// @Accept mpfd
// @Produce json
// @Param author formData string true "Author"
// @Param sector formData string false "Sector"
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param image formData file false "Cover image"
// @Success 201 {object} model.Blog
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /blog/create [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Upload failure must prevent record creation.
	form, _ := c.MultipartForm()
	image, err := h.ingester.Single(c.Request().Context(), form, "image")
	if err != nil {
		return respondError(c, err)
	}

	blog, err := h.blogService.Create(c.Request().Context(), service.CreateBlogInput{
		Author:  req.Author,
		Sector:  req.Sector,
		Title:   req.Title,
		Content: req.Content,
		Image:   image,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, blog)
}

// List godoc
// @Summary List blogs
// @Tags blogs
// @Produce json
// @Param page query int false "Page"
// @Param pageSize query int false "Page size"
// @Success 200 {object} BlogListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	page, pageSize := pageParams(c)
	blogs, pagination, err := h.blogService.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	if blogs == nil {
		blogs = []model.Blog{}
	}
	return c.JSON(http.StatusOK, BlogListResponse{Blogs: blogs, Pagination: pagination})
}

// GetByID godoc
// @Summary Get a blog by id
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} model.Blog
// @Failure 404 {object} errors.ErrorResponse
// @Router /blog/{id} [get]
func (h *BlogHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, errors.ErrBlogNotFound)
	if err != nil {
		return respondError(c, err)
	}
	blog, err := h.blogService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, blog)
}

// Update godoc
// @Summary Update a blog
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param request body UpdateBlogRequest true "Partial fields"
// @Success 200 {object} model.Blog
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /blog/update-blog/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := pathID(c, errors.ErrBlogNotFound)
	if err != nil {
		return respondError(c, err)
	}

	var req UpdateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	blog, err := h.blogService.Update(c.Request().Context(), id, service.UpdateBlogInput{
		Author:  req.Author,
		Sector:  req.Sector,
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, blog)
}

// Delete godoc
// @Summary Delete a blog
// @Tags blogs
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} model.Blog
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /blog/delete-blog/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := pathID(c, errors.ErrBlogNotFound)
	if err != nil {
		return respondError(c, err)
	}
	blog, err := h.blogService.Delete(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, blog)
}
