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

// TestimonialHandler handles testimonial endpoints.
type TestimonialHandler struct {
	testimonialService service.TestimonialService
	ingester           *storage.Ingester
}

// NewTestimonialHandler creates a new testimonial handler.
func NewTestimonialHandler(testimonialService service.TestimonialService, ingester *storage.Ingester) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService, ingester: ingester}
}

// CreateTestimonialRequest represents a testimonial creation form with a
// single multipart "image" field.
type CreateTestimonialRequest struct {
	Name    string `form:"name" validate:"required"`
	Role    string `form:"role"`
	Message string `form:"message" validate:"required"`
	Work    string `form:"work"`
}

// UpdateTestimonialRequest is a partial update; absent keys leave the
// stored fields untouched.
type UpdateTestimonialRequest struct {
	Name    *string `json:"name"`
	Role    *string `json:"role"`
	Message *string `json:"message"`
	Work    *string `json:"work"`
	Image   *string `json:"image"`
}

// TestimonialListResponse is one page of testimonials.
type TestimonialListResponse struct {
	Testimonials []model.Testimonial   `json:"testimonials"`
	Pagination   repository.Pagination `json:"pagination"`
}

// Create godoc
// @Summary Create a testimonial
// @Tags testimonials
// @Accept mpfd
// @Produce json
// @Param name formData string true "Author name"
// @Param role formData string false "Author role"
// @Param message formData string true "Message"
// @Param work formData string false "Work reference"
// @Param image formData file false "Portrait"
// @Success 201 {object} model.Testimonial
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /testimonies/create [post]
func (h *TestimonialHandler) Create(c echo.Context) error {
	var req CreateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	form, _ := c.MultipartForm()
	image, err := h.ingester.Single(c.Request().Context(), form, "image")
	if err != nil {
		return respondError(c, err)
	}

	testimonial, err := h.testimonialService.Create(c.Request().Context(), service.CreateTestimonialInput{
		Name:    req.Name,
		Role:    req.Role,
		Message: req.Message,
		Work:    req.Work,
		Image:   image,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, testimonial)
}

// List godoc
// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Param page query int false "Page"
// @Param pageSize query int false "Page size"
// @Success 200 {object} TestimonialListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /testimonies [get]
func (h *TestimonialHandler) List(c echo.Context) error {
	page, pageSize := pageParams(c)
	testimonials, pagination, err := h.testimonialService.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	if testimonials == nil {
		testimonials = []model.Testimonial{}
	}
	return c.JSON(http.StatusOK, TestimonialListResponse{Testimonials: testimonials, Pagination: pagination})
}

// GetByID godoc
// @Summary Get a testimonial by id
// @Tags testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} model.Testimonial
// @Failure 404 {object} errors.ErrorResponse
// @Router /testimonies/{id} [get]
func (h *TestimonialHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, errors.ErrTestimonialNotFound)
	if err != nil {
		return respondError(c, err)
	}
	testimonial, err := h.testimonialService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, testimonial)
}

// Update godoc
// @Summary Update a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param request body UpdateTestimonialRequest true "Partial fields"
// @Success 200 {object} model.Testimonial
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /testimonies/update-testimony/{id} [put]
func (h *TestimonialHandler) Update(c echo.Context) error {
	id, err := pathID(c, errors.ErrTestimonialNotFound)
	if err != nil {
		return respondError(c, err)
	}

	var req UpdateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	testimonial, err := h.testimonialService.Update(c.Request().Context(), id, service.UpdateTestimonialInput{
		Name:    req.Name,
		Role:    req.Role,
		Message: req.Message,
		Work:    req.Work,
		Image:   req.Image,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, testimonial)
}

// Delete godoc
// @Summary Delete a testimonial
// @Tags testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} model.Testimonial
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /testimonies/delete-testimony/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	id, err := pathID(c, errors.ErrTestimonialNotFound)
	if err != nil {
		return respondError(c, err)
	}
	testimonial, err := h.testimonialService.Delete(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, testimonial)
}
