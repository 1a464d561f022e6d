package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/service"
)

// ContactHandler handles contact message endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateMessageRequest represents the public contact form.
type CreateMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// MessageListResponse is one page of contact messages.
type MessageListResponse struct {
	Messages   []model.ContactMessage `json:"messages"`
	Pagination repository.Pagination  `json:"pagination"`
}

// Create godoc
// @Summary Submit a contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body CreateMessageRequest true "Message"
// @Success 201 {object} model.ContactMessage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /message/create [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.contactService.Create(c.Request().Context(), service.CreateMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, message)
}

// List godoc
// @Summary List contact messages
// @Tags messages
// @Produce json
// @Param page query int false "Page"
// @Param pageSize query int false "Page size"
// @Success 200 {object} MessageListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /messages [get]
func (h *ContactHandler) List(c echo.Context) error {
	page, pageSize := pageParams(c)
	messages, pagination, err := h.contactService.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	if messages == nil {
		messages = []model.ContactMessage{}
	}
	return c.JSON(http.StatusOK, MessageListResponse{Messages: messages, Pagination: pagination})
}

// GetByID godoc
// @Summary Get a contact message by id
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} model.ContactMessage
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /message/{id} [get]
func (h *ContactHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, errors.ErrMessageNotFound)
	if err != nil {
		return respondError(c, err)
	}
	message, err := h.contactService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, message)
}

// Delete godoc
// @Summary Delete a contact message
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} model.ContactMessage
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /message/delete-message/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := pathID(c, errors.ErrMessageNotFound)
	if err != nil {
		return respondError(c, err)
	}
	message, err := h.contactService.Delete(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, message)
}
