package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("user already exists")
	// ErrTitleTaken is returned when another blog already holds the requested title.
	ErrTitleTaken = errors.New("blog with this title already exists")
	// ErrBlogNotFound is returned when a blog id does not exist.
	ErrBlogNotFound = errors.New("blog not found")
	// ErrProjectNotFound is returned when a project id does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTestimonialNotFound is returned when a testimonial id does not exist.
	ErrTestimonialNotFound = errors.New("testimonial not found")
	// ErrMessageNotFound is returned when a contact message id does not exist.
	ErrMessageNotFound = errors.New("message not found")
	// ErrUpload is returned when attachment ingestion fails.
	ErrUpload = errors.New("upload failed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy collapses to a generic 500 so internal detail never reaches the
// client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrTitleTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TITLE_TAKEN")
	case errors.Is(err, ErrBlogNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BLOG_NOT_FOUND")
	case errors.Is(err, ErrProjectNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROJECT_NOT_FOUND")
	case errors.Is(err, ErrTestimonialNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TESTIMONIAL_NOT_FOUND")
	case errors.Is(err, ErrMessageNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MESSAGE_NOT_FOUND")
	case errors.Is(err, ErrUpload):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UPLOAD_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
