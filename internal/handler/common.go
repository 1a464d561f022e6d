package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portfolio/internal/errors"
)

// respondError converts a domain error to the standard error payload.
// Unexpected errors collapse to a generic 500; the detail stays in the log.
func respondError(c echo.Context, err error) error {
	he := errors.MapErrorToHTTP(err)
	if he.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// pageParams reads page and pageSize from the query string. Absent or
// non-numeric values come back as zero and are defaulted downstream.
func pageParams(c echo.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	pageSize, _ = strconv.Atoi(c.QueryParam("pageSize"))
	return page, pageSize
}

// pathID parses the :id path parameter. notFound is returned for malformed
// ids: an id that cannot exist is indistinguishable from one that does not.
func pathID(c echo.Context, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}
