package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"portfolio/internal/config"
	"portfolio/internal/handler"
	"portfolio/internal/middleware"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	blogHandler *handler.BlogHandler,
	projectHandler *handler.ProjectHandler,
	testimonialHandler *handler.TestimonialHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Local attachment addresses are relative paths under the uploads root.
	e.Static("/uploads", cfg.UploadsDir)

	// Admin chain: verify token, resolve principal from the users table,
	// then gate on the exact role.
	admin := []echo.MiddlewareFunc{
		middleware.JWT(cfg.JWTSecret),
		middleware.LoadPrincipal(users),
		middleware.RequireRole(model.RoleAdmin),
	}

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	e.POST("/project/create", projectHandler.Create, admin...)
	e.GET("/projects", projectHandler.List)
	e.GET("/project/:id", projectHandler.GetByID)
	e.PUT("/project/update-project/:id", projectHandler.Update, admin...)
	e.DELETE("/project/delete-project/:id", projectHandler.Delete, admin...)

	e.POST("/blog/create", blogHandler.Create, admin...)
	e.GET("/blogs", blogHandler.List)
	e.GET("/blog/:id", blogHandler.GetByID)
	e.PUT("/blog/update-blog/:id", blogHandler.Update, admin...)
	e.DELETE("/blog/delete-blog/:id", blogHandler.Delete, admin...)

	e.POST("/testimonies/create", testimonialHandler.Create, admin...)
	e.GET("/testimonies", testimonialHandler.List)
	e.GET("/testimonies/:id", testimonialHandler.GetByID)
	e.PUT("/testimonies/update-testimony/:id", testimonialHandler.Update, admin...)
	e.DELETE("/testimonies/delete-testimony/:id", testimonialHandler.Delete, admin...)

	e.POST("/message/create", contactHandler.Create)
	e.GET("/messages", contactHandler.List, admin...)
	e.GET("/message/:id", contactHandler.GetByID, admin...)
	e.DELETE("/message/delete-message/:id", contactHandler.Delete, admin...)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
