package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"usuarios-api/internal/config"
	apierrors "usuarios-api/internal/errors"
	"usuarios-api/internal/handler"
	"usuarios-api/internal/logging"
)

// Register wires middleware and routes.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	appLog *logging.Logger,
	forwarder *logging.Forwarder,
	userHandler *handler.UserHandler,
	systemHandler *handler.SystemHandler,
) {
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = newHTTPErrorHandler(appLog)

	e.Use(middleware.RequestID())
	// the request logger wraps Recover so a recovered panic is still
	// observed as a finished 500 response
	e.Use(logging.Middleware(appLog, forwarder, cfg.Env))
	e.Use(middleware.Recover())

	e.GET("/", systemHandler.Root)
	e.GET("/health", systemHandler.Health)
	e.GET("/test-db", systemHandler.TestDB)
	e.GET("/test-log", systemHandler.TestLog)

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	e.GET("/usuarios", userHandler.ListUsers)
	e.GET("/usuarios/:id", userHandler.GetUser)
	e.POST("/usuarios", userHandler.CreateUser)
	e.PUT("/usuarios/:id", userHandler.UpdateUser)
	e.DELETE("/usuarios/:id", userHandler.DeleteUser)
}

// newHTTPErrorHandler is the catch-all error boundary. Domain errors keep
// their mapped status and message; everything else, including recovered
// panics, becomes a generic 500 with the detail logged server-side only.
func newHTTPErrorHandler(appLog *logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *apierrors.HTTPError
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &httpErr):
			if httpErr.StatusCode >= http.StatusInternalServerError {
				appLog.Error(httpErr.Message,
					"error", fmt.Sprint(httpErr.Internal),
					"path", c.Request().RequestURI)
			}
			err = c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		case errors.As(err, &echoErr):
			resp := apierrors.ErrorResponse{Error: fmt.Sprint(echoErr.Message)}
			if echoErr.Code == http.StatusNotFound {
				resp.Error = "Endpoint não encontrado"
			}
			err = c.JSON(echoErr.Code, resp)
		default:
			appLog.Error("Erro não tratado", "error", err.Error(), "path", c.Request().RequestURI)
			err = c.JSON(http.StatusInternalServerError,
				apierrors.ErrorResponse{Error: "Erro interno do servidor"})
		}
		if err != nil {
			appLog.Error("write error response", "error", err.Error())
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
