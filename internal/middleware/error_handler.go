package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hotelDeskAI/pkg/logger"
)

type errorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler is the central echo HTTPErrorHandler: echo errors keep their
// status, everything else becomes a 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", "path", c.Path(), "error", err)
	}

	if err := c.JSON(status, errorResponse{Message: message}); err != nil {
		logger.Error("Failed to write error response", "error", err)
	}
}
