package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"

	"hotelDeskAI/domain"
	"hotelDeskAI/pkg/logger"
)

type (
	ForecastHandler struct {
		forecastService ForecastService
		defaultDays     int
		maxDays         int
		timeout         time.Duration
	}

	ForecastService interface {
		ForecastSales(ctx context.Context, days int) ([]domain.ForecastPoint, error)
		ForecastOccupancy(ctx context.Context, days int) ([]domain.ForecastPoint, error)
		ForecastSalesAlt(ctx context.Context, days int) ([]domain.ForecastPoint, error)
	}
)

func NewForecastHandler(forecastService ForecastService, defaultDays, maxDays int) *ForecastHandler {
	return &ForecastHandler{
		forecastService: forecastService,
		defaultDays:     defaultDays,
		maxDays:         maxDays,
		timeout:         30 * time.Second,
	}
}

func (h *ForecastHandler) GetSales(c echo.Context) error {
	return h.serve(c, h.forecastService.ForecastSales)
}

func (h *ForecastHandler) GetSalesAlt(c echo.Context) error {
	return h.serve(c, h.forecastService.ForecastSalesAlt)
}

func (h *ForecastHandler) GetOccupancy(c echo.Context) error {
	return h.serve(c, h.forecastService.ForecastOccupancy)
}

func (h *ForecastHandler) serve(c echo.Context, forecast func(context.Context, int) ([]domain.ForecastPoint, error)) error {
	days, err := h.horizonDays(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	points, err := forecast(ctx, days)
	if err != nil {
		logger.Error("Failed to generate forecast", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(points))
}

// horizonDays parses the optional days query parameter, bounded to
// [1, maxDays].
func (h *ForecastHandler) horizonDays(c echo.Context) (int, error) {
	raw := c.QueryParam("days")
	if raw == "" {
		return h.defaultDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > h.maxDays {
		return 0, fmt.Errorf("days must be an integer between 1 and %d", h.maxDays)
	}
	return days, nil
}
