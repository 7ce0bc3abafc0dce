package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"hotelDeskAI/business/pricing"
	"hotelDeskAI/domain"
	"hotelDeskAI/pkg/logger"
)

type (
	PricingHandler struct {
		pricingService PricingService
		validate       *validator.Validate
		defaultDays    int
		maxDays        int
		timeout        time.Duration
	}

	PricingService interface {
		CompetitorBands(ctx context.Context, days int) ([]domain.CompetitorBand, error)
		Suggestions(ctx context.Context, days int, mode domain.PricingMode) ([]domain.PricingDecision, error)
	}

	SuggestPriceInput struct {
		OccupancyForecast float64 `json:"occupancy_forecast" validate:"gte=0,lte=1"`
		CompP50           float64 `json:"comp_p50" validate:"required,gt=0"`
		CompP75           float64 `json:"comp_p75" validate:"required,gt=0"`
		Mode              string  `json:"mode" validate:"required,oneof=conservative neutral aggressive"`
	}

	SuggestPriceOutput struct {
		SuggestedPrice int `json:"suggested_price"`
	}
)

func NewPricingHandler(pricingService PricingService, defaultDays, maxDays int) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
		validate:       validator.New(),
		defaultDays:    defaultDays,
		maxDays:        maxDays,
		timeout:        30 * time.Second,
	}
}

func (h *PricingHandler) GetCompetitorBands(c echo.Context) error {
	days, err := h.horizonDays(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	bands, err := h.pricingService.CompetitorBands(ctx, days)
	if err != nil {
		logger.Error("Failed to compute competitor bands", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(bands))
}

func (h *PricingHandler) GetSuggestions(c echo.Context) error {
	days, err := h.horizonDays(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	mode, err := h.pricingMode(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	decisions, err := h.pricingService.Suggestions(ctx, days, mode)
	if err != nil {
		logger.Error("Failed to generate pricing suggestions", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(decisions))
}

// ExportSuggestions streams the decision table as a CSV download.
func (h *PricingHandler) ExportSuggestions(c echo.Context) error {
	days, err := h.horizonDays(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	mode, err := h.pricingMode(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	decisions, err := h.pricingService.Suggestions(ctx, days, mode)
	if err != nil {
		logger.Error("Failed to generate pricing suggestions", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="pricing_suggestions.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return pricing.WriteReportCSV(c.Response(), decisions)
}

// SuggestPrice evaluates the pure pricing policy on caller-supplied inputs.
func (h *PricingHandler) SuggestPrice(c echo.Context) error {
	var request SuggestPriceInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed suggest price validation", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	price := pricing.SuggestPrice(
		request.OccupancyForecast,
		request.CompP50,
		request.CompP75,
		domain.PricingMode(request.Mode),
	)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(SuggestPriceOutput{SuggestedPrice: price}))
}

func (h *PricingHandler) horizonDays(c echo.Context) (int, error) {
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

func (h *PricingHandler) pricingMode(c echo.Context) (domain.PricingMode, error) {
	raw := c.QueryParam("mode")
	if raw == "" {
		return domain.ModeNeutral, nil
	}
	mode := domain.PricingMode(raw)
	if !mode.Valid() {
		return "", fmt.Errorf("mode must be one of conservative, neutral, aggressive")
	}
	return mode, nil
}
