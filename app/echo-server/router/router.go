package router

import (
	"github.com/labstack/echo/v4"

	"hotelDeskAI/internal/rest"
)

func SetupForecastRoutes(api *echo.Group, handler *rest.ForecastHandler) {
	forecasts := api.Group("/forecasts")

	forecasts.GET("/sales", handler.GetSales)
	forecasts.GET("/sales/alt", handler.GetSalesAlt)
	forecasts.GET("/occupancy", handler.GetOccupancy)
}

func SetupPricingRoutes(api *echo.Group, handler *rest.PricingHandler) {
	pricing := api.Group("/pricing")

	pricing.GET("/competitor-bands", handler.GetCompetitorBands)
	pricing.GET("/suggestions", handler.GetSuggestions)
	pricing.GET("/suggestions/export", handler.ExportSuggestions)
	pricing.POST("/suggest", handler.SuggestPrice)
}
