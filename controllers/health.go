package controllers

import (
	"net/http"

	"stylemateapi/models"
	"stylemateapi/stylist"

	"github.com/labstack/echo/v4"
)

const apiVersion = "2.0.0"

type HealthController struct {
	Facade *stylist.Facade
}

func (controller *HealthController) HealthRoutes(g *echo.Group) {
	g.GET("/", controller.Root)
	g.GET("/health", controller.Health)
}

func (controller *HealthController) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, models.RootOut{
		Message: "Welcome to StyleMate Pro AI-Enhanced API",
		Version: apiVersion,
		Features: []string{
			"AI-Powered Outfit Suggestions",
			"3D Garment Generation",
			"Smart Capsule Wardrobes",
		},
		Health: "/health",
	})
}

func (controller *HealthController) Health(c echo.Context) error {
	configured := controller.Facade.Configured()
	aiStatus := "disabled (using mock data)"
	if configured {
		aiStatus = "enabled"
	}
	return c.JSON(http.StatusOK, models.HealthOut{
		Status:           "healthy",
		Message:          "StyleMate Pro AI API is running",
		AIStatus:         aiStatus,
		GeminiConfigured: configured,
	})
}
