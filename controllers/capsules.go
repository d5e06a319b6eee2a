package controllers

import (
	"net/http"

	"stylemateapi/catalog"
	"stylemateapi/models"
	"stylemateapi/stylist"

	"github.com/labstack/echo/v4"
)

type CapsuleController struct {
	Facade   *stylist.Facade
	Designer *stylist.Designer
	Catalog  *catalog.StaticCatalog
}

func (controller *CapsuleController) CapsuleRoutes(g *echo.Group) {
	g.GET("/themes", controller.Themes)
	g.POST("/generate", controller.Generate)
	g.POST("/analyze", controller.Analyze)
}

func (controller *CapsuleController) Themes(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.Catalog.CapsuleThemes())
}

func (controller *CapsuleController) Generate(c echo.Context) error {
	var req models.CapsuleGenerateIn
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	// Without preferences the prompt asks for a generic capsule.
	var prefs *models.PreferenceSet
	if req.UserPreferences != nil || req.Preferences != nil {
		set := req.PreferenceSet()
		prefs = &set
	}

	theme := orDefault(req.Theme, catalog.DefaultCapsuleTheme)
	capsule := controller.Facade.GenerateCapsule(c.Request().Context(), theme, prefs)
	return c.JSON(http.StatusOK, capsule)
}

func (controller *CapsuleController) Analyze(c echo.Context) error {
	var req models.CapsuleAnalyzeIn
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	analysis := controller.Designer.AnalyzeWardrobe(req.CurrentItems, req.Goals)
	return c.JSON(http.StatusOK, analysis)
}
