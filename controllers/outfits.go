package controllers

import (
	"net/http"

	"stylemateapi/catalog"
	"stylemateapi/models"
	"stylemateapi/stylist"

	"github.com/labstack/echo/v4"
)

type OutfitController struct {
	Facade  *stylist.Facade
	Catalog *catalog.StaticCatalog
}

func (controller *OutfitController) OutfitRoutes(g *echo.Group) {
	g.GET("/themes", controller.Themes)
	g.POST("/suggest", controller.Suggest)
	g.POST("/generate-images", controller.GenerateImages)
}

func (controller *OutfitController) Themes(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.Catalog.OutfitThemes())
}

func (controller *OutfitController) Suggest(c echo.Context) error {
	var req models.OutfitSuggestIn
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	outfits := controller.Facade.GenerateOutfits(c.Request().Context(), req.Preferences)
	return c.JSON(http.StatusOK, outfits)
}

func (controller *OutfitController) GenerateImages(c echo.Context) error {
	var req models.OutfitImagesIn
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	images := stylist.OutfitImages(req.Description)
	return c.JSON(http.StatusOK, models.OutfitImagesOut{
		Description: req.Description,
		Images:      images,
		Count:       len(images),
	})
}
