package controllers

import (
	"net/http"

	"stylemateapi/catalog"
	"stylemateapi/models"
	"stylemateapi/stylist"

	"github.com/labstack/echo/v4"
)

type GarmentController struct {
	Designer *stylist.Designer
	Catalog  *catalog.StaticCatalog
}

func (controller *GarmentController) GarmentRoutes(g *echo.Group) {
	g.GET("/styles", controller.Styles)
	g.POST("/generate", controller.Generate)
	g.POST("/3d-preview", controller.Preview3D)
}

func (controller *GarmentController) Styles(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.Catalog.GarmentStyles())
}

func (controller *GarmentController) Generate(c echo.Context) error {
	var req models.GarmentGenerateIn
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	designs := controller.Designer.GenerateGarments(req.Prompt, req.Style, req.Render3D)
	return c.JSON(http.StatusOK, designs)
}

func (controller *GarmentController) Preview3D(c echo.Context) error {
	var req models.Garment3DPreviewIn
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	preview := controller.Designer.Preview3D(req.GarmentType, req.Fabric, req.Measurements)
	return c.JSON(http.StatusOK, preview)
}
