package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"stylemateapi/catalog"
	"stylemateapi/models"
	"stylemateapi/stylist"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.New(validationMessage(err))
	}
	return nil
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("budget", models.ValidateBudget)
	return &CustomValidator{validator: v}
}

// validationMessage reports the first failing field by its json name.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// ErrorHandler renders every error as {"error": message}. Anything that is
// not an echo.HTTPError becomes a 500 without leaking its text.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}
	if code >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("unhandled error")
		if he == nil {
			message = http.StatusText(code)
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, map[string]string{"error": message})
	}
	if err != nil {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("failed to write error response")
	}
}

func SetupServer(
	facade *stylist.Facade,
	designer *stylist.Designer,
	styleCatalog *catalog.StaticCatalog,
	corsOrigins []string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler

	e.Use(RequestLogger)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	healthController := HealthController{Facade: facade}
	healthController.HealthRoutes(e.Group(""))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	outfitController := OutfitController{Facade: facade, Catalog: styleCatalog}
	outfitController.OutfitRoutes(api.Group("/outfit-suggestion"))

	garmentController := GarmentController{Designer: designer, Catalog: styleCatalog}
	garmentController.GarmentRoutes(api.Group("/garment-generator"))

	capsuleController := CapsuleController{Facade: facade, Designer: designer, Catalog: styleCatalog}
	capsuleController.CapsuleRoutes(api.Group("/capsule-generator"))

	return e
}
