package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func errorJSON(c echo.Context, code int, message string) error {
	return c.JSON(code, map[string]string{"error": message})
}

// bindAndValidate decodes the body into req and runs validation. It writes the
// 400 response itself and reports whether the handler should continue.
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, errorJSON(c, http.StatusBadRequest, err.Error())
	}
	return true, nil
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
