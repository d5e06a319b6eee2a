package controllers

import (
	"net/http"
	"time"

	"stylemateapi/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RequestLogger attaches a request-scoped zerolog logger to the request
// context and logs every request once it has been served.
func RequestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()
		rid := req.Header.Get(echo.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, rid)

		logger := log.With().
			Str("request_id", rid).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("remote_ip", c.RealIP()).
			Logger()
		c.SetRequest(req.WithContext(logger.WithContext(req.Context())))

		// Render errors here so the status below is the one the client sees.
		if err := next(c); err != nil {
			c.Error(err)
		}

		status := c.Response().Status
		duration := time.Since(start)
		endpoint := c.Path()
		if endpoint == "" || status == http.StatusNotFound {
			endpoint = "unmatched"
		}
		metrics.RecordAPIRequest(req.Method, endpoint, status, duration)

		if status >= 500 {
			logger.Error().Int("status", status).Dur("duration", duration).Msg("http request failed")
		} else {
			logger.Info().Int("status", status).Dur("duration", duration).Msg("http request served")
		}
		return nil
	}
}
