package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stylemateapi/catalog"
	"stylemateapi/config"
	"stylemateapi/controllers"
	"stylemateapi/logging"
	"stylemateapi/services"
	"stylemateapi/stylist"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const release = "stylemate-api@2.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.Local())

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Env,
			Release:          release,
			TracesSampleRate: 1.0,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("sentry.Init")
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	completer, err := buildCompleter(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up text model")
	}

	results, err := buildResultCache(cfg, completer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up result cache")
	}

	styleCatalog := catalog.New()
	facade := stylist.NewFacade(completer, stylist.NewAssembler(styleCatalog), cfg.GenerationTimeout, results)
	designer := stylist.NewDesigner(styleCatalog)

	e := controllers.SetupServer(facade, designer, styleCatalog, cfg.CORSOrigins)
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	go func() {
		log.Info().
			Str("address", cfg.Address).
			Bool("ai_enabled", facade.Configured()).
			Msg("starting StyleMate API")
		if err := e.Start(cfg.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// buildCompleter returns a nil Completer when no API key is configured, which
// keeps every generation on the catalog.
func buildCompleter(ctx context.Context, cfg config.Config) (services.Completer, error) {
	if !cfg.GeminiConfigured() {
		log.Warn().Msg("GEMINI_API_KEY not set, serving catalog data only")
		return nil, nil
	}

	model, ok := services.ParseLLMModelName(cfg.GeminiModel)
	if !ok {
		log.Warn().Str("model", cfg.GeminiModel).Str("fallback", model.String()).Msg("unknown GEMINI_MODEL")
	}
	gemini, err := services.NewGeminiCompleter(ctx, cfg.GeminiAPIKey, model)
	if err != nil {
		return nil, err
	}

	return services.NewBreakerCompleter(gemini, services.DefaultBreakerSettings()), nil
}

// buildResultCache returns nil when the model is off or caching is disabled.
func buildResultCache(cfg config.Config, completer services.Completer) (*services.ResultCache, error) {
	if completer == nil || cfg.CompletionCacheTTL <= 0 {
		return nil, nil
	}
	return services.NewResultCache(cfg.CompletionCacheTTL)
}
