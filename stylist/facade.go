package stylist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stylemateapi/metrics"
	"stylemateapi/models"
	"stylemateapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const DefaultGenerationTimeout = 10 * time.Second

const (
	kindOutfits = "outfits"
	kindCapsule = "capsule"
)

// Facade tries the text model once per request and falls back to the catalog
// whenever the model is missing, failing or talking nonsense. Callers always
// get a usable result.
type Facade struct {
	completer services.Completer
	assembler *Assembler
	timeout   time.Duration
	results   *services.ResultCache
}

// NewFacade builds a facade. A nil completer runs everything from the
// catalog. results may be nil; when set, normalized model results are reused
// for identical prompts.
func NewFacade(completer services.Completer, assembler *Assembler, timeout time.Duration, results *services.ResultCache) *Facade {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	return &Facade{completer: completer, assembler: assembler, timeout: timeout, results: results}
}

func (f *Facade) Configured() bool {
	return f.completer != nil
}

func (f *Facade) Assembler() *Assembler {
	return f.assembler
}

func (f *Facade) GenerateOutfits(ctx context.Context, prefs models.PreferenceSet) []models.OutfitSuggestion {
	prefs = prefs.WithDefaults()
	return resolve(ctx, kindOutfits, f.tryOutfits(ctx, prefs), func() []models.OutfitSuggestion {
		return f.assembler.FallbackOutfits(prefs)
	})
}

// GenerateCapsule builds a capsule for theme. prefs may be nil when the client
// sent none; the catalog path ignores them either way.
func (f *Facade) GenerateCapsule(ctx context.Context, theme string, prefs *models.PreferenceSet) models.CapsuleResult {
	return resolve(ctx, kindCapsule, f.tryCapsule(ctx, theme, prefs), func() models.CapsuleResult {
		return f.assembler.FallbackCapsule(theme)
	})
}

func (f *Facade) tryOutfits(ctx context.Context, prefs models.PreferenceSet) Attempt[[]models.OutfitSuggestion] {
	prompt, err := buildOutfitsPrompt(prefs)
	if err != nil {
		return failed[[]models.OutfitSuggestion](err)
	}
	key := resultKey(kindOutfits, prompt)
	if outfits, ok := lookupResult[[]models.OutfitSuggestion](ctx, f, key); ok {
		return normalized(outfits)
	}
	obj, err := f.complete(ctx, prompt)
	if err != nil {
		return failed[[]models.OutfitSuggestion](err)
	}
	outfits, err := f.assembler.NormalizeOutfits(prefs, obj)
	if err != nil {
		return failed[[]models.OutfitSuggestion](err)
	}
	f.storeResult(ctx, key, outfits)
	return normalized(outfits)
}

func (f *Facade) tryCapsule(ctx context.Context, theme string, prefs *models.PreferenceSet) Attempt[models.CapsuleResult] {
	if prefs != nil {
		withDefaults := prefs.WithDefaults()
		prefs = &withDefaults
	}
	prompt, err := buildCapsulePrompt(theme, prefs)
	if err != nil {
		return failed[models.CapsuleResult](err)
	}
	key := resultKey(kindCapsule, prompt)
	if capsule, ok := lookupResult[models.CapsuleResult](ctx, f, key); ok {
		return normalized(capsule)
	}
	obj, err := f.complete(ctx, prompt)
	if err != nil {
		return failed[models.CapsuleResult](err)
	}
	capsule, err := f.assembler.NormalizeCapsule(theme, obj)
	if err != nil {
		return failed[models.CapsuleResult](err)
	}
	f.storeResult(ctx, key, capsule)
	return normalized(capsule)
}

func resultKey(kind, prompt string) string {
	return kind + "\x00" + prompt
}

// lookupResult reports a cached result for key. Without a model there is
// nothing to look up: catalog mode never serves cached model output.
func lookupResult[T any](ctx context.Context, f *Facade, key string) (T, bool) {
	var v T
	if f.results == nil || f.completer == nil {
		return v, false
	}
	raw, ok := f.results.Get(ctx, key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("ignoring unreadable cached result")
		return v, false
	}
	zerolog.Ctx(ctx).Debug().Msg("serving cached model result")
	return v, true
}

// storeResult must only see normalized results.
func (f *Facade) storeResult(ctx context.Context, key string, v any) {
	if f.results == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to encode result for cache")
		return
	}
	f.results.Set(ctx, key, raw)
}

// complete makes the single model call for a request, bounded by the
// generation timeout.
func (f *Facade) complete(ctx context.Context, prompt string) (services.Object, error) {
	if f.completer == nil {
		return nil, ErrConfigurationAbsent
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	text, err := f.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExternalTransport, err)
	}
	obj, err := services.ExtractJSONObject(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailure, err)
	}
	return obj, nil
}

// resolve is the one place an attempt turns into a response.
func resolve[T any](ctx context.Context, kind string, attempt Attempt[T], fallback func() T) T {
	metrics.RecordGeneration(kind, string(attempt.Outcome))
	if attempt.Ok() {
		return attempt.Value
	}

	logger := zerolog.Ctx(ctx)
	switch attempt.Outcome {
	case OutcomeUnavailable:
		logger.Debug().Str("kind", kind).Msg("no text model configured, using catalog")
	case OutcomeExternalError:
		logger.Error().Err(attempt.Reason).Str("kind", kind).Msg("text model call failed, using catalog")
		reportError(ctx, attempt.Reason)
	case OutcomePromptFailed:
		logger.Error().Err(attempt.Reason).Str("kind", kind).Msg("prompt template failed, using catalog")
		reportError(ctx, attempt.Reason)
	default:
		logger.Warn().Err(attempt.Reason).Str("kind", kind).Str("outcome", string(attempt.Outcome)).Msg("unusable model output, using catalog")
	}
	return fallback()
}

func reportError(ctx context.Context, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}
