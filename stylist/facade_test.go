package stylist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"stylemateapi/catalog"
	"stylemateapi/models"
	"stylemateapi/services"
	"stylemateapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFacade(completer services.Completer) *Facade {
	return NewFacade(completer, NewAssembler(catalog.New()), time.Second, nil)
}

func TestGenerateOutfitsWithoutCompleterUsesCatalog(t *testing.T) {
	f := newTestFacade(nil)
	assert.False(t, f.Configured())

	prefs := models.PreferenceSet{Occasion: "work"}
	assert.Equal(t, f.Assembler().FallbackOutfits(prefs), f.GenerateOutfits(context.Background(), prefs))
}

func TestGenerateCapsuleWithoutCompleterEqualsFallback(t *testing.T) {
	f := newTestFacade(nil)
	themes := []string{"professional", "casual", "minimalist", "bohemian", "athleisure", "travel", "gothic", ""}
	for _, theme := range themes {
		got := f.GenerateCapsule(context.Background(), theme, nil)
		assert.Equal(t, f.Assembler().FallbackCapsule(theme), got, theme)
	}
}

func TestGenerateOutfitsFromModel(t *testing.T) {
	mock := &test.CompleterMock{Response: test.OutfitsJSON}
	f := newTestFacade(mock)

	outfits := f.GenerateOutfits(context.Background(), models.PreferenceSet{Occasion: "work", Budget: models.BudgetHigh})
	require.Len(t, outfits, 2)
	assert.Equal(t, 1, mock.Calls())

	first := outfits[0]
	assert.True(t, first.AIGenerated)
	assert.Equal(t, "Boardroom Ready", first.Name)
	assert.Equal(t, "Confident for presentations", first.OccasionFit)
	require.Len(t, first.Items, 3)
	assert.Equal(t, models.CategoryTop, first.Items[0].Category)
	assert.Equal(t, models.CategoryOuterwear, first.Items[1].Category)
	assert.Equal(t, models.CategoryShoes, first.Items[2].Category)
	assert.Nil(t, first.Items[2].Price)
	// The model's own total is ignored.
	require.NotNil(t, first.TotalPrice)
	assert.InDelta(t, 200.50, *first.TotalPrice, 0.001)
	assert.Len(t, first.Images, 3)

	second := outfits[1]
	assert.Equal(t, models.CategoryBottom, second.Items[1].Category)
	require.NotNil(t, second.TotalPrice)
	assert.InDelta(t, 105.25, *second.TotalPrice, 0.001)

	ids := map[int]bool{}
	for _, o := range outfits {
		for _, item := range o.Items {
			assert.False(t, ids[item.ID])
			ids[item.ID] = true
		}
	}
	assert.Len(t, ids, 5)
}

func TestGenerateOutfitsPromptCarriesPreferences(t *testing.T) {
	mock := &test.CompleterMock{Response: test.OutfitsJSON}
	f := newTestFacade(mock)

	f.GenerateOutfits(context.Background(), models.PreferenceSet{Occasion: "wedding", Budget: models.BudgetHigh, Age: 31, HairColor: "auburn"})
	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Occasion: wedding")
	assert.Contains(t, prompts[0], "Budget: high ($300+)")
	assert.Contains(t, prompts[0], "Season: spring")
	assert.Contains(t, prompts[0], "for a female")
	assert.Contains(t, prompts[0], "Age: 31")
	assert.Contains(t, prompts[0], "Hair color: auburn")
	assert.NotContains(t, prompts[0], "Eye color")
}

func TestGenerateOutfitsFallsBack(t *testing.T) {
	prefs := models.PreferenceSet{Occasion: "casual"}
	cases := map[string]*test.CompleterMock{
		"transport error":  {Err: errors.New("rpc error: code = ResourceExhausted")},
		"prose only":       {Response: "I would suggest a nice pair of jeans and a tee."},
		"malformed json":   {Response: `{"outfits": [ {"name": "x", }`},
		"no outfits":       {Response: `{"outfits": []}`},
		"unnamed items":    {Response: `{"outfits": [{"name": "Odd", "items": [{"category": "top"}]}]}`},
		"wrong field type": {Response: `{"outfits": {"name": "Odd"}}`},
	}
	for name, mock := range cases {
		f := newTestFacade(mock)
		got := f.GenerateOutfits(context.Background(), prefs)
		assert.Equal(t, f.Assembler().FallbackOutfits(prefs), got, name)
		assert.Equal(t, 1, mock.Calls(), name)
	}
}

func TestGenerateOutfitsTimesOut(t *testing.T) {
	f := NewFacade(test.BlockingCompleter{}, NewAssembler(catalog.New()), 20*time.Millisecond, nil)

	start := time.Now()
	got := f.GenerateOutfits(context.Background(), models.PreferenceSet{})
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, f.Assembler().FallbackOutfits(models.PreferenceSet{}), got)
}

func TestGenerateOutfitsRespectsCancelledRequest(t *testing.T) {
	f := newTestFacade(test.BlockingCompleter{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := f.GenerateOutfits(ctx, models.PreferenceSet{Occasion: "work"})
	require.NotEmpty(t, got)
	assert.False(t, got[0].AIGenerated)
}

func TestGenerateOutfitsCachesOnlyNormalizedResults(t *testing.T) {
	results, err := services.NewResultCache(time.Minute)
	require.NoError(t, err)
	mock := &test.CompleterMock{Responses: []string{"Try a navy blazer with chinos.", test.OutfitsJSON}}
	f := NewFacade(mock, NewAssembler(catalog.New()), time.Second, results)
	ctx := context.Background()
	prefs := models.PreferenceSet{Occasion: "work"}

	first := f.GenerateOutfits(ctx, prefs)
	require.NotEmpty(t, first)
	assert.False(t, first[0].AIGenerated)

	second := f.GenerateOutfits(ctx, prefs)
	require.Len(t, second, 2)
	assert.True(t, second[0].AIGenerated)
	assert.Equal(t, 2, mock.Calls())

	prompt, err := buildOutfitsPrompt(prefs.WithDefaults())
	require.NoError(t, err)
	key := resultKey(kindOutfits, prompt)
	require.Eventually(t, func() bool {
		_, ok := results.Get(ctx, key)
		return ok
	}, time.Second, 10*time.Millisecond)

	third := f.GenerateOutfits(ctx, prefs)
	assert.Equal(t, second, third)
	assert.Equal(t, 2, mock.Calls())
}

func TestGenerateOutfitsCancellationStaysWithItsRequest(t *testing.T) {
	results, err := services.NewResultCache(time.Minute)
	require.NoError(t, err)
	mock := &test.CompleterMock{Response: test.OutfitsJSON, Delay: 150 * time.Millisecond}
	f := NewFacade(mock, NewAssembler(catalog.New()), time.Second, results)
	prefs := models.PreferenceSet{Occasion: "work"}

	ctxA, cancelA := context.WithCancel(context.Background())
	defer cancelA()

	var gotA, gotB []models.OutfitSuggestion
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		gotA = f.GenerateOutfits(ctxA, prefs)
	}()
	go func() {
		defer wg.Done()
		gotB = f.GenerateOutfits(context.Background(), prefs)
	}()
	time.Sleep(30 * time.Millisecond)
	cancelA()
	wg.Wait()

	require.NotEmpty(t, gotA)
	require.NotEmpty(t, gotB)
	assert.False(t, gotA[0].AIGenerated)
	assert.True(t, gotB[0].AIGenerated)
	assert.Equal(t, 2, mock.Calls())
}

func TestGenerateOutfitsIgnoresCacheWithoutModel(t *testing.T) {
	results, err := services.NewResultCache(time.Minute)
	require.NoError(t, err)
	ctx := context.Background()
	prefs := models.PreferenceSet{Occasion: "party"}

	prompt, err := buildOutfitsPrompt(prefs.WithDefaults())
	require.NoError(t, err)
	key := resultKey(kindOutfits, prompt)
	results.Set(ctx, key, []byte(`[{"id": 1, "name": "Stale", "items": [], "ai_generated": true}]`))
	require.Eventually(t, func() bool {
		_, ok := results.Get(ctx, key)
		return ok
	}, time.Second, 10*time.Millisecond)

	f := NewFacade(nil, NewAssembler(catalog.New()), time.Second, results)
	assert.Equal(t, f.Assembler().FallbackOutfits(prefs), f.GenerateOutfits(ctx, prefs))
}

func TestGenerateOutfitsWorkAnswerWithoutTopFallsBack(t *testing.T) {
	mock := &test.CompleterMock{Response: `{"outfits": [{"name": "Evening", "items": [
		{"name": "Slip Dress", "category": "dress"},
		{"name": "Strappy Heels", "category": "heels"}
	]}]}`}
	f := newTestFacade(mock)
	prefs := models.PreferenceSet{Occasion: "work"}

	got := f.GenerateOutfits(context.Background(), prefs)
	assert.Equal(t, f.Assembler().FallbackOutfits(prefs), got)
	assert.Equal(t, 1, mock.Calls())
}

func TestGenerateCapsuleFromModel(t *testing.T) {
	mock := &test.CompleterMock{Response: test.CapsuleJSON}
	f := newTestFacade(mock)

	capsule := f.GenerateCapsule(context.Background(), "minimalist", &models.PreferenceSet{PreferredStyle: "clean"})
	assert.True(t, capsule.AIGenerated)
	assert.Equal(t, "Minimalist", capsule.Theme)
	require.Len(t, capsule.WardrobeItems, 4)
	assert.Equal(t, models.CategoryTop, capsule.WardrobeItems[0].Category)
	assert.Equal(t, models.CategoryBottom, capsule.WardrobeItems[1].Category)
	assert.Equal(t, models.CategoryOuterwear, capsule.WardrobeItems[2].Category)
	assert.Equal(t, models.CategoryShoes, capsule.WardrobeItems[3].Category)
	require.NotNil(t, capsule.WardrobeItems[0].VersatilityScore)
	assert.Equal(t, 10, *capsule.WardrobeItems[0].VersatilityScore)

	require.Len(t, capsule.Outfits, 2)
	require.NotNil(t, capsule.Outfits[0].TotalPrice)
	assert.InDelta(t, 225.0, *capsule.Outfits[0].TotalPrice, 0.001)
	require.NotNil(t, capsule.Outfits[1].TotalPrice)
	assert.InDelta(t, 465.5, *capsule.Outfits[1].TotalPrice, 0.001)
	assert.Equal(t, []string{"museum", "lunch"}, capsule.Outfits[0].Occasions)
	assert.Equal(t, []string{"Keep the palette tight", "Tailoring matters"}, capsule.StylingTips)
	assert.Equal(t, 2, capsule.CostAnalysis.OutfitVariety)
	assert.InDelta(t, 465.5, capsule.CostAnalysis.TotalInvestment, 0.001)

	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "minimalist capsule wardrobe")
	assert.Contains(t, prompts[0], "prefers a clean style")
}

func TestGenerateCapsulePromptWithoutPreferences(t *testing.T) {
	mock := &test.CompleterMock{Response: test.CapsuleJSON}
	f := newTestFacade(mock)

	f.GenerateCapsule(context.Background(), "travel", nil)
	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	assert.False(t, strings.Contains(prompts[0], "Tailor it to"))
}

func TestGenerateCapsuleFallsBack(t *testing.T) {
	cases := map[string]*test.CompleterMock{
		"transport error": {Err: errors.New("deadline exceeded")},
		"prose only":      {Response: "A capsule should have about a dozen pieces."},
		"unknown item":    {Response: test.CapsuleJSONUnknownItem},
		"empty capsule":   {Response: `{"theme": "x", "wardrobe_items": [], "outfits": []}`},
	}
	for name, mock := range cases {
		f := newTestFacade(mock)
		got := f.GenerateCapsule(context.Background(), "professional", nil)
		assert.Equal(t, f.Assembler().FallbackCapsule("professional"), got, name)
	}
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, OutcomeUnavailable, failed[int](ErrConfigurationAbsent).Outcome)
	assert.Equal(t, OutcomeExternalError, failed[int](errors.Join(ErrExternalTransport, errors.New("x"))).Outcome)
	assert.Equal(t, OutcomeExtractionFailed, failed[int](ErrExtractionFailure).Outcome)
	assert.Equal(t, OutcomeValidationFailed, failed[int](ErrValidationFailure).Outcome)
	assert.Equal(t, OutcomePromptFailed, failed[int](fmt.Errorf("%w: outfits: %w", ErrPromptRender, errors.New("x"))).Outcome)
	assert.True(t, normalized(1).Ok())
}
