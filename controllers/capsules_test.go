package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stylemateapi/models"
	"stylemateapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeCapsule(t *testing.T, rec *httptest.ResponseRecorder) models.CapsuleResult {
	t.Helper()
	var capsule models.CapsuleResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &capsule))
	return capsule
}

func TestCapsuleThemes(t *testing.T) {
	e := setupTestServer(nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/capsule-generator/themes", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var themes []models.CapsuleTheme
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &themes))
	require.NotEmpty(t, themes)
	assert.Equal(t, "professional", themes[0].ID)
	for _, theme := range themes {
		assert.NotEmpty(t, theme.Name)
		assert.NotEmpty(t, theme.Description)
	}
}

func TestGenerateCapsuleProfessional(t *testing.T) {
	e := setupTestServer(nil)

	req := test.NewRawJSONRequest(http.MethodPost, "/api/v1/capsule-generator/generate", `{"theme":"professional"}`)
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	capsule := decodeCapsule(t, rec)
	assert.Equal(t, "Professional", capsule.Theme)
	assert.False(t, capsule.AIGenerated)
	require.NotEmpty(t, capsule.WardrobeItems)
	require.NotEmpty(t, capsule.Outfits)

	known := capsule.ItemIDs()
	for _, outfit := range capsule.Outfits {
		for _, id := range outfit.Items {
			assert.True(t, known[id], "outfit %q references unknown item %d", outfit.Name, id)
		}
	}
}

func TestGenerateCapsuleWithoutTheme(t *testing.T) {
	e := setupTestServer(nil)

	for _, body := range []string{`{}`, `{"theme":"   "}`} {
		req := test.NewRawJSONRequest(http.MethodPost, "/api/v1/capsule-generator/generate", body)
		rec := serve(e, req)

		require.Equal(t, http.StatusOK, rec.Code, body)
		capsule := decodeCapsule(t, rec)
		assert.Equal(t, "Professional", capsule.Theme, body)
		assert.NotEmpty(t, capsule.Outfits, body)
	}
}

func TestGenerateCapsuleInvalidPreferences(t *testing.T) {
	e := setupTestServer(nil)

	req := test.NewRawJSONRequest(http.MethodPost, "/api/v1/capsule-generator/generate", `{"theme":"casual","user_preferences":{"budget":"unlimited"}}`)
	rec := serve(e, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "budget is invalid", errorMessage(t, rec))
}

func TestGenerateCapsuleFromModel(t *testing.T) {
	completer := &test.CompleterMock{Response: test.CapsuleJSON}
	e := setupTestServer(completer)

	req := test.NewRawJSONRequest(http.MethodPost, "/api/v1/capsule-generator/generate", `{"theme":"minimalist","user_preferences":{"gender":"male","preferred_style":"classic"}}`)
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code)
	capsule := decodeCapsule(t, rec)
	assert.True(t, capsule.AIGenerated)
	assert.Len(t, capsule.WardrobeItems, 4)
	assert.Len(t, capsule.Outfits, 2)

	require.Equal(t, 1, completer.Calls())
	assert.Contains(t, completer.Prompts()[0], "prefers a classic style")
}

func TestGenerateCapsuleUnknownItemFallsBack(t *testing.T) {
	completer := &test.CompleterMock{Response: test.CapsuleJSONUnknownItem}
	e := setupTestServer(completer)

	req := test.NewRawJSONRequest(http.MethodPost, "/api/v1/capsule-generator/generate", `{"theme":"minimalist"}`)
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code)
	capsule := decodeCapsule(t, rec)
	assert.False(t, capsule.AIGenerated)
	assert.Equal(t, "Minimalist", capsule.Theme)
}

func TestAnalyzeWardrobe(t *testing.T) {
	e := setupTestServer(nil)

	req := test.NewRawJSONRequest(http.MethodPost, "/api/v1/capsule-generator/analyze", `{
		"current_items": [{"name": "Denim Jacket", "category": "jacket"}, {"name": "Black Jeans", "category": "bottom"}],
		"goals": ["more work outfits"]
	}`)
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var analysis models.WardrobeAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.NotEmpty(t, analysis.Gaps)
	assert.NotEmpty(t, analysis.Recommendations)
	assert.Len(t, analysis.VersatilityScore, 2)
	assert.Contains(t, analysis.VersatilityScore, "Denim Jacket")
}

func TestAnalyzeWardrobeAcceptsFreeFormCategories(t *testing.T) {
	e := setupTestServer(nil)

	req := test.NewRawJSONRequest(http.MethodPost, "/api/v1/capsule-generator/analyze", `{"current_items": [{"name": "Thing", "category": "spaceship"}, {"name": "Cape"}]}`)
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var analysis models.WardrobeAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, map[string]float64{"Thing": 7.5, "Cape": 7.5}, analysis.VersatilityScore)
}
