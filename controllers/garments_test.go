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

func TestGarmentStyles(t *testing.T) {
	e := setupTestServer(nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/garment-generator/styles", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var styles []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &styles))
	assert.Contains(t, styles, "realistic")
}

func TestGenerateGarments(t *testing.T) {
	e := setupTestServer(nil)

	req := test.NewJSONRequest(http.MethodPost, "/api/v1/garment-generator/generate", models.GarmentGenerateIn{
		Prompt:   "linen summer dress",
		Style:    "minimalist",
		Render3D: true,
	})
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var designs []models.GarmentDesign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &designs))
	require.Len(t, designs, 4)
	for _, design := range designs {
		assert.Equal(t, "linen summer dress", design.Prompt)
		assert.Equal(t, "minimalist", design.Style)
		assert.True(t, design.AIGenerated)
		require.NotNil(t, design.Model3D)
	}
}

func TestGenerateGarmentsDefaultStyleWithout3D(t *testing.T) {
	e := setupTestServer(nil)

	req := test.NewRawJSONRequest(http.MethodPost, "/api/v1/garment-generator/generate", `{"prompt":"wool coat"}`)
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var designs []models.GarmentDesign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &designs))
	require.NotEmpty(t, designs)
	assert.Equal(t, "realistic", designs[0].Style)
	assert.Nil(t, designs[0].Model3D)
	assert.NotContains(t, rec.Body.String(), "3d_model")
}

func TestGenerateGarmentsMissingPrompt(t *testing.T) {
	e := setupTestServer(nil)

	req := test.NewRawJSONRequest(http.MethodPost, "/api/v1/garment-generator/generate", `{"style":"sketch"}`)
	rec := serve(e, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "prompt is required", errorMessage(t, rec))
}

func TestGarment3DPreview(t *testing.T) {
	e := setupTestServer(nil)

	req := test.NewJSONRequest(http.MethodPost, "/api/v1/garment-generator/3d-preview", models.Garment3DPreviewIn{
		GarmentType:  "skirt",
		Fabric:       "Silk",
		Measurements: map[string]float64{"waist": 70},
	})
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var preview models.Preview3D
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))
	assert.Equal(t, "skirt", preview.Geometry.Type)
	assert.Equal(t, "silk", preview.Material.Type)
	assert.Equal(t, "/textures/silk.jpg", preview.Material.Texture)
	assert.Equal(t, 70.0, preview.Metadata.Measurements["waist"])
	assert.Len(t, preview.Animations, 3)
}

func TestGarment3DPreviewDefaults(t *testing.T) {
	e := setupTestServer(nil)

	req := test.NewRawJSONRequest(http.MethodPost, "/api/v1/garment-generator/3d-preview", `{"fabric":"kevlar"}`)
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var preview models.Preview3D
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))
	assert.Equal(t, "dress", preview.Geometry.Type)
	assert.Equal(t, "kevlar", preview.Material.Type)
	assert.Equal(t, 0.3, preview.Material.Properties.Stiffness)
}
