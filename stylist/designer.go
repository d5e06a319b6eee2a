package stylist

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"stylemateapi/catalog"
	"stylemateapi/languageutil"
	"stylemateapi/models"
	"stylemateapi/services"
)

const (
	garmentDesignCount = 4
	defaultGarmentType = "dress"
)

// Designer produces garment concepts, 3D previews and wardrobe analyses.
// None of it calls the text model.
type Designer struct {
	catalog *catalog.StaticCatalog
	now     func() time.Time
}

func NewDesigner(c *catalog.StaticCatalog) *Designer {
	return &Designer{catalog: c, now: time.Now}
}

func (d *Designer) GenerateGarments(prompt, style string, render3D bool) []models.GarmentDesign {
	prompt = strings.TrimSpace(prompt)
	style = strings.TrimSpace(style)
	if style == "" {
		style = catalog.DefaultGarmentStyle
	}

	designs := make([]models.GarmentDesign, 0, garmentDesignCount)
	for i := 1; i <= garmentDesignCount; i++ {
		design := models.GarmentDesign{
			ID:              i,
			Prompt:          prompt,
			Style:           style,
			Name:            fmt.Sprintf("AI Design %d - %s", i, languageutil.Title(style)),
			Description:     fmt.Sprintf("AI-generated %s in %s style", prompt, style),
			URL:             services.PlaceholderImageURL(services.GarmentImageBackground, fmt.Sprintf("AI Design %d %s", i, style)),
			AIGenerated:     true,
			ConfidenceScore: models.RoundCents(0.85 + float64(i)*0.03),
			StyleAnalysis: models.StyleAnalysis{
				ColorPalette:   []string{"#2C3E50", "#E8E8E8", "#34495E"},
				DesignElements: []string{"modern", "minimalist", "versatile"},
				TargetAudience: "fashion-forward professionals",
			},
		}
		if render3D {
			design.Model3D = &models.GarmentModel3D{
				ModelURL:     fmt.Sprintf("/models/garment_%d.glb", i),
				TextureURL:   fmt.Sprintf("/textures/garment_%d.jpg", i),
				AnimationURL: fmt.Sprintf("/animations/garment_%d.json", i),
			}
		}
		designs = append(designs, design)
	}
	return designs
}

// Preview3D returns a unit quad mesh dressed in the requested fabric.
// Unknown fabrics keep their name and are simulated as cotton.
func (d *Designer) Preview3D(garmentType, fabric string, measurements map[string]float64) models.Preview3D {
	garmentType = strings.TrimSpace(garmentType)
	if garmentType == "" {
		garmentType = defaultGarmentType
	}
	if measurements == nil {
		measurements = map[string]float64{}
	}
	name, props := d.catalog.Fabric(fabric)

	return models.Preview3D{
		Geometry: models.Geometry{
			Type: garmentType,
			Vertices: models.MeshVertices{
				Positions: []float64{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0},
				Normals:   []float64{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1},
				Count:     4,
			},
			Faces: models.MeshFaces{
				Indices: []int{0, 1, 2, 0, 2, 3},
				Count:   2,
			},
			UVMapping: models.UVMapping{
				Coordinates: []float64{0, 0, 1, 0, 1, 1, 0, 1},
				Count:       4,
			},
		},
		Material: models.Material{
			Type:       name,
			Texture:    fmt.Sprintf("/textures/%s.jpg", url.PathEscape(name)),
			Properties: props,
		},
		Animations: map[string]models.Animation{
			"idle":    {Duration: 2.0, Keyframes: 24},
			"walking": {Duration: 1.0, Keyframes: 12},
			"wind":    {Duration: 3.0, Keyframes: 36},
		},
		Metadata: models.PreviewMetadata{
			CreatedAt:    d.now().UTC(),
			GarmentType:  garmentType,
			Measurements: measurements,
		},
	}
}

// AnalyzeWardrobe scores an existing wardrobe. Items are keyed by name in the
// versatility map; unnamed items count as "Unknown".
func (d *Designer) AnalyzeWardrobe(items []models.WardrobeItem, goals []string) models.WardrobeAnalysis {
	scores := make(map[string]float64, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = "Unknown"
		}
		scores[name] = 7.5
	}

	return models.WardrobeAnalysis{
		Gaps:             []string{"versatile blazer", "quality white shirt", "comfortable flats"},
		VersatilityScore: scores,
		Recommendations: []string{
			"Add a neutral blazer to instantly elevate casual outfits",
			"Invest in quality basics that can be styled multiple ways",
			"Consider adding one statement accessory to refresh existing looks",
		},
		CostOptimization: models.CostOptimization{
			HighImpactAdditions:  []string{"White button-down shirt", "Black blazer"},
			ItemsToReplace:       []string{"Worn-out basics", "Poor-fitting items"},
			InvestmentPriorities: []string{"Quality over quantity", "Timeless over trendy"},
		},
	}
}
