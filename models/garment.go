package models

import "time"

type StyleAnalysis struct {
	ColorPalette   []string `json:"color_palette"`
	DesignElements []string `json:"design_elements"`
	TargetAudience string   `json:"target_audience"`
}

type GarmentModel3D struct {
	ModelURL     string `json:"model_url"`
	TextureURL   string `json:"texture_url"`
	AnimationURL string `json:"animation_url"`
}

type GarmentDesign struct {
	ID              int             `json:"id"`
	Prompt          string          `json:"prompt"`
	Style           string          `json:"style"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	URL             string          `json:"url"`
	AIGenerated     bool            `json:"ai_generated"`
	ConfidenceScore float64         `json:"confidence_score"`
	StyleAnalysis   StyleAnalysis   `json:"style_analysis"`
	Model3D         *GarmentModel3D `json:"3d_model,omitempty"`
}

type FabricProperties struct {
	Stiffness float64 `json:"stiffness"`
	Density   float64 `json:"density"`
	Friction  float64 `json:"friction"`
}

type MeshVertices struct {
	Positions []float64 `json:"positions"`
	Normals   []float64 `json:"normals"`
	Count     int       `json:"count"`
}

type MeshFaces struct {
	Indices []int `json:"indices"`
	Count   int   `json:"count"`
}

type UVMapping struct {
	Coordinates []float64 `json:"coordinates"`
	Count       int       `json:"count"`
}

type Geometry struct {
	Type      string       `json:"type"`
	Vertices  MeshVertices `json:"vertices"`
	Faces     MeshFaces    `json:"faces"`
	UVMapping UVMapping    `json:"uvMapping"`
}

type Material struct {
	Type       string           `json:"type"`
	Texture    string           `json:"texture"`
	Properties FabricProperties `json:"properties"`
}

type Animation struct {
	Duration  float64 `json:"duration"`
	Keyframes int     `json:"keyframes"`
}

type PreviewMetadata struct {
	CreatedAt    time.Time          `json:"created_at"`
	GarmentType  string             `json:"garment_type"`
	Measurements map[string]float64 `json:"measurements"`
}

// Preview3D is the payload a three.js viewer needs to render a garment.
type Preview3D struct {
	Geometry   Geometry             `json:"geometry"`
	Material   Material             `json:"material"`
	Animations map[string]Animation `json:"animations"`
	Metadata   PreviewMetadata      `json:"metadata"`
}
