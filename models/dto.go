package models

type OutfitSuggestIn struct {
	Preferences PreferenceSet `json:"preferences"`
}

type OutfitImagesIn struct {
	Description string `json:"description" validate:"required,max=500"`
}

type OutfitImagesOut struct {
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Count       int      `json:"count"`
}

type GarmentGenerateIn struct {
	Prompt   string `json:"prompt" validate:"required,max=1000"`
	Style    string `json:"style" validate:"omitempty,max=50"`
	Render3D bool   `json:"render_3d"`
}

type Garment3DPreviewIn struct {
	GarmentType  string             `json:"garment_type" validate:"omitempty,max=100"`
	Fabric       string             `json:"fabric" validate:"omitempty,max=50"`
	Measurements map[string]float64 `json:"measurements"`
}

type CapsuleGenerateIn struct {
	Theme           string         `json:"theme" validate:"omitempty,max=100"`
	UserPreferences *PreferenceSet `json:"user_preferences"`
	Preferences     *PreferenceSet `json:"preferences"`
}

// PreferenceSet returns whichever preference block the client sent.
func (in CapsuleGenerateIn) PreferenceSet() PreferenceSet {
	switch {
	case in.UserPreferences != nil:
		return *in.UserPreferences
	case in.Preferences != nil:
		return *in.Preferences
	}
	return PreferenceSet{}
}

type CapsuleAnalyzeIn struct {
	CurrentItems []WardrobeItem `json:"current_items"`
	Goals        []string       `json:"goals"`
}

type HealthOut struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	AIStatus         string `json:"ai_status"`
	GeminiConfigured bool   `json:"gemini_configured"`
}

type RootOut struct {
	Message  string   `json:"message"`
	Version  string   `json:"version"`
	Features []string `json:"features"`
	Health   string   `json:"health"`
}
