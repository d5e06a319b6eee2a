package models

type CapsuleTheme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CapsuleOutfit references wardrobe items by id rather than embedding them.
type CapsuleOutfit struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Items       []int    `json:"items"`
	Description string   `json:"description"`
	Occasions   []string `json:"occasions"`
	TotalPrice  *float64 `json:"total_price,omitempty"`
}

type AIInsights struct {
	ColorHarmony         string `json:"color_harmony"`
	VersatilityTips      string `json:"versatility_tips"`
	SeasonalAdaptability string `json:"seasonal_adaptability"`
	BodyTypeGuidance     string `json:"body_type_guidance"`
}

type SustainabilityScore struct {
	Score        float64            `json:"score"`
	Factors      map[string]float64 `json:"factors"`
	Improvements []string           `json:"improvements"`
}

type CostAnalysis struct {
	CostPerWear     float64            `json:"cost_per_wear"`
	TotalInvestment float64            `json:"total_investment"`
	OutfitVariety   int                `json:"outfit_variety"`
	CostEfficiency  string             `json:"cost_efficiency"`
	BudgetBreakdown map[string]float64 `json:"budget_breakdown"`
}

type CapsuleResult struct {
	Theme               string              `json:"theme"`
	WardrobeItems       []WardrobeItem      `json:"wardrobe_items"`
	Outfits             []CapsuleOutfit     `json:"outfits"`
	StylingTips         []string            `json:"styling_tips"`
	AIInsights          AIInsights          `json:"ai_insights"`
	SustainabilityScore SustainabilityScore `json:"sustainability_score"`
	CostAnalysis        CostAnalysis        `json:"cost_analysis"`
	AIGenerated         bool                `json:"ai_generated"`
}

// ItemIDs returns the set of wardrobe item ids in the capsule.
func (r CapsuleResult) ItemIDs() map[int]bool {
	ids := make(map[int]bool, len(r.WardrobeItems))
	for _, item := range r.WardrobeItems {
		ids[item.ID] = true
	}
	return ids
}

type CostOptimization struct {
	HighImpactAdditions  []string `json:"high_impact_additions"`
	ItemsToReplace       []string `json:"items_to_replace"`
	InvestmentPriorities []string `json:"investment_priorities"`
}

type WardrobeAnalysis struct {
	Gaps             []string           `json:"gaps"`
	VersatilityScore map[string]float64 `json:"versatility_scores"`
	Recommendations  []string           `json:"recommendations"`
	CostOptimization CostOptimization   `json:"cost_optimization"`
}
