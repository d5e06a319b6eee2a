package stylist

import (
	"fmt"
	"math"
	"strings"

	"stylemateapi/catalog"
	"stylemateapi/languageutil"
	"stylemateapi/models"
	"stylemateapi/services"
)

const (
	outfitImageCount = 3
	// wearsPerOutfit is how often a capsule outfit is assumed to be worn in
	// one season when estimating cost per wear.
	wearsPerOutfit = 12
)

// Assembler shapes catalog data and model output into the response
// contract. Both paths go through the same assembly so they cannot drift
// apart.
type Assembler struct {
	catalog *catalog.StaticCatalog
}

func NewAssembler(c *catalog.StaticCatalog) *Assembler {
	return &Assembler{catalog: c}
}

// FallbackOutfits picks the outfit bucket for the occasion in prefs. It
// always returns at least one outfit.
func (a *Assembler) FallbackOutfits(prefs models.PreferenceSet) []models.OutfitSuggestion {
	prefs = prefs.WithDefaults()
	return assembleOutfits(a.catalog.OutfitBucket(prefs.Occasion), false)
}

// FallbackCapsule builds the catalog capsule for theme. Unknown themes get
// the default bucket.
func (a *Assembler) FallbackCapsule(theme string) models.CapsuleResult {
	bucket := a.catalog.CapsuleBucket(theme)
	return a.assembleCapsule(theme, a.catalog.WardrobeItems(), bucket.Outfits, bucket.StylingTips, false)
}

// NormalizeOutfits validates model output against the outfit contract. Every
// outfit needs at least one named item, and outfits for work occasions need a
// top or outerwear, same as the catalog's work bucket.
func (a *Assembler) NormalizeOutfits(prefs models.PreferenceSet, obj services.Object) ([]models.OutfitSuggestion, error) {
	workwear := a.catalog.OutfitBucketKey(prefs.WithDefaults().Occasion) == catalog.OutfitBucketWork

	var payload aiOutfitPayload
	if err := obj.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailure, err)
	}
	if len(payload.Outfits) == 0 {
		return nil, fmt.Errorf("%w: no outfits", ErrValidationFailure)
	}

	templates := make([]catalog.OutfitTemplate, 0, len(payload.Outfits))
	for i, outfit := range payload.Outfits {
		var items []models.WardrobeItem
		for _, item := range outfit.Items {
			name := strings.TrimSpace(item.Name)
			if name == "" {
				continue
			}
			items = append(items, models.WardrobeItem{
				Name:     name,
				Category: models.NormalizeCategory(item.Category),
				Color:    strings.TrimSpace(item.Color),
				Price:    roundedPrice(item.Price),
			})
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("%w: outfit %d has no named items", ErrValidationFailure, i+1)
		}
		if workwear && !hasTopLayer(items) {
			return nil, fmt.Errorf("%w: work outfit %d has no top or outerwear", ErrValidationFailure, i+1)
		}

		name := strings.TrimSpace(outfit.Name)
		if name == "" {
			name = fmt.Sprintf("Outfit %d", i+1)
		}
		templates = append(templates, catalog.OutfitTemplate{
			Name:        name,
			Items:       items,
			Description: strings.TrimSpace(outfit.Description),
			OccasionFit: strings.TrimSpace(outfit.OccasionFit),
		})
	}
	return assembleOutfits(templates, true), nil
}

// NormalizeCapsule validates model output against the capsule contract:
// items need a positive unique id and a name, and every outfit item must
// refer to one of them.
func (a *Assembler) NormalizeCapsule(theme string, obj services.Object) (models.CapsuleResult, error) {
	var payload aiCapsulePayload
	if err := obj.Decode(&payload); err != nil {
		return models.CapsuleResult{}, fmt.Errorf("%w: %v", ErrValidationFailure, err)
	}
	if len(payload.WardrobeItems) == 0 {
		return models.CapsuleResult{}, fmt.Errorf("%w: no wardrobe items", ErrValidationFailure)
	}
	if len(payload.Outfits) == 0 {
		return models.CapsuleResult{}, fmt.Errorf("%w: no outfits", ErrValidationFailure)
	}

	known := make(map[int]bool, len(payload.WardrobeItems))
	items := make([]models.WardrobeItem, 0, len(payload.WardrobeItems))
	for i, item := range payload.WardrobeItems {
		id := item.ID.get()
		name := strings.TrimSpace(item.Name)
		if id <= 0 || name == "" {
			return models.CapsuleResult{}, fmt.Errorf("%w: wardrobe item %d needs a positive id and a name", ErrValidationFailure, i+1)
		}
		if known[id] {
			return models.CapsuleResult{}, fmt.Errorf("%w: duplicate wardrobe item id %d", ErrValidationFailure, id)
		}
		known[id] = true

		items = append(items, models.WardrobeItem{
			ID:               id,
			Name:             name,
			Category:         models.NormalizeCategory(item.Category),
			Color:            strings.TrimSpace(item.Color),
			Price:            roundedPrice(item.Price),
			VersatilityScore: versatilityScore(item.VersatilityScore),
			EssentialReason:  strings.TrimSpace(item.EssentialReason),
		})
	}

	outfitIDs := make(map[int]bool, len(payload.Outfits))
	outfits := make([]models.CapsuleOutfit, 0, len(payload.Outfits))
	for i, outfit := range payload.Outfits {
		if len(outfit.Items) == 0 {
			return models.CapsuleResult{}, fmt.Errorf("%w: outfit %d has no items", ErrValidationFailure, i+1)
		}
		refs := make([]int, 0, len(outfit.Items))
		for _, ref := range outfit.Items {
			id := ref.get()
			if !known[id] {
				return models.CapsuleResult{}, fmt.Errorf("%w: outfit %d references unknown item %d", ErrValidationFailure, i+1, id)
			}
			refs = append(refs, id)
		}

		id := outfit.ID.get()
		if id <= 0 || outfitIDs[id] {
			id = i + 1
		}
		outfitIDs[id] = true

		name := strings.TrimSpace(outfit.Name)
		if name == "" {
			name = fmt.Sprintf("Outfit %d", i+1)
		}
		outfits = append(outfits, models.CapsuleOutfit{
			ID:          id,
			Name:        name,
			Items:       refs,
			Description: strings.TrimSpace(outfit.Description),
			Occasions:   nonEmpty(outfit.Occasions),
		})
	}

	tips := nonEmpty(payload.StylingTips)
	if len(tips) == 0 {
		tips = a.catalog.CapsuleBucket(theme).StylingTips
	}
	return a.assembleCapsule(theme, items, outfits, tips, true), nil
}

// OutfitImages returns placeholder images showing description.
func OutfitImages(description string) []string {
	images := make([]string, 0, outfitImageCount)
	for i := 1; i <= outfitImageCount; i++ {
		images = append(images, services.PlaceholderImageURL(services.OutfitImageBackground, fmt.Sprintf("%s Style %d", description, i)))
	}
	return images
}

// assembleOutfits numbers outfits and items across the whole batch, so no two
// items in one response share an id.
func assembleOutfits(templates []catalog.OutfitTemplate, aiGenerated bool) []models.OutfitSuggestion {
	suggestions := make([]models.OutfitSuggestion, 0, len(templates))
	nextItemID := 1
	for i, tpl := range templates {
		items := make([]models.WardrobeItem, len(tpl.Items))
		for j, item := range tpl.Items {
			item.ID = nextItemID
			nextItemID++
			items[j] = item
		}
		suggestions = append(suggestions, models.OutfitSuggestion{
			ID:          i + 1,
			Name:        tpl.Name,
			Items:       items,
			TotalPrice:  models.TotalPrice(items),
			Description: tpl.Description,
			OccasionFit: tpl.OccasionFit,
			Images:      OutfitImages(tpl.Name + " - " + tpl.Description),
			AIGenerated: aiGenerated,
		})
	}
	return suggestions
}

func (a *Assembler) assembleCapsule(theme string, items []models.WardrobeItem, outfits []models.CapsuleOutfit, tips []string, aiGenerated bool) models.CapsuleResult {
	prices := make(map[int]*float64, len(items))
	for _, item := range items {
		prices[item.ID] = item.Price
	}
	for i := range outfits {
		referenced := make([]models.WardrobeItem, 0, len(outfits[i].Items))
		for _, id := range outfits[i].Items {
			referenced = append(referenced, models.WardrobeItem{ID: id, Price: prices[id]})
		}
		outfits[i].TotalPrice = models.TotalPrice(referenced)
		if outfits[i].Occasions == nil {
			outfits[i].Occasions = []string{}
		}
	}

	return models.CapsuleResult{
		Theme:               a.capsuleThemeName(theme),
		WardrobeItems:       items,
		Outfits:             outfits,
		StylingTips:         tips,
		AIInsights:          stylingInsights(),
		SustainabilityScore: sustainabilityScore(),
		CostAnalysis:        costAnalysis(items, outfits),
		AIGenerated:         aiGenerated,
	}
}

func (a *Assembler) capsuleThemeName(theme string) string {
	if t, ok := a.catalog.CapsuleTheme(theme); ok {
		return t.Name
	}
	return languageutil.Title(theme)
}

func stylingInsights() models.AIInsights {
	return models.AIInsights{
		ColorHarmony:         "These pieces work together through a cohesive neutral palette with strategic color accents",
		VersatilityTips:      "Each item can be styled in at least 3 different ways for maximum outfit variety",
		SeasonalAdaptability: "Layer strategically to transition these pieces across seasons",
		BodyTypeGuidance:     "These cuts and silhouettes are universally flattering and can be adjusted with accessories",
	}
}

func sustainabilityScore() models.SustainabilityScore {
	return models.SustainabilityScore{
		Score: 8.5,
		Factors: map[string]float64{
			"versatility":      9.0,
			"quality":          8.5,
			"timelessness":     8.0,
			"ethical_sourcing": 8.5,
		},
		Improvements: []string{"Consider organic cotton options", "Look for certified sustainable brands"},
	}
}

func costAnalysis(items []models.WardrobeItem, outfits []models.CapsuleOutfit) models.CostAnalysis {
	var total float64
	if p := models.TotalPrice(items); p != nil {
		total = *p
	}
	var perWear float64
	if len(outfits) > 0 {
		perWear = models.RoundCents(total / float64(len(outfits)*wearsPerOutfit))
	}
	return models.CostAnalysis{
		CostPerWear:     perWear,
		TotalInvestment: total,
		OutfitVariety:   len(outfits),
		CostEfficiency:  "High - each piece works in multiple outfits",
		BudgetBreakdown: map[string]float64{
			"essentials":       60,
			"statement_pieces": 25,
			"accessories":      15,
		},
	}
}

func roundedPrice(f flexFloat) *float64 {
	if f.value == nil || *f.value < 0 {
		return nil
	}
	return services.Float64Pointer(models.RoundCents(*f.value))
}

// versatilityScore clamps model scores to the 1-10 scale.
func versatilityScore(f flexFloat) *int {
	if f.value == nil {
		return nil
	}
	v := int(math.Round(*f.value))
	v = max(1, min(10, v))
	return services.IntPointer(v)
}

func hasTopLayer(items []models.WardrobeItem) bool {
	for _, item := range items {
		if item.Category == models.CategoryTop || item.Category == models.CategoryOuterwear {
			return true
		}
	}
	return false
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
