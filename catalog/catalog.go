package catalog

import (
	"strings"

	"stylemateapi/models"
)

const (
	OutfitBucketWork    = "work"
	OutfitBucketCasual  = "casual"
	OutfitBucketDefault = "default"

	CapsuleBucketProfessional = "professional"
	CapsuleBucketCasual       = "casual"
	CapsuleBucketDefault      = "default"

	DefaultCapsuleTheme = "professional"
	DefaultGarmentStyle = "realistic"
	DefaultFabric       = "cotton"
)

// OutfitTemplate is a suggestion before ids, prices and images are assigned.
type OutfitTemplate struct {
	Name        string
	Items       []models.WardrobeItem
	Description string
	OccasionFit string
}

type CapsuleTemplate struct {
	Outfits     []models.CapsuleOutfit
	StylingTips []string
}

// StaticCatalog holds the lookup tables behind every fallback response. It is
// never mutated after New, and every accessor hands out copies, so one value
// can be shared by all requests.
type StaticCatalog struct {
	outfitThemes   []string
	garmentStyles  []string
	capsuleThemes  []models.CapsuleTheme
	outfitBuckets  map[string][]OutfitTemplate
	outfitAliases  map[string]string
	wardrobe       []models.WardrobeItem
	capsuleBuckets map[string]CapsuleTemplate
	fabrics        map[string]models.FabricProperties
}

func New() *StaticCatalog {
	return &StaticCatalog{
		outfitThemes:   outfitThemes,
		garmentStyles:  garmentStyles,
		capsuleThemes:  capsuleThemes,
		outfitBuckets:  outfitBuckets,
		outfitAliases:  outfitAliases,
		wardrobe:       capsuleWardrobe,
		capsuleBuckets: capsuleBuckets,
		fabrics:        fabrics,
	}
}

// NormalizeKey is how every theme or occasion string is compared.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func (c *StaticCatalog) OutfitThemes() []string {
	return append([]string(nil), c.outfitThemes...)
}

func (c *StaticCatalog) GarmentStyles() []string {
	return append([]string(nil), c.garmentStyles...)
}

func (c *StaticCatalog) CapsuleThemes() []models.CapsuleTheme {
	return append([]models.CapsuleTheme(nil), c.capsuleThemes...)
}

// CapsuleTheme looks up a known capsule theme by id.
func (c *StaticCatalog) CapsuleTheme(theme string) (models.CapsuleTheme, bool) {
	key := NormalizeKey(theme)
	for _, t := range c.capsuleThemes {
		if t.ID == key {
			return t, true
		}
	}
	return models.CapsuleTheme{}, false
}

// OutfitBucketKey resolves an occasion to the bucket that serves it.
func (c *StaticCatalog) OutfitBucketKey(occasion string) string {
	key := NormalizeKey(occasion)
	if alias, ok := c.outfitAliases[key]; ok {
		key = alias
	}
	if _, ok := c.outfitBuckets[key]; ok {
		return key
	}
	return OutfitBucketDefault
}

func (c *StaticCatalog) OutfitBucket(occasion string) []OutfitTemplate {
	bucket := c.outfitBuckets[c.OutfitBucketKey(occasion)]
	out := make([]OutfitTemplate, len(bucket))
	for i, tpl := range bucket {
		tpl.Items = cloneItems(tpl.Items)
		out[i] = tpl
	}
	return out
}

func (c *StaticCatalog) CapsuleBucketKey(theme string) string {
	key := NormalizeKey(theme)
	if _, ok := c.capsuleBuckets[key]; ok {
		return key
	}
	return CapsuleBucketDefault
}

func (c *StaticCatalog) CapsuleBucket(theme string) CapsuleTemplate {
	bucket := c.capsuleBuckets[c.CapsuleBucketKey(theme)]
	outfits := make([]models.CapsuleOutfit, len(bucket.Outfits))
	for i, o := range bucket.Outfits {
		o.Items = append([]int(nil), o.Items...)
		o.Occasions = append([]string(nil), o.Occasions...)
		outfits[i] = o
	}
	return CapsuleTemplate{
		Outfits:     outfits,
		StylingTips: append([]string(nil), bucket.StylingTips...),
	}
}

// WardrobeItems returns the capsule wardrobe every capsule bucket draws from.
func (c *StaticCatalog) WardrobeItems() []models.WardrobeItem {
	return cloneItems(c.wardrobe)
}

// Fabric returns the normalized fabric name and its simulation properties.
// An empty fabric means cotton; unknown fabrics keep their name but are
// simulated with cotton's properties.
func (c *StaticCatalog) Fabric(fabric string) (string, models.FabricProperties) {
	key := NormalizeKey(fabric)
	if key == "" {
		key = DefaultFabric
	}
	if props, ok := c.fabrics[key]; ok {
		return key, props
	}
	return key, c.fabrics[DefaultFabric]
}

func cloneItems(items []models.WardrobeItem) []models.WardrobeItem {
	out := make([]models.WardrobeItem, len(items))
	for i, item := range items {
		if item.Price != nil {
			p := *item.Price
			item.Price = &p
		}
		if item.VersatilityScore != nil {
			v := *item.VersatilityScore
			item.VersatilityScore = &v
		}
		out[i] = item
	}
	return out
}
