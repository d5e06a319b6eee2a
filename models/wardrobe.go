package models

import (
	"math"
	"strings"
)

type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryOuterwear Category = "outerwear"
	CategoryDress     Category = "dress"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
)

// categorySynonyms maps the garment words models tend to answer with onto the
// six wardrobe categories.
var categorySynonyms = map[string]Category{
	"top":         CategoryTop,
	"tops":        CategoryTop,
	"shirt":       CategoryTop,
	"blouse":      CategoryTop,
	"t-shirt":     CategoryTop,
	"tshirt":      CategoryTop,
	"tee":         CategoryTop,
	"sweater":     CategoryTop,
	"knitwear":    CategoryTop,
	"hoodie":      CategoryTop,
	"bottom":      CategoryBottom,
	"bottoms":     CategoryBottom,
	"pants":       CategoryBottom,
	"trousers":    CategoryBottom,
	"jeans":       CategoryBottom,
	"skirt":       CategoryBottom,
	"shorts":      CategoryBottom,
	"outerwear":   CategoryOuterwear,
	"jacket":      CategoryOuterwear,
	"blazer":      CategoryOuterwear,
	"coat":        CategoryOuterwear,
	"cardigan":    CategoryOuterwear,
	"vest":        CategoryOuterwear,
	"dress":       CategoryDress,
	"dresses":     CategoryDress,
	"jumpsuit":    CategoryDress,
	"shoes":       CategoryShoes,
	"shoe":        CategoryShoes,
	"footwear":    CategoryShoes,
	"sneakers":    CategoryShoes,
	"heels":       CategoryShoes,
	"boots":       CategoryShoes,
	"sandals":     CategoryShoes,
	"flats":       CategoryShoes,
	"accessory":   CategoryAccessory,
	"accessories": CategoryAccessory,
	"bag":         CategoryAccessory,
	"belt":        CategoryAccessory,
	"scarf":       CategoryAccessory,
	"jewelry":     CategoryAccessory,
	"necklace":    CategoryAccessory,
	"hat":         CategoryAccessory,
	"watch":       CategoryAccessory,
}

// ParseCategory reports whether value names one of the wardrobe categories,
// either directly or through a known synonym. Values like "top/bottom/shoes"
// echoed back from a prompt resolve to their first part.
func ParseCategory(value string) (Category, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if i := strings.IndexByte(value, '/'); i > 0 {
		value = value[:i]
	}
	c, ok := categorySynonyms[value]
	return c, ok
}

// NormalizeCategory never fails: anything unrecognized is an accessory.
func NormalizeCategory(value string) Category {
	if c, ok := ParseCategory(value); ok {
		return c
	}
	return CategoryAccessory
}

type WardrobeItem struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Category         Category `json:"category"`
	Color            string   `json:"color"`
	Price            *float64 `json:"price,omitempty"`
	VersatilityScore *int     `json:"versatility_score,omitempty"`
	EssentialReason  string   `json:"essential_reason,omitempty"`
}

type OutfitSuggestion struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Items       []WardrobeItem `json:"items"`
	TotalPrice  *float64       `json:"total_price,omitempty"`
	Description string         `json:"description"`
	OccasionFit string         `json:"occasion_fit,omitempty"`
	Images      []string       `json:"images"`
	AIGenerated bool           `json:"ai_generated"`
}

// TotalPrice sums the prices of items, treating unpriced items as zero. It
// returns nil when none of the items carry a price.
func TotalPrice(items []WardrobeItem) *float64 {
	var total float64
	priced := false
	for _, item := range items {
		if item.Price == nil {
			continue
		}
		priced = true
		total += *item.Price
	}
	if !priced {
		return nil
	}
	rounded := RoundCents(total)
	return &rounded
}

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
