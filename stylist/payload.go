package stylist

import (
	"math"
	"strconv"
	"strings"
)

// Models are loose with numbers: prices come back as 59.99, "59.99" or
// "$59.99" depending on the day. Values that cannot be read as a number are
// treated as absent instead of failing the whole payload.

type flexFloat struct {
	value *float64
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	f.value = &v
	return nil
}

type flexInt struct {
	value *int
}

func (i *flexInt) UnmarshalJSON(b []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(b); err != nil || f.value == nil {
		return err
	}
	if *f.value != math.Trunc(*f.value) {
		return nil
	}
	v := int(*f.value)
	i.value = &v
	return nil
}

func (i flexInt) get() int {
	if i.value == nil {
		return 0
	}
	return *i.value
}

type aiOutfitPayload struct {
	Outfits []aiOutfit `json:"outfits"`
}

type aiOutfit struct {
	Name        string   `json:"name"`
	Items       []aiItem `json:"items"`
	Description string   `json:"description"`
	OccasionFit string   `json:"occasion_fit"`
}

type aiItem struct {
	ID               flexInt   `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Color            string    `json:"color"`
	Price            flexFloat `json:"price"`
	VersatilityScore flexFloat `json:"versatility_score"`
	EssentialReason  string    `json:"essential_reason"`
}

type aiCapsulePayload struct {
	Theme         string            `json:"theme"`
	WardrobeItems []aiItem          `json:"wardrobe_items"`
	Outfits       []aiCapsuleOutfit `json:"outfits"`
	StylingTips   []string          `json:"styling_tips"`
}

type aiCapsuleOutfit struct {
	ID          flexInt   `json:"id"`
	Name        string    `json:"name"`
	Items       []flexInt `json:"items"`
	Description string    `json:"description"`
	Occasions   []string  `json:"occasions"`
}
