package services

import (
	"fmt"

	"stylemateapi/languageutil"
)

const placeholderHost = "https://placehold.co"

const (
	OutfitImageBackground  = "E8E8E8"
	GarmentImageBackground = "F8F8F8"
)

// PlaceholderImageURL builds a 400x600 placehold.co image showing text.
func PlaceholderImageURL(background, text string) string {
	return fmt.Sprintf("%s/400x600/%s/333333?text=%s", placeholderHost, background, languageutil.PlaceholderText(text))
}

func Float64Pointer(f float64) *float64 {
	return &f
}

func IntPointer(i int) *int {
	return &i
}
