package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderImageURL(t *testing.T) {
	assert.Equal(t,
		"https://placehold.co/400x600/F8F8F8/333333?text=AI+Design+1+realistic",
		PlaceholderImageURL(GarmentImageBackground, "AI Design 1 realistic"))
}
