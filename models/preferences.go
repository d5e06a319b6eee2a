package models

import (
	"github.com/go-playground/validator"
)

type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

func (b BudgetTier) Range() string {
	switch b {
	case BudgetLow:
		return "$50-150"
	case BudgetHigh:
		return "$300+"
	default:
		return "$150-300"
	}
}

func ValidateBudgetRaw(value string) bool {
	switch BudgetTier(value) {
	case "", BudgetLow, BudgetMedium, BudgetHigh:
		return true
	}
	return false
}

func ValidateBudget(fl validator.FieldLevel) bool {
	return ValidateBudgetRaw(fl.Field().String())
}

// PreferenceSet is the user's styling input. Every field is optional;
// WithDefaults fills in what the stylist needs.
type PreferenceSet struct {
	Occasion       string     `json:"occasion"`
	Season         string     `json:"season"`
	Budget         BudgetTier `json:"budget" validate:"budget"`
	PreferredStyle string     `json:"preferred_style"`
	Gender         string     `json:"gender"`
	Age            int        `json:"age,omitempty" validate:"omitempty,min=0,max=130"`
	Height         int        `json:"height,omitempty" validate:"omitempty,min=0"`
	Weight         int        `json:"weight,omitempty" validate:"omitempty,min=0"`
	SkinTone       string     `json:"skin_tone,omitempty"`
	HairColor      string     `json:"hair_color,omitempty"`
	EyeColor       string     `json:"eye_color,omitempty"`
}

const (
	DefaultOccasion = "casual"
	DefaultSeason   = "spring"
	DefaultStyle    = "casual"
	DefaultGender   = "female"
)

func (p PreferenceSet) WithDefaults() PreferenceSet {
	if p.Occasion == "" {
		p.Occasion = DefaultOccasion
	}
	if p.Season == "" {
		p.Season = DefaultSeason
	}
	if p.Budget == "" {
		p.Budget = BudgetMedium
	}
	if p.PreferredStyle == "" {
		p.PreferredStyle = DefaultStyle
	}
	if p.Gender == "" {
		p.Gender = DefaultGender
	}
	return p
}
