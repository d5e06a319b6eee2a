package stylist

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"stylemateapi/models"
)

//go:embed outfits_prompt.md
var outfitsPrompt string

//go:embed capsule_prompt.md
var capsulePrompt string

var (
	outfitsTemplate = template.Must(template.New("outfits").Parse(outfitsPrompt))
	capsuleTemplate = template.Must(template.New("capsule").Parse(capsulePrompt))
)

type outfitsPromptData struct {
	models.PreferenceSet
	BudgetRange string
}

type capsulePromptData struct {
	Theme       string
	Preferences *models.PreferenceSet
	BudgetRange string
}

func buildOutfitsPrompt(prefs models.PreferenceSet) (string, error) {
	var buf bytes.Buffer
	data := outfitsPromptData{PreferenceSet: prefs, BudgetRange: prefs.Budget.Range()}
	if err := outfitsTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: outfits: %w", ErrPromptRender, err)
	}
	return buf.String(), nil
}

// buildCapsulePrompt leaves preferences out of the prompt when the client
// sent none.
func buildCapsulePrompt(theme string, prefs *models.PreferenceSet) (string, error) {
	var buf bytes.Buffer
	data := capsulePromptData{Theme: theme, Preferences: prefs}
	if prefs != nil {
		data.BudgetRange = prefs.Budget.Range()
	}
	if err := capsuleTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: capsule: %w", ErrPromptRender, err)
	}
	return buf.String(), nil
}
