// ABOUTME: Skin profile derivation: type, sensitivity, hydration, allergens
// ABOUTME: Skin type comes from a T-zone vs cheek oiliness grid
package analysis

import "github.com/omarZACK/Dermazeen/internal/models"

// Skin type labels.
const (
	SkinDry         = "Dry"
	SkinOily        = "Oily"
	SkinCombination = "Combination"
	SkinNormal      = "Normal"
)

// BuildProfile derives the skin profile from the oiliness, sensitivity and
// hydration answers. Unanswered oiliness questions default to the midpoint
// so a partial session still yields a usable profile.
func BuildProfile(answers Answers) models.SkinProfile {
	return models.SkinProfile{
		Type:        skinType(answers),
		Sensitivity: sensitivityLevel(answers),
		Hydration:   hydrationLevel(answers),
		Allergens:   allergenProfile(answers),
	}
}

func skinType(answers Answers) string {
	tZone := answers.Single("t_zone_oiliness", 3)
	cheeks := answers.Single("cheek_oiliness", 3)
	switch {
	case tZone <= 2 && cheeks <= 2:
		return SkinDry
	case tZone >= 4 && cheeks >= 4:
		return SkinOily
	case tZone >= 4 && cheeks <= 3:
		return SkinCombination
	default:
		return SkinNormal
	}
}

func sensitivityLevel(answers Answers) string {
	product := answers.Single("product_sensitivity", 1)
	switch {
	case product <= 2:
		return "Low"
	case product <= 3:
		return "Moderate"
	default:
		return "High"
	}
}

func hydrationLevel(answers Answers) string {
	dryness := answers.Single("dryness_feeling", 1)
	switch {
	case dryness <= 2:
		return "Well-hydrated"
	case dryness <= 3:
		return "Moderate hydration needs"
	default:
		return "High hydration needs"
	}
}

// allergenProfile collects likely allergen categories. Fragrances and
// botanicals need a stronger reaction signal than preservatives and metals,
// which are clinically significant at lower reported sensitivity.
func allergenProfile(answers Answers) models.AllergenProfile {
	var out models.AllergenProfile
	if answers.Single("fragrance_sensitivity", 1) >= 4 {
		out.HighRisk = append(out.HighRisk, "fragrances")
		out.AvoidIngredients = append(out.AvoidIngredients,
			"parfum", "fragrance", "essential oils", "citrus oils")
	}
	if answers.Single("preservative_sensitivity", 1) >= 3 {
		out.HighRisk = append(out.HighRisk, "preservatives")
		out.AvoidIngredients = append(out.AvoidIngredients,
			"parabens", "formaldehyde releasers", "methylisothiazolinone")
	}
	if answers.Single("metal_sensitivity", 1) >= 3 {
		out.HighRisk = append(out.HighRisk, "metals")
		out.AvoidIngredients = append(out.AvoidIngredients,
			"nickel", "chromium", "titanium dioxide (in some formulations)")
	}
	if answers.Single("botanical_sensitivity", 1) >= 4 {
		out.HighRisk = append(out.HighRisk, "botanicals")
		out.AvoidIngredients = append(out.AvoidIngredients,
			"tea tree oil", "lavender oil", "chamomile", "arnica")
	}
	return out
}
