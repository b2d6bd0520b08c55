// ABOUTME: Recommendation generation: referral advice, skincare routines,
// ABOUTME: and lifestyle tips derived from the analysis results
package recommend

import (
	"fmt"
	"strings"

	"github.com/omarZACK/Dermazeen/internal/analysis"
	"github.com/omarZACK/Dermazeen/internal/models"
)

// Input carries everything the generator needs from the analysis stage.
type Input struct {
	Classification   string
	PrimaryCondition string
	Profile          models.SkinProfile
	Answers          analysis.Answers
	Scores           analysis.ScoreSet
	ReferralRequired bool
}

// Generate produces the full recommendation set. A required referral or a
// SEVERE classification yields referral advice instead of a routine;
// lifestyle tips are produced either way.
func Generate(in Input) models.Recommendations {
	var out models.Recommendations
	if in.ReferralRequired || in.Classification == models.ClassificationSevere {
		r := referralAdvice(in)
		out.Referral = &r
	} else {
		r := skincareRoutine(in)
		out.Routine = &r
	}
	out.Lifestyle = lifestyleTips(in)
	return out
}

func referralAdvice(in Input) models.ReferralAdvice {
	var reasons []string
	if in.ReferralRequired {
		switch in.PrimaryCondition {
		case analysis.Vitiligo:
			reasons = append(reasons,
				"Vitiligo affecting facial area detected",
				"Facial vitiligo requires specialized treatment")
		case analysis.Eczema:
			reasons = append(reasons,
				"Eczema affecting facial area detected",
				"Facial eczema can be complex and requires professional care")
		}
	}
	if in.Classification == models.ClassificationSevere {
		reasons = append(reasons, "Severe skin condition detected")
	}

	return models.ReferralAdvice{
		Message: "MEDICAL ATTENTION REQUIRED",
		Reasons: reasons,
		Instructions: []string{
			"Schedule an appointment with a dermatologist as soon as possible",
			"Bring this analysis report to your appointment",
			"Document symptoms with photos if possible",
			"List all current medications and treatments tried",
			"Do not attempt self-treatment until seen by a doctor",
		},
		UrgencySigns: []string{
			"Rapid spreading of symptoms",
			"Severe pain or discomfort",
			"Signs of infection (pus, fever, red streaking)",
			"Difficulty sleeping due to symptoms",
			"Significant impact on daily activities",
		},
		SpecialistNotes: []string{
			"Dermatologist consultation recommended within 1-2 weeks",
			"Consider patch testing for allergen identification",
			"Discuss treatment options and prognosis",
			"Regular follow-up appointments may be needed",
		},
	}
}

func skincareRoutine(in Input) models.Routine {
	var r models.Routine

	if in.Classification == models.ClassificationModerate {
		r.Notes = append(r.Notes, "MODERATE CONDITION: Monitor symptoms closely. If no improvement in 4-6 weeks, consult a dermatologist.")
	} else {
		r.Notes = append(r.Notes, "MILD CONDITION: This routine should help manage your symptoms effectively.")
	}

	addCleansing(&r, in.Profile.Type, in.Classification)
	addMoisturizer(&r, in.Profile.Type, in.Profile.Hydration)

	r.Morning = append(r.Morning, "Broad-spectrum SPF 30+ sunscreen (reapply every 2 hours)")

	if in.Profile.Sensitivity == "High" {
		r.Notes = append(r.Notes,
			"HIGH SENSITIVITY: Choose fragrance-free, hypoallergenic products only",
			"PATCH TEST: Test all new products on a small skin area first")
	}

	addConditionTreatments(&r, in)
	addAllergenNotes(&r, in.Profile.Allergens)

	r.Notes = append(r.Notes,
		"HYDRATION: Drink 8+ glasses of water daily",
		"BATHING: Use lukewarm water, limit to 10-15 minutes",
		"CLOTHING: Choose soft, breathable fabrics")
	return r
}

func addCleansing(r *models.Routine, skinType, classification string) {
	switch skinType {
	case analysis.SkinDry:
		r.Morning = append(r.Morning, "Gentle cream cleanser (fragrance-free)")
		r.Evening = append(r.Evening, "Gentle cream cleanser (fragrance-free)")
	case analysis.SkinOily:
		if classification == models.ClassificationModerate {
			r.Morning = append(r.Morning, "Gentle foaming cleanser (avoid harsh ingredients)")
			r.Evening = append(r.Evening, "Mild salicylic acid cleanser (2-3 times per week)")
		} else {
			r.Morning = append(r.Morning, "Foaming cleanser with salicylic acid")
			r.Evening = append(r.Evening, "Deep cleansing gel")
		}
	case analysis.SkinCombination:
		r.Morning = append(r.Morning, "Gentle foaming cleanser")
		r.Evening = append(r.Evening, "Balancing gel cleanser")
	default:
		r.Morning = append(r.Morning, "Mild foaming cleanser")
		r.Evening = append(r.Evening, "Gentle cleansing gel")
	}
}

func addMoisturizer(r *models.Routine, skinType, hydration string) {
	switch hydration {
	case "High hydration needs":
		if skinType == analysis.SkinOily {
			r.Morning = append(r.Morning, "Lightweight hyaluronic acid moisturizer")
			r.Evening = append(r.Evening, "Hydrating gel cream with ceramides")
		} else {
			r.Morning = append(r.Morning, "Rich moisturizing cream with ceramides")
			r.Evening = append(r.Evening, "Intensive repair cream")
		}
	case "Moderate hydration needs":
		r.Morning = append(r.Morning, "Daily moisturizer with SPF 30+")
		r.Evening = append(r.Evening, "Hydrating night moisturizer")
	default:
		r.Morning = append(r.Morning, "Light daily moisturizer with SPF 30+")
		r.Evening = append(r.Evening, "Light night moisturizer")
	}
}

var rosaceaTriggerNames = map[int]string{
	1: "sun exposure", 2: "spicy foods", 3: "alcohol", 4: "stress",
	5: "heat", 6: "cold", 7: "exercise", 8: "certain products",
}

var eczemaTriggerNames = map[int]string{
	1: "harsh soaps", 2: "fragrances", 3: "certain fabrics", 4: "stress",
	5: "weather changes", 6: "food allergens", 7: "dust/allergens",
}

func addConditionTreatments(r *models.Routine, in Input) {
	moderate := in.Classification == models.ClassificationModerate

	switch in.PrimaryCondition {
	case analysis.Vitiligo:
		if moderate {
			r.Morning = append(r.Morning, "Topical corticosteroid (mild strength - consult pharmacist)")
			r.Evening = append(r.Evening, "Vitamin D analog cream (consult pharmacist)")
			r.Weekly = append(r.Weekly, "Limited sun exposure with protection (consult dermatologist)")
		} else {
			r.Morning = append(r.Morning, "Vitamin E oil or cream")
			r.Evening = append(r.Evening, "Zinc oxide-based products")
			r.Weekly = append(r.Weekly, "Gentle sun exposure (10-15 minutes with SPF)")
		}

	case analysis.Rosacea:
		if moderate {
			r.Morning = append(r.Morning, "Green-tinted primer or makeup")
			r.Evening = append(r.Evening, "Azelaic acid cream (consult pharmacist)")
			r.Weekly = append(r.Weekly, "Gentle exfoliation (once per week max)")
		} else {
			r.Morning = append(r.Morning, "Green-tinted moisturizer")
			r.Evening = append(r.Evening, "Niacinamide serum (5%)")
			r.Weekly = append(r.Weekly, "Cool compress for redness (5-10 minutes)")
		}
		addTriggerNote(r, in.Answers.Values("rosacea_triggers"), rosaceaTriggerNames)

	case analysis.Eczema:
		if moderate {
			r.Morning = append(r.Morning, "Ceramide-rich moisturizer (thick application)")
			r.Evening = append(r.Evening, "Hydrocortisone cream 1% (short-term use)")
			r.Weekly = append(r.Weekly, "Oatmeal bath (2-3 times per week)")
		} else {
			r.Morning = append(r.Morning, "Colloidal oatmeal moisturizer")
			r.Evening = append(r.Evening, "Petrolatum-based healing ointment")
			r.Weekly = append(r.Weekly, "Gentle oatmeal bath (once per week)")
		}
		addTriggerNote(r, in.Answers.Values("eczema_triggers"), eczemaTriggerNames)

	case analysis.SevereAcne:
		hormonal := in.Answers.Single("gender", 1) == 2 &&
			in.Answers.Single("menstrual_cycle_acne", 1) > 1
		if moderate {
			if hormonal {
				r.Morning = append(r.Morning, "Gentle salicylic acid cleanser", "Niacinamide serum 5-10%")
				r.Evening = append(r.Evening, "Retinol 0.25% (start 2x/week)", "Spot treatment with benzoyl peroxide 2.5%")
				r.Weekly = append(r.Weekly, "Clay mask (1-2 times per week)")
				r.Notes = append(r.Notes, "HORMONAL ACNE: Consider consulting gynecologist about hormonal balance")
				if in.Answers.Single("hormonal_birth_control", 1) > 1 {
					r.Notes = append(r.Notes, "Review birth control with doctor - some can worsen acne")
				}
			} else {
				r.Morning = append(r.Morning, "Benzoyl peroxide 2.5% (start every other day)")
				r.Evening = append(r.Evening, "Salicylic acid serum 0.5-1%")
				r.Weekly = append(r.Weekly, "Clay mask (once per week)")
			}
		} else {
			if hormonal {
				r.Morning = append(r.Morning, "Gentle foaming cleanser", "Niacinamide serum 3-5%")
				r.Evening = append(r.Evening, "Salicylic acid cleanser (3x/week)", "Tea tree oil spot treatment (diluted)")
				r.Weekly = append(r.Weekly, "Gentle clay mask (once per week)")
				r.Notes = append(r.Notes, "Track symptoms with menstrual cycle")
			} else {
				r.Morning = append(r.Morning, "Salicylic acid cleanser (2-3 times per week)")
				r.Evening = append(r.Evening, "Tea tree oil spot treatment (diluted)")
				r.Weekly = append(r.Weekly, "Gentle exfoliation (once per week)")
			}
		}
		r.Notes = append(r.Notes, "AVOID: Over-washing, picking at skin, heavy makeup")
		if hormonal {
			r.Notes = append(r.Notes,
				"Consider spearmint tea (may help with hormonal balance)",
				"Maintain stable blood sugar levels",
				"Prioritize sleep quality (affects hormones)")
		}

	case analysis.Melasma:
		if moderate {
			r.Morning = append(r.Morning, "Vitamin C serum 15-20% (antioxidant protection)", "Broad-spectrum SPF 50+ with zinc oxide")
			r.Evening = append(r.Evening, "Hydroquinone 2% (OTC bleaching agent)", "Tretinoin 0.025% (start 2x/week - may need prescription)")
			r.Weekly = append(r.Weekly, "Gentle chemical peel with glycolic acid (1-2x/week)")
			r.Notes = append(r.Notes, "MODERATE MELASMA: Progress may be slow, be patient with treatment")
		} else {
			r.Morning = append(r.Morning, "Vitamin C serum 10-15%", "Broad-spectrum SPF 50+ (reapply every 2 hours)")
			r.Evening = append(r.Evening, "Kojic acid or arbutin serum (natural lightening)", "Niacinamide 5% (helps with pigmentation)")
			r.Weekly = append(r.Weekly, "Gentle AHA exfoliation (glycolic or lactic acid)")
			r.Notes = append(r.Notes, "MILD MELASMA: Consistent treatment should show improvement in 2-3 months")
		}
		r.Notes = append(r.Notes,
			"CRITICAL: Strict sun protection is essential - melasma worsens with UV exposure",
			"Wear wide-brimmed hat and sunglasses when outdoors",
			"AVOID: Waxing on affected areas (can worsen pigmentation)")

		female := in.Answers.Single("gender", 1) == 2
		if female {
			var hormonalTriggers []string
			if in.Answers.HasAny("melasma_triggers", 2, 3) {
				hormonalTriggers = append(hormonalTriggers, "hormonal factors")
			}
			if in.Answers.HasAny("melasma_triggers", 4, 5) {
				hormonalTriggers = append(hormonalTriggers, "hormonal medications")
			}
			if len(hormonalTriggers) > 0 {
				r.Notes = append(r.Notes, fmt.Sprintf("HORMONAL TRIGGERS DETECTED: Discuss %s with doctor",
					strings.Join(hormonalTriggers, ", ")))
			}
			if in.Answers.Has("melasma_pregnancy_hormones", 2) {
				r.Notes = append(r.Notes, "PREGNANCY: Avoid retinoids and hydroquinone - use vitamin C and sunscreen only")
			} else if in.Answers.Has("melasma_pregnancy_hormones", 4) {
				r.Notes = append(r.Notes, "BIRTH CONTROL: Consider discussing alternatives with gynecologist")
			}
		} else {
			r.Notes = append(r.Notes, "MALE MELASMA: This condition is rare in men - consider underlying medical causes")
		}
	}
}

func addTriggerNote(r *models.Routine, selected []int, names map[int]string) {
	var avoid []string
	for _, v := range selected {
		if name, ok := names[v]; ok {
			avoid = append(avoid, name)
		}
	}
	if len(avoid) > 0 {
		r.Notes = append(r.Notes, "AVOID TRIGGERS: "+strings.Join(avoid, ", "))
	}
}

func addAllergenNotes(r *models.Routine, allergens models.AllergenProfile) {
	if len(allergens.HighRisk) == 0 {
		return
	}
	r.Notes = append(r.Notes, "ALLERGEN SENSITIVITIES DETECTED:")

	for _, category := range allergens.HighRisk {
		switch category {
		case "fragrances":
			r.Notes = append(r.Notes,
				"FRAGRANCE-FREE products only",
				"Always read ingredient lists carefully")
		case "preservatives":
			r.Notes = append(r.Notes,
				"Choose preservative-free or low-preservative products",
				"Consider single-use packets or airless pumps")
		case "metals":
			r.Notes = append(r.Notes,
				"Avoid products with metallic applicators",
				"Remove jewelry before applying skincare")
		case "botanicals":
			r.Notes = append(r.Notes,
				"Avoid natural/botanical ingredients",
				"Stick to synthetic, proven ingredients")
		}
	}

	if len(allergens.AvoidIngredients) > 0 {
		r.Notes = append(r.Notes, "INGREDIENTS TO AVOID:")
		shown := allergens.AvoidIngredients
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, ing := range shown {
			r.Notes = append(r.Notes, "  - "+ing)
		}
		if extra := len(allergens.AvoidIngredients) - 5; extra > 0 {
			r.Notes = append(r.Notes, fmt.Sprintf("  - ...and %d more", extra))
		}
	}

	r.Notes = append(r.Notes,
		"SAFER INGREDIENT OPTIONS:",
		"  - Ceramides, hyaluronic acid, squalane",
		"  - Mineral sunscreens (zinc oxide, titanium dioxide)",
		"  - Simple formulations with fewer ingredients")
}

func lifestyleTips(in Input) []string {
	var tips []string

	switch sun := in.Answers.Single("sun_exposure", 1); {
	case sun >= 4:
		tips = append(tips, "High sun exposure detected - wear protective clothing and reapply sunscreen every 2 hours")
	case sun >= 3:
		tips = append(tips, "Moderate sun exposure - ensure daily SPF application")
	}

	switch stress := in.Answers.Single("stress_level", 1); {
	case stress >= 4:
		tips = append(tips, "High stress levels can worsen skin conditions - consider meditation, yoga, or stress counseling")
	case stress >= 3:
		tips = append(tips, "Moderate stress detected - try regular exercise and relaxation techniques")
	}

	switch sleep := in.Answers.Single("sleep_quality", 1); {
	case sleep >= 4:
		tips = append(tips, "Poor sleep affects skin healing - aim for 7-9 hours of quality sleep")
	case sleep >= 3:
		tips = append(tips, "Improve sleep hygiene for better skin health")
	}

	if in.Profile.Hydration == "High hydration needs" {
		tips = append(tips, "Drink at least 8 glasses of water daily for skin hydration")
	}

	female := in.Answers.Single("gender", 1) == 2
	if female && in.Answers.Single("menstrual_cycle_acne", 1) > 1 {
		tips = append(tips,
			"Track your skin changes with menstrual cycle to identify patterns",
			"Consider spearmint tea (may help balance androgens naturally)",
			"Eat anti-inflammatory foods: omega-3 rich fish, leafy greens, berries",
			"Maintain stable blood sugar - avoid high glycemic foods",
			"Regular exercise helps balance hormones (but shower immediately after)")
		if in.Answers.Single("hormonal_birth_control", 1) > 1 {
			tips = append(tips, "Discuss your acne with gynecologist - birth control type matters")
		}
	}

	if len(in.Profile.Allergens.HighRisk) > 0 {
		tips = append(tips,
			"Use fragrance-free household products (detergents, fabric softeners)",
			"Choose natural fiber clothing and wash new clothes before wearing",
			"Always patch test new products on inner wrist 24-48 hours before use")
		for _, category := range in.Profile.Allergens.HighRisk {
			switch category {
			case "metals":
				tips = append(tips, "Avoid nickel jewelry; choose surgical steel, titanium, or gold")
			case "fragrances":
				tips = append(tips, "Avoid scented candles, air fresheners, and perfumed environments")
			}
		}
	}

	// Diet tips key off the highest raw score, not the weighted one.
	maxCondition, maxScore := "", 0.0
	for _, name := range analysis.Conditions {
		if s := in.Scores[name].Value(); s > maxScore {
			maxScore = s
			maxCondition = name
		}
	}
	if maxScore >= 40 {
		switch maxCondition {
		case analysis.Rosacea:
			tips = append(tips, "Avoid spicy foods, alcohol, and hot beverages that may trigger rosacea")
		case analysis.Eczema:
			tips = append(tips, "Consider elimination diet to identify food triggers")
		case analysis.SevereAcne:
			tips = append(tips, "Limit dairy and high-glycemic foods that may worsen acne")
		case analysis.Melasma:
			tips = append(tips,
				"Eat antioxidant-rich foods (vitamin C, E) to support skin healing",
				"CRITICAL: Avoid peak sun hours (10 AM - 4 PM) when possible",
				"Always wear UV-protective clothing and wide-brimmed hats")
		}
	}

	tips = append(tips, "Consider a balanced diet rich in antioxidants for overall skin health")
	return tips
}
