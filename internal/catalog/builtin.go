// ABOUTME: Built-in questionnaire covering screening through lifestyle phases
// ABOUTME: Option order is load-bearing; rules and scoring reference indices
package catalog

import "github.com/omarZACK/Dermazeen/internal/models"

// Builtin returns the standard skin-assessment questionnaire.
func Builtin() Catalog {
	return New(builtinQuestions)
}

var builtinQuestions = []models.Question{
	// Screening
	{
		ID:   "screening_main",
		Text: "Do you suspect you have any of these skin conditions?",
		Type: models.MultipleChoice,
		Options: []string{
			"No specific problems suspected",
			"Vitiligo",
			"Rosacea",
			"Eczema",
			"Psoriasis",
			"Severe Acne",
			"Contact dermatitis",
			"Melasma",
			"Other",
		},
	},
	{
		ID:       "condition_duration",
		Text:     "How long have you been dealing with this problem?",
		Type:     models.ScaleChoice,
		Triggers: []string{"vitiligo", "rosacea", "eczema", "psoriasis", "severe_acne", "contact_dermatitis", "melasma"},
		Options: []string{
			"Less than a month",
			"1-3 months",
			"3-6 months",
			"6-12 months",
			"More than a year",
		},
	},
	{
		ID:       "condition_severity",
		Text:     "How would you rate the severity of the problem?",
		Type:     models.ScaleChoice,
		Triggers: []string{"vitiligo", "rosacea", "eczema", "psoriasis", "severe_acne", "contact_dermatitis", "melasma"},
		Options: []string{
			"Mild",
			"Moderate",
			"Severe",
			"Very severe",
		},
	},
	{
		ID:       "previous_treatments",
		Text:     "Have you tried any treatments before?",
		Type:     models.MultipleChoice,
		Triggers: []string{"vitiligo", "rosacea", "eczema", "psoriasis", "severe_acne", "contact_dermatitis", "melasma"},
		Options: []string{
			"Haven't tried any treatments",
			"Home remedies",
			"Over-the-counter products",
			"Medical treatments",
			"Multiple types",
		},
	},

	// Basic info
	{
		ID:   "age",
		Text: "What is your age group?",
		Type: models.ScaleChoice,
		Options: []string{
			"Under 18",
			"18-25",
			"26-35",
			"36-45",
			"Over 45",
		},
	},
	{
		ID:   "gender",
		Text: "What is your gender?",
		Type: models.SingleChoice,
		Options: []string{
			"Male",
			"Female",
			"Prefer not to answer",
		},
	},
	{
		ID:       "skin_tone",
		Text:     "What is your natural skin tone?",
		Type:     models.ScaleChoice,
		Triggers: []string{"melasma", "vitiligo"},
		Options: []string{
			"Very light",
			"Light",
			"Medium",
			"Dark",
			"Very dark",
		},
	},
	{
		ID:       "family_history",
		Text:     "Is there a family history of skin problems? (Select all that apply)",
		Type:     models.MultipleChoice,
		Triggers: []string{"vitiligo", "rosacea", "eczema", "psoriasis"},
		Options: []string{
			"None",
			"Vitiligo",
			"Rosacea",
			"Eczema",
			"Psoriasis",
			"Skin sensitivity",
			"Multiple conditions",
		},
	},

	// Vitiligo follow-ups
	{
		ID:       "vitiligo_spots",
		Text:     "Have you noticed white spots appearing on your skin?",
		Type:     models.ScaleChoice,
		Triggers: []string{"vitiligo"},
		Options: []string{
			"No",
			"Yes, small spots",
			"Yes, medium spots",
			"Yes, large spots",
			"Yes, widespread",
		},
	},
	{
		ID:       "vitiligo_location",
		Text:     "Where do these spots appear? (Select all that apply)",
		Type:     models.MultipleChoice,
		Triggers: []string{"vitiligo"},
		Options: []string{
			"Face",
			"Hands",
			"Feet",
			"Neck",
			"Around eyes",
			"Arms/legs",
			"Torso",
			"Multiple areas",
		},
	},

	// Rosacea follow-ups
	{
		ID:       "rosacea_redness",
		Text:     "Do you experience persistent redness in your face?",
		Type:     models.ScaleChoice,
		Triggers: []string{"rosacea"},
		Options: []string{
			"No",
			"Mild redness",
			"Moderate redness",
			"Severe redness",
			"Redness with burning sensation",
		},
	},
	{
		ID:       "rosacea_triggers",
		Text:     "What triggers the redness? (Select all that apply)",
		Type:     models.MultipleChoice,
		Triggers: []string{"rosacea"},
		Options: []string{
			"Sun exposure",
			"Spicy food",
			"Alcohol",
			"Stress",
			"Heat",
			"Cold",
			"Exercise",
			"Certain products",
		},
	},

	// Eczema follow-ups
	{
		ID:       "eczema_itching",
		Text:     "Do you experience persistent itching on your skin?",
		Type:     models.ScaleChoice,
		Triggers: []string{"eczema"},
		Options: []string{
			"No",
			"Mild itching",
			"Moderate itching",
			"Severe itching",
			"Unbearable itching",
		},
	},
	{
		ID:       "eczema_location",
		Text:     "Where does the eczema appear? (Select all that apply)",
		Type:     models.MultipleChoice,
		Triggers: []string{"eczema"},
		Options: []string{
			"Face",
			"Hands",
			"Arms",
			"Legs",
			"Neck",
			"Behind ears",
			"Torso",
			"Multiple areas",
		},
	},
	{
		ID:       "eczema_triggers",
		Text:     "What triggers the eczema? (Select all that apply)",
		Type:     models.MultipleChoice,
		Triggers: []string{"eczema"},
		Options: []string{
			"Harsh soaps",
			"Fragrances",
			"Certain fabrics",
			"Stress",
			"Weather",
			"Food",
			"Dust/allergens",
			"Not identified",
		},
	},

	// Melasma follow-ups
	{
		ID:       "melasma_patches",
		Text:     "Have you noticed brown or dark patches on your skin?",
		Type:     models.ScaleChoice,
		Triggers: []string{"melasma"},
		Options: []string{
			"No",
			"Yes, small patches",
			"Yes, medium patches",
			"Yes, large patches",
			"Yes, widespread patches",
		},
	},
	{
		ID:       "melasma_location",
		Text:     "Where do these dark patches appear? (Select all that apply)",
		Type:     models.MultipleChoice,
		Triggers: []string{"melasma"},
		Options: []string{
			"Face (cheeks, forehead, nose)",
			"Upper lip area",
			"Neck",
			"Arms",
			"Shoulders",
			"Chest",
			"Other sun-exposed areas",
		},
	},
	{
		ID:       "melasma_triggers",
		Text:     "What seems to trigger or worsen these patches? (Select all that apply)",
		Type:     models.MultipleChoice,
		Triggers: []string{"melasma"},
		Options: []string{
			"Sun exposure",
			"Pregnancy",
			"Hormonal changes",
			"Birth control pills",
			"Hormone replacement therapy",
			"Certain medications",
			"Not sure",
		},
	},
	{
		ID:       "melasma_pregnancy_hormones",
		Text:     "Have you experienced hormonal changes that might be related? (Select all that apply)",
		Type:     models.MultipleChoice,
		Triggers: []string{"melasma"},
		Options: []string{
			"No hormonal changes",
			"Currently pregnant",
			"Recently pregnant",
			"Started birth control",
			"Menopause/perimenopause",
			"Hormone replacement therapy",
			"Other hormonal medications",
		},
	},

	// Hormonal acne follow-ups
	{
		ID:       "menstrual_cycle_acne",
		Text:     "Do you notice acne changes related to your menstrual cycle?",
		Type:     models.ScaleChoice,
		Triggers: []string{"severe_acne"},
		Options: []string{
			"No changes",
			"Slight worsening before period",
			"Moderate worsening before period",
			"Severe worsening before period",
			"Constant flare-ups throughout cycle",
		},
	},
	{
		ID:       "hormonal_birth_control",
		Text:     "Are you currently using hormonal birth control?",
		Type:     models.SingleChoice,
		Triggers: []string{"severe_acne", "melasma"},
		Options: []string{
			"No",
			"Birth control pills",
			"IUD (hormonal)",
			"Contraceptive shot/injection",
			"Other hormonal methods",
		},
	},

	// Oiliness
	{
		ID:       "t_zone_oiliness",
		Text:     "How would you describe the oiliness in your T-zone (forehead, nose, chin) 4-6 hours after washing?",
		Type:     models.ScaleChoice,
		Triggers: []string{"severe_acne"},
		Options: []string{
			"Completely dry",
			"Slightly dry",
			"Normal",
			"Slightly oily",
			"Very oily with visible shine",
		},
	},
	{
		ID:       "cheek_oiliness",
		Text:     "How would you describe your cheeks 30 minutes after washing?",
		Type:     models.ScaleChoice,
		Triggers: []string{"severe_acne"},
		Options: []string{
			"Dry and tight",
			"Slightly dry",
			"Normal and comfortable",
			"Slightly oily",
			"Very oily",
		},
	},
	{
		ID:       "pore_size",
		Text:     "How would you describe the size of your pores?",
		Type:     models.ScaleChoice,
		Triggers: []string{"severe_acne"},
		Options: []string{
			"Invisible or very small",
			"Small",
			"Medium",
			"Large in T-zone only",
			"Large all over face",
		},
	},

	// Sensitivity
	{
		ID:       "product_sensitivity",
		Text:     "How does your skin react to new skincare products?",
		Type:     models.ScaleChoice,
		Triggers: []string{"eczema", "rosacea"},
		Options: []string{
			"Never reacts",
			"Rarely reacts",
			"Sometimes reacts",
			"Often reacts",
			"Always reacts with severe sensitivity",
		},
	},
	{
		ID:       "environmental_sensitivity",
		Text:     "How does your skin react to environmental factors (wind, cold, heat)?",
		Type:     models.ScaleChoice,
		Triggers: []string{"rosacea", "eczema"},
		Options: []string{
			"Not affected",
			"Slightly affected",
			"Moderately affected",
			"Severely affected",
			"Severely affected with inflammation",
		},
	},
	{
		ID:       "fragrance_sensitivity",
		Text:     "How does your skin react to fragrances in products?",
		Type:     models.ScaleChoice,
		Triggers: []string{"eczema", "rosacea", "contact_dermatitis"},
		Options: []string{
			"No reaction",
			"Mild irritation occasionally",
			"Moderate irritation",
			"Severe irritation/redness",
			"Immediate allergic reaction",
		},
	},
	{
		ID:       "preservative_sensitivity",
		Text:     "Have you experienced reactions to preservatives (parabens, formaldehyde releasers)?",
		Type:     models.ScaleChoice,
		Triggers: []string{"contact_dermatitis", "eczema"},
		Options: []string{
			"No known reactions",
			"Suspected mild reactions",
			"Confirmed mild reactions",
			"Confirmed moderate reactions",
			"Severe allergic reactions",
		},
	},
	{
		ID:       "metal_sensitivity",
		Text:     "Do you have sensitivity to metals (nickel, jewelry)?",
		Type:     models.ScaleChoice,
		Triggers: []string{"contact_dermatitis"},
		Options: []string{
			"No sensitivity",
			"Mild skin discoloration",
			"Moderate rash/redness",
			"Severe allergic contact dermatitis",
			"Multiple metal allergies",
		},
	},
	{
		ID:       "botanical_sensitivity",
		Text:     "How does your skin react to natural/botanical ingredients?",
		Type:     models.ScaleChoice,
		Triggers: []string{"eczema", "rosacea", "contact_dermatitis"},
		Options: []string{
			"Generally well-tolerated",
			"Occasional mild reactions",
			"Frequent mild reactions",
			"Severe reactions to most botanicals",
			"Allergic to specific plants",
		},
	},

	// Hydration
	{
		ID:       "dryness_feeling",
		Text:     "Do you feel dryness or tightness in your skin throughout the day?",
		Type:     models.ScaleChoice,
		Triggers: []string{"eczema"},
		Options: []string{
			"Never",
			"Rarely",
			"Sometimes",
			"Often",
			"Always and painful",
		},
	},
	{
		ID:   "moisturizer_response",
		Text: "How does your skin respond to moisturizers?",
		Type: models.SingleChoice,
		Options: []string{
			"Becomes oily quickly",
			"Comfortable for short time",
			"Comfortable for long time",
			"Needs strong moisturizer",
			"Needs multiple moisturizers daily",
		},
	},

	// Lifestyle
	{
		ID:       "sun_exposure",
		Text:     "How much sun exposure do you get daily?",
		Type:     models.ScaleChoice,
		Triggers: []string{"melasma", "rosacea", "vitiligo"},
		Options: []string{
			"Minimal (indoor most of day)",
			"Light (short outdoor periods)",
			"Moderate (regular outdoor activities)",
			"High (work/spend lots of time outdoors)",
			"Very high (beach, sports, etc.)",
		},
	},
	{
		ID:       "stress_level",
		Text:     "How would you rate your stress levels?",
		Type:     models.ScaleChoice,
		Triggers: []string{"eczema", "psoriasis", "severe_acne", "rosacea"},
		Options: []string{
			"Very low",
			"Low",
			"Moderate",
			"High",
			"Very high",
		},
	},
	{
		ID:       "sleep_quality",
		Text:     "How would you rate your sleep quality?",
		Type:     models.ScaleChoice,
		Triggers: []string{"severe_acne", "eczema", "psoriasis", "rosacea"},
		Options: []string{
			"Excellent (7-9 hours, good quality)",
			"Good (6-8 hours, decent quality)",
			"Fair (5-7 hours, some issues)",
			"Poor (less than 6 hours or poor quality)",
			"Very poor (chronic sleep issues)",
		},
	},
}
