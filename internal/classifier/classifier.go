// ABOUTME: Image classification for melasma pre-screening
// ABOUTME: Maps classifier output onto screening question choices
package classifier

import "strings"

// Prediction is the classifier verdict for one skin image.
type Prediction struct {
	// Label is the predicted class, "melasma" or "normal".
	Label string `json:"label"`
	// Confidence in the predicted label, 0..1.
	Confidence float64 `json:"confidence"`
	// MelasmaProbability is the raw melasma class probability.
	MelasmaProbability float64 `json:"melasma_probability"`
	// NormalProbability is the raw normal class probability.
	NormalProbability float64 `json:"normal_probability"`
	// Err holds a processing failure; a failed prediction still maps to a
	// usable screening answer.
	Err string `json:"error,omitempty"`
}

// Screening choice indices the mapping can produce.
const (
	choiceNoProblems = 1
	choiceMelasma    = 8
	choiceOther      = 9
)

// ScreeningChoices converts a prediction into screening answer indices.
// Failures fall back to "Other" so the user specifies manually; uncertain
// results include "No specific problems" to keep scoring conservative.
func ScreeningChoices(p Prediction) []int {
	if p.Err != "" {
		return []int{choiceOther}
	}

	label := strings.ToLower(p.Label)
	switch {
	case label == "melasma" && p.Confidence > 0.5:
		return []int{choiceMelasma}
	case p.MelasmaProbability > 0.3:
		return []int{choiceNoProblems, choiceMelasma}
	case label == "normal" && p.Confidence > 0.8:
		return []int{choiceNoProblems}
	default:
		return []int{choiceNoProblems, choiceOther}
	}
}
