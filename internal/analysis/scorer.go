// ABOUTME: Condition scoring with confidence-factor accumulation
// ABOUTME: Pure function over the full answer set; deterministic and replayable
package analysis

// Tracked condition names. Contact dermatitis is tracked for screening
// exclusion bookkeeping even though only sensitivity answers feed it.
const (
	Vitiligo          = "vitiligo"
	Rosacea           = "rosacea"
	Eczema            = "eczema"
	Psoriasis         = "psoriasis"
	SevereAcne        = "severe_acne"
	ContactDermatitis = "contact_dermatitis"
	Melasma           = "melasma"
)

// Conditions lists every tracked condition in report order.
var Conditions = []string{
	Vitiligo, Rosacea, Eczema, Psoriasis, SevereAcne, ContactDermatitis, Melasma,
}

// Score is one condition's accumulated evidence. Raw may dip below zero via
// the male melasma adjustment; Value() clamps at read time.
type Score struct {
	Raw float64
	CF  float64
}

// Value returns the raw score floored at zero.
func (s Score) Value() float64 {
	if s.Raw < 0 {
		return 0
	}
	return s.Raw
}

// Weighted returns score times confidence, the ranking key everywhere.
func (s Score) Weighted() float64 {
	return s.Value() * s.CF
}

// ScoreSet holds per-condition scores.
type ScoreSet map[string]Score

// add accumulates points and combines confidence factors. Scores cap at 100.
// Confidence combines Dempster-Shafer style: corroborating weak signals push
// the CF toward 1.0 without ever exceeding it.
func (s ScoreSet) add(condition string, points, cf float64) {
	cur := s[condition]
	raw := cur.Raw + points
	if raw > 100 {
		raw = 100
	}
	ncf := cf
	if cur.CF > 0 {
		ncf = cur.CF + cf*(1-cur.CF)
	}
	if ncf > 1 {
		ncf = 1
	}
	s[condition] = Score{Raw: raw, CF: ncf}
}

// ScoreConditions computes every condition's score from the answers given so
// far. Unanswered questions contribute nothing.
func ScoreConditions(answers Answers) ScoreSet {
	scores := make(ScoreSet, len(Conditions))
	for _, c := range Conditions {
		scores[c] = Score{}
	}
	scoreVitiligo(scores, answers)
	scoreRosacea(scores, answers)
	scoreEczema(scores, answers)
	scorePsoriasis(scores, answers)
	scoreAcne(scores, answers)
	scoreMelasma(scores, answers)
	return scores
}

func scoreVitiligo(s ScoreSet, a Answers) {
	if a.Single("screening_main", 1) == 2 {
		s.add(Vitiligo, 30, 0.9)
	}
	if a.Has("family_history", 2) {
		s.add(Vitiligo, 20, 0.7)
	}
	if spots := a.Single("vitiligo_spots", 1); spots > 1 {
		cf := 0.6
		if spots >= 4 {
			cf = 0.8
		}
		s.add(Vitiligo, float64(25+(spots-2)*5), cf)
	}
	if n := a.Count("vitiligo_location"); n > 1 {
		s.add(Vitiligo, float64(n*3), 0.7)
	}
}

func scoreRosacea(s ScoreSet, a Answers) {
	if a.Single("screening_main", 1) == 3 {
		s.add(Rosacea, 30, 0.9)
	}
	if a.Has("family_history", 3) {
		s.add(Rosacea, 15, 0.6)
	}
	if redness := a.Single("rosacea_redness", 1); redness > 1 {
		cf := 0.7
		if redness >= 4 {
			cf = 0.9
		}
		s.add(Rosacea, float64(redness*6), cf)
	}
	if n := a.Count("rosacea_triggers"); n > 2 {
		s.add(Rosacea, float64(n*3), 0.8)
	}
}

func scoreEczema(s ScoreSet, a Answers) {
	if a.Single("screening_main", 1) == 4 {
		s.add(Eczema, 30, 0.9)
	}
	if a.Has("family_history", 4) {
		s.add(Eczema, 15, 0.7)
	}
	if itching := a.Single("eczema_itching", 1); itching > 1 {
		cf := 0.7
		if itching >= 4 {
			cf = 0.9
		}
		s.add(Eczema, float64(itching*6), cf)
	}
	if a.Single("product_sensitivity", 1) >= 4 {
		s.add(Eczema, 15, 0.6)
	}
	if n := a.Count("eczema_triggers"); n > 2 {
		s.add(Eczema, float64(n*2), 0.7)
	}
}

func scorePsoriasis(s ScoreSet, a Answers) {
	if a.Single("screening_main", 1) == 5 {
		s.add(Psoriasis, 30, 0.9)
	}
	if a.Has("family_history", 5) {
		s.add(Psoriasis, 20, 0.8)
	}
}

func scoreAcne(s ScoreSet, a Answers) {
	if a.Single("screening_main", 1) == 6 {
		s.add(SevereAcne, 30, 0.9)
	}
	if tZone := a.Single("t_zone_oiliness", 1); tZone >= 4 {
		cf := 0.6
		if tZone == 5 {
			cf = 0.8
		}
		s.add(SevereAcne, float64((tZone-3)*10), cf)
	}
	if a.Single("pore_size", 1) >= 4 {
		s.add(SevereAcne, 15, 0.7)
	}
	if a.Single("stress_level", 1) >= 4 {
		s.add(SevereAcne, 10, 0.5)
	}

	// Hormonal contributions apply to female respondents.
	if a.Single("gender", 1) == 2 {
		switch impact := a.Single("menstrual_cycle_acne", 1); {
		case impact >= 4:
			s.add(SevereAcne, 20, 0.8)
		case impact >= 3:
			s.add(SevereAcne, 15, 0.7)
		case impact >= 2:
			s.add(SevereAcne, 10, 0.6)
		}
		if a.Single("hormonal_birth_control", 1) >= 2 {
			s.add(SevereAcne, 5, 0.4)
		}
	}
}

// scoreMelasma is deliberately conservative: pregnancy and birth control are
// extremely common, usually benign triggers, so their point values stay small
// to avoid over-flagging.
func scoreMelasma(s ScoreSet, a Answers) {
	if a.Single("screening_main", 1) == 8 {
		s.add(Melasma, 20, 0.8)
	}

	switch patches := a.Single("melasma_patches", 1); patches {
	case 2:
		s.add(Melasma, 8, 0.6)
	case 3:
		s.add(Melasma, 15, 0.7)
	case 4:
		s.add(Melasma, 25, 0.8)
	case 5:
		s.add(Melasma, 35, 0.9)
	}

	if a.Has("melasma_location", 1) {
		// Facial involvement is the norm for melasma, minimal points.
		s.add(Melasma, 5, 0.6)
	}
	if n := a.Count("melasma_location"); n > 1 {
		s.add(Melasma, float64(n*3), 0.7)
	}

	if a.Has("melasma_triggers", 1) {
		s.add(Melasma, 8, 0.7)
	}
	if a.Has("melasma_triggers", 2) {
		s.add(Melasma, 3, 0.5)
	} else if a.Has("melasma_triggers", 3) {
		s.add(Melasma, 6, 0.6)
	}
	if n := a.Count("melasma_triggers"); n > 3 {
		s.add(Melasma, float64((n-3)*2), 0.6)
	}

	gender := a.Single("gender", 1)
	if gender == 2 {
		hormones := a.Values("melasma_pregnancy_hormones")
		if len(hormones) > 0 && !a.Has("melasma_pregnancy_hormones", 1) {
			switch {
			case a.Has("melasma_pregnancy_hormones", 2): // currently pregnant
				s.add(Melasma, 5, 0.6)
			case a.Has("melasma_pregnancy_hormones", 3): // recently pregnant
				s.add(Melasma, 7, 0.6)
			case a.Has("melasma_pregnancy_hormones", 4): // started birth control
				s.add(Melasma, 4, 0.5)
			default:
				s.add(Melasma, float64(len(hormones)*4), 0.5)
			}
		}

		s.add(Melasma, 3, 0.4)
		if age := a.Single("age", 1); age >= 2 && age <= 4 {
			s.add(Melasma, 2, 0.3)
		}
	} else if gender == 1 {
		// Melasma is rare in men; small one-time negative adjustment.
		s.add(Melasma, -3, 0.3)
	}

	switch sun := a.Single("sun_exposure", 1); {
	case sun >= 4:
		s.add(Melasma, 8, 0.7)
	case sun >= 3:
		s.add(Melasma, 5, 0.6)
	}
}
