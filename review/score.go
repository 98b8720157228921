package review

// Scores holds the five criterion scores, each an integer in [1,5].
// The rule table below guarantees the range by construction.
type Scores struct {
	Novelty   int `json:"novelty" bson:"novelty"`
	Clarity   int `json:"clarity" bson:"clarity"`
	Relevance int `json:"relevance" bson:"relevance"`
	Technical int `json:"technical" bson:"technical"`
	Impact    int `json:"impact" bson:"impact"`
}

// Mean returns the arithmetic average of the five scores, unrounded.
func (s Scores) Mean() float64 {
	return float64(s.Novelty+s.Clarity+s.Relevance+s.Technical+s.Impact) / 5.0
}

// Score maps lexical features to the five criterion scores. Deterministic
// and pure; the impact rule reads the already-computed novelty score, which
// is the only cross-criterion dependency.
func Score(f Features) Scores {
	var s Scores

	if f.Novelty {
		if f.WordCount <= 150 {
			s.Novelty = 5
		} else {
			s.Novelty = 4
		}
	} else if f.Technical {
		s.Novelty = 3
	} else {
		s.Novelty = 2
	}

	switch {
	case (f.Methodology || f.Structure) && f.WordCount >= 100 && f.WordCount <= 300:
		if f.SentenceCount >= 4 {
			s.Clarity = 4
		} else {
			s.Clarity = 3
		}
	case f.WordCount < 80:
		s.Clarity = 2
	default:
		s.Clarity = 3
	}

	if f.Relevance {
		if f.Impact {
			s.Relevance = 5
		} else {
			s.Relevance = 4
		}
	} else {
		s.Relevance = 3
	}

	switch {
	case f.Technical && f.Structure:
		if f.WordCount > 120 {
			s.Technical = 4
		} else {
			s.Technical = 3
		}
	case f.Technical:
		s.Technical = 3
	default:
		s.Technical = 2
	}

	switch {
	case f.Impact && f.WordCount > 100:
		if s.Novelty >= 4 {
			s.Impact = 5
		} else {
			s.Impact = 4
		}
	case f.Impact:
		s.Impact = 3
	default:
		s.Impact = 2
	}

	return s
}
