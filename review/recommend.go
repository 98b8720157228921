package review

// Decision is the three-valued review outcome.
type Decision string

const (
	DecisionAccept     Decision = "Accept"
	DecisionBorderline Decision = "Borderline"
	DecisionReject     Decision = "Reject"
)

// Recommendation couples the decision with a fixed rationale. The rationale
// does not interpolate per-abstract values.
type Recommendation struct {
	Decision  Decision `json:"decision" bson:"decision"`
	Reasoning string   `json:"reasoning" bson:"reasoning"`
}

// Recommend derives the decision from the unrounded mean of the five
// criterion scores: >=4.2 Accept, >=3.5 Borderline, otherwise Reject.
func Recommend(s Scores) Recommendation {
	mean := s.Mean()
	switch {
	case mean >= 4.2:
		return Recommendation{
			Decision:  DecisionAccept,
			Reasoning: "This abstract demonstrates strong quality across all evaluation criteria. The work is well-presented, highly relevant, and shows clear potential for meaningful contribution.",
		}
	case mean >= 3.5:
		return Recommendation{
			Decision:  DecisionBorderline,
			Reasoning: "The abstract shows promise but has areas requiring improvement. Strengthening technical details or clarifying presentation would enhance the submission.",
		}
	default:
		return Recommendation{
			Decision:  DecisionReject,
			Reasoning: "The abstract does not meet conference standards in several key areas. Significant revisions would be necessary.",
		}
	}
}
