package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendThresholds(t *testing.T) {
	tests := []struct {
		name   string
		scores Scores
		want   Decision
	}{
		{"all fives", Scores{5, 5, 5, 5, 5}, DecisionAccept},
		{"mean exactly 4.2", Scores{4, 4, 5, 3, 5}, DecisionAccept},
		{"just under accept", Scores{4, 4, 4, 4, 4}, DecisionBorderline},
		{"lowest borderline mean", Scores{4, 3, 4, 3, 4}, DecisionBorderline}, // 3.6, the smallest reachable mean above 3.5
		{"just under borderline", Scores{3, 3, 4, 3, 4}, DecisionReject},      // 3.4
		{"all twos", Scores{2, 2, 2, 2, 2}, DecisionReject},
		{"bare minimum", Scores{1, 1, 1, 1, 1}, DecisionReject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Recommend(tt.scores)
			assert.Equal(t, tt.want, rec.Decision)
			assert.NotEmpty(t, rec.Reasoning)
		})
	}
}

func TestRecommendReasoningFixedPerDecision(t *testing.T) {
	accept := Recommend(Scores{5, 5, 5, 5, 5})
	accept2 := Recommend(Scores{4, 4, 5, 4, 5})
	assert.Equal(t, accept.Reasoning, accept2.Reasoning, "reasoning depends only on the decision")

	reject := Recommend(Scores{2, 2, 2, 2, 2})
	assert.NotEqual(t, accept.Reasoning, reject.Reasoning)
	assert.Contains(t, reject.Reasoning, "does not meet conference standards")
}

// Raising any single criterion never lowers the decision.
func TestRecommendMonotonic(t *testing.T) {
	rank := map[Decision]int{DecisionReject: 0, DecisionBorderline: 1, DecisionAccept: 2}

	bump := []func(Scores) Scores{
		func(s Scores) Scores { s.Novelty++; return s },
		func(s Scores) Scores { s.Clarity++; return s },
		func(s Scores) Scores { s.Relevance++; return s },
		func(s Scores) Scores { s.Technical++; return s },
		func(s Scores) Scores { s.Impact++; return s },
	}

	for n := 1; n <= 4; n++ {
		for c := 1; c <= 4; c++ {
			base := Scores{Novelty: n, Clarity: c, Relevance: 3, Technical: 3, Impact: 3}
			before := rank[Recommend(base).Decision]
			for _, f := range bump {
				after := rank[Recommend(f(base)).Decision]
				assert.GreaterOrEqual(t, after, before, "base %+v", base)
			}
		}
	}
}
