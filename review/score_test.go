package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRange(t *testing.T) {
	samples := []string{
		"",
		"lorem ipsum",
		sentence("novel algorithm healthcare improve", 40),
		sentence("method approach problem challenge results", 150),
		strings.Repeat(sentence("A novel technique using deep learning can improve healthcare outcomes", 20), 20),
	}
	for _, text := range samples {
		s := Score(Extract(text))
		for _, v := range []int{s.Novelty, s.Clarity, s.Relevance, s.Technical, s.Impact} {
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 5)
		}
	}
}

// Four-sentence abstract with methodology keywords and an exact word count,
// used for the clarity length boundaries.
func clarityFixture(words int) string {
	per := words / 4
	rem := words - 3*per
	return sentence("Our method targets imaging", per) + " " +
		sentence("The technique runs quickly", per) + " " +
		sentence("We describe the steps", per) + " " +
		sentence("Practitioners can adopt it", rem)
}

func TestClarityLengthBoundaries(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{100, 4}, // lower edge of the optimal-length branch
		{300, 4}, // upper edge
		{99, 3},  // just below: falls to the default branch
		{301, 3}, // just above
	}
	for _, tt := range tests {
		f := Extract(clarityFixture(tt.words))
		require.Equal(t, tt.words, f.WordCount)
		require.GreaterOrEqual(t, f.SentenceCount, 4)
		require.True(t, f.Methodology)

		s := Score(f)
		assert.Equal(t, tt.want, s.Clarity, "clarity at %d words", tt.words)
	}
}

func TestNoveltyRules(t *testing.T) {
	// Novelty keyword in a short abstract scores highest.
	f := Extract(sentence("a novel design", 100))
	assert.Equal(t, 5, Score(f).Novelty)

	// Same keyword past 150 words drops one tier.
	f = Extract(sentence("a novel design", 151))
	assert.Equal(t, 4, Score(f).Novelty)

	// No novelty keyword, technical keyword present.
	f = Extract(sentence("an optimization routine", 100))
	assert.Equal(t, 3, Score(f).Novelty)

	// Neither family.
	f = Extract(sentence("plain prose here", 100))
	assert.Equal(t, 2, Score(f).Novelty)
}

func TestImpactDependsOnNovelty(t *testing.T) {
	// Impact keyword, >100 words, novelty strong: top score.
	f := Extract(sentence("a novel plan to improve outcomes", 120))
	require.True(t, f.Impact)
	s := Score(f)
	require.GreaterOrEqual(t, s.Novelty, 4)
	assert.Equal(t, 5, s.Impact)

	// Same length without novelty keywords: one tier lower.
	f = Extract(sentence("a plan to enhance outcomes", 120))
	require.True(t, f.Impact)
	s = Score(f)
	require.Less(t, s.Novelty, 4)
	assert.Equal(t, 4, s.Impact)

	// Impact keyword in a short abstract.
	f = Extract(sentence("we enhance outcomes", 50))
	assert.Equal(t, 3, Score(f).Impact)
}

// Scenario: 180-word, five-sentence abstract mentioning a novel algorithm,
// improved performance, and healthcare.
func TestScoreRepresentativeAbstract(t *testing.T) {
	text := sentence("We describe a novel algorithm for screening in healthcare", 36) + " " +
		sentence("The technique can improve performance for clinicians", 36) + " " +
		sentence("Our design scales across large cohorts", 36) + " " +
		sentence("Deployments ran in three hospitals", 36) + " " +
		sentence("Teams adopted it within weeks", 36)

	f := Extract(text)
	require.Equal(t, 180, f.WordCount)
	require.Equal(t, 5, f.SentenceCount)
	require.True(t, f.Novelty)
	require.True(t, f.Technical)
	require.True(t, f.Relevance)
	require.True(t, f.Impact)
	require.False(t, f.Structure)

	s := Score(f)
	assert.Equal(t, Scores{
		Novelty:   4, // novelty keyword past the 150-word cutoff
		Clarity:   4, // methodology keywords, optimal length, enough sentences
		Relevance: 5, // relevance and impact keywords together
		Technical: 3, // technical keyword without structure terms
		Impact:    5, // impact keyword, long enough, novelty strong
	}, s)
	assert.InDelta(t, 4.2, s.Mean(), 1e-9)
}

// Scenario: a 40-word abstract with no keyword matches at all.
func TestScoreBareShortAbstract(t *testing.T) {
	text := strings.TrimSuffix(strings.Repeat("lorem ipsum dolor amet ", 10), " ")
	f := Extract(text)
	require.Equal(t, 40, f.WordCount)
	require.Equal(t, Features{WordCount: 40, SentenceCount: 1}, f)

	s := Score(f)
	assert.Equal(t, Scores{Novelty: 2, Clarity: 2, Relevance: 3, Technical: 2, Impact: 2}, s)
	for _, v := range []int{s.Novelty, s.Clarity, s.Relevance, s.Technical, s.Impact} {
		assert.LessOrEqual(t, v, 3)
	}
}
