package models

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewhub/review"
)

func sampleReview(abstract string) Review {
	f := review.Extract(abstract)
	scores := review.Score(f)
	return Review{
		Email:          "alice@example.com",
		Abstract:       abstract,
		Summary:        review.Summarize(abstract),
		Scores:         scores,
		Feedback:       review.Explain(scores, f),
		Recommendation: review.Recommend(scores),
		Methodology:    review.AnalyzeMethodology(f),
		Language:       review.LintLanguage(abstract, f),
		Screening:      review.Screen(f),
	}
}

func TestReportContainsAllSections(t *testing.T) {
	r := sampleReview("We propose a novel method to address a key problem in healthcare. " +
		"Results show improved accuracy on a public dataset. " +
		"Our contribution enables faster screening. " +
		"The approach was validated in two hospitals.")
	out := r.Report()

	require.True(t, strings.HasPrefix(out, "ABSTRACT REVIEW REPORT\n\n"))
	for _, section := range []string{
		"SUMMARY:",
		"EVALUATION RESULTS:",
		"METHODOLOGY ANALYSIS:",
		"LANGUAGE QUALITY:",
		"PRELIMINARY SCREENING:",
		"RECOMMENDATION:",
	} {
		assert.Contains(t, out, section)
	}

	// Every criterion line carries its score, assessment, and improvement.
	for label, score := range map[string]int{
		"NOVELTY":   r.Scores.Novelty,
		"CLARITY":   r.Scores.Clarity,
		"RELEVANCE": r.Scores.Relevance,
		"TECHNICAL": r.Scores.Technical,
		"IMPACT":    r.Scores.Impact,
	} {
		assert.Contains(t, out, fmt.Sprintf("%s: %d/5", label, score))
	}
	assert.Contains(t, out, "Assessment: "+r.Feedback.Novelty.Justification)
	assert.Contains(t, out, "Improvement: "+r.Feedback.Impact.Improvement)
	assert.Contains(t, out, string(r.Recommendation.Decision))
	assert.Contains(t, out, r.Recommendation.Reasoning)
}

func TestReportPairsLanguageFindings(t *testing.T) {
	r := sampleReview("The paradigm is utilized by experts. Synergy was achieved by the team.")
	require.NotEmpty(t, r.Language.Issues)
	out := r.Report()

	for i, issue := range r.Language.Issues {
		assert.Contains(t, out, "- Issue: "+issue)
		assert.Contains(t, out, "  Suggestion: "+r.Language.Suggestions[i])
	}
	assert.NotContains(t, out, "No issues found.")
}

func TestReportCleanLanguageAndScreening(t *testing.T) {
	words := []string{"We", "study", "a", "problem", "with", "a", "new", "method."}
	for len(words) < 150 {
		words = append(words, "Results", "show", "our", "contribution", "helps", "readers.")
	}
	abstract := strings.Join(words, " ")
	r := sampleReview(abstract)
	require.True(t, r.Screening.Passed)

	out := r.Report()
	assert.Contains(t, out, "Passes all preliminary checks.")
}

func TestReportOmitsEmptyAISections(t *testing.T) {
	r := sampleReview("A short abstract.")
	out := r.Report()
	assert.NotContains(t, out, "PAPER SUMMARY:")
	assert.NotContains(t, out, "AI REVIEW SUMMARY:")
	assert.NotContains(t, out, "SUGGESTED REFERENCES:")
	assert.NotContains(t, out, "TOPICS:")
}

func TestReportIncludesAISections(t *testing.T) {
	r := sampleReview("A short abstract.")
	r.PaperSummary = "Summarized by the model."
	r.ReviewSummary = "Solid overall."
	r.SuggestedCitations = []string{"Doe et al. 2024. Screening at scale."}
	r.Topics = &TopicClassification{Topics: []string{"NLP", "Healthcare"}, Confidence: 0.87}

	out := r.Report()
	assert.Contains(t, out, "PAPER SUMMARY:\nSummarized by the model.")
	assert.Contains(t, out, "AI REVIEW SUMMARY:\nSolid overall.")
	assert.Contains(t, out, "- Doe et al. 2024. Screening at scale.")
	assert.Contains(t, out, "TOPICS: NLP, Healthcare (confidence 87%)")
}

// The report is a pure function of the stored document.
func TestReportDeterministic(t *testing.T) {
	r := sampleReview("We propose a novel approach to a hard problem. Results improve on prior work. This contribution matters.")
	assert.Equal(t, r.Report(), r.Report())
}
