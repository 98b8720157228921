package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"reviewhub/review"
)

// TopicClassification is the AI-assigned topic tag set for an abstract.
type TopicClassification struct {
	Topics     []string `json:"topics" bson:"topics"`
	Confidence float64  `json:"confidence" bson:"confidence"`
}

// Review is one persisted abstract assessment. It is assembled once per
// submission and never mutated afterward; a resubmission produces a new
// document. The AI-sourced fields are nil/empty when no model is configured
// or an augmentation call failed.
type Review struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Abstract string             `json:"abstract" bson:"abstract"`
	Summary  string             `json:"summary" bson:"summary"`

	Scores         review.Scores             `json:"scores" bson:"scores"`
	Feedback       review.Feedback           `json:"feedback" bson:"feedback"`
	Recommendation review.Recommendation     `json:"recommendation" bson:"recommendation"`
	Methodology    review.MethodologyVerdict `json:"methodologyAnalysis" bson:"methodologyAnalysis"`
	Language       review.LanguageVerdict    `json:"languageAnalysis" bson:"languageAnalysis"`
	Screening      review.Screening          `json:"preliminaryCheck" bson:"preliminaryCheck"`

	PaperSummary       string               `json:"paperSummary,omitempty" bson:"paperSummary,omitempty"`
	ReviewSummary      string               `json:"aiReviewSummary,omitempty" bson:"aiReviewSummary,omitempty"`
	CriteriaReviews    map[string]string    `json:"aiCriteriaReviews,omitempty" bson:"aiCriteriaReviews,omitempty"`
	SuggestedCitations []string             `json:"suggestedCitations,omitempty" bson:"suggestedCitations,omitempty"`
	Topics             *TopicClassification `json:"topicClassification,omitempty" bson:"topicClassification,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
}

type reportCriterion struct {
	label    string
	score    int
	feedback review.CriterionFeedback
}

func (r Review) reportCriteria() []reportCriterion {
	return []reportCriterion{
		{"NOVELTY", r.Scores.Novelty, r.Feedback.Novelty},
		{"CLARITY", r.Scores.Clarity, r.Feedback.Clarity},
		{"RELEVANCE", r.Scores.Relevance, r.Feedback.Relevance},
		{"TECHNICAL", r.Scores.Technical, r.Feedback.Technical},
		{"IMPACT", r.Scores.Impact, r.Feedback.Impact},
	}
}

// Report renders the downloadable plain-text review report. It is derived
// entirely from the stored fields, with no recomputation.
func (r Review) Report() string {
	var b strings.Builder

	b.WriteString("ABSTRACT REVIEW REPORT\n\n")
	b.WriteString("SUMMARY:\n" + r.Summary + "\n\n")

	if r.PaperSummary != "" {
		b.WriteString("PAPER SUMMARY:\n" + r.PaperSummary + "\n\n")
	}
	if r.ReviewSummary != "" {
		b.WriteString("AI REVIEW SUMMARY:\n" + r.ReviewSummary + "\n\n")
	}

	b.WriteString("EVALUATION RESULTS:\n\n")
	for _, c := range r.reportCriteria() {
		fmt.Fprintf(&b, "%s: %d/5\n", c.label, c.score)
		fmt.Fprintf(&b, "Assessment: %s\n", c.feedback.Justification)
		fmt.Fprintf(&b, "Improvement: %s\n\n", c.feedback.Improvement)
	}

	fmt.Fprintf(&b, "METHODOLOGY ANALYSIS: %d/5\n%s\n\n", r.Methodology.Score, r.Methodology.Feedback)

	b.WriteString("LANGUAGE QUALITY:\n")
	if len(r.Language.Issues) == 0 {
		b.WriteString("No issues found.\n")
	}
	for i, issue := range r.Language.Issues {
		fmt.Fprintf(&b, "- Issue: %s\n", issue)
		if i < len(r.Language.Suggestions) {
			fmt.Fprintf(&b, "  Suggestion: %s\n", r.Language.Suggestions[i])
		}
	}
	b.WriteString("\n")

	b.WriteString("PRELIMINARY SCREENING:\n")
	if r.Screening.Passed {
		b.WriteString("Passes all preliminary checks.\n")
	}
	for _, issue := range r.Screening.Issues {
		fmt.Fprintf(&b, "- %s\n", issue)
	}
	b.WriteString("\n")

	if len(r.SuggestedCitations) > 0 {
		b.WriteString("SUGGESTED REFERENCES:\n")
		for _, c := range r.SuggestedCitations {
			fmt.Fprintf(&b, "- %s\n", c)
		}
		b.WriteString("\n")
	}
	if r.Topics != nil && len(r.Topics.Topics) > 0 {
		fmt.Fprintf(&b, "TOPICS: %s (confidence %.0f%%)\n\n",
			strings.Join(r.Topics.Topics, ", "), r.Topics.Confidence*100)
	}

	fmt.Fprintf(&b, "RECOMMENDATION: %s\n", r.Recommendation.Decision)
	b.WriteString(r.Recommendation.Reasoning + "\n")

	return b.String()
}
