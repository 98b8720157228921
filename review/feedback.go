package review

import "fmt"

// CriterionFeedback pairs the justification for a score with a targeted
// improvement suggestion.
type CriterionFeedback struct {
	Justification string `json:"justification" bson:"justification"`
	Improvement   string `json:"improvement" bson:"improvement"`
}

// Feedback holds per-criterion feedback for one review.
type Feedback struct {
	Novelty   CriterionFeedback `json:"novelty" bson:"novelty"`
	Clarity   CriterionFeedback `json:"clarity" bson:"clarity"`
	Relevance CriterionFeedback `json:"relevance" bson:"relevance"`
	Technical CriterionFeedback `json:"technical" bson:"technical"`
	Impact    CriterionFeedback `json:"impact" bson:"impact"`
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

// Explain selects a three-tier template per criterion (strong >=4,
// moderate ==3, weak <=2) and interpolates the abstract's concrete word
// count, sentence count, and keyword presence so the message stays specific
// to the submission. Criteria are evaluated independently. Strong-tier
// improvement texts are maintenance suggestions, never deficiency
// statements.
func Explain(s Scores, f Features) Feedback {
	return Feedback{
		Novelty:   noveltyFeedback(s.Novelty, f),
		Clarity:   clarityFeedback(s.Clarity, f),
		Relevance: relevanceFeedback(s.Relevance, f),
		Technical: technicalFeedback(s.Technical, f),
		Impact:    impactFeedback(s.Impact, f),
	}
}

func noveltyFeedback(score int, f Features) CriterionFeedback {
	switch {
	case score >= 4:
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your abstract effectively demonstrates originality. The research presents a clear advancement in the field. %s This level of novelty is exactly what conferences seek.",
				pick(f.Methodology,
					"The innovative methodology you describe sets this work apart.",
					"Your conceptual contribution is clearly articulated.")),
			Improvement: "To maintain excellence: Continue to explicitly state what makes this work different. Consider adding specific comparisons to position your innovation.",
		}
	case score == 3:
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your abstract shows potential for originality, but the novelty is not coming through as strongly as it could. %s",
				pick(!f.Novelty,
					"You have not used key phrases that signal innovation to reviewers.",
					"The innovation exists but is not sufficiently distinguished from prior work.")),
			Improvement: fmt.Sprintf(
				"Personalized improvements: (1) Add novelty markers like \"This is the first study to...\" (2) %s (3) Replace generic verbs with innovation verbs.",
				pick(f.WordCount < 100,
					"Expand to 150-200 words for more detail.",
					"Use existing space to state what is different.")),
		}
	default:
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your abstract lacks clear indicators of originality. %s %s",
				pick(!f.Novelty, "There are no explicit novelty statements.", ""),
				pick(f.WordCount < 80,
					fmt.Sprintf("At only %d words, there is insufficient detail.", f.WordCount),
					"It reads like an implementation rather than novel contribution.")),
			Improvement: fmt.Sprintf(
				"Critical improvements: (1) Add explicit novelty statements. (2) %s (3) State clearly what is unique.",
				pick(f.WordCount < 100,
					fmt.Sprintf("Expand from %d to 150+ words.", f.WordCount),
					"Dedicate sentences to innovation.")),
		}
	}
}

func clarityFeedback(score int, f Features) CriterionFeedback {
	switch {
	case score >= 4:
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your abstract is well-written and easy to follow. %s %s",
				pick(f.SentenceCount >= 4,
					fmt.Sprintf("The %d sentences provide good structure.", f.SentenceCount),
					"The writing is concise yet complete."),
				pick(f.WordCount >= 100 && f.WordCount <= 300,
					fmt.Sprintf("Your length (%d words) is optimal.", f.WordCount),
					"Your writing is appropriately detailed.")),
			Improvement: "Maintaining clarity: Read aloud to catch awkward phrases. Ensure every technical term is necessary.",
		}
	case score == 3:
		var length string
		switch {
		case f.WordCount < 100:
			length = fmt.Sprintf("Only %d words - aim for 150+.", f.WordCount)
		case f.WordCount > 300:
			length = fmt.Sprintf("%d words is too long.", f.WordCount)
		}
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your abstract communicates the basic idea but has clarity issues. %s %s",
				length,
				pick(!f.Methodology, "Missing methodology description.", "")),
			Improvement: fmt.Sprintf(
				"Specific fixes: (1) Reorganize into Problem, Method, Results, Impact. (2) %s (3) Adjust length appropriately.",
				pick(f.SentenceCount < 4,
					"Add more sentences (aim for 5-6).",
					"Improve transitions.")),
		}
	default:
		var length string
		switch {
		case f.WordCount < 80:
			length = fmt.Sprintf("Only %d words.", f.WordCount)
		case f.WordCount > 350:
			length = fmt.Sprintf("%d words is overwhelming.", f.WordCount)
		}
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your abstract has significant clarity problems. %s %s",
				length,
				pick(!f.Methodology, "No methodology explanation.", "")),
			Improvement: "Critical rewrites needed: (1) Follow template structure. (2) Adjust to 150-200 words. (3) Add 5-6 clear sentences. (4) Get peer review.",
		}
	}
}

func relevanceFeedback(score int, f Features) CriterionFeedback {
	switch {
	case score >= 4:
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your work demonstrates excellent conference fit. %s",
				pick(f.Relevance,
					"Your focus aligns perfectly with current priorities.",
					"Clearly relevant to the community.")),
			Improvement: "Maintain relevance: Continue connecting to conference themes explicitly.",
		}
	case score == 3:
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your topic has potential but connection to conference is not clear. %s",
				pick(!f.Relevance,
					"Does not mention key themes.",
					"Significance not articulated.")),
			Improvement: "Improvements: (1) Add conference alignment statement. (2) Incorporate hot-topic keywords. (3) Explain why this matters.",
		}
	default:
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your abstract raises concerns about fit. %s",
				pick(!f.Relevance,
					"No recognizable conference keywords.",
					"Relevance unclear.")),
			Improvement: "Urgent fixes: (1) Verify conference fit. (2) Add sentences connecting to themes. (3) Use conference keywords explicitly.",
		}
	}
}

func technicalFeedback(score int, f Features) CriterionFeedback {
	switch {
	case score >= 4:
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your abstract demonstrates sound technical approach. %s",
				pick(f.Methodology,
					"You clearly describe methodology.",
					"Technical foundation is evident.")),
			Improvement: "Maintain strength: Consider adding validation details if space allows.",
		}
	case score == 3:
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your abstract suggests reasonable approach but lacks detail. %s",
				pick(!f.Methodology,
					"Reviewers do not understand HOW you did the research.",
					"Methods need more explanation.")),
			Improvement: "Improvements: (1) Add methodology section. (2) Include technical terms. (3) Add validation details.",
		}
	default:
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your abstract has serious technical weaknesses. %s",
				pick(!f.Methodology,
					"NO methodology description.",
					"Poorly explained.")),
			Improvement: "Critical improvements: (1) Add complete methods section. (2) Include technical terminology. (3) Add validation.",
		}
	}
}

func impactFeedback(score int, f Features) CriterionFeedback {
	switch {
	case score >= 4:
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your work demonstrates strong potential impact. %s",
				pick(f.Impact,
					"Impact language effectively communicates significance.",
					"Contributions clearly articulated.")),
			Improvement: "Maximize impact: Continue emphasizing practical significance.",
		}
	case score == 3:
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your abstract suggests value but impact is not convincing. %s",
				pick(!f.Impact,
					"Lacks significance-signaling words.",
					"Not compellingly presented.")),
			Improvement: "Improvements: (1) Add explicit impact statement. (2) Use impact language. (3) State who benefits.",
		}
	default:
		return CriterionFeedback{
			Justification: fmt.Sprintf(
				"Your abstract fails to demonstrate impact. %s",
				pick(!f.Impact,
					"Absolutely no impact language.",
					"Poorly articulated.")),
			Improvement: "Urgent fixes: (1) Add comprehensive impact section. (2) Answer why this matters. (3) Use strong impact language.",
		}
	}
}
