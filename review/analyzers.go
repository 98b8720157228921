package review

import (
	"fmt"
	"regexp"
)

var (
	passiveVoiceRe = regexp.MustCompile(`(?i)(is|are|was|were|be|being|been) [a-z]+ed\b`)
	jargonRe       = regexp.MustCompile(`(?i)\b(utilize|leverage|paradigm|synergy|optimize)\b`)
)

// MethodologyVerdict is the methodology-strength analysis result.
type MethodologyVerdict struct {
	Score    int    `json:"score" bson:"score"`
	Feedback string `json:"feedback" bson:"feedback"`
}

// AnalyzeMethodology grades methodological completeness on the presence of
// the methodology, evaluation, and validation keyword families.
func AnalyzeMethodology(f Features) MethodologyVerdict {
	var score int
	switch {
	case f.Methodology && f.Evaluation && f.Validation:
		score = 5
	case f.Methodology && f.Evaluation:
		score = 4
	case f.Methodology:
		score = 3
	default:
		score = 2
	}

	var feedback string
	switch {
	case score >= 4:
		feedback = "Strong methodological description with evaluation components."
	case score == 3:
		feedback = "Adequate methodology but could benefit from more evaluation details."
	default:
		feedback = "Methodological approach needs more clarity and validation."
	}

	return MethodologyVerdict{Score: score, Feedback: feedback}
}

// LanguageVerdict lists detected writing issues and their suggestions.
// Issues and suggestions are pairwise aligned by position: every rule that
// fires appends exactly one entry to each list, in rule-evaluation order
// (sentence length, sentence count, passive voice, jargon).
type LanguageVerdict struct {
	Issues      []string `json:"issues" bson:"issues"`
	Suggestions []string `json:"suggestions" bson:"suggestions"`
}

// LintLanguage runs the rule-based writing checks over the abstract.
// Average sentence length is character length over sentence count, with the
// count floored at 1 to guard empty input.
func LintLanguage(text string, f Features) LanguageVerdict {
	var v LanguageVerdict

	sentences := f.SentenceCount
	if sentences < 1 {
		sentences = 1
	}
	avgSentenceLength := float64(len(text)) / float64(sentences)

	if avgSentenceLength > 150 {
		v.Issues = append(v.Issues, "Long, complex sentences may reduce readability")
		v.Suggestions = append(v.Suggestions, "Break long sentences into shorter, clearer statements")
	}

	if f.SentenceCount < 4 {
		v.Issues = append(v.Issues, "Abstract may be too brief for comprehensive understanding")
		v.Suggestions = append(v.Suggestions, "Expand to 4-6 sentences covering problem, method, results, impact")
	}

	if passiveVoiceRe.MatchString(text) {
		v.Issues = append(v.Issues, "Passive voice usage detected")
		v.Suggestions = append(v.Suggestions, "Use active voice for stronger, clearer statements")
	}

	if jargonRe.MatchString(text) {
		v.Issues = append(v.Issues, "Academic jargon may reduce clarity")
		v.Suggestions = append(v.Suggestions, "Replace jargon with more direct, clear language")
	}

	return v
}

// Screening is the preliminary submission check.
type Screening struct {
	Passed bool     `json:"passed" bson:"passed"`
	Issues []string `json:"issues" bson:"issues"`
}

// Screen runs the six independent preliminary checks. Passed is true iff no
// check appended an issue.
func Screen(f Features) Screening {
	var issues []string

	if f.WordCount < 100 {
		issues = append(issues, fmt.Sprintf("Abstract too short (%d words, minimum 150 recommended)", f.WordCount))
	}
	if f.WordCount > 350 {
		issues = append(issues, fmt.Sprintf("Abstract too long (%d words, maximum 300 recommended)", f.WordCount))
	}
	if !f.ProblemStatement {
		issues = append(issues, "No clear problem statement identified")
	}
	if !f.Methodology {
		issues = append(issues, "Methodology description missing or unclear")
	}
	if !f.Results {
		issues = append(issues, "Results or findings not clearly stated")
	}
	if !f.Contribution {
		issues = append(issues, "Contribution or novelty not clearly articulated")
	}

	return Screening{Passed: len(issues) == 0, Issues: issues}
}
