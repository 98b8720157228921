// Package review implements the deterministic abstract-review engine:
// lexical feature extraction, per-criterion scoring, feedback generation,
// the overall recommendation, and the auxiliary rule-based analyzers.
// Everything here is a pure function of its input; network-backed
// enhancements live in the services package.
package review

import (
	"regexp"
	"strings"
)

// Keyword families. The lists are part of the scoring contract and must not
// be reordered or extended without revisiting every rule that reads them.
var (
	noveltyRe     = regexp.MustCompile(`(?i)novel|new|innovative|first|pioneering|unique|original`)
	methodologyRe = regexp.MustCompile(`(?i)method|approach|algorithm|technique|framework|model|system|using|employ|apply`)
	resultsRe     = regexp.MustCompile(`(?i)result|finding|demonstrate|show|achieve|improve|performance`)
	impactRe      = regexp.MustCompile(`(?i)improve|enhance|address|solve|significant|enable|transform|benefit`)
	technicalRe   = regexp.MustCompile(`(?i)algorithm|framework|model|system|analysis|data|computation|optimization`)
	relevanceRe   = regexp.MustCompile(`(?i)AI|machine learning|sustainability|healthcare|climate|education|technology|deep learning|neural|automated`)
	problemRe     = regexp.MustCompile(`(?i)problem|challenge|issue|gap|limitation`)
	contributionRe = regexp.MustCompile(`(?i)contribution|novel|innovative|advance|improve`)

	// Families used only by the scorer and the methodology analyzer.
	structureRe  = regexp.MustCompile(`(?i)method|approach|result|conclusion|finding`)
	evaluationRe = regexp.MustCompile(`(?i)evaluate|result|finding|performance|accuracy|metric|comparison`)
	validationRe = regexp.MustCompile(`(?i)validate|verify|test|experiment|case study|dataset`)

	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
)

// Features is an immutable lexical snapshot of an abstract. It is recomputed
// fresh on every analysis; callers must not mutate it between stages.
type Features struct {
	WordCount     int `json:"wordCount" bson:"wordCount"`
	SentenceCount int `json:"sentenceCount" bson:"sentenceCount"`

	Novelty          bool `json:"novelty" bson:"novelty"`
	Methodology      bool `json:"methodology" bson:"methodology"`
	Results          bool `json:"results" bson:"results"`
	Impact           bool `json:"impact" bson:"impact"`
	Technical        bool `json:"technical" bson:"technical"`
	Relevance        bool `json:"relevance" bson:"relevance"`
	ProblemStatement bool `json:"problemStatement" bson:"problemStatement"`
	Contribution     bool `json:"contribution" bson:"contribution"`

	Structure  bool `json:"structure" bson:"structure"`
	Evaluation bool `json:"evaluation" bson:"evaluation"`
	Validation bool `json:"validation" bson:"validation"`
}

// Extract derives the lexical features of an abstract. It never fails: an
// empty or whitespace-only string yields zero counts and all-false flags.
// Word count is the number of whitespace-delimited tokens (strings.Fields,
// so "" counts 0 words). Sentence count is the number of segments with
// non-blank text after splitting on '.', '!' and '?'.
func Extract(text string) Features {
	return Features{
		WordCount:     len(strings.Fields(text)),
		SentenceCount: countSentences(text),

		Novelty:          noveltyRe.MatchString(text),
		Methodology:      methodologyRe.MatchString(text),
		Results:          resultsRe.MatchString(text),
		Impact:           impactRe.MatchString(text),
		Technical:        technicalRe.MatchString(text),
		Relevance:        relevanceRe.MatchString(text),
		ProblemStatement: problemRe.MatchString(text),
		Contribution:     contributionRe.MatchString(text),

		Structure:  structureRe.MatchString(text),
		Evaluation: evaluationRe.MatchString(text),
		Validation: validationRe.MatchString(text),
	}
}

func countSentences(text string) int {
	n := 0
	for _, seg := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(seg) != "" {
			n++
		}
	}
	return n
}

// Summarize truncates an abstract to the short summary stored alongside the
// review: anything over 150 characters is cut at 147 and ellipsized.
func Summarize(text string) string {
	if len(text) > 150 {
		return text[:147] + "..."
	}
	return text
}
