package services

import (
	"context"
	"encoding/json"
	"fmt"

	"reviewhub/models"
	"reviewhub/review"
)

func truncateForPrompt(text string, max int) string {
	if len(text) > max {
		return text[:max]
	}
	return text
}

// generatePaperSummary asks the model for a short structured summary of the
// abstract itself.
func (s *ReviewService) generatePaperSummary(ctx context.Context, abstract string) (string, error) {
	prompt := fmt.Sprintf(`Generate a concise summary (3-4 sentences) of this research paper abstract. Highlight:
- Main contributions and innovations
- Methodology used
- Key results or findings

ABSTRACT: "%s"

Provide a clear, structured summary that captures the essence of the work.`, truncateForPrompt(abstract, 1000))

	return generateText(ctx, s.gemini, s.model, prompt)
}

// generateReviewSummary asks the model for an overall peer-review paragraph
// conditioned on the deterministic scores and decision.
func (s *ReviewService) generateReviewSummary(ctx context.Context, abstract string, f review.Features, scores review.Scores, rec review.Recommendation) (string, error) {
	prompt := fmt.Sprintf(
		`Write brief peer review (3-4 sentences) for: "%s". Words: %d. Scores: N%d, C%d, R%d, T%d, I%d. Decision: %s. Be personalized.`,
		abstract, f.WordCount, scores.Novelty, scores.Clarity, scores.Relevance, scores.Technical, scores.Impact, rec.Decision)

	return generateText(ctx, s.gemini, s.model, prompt)
}

// criterionPrompts builds the five independent per-criterion review prompts.
// Each one feeds the model the deterministic score plus the lexical signals
// that produced it, so the narrative stays anchored to the rule engine.
func criterionPrompts(abstract string, scores review.Scores, f review.Features) map[string]string {
	return map[string]string{
		"novelty": fmt.Sprintf(
			`Review NOVELTY (2-3 sentences): "%s". Words: %d. Has novelty keywords: %t. Score: %d/5. Be specific about THIS abstract.`,
			abstract, f.WordCount, f.Novelty, scores.Novelty),
		"clarity": fmt.Sprintf(
			`Review CLARITY (2-3 sentences): "%s". Words: %d. Has methods: %t. Score: %d/5. Be specific about THIS abstract.`,
			abstract, f.WordCount, f.Methodology, scores.Clarity),
		"relevance": fmt.Sprintf(
			`Review RELEVANCE (2-3 sentences): "%s". Has keywords: %t. Score: %d/5. Be specific about THIS abstract.`,
			abstract, f.Relevance, scores.Relevance),
		"technical": fmt.Sprintf(
			`Review TECHNICAL (2-3 sentences): "%s". Has methods: %t. Score: %d/5. Be specific about THIS abstract.`,
			abstract, f.Methodology, scores.Technical),
		"impact": fmt.Sprintf(
			`Review IMPACT (2-3 sentences): "%s". Has impact language: %t. Score: %d/5. Be specific about THIS abstract.`,
			abstract, f.Impact, scores.Impact),
	}
}

// suggestCitations asks the model for papers the abstract should cite.
// The model is instructed to answer with a bare JSON array; anything else is
// a malformed response and reported as an error.
func (s *ReviewService) suggestCitations(ctx context.Context, abstract string) ([]string, error) {
	prompt := fmt.Sprintf(`Analyze this research abstract and suggest 2-3 key papers that should be cited for proper context and comparison. Focus on seminal works or recent important papers in the field.

ABSTRACT: "%s"

Return only the paper titles as a JSON array: ["Paper Title 1", "Paper Title 2", "Paper Title 3"]`, truncateForPrompt(abstract, 800))

	out, err := generateText(ctx, s.gemini, s.model, prompt)
	if err != nil {
		return nil, err
	}

	var citations []string
	if err := json.Unmarshal([]byte(out), &citations); err != nil {
		return nil, fmt.Errorf("failed to parse citations JSON: %w", err)
	}
	return citations, nil
}

// classifyTopics asks the model for topic tags plus a confidence value.
func (s *ReviewService) classifyTopics(ctx context.Context, abstract string) (*models.TopicClassification, error) {
	prompt := fmt.Sprintf(`Classify this research abstract into 3-5 relevant academic topics or keywords. Focus on:
- Research methodology (e.g., "deep learning", "statistical analysis")
- Application domain (e.g., "healthcare", "climate science")
- Technical focus (e.g., "optimization", "natural language processing")

ABSTRACT: "%s"

Return as JSON: {"topics": ["topic1", "topic2", "topic3"], "confidence": 0.85}`, truncateForPrompt(abstract, 800))

	out, err := generateText(ctx, s.gemini, s.model, prompt)
	if err != nil {
		return nil, err
	}

	var tc models.TopicClassification
	if err := json.Unmarshal([]byte(out), &tc); err != nil {
		return nil, fmt.Errorf("failed to parse topic JSON: %w", err)
	}
	return &tc, nil
}
