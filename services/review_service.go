package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"

	"reviewhub/config"
	"reviewhub/db"
	"reviewhub/models"
	"reviewhub/review"
)

// ReviewService orchestrates one abstract submission: the deterministic
// scoring pipeline first, then the optional Gemini augmentations, then
// persistence. Configuration is injected at construction; nothing here reads
// ambient state.
type ReviewService struct {
	gemini *genai.Client
	model  string
}

// NewReviewService builds the orchestrator. When no Gemini API key is
// configured the service still produces complete deterministic reviews with
// the AI fields omitted.
func NewReviewService(ctx context.Context, cfg *config.Config) (*ReviewService, error) {
	svc := &ReviewService{model: cfg.Gemini.Model}
	if cfg.Gemini.ApiKey != "" {
		client, err := initGemini(ctx, cfg.Gemini.ApiKey)
		if err != nil {
			return nil, err
		}
		svc.gemini = client
	}
	return svc, nil
}

// AIEnabled reports whether narrative augmentation is configured.
func (s *ReviewService) AIEnabled() bool {
	return s.gemini != nil
}

// BuildReview runs the full analysis without persisting. The deterministic
// stages cannot fail; each AI augmentation degrades to an absent field when
// its call errors.
func (s *ReviewService) BuildReview(ctx context.Context, email, abstract string) *models.Review {
	features := review.Extract(abstract)
	scores := review.Score(features)

	r := &models.Review{
		Email:          email,
		Abstract:       abstract,
		Summary:        review.Summarize(abstract),
		Scores:         scores,
		Feedback:       review.Explain(scores, features),
		Recommendation: review.Recommend(scores),
		Methodology:    review.AnalyzeMethodology(features),
		Language:       review.LintLanguage(abstract, features),
		Screening:      review.Screen(features),
		CreatedAt:      time.Now().Unix(),
	}

	if s.gemini != nil {
		s.augment(ctx, r, features)
	}
	return r
}

// Analyze builds and persists a review. The review is returned even when the
// insert fails so the caller can still show the result.
func (s *ReviewService) Analyze(ctx context.Context, email, abstract string) (*models.Review, error) {
	r := s.BuildReview(ctx, email, abstract)

	id, err := db.SaveReview(ctx, r)
	if err != nil {
		return r, err
	}
	r.ID = id
	return r, nil
}

// augment runs every AI enhancement concurrently and joins before returning.
// Each task fails independently: an errored call logs and leaves its field
// empty without touching the others.
func (s *ReviewService) augment(ctx context.Context, r *models.Review, features review.Features) {
	var wg sync.WaitGroup

	run := func(name string, task func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := task(); err != nil {
				log.Printf("AI %s failed: %v", name, err)
			}
		}()
	}

	run("paper summary", func() error {
		out, err := s.generatePaperSummary(ctx, r.Abstract)
		if err == nil {
			r.PaperSummary = out
		}
		return err
	})

	run("review summary", func() error {
		out, err := s.generateReviewSummary(ctx, r.Abstract, features, r.Scores, r.Recommendation)
		if err == nil {
			r.ReviewSummary = out
		}
		return err
	})

	run("citation analysis", func() error {
		out, err := s.suggestCitations(ctx, r.Abstract)
		if err == nil {
			r.SuggestedCitations = out
		}
		return err
	})

	run("topic classification", func() error {
		out, err := s.classifyTopics(ctx, r.Abstract)
		if err == nil {
			r.Topics = out
		}
		return err
	})

	// Per-criterion narratives fan out further, one call per criterion.
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.CriteriaReviews = s.generateCriteriaReviews(ctx, r.Abstract, r.Scores, features)
	}()

	wg.Wait()
}

// generateCriteriaReviews runs the five criterion prompts concurrently and
// collects whatever succeeded. Returns nil when every call failed.
func (s *ReviewService) generateCriteriaReviews(ctx context.Context, abstract string, scores review.Scores, f review.Features) map[string]string {
	prompts := criterionPrompts(abstract, scores, f)

	var mu sync.Mutex
	var wg sync.WaitGroup
	results := make(map[string]string, len(prompts))

	for criterion, prompt := range prompts {
		wg.Add(1)
		go func(criterion, prompt string) {
			defer wg.Done()
			out, err := generateText(ctx, s.gemini, s.model, prompt)
			if err != nil {
				log.Printf("AI %s review failed: %v", criterion, err)
				return
			}
			mu.Lock()
			results[criterion] = out
			mu.Unlock()
		}(criterion, prompt)
	}
	wg.Wait()

	if len(results) == 0 {
		return nil
	}
	return results
}
