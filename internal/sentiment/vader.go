package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/enrico07/feddit-api/internal/domain"
)

// VaderScorer implements domain.SentimentScorer with govader's compound
// score. The analyzer is read-only after construction, so a single instance
// is safe for concurrent requests.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer builds a scorer with the default VADER lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of text in [-1, 1] and its
// classification. Deterministic for a given text.
func (s *VaderScorer) Score(text string) (float64, domain.Classification) {
	score := s.analyzer.PolarityScores(text).Compound

	// Compound is already normalized to [-1, 1]; clamp to keep the
	// contract airtight against lexicon edge cases.
	if score > 1 {
		score = 1
	} else if score < -1 {
		score = -1
	}

	return score, domain.ClassifyPolarity(score)
}
