package app

import (
	"context"
	"log/slog"
	"sort"

	"github.com/enrico07/feddit-api/internal/domain"
)

// Service is the application layer — the only component that references
// multiple domain components. It orchestrates the comment pipeline:
// resolve subfeddit, fetch, score, filter, sort.
type Service struct {
	store  domain.CommentStore
	scorer domain.SentimentScorer
}

// NewService creates the application layer service.
func NewService(store domain.CommentStore, scorer domain.SentimentScorer) *Service {
	return &Service{
		store:  store,
		scorer: scorer,
	}
}

// GetComments resolves the subfeddit named in filter, fetches its newest
// comments within the date bounds, scores each one, drops comments outside
// the polarity range, and optionally stable-sorts by score.
//
// Storage errors and domain.ErrSubfedditNotFound propagate unchanged; it is
// the transport layer's job to map them. The call is all-or-nothing: a
// failed resolve or fetch never yields partial results.
func (s *Service) GetComments(ctx context.Context, filter domain.CommentFilter) ([]domain.EnrichedComment, error) {
	subfedditID, err := s.store.ResolveSubfedditID(ctx, filter.Subfeddit)
	if err != nil {
		return nil, err
	}

	raw, err := s.store.FetchComments(ctx, subfedditID, filter.From, filter.To, filter.Limit)
	if err != nil {
		return nil, err
	}

	// Score in fetch order (newest first) and keep only comments within the
	// polarity range. Appending preserves relative order, so the filter is
	// stable.
	comments := make([]domain.EnrichedComment, 0, len(raw))
	for _, c := range raw {
		score, classification := s.scorer.Score(c.Text)
		if score < filter.MinPolarity || score > filter.MaxPolarity {
			continue
		}
		comments = append(comments, domain.EnrichedComment{
			ID:                     c.ID,
			Text:                   c.Text,
			PolarityScore:          score,
			PolarityClassification: classification,
		})
	}

	// Ties keep the newest-first order from the fetch.
	switch filter.Sort {
	case domain.SortAscending:
		sort.SliceStable(comments, func(i, j int) bool {
			return comments[i].PolarityScore < comments[j].PolarityScore
		})
	case domain.SortDescending:
		sort.SliceStable(comments, func(i, j int) bool {
			return comments[i].PolarityScore > comments[j].PolarityScore
		})
	}

	slog.DebugContext(ctx, "comments pipeline finished",
		"subfeddit", filter.Subfeddit,
		"fetched", len(raw),
		"returned", len(comments),
	)

	return comments, nil
}
