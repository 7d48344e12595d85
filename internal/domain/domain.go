package domain

import (
	"context"
	"time"
)

// --- Interfaces ---

// CommentStore abstracts persistent comment storage. Implementations must
// leave their connection in a clean, reusable state after a failed call and
// must never hold a connection across requests.
type CommentStore interface {
	// ResolveSubfedditID maps an exact, case-sensitive subfeddit title to its
	// ID. Returns ErrSubfedditNotFound when no row matches.
	ResolveSubfedditID(ctx context.Context, name string) (int64, error)

	// FetchComments returns up to limit comments of the given subfeddit,
	// newest first. From and To, when non-nil, are inclusive bounds on the
	// comment creation timestamp.
	FetchComments(ctx context.Context, subfedditID int64, from, to *time.Time, limit int) ([]Comment, error)
}

// SentimentScorer computes a polarity score in [-1, 1] and its
// classification for a piece of text. Pure and deterministic for a given
// scoring implementation; safe for concurrent use.
type SentimentScorer interface {
	Score(text string) (float64, Classification)
}
