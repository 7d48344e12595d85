// Package sentiment computes polarity scores for comment text using the
// VADER lexicon. Scoring runs inline per comment; it is CPU-only and fast
// enough that no worker pool is needed.
package sentiment
