package domain

import "time"

// SortOrder controls optional polarity-based sorting of results.
type SortOrder string

const (
	// SortNone leaves results in newest-first storage order.
	SortNone SortOrder = ""
	// SortAscending orders results by polarity score, lowest first.
	SortAscending SortOrder = "asc"
	// SortDescending orders results by polarity score, highest first.
	SortDescending SortOrder = "desc"
)

// CommentFilter is a request-scoped query description. From and To, when set,
// are midnight-of-day timestamps; To is deliberately start-of-day, matching
// the original API behavior clients depend on.
type CommentFilter struct {
	Subfeddit   string
	From        *time.Time
	To          *time.Time
	Limit       int
	Sort        SortOrder
	MinPolarity float64
	MaxPolarity float64
}

// DefaultCommentLimit caps results when the client does not ask for a count.
const DefaultCommentLimit = 25

// NewCommentFilter returns a filter for the given subfeddit with the
// documented defaults: limit 25, full polarity range, no sorting.
func NewCommentFilter(subfeddit string) CommentFilter {
	return CommentFilter{
		Subfeddit:   subfeddit,
		Limit:       DefaultCommentLimit,
		MinPolarity: -1.0,
		MaxPolarity: 1.0,
	}
}
