package domain

// --- Model types ---

// Subfeddit is a named topic container for comments. Read-only from this
// service's perspective; rows pre-exist in storage.
type Subfeddit struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
}

// Comment is a stored comment as fetched from the database. CreatedAt is
// unix seconds and is never surfaced in API responses.
type Comment struct {
	ID          int64  `db:"id"`
	SubfedditID int64  `db:"subfeddit_id"`
	Text        string `db:"text"`
	CreatedAt   int64  `db:"created_at"`
}

// EnrichedComment is a comment plus its sentiment polarity, computed at
// request time and never persisted.
type EnrichedComment struct {
	ID                     int64          `json:"id"`
	Text                   string         `json:"text"`
	PolarityScore          float64        `json:"polarity_score"`
	PolarityClassification Classification `json:"polarity_classification"`
}

// Classification is the three-way sentiment bucket derived from a polarity score.
type Classification string

const (
	ClassificationPositive Classification = "positive"
	ClassificationNegative Classification = "negative"
	ClassificationNeutral  Classification = "neutral"
)

// Polarity classification thresholds. Scores of exactly ±0.1 are neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// ClassifyPolarity buckets a polarity score in [-1, 1] into positive,
// negative, or neutral. The bucketing rule is fixed regardless of which
// scoring implementation produced the score.
func ClassifyPolarity(score float64) Classification {
	switch {
	case score > positiveThreshold:
		return ClassificationPositive
	case score < negativeThreshold:
		return ClassificationNegative
	default:
		return ClassificationNeutral
	}
}
