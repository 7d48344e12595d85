package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPolarity_Positive(t *testing.T) {
	assert.Equal(t, ClassificationPositive, ClassifyPolarity(0.11))
	assert.Equal(t, ClassificationPositive, ClassifyPolarity(0.5))
	assert.Equal(t, ClassificationPositive, ClassifyPolarity(1.0))
}

func TestClassifyPolarity_Negative(t *testing.T) {
	assert.Equal(t, ClassificationNegative, ClassifyPolarity(-0.11))
	assert.Equal(t, ClassificationNegative, ClassifyPolarity(-0.5))
	assert.Equal(t, ClassificationNegative, ClassifyPolarity(-1.0))
}

func TestClassifyPolarity_NeutralBand(t *testing.T) {
	// The thresholds themselves belong to the neutral bucket.
	assert.Equal(t, ClassificationNeutral, ClassifyPolarity(0.1))
	assert.Equal(t, ClassificationNeutral, ClassifyPolarity(-0.1))
	assert.Equal(t, ClassificationNeutral, ClassifyPolarity(0))
	assert.Equal(t, ClassificationNeutral, ClassifyPolarity(0.05))
	assert.Equal(t, ClassificationNeutral, ClassifyPolarity(-0.05))
}

func TestClassifyPolarity_PartitionsRange(t *testing.T) {
	// Every score lands in exactly one bucket; sweep the full domain.
	for score := -1.0; score <= 1.0; score += 0.001 {
		c := ClassifyPolarity(score)
		switch {
		case score > 0.1:
			assert.Equal(t, ClassificationPositive, c, "score %f", score)
		case score < -0.1:
			assert.Equal(t, ClassificationNegative, c, "score %f", score)
		default:
			assert.Equal(t, ClassificationNeutral, c, "score %f", score)
		}
	}
}

func TestNewCommentFilter_Defaults(t *testing.T) {
	f := NewCommentFilter("dummy_topic_1")

	assert.Equal(t, "dummy_topic_1", f.Subfeddit)
	assert.Equal(t, 25, f.Limit)
	assert.Equal(t, SortNone, f.Sort)
	assert.InDelta(t, -1.0, f.MinPolarity, 0)
	assert.InDelta(t, 1.0, f.MaxPolarity, 0)
	assert.Nil(t, f.From)
	assert.Nil(t, f.To)
}
