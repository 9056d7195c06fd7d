package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsflow/hotaggr/pkg/models"
)

func digestBatch(ids ...int) []models.NewsDigest {
	out := make([]models.NewsDigest, len(ids))
	for i, id := range ids {
		out[i] = models.NewsDigest{ID: id, Title: "news"}
	}
	return out
}

func eventSet(ids ...int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestValidateAndFix(t *testing.T) {
	t.Run("exact coverage is valid", func(t *testing.T) {
		result := &models.AggregationResult{
			ExistingEvents: []models.ExistingEventAssignment{
				{EventID: 10, NewsIDs: []int{1, 2}, Confidence: 0.9},
			},
			NewEvents: []models.NewEventProposal{
				{NewsIDs: []int{3}, Title: "new event"},
			},
		}
		outcome := ValidateAndFix(digestBatch(1, 2, 3), eventSet(10), result)
		assert.True(t, outcome.IsValid)
		assert.Empty(t, outcome.MissingNews)
		assert.Empty(t, outcome.ExtraIDs)
	})

	t.Run("missing ids reported", func(t *testing.T) {
		result := &models.AggregationResult{
			NewEvents: []models.NewEventProposal{{NewsIDs: []int{1}, Title: "partial"}},
		}
		outcome := ValidateAndFix(digestBatch(1, 2, 3), eventSet(), result)
		assert.False(t, outcome.IsValid)
		assert.Equal(t, []int{2, 3}, outcome.MissingNews)
		require.NotNil(t, outcome.Fixed)
		assert.Equal(t, []int{1}, outcome.Fixed.ProcessedIDs())
	})

	t.Run("invented ids dropped as extras", func(t *testing.T) {
		result := &models.AggregationResult{
			NewEvents: []models.NewEventProposal{{NewsIDs: []int{1, 99}, Title: "x"}},
		}
		outcome := ValidateAndFix(digestBatch(1), eventSet(), result)
		assert.False(t, outcome.IsValid)
		assert.Equal(t, []int{99}, outcome.ExtraIDs)
		assert.Equal(t, []int{1}, outcome.Fixed.NewEvents[0].NewsIDs)
	})

	t.Run("unknown event assignment dropped, news surfaces as missing", func(t *testing.T) {
		result := &models.AggregationResult{
			ExistingEvents: []models.ExistingEventAssignment{
				{EventID: 999, NewsIDs: []int{1, 2}},
			},
		}
		outcome := ValidateAndFix(digestBatch(1, 2), eventSet(10), result)
		assert.False(t, outcome.IsValid)
		assert.Empty(t, outcome.Fixed.ExistingEvents)
		assert.Equal(t, []int{1, 2}, outcome.MissingNews)
	})

	t.Run("duplicate news id kept by first entry in document order", func(t *testing.T) {
		result := &models.AggregationResult{
			ExistingEvents: []models.ExistingEventAssignment{
				{EventID: 10, NewsIDs: []int{1}},
			},
			NewEvents: []models.NewEventProposal{
				{NewsIDs: []int{1, 2}, Title: "dup"},
			},
		}
		outcome := ValidateAndFix(digestBatch(1, 2), eventSet(10), result)
		assert.False(t, outcome.IsValid)
		assert.Equal(t, []int{1}, outcome.Fixed.ExistingEvents[0].NewsIDs)
		assert.Equal(t, []int{2}, outcome.Fixed.NewEvents[0].NewsIDs)
		assert.Empty(t, outcome.MissingNews)
		assert.Contains(t, outcome.Message, "duplicate news ids [1]")
	})

	t.Run("proposal emptied by filtering is dropped", func(t *testing.T) {
		result := &models.AggregationResult{
			NewEvents: []models.NewEventProposal{
				{NewsIDs: []int{1}, Title: "keeper"},
				{NewsIDs: []int{1}, Title: "duplicate-only"},
			},
		}
		outcome := ValidateAndFix(digestBatch(1), eventSet(), result)
		require.Len(t, outcome.Fixed.NewEvents, 1)
		assert.Equal(t, "keeper", outcome.Fixed.NewEvents[0].Title)
	})

	t.Run("sentiment normalized on proposals", func(t *testing.T) {
		result := &models.AggregationResult{
			NewEvents: []models.NewEventProposal{
				{NewsIDs: []int{1}, Title: "x", Sentiment: "angry"},
			},
		}
		outcome := ValidateAndFix(digestBatch(1), eventSet(), result)
		assert.Equal(t, models.SentimentNeutral, outcome.Fixed.NewEvents[0].Sentiment)
	})
}
