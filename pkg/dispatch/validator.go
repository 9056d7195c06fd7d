package dispatch

import (
	"fmt"
	"strings"

	"github.com/newsflow/hotaggr/pkg/models"
)

// ValidateAndFix checks an aggregation result against its input batch and
// repairs what it can:
//   - news ids not in the batch are dropped (the model invented them)
//   - duplicate news ids keep their first occurrence in document order,
//     existing-event assignments before new-event proposals; the
//     conflict is noted in Message so it lands in the run log
//   - assignments referencing event ids outside the context set are
//     dropped entirely; their news ids surface as missing
//   - proposals and assignments left with no news ids are dropped
//
// Input ids claimed nowhere after repair are reported as MissingNews.
// Fixed is always non-nil and safe to persist; IsValid is true only when
// nothing had to change and nothing is missing.
func ValidateAndFix(batch []models.NewsDigest, ctxEventIDs map[int]struct{}, result *models.AggregationResult) models.ValidationOutcome {
	inputIDs := make(map[int]struct{}, len(batch))
	for _, n := range batch {
		inputIDs[n.ID] = struct{}{}
	}

	claimed := make(map[int]struct{})
	var extras, duplicates []int
	var notes []string

	// filterIDs keeps ids that belong to the batch and were not claimed
	// by an earlier entry.
	filterIDs := func(ids []int) []int {
		var kept []int
		for _, id := range ids {
			if _, ok := inputIDs[id]; !ok {
				extras = append(extras, id)
				continue
			}
			if _, ok := claimed[id]; ok {
				duplicates = append(duplicates, id)
				continue
			}
			claimed[id] = struct{}{}
			kept = append(kept, id)
		}
		return kept
	}

	fixed := &models.AggregationResult{}
	changed := false

	for _, assignment := range result.ExistingEvents {
		if _, ok := ctxEventIDs[assignment.EventID]; !ok {
			notes = append(notes, fmt.Sprintf("dropped assignment to unknown event %d", assignment.EventID))
			changed = true
			continue
		}
		kept := filterIDs(assignment.NewsIDs)
		if len(kept) != len(assignment.NewsIDs) {
			changed = true
		}
		if len(kept) == 0 {
			continue
		}
		assignment.NewsIDs = kept
		fixed.ExistingEvents = append(fixed.ExistingEvents, assignment)
	}

	for _, proposal := range result.NewEvents {
		kept := filterIDs(proposal.NewsIDs)
		if len(kept) != len(proposal.NewsIDs) {
			changed = true
		}
		if len(kept) == 0 {
			notes = append(notes, fmt.Sprintf("dropped empty new-event proposal %q", proposal.Title))
			continue
		}
		proposal.NewsIDs = kept
		proposal.Sentiment = models.NormalizeSentiment(proposal.Sentiment)
		fixed.NewEvents = append(fixed.NewEvents, proposal)
	}

	var missing []int
	for _, n := range batch {
		if _, ok := claimed[n.ID]; !ok {
			missing = append(missing, n.ID)
		}
	}

	if len(duplicates) > 0 {
		notes = append(notes, fmt.Sprintf("duplicate news ids %v attributed to their first entry", duplicates))
	}
	if len(extras) > 0 {
		notes = append(notes, fmt.Sprintf("dropped %d ids outside the batch", len(extras)))
	}
	if len(missing) > 0 {
		notes = append(notes, fmt.Sprintf("%d input ids unassigned", len(missing)))
	}

	return models.ValidationOutcome{
		IsValid:     !changed && len(missing) == 0 && len(extras) == 0,
		Fixed:       fixed,
		MissingNews: missing,
		ExtraIDs:    extras,
		Message:     strings.Join(notes, "; "),
	}
}
