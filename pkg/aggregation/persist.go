package aggregation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/newsflow/hotaggr/ent"
	"github.com/newsflow/hotaggr/ent/event"
	"github.com/newsflow/hotaggr/ent/newseventrelation"
	"github.com/newsflow/hotaggr/pkg/models"
	"github.com/newsflow/hotaggr/pkg/regions"
)

// persistResult applies one batch result in a single transaction: relation
// inserts, event updates for existing-event assignments, and event
// creation for new-cluster proposals. Returns the news ids persisted and
// the number of events created.
func (e *Engine) persistResult(ctx context.Context, batch []models.NewsDigest, result *models.AggregationResult) ([]int, int, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	byID := make(map[int]models.NewsDigest, len(batch))
	for _, n := range batch {
		byID[n.ID] = n
	}

	// Relations that already exist are honored, not re-inserted. The
	// unique (news_id, event_id) index is the backstop for writers
	// racing outside this transaction.
	existing, err := existingRelations(ctx, tx, models.NewsIDs(batch))
	if err != nil {
		return nil, 0, err
	}

	var processed []int
	created := 0

	for _, assignment := range result.ExistingEvents {
		done, err := e.applyAssignment(ctx, tx, assignment, byID, existing)
		if err != nil {
			return nil, 0, err
		}
		processed = append(processed, done...)
	}

	for _, proposal := range result.NewEvents {
		done, err := e.applyProposal(ctx, tx, proposal, byID, existing)
		if err != nil {
			return nil, 0, err
		}
		if len(done) > 0 {
			created++
		}
		processed = append(processed, done...)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit aggregation batch: %w", err)
	}
	return processed, created, nil
}

// applyAssignment attaches news to an existing event and refreshes the
// event's derived fields. An event that is no longer active is skipped —
// its news ids surface in the recovery pass against a fresh context.
func (e *Engine) applyAssignment(ctx context.Context, tx *ent.Tx, assignment models.ExistingEventAssignment, byID map[int]models.NewsDigest, existing map[relationKey]struct{}) ([]int, error) {
	evt, err := tx.Event.Query().
		Where(
			event.IDEQ(assignment.EventID),
			event.StatusEQ(models.EventStatusActive),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load event %d: %w", assignment.EventID, err)
	}

	var processed []int
	var cities []string
	firstSeen, lastSeen := evt.FirstNewsTime, evt.LastNewsTime

	for _, newsID := range assignment.NewsIDs {
		news, ok := byID[newsID]
		if !ok {
			continue
		}
		key := relationKey{newsID: newsID, eventID: evt.ID}
		if _, dup := existing[key]; !dup {
			_, err := tx.NewsEventRelation.Create().
				SetNewsID(newsID).
				SetEventID(evt.ID).
				SetRelationType(newseventrelation.RelationTypeAssignedToExisting).
				SetConfidenceScore(assignment.Confidence).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to create relation news=%d event=%d: %w", newsID, evt.ID, err)
			}
			existing[key] = struct{}{}
		}
		processed = append(processed, newsID)
		cities = append(cities, news.CityName)
		firstSeen = minTime(firstSeen, news.FirstSeenAt)
		lastSeen = maxTime(lastSeen, news.FirstSeenAt)
	}
	if len(processed) == 0 {
		return nil, nil
	}

	count, err := tx.NewsEventRelation.Query().
		Where(newseventrelation.EventIDEQ(evt.ID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count relations for event %d: %w", evt.ID, err)
	}

	update := tx.Event.UpdateOneID(evt.ID).
		SetNewsCount(count).
		SetRegions(regions.Merge(evt.Regions, cities))
	if firstSeen != nil {
		update = update.SetFirstNewsTime(*firstSeen)
	}
	if lastSeen != nil {
		update = update.SetLastNewsTime(*lastSeen)
	}
	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update event %d: %w", evt.ID, err)
	}
	return processed, nil
}

// applyProposal creates a new event from a cluster proposal and attaches
// its news. Proposals whose news ids all vanished from the batch map are
// skipped without creating an empty event.
func (e *Engine) applyProposal(ctx context.Context, tx *ent.Tx, proposal models.NewEventProposal, byID map[int]models.NewsDigest, existing map[relationKey]struct{}) ([]int, error) {
	var members []models.NewsDigest
	for _, newsID := range proposal.NewsIDs {
		if news, ok := byID[newsID]; ok {
			members = append(members, news)
		}
	}
	if len(members) == 0 {
		return nil, nil
	}

	var cities []string
	var firstSeen, lastSeen *time.Time
	for _, news := range members {
		cities = append(cities, news.CityName)
		firstSeen = minTime(firstSeen, news.FirstSeenAt)
		lastSeen = maxTime(lastSeen, news.FirstSeenAt)
	}

	create := tx.Event.Create().
		SetTitle(proposal.Title).
		SetDescription(proposal.Summary).
		SetEventType(proposal.EventType).
		SetSentiment(event.Sentiment(models.NormalizeSentiment(proposal.Sentiment))).
		SetRegions(regions.Merge(proposal.Region, cities)).
		SetKeywords(strings.Join(proposal.Tags, ",")).
		SetConfidenceScore(proposal.Confidence).
		SetNewsCount(len(members)).
		SetStatus(models.EventStatusActive)
	if firstSeen != nil {
		create = create.SetFirstNewsTime(*firstSeen)
	}
	if lastSeen != nil {
		create = create.SetLastNewsTime(*lastSeen)
	}
	evt, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create event %q: %w", proposal.Title, err)
	}

	var processed []int
	for _, news := range members {
		_, err := tx.NewsEventRelation.Create().
			SetNewsID(news.ID).
			SetEventID(evt.ID).
			SetRelationType(newseventrelation.RelationTypeAssignedToNew).
			SetConfidenceScore(proposal.Confidence).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create relation news=%d event=%d: %w", news.ID, evt.ID, err)
		}
		existing[relationKey{newsID: news.ID, eventID: evt.ID}] = struct{}{}
		processed = append(processed, news.ID)
	}
	return processed, nil
}

type relationKey struct {
	newsID  int
	eventID int
}

func existingRelations(ctx context.Context, tx *ent.Tx, newsIDs []int) (map[relationKey]struct{}, error) {
	rels, err := tx.NewsEventRelation.Query().
		Where(newseventrelation.NewsIDIn(newsIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing relations: %w", err)
	}
	out := make(map[relationKey]struct{}, len(rels))
	for _, r := range rels {
		out[relationKey{newsID: r.NewsID, eventID: r.EventID}] = struct{}{}
	}
	return out, nil
}

func minTime(current *time.Time, candidate time.Time) *time.Time {
	if candidate.IsZero() {
		return current
	}
	if current == nil || candidate.Before(*current) {
		return &candidate
	}
	return current
}

func maxTime(current *time.Time, candidate time.Time) *time.Time {
	if candidate.IsZero() {
		return current
	}
	if current == nil || candidate.After(*current) {
		return &candidate
	}
	return current
}
