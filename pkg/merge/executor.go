package merge

import (
	"context"
	"fmt"
	"time"

	"github.com/newsflow/hotaggr/ent"
	"github.com/newsflow/hotaggr/ent/event"
	"github.com/newsflow/hotaggr/ent/eventhistoryrelation"
	"github.com/newsflow/hotaggr/ent/newseventrelation"
	"github.com/newsflow/hotaggr/pkg/models"
	"github.com/newsflow/hotaggr/pkg/regions"
)

// executeBatchMerge applies one merge suggestion in a single transaction:
// the primary absorbs every child's relations and derived fields, children
// become status=merged, and one history row per child records the merge.
// Any failure rolls the whole suggestion back.
func (e *Engine) executeBatchMerge(ctx context.Context, s models.MergeSuggestion) error {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	group, err := tx.Event.Query().
		Where(event.IDIn(s.EventsToMerge...)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load merge group: %w", err)
	}
	if len(group) != len(s.EventsToMerge) {
		return fmt.Errorf("merge group incomplete: found %d of %d events", len(group), len(s.EventsToMerge))
	}

	var primary *ent.Event
	var children []*ent.Event
	for _, evt := range group {
		if evt.Status != models.EventStatusActive {
			return fmt.Errorf("event %d has status %d, want active", evt.ID, evt.Status)
		}
		if evt.ID == s.PrimaryEventID {
			primary = evt
		} else {
			children = append(children, evt)
		}
	}
	if primary == nil {
		return fmt.Errorf("primary event %d not in merge group", s.PrimaryEventID)
	}

	merged := computeMergedFields(primary, children, s)

	// Rewrite each child's relations onto the primary. A news item already
	// related to the primary keeps that row; the child's duplicate is
	// deleted rather than rewritten.
	primaryNews, err := tx.NewsEventRelation.Query().
		Where(newseventrelation.EventIDEQ(primary.ID)).
		Select(newseventrelation.FieldNewsID).
		Ints(ctx)
	if err != nil {
		return fmt.Errorf("failed to query primary relations: %w", err)
	}
	onPrimary := make(map[int]struct{}, len(primaryNews))
	for _, id := range primaryNews {
		onPrimary[id] = struct{}{}
	}

	for _, child := range children {
		rels, err := tx.NewsEventRelation.Query().
			Where(newseventrelation.EventIDEQ(child.ID)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to query relations of event %d: %w", child.ID, err)
		}
		for _, rel := range rels {
			if _, dup := onPrimary[rel.NewsID]; dup {
				if err := tx.NewsEventRelation.DeleteOne(rel).Exec(ctx); err != nil {
					return fmt.Errorf("failed to delete duplicate relation %d: %w", rel.ID, err)
				}
				continue
			}
			if _, err := tx.NewsEventRelation.UpdateOne(rel).
				SetEventID(primary.ID).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to rewrite relation %d: %w", rel.ID, err)
			}
			onPrimary[rel.NewsID] = struct{}{}
		}

		if _, err := tx.Event.UpdateOne(child).
			SetStatus(models.EventStatusMerged).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to mark event %d merged: %w", child.ID, err)
		}

		if _, err := tx.EventHistoryRelation.Create().
			SetParentEventID(primary.ID).
			SetChildEventID(child.ID).
			SetRelationType(eventhistoryrelation.RelationTypeBatchMerge).
			SetConfidenceScore(s.Confidence).
			SetDescription(s.Reason).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to create history row for event %d: %w", child.ID, err)
		}
	}

	// news_count reflects the actual relation rows after duplicate
	// deletion, not a naive sum over children.
	newsCount, err := tx.NewsEventRelation.Query().
		Where(newseventrelation.EventIDEQ(primary.ID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count primary relations: %w", err)
	}

	update := tx.Event.UpdateOne(primary).
		SetTitle(merged.title).
		SetDescription(merged.description).
		SetRegions(merged.regions).
		SetKeywords(merged.keywords).
		SetEntities(merged.entities).
		SetNewsCount(newsCount)
	if merged.firstNews != nil {
		update = update.SetFirstNewsTime(*merged.firstNews)
	}
	if merged.lastNews != nil {
		update = update.SetLastNewsTime(*merged.lastNews)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to update primary event %d: %w", primary.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit merge: %w", err)
	}
	return nil
}

type mergedFields struct {
	title       string
	description string
	regions     string
	keywords    string
	entities    string
	firstNews   *time.Time
	lastNews    *time.Time
}

// computeMergedFields derives the surviving event's fields from the whole
// group, with the LLM's merged fields taking precedence where provided.
func computeMergedFields(primary *ent.Event, children []*ent.Event, s models.MergeSuggestion) mergedFields {
	group := append([]*ent.Event{primary}, children...)

	out := mergedFields{
		title:       primary.Title,
		description: primary.Description,
		entities:    primary.Entities,
		firstNews:   primary.FirstNewsTime,
		lastNews:    primary.LastNewsTime,
	}
	if s.MergedTitle != "" {
		out.title = s.MergedTitle
	}
	if s.MergedDescription != "" {
		out.description = s.MergedDescription
	}

	var regionParts, keywordParts []string
	for _, evt := range group {
		regionParts = append(regionParts, evt.Regions)
		keywordParts = append(keywordParts, evt.Keywords)
		if len(evt.Entities) > len(out.entities) {
			out.entities = evt.Entities
		}
		if evt.FirstNewsTime != nil {
			out.firstNews = minTimePtr(out.firstNews, evt.FirstNewsTime)
		}
		if evt.LastNewsTime != nil {
			out.lastNews = maxTimePtr(out.lastNews, evt.LastNewsTime)
		}
	}
	regionParts = append(regionParts, s.MergedRegions...)
	out.regions = regions.Merge("", regionParts)

	if len(s.MergedKeywords) > 0 {
		out.keywords = regions.Merge("", s.MergedKeywords)
	} else {
		out.keywords = regions.Merge("", keywordParts)
	}

	return out
}

func minTimePtr(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil || a.Before(*b) {
		return a
	}
	return b
}

func maxTimePtr(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil || a.After(*b) {
		return a
	}
	return b
}
