package services

import (
	"context"
	"fmt"
	"time"

	"github.com/newsflow/hotaggr/ent"
	"github.com/newsflow/hotaggr/ent/event"
	"github.com/newsflow/hotaggr/pkg/models"
)

// EventService provides read access to aggregated events. Writes happen
// inside engine transactions, not here.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// RecentActiveDigests returns up to limit active events created within
// maxAge, newest first. These form the assignment context for the LLM.
func (s *EventService) RecentActiveDigests(ctx context.Context, limit int, maxAge time.Duration) ([]models.EventDigest, error) {
	q := s.client.Event.Query().
		Where(event.StatusEQ(models.EventStatusActive))
	if maxAge > 0 {
		q = q.Where(event.CreatedAtGTE(time.Now().Add(-maxAge)))
	}
	events, err := q.
		Order(ent.Desc(event.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent active events: %w", err)
	}

	digests := make([]models.EventDigest, len(events))
	for i, e := range events {
		digests[i] = EventDigest(e)
	}
	return digests, nil
}

// ActiveByIDs returns the active events among the given ids.
func (s *EventService) ActiveByIDs(ctx context.Context, ids []int) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(
			event.IDIn(ids...),
			event.StatusEQ(models.EventStatusActive),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events by ids: %w", err)
	}
	return events, nil
}

// ActiveDigestsByIDs returns prompt-facing digests of the active events
// among the given ids.
func (s *EventService) ActiveDigestsByIDs(ctx context.Context, ids []int) ([]models.EventDigest, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	events, err := s.ActiveByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	digests := make([]models.EventDigest, len(events))
	for i, e := range events {
		digests[i] = EventDigest(e)
	}
	return digests, nil
}

// Get returns one event or ErrNotFound.
func (s *EventService) Get(ctx context.Context, id int) (*ent.Event, error) {
	e, err := s.client.Event.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("event %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event %d: %w", id, err)
	}
	return e, nil
}

// EventDigest converts an event row to its prompt-facing view.
func EventDigest(e *ent.Event) models.EventDigest {
	return models.EventDigest{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		EventType:   e.EventType,
		Regions:     e.Regions,
		Keywords:    e.Keywords,
		CreatedAt:   e.CreatedAt,
	}
}
