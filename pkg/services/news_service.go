package services

import (
	"context"
	"fmt"
	"time"

	"github.com/newsflow/hotaggr/ent"
	"github.com/newsflow/hotaggr/ent/newseventrelation"
	"github.com/newsflow/hotaggr/ent/newsitem"
	"github.com/newsflow/hotaggr/pkg/models"
)

// NewsService reads from the external hot_news_base table. The crawler
// pipeline owns writes; everything here is read-only.
type NewsService struct {
	client *ent.Client
}

// NewNewsService creates a new NewsService
func NewNewsService(client *ent.Client) *NewsService {
	return &NewsService{client: client}
}

// SelectUnprocessed returns digests of news items seen since the cutoff
// that have no news-event relation yet. Excluded source types are
// skipped entirely. Ordered newest first: the freshest items go out in
// the earliest batches.
func (s *NewsService) SelectUnprocessed(ctx context.Context, since time.Time, excludedTypes []string) ([]models.NewsDigest, error) {
	q := s.client.NewsItem.Query().
		Where(newsitem.FirstSeenAtGTE(since))
	if len(excludedTypes) > 0 {
		q = q.Where(newsitem.SourceTypeNotIn(excludedTypes...))
	}
	items, err := q.Order(ent.Desc(newsitem.FieldFirstSeenAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select news in window: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	processedIDs, err := s.client.NewsEventRelation.Query().
		Where(newseventrelation.NewsIDIn(ids...)).
		Select(newseventrelation.FieldNewsID).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query processed news ids: %w", err)
	}
	processed := make(map[int]struct{}, len(processedIDs))
	for _, id := range processedIDs {
		processed[id] = struct{}{}
	}

	var digests []models.NewsDigest
	for _, item := range items {
		if _, ok := processed[item.ID]; ok {
			continue
		}
		digests = append(digests, newsDigest(item))
	}
	return digests, nil
}

// ProcessedEventIDs returns the distinct event ids already holding news
// seen since the cutoff, under the same source-type filter as
// SelectUnprocessed. Already-processed news in the window contributes its
// events to the assignment context, so a re-entered window keeps
// clustering into the same events.
func (s *NewsService) ProcessedEventIDs(ctx context.Context, since time.Time, excludedTypes []string) ([]int, error) {
	q := s.client.NewsItem.Query().
		Where(newsitem.FirstSeenAtGTE(since))
	if len(excludedTypes) > 0 {
		q = q.Where(newsitem.SourceTypeNotIn(excludedTypes...))
	}
	newsIDs, err := q.IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query news ids in window: %w", err)
	}
	if len(newsIDs) == 0 {
		return nil, nil
	}

	eventIDs, err := s.client.NewsEventRelation.Query().
		Where(newseventrelation.NewsIDIn(newsIDs...)).
		Select(newseventrelation.FieldEventID).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query in-window event ids: %w", err)
	}

	seen := make(map[int]struct{}, len(eventIDs))
	var distinct []int
	for _, id := range eventIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	return distinct, nil
}

// CountSince returns how many news items arrived since the cutoff. Used
// by the ingestion check to detect a stalled crawler.
func (s *NewsService) CountSince(ctx context.Context, since time.Time) (int, error) {
	count, err := s.client.NewsItem.Query().
		Where(newsitem.FirstSeenAtGTE(since)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent news: %w", err)
	}
	return count, nil
}

// ByIDs returns digests for the given news ids, preserving the input order.
// Unknown ids are skipped.
func (s *NewsService) ByIDs(ctx context.Context, ids []int) ([]models.NewsDigest, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	items, err := s.client.NewsItem.Query().
		Where(newsitem.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query news by ids: %w", err)
	}

	byID := make(map[int]*ent.NewsItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	var digests []models.NewsDigest
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			digests = append(digests, newsDigest(item))
		}
	}
	return digests, nil
}

func newsDigest(item *ent.NewsItem) models.NewsDigest {
	return models.NewsDigest{
		ID:          item.ID,
		SourceType:  item.SourceType,
		Title:       item.Title,
		Body:        item.Body,
		CityName:    item.CityName,
		FirstSeenAt: item.FirstSeenAt,
	}
}
