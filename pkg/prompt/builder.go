package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/newsflow/hotaggr/pkg/models"
)

// Builder builds all prompt text for the aggregation and merge engines.
// Stateless — all state comes from parameters. Thread-safe — no mutable
// state.
type Builder struct{}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AggregationSystemPrompt returns the system message for aggregation calls.
func (b *Builder) AggregationSystemPrompt() string {
	return aggregationSystemPrompt
}

// MergeSystemPrompt returns the system message for batch-merge calls.
func (b *Builder) MergeSystemPrompt() string {
	return mergeSystemPrompt
}

// BuildAggregationPrompt builds the user message for one aggregation
// batch: recent events as assignment candidates, the news batch, and the
// output contract listing every input news id.
func (b *Builder) BuildAggregationPrompt(news []models.NewsDigest, events []models.EventDigest) string {
	var sb strings.Builder

	sb.WriteString("Assign each news item below to an existing event or a new event cluster.\n\n")
	sb.WriteString(FormatEventSection("Recent Events", events))
	sb.WriteString("\n")
	sb.WriteString(FormatNewsSection(news))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(aggregationOutputContract, joinIDs(models.NewsIDs(news))))

	return sb.String()
}

// BuildBatchMergePrompt builds the user message for one batch-merge call
// over the candidate events.
func (b *Builder) BuildBatchMergePrompt(events []models.EventDigest) string {
	var sb strings.Builder

	sb.WriteString("Find groups of duplicate events below that should be merged.\n\n")
	sb.WriteString(FormatEventSection("Candidate Events", events))
	sb.WriteString("\n")
	sb.WriteString(mergeOutputContract)

	return sb.String()
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
