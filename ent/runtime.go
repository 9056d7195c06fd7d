// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/newsflow/hotaggr/ent/event"
	"github.com/newsflow/hotaggr/ent/eventhistoryrelation"
	"github.com/newsflow/hotaggr/ent/newseventrelation"
	"github.com/newsflow/hotaggr/ent/newsitem"
	"github.com/newsflow/hotaggr/ent/processinglog"
	"github.com/newsflow/hotaggr/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescDescription is the schema descriptor for description field.
	eventDescDescription := eventFields[1].Descriptor()
	// event.DefaultDescription holds the default value on creation for the description field.
	event.DefaultDescription = eventDescDescription.Default.(string)
	// eventDescEventType is the schema descriptor for event_type field.
	eventDescEventType := eventFields[2].Descriptor()
	// event.DefaultEventType holds the default value on creation for the event_type field.
	event.DefaultEventType = eventDescEventType.Default.(string)
	// eventDescEntities is the schema descriptor for entities field.
	eventDescEntities := eventFields[4].Descriptor()
	// event.DefaultEntities holds the default value on creation for the entities field.
	event.DefaultEntities = eventDescEntities.Default.(string)
	// eventDescRegions is the schema descriptor for regions field.
	eventDescRegions := eventFields[5].Descriptor()
	// event.DefaultRegions holds the default value on creation for the regions field.
	event.DefaultRegions = eventDescRegions.Default.(string)
	// eventDescKeywords is the schema descriptor for keywords field.
	eventDescKeywords := eventFields[6].Descriptor()
	// event.DefaultKeywords holds the default value on creation for the keywords field.
	event.DefaultKeywords = eventDescKeywords.Default.(string)
	// eventDescConfidenceScore is the schema descriptor for confidence_score field.
	eventDescConfidenceScore := eventFields[7].Descriptor()
	// event.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	event.DefaultConfidenceScore = eventDescConfidenceScore.Default.(float64)
	// eventDescNewsCount is the schema descriptor for news_count field.
	eventDescNewsCount := eventFields[8].Descriptor()
	// event.DefaultNewsCount holds the default value on creation for the news_count field.
	event.DefaultNewsCount = eventDescNewsCount.Default.(int)
	// eventDescStatus is the schema descriptor for status field.
	eventDescStatus := eventFields[11].Descriptor()
	// event.DefaultStatus holds the default value on creation for the status field.
	event.DefaultStatus = eventDescStatus.Default.(int8)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[12].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventFields[13].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// event.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	event.UpdateDefaultUpdatedAt = eventDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventhistoryrelationFields := schema.EventHistoryRelation{}.Fields()
	_ = eventhistoryrelationFields
	// eventhistoryrelationDescConfidenceScore is the schema descriptor for confidence_score field.
	eventhistoryrelationDescConfidenceScore := eventhistoryrelationFields[3].Descriptor()
	// eventhistoryrelation.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	eventhistoryrelation.DefaultConfidenceScore = eventhistoryrelationDescConfidenceScore.Default.(float64)
	// eventhistoryrelationDescDescription is the schema descriptor for description field.
	eventhistoryrelationDescDescription := eventhistoryrelationFields[4].Descriptor()
	// eventhistoryrelation.DefaultDescription holds the default value on creation for the description field.
	eventhistoryrelation.DefaultDescription = eventhistoryrelationDescDescription.Default.(string)
	// eventhistoryrelationDescCreatedAt is the schema descriptor for created_at field.
	eventhistoryrelationDescCreatedAt := eventhistoryrelationFields[5].Descriptor()
	// eventhistoryrelation.DefaultCreatedAt holds the default value on creation for the created_at field.
	eventhistoryrelation.DefaultCreatedAt = eventhistoryrelationDescCreatedAt.Default.(func() time.Time)
	newseventrelationFields := schema.NewsEventRelation{}.Fields()
	_ = newseventrelationFields
	// newseventrelationDescConfidenceScore is the schema descriptor for confidence_score field.
	newseventrelationDescConfidenceScore := newseventrelationFields[3].Descriptor()
	// newseventrelation.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	newseventrelation.DefaultConfidenceScore = newseventrelationDescConfidenceScore.Default.(float64)
	// newseventrelationDescCreatedAt is the schema descriptor for created_at field.
	newseventrelationDescCreatedAt := newseventrelationFields[4].Descriptor()
	// newseventrelation.DefaultCreatedAt holds the default value on creation for the created_at field.
	newseventrelation.DefaultCreatedAt = newseventrelationDescCreatedAt.Default.(func() time.Time)
	newsitemFields := schema.NewsItem{}.Fields()
	_ = newsitemFields
	// newsitemDescBody is the schema descriptor for body field.
	newsitemDescBody := newsitemFields[2].Descriptor()
	// newsitem.DefaultBody holds the default value on creation for the body field.
	newsitem.DefaultBody = newsitemDescBody.Default.(string)
	// newsitemDescCityName is the schema descriptor for city_name field.
	newsitemDescCityName := newsitemFields[3].Descriptor()
	// newsitem.DefaultCityName holds the default value on creation for the city_name field.
	newsitem.DefaultCityName = newsitemDescCityName.Default.(string)
	// newsitemDescFirstSeenAt is the schema descriptor for first_seen_at field.
	newsitemDescFirstSeenAt := newsitemFields[4].Descriptor()
	// newsitem.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	newsitem.DefaultFirstSeenAt = newsitemDescFirstSeenAt.Default.(func() time.Time)
	// newsitemDescURL is the schema descriptor for url field.
	newsitemDescURL := newsitemFields[5].Descriptor()
	// newsitem.DefaultURL holds the default value on creation for the url field.
	newsitem.DefaultURL = newsitemDescURL.Default.(string)
	processinglogFields := schema.ProcessingLog{}.Fields()
	_ = processinglogFields
	// processinglogDescStartTime is the schema descriptor for start_time field.
	processinglogDescStartTime := processinglogFields[2].Descriptor()
	// processinglog.DefaultStartTime holds the default value on creation for the start_time field.
	processinglog.DefaultStartTime = processinglogDescStartTime.Default.(func() time.Time)
	// processinglogDescStatus is the schema descriptor for status field.
	processinglogDescStatus := processinglogFields[4].Descriptor()
	// processinglog.DefaultStatus holds the default value on creation for the status field.
	processinglog.DefaultStatus = processinglogDescStatus.Default.(string)
	// processinglogDescTotal is the schema descriptor for total field.
	processinglogDescTotal := processinglogFields[5].Descriptor()
	// processinglog.DefaultTotal holds the default value on creation for the total field.
	processinglog.DefaultTotal = processinglogDescTotal.Default.(int)
	// processinglogDescSuccess is the schema descriptor for success field.
	processinglogDescSuccess := processinglogFields[6].Descriptor()
	// processinglog.DefaultSuccess holds the default value on creation for the success field.
	processinglog.DefaultSuccess = processinglogDescSuccess.Default.(int)
	// processinglogDescFailed is the schema descriptor for failed field.
	processinglogDescFailed := processinglogFields[7].Descriptor()
	// processinglog.DefaultFailed holds the default value on creation for the failed field.
	processinglog.DefaultFailed = processinglogDescFailed.Default.(int)
}
