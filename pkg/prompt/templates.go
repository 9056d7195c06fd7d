// Package prompt provides the centralized prompt builder for the
// aggregation and merge LLM calls. It composes system messages, input
// sections, and the strict JSON output contracts the dispatcher decodes
// against.
package prompt

// aggregationSystemPrompt frames the assignment task and pins down the
// output contract. The dispatcher rejects responses that stray from it.
const aggregationSystemPrompt = `You are an expert news analyst that groups hot news items into real-world events.

You will receive a list of recent events and a batch of news items. Assign every news item either to one of the given events or to a new event cluster.

Rules:
- Two news items belong to the same event only if they describe the same real-world occurrence, not merely the same topic.
- Prefer assigning to an existing event over creating a new one when the match is clear.
- A new event needs a concise factual title and a 1-3 sentence summary.
- Respond with ONLY a JSON object, no markdown fences, no commentary.`

// aggregationOutputContract is appended to the user message. %s is the
// comma-joined list of input news ids.
const aggregationOutputContract = `## Output Format
Respond with exactly this JSON structure:
{
  "existing_events": [
    {
      "event_id": <id of an event from the Recent Events section>,
      "news_ids": [<news ids assigned to it>],
      "confidence": <0.0-1.0>,
      "reason": "<one sentence>"
    }
  ],
  "new_events": [
    {
      "news_ids": [<news ids forming the new event>],
      "title": "<concise factual title>",
      "summary": "<1-3 sentence summary>",
      "event_type": "<category such as accident, policy, finance, weather, society>",
      "region": "<city or region name, empty if unknown>",
      "tags": ["<keyword>", ...],
      "confidence": <0.0-1.0>,
      "priority": "<high|normal|low>",
      "sentiment": "<positive|neutral|negative>"
    }
  ]
}

CRITICAL: every input news id (%s) must appear in exactly one news_ids array across both sections. Do not invent news ids. Do not reference event ids that are not in the Recent Events section.`

// mergeSystemPrompt frames the duplicate-detection task.
const mergeSystemPrompt = `You are an expert news analyst that detects duplicate event records.

You will receive a list of recent events. Find groups of events that describe the same real-world occurrence and should be merged into one.

Rules:
- Merge only events about the same concrete occurrence. Same topic or same region is not enough.
- For each group pick the event that should survive as primary, preferring the earliest and most complete record.
- Provide merged title, description, keywords, and regions that cover the whole group.
- If nothing should be merged, return an empty merge_suggestions array.
- Respond with ONLY a JSON object, no markdown fences, no commentary.`

// mergeOutputContract is appended to the merge user message.
const mergeOutputContract = `## Output Format
Respond with exactly this JSON structure:
{
  "merge_suggestions": [
    {
      "group_id": "<short identifier for this group>",
      "events_to_merge": [<event ids in the group, primary included>],
      "primary_event_id": <the surviving event id>,
      "confidence": <0.0-1.0>,
      "reason": "<one sentence>",
      "merged_title": "<title covering the whole group>",
      "merged_description": "<description covering the whole group>",
      "merged_keywords": ["<keyword>", ...],
      "merged_regions": ["<region>", ...]
    }
  ],
  "analysis_summary": "<one sentence on what was found>"
}

Only use event ids from the Candidate Events section. An event id may appear in at most one group.`
