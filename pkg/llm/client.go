// Package llm provides the client boundary to the LLM sidecar: a
// channel-based streaming interface, the gRPC implementation, loose JSON
// extraction for model output, and per-call debug artefacts.
package llm

import "context"

// Client is the Go-side interface for calling the LLM service.
// The returned channel is closed when the stream completes; errors are
// delivered as ErrorChunk values in the channel.
type Client interface {
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)
	Close() error
}

// GenerateInput is the Go-side representation of a completion request.
type GenerateInput struct {
	RequestID   string
	Prompt      string
	Model       string
	Temperature *float32
	MaxTokens   *int32
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

// Chunk type constants.
const (
	ChunkTypeText  ChunkType = "text"
	ChunkTypeUsage ChunkType = "usage"
	ChunkTypeError ChunkType = "error"
)

// TextChunk is a chunk of the LLM's text response.
type TextChunk struct{ Content string }

// UsageChunk reports token consumption for this call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int }

// ErrorChunk signals an error from the LLM provider.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType  { return ChunkTypeText }
func (c *UsageChunk) chunkType() ChunkType { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType { return ChunkTypeError }

// TokenUsage is the collected token accounting for one completed call.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}
