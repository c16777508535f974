// Package llm is a small provider-neutral client for structured JSON
// generation. The coach uses it to ask a model for example sentences and
// mnemonics; every call can be logged to the event store.
package llm

import (
	"context"
	"encoding/json"
)

// Purposes tag requests in the event log.
const (
	PurposeExample  = "example"
	PurposeMnemonic = "mnemonic"
)

// Provider generates a response for a request.
type Provider interface {
	// Generate sends the request. When req.Schema is set the returned
	// Content is JSON that has been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model the provider sends requests to.
	ModelID() string
}

// Request is one generation call.
type Request struct {
	System    string
	Messages  []Message
	Schema    *Schema // nil means free text
	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserMessage is shorthand for a single user turn.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Schema is a named JSON Schema the response must satisfy.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "word-example". Providers use
	// it as the tool or schema name.
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the provider output.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is normalised to "end" or "max_tokens".
	StopReason string
}

// Usage is the token count of one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
