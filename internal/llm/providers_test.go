package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func exampleSchema() *Schema {
	return &Schema{
		Name: "test-example",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"sentence":    map[string]any{"type": "string"},
				"translation": map[string]any{"type": "string"},
			},
			"required": []any{"sentence", "translation"},
		},
	}
}

func serve(t *testing.T, status int, body any) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func openaiCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func exampleRequest() Request {
	return Request{
		System:    "You are a German tutor.",
		Messages:  UserMessage("Give an example sentence for 'der Hund'."),
		Schema:    exampleSchema(),
		MaxTokens: 256,
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	url := serve(t, http.StatusOK, anthropicMessage(`{"sentence":"Der Hund bellt.","translation":"The dog barks."}`, "end_turn"))
	p, err := NewAnthropicProvider(ProviderConfig{APIKey: "test-key", Model: "claude-haiku", BaseURL: url})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	resp, err := p.Generate(context.Background(), exampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 50 || resp.Usage.TotalTokens != 80 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestAnthropicProvider_SchemaViolation(t *testing.T) {
	url := serve(t, http.StatusOK, anthropicMessage(`{"sentence":"Der Hund bellt."}`, "end_turn"))
	p, _ := NewAnthropicProvider(ProviderConfig{APIKey: "test-key", BaseURL: url})

	_, err := p.Generate(context.Background(), exampleRequest())
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	url := serve(t, http.StatusOK, anthropicMessage(`{"sentence":"Der Hu`, "max_tokens"))
	p, _ := NewAnthropicProvider(ProviderConfig{APIKey: "test-key", BaseURL: url})

	_, err := p.Generate(context.Background(), exampleRequest())
	var mt *ErrMaxTokensExceeded
	if !errors.As(err, &mt) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	url := serve(t, http.StatusOK, openaiCompletion(`{"sentence":"Ich trinke Wasser.","translation":"I drink water."}`, "stop"))
	p, err := NewOpenAIProvider(ProviderConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: url + "/v1"})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	resp, err := p.Generate(context.Background(), exampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", resp.Model)
	}
}

func TestProviders_ErrorMapping(t *testing.T) {
	anthropicErr := func(kind string) map[string]any {
		return map[string]any{"type": "error", "error": map[string]any{"type": kind, "message": kind}}
	}
	openaiErr := func(kind string) map[string]any {
		return map[string]any{"error": map[string]any{"type": kind, "message": kind}}
	}

	tests := []struct {
		name   string
		build  func(url string) (Provider, error)
		status int
		body   any
		want   func(error) bool
	}{
		{
			name:   "anthropic 429",
			build:  func(url string) (Provider, error) { return NewAnthropicProvider(ProviderConfig{APIKey: "k", BaseURL: url}) },
			status: http.StatusTooManyRequests,
			body:   anthropicErr("rate_limit_error"),
			want:   func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) },
		},
		{
			name:   "anthropic 500",
			build:  func(url string) (Provider, error) { return NewAnthropicProvider(ProviderConfig{APIKey: "k", BaseURL: url}) },
			status: http.StatusInternalServerError,
			body:   anthropicErr("api_error"),
			want:   func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
		{
			name:   "openai 429",
			build:  func(url string) (Provider, error) { return NewOpenAIProvider(ProviderConfig{APIKey: "k", BaseURL: url + "/v1"}) },
			status: http.StatusTooManyRequests,
			body:   openaiErr("tokens"),
			want:   func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) },
		},
		{
			name:   "openai 500",
			build:  func(url string) (Provider, error) { return NewOpenAIProvider(ProviderConfig{APIKey: "k", BaseURL: url + "/v1"}) },
			status: http.StatusInternalServerError,
			body:   openaiErr("server_error"),
			want:   func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.build(serve(t, tt.status, tt.body))
			if err != nil {
				t.Fatalf("new provider: %v", err)
			}
			_, err = p.Generate(context.Background(), Request{Messages: UserMessage("test"), MaxTokens: 100})
			if err == nil || !tt.want(err) {
				t.Fatalf("unexpected error type: %T (%v)", err, err)
			}
		})
	}
}

func TestProviders_RequireKey(t *testing.T) {
	if _, err := NewAnthropicProvider(ProviderConfig{}); err == nil {
		t.Error("anthropic: expected error without key")
	}
	if _, err := NewOpenAIProvider(ProviderConfig{}); err == nil {
		t.Error("openai: expected error without key")
	}
	if _, err := NewOpenRouterProvider(ProviderConfig{}); err == nil {
		t.Error("openrouter: expected error without key")
	}
	if _, err := NewGeminiProvider(context.Background(), ProviderConfig{}); err == nil {
		t.Error("gemini: expected error without key")
	}
}

func TestOpenRouterProvider_UsesOpenAIProtocol(t *testing.T) {
	url := serve(t, http.StatusOK, openaiCompletion(`{"sentence":"Guten Morgen!","translation":"Good morning!"}`, "stop"))
	p, err := NewOpenRouterProvider(ProviderConfig{APIKey: "k", Model: "google/gemini-2.0-flash-exp", BaseURL: url + "/v1"})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if p.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
	if _, err := p.Generate(context.Background(), exampleRequest()); err != nil {
		t.Fatalf("generate: %v", err)
	}
}

func TestModelAliases(t *testing.T) {
	tests := []struct {
		aliases map[string]string
		in      string
		want    string
	}{
		{anthropicModels, "claude-haiku", "claude-haiku-4-5-20251001"},
		{anthropicModels, "claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
		{openaiModels, "gpt-4o-mini", "gpt-4o-mini"},
		{geminiModels, "gemini-flash", "gemini-2.0-flash"},
		{geminiModels, "gemini-2.5-pro", "gemini-2.5-pro"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, tt.aliases); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentence": map[string]any{"type": "string", "description": "German sentence"},
			"level":    map[string]any{"type": "string", "enum": []any{"A1", "A2"}},
			"tags":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []string{"sentence"},
	})

	if s.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 3 {
		t.Fatalf("properties = %d, want 3", len(s.Properties))
	}
	if s.Properties["sentence"].Description != "German sentence" {
		t.Errorf("description = %q", s.Properties["sentence"].Description)
	}
	if len(s.Properties["level"].Enum) != 2 {
		t.Errorf("enum = %v", s.Properties["level"].Enum)
	}
	if s.Properties["tags"].Items == nil || s.Properties["tags"].Items.Type != "STRING" {
		t.Errorf("items = %+v", s.Properties["tags"].Items)
	}
	if len(s.Required) != 1 || s.Required[0] != "sentence" {
		t.Errorf("required = %v", s.Required)
	}
}
