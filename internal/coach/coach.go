// Package coach asks an LLM for an extra example sentence and a mnemonic
// for a vocabulary word. It is optional: without a configured provider the
// rest of the trainer works unchanged.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/wortschatz/wortschatz/internal/llm"
	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

// Tip is the coach's answer for one word.
type Tip struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
	Mnemonic    string `json:"mnemonic"`
}

// Service generates tips and remembers them for the lifetime of the
// process, so asking twice for the same card costs one request.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu    sync.Mutex
	cache map[string]*Tip
}

// NewService creates a coach backed by provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg, cache: make(map[string]*Tip)}
}

// Explain returns a tip for w. It blocks until the provider answers or
// cfg.Timeout elapses; callers in the TUI run it inside a tea.Cmd.
func (s *Service) Explain(ctx context.Context, w vocab.Word) (*Tip, error) {
	key := progress.Key(w.Category, w.German)

	s.mu.Lock()
	if tip, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return tip, nil
	}
	s.mu.Unlock()

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeExample)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserMessage(buildUserMessage(w)),
		Schema:      TipSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("coach %q: %w", w.German, err)
	}

	var tip Tip
	if err := json.Unmarshal(resp.Content, &tip); err != nil {
		return nil, fmt.Errorf("parse coach response: %w", err)
	}

	s.mu.Lock()
	s.cache[key] = &tip
	s.mu.Unlock()
	return &tip, nil
}
