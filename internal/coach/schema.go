package coach

import "github.com/wortschatz/wortschatz/internal/llm"

// TipSchema is the structured response for one word.
var TipSchema = &llm.Schema{
	Name:        "word-tip",
	Description: "An extra example sentence and a memory aid for a German word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentence": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "A short, natural German sentence using the word (A1-B1 level)",
			},
			"translation": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "English translation of the sentence",
			},
			"mnemonic": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "One-sentence memory aid linking the German word to its meaning",
			},
		},
		"required":             []any{"sentence", "translation", "mnemonic"},
		"additionalProperties": false,
	},
}
