package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func mnemonicSchema() *Schema {
	return &Schema{
		Name: "test-mnemonic",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"mnemonic": map[string]any{"type": "string", "minLength": 1},
				"gender":   map[string]any{"type": "string", "enum": []string{"der", "die", "das"}},
				"examples": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required": []string{"mnemonic"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"mnemonic":"Hund sounds like hound","gender":"der","examples":["Der Hund bellt."]}`, false},
		{"optional fields omitted", `{"mnemonic":"Katze looks like cat"}`, false},
		{"missing required", `{"gender":"die"}`, true},
		{"empty string", `{"mnemonic":""}`, true},
		{"bad enum", `{"mnemonic":"x","gender":"den"}`, true},
		{"wrong item type", `{"mnemonic":"x","examples":[1,2]}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(mnemonicSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should accept anything, got %v", err)
	}
}
