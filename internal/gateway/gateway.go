package gateway

import (
	"context"
	"fmt"
	"strings"
)

// Tool is a retrieval capability the generative model may invoke zero or
// more times before answering. Parameters is a JSON-schema subset
// (type/properties/items/required/description/enum) understood by both
// providers; Run must be a pure function of its arguments.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	Run         func(ctx context.Context, args map[string]any) (any, error)
}

// Request names a prompt template and carries its rendered instruction.
type Request struct {
	Task        string
	Instruction string
	MaxTokens   int
}

// Client is the single external generation capability: run an instruction
// against a schema-constrained model and hand back its output, or fail.
// Output conformance to the task's schema is the caller's job to verify.
type Client interface {
	// GenerateJSON returns a cleaned JSON object string.
	GenerateJSON(ctx context.Context, req Request, tools []Tool) (string, error)
	// GenerateText returns plain prose.
	GenerateText(ctx context.Context, req Request) (string, error)
	Close() error
}

// SpeechSynthesizer returns raw little-endian 16-bit mono 24kHz PCM.
type SpeechSynthesizer interface {
	SynthesizePCM(ctx context.Context, text string) ([]byte, error)
}

type Config struct {
	Provider string
	APIKey   string
	Model    string
}

// NewClient builds the configured provider, defaulting to Gemini.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model), nil
	case "gemini", "":
		return NewGeminiClient(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", cfg.Provider)
	}
}

const maxToolRounds = 6
