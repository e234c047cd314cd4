package gateway_fx

import (
	"os"

	"go.uber.org/fx"

	"akwaaba/internal/gateway"
)

var Module = fx.Provide(
	provideAIClient, provideSpeechSynthesizer,
)

func getEnvWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func provideAIClient(lc fx.Lifecycle) (gateway.Client, error) {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	cfg := gateway.Config{Provider: provider}
	switch provider {
	case "openai":
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		cfg.Model = os.Getenv("OPENAI_MODEL")
	default:
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		cfg.Model = os.Getenv("GEMINI_MODEL")
	}

	client, err := gateway.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(client.Close))
	return client, nil
}

// Speech is always OpenAI regardless of the chat provider; Gemini has no
// TTS endpoint in this stack.
func provideSpeechSynthesizer() gateway.SpeechSynthesizer {
	return gateway.NewOpenAISpeech(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_TTS_MODEL"))
}
