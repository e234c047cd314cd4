package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"akwaaba/internal/gateway"
	"akwaaba/internal/models/request_models"
	"akwaaba/internal/models/response_models"
	"akwaaba/pkg/utils"
)

type LanguageServiceInterface interface {
	GenerateLanguageGuide(ctx context.Context, req request_models.LanguageGuideRequest) (*response_models.LanguageGuide, error)
	SynthesizeSpeech(ctx context.Context, text string) (*response_models.SpeechResponse, error)
}

type LanguageService struct {
	ai     gateway.Client
	speech gateway.SpeechSynthesizer
}

func NewLanguageService(ai gateway.Client, speech gateway.SpeechSynthesizer) LanguageServiceInterface {
	return &LanguageService{ai: ai, speech: speech}
}

func (s *LanguageService) GenerateLanguageGuide(ctx context.Context, req request_models.LanguageGuideRequest) (*response_models.LanguageGuide, error) {
	if len(req.Regions) == 0 {
		return nil, utils.ErrInvalidInput
	}

	prompt := fmt.Sprintf(`A traveler is visiting these Ghana regions: %s.

Pick the single most useful local language across ALL of those regions
(for example Twi for Ashanti and much of the south, Ewe for Volta,
Dagbani for Northern, Ga for central Accra). Use that one language for
every phrase.

Provide 10 to 15 traveler phrases: greetings, thanks, bargaining, food,
directions, emergencies.

Return JSON only, matching exactly:
{"language":"Twi","phrases":[{"english":"Thank you","translation":"Medaase","language":"Twi"}]}`,
		strings.Join(req.Regions, ", "))

	raw, err := s.ai.GenerateJSON(ctx, gateway.Request{
		Task:        "language-guide",
		Instruction: prompt,
		MaxTokens:   1500,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	var guide response_models.LanguageGuide
	if err := json.Unmarshal([]byte(raw), &guide); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIOutput, err)
	}
	if err := guide.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIOutput, err)
	}
	return &guide, nil
}

// SynthesizeSpeech returns spoken audio as a WAV data URI. The sample
// parameters are fixed (mono 24kHz 16-bit) regardless of text length.
func (s *LanguageService) SynthesizeSpeech(ctx context.Context, text string) (*response_models.SpeechResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, utils.ErrInvalidInput
	}

	pcm, err := s.speech.SynthesizePCM(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	return &response_models.SpeechResponse{AudioDataURI: utils.PCMToWAVDataURI(pcm)}, nil
}
