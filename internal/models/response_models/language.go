package response_models

import "fmt"

type Phrase struct {
	English     string `json:"english"`
	Translation string `json:"translation"`
	Language    string `json:"language"`
}

// LanguageGuide holds 10-15 phrases in one dominant local language chosen
// across the selected regions.
type LanguageGuide struct {
	Language string   `json:"language"`
	Phrases  []Phrase `json:"phrases"`
}

func (g *LanguageGuide) Validate() error {
	if g.Language == "" {
		return fmt.Errorf("no language chosen")
	}
	if len(g.Phrases) < 10 || len(g.Phrases) > 15 {
		return fmt.Errorf("expected 10-15 phrases, got %d", len(g.Phrases))
	}
	for i, p := range g.Phrases {
		if p.English == "" || p.Translation == "" || p.Language == "" {
			return fmt.Errorf("phrase %d has empty fields", i+1)
		}
		if p.Language != g.Language {
			return fmt.Errorf("phrase %d is in %s, guide language is %s", i+1, p.Language, g.Language)
		}
	}
	return nil
}

type SpeechResponse struct {
	AudioDataURI string `json:"audio_data_uri"`
}
