package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient is the alternate chat provider and the only speech provider:
// its TTS endpoint emits exactly the raw 24kHz mono 16-bit PCM the audio
// contract wraps.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{client: openai.NewClient(apiKey), model: model}
}

func (c *OpenAIClient) GenerateJSON(ctx context.Context, req Request, tools []Tool) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: req.Instruction},
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	if req.MaxTokens > 0 {
		chatReq.MaxTokens = req.MaxTokens
	}
	for _, t := range tools {
		chatReq.Tools = append(chatReq.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	for round := 0; round <= maxToolRounds; round++ {
		resp, err := c.client.CreateChatCompletion(ctxWithTimeout, chatReq)
		if err != nil {
			return "", fmt.Errorf("openai %s: %w", req.Task, err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("openai %s: no choices returned", req.Task)
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			content := cleanJSONResponse(msg.Content)
			if content == "" || !json.Valid([]byte(content)) {
				return "", fmt.Errorf("openai %s: not valid json", req.Task)
			}
			return content, nil
		}

		chatReq.Messages = append(chatReq.Messages, msg)
		for _, call := range msg.ToolCalls {
			var args map[string]any
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
				return "", fmt.Errorf("openai %s: tool %s arguments: %w", req.Task, call.Function.Name, err)
			}
			result, err := runTool(ctxWithTimeout, tools, call.Function.Name, args)
			if err != nil {
				return "", fmt.Errorf("openai %s: tool %s: %w", req.Task, call.Function.Name, err)
			}
			payload, err := json.Marshal(result)
			if err != nil {
				return "", fmt.Errorf("openai %s: tool %s: %w", req.Task, call.Function.Name, err)
			}
			chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    string(payload),
				ToolCallID: call.ID,
			})
		}
	}

	return "", fmt.Errorf("openai %s: tool loop did not converge", req.Task)
}

func (c *OpenAIClient) GenerateText(ctx context.Context, req Request) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Instruction},
		},
		Temperature: 0.3,
	}
	if req.MaxTokens > 0 {
		chatReq.MaxTokens = req.MaxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return "", fmt.Errorf("openai %s: %w", req.Task, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai %s: no content generated", req.Task)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) Close() error { return nil }

// OpenAISpeech synthesizes speech as raw PCM samples.
type OpenAISpeech struct {
	client *openai.Client
	model  string
	voice  openai.SpeechVoice
}

func NewOpenAISpeech(apiKey, model string) *OpenAISpeech {
	if model == "" {
		model = string(openai.TTSModel1)
	}
	return &OpenAISpeech{
		client: openai.NewClient(apiKey),
		model:  model,
		voice:  openai.VoiceAlloy,
	}
}

// SynthesizePCM returns mono 24kHz 16-bit little-endian samples for text.
func (s *OpenAISpeech) SynthesizePCM(ctx context.Context, text string) ([]byte, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := s.client.CreateSpeech(ctxWithTimeout, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.model),
		Input:          text,
		Voice:          s.voice,
		ResponseFormat: openai.SpeechResponseFormatPcm,
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech: %w", err)
	}
	defer resp.Close()

	pcm, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("openai speech: read audio: %w", err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("openai speech: empty audio")
	}
	return pcm, nil
}
