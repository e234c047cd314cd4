package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient talks to Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) GenerateJSON(ctx context.Context, req Request, tools []Tool) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	// Gemini rejects a JSON response MIME type when tools are attached, so
	// tool-carrying calls rely on the instruction plus cleanup instead.
	if len(tools) == 0 {
		m.ResponseMIMEType = "application/json"
	} else {
		m.Tools = toGenaiTools(tools)
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	session := m.StartChat()
	resp, err := session.SendMessage(ctxWithTimeout, genai.Text(req.Instruction))
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", req.Task, err)
	}

	for round := 0; round < maxToolRounds; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}

		var replies []genai.Part
		for _, call := range calls {
			result, err := runTool(ctxWithTimeout, tools, call.Name, call.Args)
			if err != nil {
				return "", fmt.Errorf("gemini %s: tool %s: %w", req.Task, call.Name, err)
			}
			replies = append(replies, genai.FunctionResponse{
				Name:     call.Name,
				Response: map[string]any{"result": result},
			})
		}

		resp, err = session.SendMessage(ctxWithTimeout, replies...)
		if err != nil {
			return "", fmt.Errorf("gemini %s: %w", req.Task, err)
		}
	}

	content := responseText(resp)
	if content == "" {
		return "", fmt.Errorf("gemini %s: no content generated", req.Task)
	}

	content = cleanJSONResponse(content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini %s: not valid json", req.Task)
	}
	return content, nil
}

func (c *GeminiClient) GenerateText(ctx context.Context, req Request) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.3)
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(req.Instruction))
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", req.Task, err)
	}

	content := responseText(resp)
	if content == "" {
		return "", fmt.Errorf("gemini %s: no content generated", req.Task)
	}
	return content, nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			calls = append(calls, call)
		}
	}
	return calls
}

func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	return out
}

// runTool executes a named tool and normalizes its result to plain
// map/slice/scalar values via a JSON round trip, which is what both
// providers' response payloads accept.
func runTool(ctx context.Context, tools []Tool, name string, args map[string]any) (any, error) {
	for _, t := range tools {
		if t.Name != name {
			continue
		}
		log.Printf("tool call: %s", name)
		result, err := t.Run(ctx, args)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(result)
		if err != nil {
			return nil, err
		}
		var plain any
		if err := json.Unmarshal(raw, &plain); err != nil {
			return nil, err
		}
		return plain, nil
	}
	return nil, fmt.Errorf("unknown tool %q", name)
}

func toGenaiTools(tools []Tool) []*genai.Tool {
	var decls []*genai.FunctionDeclaration
	for _, t := range tools {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  toGenaiSchema(t.Parameters),
		})
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

// toGenaiSchema converts the JSON-schema subset used by Tool.Parameters
// into the genai schema type.
func toGenaiSchema(schema map[string]any) *genai.Schema {
	if schema == nil {
		return nil
	}
	out := &genai.Schema{}

	if t, ok := schema["type"].(string); ok {
		switch t {
		case "object":
			out.Type = genai.TypeObject
		case "array":
			out.Type = genai.TypeArray
		case "string":
			out.Type = genai.TypeString
		case "number":
			out.Type = genai.TypeNumber
		case "integer":
			out.Type = genai.TypeInteger
		case "boolean":
			out.Type = genai.TypeBoolean
		}
	}
	if d, ok := schema["description"].(string); ok {
		out.Description = d
	}
	if enum, ok := schema["enum"].([]string); ok {
		out.Enum = enum
	}
	if props, ok := schema["properties"].(map[string]any); ok {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, sub := range props {
			if subMap, ok := sub.(map[string]any); ok {
				out.Properties[name] = toGenaiSchema(subMap)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		out.Items = toGenaiSchema(items)
	}
	if req, ok := schema["required"].([]string); ok {
		out.Required = req
	}
	return out
}
