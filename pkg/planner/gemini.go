package planner

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator produces plan text from a system instruction and a user
// prompt. The planner treats the output as opaque markdown; only tag
// reconciliation touches it afterwards.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// maxPlanTokens bounds the generated plan; a full week plan fits
// comfortably under this.
const maxPlanTokens = 2048

// Gemini is the Generator backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed generator. The API key comes from the
// environment, the model name from configuration.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			MaxOutputTokens:   maxPlanTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty plan")
	}
	return text, nil
}
