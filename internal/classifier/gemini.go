package classifier

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

func (c *Classifier) classifyGemini(ctx context.Context, transcript string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.googleAIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-flash")
	resp, err := model.GenerateContent(ctx, genai.Text(classifyPrompt+"\n\nTranscript:\n"+transcript))
	if err != nil {
		return "", fmt.Errorf("failed to classify transcript: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoClassification
	}

	// Safely cast the part to Text and return
	part, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response format")
	}
	return string(part), nil
}
