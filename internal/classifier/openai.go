package classifier

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

func (c *Classifier) classifyOpenAI(ctx context.Context, transcript string) (string, error) {
	client := openai.NewClient(openaiOption.WithAPIKey(c.openAIKey))

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(classifyPrompt),
			openai.UserMessage(transcript),
		},
		Model: openai.ChatModelGPT4oMini,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", ErrNoClassification
	}
	return completion.Choices[0].Message.Content, nil
}
