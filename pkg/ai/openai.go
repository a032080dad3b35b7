package ai

import (
	"context"
	"errors"

	"resume-editor/internal/model"
	"resume-editor/pkg/ai/formatters"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIEnhancer rewrites sections through any OpenAI-compatible chat
// completion endpoint.
type OpenAIEnhancer struct {
	client   *openai.Client
	model    string
	language string
}

func NewOpenAIEnhancer(apiKey, baseURL, chatModel, language string) *OpenAIEnhancer {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if chatModel == "" {
		chatModel = DefaultOpenAIModel
	}
	return &OpenAIEnhancer{
		client:   openai.NewClient(opts...),
		model:    chatModel,
		language: language,
	}
}

func (e *OpenAIEnhancer) Enhance(ctx context.Context, section model.Section, text string) (string, error) {
	prompt := formatters.New(section, e.language).Prompt(text)
	params := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model: openai.F(openai.ChatModel(e.model)),
	}
	resp, err := e.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return formatters.Parse(resp.Choices[0].Message.Content)
}
