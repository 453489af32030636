package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/advisehq/advisor/internal/ai"
	"github.com/advisehq/advisor/internal/logger"
	"github.com/advisehq/advisor/internal/utils"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	defaultModel        = "gpt-4o-mini"
	defaultMaxLogLength = 200

	systemPrompt = "You are an experienced academic advising assistant. " +
		"You explain why recommended university programmes suit a student's interest profile. " +
		"Answer in 2-4 sentences addressed to the student. " +
		"Never invent programmes, change their order, or mention scores."
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Explainer narrates programme recommendations via an OpenAI-compatible
// chat completion API.
type Explainer struct {
	api       chatCompleter
	model     string
	logger    *zap.Logger
	maxLogLen int
}

// New creates an Explainer backed by the official OpenAI API or any
// compatible endpoint when baseURL is set.
func New(baseURL, apiKey, model string, log *zap.Logger) (*Explainer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		config.BaseURL = baseURL
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Explainer{
		api:       openai.NewClientWithConfig(config),
		model:     model,
		logger:    logger.WithCommonFields(log, "openai", model),
		maxLogLen: defaultMaxLogLength,
	}, nil
}

func (e *Explainer) Explain(ctx context.Context, snapshot ai.Snapshot, top []ai.ProgrammeBrief) (string, error) {
	if len(top) == 0 {
		return "", errors.New("no programmes to explain")
	}

	userPrompt := buildUserPrompt(snapshot, top)

	e.logger.Debug("openai chat completion request",
		zap.String("scheme", snapshot.SchemeName),
		zap.Int("programmes", len(top)),
		zap.String("prompt_preview", utils.TruncateForLog(userPrompt, e.maxLogLen)),
	)

	resp, err := e.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("openai returned empty explanation")
	}

	e.logger.Debug("openai chat completion response",
		zap.Int("response_length", utf8.RuneCountInString(text)),
		zap.String("response_preview", utils.TruncateForLog(text, e.maxLogLen)),
	)

	return text, nil
}

func buildUserPrompt(snapshot ai.Snapshot, top []ai.ProgrammeBrief) string {
	var builder strings.Builder

	builder.WriteString("Student profile summary:\n")
	builder.WriteString(strings.TrimSpace(snapshot.Summary))

	if freeText := strings.TrimSpace(snapshot.FreeText); freeText != "" {
		builder.WriteString("\n\nIn their own words: ")
		builder.WriteString(freeText)
	}

	builder.WriteString("\n\nRecommended programmes, in order:\n")
	for i, p := range top {
		fmt.Fprintf(&builder, "%d. %s (%s)", i+1, p.Name, p.Institution)
		if len(p.Modes) > 0 {
			builder.WriteString(" - modes: ")
			builder.WriteString(strings.Join(p.Modes, ", "))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("\nExplain why these programmes fit this student.")
	return builder.String()
}
