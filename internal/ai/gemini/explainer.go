package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/advisehq/advisor/internal/ai"
	"github.com/advisehq/advisor/internal/logger"
	"github.com/advisehq/advisor/internal/utils"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	maxAttempts         = 3
	retryBackoff        = 2 * time.Second
	noTextPlaceholder   = "(the student left this blank)"
)

// Explainer narrates programme recommendations via the Gemini API.
type Explainer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
	backoff   time.Duration
}

func NewExplainer(generator contentGenerator, log *zap.Logger, maxLogLength int) *Explainer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Explainer{
		generator: generator,
		logger:    logger.WithCommonFields(log, "gemini", generator.Model()),
		maxLogLen: maxLogLength,
		backoff:   retryBackoff,
	}
}

func (e *Explainer) Explain(ctx context.Context, snapshot ai.Snapshot, top []ai.ProgrammeBrief) (string, error) {
	if len(top) == 0 {
		return "", errors.New("no programmes to explain")
	}

	prompt := buildPrompt(snapshot, top)

	e.logger.Debug("gemini generate content request",
		zap.String("scheme", snapshot.SchemeName),
		zap.Int("programmes", len(top)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, e.maxLogLen)),
	)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		raw, err := e.generator.GenerateContent(ctx, prompt)
		if err == nil {
			e.logger.Debug("gemini generate content response",
				zap.Int("response_length", utf8.RuneCountInString(raw)),
				zap.String("response_preview", utils.TruncateForLog(raw, e.maxLogLen)),
			)
			return strings.TrimSpace(raw), nil
		}

		lastErr = err
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if attempt < maxAttempts {
			e.logger.Debug("retrying gemini request",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			if waitErr := utils.WaitFor(ctx, e.backoff); waitErr != nil {
				return "", waitErr
			}
		}
	}

	return "", fmt.Errorf("gemini explanation failed after %d attempts: %w", maxAttempts, lastErr)
}

func buildPrompt(snapshot ai.Snapshot, top []ai.ProgrammeBrief) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Profile:\n{{PROFILE_SUMMARY}}\n\nStudent note:\n{{FREE_TEXT}}\n\nProgrammes:\n{{PROGRAMMES}}"
	}

	freeText := strings.TrimSpace(snapshot.FreeText)
	if freeText == "" {
		freeText = noTextPlaceholder
	}

	prompt := strings.ReplaceAll(template, "{{PROFILE_SUMMARY}}", strings.TrimSpace(snapshot.Summary))
	prompt = strings.ReplaceAll(prompt, "{{FREE_TEXT}}", freeText)
	prompt = strings.ReplaceAll(prompt, "{{PROGRAMMES}}", formatProgrammes(top))
	return prompt
}

func formatProgrammes(top []ai.ProgrammeBrief) string {
	var builder strings.Builder
	for i, p := range top {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(fmt.Sprintf("%d. %s (%s)", i+1, p.Name, p.Institution))
		if len(p.Modes) > 0 {
			builder.WriteString(" - modes: ")
			builder.WriteString(strings.Join(p.Modes, ", "))
		}
	}
	return builder.String()
}
