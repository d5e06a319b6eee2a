package services

import (
	"context"
	"errors"
	"fmt"

	"stylemateapi/metrics"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// Completer turns a prompt into free text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// LLMModelName is the Gemini model used for completions.
type LLMModelName int32

const (
	Flash20 LLMModelName = iota
	Flash25
	FlashLite25
	Pro25
)

func (t LLMModelName) String() string {
	switch t {
	case Pro25:
		return "gemini-2.5-pro"
	case Flash25:
		return "gemini-2.5-flash"
	case FlashLite25:
		return "gemini-2.5-flash-lite"
	case Flash20:
		return "gemini-2.0-flash"
	default:
		return "gemini-2.0-flash"
	}
}

// ParseLLMModelName maps a model id to its LLMModelName. Unknown ids report
// false and map to Flash20.
func ParseLLMModelName(name string) (LLMModelName, bool) {
	for _, m := range []LLMModelName{Flash20, Flash25, FlashLite25, Pro25} {
		if m.String() == name {
			return m, true
		}
	}
	return Flash20, false
}

var ErrEmptyCompletion = errors.New("empty completion")

const stylistInstruction = `You are a professional fashion stylist. Answer only with the JSON document requested, without commentary.`

func floatPointer(f float32) *float32 {
	return &f
}

type GeminiCompleter struct {
	client *genai.Client
	model  LLMModelName
}

func NewGeminiCompleter(ctx context.Context, apiKey string, model LLMModelName) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiCompleter{client: client, model: model}, nil
}

func (g *GeminiCompleter) Model() LLMModelName {
	return g.model
}

func (g *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	logger := zerolog.Ctx(ctx)

	result, err := g.client.Models.GenerateContent(ctx, g.model.String(), []*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}}, &genai.GenerateContentConfig{
		Temperature: floatPointer(0.7),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: stylistInstruction},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result.UsageMetadata != nil {
		metrics.CompletionTokens.WithLabelValues(g.model.String(), "prompt").Add(float64(result.UsageMetadata.PromptTokenCount))
		metrics.CompletionTokens.WithLabelValues(g.model.String(), "candidates").Add(float64(result.UsageMetadata.CandidatesTokenCount))
		logger.Debug().
			Int32("input_tokens", result.UsageMetadata.PromptTokenCount).
			Int32("output_tokens", result.UsageMetadata.CandidatesTokenCount).
			Int32("total_tokens", result.UsageMetadata.TotalTokenCount).
			Msg("gemini completion")
	}

	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("prompt blocked: %s %s", result.PromptFeedback.BlockReason, result.PromptFeedback.BlockReasonMessage)
	}

	text := result.Text()
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
