// Package vision wraps the Gemini generative-vision API behind the
// AdvisoryClient port, using Gemini's OpenAI-compatible endpoint.
package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/rentit/campus-rentals-api/internal/core/domain"
)

const (
	// DefaultBaseURL is Gemini's OpenAI-compatible API surface.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	// DefaultModel is the vision-capable model used for image analysis.
	DefaultModel = "gemini-2.0-flash"
)

// analysisPrompt asks for exactly three lines so the reply can be split
// mechanically. The model is not always obedient; parseSuggestion copes.
const analysisPrompt = `Analyze this image of an item being listed for rent and reply with exactly three lines:
1. A concise title (max 50 characters)
2. A detailed description (max 200 characters)
3. A category (e.g. Electronics, Furniture, Books)`

// GeminiClient produces listing suggestions from images. It is constructed
// once at startup and passed to consumers explicitly.
type GeminiClient struct {
	model  string
	client *openai.Client
}

// NewGeminiClient builds a client for the given API key. Pass "" for baseURL
// or model to use the Gemini defaults.
func NewGeminiClient(apiKey, baseURL, model string) *GeminiClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &GeminiClient{
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

// Analyze sends the stored image to the model and parses its free-text reply
// into a (title, description, category) triple. A reply with fewer than three
// usable lines yields (nil, nil) — never a partially filled suggestion.
func (g *GeminiClient) Analyze(ctx context.Context, imagePath string) (*domain.Suggestion, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", imageMIMEType(imagePath), base64.StdEncoding.EncodeToString(data))

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: analysisPrompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
					},
				},
			},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("vision completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}

	return parseSuggestion(resp.Choices[0].Message.Content), nil
}

// parseSuggestion splits the model reply on newlines and maps the first three
// non-empty lines to title, description, and category. Numbering prefixes the
// model tends to echo back ("1.", "2)") are stripped.
func parseSuggestion(text string) *domain.Suggestion {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = stripNumbering(strings.TrimSpace(line))
		if line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) < 3 {
		return nil
	}

	return &domain.Suggestion{
		Title:       lines[0],
		Description: lines[1],
		Category:    lines[2],
	}
}

// stripNumbering removes a leading "1." / "2)" style list marker.
func stripNumbering(line string) string {
	rest := strings.TrimLeft(line, "0123456789")
	if rest == line {
		return line
	}
	if len(rest) > 0 && (rest[0] == '.' || rest[0] == ')') {
		return strings.TrimSpace(rest[1:])
	}
	return line
}

// imageMIMEType maps the stored file's extension back to its MIME type. Only
// the two accepted upload types ever reach this point.
func imageMIMEType(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}
