package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"fjacquet/subscan/internal/models"
)

// AIClient suggests a category for a subscription text when keyword
// inference found nothing. Implementations are expected to call an external
// model; extraction itself never depends on one being configured.
type AIClient interface {
	SuggestCategory(ctx context.Context, name, text string) (string, error)
}

// GeminiClient implements AIClient using the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini-backed AIClient with the given API key
// and model name.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// SuggestCategory asks the model to pick one of the catalog categories for
// the given subscription text.
func (c *GeminiClient) SuggestCategory(ctx context.Context, name, text string) (string, error) {
	prompt := fmt.Sprintf(`Classify the following subscription service into a category.
Service name: %s
Receipt text:
%s

Please assign this subscription to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`,
		name,
		text,
		strings.Join(models.Categories, ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return extractCategoryFromResponse(responseText), nil
}

// extractCategoryFromResponse parses the model response and validates the
// category against the catalog set. Returns "" for anything unrecognized.
func extractCategoryFromResponse(response string) string {
	var name string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			name = strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
			break
		}
	}
	if name == "" {
		// Unstructured reply; look for any category mentioned verbatim.
		for _, category := range models.Categories {
			if strings.Contains(response, category) {
				return category
			}
		}
		return ""
	}
	for _, category := range models.Categories {
		if strings.EqualFold(name, category) {
			return category
		}
	}
	return ""
}
