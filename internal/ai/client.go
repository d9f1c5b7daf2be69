// Package ai wraps the Gemini API for the two generative features: English
// display names for remote-mode résumés and prompt-driven image edits.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-studio/internal/types"
)

// Model names. The text model answers name prompts; the image model returns
// inline image data.
const (
	NameModel  = "gemini-2.5-flash"
	ImageModel = "gemini-2.5-flash-image"
)

const namePromptTemplate = "Generate a single, professional English first and last name for a %s professional. Return ONLY the name, nothing else."

// Client talks to Gemini. Safe for concurrent use.
type Client struct {
	client *genai.Client
}

// NewClient creates a Gemini-backed client.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{client: client}, nil
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// GenerateName asks the text model for an English display name. The result
// is trimmed; an empty result is an error so callers fall back uniformly.
func (c *Client) GenerateName(ctx context.Context, gender types.Gender) (string, error) {
	word := "male"
	if gender == types.GenderFemale {
		word = "female"
	}
	prompt := fmt.Sprintf(namePromptTemplate, word)

	model := c.client.GenerativeModel(NameModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &GenerationError{Message: "name generation request failed", Cause: err}
	}

	name, err := extractText(resp)
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &GenerationError{Message: "name generation returned empty text"}
	}
	return name, nil
}

// SourceImage is the optional image an edit starts from.
type SourceImage struct {
	MIMEType string
	Data     []byte
}

// EditImage sends the prompt, plus the source image when present, to the
// image model and returns the first inline image of the response. A response
// with no image part yields ErrNoImageResult.
func (c *Client) EditImage(ctx context.Context, source *SourceImage, prompt string) ([]byte, string, error) {
	parts := make([]genai.Part, 0, 2)
	if source != nil && len(source.Data) > 0 {
		parts = append(parts, genai.Blob{MIMEType: source.MIMEType, Data: source.Data})
	}
	parts = append(parts, genai.Text(prompt))

	model := c.client.GenerativeModel(ImageModel)
	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, "", &GenerationError{Message: "image generation request failed", Cause: err}
	}

	return firstImagePart(resp)
}

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &GenerationError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &GenerationError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &GenerationError{Message: "no text parts in response"}
	}
	return strings.Join(parts, ""), nil
}

// firstImagePart returns the first inline image of the first candidate.
func firstImagePart(resp *genai.GenerateContentResponse) ([]byte, string, error) {
	if len(resp.Candidates) == 0 {
		return nil, "", ErrNoImageResult
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, "", ErrNoImageResult
	}
	for _, part := range candidate.Content.Parts {
		if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
			return blob.Data, blob.MIMEType, nil
		}
	}
	return nil, "", ErrNoImageResult
}
