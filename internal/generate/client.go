package generate

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"prism/internal/config"
	"prism/internal/media"
	"prism/internal/models"
	"prism/internal/observability"

	"google.golang.org/genai"
)

const emptyAnswerFallback = "No response generated."

// Client wraps the Gemini API for the three generation modes. The genai
// client is created on first use so a missing API key fails the call, not
// the program start.
type Client struct {
	cfg   *config.Config
	media *media.Store
	http  *http.Client

	mu  sync.Mutex
	api *genai.Client
}

func NewClient(cfg *config.Config, mediaStore *media.Store) *Client {
	return &Client{
		cfg:   cfg,
		media: mediaStore,
		http:  &http.Client{Timeout: 5 * time.Minute},
	}
}

func (c *Client) client(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.api != nil {
		return c.api, nil
	}

	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	c.api = api
	return api, nil
}

// Text answers a prompt with web-search grounding enabled and returns the
// answer plus any citations that carry a real link.
func (c *Client) Text(ctx context.Context, prompt string) (string, []models.Citation, error) {
	api, err := c.client(ctx)
	if err != nil {
		return "", nil, genErr(models.ModeChat, "creating client: %w", err)
	}

	resp, err := api.Models.GenerateContent(ctx, c.cfg.ChatModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return "", nil, genErr(models.ModeChat, "generate content: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		text = emptyAnswerFallback
	}

	citations := extractCitations(resp)
	observability.Logger().Info("text generated", "chars", len(text), "citations", len(citations))
	return text, citations, nil
}

// Image generates a square image and returns a local media handle for it.
// A response without an inline image part is a generation failure, same as
// a transport error.
func (c *Client) Image(ctx context.Context, prompt string) (string, error) {
	api, err := c.client(ctx)
	if err != nil {
		return "", genErr(models.ModeImage, "creating client: %w", err)
	}

	resp, err := api.Models.GenerateContent(ctx, c.cfg.ImageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
		ImageConfig:        &genai.ImageConfig{AspectRatio: c.cfg.ImageAspectRatio},
	})
	if err != nil {
		return "", genErr(models.ModeImage, "generate content: %w", err)
	}

	blob := firstInlineData(resp)
	if blob == nil {
		return "", genErr(models.ModeImage, "response contains no inline image data")
	}

	path, err := c.media.Save(blob.Data, blob.MIMEType)
	if err != nil {
		return "", genErr(models.ModeImage, "saving image: %w", err)
	}
	observability.Logger().Info("image generated", "media", path)
	return path, nil
}
