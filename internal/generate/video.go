package generate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"prism/internal/models"
	"prism/internal/observability"

	"google.golang.org/genai"
)

// Video generates a clip through the long-running video operation: start,
// poll at a fixed interval until done, then fetch the result bytes from the
// download URI with the API key appended. Returns a local media handle.
func (c *Client) Video(ctx context.Context, prompt string) (string, error) {
	api, err := c.client(ctx)
	if err != nil {
		return "", genErr(models.ModeVideo, "creating client: %w", err)
	}

	op, err := api.Models.GenerateVideos(ctx, c.cfg.VideoModel, prompt, nil, &genai.GenerateVideosConfig{
		AspectRatio: c.cfg.VideoAspectRatio,
		Resolution:  c.cfg.VideoResolution,
	})
	if err != nil {
		return "", genErr(models.ModeVideo, "start operation: %w", err)
	}

	poll := func(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
		return api.Operations.GetVideosOperation(ctx, op, nil)
	}
	op, err = waitForOperation(ctx, op, poll, c.cfg.PollInterval, c.cfg.MaxPollAttempts)
	if err != nil {
		return "", genErr(models.ModeVideo, "awaiting operation: %w", err)
	}

	uri := downloadURI(op)
	if uri == "" {
		return "", genErr(models.ModeVideo, "operation completed without a download reference")
	}

	data, mimeType, err := c.fetchVideo(ctx, uri)
	if err != nil {
		return "", genErr(models.ModeVideo, "downloading video: %w", err)
	}

	path, err := c.media.Save(data, mimeType)
	if err != nil {
		return "", genErr(models.ModeVideo, "saving video: %w", err)
	}
	observability.Logger().Info("video generated", "media", path, "bytes", len(data))
	return path, nil
}

type pollFunc func(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error)

// waitForOperation polls until the operation reports done. The interval is
// fixed, no backoff. maxAttempts counts every fetch of the operation state,
// the initial handle included; exceeding it fails the generation rather
// than polling forever.
func waitForOperation(ctx context.Context, op *genai.GenerateVideosOperation, poll pollFunc, interval time.Duration, maxAttempts int) (*genai.GenerateVideosOperation, error) {
	attempts := 1
	for !op.Done {
		if maxAttempts > 0 && attempts >= maxAttempts {
			return nil, fmt.Errorf("operation not done after %d polls", attempts)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}

		next, err := poll(ctx, op)
		if err != nil {
			return nil, err
		}
		op = next
		attempts++
	}
	return op, nil
}

func downloadURI(op *genai.GenerateVideosOperation) string {
	if op == nil || op.Response == nil || len(op.Response.GeneratedVideos) == 0 {
		return ""
	}
	video := op.Response.GeneratedVideos[0]
	if video == nil || video.Video == nil {
		return ""
	}
	return video.Video.URI
}

func (c *Client) fetchVideo(ctx context.Context, uri string) ([]byte, string, error) {
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	signed := uri + sep + "key=" + url.QueryEscape(c.cfg.GeminiAPIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, signed, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = "video/mp4"
	}
	return data, mimeType, nil
}
