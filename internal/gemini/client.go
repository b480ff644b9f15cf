package gemini

import (
	"context"
	"errors"
	"strings"
	"sync"

	config "github.com/flashfusion/studio-api/configs"
	"google.golang.org/genai"
)

// Blob is a produced media payload plus its MIME type.
type Blob struct {
	Data []byte
	MIME string
}

// Backend is the generative capability surface the services consume. The
// production implementation talks to the Gemini API; tests substitute fakes.
type Backend interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt string, aspectRatio string) (Blob, error)
	ComposeImage(ctx context.Context, base Blob, overlay Blob, instruction string) (Blob, error)
	StartVideo(ctx context.Context, prompt string, aspectRatio string) (string, error)
	PollVideo(ctx context.Context, op string) (bool, Blob, error)
}

type Client struct {
	genai *genai.Client
	cfg   config.Config

	mu  sync.Mutex
	ops map[string]*genai.GenerateVideosOperation
}

func NewClient(ctx context.Context, cfg config.Config) (*Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		genai: gc,
		cfg:   cfg,
		ops:   make(map[string]*genai.GenerateVideosOperation),
	}, nil
}

func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	const op = "generate_text"

	resp, err := c.genai.Models.GenerateContent(ctx, c.cfg.TextModel, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(op, err)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", blocked(op, resp.PromptFeedback.BlockReason)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", empty(op)
	}
	return text, nil
}

func (c *Client) GenerateImage(ctx context.Context, prompt string, aspectRatio string) (Blob, error) {
	const op = "generate_image"

	resp, err := c.genai.Models.GenerateImages(ctx, c.cfg.ImageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/jpeg",
		AspectRatio:    aspectRatio,
	})
	if err != nil {
		return Blob{}, classify(op, err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return Blob{}, empty(op)
	}

	img := resp.GeneratedImages[0].Image
	mime := img.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}
	return Blob{Data: img.ImageBytes, MIME: mime}, nil
}

func (c *Client) ComposeImage(ctx context.Context, base Blob, overlay Blob, instruction string) (Blob, error) {
	const op = "compose_image"

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(instruction),
			genai.NewPartFromBytes(base.Data, base.MIME),
			genai.NewPartFromBytes(overlay.Data, overlay.MIME),
		}, genai.RoleUser),
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.cfg.ComposeModel, contents, nil)
	if err != nil {
		return Blob{}, classify(op, err)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return Blob{}, blocked(op, resp.PromptFeedback.BlockReason)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return Blob{Data: part.InlineData.Data, MIME: part.InlineData.MIMEType}, nil
			}
		}
	}
	return Blob{}, empty(op)
}

func (c *Client) StartVideo(ctx context.Context, prompt string, aspectRatio string) (string, error) {
	const op = "start_video"

	operation, err := c.genai.Models.GenerateVideos(ctx, c.cfg.VideoModel, prompt, nil, &genai.GenerateVideosConfig{
		AspectRatio: aspectRatio,
	})
	if err != nil {
		return "", classify(op, err)
	}

	c.mu.Lock()
	c.ops[operation.Name] = operation
	c.mu.Unlock()

	return operation.Name, nil
}

func (c *Client) PollVideo(ctx context.Context, op string) (bool, Blob, error) {
	const opName = "poll_video"

	c.mu.Lock()
	operation, ok := c.ops[op]
	c.mu.Unlock()
	if !ok {
		return false, Blob{}, &Error{Kind: KindUnavailable, Op: opName, Err: errors.New("unknown video operation")}
	}

	operation, err := c.genai.Operations.GetVideosOperation(ctx, operation, nil)
	if err != nil {
		return false, Blob{}, classify(opName, err)
	}

	c.mu.Lock()
	c.ops[op] = operation
	c.mu.Unlock()

	if !operation.Done {
		return false, Blob{}, nil
	}

	c.mu.Lock()
	delete(c.ops, op)
	c.mu.Unlock()

	if operation.Response == nil || len(operation.Response.GeneratedVideos) == 0 {
		return true, Blob{}, empty(opName)
	}

	video := operation.Response.GeneratedVideos[0].Video
	if video == nil {
		return true, Blob{}, empty(opName)
	}
	data := video.VideoBytes
	if len(data) == 0 {
		downloaded, err := c.genai.Files.Download(ctx, video, nil)
		if err != nil {
			return true, Blob{}, classify(opName, err)
		}
		data = video.VideoBytes
		if len(data) == 0 {
			data = downloaded
		}
	}
	if len(data) == 0 {
		return true, Blob{}, empty(opName)
	}

	mime := video.MIMEType
	if mime == "" {
		mime = "video/mp4"
	}
	return true, Blob{Data: data, MIME: mime}, nil
}
