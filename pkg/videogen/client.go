package videogen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultModel is the default video generation model
	DefaultModel = "veo-3.1-generate-preview"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultPollInterval is the wait between operation status checks
	DefaultPollInterval = 10 * time.Second

	// DefaultTimeout bounds a whole generation job
	DefaultTimeout = 300 * time.Second

	// DefaultRequestsPerMin paces new generation jobs
	DefaultRequestsPerMin = 6

	// referenceTypeAsset marks a reference image as a style/content asset
	referenceTypeAsset = "asset"
)

// Client is the Veo video generation API client. Generation runs as a
// long-running operation: start the job, poll until done, fetch the
// video.
type Client struct {
	apiKey       string
	apiURL       string
	model        string
	pollInterval time.Duration
	timeout      time.Duration
	limiter      *rate.Limiter
	httpClient   *http.Client
}

// NewClient creates a new video generation client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:       apiKey,
		apiURL:       DefaultAPIURL,
		model:        DefaultModel,
		pollInterval: DefaultPollInterval,
		timeout:      DefaultTimeout,
		limiter:      rate.NewLimiter(rate.Every(time.Minute/DefaultRequestsPerMin), 1),
		httpClient:   &http.Client{},
	}
}

// SetAPIURL overrides the API endpoint, used for testing.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SetModel overrides the default model.
func (c *Client) SetModel(model string) {
	if model != "" {
		c.model = model
	}
}

// SetPollInterval overrides the operation polling interval.
func (c *Client) SetPollInterval(d time.Duration) {
	if d > 0 {
		c.pollInterval = d
	}
}

// SetTimeout overrides the per-job timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.timeout = d
	}
}

// SetRequestsPerMin overrides the job start rate limit.
func (c *Client) SetRequestsPerMin(n int) {
	if n > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), 1)
	}
}

// Model returns the model being used.
func (c *Client) Model() string {
	return c.model
}

// GenerateVideo generates a video from a text prompt.
func (c *Client) GenerateVideo(ctx context.Context, prompt string, duration int) (*Result, error) {
	inst := instance{Prompt: prompt}
	return c.run(ctx, inst, prompt, duration)
}

// ImageToVideo animates a single reference image. The image is raw
// PNG or JPEG bytes.
func (c *Client) ImageToVideo(ctx context.Context, image []byte, prompt string, duration int) (*Result, error) {
	inst := instance{
		Prompt: prompt,
		ReferenceImages: []referenceImage{
			{Image: encodeImage(image), ReferenceType: referenceTypeAsset},
		},
	}
	return c.run(ctx, inst, prompt, duration)
}

// FirstToLastFrame interpolates a video between two frames. The first
// frame rides on the instance, the last frame in its own field.
func (c *Client) FirstToLastFrame(ctx context.Context, first, last []byte, prompt string, duration int) (*Result, error) {
	firstPayload := encodeImage(first)
	lastPayload := encodeImage(last)
	inst := instance{
		Prompt:    prompt,
		Image:     &firstPayload,
		LastFrame: &lastPayload,
	}
	return c.run(ctx, inst, prompt, duration)
}

// CheckStatus resumes polling an already started operation.
func (c *Client) CheckStatus(ctx context.Context, operationName string) (*Result, error) {
	start := time.Now()
	op, err := c.getOperation(ctx, operationName)
	if err != nil {
		return nil, err
	}
	return c.wait(ctx, op, start, "", 0)
}

func (c *Client) run(ctx context.Context, inst instance, prompt string, duration int) (*Result, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("video API key not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	op, err := c.startOperation(ctx, videoRequest{
		Instances:  []instance{inst},
		Parameters: &parameters{DurationSeconds: duration},
	})
	if err != nil {
		return nil, err
	}

	return c.wait(ctx, op, start, prompt, duration)
}

func (c *Client) wait(ctx context.Context, op *operation, start time.Time, prompt string, duration int) (*Result, error) {
	for !op.Done {
		if elapsed := time.Since(start); elapsed > c.timeout {
			return nil, fmt.Errorf("video generation timeout after %s", elapsed.Round(time.Second))
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		next, err := c.getOperation(ctx, op.Name)
		if err != nil {
			return nil, err
		}
		op = next
	}

	if op.Error != nil {
		return nil, fmt.Errorf("video generation failed: %d %s", op.Error.Code, op.Error.Message)
	}

	video, err := c.extractVideo(ctx, op)
	if err != nil {
		return nil, err
	}

	return &Result{
		VideoData:      video,
		OperationName:  op.Name,
		Prompt:         prompt,
		Duration:       duration,
		GenerationTime: time.Since(start),
	}, nil
}

func (c *Client) extractVideo(ctx context.Context, op *operation) ([]byte, error) {
	if op.Response == nil || op.Response.GenerateVideoResponse == nil ||
		len(op.Response.GenerateVideoResponse.GeneratedSamples) == 0 {
		return nil, fmt.Errorf("operation done but returned no video data")
	}

	video := op.Response.GenerateVideoResponse.GeneratedSamples[0].Video
	if video.BytesBase64Encoded != "" {
		raw, err := base64.StdEncoding.DecodeString(video.BytesBase64Encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode video data: %w", err)
		}
		return raw, nil
	}
	if video.URI != "" {
		return c.download(ctx, video.URI)
	}

	return nil, fmt.Errorf("operation done but returned no video data")
}

func (c *Client) startOperation(ctx context.Context, req videoRequest) (*operation, error) {
	url := fmt.Sprintf("%s/models/%s:predictLongRunning?key=%s", c.apiURL, c.model, c.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.doOperation(httpReq)
}

func (c *Client) getOperation(ctx context.Context, name string) (*operation, error) {
	url := fmt.Sprintf("%s/%s?key=%s", c.apiURL, name, c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return c.doOperation(httpReq)
}

func (c *Client) doOperation(req *http.Request) (*operation, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call video API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("video API error %d: %s", resp.StatusCode, string(raw))
	}

	var op operation
	if err := json.NewDecoder(resp.Body).Decode(&op); err != nil {
		return nil, fmt.Errorf("failed to decode operation: %w", err)
	}

	return &op, nil
}

func (c *Client) download(ctx context.Context, uri string) ([]byte, error) {
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, uri+sep+"key="+c.apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to download video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("video download error %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// encodeImage sniffs the image format and wraps the bytes for the wire.
func encodeImage(img []byte) imagePayload {
	return imagePayload{
		BytesBase64Encoded: base64.StdEncoding.EncodeToString(img),
		MIMEType:           detectMIME(img),
	}
}

func detectMIME(img []byte) string {
	if len(img) >= 2 && img[0] == 0xFF && img[1] == 0xD8 {
		return "image/jpeg"
	}
	return "image/png"
}
