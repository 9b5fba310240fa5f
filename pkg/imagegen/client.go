package imagegen

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
)

const (
	// DefaultModel is the default image generation model
	DefaultModel = "gemini-2.5-flash-image-preview"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout. Image
	// generation responses carry megabytes of inline data.
	DefaultTimeout = 120 * time.Second
)

// referencePromptTemplate wraps an image-to-image instruction so the
// model returns an image instead of a textual description.
const referencePromptTemplate = "請根據以下參考圖片生成一張新圖片。\n要求：%s\n請直接生成圖片，不要返回文字描述。"

// Client is the Gemini image generation API client.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewClient creates a new image generation client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     DefaultAPIURL,
		model:      DefaultModel,
		httpClient: &http.Client{Timeout: DefaultTimeout},
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

// Model returns the model being used.
func (c *Client) Model() string {
	return c.model
}

// TextToImage generates an image from a text prompt.
func (c *Client) TextToImage(ctx context.Context, prompt string) (*Result, error) {
	return c.generate(ctx, prompt, nil)
}

// ImageWithReference generates an image guided by one or more reference
// images. References are PNG-encoded bytes.
func (c *Client) ImageWithReference(ctx context.Context, prompt string, references [][]byte) (*Result, error) {
	enhanced := fmt.Sprintf(referencePromptTemplate, prompt)
	return c.generate(ctx, enhanced, references)
}

func (c *Client) generate(ctx context.Context, text string, images [][]byte) (*Result, error) {
	parts := make([]part, 0, len(images)+1)
	for _, img := range images {
		parts = append(parts, part{InlineData: &inlineData{
			MIMEType: "image/png",
			Data:     base64.StdEncoding.EncodeToString(img),
		}})
	}
	parts = append(parts, part{Text: text})

	req := generateRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: &generationConfig{
			Temperature:     1,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 8192,
		},
	}

	resp, err := c.callAPI(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("image model returned no candidates")
	}

	// The model may interleave text parts with the image part. The
	// first inline payload wins; collected text feeds the error when
	// no image came back.
	var texts []string
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			raw, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("failed to decode image data: %w", err)
			}
			mime := p.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			return &Result{
				ImageData: raw,
				MIMEType:  mime,
				Prompt:    text,
				Model:     c.model,
			}, nil
		}
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}

	if len(texts) > 0 {
		return nil, fmt.Errorf("image model returned no image data, text was: %s", strings.Join(texts, " "))
	}
	return nil, fmt.Errorf("image model returned no image data")
}

func (c *Client) callAPI(ctx context.Context, req generateRequest) (*generateResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiURL, c.model, c.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call image API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("image API error %d: %s", resp.StatusCode, string(raw))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode image response: %w", err)
	}

	return &result, nil
}
