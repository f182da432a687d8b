package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
)

const (
	defaultBaseURL          = "https://genai.warungkita.id/v1"
	descriptionVariantCount = 3
	responseBodyReadLimit   = 1024
)

var errAPIKeyRequired = errors.New("genai api key is required")

// Client wraps the generative text/image/price services the seller console
// consumes. The services are opaque JSON-over-HTTP collaborators with no
// availability guarantee; every failure surfaces as a dependency error the
// caller shows inline, without automatic retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured service base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// NewClient builds the generative service client given an API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, errAPIKeyRequired
	}

	client := &Client{
		apiKey:     trimmedKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}

	return client, nil
}

// DescriptionRequest describes the payload for product description variants.
type DescriptionRequest struct {
	ProductName    string  `json:"product_name"`
	Features       string  `json:"features,omitempty"`
	TargetAudience string  `json:"target_audience,omitempty"`
	WritingStyle   string  `json:"writing_style,omitempty"`
	ImageDataURI   *string `json:"image,omitempty"`
}

// PriceRequest describes the payload for a price suggestion.
type PriceRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// PriceSuggestion is the structured price advice returned by the service.
type PriceSuggestion struct {
	SuggestedPrice int64  `json:"suggested_price"`
	Reasoning      string `json:"reasoning"`
}

// GenerateDescriptions requests exactly three description variants. Any
// response that does not carry three non-empty variants is treated as a
// generation failure.
func (c *Client) GenerateDescriptions(ctx context.Context, req DescriptionRequest) ([]string, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "genai client not configured")
	}
	if strings.TrimSpace(req.ProductName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}

	var apiResp struct {
		Variants []string `json:"variants"`
	}
	if err := c.post(ctx, "descriptions", req, &apiResp); err != nil {
		return nil, err
	}

	if len(apiResp.Variants) != descriptionVariantCount {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "generation failed")
	}
	for _, variant := range apiResp.Variants {
		if strings.TrimSpace(variant) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeDependency, "generation failed")
		}
	}

	return apiResp.Variants, nil
}

// GenerateImage requests a single product image returned as a data URI.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "genai client not configured")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "prompt is required")
	}

	payload := struct {
		Prompt      string `json:"prompt"`
		AspectRatio string `json:"aspect_ratio"`
	}{Prompt: prompt, AspectRatio: "1:1"}

	var apiResp struct {
		ImageDataURI string `json:"image_data_uri"`
	}
	if err := c.post(ctx, "images", payload, &apiResp); err != nil {
		return "", err
	}

	if !strings.HasPrefix(apiResp.ImageDataURI, "data:image/") {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "generation failed")
	}

	return apiResp.ImageDataURI, nil
}

// SuggestPrice requests structured price advice for a draft listing.
func (c *Client) SuggestPrice(ctx context.Context, req PriceRequest) (*PriceSuggestion, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "genai client not configured")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}

	var suggestion PriceSuggestion
	if err := c.post(ctx, "price-suggestions", req, &suggestion); err != nil {
		return nil, err
	}

	if suggestion.SuggestedPrice <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "generation failed")
	}

	return &suggestion, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal genai request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path), bytes.NewReader(body))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build genai request")
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute genai request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "genai request failed")
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode genai response")
	}

	return nil
}

func (c *Client) buildURL(path string) string {
	trimmed := strings.TrimRight(c.baseURL, "/")
	path = strings.TrimLeft(path, "/")
	return fmt.Sprintf("%s/%s", trimmed, path)
}
