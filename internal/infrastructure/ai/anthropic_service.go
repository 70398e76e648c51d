package ai

import (
	"context"
	"errors"
	"net/http"

	"github.com/wymdy/erp-api/internal/application/ports"
)

var _ ports.InsightGenerator = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
	anthropicMaxTokens   = 512
)

// AnthropicService InsightGenerator sobre la Messages API de Anthropic.
type AnthropicService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador (model p. ej. "claude-3-5-haiku-latest").
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey:     apiKey,
		model:      model,
		baseURL:    anthropicMessagesURL,
		httpClient: &http.Client{Timeout: httpTimeout},
	}
}

// WithBaseURL cambia el endpoint (tests, proxy).
func (s *AnthropicService) WithBaseURL(u string) *AnthropicService {
	s.baseURL = u
	return s
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (r *anthropicResponse) errorMessage() string {
	if r.Error == nil {
		return ""
	}
	return r.Error.Type + ": " + r.Error.Message
}

// GenerateInsights manda la instrucción como system y las métricas como único mensaje del usuario.
func (s *AnthropicService) GenerateInsights(ctx context.Context, instruction string, data []byte) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("anthropic: ANTHROPIC_API_KEY no configurado")
	}
	req := anthropicRequest{
		Model:     s.model,
		MaxTokens: anthropicMaxTokens,
		System:    instruction,
		Messages:  []anthropicMessage{{Role: "user", Content: string(data)}},
	}
	header := http.Header{}
	header.Set("x-api-key", s.apiKey)
	header.Set("anthropic-version", anthropicVersion)

	var resp anthropicResponse
	if err := postJSON(ctx, s.httpClient, "anthropic", s.baseURL, header, req, &resp); err != nil {
		return "", err
	}
	var parts []string
	for _, c := range resp.Content {
		if c.Type == "text" {
			parts = append(parts, c.Text)
		}
	}
	return joinText("anthropic", parts)
}
