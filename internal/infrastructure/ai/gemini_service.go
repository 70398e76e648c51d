package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/wymdy/erp-api/internal/application/ports"
)

var _ ports.InsightGenerator = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiService InsightGenerator sobre generateContent de Google Gemini.
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador (model p. ej. "gemini-1.5-flash").
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey:     apiKey,
		model:      model,
		baseURL:    geminiBaseURL,
		httpClient: &http.Client{Timeout: httpTimeout},
	}
}

// WithBaseURL cambia el endpoint (tests, proxy).
func (s *GeminiService) WithBaseURL(u string) *GeminiService {
	s.baseURL = strings.TrimRight(u, "/")
	return s
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  struct {
		Temperature     float32 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (r *geminiResponse) errorMessage() string {
	if r.Error == nil {
		return ""
	}
	return r.Error.Message
}

// GenerateInsights manda la instrucción como system_instruction y el JSON de métricas como turno del usuario.
func (s *GeminiService) GenerateInsights(ctx context.Context, instruction string, data []byte) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("gemini: GEMINI_API_KEY no configurado")
	}
	req := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: instruction}}},
		Contents:          []geminiContent{{Role: "user", Parts: []geminiPart{{Text: string(data)}}}},
	}
	req.GenerationConfig.Temperature = 0.4
	req.GenerationConfig.MaxOutputTokens = 512

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", s.baseURL, s.model, url.QueryEscape(s.apiKey))
	var resp geminiResponse
	if err := postJSON(ctx, s.httpClient, "gemini", endpoint, nil, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("gemini: sin candidatos")
	}
	parts := make([]string, 0, len(resp.Candidates[0].Content.Parts))
	for _, p := range resp.Candidates[0].Content.Parts {
		parts = append(parts, p.Text)
	}
	return joinText("gemini", parts)
}
