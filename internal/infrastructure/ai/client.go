// Package ai contiene los adaptadores de modelos de lenguaje que generan los insights del dashboard.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wymdy/erp-api/internal/application/ports"
)

const (
	maxResponseBytes = 64 << 10
	// timeout de red; el use case impone además su propio context.WithTimeout
	httpTimeout = 25 * time.Second
)

// New elige el adaptador según AI_PROVIDER (gemini por defecto).
// Sin API key devuelve nil y el dashboard responde con el texto de respaldo.
func New(provider, geminiKey, geminiModel, anthropicKey, anthropicModel string) ports.InsightGenerator {
	switch provider {
	case "anthropic":
		if anthropicKey == "" {
			return nil
		}
		return NewAnthropicService(anthropicKey, anthropicModel)
	default:
		if geminiKey == "" {
			return nil
		}
		return NewGeminiService(geminiKey, geminiModel)
	}
}

// providerResponse respuesta de un proveedor que puede traer un bloque de error en el cuerpo.
type providerResponse interface {
	errorMessage() string
}

// postJSON hace el POST JSON y decodifica el cuerpo en out. Un status distinto de 200 se
// reporta con el mensaje del proveedor si out lo trae.
func postJSON(ctx context.Context, client *http.Client, provider, url string, header http.Header, in any, out providerResponse) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: serializar request: %w", provider, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: crear request: %w", provider, err)
	}
	for k, vs := range header {
		req.Header[k] = vs
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", provider, ctxErr)
		}
		return fmt.Errorf("%s: llamada HTTP: %w", provider, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s: leer respuesta: %w", provider, err)
	}
	decodeErr := json.Unmarshal(raw, out)
	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil {
			if msg := out.errorMessage(); msg != "" {
				return fmt.Errorf("%s: HTTP %d: %s", provider, resp.StatusCode, msg)
			}
		}
		return fmt.Errorf("%s: HTTP %d", provider, resp.StatusCode)
	}
	if decodeErr != nil {
		return fmt.Errorf("%s: respuesta ilegible: %w", provider, decodeErr)
	}
	return nil
}

// joinText concatena los fragmentos de texto; vacío es error.
func joinText(provider string, parts []string) (string, error) {
	text := strings.TrimSpace(strings.Join(parts, ""))
	if text == "" {
		return "", fmt.Errorf("%s: respuesta vacía", provider)
	}
	return text, nil
}
