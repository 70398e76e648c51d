package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Gemini ────────────────────────────────────────────────────────────────────

func TestGemini_DevuelveTextoConcatenado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "instrucción", req.SystemInstruction.Parts[0].Text)
		assert.JSONEq(t, `{"a":1}`, req.Contents[0].Parts[0].Text)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Vendas "},{"text":"em alta.\n"}]}}]}`))
	}))
	defer srv.Close()

	svc := NewGeminiService("k", "gemini-test").WithBaseURL(srv.URL)
	text, err := svc.GenerateInsights(context.Background(), "instrucción", []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "Vendas em alta.", text)
}

func TestGemini_ErrorDeLaAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota"}}`))
	}))
	defer srv.Close()

	_, err := NewGeminiService("k", "m").WithBaseURL(srv.URL).GenerateInsights(context.Background(), "i", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota")
}

func TestGemini_SinAPIKey(t *testing.T) {
	_, err := NewGeminiService("", "m").GenerateInsights(context.Background(), "i", nil)
	assert.Error(t, err)
}

// ── Anthropic ─────────────────────────────────────────────────────────────────

func TestAnthropic_DevuelveTexto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "instrucción", req.System)

		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"  Stock baixo em 2 produtos. "}]}`))
	}))
	defer srv.Close()

	text, err := NewAnthropicService("k", "claude").WithBaseURL(srv.URL).
		GenerateInsights(context.Background(), "instrucción", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "Stock baixo em 2 produtos.", text)
}

func TestAnthropic_RespuestaVacia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	_, err := NewAnthropicService("k", "m").WithBaseURL(srv.URL).GenerateInsights(context.Background(), "i", nil)
	assert.Error(t, err)
}

func TestAnthropic_RespetaTimeoutDelContexto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewAnthropicService("k", "m").WithBaseURL(srv.URL).GenerateInsights(ctx, "i", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ── Selección de proveedor ────────────────────────────────────────────────────

func TestNew_SinKeyDevuelveNil(t *testing.T) {
	assert.Nil(t, New("gemini", "", "m", "x", "m"))
	assert.Nil(t, New("anthropic", "x", "m", "", "m"))
	assert.IsType(t, &AnthropicService{}, New("anthropic", "", "m", "k", "m"))
	assert.IsType(t, &GeminiService{}, New("gemini", "k", "m", "", "m"))
}

// ── Cliente compartido ────────────────────────────────────────────────────────

func TestPostJSON_StatusSinCuerpoDeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewAnthropicService("k", "m").WithBaseURL(srv.URL).GenerateInsights(context.Background(), "i", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestPostJSON_CuerpoIlegible(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	_, err := NewGeminiService("k", "m").WithBaseURL(srv.URL).GenerateInsights(context.Background(), "i", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ilegible")
}

func TestGemini_SinCandidatos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := NewGeminiService("k", "m").WithBaseURL(srv.URL).GenerateInsights(context.Background(), "i", nil)
	assert.Error(t, err)
}
