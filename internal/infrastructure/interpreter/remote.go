package interpreter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/obsidian-os/obsidian-shell/internal/domain"
	"github.com/obsidian-os/obsidian-shell/internal/ports"
)

// Remote delegates interpretation to an HTTP inference endpoint. Any failure
// (transport, status, empty reply) surfaces as an interpretation error, which
// the session treats as non-fatal and answers by executing the raw input.
type Remote struct {
	cfg        domain.AIConfig
	httpClient *http.Client
}

// NewRemote builds a remote interpreter. A nil client gets a default with
// the standard request timeout.
func NewRemote(cfg domain.AIConfig, client *http.Client) *Remote {
	if client == nil {
		client = &http.Client{Timeout: domain.DefaultHTTPClientTimeout}
	}
	return &Remote{cfg: cfg, httpClient: client}
}

type interpretRequest struct {
	Prompt      string  `json:"prompt"`
	ModelPath   string  `json:"model_path,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

type interpretResponse struct {
	Command string `json:"command"`
}

// Name implements ports.Interpreter.
func (r *Remote) Name() string {
	return "remote"
}

// Interpret implements ports.Interpreter.
func (r *Remote) Interpret(ctx context.Context, raw string) (string, error) {
	payload := interpretRequest{
		Prompt:      raw,
		ModelPath:   r.cfg.ModelPath,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.APIEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("content-type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("interpret: %s", resp.Status)
	}

	var decoded interpretResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	command := strings.TrimSpace(decoded.Command)
	if command == "" {
		return "", errors.New("interpret: empty command in response")
	}
	return command, nil
}

var _ ports.Interpreter = (*Remote)(nil)
