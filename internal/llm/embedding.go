package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// EmbeddingClient calls an Azure OpenAI embeddings deployment. It is a
// separate deployment with its own endpoint and key.
type EmbeddingClient struct {
	endpoint   string
	deployment string
	apiVersion string
	apiKey     string
	http       *http.Client
}

func NewEmbeddingClient(endpoint, deployment, apiVersion, apiKey string) *EmbeddingClient {
	return &EmbeddingClient{
		endpoint:   endpoint,
		deployment: deployment,
		apiVersion: apiVersion,
		apiKey:     apiKey,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *EmbeddingClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, errors.New("empty embedding input")
	}

	url := fmt.Sprintf(
		"%s/openai/deployments/%s/embeddings?api-version=%s",
		c.endpoint,
		c.deployment,
		c.apiVersion,
	)

	body, err := json.Marshal(map[string]string{"input": text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding api error: %d - %s", resp.StatusCode, string(raw))
	}

	var result struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	if len(result.Data) == 0 || len(result.Data[0].Embedding) == 0 {
		return nil, errors.New("embedding missing in response")
	}

	return result.Data[0].Embedding, nil
}
