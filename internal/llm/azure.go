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

// ChatClient calls an Azure OpenAI chat-completions deployment. The same
// deployment serves both the vision extraction call and the search
// filter extraction call.
type ChatClient struct {
	endpoint   string
	deployment string
	apiVersion string
	apiKey     string
	http       *http.Client
}

func NewChatClient(endpoint, deployment, apiVersion, apiKey string) *ChatClient {
	return &ChatClient{
		endpoint:   endpoint,
		deployment: deployment,
		apiVersion: apiVersion,
		apiKey:     apiKey,
		http:       &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *ChatClient) url() string {
	return fmt.Sprintf(
		"%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint,
		c.deployment,
		c.apiVersion,
	)
}

func (c *ChatClient) post(ctx context.Context, payload map[string]interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(), bytes.NewBuffer(body))
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
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("azure api error: %d - %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("azure api error: %d - %s", resp.StatusCode, string(raw))
	}

	return raw, nil
}

// ExtractMenu sends the menu photo with the fixed extraction prompt and
// returns the model's raw text output.
func (c *ChatClient) ExtractMenu(ctx context.Context, imageDataURL string) (string, error) {
	payload := map[string]interface{}{
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "image_url",
						"image_url": map[string]string{
							"url": imageDataURL,
						},
					},
					{
						"type": "text",
						"text": menuExtractionPrompt,
					},
				},
			},
		},
		"max_tokens": 8192,
	}

	raw, err := c.post(ctx, payload)
	if err != nil {
		return "", err
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", errors.New("no extraction result in azure response")
	}

	return result.Choices[0].Message.Content, nil
}

// SearchFilters is what the filter-extraction tool returns: the query
// with filter phrases removed, plus any filters the model recognized.
type SearchFilters struct {
	Query    string   `json:"query"`
	Category *string  `json:"category,omitempty"`
	IsVeg    *bool    `json:"is_veg,omitempty"`
	PriceMax *float64 `json:"price_max,omitempty"`
}

var filterTool = map[string]interface{}{
	"type": "function",
	"function": map[string]interface{}{
		"name":        "extract_search_filters",
		"description": "Extract structured menu filters from a natural language dish search query.",
		"parameters": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "The search text with filter phrases removed.",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Menu category such as Appetizers or Main Courses.",
				},
				"is_veg": map[string]interface{}{
					"type":        "boolean",
					"description": "True when the user asks for vegetarian dishes.",
				},
				"price_max": map[string]interface{}{
					"type":        "number",
					"description": "Maximum price the user mentioned.",
				},
			},
			"required": []string{"query"},
		},
	},
}

// ExtractSearchFilters asks the model to call the filter tool against the
// raw query. A nil result means the model declined.
func (c *ChatClient) ExtractSearchFilters(ctx context.Context, query string) (*SearchFilters, error) {
	payload := map[string]interface{}{
		"messages": []map[string]interface{}{
			{
				"role":    "system",
				"content": "You extract structured filters from restaurant menu search queries.",
			},
			{
				"role":    "user",
				"content": query,
			},
		},
		"tools":       []interface{}{filterTool},
		"tool_choice": "auto",
		"temperature": 0,
	}

	raw, err := c.post(ctx, payload)
	if err != nil {
		return nil, err
	}

	var result struct {
		Choices []struct {
			Message struct {
				ToolCalls []struct {
					Function struct {
						Name      string `json:"name"`
						Arguments string `json:"arguments"`
					} `json:"function"`
				} `json:"tool_calls"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	if len(result.Choices) == 0 || len(result.Choices[0].Message.ToolCalls) == 0 {
		return nil, nil
	}

	call := result.Choices[0].Message.ToolCalls[0].Function
	if call.Name != "extract_search_filters" {
		return nil, nil
	}

	var filters SearchFilters
	if err := json.Unmarshal([]byte(call.Arguments), &filters); err != nil {
		return nil, fmt.Errorf("invalid tool arguments: %w", err)
	}

	return &filters, nil
}
