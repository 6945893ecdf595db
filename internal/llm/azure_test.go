package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func fakeAzure(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(handler)
}

func TestExtractMenuReturnsContent(t *testing.T) {
	var gotPath, gotKey string
	server := fakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotKey = r.Header.Get("api-key")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"menu_items":[]}`}},
			},
		})
	})
	defer server.Close()

	client := NewChatClient(server.URL, "gpt-4o", "2024-02-01", "test-key")

	content, err := client.ExtractMenu(context.Background(), "data:image/jpeg;base64,aaaa")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if content != `{"menu_items":[]}` {
		t.Errorf("unexpected content %q", content)
	}
	if gotPath != "/openai/deployments/gpt-4o/chat/completions?api-version=2024-02-01" {
		t.Errorf("unexpected request path %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header not set")
	}
}

func TestExtractMenuSurfacesAPIError(t *testing.T) {
	server := fakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "Rate limit exceeded"},
		})
	})
	defer server.Close()

	client := NewChatClient(server.URL, "gpt-4o", "2024-02-01", "test-key")

	_, err := client.ExtractMenu(context.Background(), "data:image/jpeg;base64,aaaa")
	if err == nil || !strings.Contains(err.Error(), "Rate limit exceeded") {
		t.Fatalf("expected rate limit error, got %v", err)
	}
}

func TestExtractMenuEmptyChoices(t *testing.T) {
	server := fakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	})
	defer server.Close()

	client := NewChatClient(server.URL, "gpt-4o", "2024-02-01", "test-key")

	if _, err := client.ExtractMenu(context.Background(), "data:image/jpeg;base64,aaaa"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestExtractSearchFiltersParsesToolCall(t *testing.T) {
	server := fakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{
					"tool_calls": []map[string]interface{}{
						{"function": map[string]string{
							"name":      "extract_search_filters",
							"arguments": `{"query":"paneer","category":"Starters","is_veg":true,"price_max":10}`,
						}},
					},
				}},
			},
		})
	})
	defer server.Close()

	client := NewChatClient(server.URL, "gpt-4o", "2024-02-01", "test-key")

	filters, err := client.ExtractSearchFilters(context.Background(), "veg paneer starters under 10")
	if err != nil {
		t.Fatalf("filter extraction failed: %v", err)
	}
	if filters == nil {
		t.Fatal("expected filters")
	}
	if filters.Query != "paneer" {
		t.Errorf("unexpected query %q", filters.Query)
	}
	if filters.Category == nil || *filters.Category != "Starters" {
		t.Errorf("unexpected category %v", filters.Category)
	}
	if filters.IsVeg == nil || !*filters.IsVeg {
		t.Error("expected is_veg true")
	}
	if filters.PriceMax == nil || *filters.PriceMax != 10 {
		t.Errorf("unexpected price_max %v", filters.PriceMax)
	}
}

func TestExtractSearchFiltersDeclined(t *testing.T) {
	server := fakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": "just a plain answer"}},
			},
		})
	})
	defer server.Close()

	client := NewChatClient(server.URL, "gpt-4o", "2024-02-01", "test-key")

	filters, err := client.ExtractSearchFilters(context.Background(), "paneer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filters != nil {
		t.Errorf("expected nil filters, got %+v", filters)
	}
}

func TestEmbed(t *testing.T) {
	server := fakeAzure(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["input"] == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"embedding": []float32{0.25, -0.5}},
			},
		})
	})
	defer server.Close()

	client := NewEmbeddingClient(server.URL, "text-embedding-3-small", "2024-02-01", "test-key")

	embedding, err := client.Embed(context.Background(), "paneer tikka")
	if err != nil {
		t.Fatalf("embed failed: %v", err)
	}
	if len(embedding) != 2 || embedding[0] != 0.25 {
		t.Errorf("unexpected embedding %v", embedding)
	}

	if _, err := client.Embed(context.Background(), ""); err == nil {
		t.Error("expected error for empty input")
	}
}
