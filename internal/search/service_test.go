package search

import (
	"context"
	"errors"
	"testing"

	"github.com/ashikraj78/menuMind/internal/llm"

	"github.com/google/uuid"
)

type mockRepo struct {
	lastParams *Params
	results    []*Result
	err        error
}

func (m *mockRepo) Search(_ context.Context, params Params) ([]*Result, error) {
	m.lastParams = &params
	return m.results, m.err
}

type mockEmbedder struct {
	err error
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []float32{0.1, 0.2}, nil
}

type mockFilters struct {
	filters *llm.SearchFilters
	err     error
}

func (m *mockFilters) ExtractSearchFilters(_ context.Context, _ string) (*llm.SearchFilters, error) {
	return m.filters, m.err
}

func TestSearchPassesResolvedParams(t *testing.T) {
	repo := &mockRepo{}
	service := NewService(repo, &mockEmbedder{}, &mockFilters{})
	menuID := uuid.New()

	_, err := service.Search(context.Background(), Request{Query: "spicy starters", MenuID: menuID})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if repo.lastParams == nil {
		t.Fatal("expected repo call")
	}
	if repo.lastParams.QueryText != "spicy starters" {
		t.Errorf("unexpected query %q", repo.lastParams.QueryText)
	}
	if repo.lastParams.MenuID != menuID {
		t.Error("menu id not forwarded")
	}
	if repo.lastParams.Limit != 10 {
		t.Errorf("expected default limit 10, got %d", repo.lastParams.Limit)
	}
	if len(repo.lastParams.Embedding) == 0 {
		t.Error("expected query embedding")
	}
}

func TestSearchExtractedFiltersOverrideExplicit(t *testing.T) {
	repo := &mockRepo{}
	category := "Desserts"
	isVeg := true
	priceMax := 9.0
	service := NewService(repo, &mockEmbedder{}, &mockFilters{filters: &llm.SearchFilters{
		Query:    "chocolate",
		Category: &category,
		IsVeg:    &isVeg,
		PriceMax: &priceMax,
	}})

	explicitCategory := "Mains"
	_, err := service.Search(context.Background(), Request{
		Query:    "cheap veg chocolate dessert",
		MenuID:   uuid.New(),
		Category: &explicitCategory,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	params := repo.lastParams
	if params.QueryText != "chocolate" {
		t.Errorf("expected rewritten query, got %q", params.QueryText)
	}
	if params.Category == nil || *params.Category != "Desserts" {
		t.Errorf("expected extracted category to win, got %v", params.Category)
	}
	if params.IsVeg == nil || !*params.IsVeg {
		t.Error("expected extracted is_veg")
	}
	if params.PriceMax == nil || *params.PriceMax != 9.0 {
		t.Errorf("expected extracted price_max, got %v", params.PriceMax)
	}
}

func TestSearchFilterExtractionFailureIsNonFatal(t *testing.T) {
	repo := &mockRepo{}
	service := NewService(repo, &mockEmbedder{}, &mockFilters{err: errors.New("model overloaded")})

	_, err := service.Search(context.Background(), Request{Query: "dal", MenuID: uuid.New()})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if repo.lastParams.QueryText != "dal" {
		t.Errorf("expected raw query, got %q", repo.lastParams.QueryText)
	}
}

func TestSearchEmbeddingFailureIsFatal(t *testing.T) {
	repo := &mockRepo{}
	service := NewService(repo, &mockEmbedder{err: errors.New("quota exceeded")}, &mockFilters{})

	_, err := service.Search(context.Background(), Request{Query: "dal", MenuID: uuid.New()})
	if !errors.Is(err, ErrEmbedding) {
		t.Fatalf("expected ErrEmbedding, got %v", err)
	}
	if err.Error() != "Embedding service error: quota exceeded" {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
	if repo.lastParams != nil {
		t.Error("ranking must not run without an embedding")
	}
}

func TestSearchLimitCap(t *testing.T) {
	repo := &mockRepo{}
	service := NewService(repo, &mockEmbedder{}, &mockFilters{})

	if _, err := service.Search(context.Background(), Request{Query: "dal", MenuID: uuid.New(), Limit: 500}); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if repo.lastParams.Limit != 50 {
		t.Errorf("expected capped limit 50, got %d", repo.lastParams.Limit)
	}
}
