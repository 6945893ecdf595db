package menuitem

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDedupKeyCollapsesTrailingZeros(t *testing.T) {
	category := "Starters"

	a := &Item{Name: "Samosa", Category: &category, Price: decimal.RequireFromString("12.50")}
	b := &Item{Name: "Samosa", Category: &category, Price: decimal.RequireFromString("12.5")}

	if a.DedupKey() != b.DedupKey() {
		t.Errorf("expected equal keys, got %q vs %q", a.DedupKey(), b.DedupKey())
	}
}

func TestDedupKeyDistinguishes(t *testing.T) {
	category := "Starters"
	base := &Item{Name: "Samosa", Category: &category, Price: decimal.RequireFromString("12.5")}

	other := "Mains"
	for _, item := range []*Item{
		{Name: "Kachori", Category: &category, Price: decimal.RequireFromString("12.5")},
		{Name: "Samosa", Category: &other, Price: decimal.RequireFromString("12.5")},
		{Name: "Samosa", Category: &category, Price: decimal.RequireFromString("13")},
		{Name: "Samosa", Price: decimal.RequireFromString("12.5")},
	} {
		if item.DedupKey() == base.DedupKey() {
			t.Errorf("expected distinct key for %+v", item)
		}
	}
}

func TestDetailResponseJoinsEmbedding(t *testing.T) {
	item := &Item{Name: "Dal", Price: decimal.RequireFromString("8"), Embedding: []float32{0.5, -1, 0.25}}

	resp := item.DetailResponse()
	joined, ok := resp.Embedding.(string)
	if !ok {
		t.Fatalf("expected string embedding, got %T", resp.Embedding)
	}
	if joined != "0.5,-1,0.25" {
		t.Errorf("unexpected joined embedding %q", joined)
	}
}

func TestListResponseTruncatesEmbedding(t *testing.T) {
	embedding := make([]float32, 1536)
	for i := range embedding {
		embedding[i] = float32(i)
	}
	item := &Item{Name: "Dal", Price: decimal.RequireFromString("8"), Embedding: embedding}

	resp := item.ListResponse()
	truncated, ok := resp.Embedding.([]float32)
	if !ok {
		t.Fatalf("expected []float32 embedding, got %T", resp.Embedding)
	}
	if len(truncated) != 10 {
		t.Errorf("expected 10 components, got %d", len(truncated))
	}
}

func TestResponsesWithoutEmbedding(t *testing.T) {
	item := &Item{Name: "Dal", Price: decimal.RequireFromString("8")}

	if item.DetailResponse().Embedding != nil {
		t.Error("expected nil embedding in detail response")
	}
	if item.ListResponse().Embedding != nil {
		t.Error("expected nil embedding in list response")
	}
}

func TestResponsePriceIsFloat(t *testing.T) {
	item := &Item{Name: "Dal", Price: decimal.RequireFromString("12.50")}
	if got := item.DetailResponse().Price; got != 12.5 {
		t.Errorf("expected 12.5, got %v", got)
	}
}
