package search

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ashikraj78/menuMind/internal/llm"

	"github.com/google/uuid"
)

var ErrEmbedding = errors.New("Embedding service error")

const (
	defaultLimit = 10
	maxLimit     = 50
)

// Request is the raw search input before filter extraction. Explicit
// filters may still be overridden by what the model reads out of the
// query text.
type Request struct {
	Query    string
	MenuID   uuid.UUID
	Category *string
	IsVeg    *bool
	PriceMax *float64
	Limit    int
}

type Service struct {
	repo     Repository
	embedder llm.Embedder
	filters  llm.FilterExtractor
}

func NewService(repo Repository, embedder llm.Embedder, filters llm.FilterExtractor) *Service {
	return &Service{repo: repo, embedder: embedder, filters: filters}
}

// Search runs the hybrid pipeline: best-effort filter extraction, query
// embedding, parameterized ranking. Filter extraction never fails the
// request; a failed embedding does, since ranking is meaningless
// without it.
func (s *Service) Search(ctx context.Context, req Request) ([]*Result, error) {
	query := req.Query
	category := req.Category
	isVeg := req.IsVeg
	priceMax := req.PriceMax

	extracted, err := s.filters.ExtractSearchFilters(ctx, req.Query)
	if err != nil {
		log.Printf("search: filter extraction failed, using raw query: %v", err)
	} else if extracted != nil {
		if extracted.Query != "" {
			query = extracted.Query
		}
		if extracted.Category != nil {
			category = extracted.Category
		}
		if extracted.IsVeg != nil {
			isVeg = extracted.IsVeg
		}
		if extracted.PriceMax != nil {
			priceMax = extracted.PriceMax
		}
	}

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbedding, err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return s.repo.Search(ctx, Params{
		Embedding: embedding,
		QueryText: query,
		MenuID:    req.MenuID,
		Category:  category,
		IsVeg:     isVeg,
		PriceMax:  priceMax,
		Limit:     limit,
	})
}
