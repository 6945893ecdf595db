package search

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Result is one ranked menu item as returned by the hybrid search
// function. Distance blends vector distance and lexical rank; lower
// is better.
type Result struct {
	ID                uuid.UUID
	MenuID            uuid.UUID
	Name              string
	Description       *string
	DescriptionSource *string
	Price             decimal.Decimal
	Category          *string
	IsVeg             *bool
	SpiceLevel        *string
	ImageURL          *string
	Embedding         *string
	CreatedAt         time.Time
	Distance          float64
}

type Response struct {
	ID                uuid.UUID `json:"id"`
	MenuID            uuid.UUID `json:"menu_id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description"`
	DescriptionSource *string   `json:"description_source"`
	Price             float64   `json:"price"`
	Category          *string   `json:"category"`
	IsVeg             *bool     `json:"is_veg"`
	SpiceLevel        *string   `json:"spice_level"`
	ImageURL          *string   `json:"image_url"`
	Embedding         []float32 `json:"embedding"`
	CreatedAt         time.Time `json:"created_at"`
	Distance          float64   `json:"distance"`
}

func (r *Result) ToResponse() Response {
	return Response{
		ID:                r.ID,
		MenuID:            r.MenuID,
		Name:              r.Name,
		Description:       r.Description,
		DescriptionSource: r.DescriptionSource,
		Price:             r.Price.InexactFloat64(),
		Category:          r.Category,
		IsVeg:             r.IsVeg,
		SpiceLevel:        r.SpiceLevel,
		ImageURL:          r.ImageURL,
		Embedding:         truncateEmbedding(r.Embedding, 10),
		CreatedAt:         r.CreatedAt,
		Distance:          r.Distance,
	}
}

// truncateEmbedding parses the vector's text form ("[0.1,0.2,...]") and
// keeps at most n leading components, the same list shaping items get.
func truncateEmbedding(text *string, n int) []float32 {
	if text == nil {
		return nil
	}
	trimmed := strings.Trim(strings.TrimSpace(*text), "[]")
	if trimmed == "" {
		return nil
	}

	parts := strings.Split(trimmed, ",")
	if len(parts) > n {
		parts = parts[:n]
	}

	out := make([]float32, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil
		}
		out = append(out, float32(v))
	}
	return out
}
