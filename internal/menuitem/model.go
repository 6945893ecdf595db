package menuitem

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is the stored menu item. Price stays a fixed-precision decimal
// until it crosses the HTTP boundary; the embedding stays a raw vector.
type Item struct {
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
	Embedding         []float32
	CreatedAt         time.Time
}

// SpiceLevels and DescriptionSources are the only accepted enum values.
var (
	SpiceLevels        = []string{"none", "mild", "medium", "hot"}
	DescriptionSources = []string{"extracted", "inferred"}
)

func ValidSpiceLevel(v string) bool {
	for _, s := range SpiceLevels {
		if v == s {
			return true
		}
	}
	return false
}

func ValidDescriptionSource(v string) bool {
	for _, s := range DescriptionSources {
		if v == s {
			return true
		}
	}
	return false
}

// DedupKey identifies an item within a menu for ingestion dedup:
// (name, category, normalized price string). The decimal String form
// drops trailing zeros, so "12.50" and "12.5" collapse to the same key.
func (i *Item) DedupKey() string {
	category := ""
	if i.Category != nil {
		category = *i.Category
	}
	return strings.Join([]string{i.Name, category, i.Price.String()}, "|")
}

// Response is the wire shape of an item. Embedding is either a
// comma-joined string (single fetch), a truncated []float32 (list fetch),
// or nil.
type Response struct {
	ID                uuid.UUID   `json:"id"`
	MenuID            uuid.UUID   `json:"menu_id"`
	Name              string      `json:"name"`
	Description       *string     `json:"description"`
	DescriptionSource *string     `json:"description_source"`
	Price             float64     `json:"price"`
	Category          *string     `json:"category"`
	IsVeg             *bool       `json:"is_veg"`
	SpiceLevel        *string     `json:"spice_level"`
	ImageURL          *string     `json:"image_url"`
	Embedding         interface{} `json:"embedding"`
	CreatedAt         time.Time   `json:"created_at"`
}

func (i *Item) response() Response {
	return Response{
		ID:                i.ID,
		MenuID:            i.MenuID,
		Name:              i.Name,
		Description:       i.Description,
		DescriptionSource: i.DescriptionSource,
		Price:             i.Price.InexactFloat64(),
		Category:          i.Category,
		IsVeg:             i.IsVeg,
		SpiceLevel:        i.SpiceLevel,
		ImageURL:          i.ImageURL,
		CreatedAt:         i.CreatedAt,
	}
}

// DetailResponse renders the full embedding as a comma-joined string.
func (i *Item) DetailResponse() Response {
	resp := i.response()
	if len(i.Embedding) > 0 {
		resp.Embedding = JoinEmbedding(i.Embedding)
	}
	return resp
}

// ListResponse truncates the embedding to its first 10 components.
func (i *Item) ListResponse() Response {
	resp := i.response()
	if len(i.Embedding) > 0 {
		truncated := i.Embedding
		if len(truncated) > 10 {
			truncated = truncated[:10]
		}
		resp.Embedding = truncated
	}
	return resp
}

// JoinEmbedding renders a vector as "0.1,0.2,...".
func JoinEmbedding(embedding []float32) string {
	parts := make([]string, len(embedding))
	for idx, v := range embedding {
		parts[idx] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strings.Join(parts, ",")
}
