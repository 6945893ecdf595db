package llm

import "context"

// MenuExtractor turns a menu photo (as a data URL) into the model's raw
// text output.
type MenuExtractor interface {
	ExtractMenu(ctx context.Context, imageDataURL string) (string, error)
}

// Embedder computes a text embedding.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// FilterExtractor pulls structured search filters out of a natural
// language query. A nil result with nil error means the model declined
// to extract.
type FilterExtractor interface {
	ExtractSearchFilters(ctx context.Context, query string) (*SearchFilters, error)
}
