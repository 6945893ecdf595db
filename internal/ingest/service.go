package ingest

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ashikraj78/menuMind/internal/llm"
	"github.com/ashikraj78/menuMind/internal/menuitem"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUpstream = errors.New("menu extraction service error")
	ErrPersist  = errors.New("failed to insert new menu items")
)

// ItemStore is the slice of the menu-item repository ingestion needs.
type ItemStore interface {
	ListByMenu(ctx context.Context, menuID uuid.UUID) ([]*menuitem.Item, error)
	BulkInsert(ctx context.Context, items []*menuitem.Item) ([]*menuitem.Item, error)
	MenuRestaurant(ctx context.Context, menuID uuid.UUID) (uuid.UUID, error)
}

// PhotoStore archives the uploaded photo; nil disables archiving.
type PhotoStore interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type Service struct {
	items     ItemStore
	extractor llm.MenuExtractor
	embedder  llm.Embedder
	photos    PhotoStore
}

func NewService(items ItemStore, extractor llm.MenuExtractor, embedder llm.Embedder, photos PhotoStore) *Service {
	return &Service{
		items:     items,
		extractor: extractor,
		embedder:  embedder,
		photos:    photos,
	}
}

// Result is either the menu's full item set after ingestion, or the
// model's raw text when no JSON could be recovered from it.
type Result struct {
	MenuItems []menuitem.Response
	Raw       string
}

// ParseMenu runs the full ingestion pipeline: vision extraction,
// tolerant JSON parsing, dedup against existing rows, per-item
// embedding, bulk insert.
func (s *Service) ParseMenu(
	ctx context.Context,
	menuID uuid.UUID,
	image []byte,
	contentType string,
	filename string,
) (*Result, error) {

	if _, err := s.items.MenuRestaurant(ctx, menuID); err != nil {
		return nil, err
	}

	dataURL := fmt.Sprintf(
		"data:%s;base64,%s",
		contentType,
		base64.StdEncoding.EncodeToString(image),
	)

	log.Printf("parse-menu: calling vision extraction menu_id=%s size=%d", menuID, len(image))
	text, err := s.extractor.ExtractMenu(ctx, dataURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	payload, ok := llm.ParseMenuPayload(text)
	if !ok {
		log.Printf("parse-menu: could not recover JSON from extraction output menu_id=%s", menuID)
		return &Result{Raw: text}, nil
	}
	log.Printf("parse-menu: %d items extracted menu_id=%s", len(payload.MenuItems), menuID)

	existing, err := s.items.ListByMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(existing))
	for _, item := range existing {
		seen[item.DedupKey()] = true
	}

	imageURL := s.archivePhoto(ctx, menuID, image, contentType, filename)

	var newItems []*menuitem.Item
	for _, extracted := range payload.MenuItems {
		item, ok := s.buildItem(ctx, menuID, extracted, imageURL)
		if !ok {
			continue
		}
		key := item.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		newItems = append(newItems, item)
	}

	log.Printf("parse-menu: %d new items to insert menu_id=%s", len(newItems), menuID)

	if len(newItems) > 0 {
		if _, err := s.items.BulkInsert(ctx, newItems); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersist, err)
		}
	}

	all, err := s.items.ListByMenu(ctx, menuID)
	if err != nil {
		return nil, err
	}

	responses := make([]menuitem.Response, 0, len(all))
	for _, item := range all {
		responses = append(responses, item.ListResponse())
	}

	return &Result{MenuItems: responses}, nil
}

// buildItem normalizes one extracted item. Items with no name or an
// unusable price are dropped with a warning; a failed embedding call
// only costs that item its vector.
func (s *Service) buildItem(ctx context.Context, menuID uuid.UUID, extracted llm.ExtractedItem, imageURL string) (*menuitem.Item, bool) {
	if extracted.Name == "" {
		log.Printf("parse-menu: dropping unnamed item menu_id=%s", menuID)
		return nil, false
	}

	priceText, ok := llm.ParsePrice(extracted.Price.String())
	if !ok {
		log.Printf("parse-menu: dropping item with unusable price name=%q price=%q", extracted.Name, extracted.Price)
		return nil, false
	}
	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return nil, false
	}

	item := &menuitem.Item{
		MenuID: menuID,
		Name:   extracted.Name,
		Price:  price,
		IsVeg:  extracted.IsVeg,
	}

	if extracted.Description != "" {
		description := extracted.Description
		item.Description = &description
	}
	if menuitem.ValidDescriptionSource(extracted.DescriptionSource) {
		source := extracted.DescriptionSource
		item.DescriptionSource = &source
	}
	if extracted.Category != "" {
		category := extracted.Category
		item.Category = &category
	}

	spice := extracted.SpiceLevel
	if !menuitem.ValidSpiceLevel(spice) {
		spice = "none"
	}
	item.SpiceLevel = &spice

	if imageURL != "" {
		url := imageURL
		item.ImageURL = &url
	}

	embeddingInput := strings.TrimSpace(extracted.Name + " " + extracted.Description)
	embedding, err := s.embedder.Embed(ctx, embeddingInput)
	if err != nil {
		log.Printf("parse-menu: embedding not generated for item %q: %v", extracted.Name, err)
	} else {
		item.Embedding = embedding
	}

	return item, true
}

// archivePhoto stores the uploaded photo when storage is configured.
// Failures degrade to an empty URL.
func (s *Service) archivePhoto(ctx context.Context, menuID uuid.UUID, image []byte, contentType, filename string) string {
	if s.photos == nil {
		return ""
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("menus/%s/%s%s", menuID, uuid.New().String(), ext)

	url, err := s.photos.Upload(ctx, key, image, contentType)
	if err != nil {
		log.Printf("parse-menu: photo archive failed menu_id=%s: %v", menuID, err)
		return ""
	}

	return url
}
