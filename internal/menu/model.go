package menu

import (
	"time"

	"github.com/ashikraj78/menuMind/internal/menuitem"

	"github.com/google/uuid"
)

type Menu struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
}

// WithItems is the GET /menus/:id payload: the menu plus its items in
// list shape (embeddings truncated).
type WithItems struct {
	Menu
	Items []menuitem.Response `json:"items"`
}
