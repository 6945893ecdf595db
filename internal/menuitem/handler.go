package menuitem

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	MenuID            uuid.UUID       `json:"menu_id"`
	Name              string          `json:"name"`
	Description       *string         `json:"description"`
	DescriptionSource *string         `json:"description_source"`
	Price             decimal.Decimal `json:"price"`
	Category          *string         `json:"category"`
	IsVeg             *bool           `json:"is_veg"`
	SpiceLevel        *string         `json:"spice_level"`
	ImageURL          *string         `json:"image_url"`
}

type updateRequest struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	DescriptionSource *string          `json:"description_source"`
	Price             *decimal.Decimal `json:"price"`
	Category          *string          `json:"category"`
	IsVeg             *bool            `json:"is_veg"`
	SpiceLevel        *string          `json:"spice_level"`
	ImageURL          *string          `json:"image_url"`
}

func (h *Handler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Menu item not found"})
	case errors.Is(err, ErrMenuNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Menu not found"})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"detail": "Not authorized for this menu item"})
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid menu item fields"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "menu item operation failed"})
	}
}

// --------------------------------------------------
// POST /menu-items
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	callerID := c.GetString("userID")
	if callerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
		return
	}

	item, err := h.service.Create(c.Request.Context(), callerID, CreateInput{
		MenuID:            req.MenuID,
		Name:              req.Name,
		Description:       req.Description,
		DescriptionSource: req.DescriptionSource,
		Price:             req.Price,
		Category:          req.Category,
		IsVeg:             req.IsVeg,
		SpiceLevel:        req.SpiceLevel,
		ImageURL:          req.ImageURL,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item.DetailResponse())
}

// --------------------------------------------------
// GET /menu-items/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid menu item id"})
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item.DetailResponse())
}

// --------------------------------------------------
// GET /menu-items/menu/:id
// --------------------------------------------------
func (h *Handler) ListByMenu(c *gin.Context) {
	menuID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid menu id"})
		return
	}

	items, err := h.service.ListByMenu(c.Request.Context(), menuID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	responses := make([]Response, 0, len(items))
	for _, item := range items {
		responses = append(responses, item.ListResponse())
	}

	c.JSON(http.StatusOK, responses)
}

// --------------------------------------------------
// PUT /menu-items/:id
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid menu item id"})
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	callerID := c.GetString("userID")
	if callerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
		return
	}

	fields := UpdateFields{
		Name:              req.Name,
		Description:       req.Description,
		DescriptionSource: req.DescriptionSource,
		Category:          req.Category,
		IsVeg:             req.IsVeg,
		SpiceLevel:        req.SpiceLevel,
		ImageURL:          req.ImageURL,
	}
	if req.Price != nil {
		price := req.Price.String()
		fields.Price = &price
	}

	item, err := h.service.Update(c.Request.Context(), callerID, id, fields)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item.DetailResponse())
}

// --------------------------------------------------
// DELETE /menu-items/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid menu item id"})
		return
	}

	callerID := c.GetString("userID")
	if callerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), callerID, id); err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
