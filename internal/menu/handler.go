package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Title        string    `json:"title"`
}

type updateRequest struct {
	Title string `json:"title"`
}

func (h *Handler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Menu not found"})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"detail": "Not authorized for this menu"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "menu operation failed"})
	}
}

// --------------------------------------------------
// POST /menus
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

	menu, err := h.service.Create(c.Request.Context(), callerID, req.RestaurantID, req.Title)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"detail": "Not authorized to add menu to this restaurant"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, menu)
}

// --------------------------------------------------
// GET /menus/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid menu id"})
		return
	}

	menu, err := h.service.GetWithItems(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// --------------------------------------------------
// GET /menus
// --------------------------------------------------
func (h *Handler) ListAll(c *gin.Context) {
	menus, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list menus"})
		return
	}
	if menus == nil {
		menus = []*Menu{}
	}

	c.JSON(http.StatusOK, menus)
}

// --------------------------------------------------
// GET /menus/restaurant/:id
// --------------------------------------------------
func (h *Handler) ListByRestaurant(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid restaurant id"})
		return
	}

	menus, err := h.service.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list menus"})
		return
	}
	if menus == nil {
		menus = []*Menu{}
	}

	c.JSON(http.StatusOK, menus)
}

// --------------------------------------------------
// PUT /menus/:id
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid menu id"})
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

	menu, err := h.service.UpdateTitle(c.Request.Context(), callerID, id, req.Title)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// --------------------------------------------------
// DELETE /menus/:id
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid menu id"})
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
