package restaurant

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type upsertRequest struct {
	Name string `json:"name"`
}

// --------------------------------------------------
// POST /restaurants
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req upsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	ownerID := c.GetString("userID")
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
		return
	}

	restaurant, err := h.service.Create(c.Request.Context(), ownerID, req.Name)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": ErrAlreadyExists.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create restaurant"})
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// --------------------------------------------------
// GET /restaurants/me
// --------------------------------------------------
func (h *Handler) GetMine(c *gin.Context) {
	ownerID := c.GetString("userID")
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
		return
	}

	restaurant, err := h.service.GetMine(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to fetch restaurant"})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// --------------------------------------------------
// PUT /restaurants/me
// --------------------------------------------------
func (h *Handler) UpdateMine(c *gin.Context) {
	var req upsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	ownerID := c.GetString("userID")
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
		return
	}

	restaurant, err := h.service.RenameMine(c.Request.Context(), ownerID, req.Name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to update restaurant"})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}
