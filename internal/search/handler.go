package search

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search handles GET /search-menu-items. query and menu_id are
// required; category, is_veg, price_max and limit are optional.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "A search query is required"})
		return
	}

	menuID, err := uuid.Parse(c.Query("menu_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "A valid menu_id is required"})
		return
	}

	req := Request{Query: query, MenuID: menuID}

	if raw := c.Query("category"); raw != "" {
		req.Category = &raw
	}
	if raw := c.Query("is_veg"); raw != "" {
		isVeg, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "is_veg must be a boolean"})
			return
		}
		req.IsVeg = &isVeg
	}
	if raw := c.Query("price_max"); raw != "" {
		priceMax, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "price_max must be a number"})
			return
		}
		req.PriceMax = &priceMax
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be a positive integer"})
			return
		}
		req.Limit = limit
	}

	results, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmbedding) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Search failed"})
		return
	}

	if len(results) == 0 {
		c.JSON(http.StatusOK, gin.H{"results": []Response{}, "message": "No results found."})
		return
	}

	responses := make([]Response, 0, len(results))
	for _, result := range results {
		responses = append(responses, result.ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"results": responses})
}
