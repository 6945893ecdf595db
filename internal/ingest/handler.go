package ingest

import (
	"errors"
	"io"
	"net/http"

	"github.com/ashikraj78/menuMind/internal/menuitem"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ParseMenu accepts a multipart menu photo plus a menu_id and runs the
// extraction pipeline. A successful extraction returns the menu's full
// item set; unparseable model output returns the raw text instead.
func (h *Handler) ParseMenu(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "A menu image file is required"})
		return
	}

	menuID, err := uuid.Parse(c.PostForm("menu_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "A valid menu_id is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not read uploaded file"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not read uploaded file"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	result, err := h.service.ParseMenu(c.Request.Context(), menuID, image, contentType, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, menuitem.ErrMenuNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "Menu not found"})
		case errors.Is(err, ErrUpstream):
			c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	if result.MenuItems == nil {
		c.JSON(http.StatusOK, gin.H{"raw_ocr_result": result.Raw})
		return
	}

	c.JSON(http.StatusOK, gin.H{"menu_items": result.MenuItems})
}
