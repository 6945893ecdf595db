package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenIssuer is the part of the provider client the handler needs.
type TokenIssuer interface {
	IssueToken(ctx context.Context, email, password string) (json.RawMessage, error)
}

type Handler struct {
	issuer TokenIssuer
}

func NewHandler(issuer TokenIssuer) *Handler {
	return &Handler{issuer: issuer}
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------------------------------------------------
// POST /auth/token
// --------------------------------------------------
func (h *Handler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "email and password are required"})
		return
	}

	token, err := h.issuer.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials or provider error"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"detail": "identity provider unreachable"})
		return
	}

	c.Data(http.StatusOK, "application/json", token)
}
