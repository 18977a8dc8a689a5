// Package authapi implements the HTTP handler for credential login.
package authapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-cms/portfolio-cms/internal/auth"
	"github.com/portfolio-cms/portfolio-cms/internal/telemetry"
	"github.com/portfolio-cms/portfolio-cms/internal/validation"
)

// Handlers handles authentication endpoints
type Handlers struct {
	svc *auth.Service
}

// NewHandlers creates a new Handlers instance
func NewHandlers(svc *auth.Service) *Handlers {
	return &Handlers{svc: svc}
}

// @Summary      Login
// @Description  Authenticate with username and password and receive a bearer token.
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        body  body  validation.LoginPayload  true  "Credentials"
// @Success      200  {object}  map[string]interface{}  "token: JWT, user: {id, username}"
// @Failure      400  {object}  map[string]interface{}  "error: Validation failed, details: []validation.FieldError"
// @Failure      401  {object}  map[string]interface{}  "error: Invalid username or password"
// @Failure      500  {object}  map[string]interface{}  "error"
// @Router       /api/auth/login [post]
// LoginHandler authenticates a user and issues a token.
// The 401 response is identical for unknown usernames and wrong passwords.
// POST /api/auth/login
func (h *Handlers) LoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload validation.LoginPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request body",
			})
			return
		}

		input, errs := validation.ValidateLogin(&payload)
		if len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": errs,
			})
			return
		}

		result, err := h.svc.Login(c.Request.Context(), input.Username, input.Password)
		if err != nil {
			slog.Error("login failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Authentication unavailable",
			})
			return
		}
		if result == nil {
			telemetry.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid username or password",
			})
			return
		}

		telemetry.LoginAttemptsTotal.WithLabelValues("success").Inc()
		c.JSON(http.StatusOK, result)
	}
}
