package handlers

import (
	"errors"
	"net/http"

	"bookportal/parseserver"
	"bookportal/services/portal"
	"bookportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PortalHandler serves the session bootstrap route.
type PortalHandler struct {
	bootstrap *portal.Service
	logger    *zap.Logger
}

// NewPortalHandler builds the handler.
func NewPortalHandler(bootstrap *portal.Service, logger *zap.Logger) *PortalHandler {
	return &PortalHandler{bootstrap: bootstrap, logger: logger}
}

// GetBookingPage resolves the session behind the hash path parameter and
// returns the page bundle. Short hashes redirect to the invalid-request
// page before any backend call; backend failures keep their status/message.
func (h *PortalHandler) GetBookingPage(c *gin.Context) {
	hash := c.Param("hash")

	session, err := h.bootstrap.Bootstrap(c.Request.Context(), hash, c.Request.URL.Query())
	if err != nil {
		if errors.Is(err, portal.ErrInvalidHash) {
			c.Redirect(http.StatusTemporaryRedirect, "/invalid-request")
			return
		}
		var rpcErr *parseserver.Error
		if errors.As(err, &rpcErr) {
			status := rpcErr.Status
			if status < http.StatusBadRequest {
				// transport failure carries no usable status
				status = http.StatusBadGateway
			}
			utils.JSONError(c, status, rpcErr.Message, string(rpcErr.Endpoint))
			return
		}
		h.logger.Error("bootstrap failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load booking page", "")
		return
	}

	c.JSON(http.StatusOK, session)
}

// InvalidRequest is the dedicated page for rejected identifiers.
func (h *PortalHandler) InvalidRequest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "This booking link is not valid. Please check the URL you were given.",
	})
}
