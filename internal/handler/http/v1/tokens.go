package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/community_incident_service/internal/service"
)

// @Summary Register a push token
// @Description Persist a browser push token. Idempotent: re-registering the same token refreshes the record.
// @Tags Push
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token body RegisterTokenRequest true "Push token registration request"
// @Success 200 {object} PushTokenResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /push-tokens [post]
func (h *Handler) registerPushToken(c *gin.Context) {
	var input RegisterTokenRequest
	log := h.logger.WithField("method", "registerPushToken")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var owner *uuid.UUID
	if id, ok := UserIDFromContext(c); ok {
		owner = &id
	}

	record, err := h.notificationService.RegisterToken(c.Request.Context(), input.Token, owner)
	if err != nil {
		log.WithError(err).Error("Failed to register push token in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToPushTokenResponse(record))
}

// @Summary Unregister a push token
// @Description Delete exactly one token record by its key. The browser-side subscription is not revoked.
// @Tags Push
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token path string true "Push token"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Token not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /push-tokens/{token} [delete]
func (h *Handler) unregisterPushToken(c *gin.Context) {
	token := c.Param("token")
	log := h.logger.WithField("method", "unregisterPushToken")

	if err := h.notificationService.UnregisterToken(c.Request.Context(), token); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "push token not found"})
			return
		}
		log.WithError(err).Error("Failed to unregister push token in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
