package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/community_incident_service/internal/models"
	"github.com/shenikar/community_incident_service/internal/service"
)

// @Summary List incident types
// @Description Get the incident type dictionary for the type selector.
// @Tags IncidentTypes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} IncidentTypeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incident-types [get]
func (h *Handler) listIncidentTypes(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidentTypes")

	types, err := h.typeService.ListTypes(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incident types from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentTypeResponses(types))
}

// @Summary Create an incident type
// @Description Add an entry to the incident type dictionary. Requires admin role.
// @Tags IncidentTypes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incidentType body CreateIncidentTypeRequest true "Incident type creation request"
// @Success 201 {object} IncidentTypeResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 409 {object} map[string]string "Code already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incident-types [post]
func (h *Handler) createIncidentType(c *gin.Context) {
	var input CreateIncidentTypeRequest
	log := h.logger.WithField("method", "createIncidentType")

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

	model := &models.IncidentType{
		Code:  input.Code,
		Label: input.Label,
	}
	if err := h.typeService.CreateType(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "incident type code already exists"})
			return
		}
		log.WithError(err).Error("Failed to create incident type in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, ModelToIncidentTypeResponse(model))
}

// @Summary Delete an incident type
// @Description Remove an entry from the dictionary. Existing incidents referencing the code are left untouched. Requires admin role.
// @Tags IncidentTypes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident type ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident type ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 404 {object} map[string]string "Incident type not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incident-types/{id} [delete]
func (h *Handler) deleteIncidentType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident type ID"})
		return
	}
	log := h.logger.WithField("method", "deleteIncidentType").WithField("id", id)

	if err := h.typeService.DeleteType(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "incident type not found"})
			return
		}
		log.WithError(err).Error("Failed to delete incident type in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
