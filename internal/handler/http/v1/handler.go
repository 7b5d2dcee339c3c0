package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/community_incident_service/internal/config"
	"github.com/shenikar/community_incident_service/internal/service"
	"github.com/shenikar/community_incident_service/internal/storage"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService     service.IncidentService
	authService         service.AuthService
	typeService         service.IncidentTypeService
	notificationService service.NotificationService
	presenceService     service.PresenceService
	store               storage.Store
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	authService service.AuthService,
	typeService service.IncidentTypeService,
	notificationService service.NotificationService,
	presenceService service.PresenceService,
	store storage.Store,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService:     incidentService,
		authService:         authService,
		typeService:         typeService,
		notificationService: notificationService,
		presenceService:     presenceService,
		store:               store,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// @Summary Submit a new incident report
// @Description Submit an incident report. JSON body or multipart form with an optional image file. Status is always created as pending.
// @Tags Incidents
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param incident body CreateIncidentRequest true "Incident submission request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	log := h.logger.WithField("method", "createIncident")

	var input CreateIncidentRequest
	imageURL := ""

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		parsed, url, ok := h.bindIncidentMultipart(c, log)
		if !ok {
			return
		}
		input = parsed
		imageURL = url
	} else {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Координаты либо парой, либо никак
	if (input.Latitude == nil) != (input.Longitude == nil) {
		log.Warn("Incomplete coordinates pair")
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude must be provided together"})
		return
	}

	model := DTOToIncidentModel(input)
	model.ImageURL = imageURL
	if userID, ok := UserIDFromContext(c); ok {
		model.ReporterID = &userID
	}

	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// bindIncidentMultipart разбирает multipart-вариант подачи: поля формы
// плюс необязательный файл image, который загружается до создания записи
func (h *Handler) bindIncidentMultipart(c *gin.Context, log *logrus.Entry) (CreateIncidentRequest, string, bool) {
	var input CreateIncidentRequest

	maxBytes := int64(h.cfg.MaxUploadSizeMB) << 20
	if c.Request.ContentLength > maxBytes {
		log.Warn("Multipart body exceeds upload limit")
		c.JSON(http.StatusBadRequest, gin.H{"error": "upload too large"})
		return input, "", false
	}

	input.TypeCode = strings.TrimSpace(c.PostForm("type_code"))
	input.Description = strings.TrimSpace(c.PostForm("description"))
	input.Location = strings.TrimSpace(c.PostForm("location"))
	input.Contact = strings.TrimSpace(c.PostForm("contact"))

	if latStr := c.PostForm("latitude"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
			return input, "", false
		}
		input.Latitude = &lat
	}
	if lngStr := c.PostForm("longitude"); lngStr != "" {
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
			return input, "", false
		}
		input.Longitude = &lng
	}

	imageURL := ""
	file, err := c.FormFile("image")
	if err == nil && file != nil {
		if file.Size > maxBytes {
			log.Warn("Image exceeds upload limit")
			c.JSON(http.StatusBadRequest, gin.H{"error": "upload too large"})
			return input, "", false
		}
		src, err := file.Open()
		if err != nil {
			log.WithError(err).Error("Failed to open uploaded image")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return input, "", false
		}
		defer src.Close()

		imageURL, err = h.store.SaveIncidentImage(file.Filename, src)
		if err != nil {
			log.WithError(err).Error("Failed to store uploaded image")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return input, "", false
		}
	}

	return input, imageURL, true
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incident reports, newest first.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident report by its ID.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Resolve an incident
// @Description Mark a pending incident as resolved. Requires admin role. Push subscribers are notified.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/resolve [post]
func (h *Handler) resolveIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "resolveIncident").WithField("id", id)

	if err := h.incidentService.ResolveIncident(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			log.WithError(err).Warn("Attempted to resolve a non-existent incident")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to resolve incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve incident"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete an incident
// @Description Permanently delete an incident report. Requires admin role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			log.WithError(err).Warn("Attempted to delete a non-existent incident")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to delete incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete incident"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get incident stats report
// @Description Get incident counts grouped by type label within a day window. Requires admin role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param window_days query int false "Stats window in days, one of 1,3,5,7,30,60,90,365" default(7)
// @Success 200 {object} service.StatsReport
// @Failure 400 {object} map[string]string "Unsupported window"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	windowDays, err := strconv.Atoi(c.DefaultQuery("window_days", "7"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window_days"})
		return
	}

	report, err := h.incidentService.ReportStats(c.Request.Context(), windowDays)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWindow) {
			log.WithError(err).Warn("Unsupported stats window requested")
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported stats window"})
			return
		}
		log.WithError(err).Error("Failed to build stats report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
