package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/community_incident_service/internal/service"
)

// @Summary Register a new user
// @Description Create a user account. The role is always 'user' and cannot be chosen here.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email already in use"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

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

	user, err := h.authService.Register(c.Request.Context(), input.Email, input.Password, input.DisplayName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		log.WithError(err).Error("Failed to register user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, ModelToUserResponse(user, false))
}

// @Summary Log in
// @Description Verify credentials and issue a JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

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

	token, user, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		log.WithError(err).Error("Failed to log in via service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Вход считается первой отметкой активности сессии
	if err := h.presenceService.Heartbeat(c.Request.Context(), user.ID); err != nil {
		log.WithError(err).Warn("Failed to record login heartbeat")
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  ModelToUserResponse(user, true),
	})
}

// @Summary Get own profile
// @Description Get the authenticated user's profile with derived online status.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/me [get]
func (h *Handler) getProfile(c *gin.Context) {
	log := h.logger.WithField("method", "getProfile")

	userID, ok := UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get user from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	online := h.presenceService.IsOnline(c.Request.Context(), user)
	c.JSON(http.StatusOK, ModelToUserResponse(user, online))
}

// @Summary Update own profile
// @Description Update display name, contact and photo URL. Role and email are untouchable here.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Profile update request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/me [put]
func (h *Handler) updateProfile(c *gin.Context) {
	var input UpdateProfileRequest
	log := h.logger.WithField("method", "updateProfile")

	userID, ok := UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
		return
	}

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

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get user from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user.DisplayName = input.DisplayName
	user.Contact = input.Contact
	user.PhotoURL = input.PhotoURL

	if err := h.authService.UpdateProfile(c.Request.Context(), user); err != nil {
		log.WithError(err).Error("Failed to update profile in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	online := h.presenceService.IsOnline(c.Request.Context(), user)
	c.JSON(http.StatusOK, ModelToUserResponse(user, online))
}

// @Summary Upload own profile photo
// @Description Upload a profile photo, stored under profiles/{userId}. Re-upload overwrites.
// @Tags Users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Profile photo"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Missing file or upload too large"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/me/photo [post]
func (h *Handler) uploadProfilePhoto(c *gin.Context) {
	log := h.logger.WithField("method", "uploadProfilePhoto")

	userID, ok := UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file required"})
		return
	}
	if file.Size > int64(h.cfg.MaxUploadSizeMB)<<20 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "upload too large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded photo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer src.Close()

	photoURL, err := h.store.SaveProfilePhoto(userID, file.Filename, src)
	if err != nil {
		log.WithError(err).Error("Failed to store uploaded photo")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get user from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user.PhotoURL = photoURL
	if err := h.authService.UpdateProfile(c.Request.Context(), user); err != nil {
		log.WithError(err).Error("Failed to update profile in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	online := h.presenceService.IsOnline(c.Request.Context(), user)
	c.JSON(http.StatusOK, ModelToUserResponse(user, online))
}

// @Summary Record an activity heartbeat
// @Description Refresh the authenticated user's last-active mark. Clients call this every 180 seconds.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/me/heartbeat [post]
func (h *Handler) heartbeat(c *gin.Context) {
	log := h.logger.WithField("method", "heartbeat")

	userID, ok := UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
		return
	}

	if err := h.presenceService.Heartbeat(c.Request.Context(), userID); err != nil {
		log.WithError(err).Error("Failed to record heartbeat in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
