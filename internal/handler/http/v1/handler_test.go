package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/community_incident_service/internal/config"
	"github.com/shenikar/community_incident_service/internal/models"
	"github.com/shenikar/community_incident_service/internal/service"
	"github.com/shenikar/community_incident_service/internal/service/mocks"
	"github.com/shenikar/community_incident_service/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// handlerMocks собирает моки всех сервисов хэндлера
type handlerMocks struct {
	incidentService     *mocks.MockIncidentService
	authService         *mocks.MockAuthService
	typeService         *mocks.MockIncidentTypeService
	notificationService *mocks.MockNotificationService
	presenceService     *mocks.MockPresenceService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		incidentService:     mocks.NewMockIncidentService(ctrl),
		authService:         mocks.NewMockAuthService(ctrl),
		typeService:         mocks.NewMockIncidentTypeService(ctrl),
		notificationService: mocks.NewMockNotificationService(ctrl),
		presenceService:     mocks.NewMockPresenceService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		MaxUploadSizeMB:   5,
		PresenceThreshold: 5 * time.Minute,
	}

	store, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	handler := NewHandler(m.incidentService, m.authService, m.typeService, m.notificationService, m.presenceService, store, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// expectMember настраивает разбор токена обычного пользователя
func expectMember(m *handlerMocks, userID uuid.UUID) {
	m.authService.EXPECT().
		ParseToken("member-token").
		Return(&service.Claims{UserID: userID, Role: models.RoleUser}, nil).
		AnyTimes()
}

// expectAdmin настраивает разбор токена и перечитывание роли из записи пользователя
func expectAdmin(m *handlerMocks, userID uuid.UUID) {
	m.authService.EXPECT().
		ParseToken("admin-token").
		Return(&service.Claims{UserID: userID, Role: models.RoleAdmin}, nil).
		AnyTimes()
	m.authService.EXPECT().
		GetUser(gomock.Any(), userID).
		Return(&models.User{ID: userID, Role: models.RoleAdmin}, nil).
		AnyTimes()
}

func TestCreateIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	expectMember(m, userID)

	lat, lng := 18.79, 98.98
	reqBody := CreateIncidentRequest{
		TypeCode:    "fire",
		Description: "Горит мусорный бак во дворе",
		Location:    "ул. Никитина, 5",
		Latitude:    &lat,
		Longitude:   &lng,
	}
	incidentID := uuid.New()

	m.incidentService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			// Хэндлер привязывает автора из контекста аутентификации
			require.NotNil(t, inc.ReporterID)
			assert.Equal(t, userID, *inc.ReporterID)
			inc.ID = incidentID
			inc.Status = models.IncidentStatusPending
			inc.CreatedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader("member-token"))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, models.IncidentStatusPending, resp.Status)
	// Без загруженного файла ссылка на фото пустая, не null
	assert.Equal(t, "", resp.ImageURL)
	require.NotNil(t, resp.Latitude)
	assert.Equal(t, lat, *resp.Latitude)
}

func TestCreateIncident_MissingToken(t *testing.T) {
	m, router := newTestHandler(t)

	m.incidentService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	reqBody := CreateIncidentRequest{TypeCode: "fire", Description: "Горит"}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization token required")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	expectMember(m, uuid.New())

	m.incidentService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	reqBody := CreateIncidentRequest{ // Отсутствует TypeCode
		Description: "Описание без типа",
	}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader("member-token"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'TypeCode' failed on the 'required' tag")
}

func TestCreateIncident_IncompleteCoordinates(t *testing.T) {
	m, router := newTestHandler(t)
	expectMember(m, uuid.New())

	m.incidentService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	lat := 18.79
	reqBody := CreateIncidentRequest{
		TypeCode:    "fire",
		Description: "Только широта",
		Latitude:    &lat,
	}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader("member-token"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude and longitude must be provided together")
}

func TestCreateIncident_MultipartWithImage(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	expectMember(m, userID)

	m.incidentService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, "garbage", inc.TypeCode)
			// Ссылка на фото выставлена до создания записи
			assert.True(t, strings.HasPrefix(inc.ImageURL, "/uploads/incidents/"))
			inc.ID = uuid.New()
			inc.Status = models.IncidentStatusPending
			return nil
		}).Times(1)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("type_code", "garbage"))
	require.NoError(t, writer.WriteField("description", "Свалка у подъезда"))
	part, err := writer.CreateFormFile("image", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := makeRequest(router, "POST", "/api/v1/incidents", body, authHeader("member-token"),
		map[string]string{"Content-Type": writer.FormDataContentType()})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.ImageURL, "/uploads/incidents/"))
}

func TestListIncidents_Success(t *testing.T) {
	m, router := newTestHandler(t)
	expectMember(m, uuid.New())

	expectedIncidents := []*models.Incident{
		{ID: uuid.New(), TypeCode: "fire", Description: "Обращение 1", Status: models.IncidentStatusPending},
		{ID: uuid.New(), TypeCode: "flood", Description: "Обращение 2", Status: models.IncidentStatusResolved},
	}

	m.incidentService.EXPECT().ListIncidents(gomock.Any(), 1, 10).Return(expectedIncidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?page=1&pageSize=10", nil, authHeader("member-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, expectedIncidents[0].Description, resp[0].Description)
}

func TestGetIncident_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	expectMember(m, uuid.New())
	incidentID := uuid.New()

	m.incidentService.EXPECT().GetIncident(gomock.Any(), incidentID).Return(nil, service.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, authHeader("member-token"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestGetIncident_InvalidID(t *testing.T) {
	m, router := newTestHandler(t)
	expectMember(m, uuid.New())

	m.incidentService.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/incidents/invalid-uuid", nil, authHeader("member-token"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestResolveIncident_AdminSuccess(t *testing.T) {
	m, router := newTestHandler(t)
	adminID := uuid.New()
	expectAdmin(m, adminID)
	incidentID := uuid.New()

	m.incidentService.EXPECT().ResolveIncident(gomock.Any(), incidentID).Return(nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/resolve", incidentID.String()), nil, authHeader("admin-token"))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveIncident_ForbiddenForNonAdmin(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	expectMember(m, userID)
	// Роль перечитывается из записи пользователя, там она user
	m.authService.EXPECT().
		GetUser(gomock.Any(), userID).
		Return(&models.User{ID: userID, Role: models.RoleUser}, nil).
		Times(1)

	m.incidentService.EXPECT().ResolveIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/resolve", uuid.New().String()), nil, authHeader("member-token"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin role required")
}

func TestResolveIncident_StaleAdminClaimDenied(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	// В токене роль admin, но запись пользователя уже понижена до user
	m.authService.EXPECT().
		ParseToken("stale-admin-token").
		Return(&service.Claims{UserID: userID, Role: models.RoleAdmin}, nil).
		Times(1)
	m.authService.EXPECT().
		GetUser(gomock.Any(), userID).
		Return(&models.User{ID: userID, Role: models.RoleUser}, nil).
		Times(1)

	m.incidentService.EXPECT().ResolveIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/resolve", uuid.New().String()), nil, authHeader("stale-admin-token"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestResolveIncident_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	adminID := uuid.New()
	expectAdmin(m, adminID)
	incidentID := uuid.New()

	m.incidentService.EXPECT().
		ResolveIncident(gomock.Any(), incidentID).
		Return(fmt.Errorf("service: incident not found for resolve: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/incidents/%s/resolve", incidentID.String()), nil, authHeader("admin-token"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestDeleteIncident_AdminSuccess(t *testing.T) {
	m, router := newTestHandler(t)
	adminID := uuid.New()
	expectAdmin(m, adminID)
	incidentID := uuid.New()

	m.incidentService.EXPECT().DeleteIncident(gomock.Any(), incidentID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil, authHeader("admin-token"))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteIncident_ForbiddenForNonAdmin(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	expectMember(m, userID)
	m.authService.EXPECT().
		GetUser(gomock.Any(), userID).
		Return(&models.User{ID: userID, Role: models.RoleUser}, nil).
		Times(1)

	m.incidentService.EXPECT().DeleteIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/incidents/%s", uuid.New().String()), nil, authHeader("member-token"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	m, router := newTestHandler(t)
	adminID := uuid.New()
	expectAdmin(m, adminID)

	expectedReport := &service.StatsReport{
		WindowDays: 7,
		Total:      3,
		Buckets: []service.LabelCount{
			{Label: "Fire", Count: 2},
			{Label: "Flood", Count: 1},
		},
	}

	// Окно по умолчанию - 7 дней
	m.incidentService.EXPECT().ReportStats(gomock.Any(), 7).Return(expectedReport, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil, authHeader("admin-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp service.StatsReport
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, *expectedReport, resp)
}

func TestGetStats_UnsupportedWindow(t *testing.T) {
	m, router := newTestHandler(t)
	adminID := uuid.New()
	expectAdmin(m, adminID)

	m.incidentService.EXPECT().
		ReportStats(gomock.Any(), 14).
		Return(nil, fmt.Errorf("service: window of 14 days: %w", service.ErrInvalidWindow)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats?window_days=14", nil, authHeader("admin-token"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported stats window")
}

func TestRegister_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := RegisterRequest{
		Email:       "resident@example.com",
		Password:    "secret123",
		DisplayName: "Жанна",
	}
	userID := uuid.New()

	m.authService.EXPECT().
		Register(gomock.Any(), reqBody.Email, reqBody.Password, reqBody.DisplayName).
		Return(&models.User{ID: userID, Email: reqBody.Email, DisplayName: reqBody.DisplayName, Role: models.RoleUser}, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.ID)
	assert.Equal(t, models.RoleUser, resp.Role)
	// Хэш пароля не просачивается в ответ
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegister_EmailTaken(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := RegisterRequest{
		Email:       "taken@example.com",
		Password:    "secret123",
		DisplayName: "Жанна",
	}

	m.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", service.ErrEmailTaken)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already in use")
}

func TestLogin_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "resident@example.com", Password: "secret123"}
	userID := uuid.New()
	user := &models.User{ID: userID, Email: reqBody.Email, Role: models.RoleUser}

	m.authService.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return("signed-jwt", user, nil).
		Times(1)
	// Вход записывает первую отметку активности
	m.presenceService.EXPECT().Heartbeat(gomock.Any(), userID).Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-jwt", resp.Token)
	require.NotNil(t, resp.User)
	assert.True(t, resp.User.Online)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "resident@example.com", Password: "wrong"}

	m.authService.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return("", nil, fmt.Errorf("service: %w", service.ErrInvalidCredentials)).
		Times(1)
	m.presenceService.EXPECT().Heartbeat(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestGetProfile_Success(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	expectMember(m, userID)
	lastSeen := time.Now().Add(-time.Minute)
	user := &models.User{ID: userID, Email: "resident@example.com", Role: models.RoleUser, LastSeenAt: &lastSeen}

	m.authService.EXPECT().GetUser(gomock.Any(), userID).Return(user, nil).Times(1)
	m.presenceService.EXPECT().IsOnline(gomock.Any(), user).Return(true).Times(1)

	w := makeRequest(router, "GET", "/api/v1/users/me", nil, authHeader("member-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.ID)
	assert.True(t, resp.Online)
}

func TestHeartbeat_Success(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	expectMember(m, userID)

	m.presenceService.EXPECT().Heartbeat(gomock.Any(), userID).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/users/me/heartbeat", nil, authHeader("member-token"))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRegisterPushToken_Success(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	expectMember(m, userID)
	reqBody := RegisterTokenRequest{Token: "browser-push-token-123"}

	m.notificationService.EXPECT().
		RegisterToken(gomock.Any(), reqBody.Token, gomock.Any()).
		DoAndReturn(func(_ context.Context, token string, owner *uuid.UUID) (*models.PushToken, error) {
			// Владелец берется из контекста аутентификации
			require.NotNil(t, owner)
			assert.Equal(t, userID, *owner)
			return &models.PushToken{Token: token, UserID: owner, CreatedAt: time.Now(), UpdatedAt: time.Now()}, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/push-tokens", bytes.NewBuffer(bodyBytes), authHeader("member-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp PushTokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reqBody.Token, resp.Token)
}

func TestRegisterPushToken_TooShort(t *testing.T) {
	m, router := newTestHandler(t)
	expectMember(m, uuid.New())

	m.notificationService.EXPECT().RegisterToken(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(RegisterTokenRequest{Token: "short"})
	w := makeRequest(router, "POST", "/api/v1/push-tokens", bytes.NewBuffer(bodyBytes), authHeader("member-token"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Token' failed on the 'min' tag")
}

func TestUnregisterPushToken_Success(t *testing.T) {
	m, router := newTestHandler(t)
	expectMember(m, uuid.New())

	m.notificationService.EXPECT().UnregisterToken(gomock.Any(), "browser-push-token-123").Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/push-tokens/browser-push-token-123", nil, authHeader("member-token"))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUnregisterPushToken_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	expectMember(m, uuid.New())

	m.notificationService.EXPECT().
		UnregisterToken(gomock.Any(), "unknown-token").
		Return(fmt.Errorf("service: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/push-tokens/unknown-token", nil, authHeader("member-token"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "push token not found")
}

func TestListIncidentTypes_Success(t *testing.T) {
	m, router := newTestHandler(t)
	expectMember(m, uuid.New())
	types := []*models.IncidentType{
		{ID: uuid.New(), Code: "fire", Label: "Fire"},
		{ID: uuid.New(), Code: "flood", Label: "Flood"},
	}

	m.typeService.EXPECT().ListTypes(gomock.Any()).Return(types, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incident-types", nil, authHeader("member-token"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentTypeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "fire", resp[0].Code)
}

func TestCreateIncidentType_Conflict(t *testing.T) {
	m, router := newTestHandler(t)
	adminID := uuid.New()
	expectAdmin(m, adminID)
	reqBody := CreateIncidentTypeRequest{Code: "fire", Label: "Fire"}

	m.typeService.EXPECT().
		CreateType(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: %w", service.ErrAlreadyExists)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incident-types", bytes.NewBuffer(bodyBytes), authHeader("admin-token"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "incident type code already exists")
}

func TestHealthCheck_Success(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
