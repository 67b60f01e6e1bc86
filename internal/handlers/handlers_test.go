package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ondoctor-server/internal/ai"
	"ondoctor-server/internal/alarms"
	"ondoctor-server/internal/auth"
	"ondoctor-server/internal/config"
	"ondoctor-server/internal/directory"
	"ondoctor-server/internal/handlers"
	"ondoctor-server/internal/routes"
	"ondoctor-server/internal/scheduling"
)

// apiEnvelope mirrors the JSON envelope every endpoint responds with.
type apiEnvelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                      "3001",
		Environment:               "development",
		AppURL:                    "http://localhost:3001",
		JWTSecret:                 "test-access-secret",
		JWTRefreshSecret:          "test-refresh-secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 24,
		AIRequestsPerMinute:       600,
		AIBurst:                   100,
	}
}

// newTestServer wires the full route table against in-memory state frozen at
// the given clock.
func newTestServer(t *testing.T, now time.Time) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	clock := func() time.Time { return now }
	logger := zerolog.Nop()

	reg := directory.NewRegistry()
	store := scheduling.NewStore(reg, cfg.AppURL, logger, clock)
	slots := scheduling.NewGenerator(clock)
	users := auth.NewRegistry(clock)
	alarmStore := alarms.NewStore()

	// The AI client stays unconfigured; those endpoints must answer 503.
	client := ai.NewClient(config.GoogleAIConfig{}, logger)

	appointmentHandler := handlers.NewAppointmentHandler(store, slots, reg)
	appointmentHandler.Now = clock

	router := gin.New()
	routes.SetupRoutes(router, routes.Handlers{
		Auth:        handlers.NewAuthHandler(users, cfg),
		Directory:   handlers.NewDirectoryHandler(reg),
		Appointment: appointmentHandler,
		AI: handlers.NewAIHandler(
			ai.NewMealPlanner(client, nil, time.Hour),
			ai.NewPrescriber(client),
			ai.NewAssistant(client),
		),
		Alarm:  handlers.NewAlarmHandler(alarmStore),
		Device: handlers.NewDeviceHandler(),
	}, cfg)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env apiEnvelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope from %s %s: %v (%s)", method, path, err, w.Body.String())
		}
	}
	return w, env
}

// registerAndLogin creates a patient account and returns its access token.
func registerAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     email,
		"password":  "secret-password",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d: %s", w.Code, w.Body.String())
	}

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "secret-password",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d: %s", w.Code, w.Body.String())
	}
	var login struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if login.AccessToken == "" {
		t.Fatal("login returned no access token")
	}
	return login.AccessToken
}

func TestHealthCheck(t *testing.T) {
	router := newTestServer(t, time.Now())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health: status %d", w.Code)
	}
}

func TestPublicCatalog(t *testing.T) {
	router := newTestServer(t, time.Now())

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/doctors", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("doctors: status %d", w.Code)
	}
	var doctors []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &doctors); err != nil {
		t.Fatalf("decode doctors: %v", err)
	}
	if len(doctors) != 3 {
		t.Errorf("doctors: got %d, want 3", len(doctors))
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/doctors/doc99", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown doctor: status %d, want 404", w.Code)
	}

	for _, path := range []string{"/api/v1/departments", "/api/v1/surgeries", "/api/v1/health-concerns"} {
		if w, _ := doJSON(t, router, http.MethodGet, path, "", nil); w.Code != http.StatusOK {
			t.Errorf("%s: status %d", path, w.Code)
		}
	}
}

func TestGetTimeSlots(t *testing.T) {
	now := time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC)
	router := newTestServer(t, now)

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/doctors/doc1/slots?date=2026-03-10", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("slots: status %d: %s", w.Code, w.Body.String())
	}
	var slots []struct {
		ID          string    `json:"id"`
		StartTime   time.Time `json:"startTime"`
		IsAvailable bool      `json:"isAvailable"`
	}
	if err := json.Unmarshal(env.Data, &slots); err != nil {
		t.Fatalf("decode slots: %v", err)
	}
	if len(slots) != 16 {
		t.Errorf("future day: got %d slots, want 16", len(slots))
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/doctors/doc1/slots?date=tomorrow", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date: status %d, want 400", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/doctors/doc99/slots", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown doctor: status %d, want 404", w.Code)
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	now := time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC)
	router := newTestServer(t, now)
	token := registerAndLogin(t, router, "john@example.com")

	// Booking requires authentication.
	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/appointments", "", gin.H{})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create: status %d, want 401", w.Code)
	}

	create := gin.H{
		"doctorId":        "doc1",
		"patientName":     "John Doe",
		"patientEmail":    "john@example.com",
		"reason":          "Persistent cough",
		"dateTime":        now.Add(48 * time.Hour).Format(time.RFC3339),
		"appointmentType": "Video",
	}
	w, env := doJSON(t, router, http.MethodPost, "/api/v1/appointments", token, create)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d: %s", w.Code, w.Body.String())
	}
	var apt struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Doctor struct {
			Name      string `json:"name"`
			Specialty string `json:"specialty"`
		} `json:"doctor"`
		VideoLink string `json:"videoLink"`
	}
	if err := json.Unmarshal(env.Data, &apt); err != nil {
		t.Fatalf("decode appointment: %v", err)
	}
	if apt.Status != "Upcoming" {
		t.Errorf("status = %q, want Upcoming", apt.Status)
	}
	if apt.Doctor.Name != "Dr. Alice Smith" || apt.Doctor.Specialty != "Cardiology" {
		t.Errorf("doctor snapshot = %+v", apt.Doctor)
	}
	if apt.VideoLink == "" {
		t.Error("video appointment should carry a video link")
	}

	// The new booking shows up in the upcoming partition.
	w, env = doJSON(t, router, http.MethodGet, "/api/v1/appointments", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	var listing struct {
		Upcoming []json.RawMessage `json:"upcoming"`
		History  []json.RawMessage `json:"history"`
	}
	if err := json.Unmarshal(env.Data, &listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(listing.Upcoming) != 1 || len(listing.History) != 0 {
		t.Errorf("listing: %d upcoming, %d history; want 1 and 0", len(listing.Upcoming), len(listing.History))
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/appointments/"+apt.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("get by id: status %d", w.Code)
	}

	// Cancel moves the appointment into history; repeating is a no-op.
	cancelPath := fmt.Sprintf("/api/v1/appointments/%s/cancel", apt.ID)
	w, env = doJSON(t, router, http.MethodPatch, cancelPath, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: status %d: %s", w.Code, w.Body.String())
	}
	var cancelled struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &cancelled); err != nil {
		t.Fatalf("decode cancelled: %v", err)
	}
	if cancelled.Status != "Cancelled" {
		t.Errorf("status after cancel = %q", cancelled.Status)
	}
	if w, _ = doJSON(t, router, http.MethodPatch, cancelPath, token, nil); w.Code != http.StatusOK {
		t.Errorf("repeated cancel: status %d, want 200", w.Code)
	}

	w, env = doJSON(t, router, http.MethodGet, "/api/v1/appointments", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list after cancel: status %d", w.Code)
	}
	if err := json.Unmarshal(env.Data, &listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(listing.Upcoming) != 0 || len(listing.History) != 1 {
		t.Errorf("after cancel: %d upcoming, %d history; want 0 and 1", len(listing.Upcoming), len(listing.History))
	}

	w, _ = doJSON(t, router, http.MethodPatch, "/api/v1/appointments/no-such-id/cancel", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("cancel unknown: status %d, want 404", w.Code)
	}
}

func TestCancelElapsedAppointmentConflicts(t *testing.T) {
	now := time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC)
	router := newTestServer(t, now)
	token := registerAndLogin(t, router, "john@example.com")

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/appointments", token, gin.H{
		"doctorId":        "doc2",
		"patientName":     "John Doe",
		"patientEmail":    "john@example.com",
		"reason":          "Follow-up",
		"dateTime":        now.Add(-24 * time.Hour).Format(time.RFC3339),
		"appointmentType": "Phone",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create past appointment: status %d: %s", w.Code, w.Body.String())
	}
	var apt struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &apt); err != nil {
		t.Fatalf("decode appointment: %v", err)
	}
	if apt.Status != "Past" {
		t.Errorf("status = %q, want Past", apt.Status)
	}

	w, _ = doJSON(t, router, http.MethodPatch, "/api/v1/appointments/"+apt.ID+"/cancel", token, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("cancel elapsed: status %d, want 409", w.Code)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	now := time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC)
	router := newTestServer(t, now)
	token := registerAndLogin(t, router, "john@example.com")

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/appointments", token, gin.H{
		"doctorId":        "doc1",
		"patientName":     "John Doe",
		"patientEmail":    "not-an-email",
		"reason":          "Checkup",
		"dateTime":        now.Add(time.Hour).Format(time.RFC3339),
		"appointmentType": "Video",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad email: status %d, want 400", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/appointments", token, gin.H{
		"doctorId":        "doc1",
		"patientName":     "John Doe",
		"patientEmail":    "john@example.com",
		"reason":          "Checkup",
		"dateTime":        now.Add(time.Hour).Format(time.RFC3339),
		"appointmentType": "Telegraph",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad type: status %d, want 400", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/appointments", token, gin.H{
		"doctorId":        "doc99",
		"patientName":     "John Doe",
		"patientEmail":    "john@example.com",
		"reason":          "Checkup",
		"dateTime":        now.Add(time.Hour).Format(time.RFC3339),
		"appointmentType": "Video",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown doctor: status %d, want 404", w.Code)
	}
}

func TestAuthFlow(t *testing.T) {
	router := newTestServer(t, time.Now())

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "john@example.com",
		"password":  "secret-password",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d: %s", w.Code, w.Body.String())
	}

	// Same email again conflicts.
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "john@example.com",
		"password":  "other-password",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate register: status %d, want 409", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "john@example.com",
		"password": "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: status %d, want 401", w.Code)
	}

	token := registerAndLogin(t, router, "jane@example.com")

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/auth/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile: status %d", w.Code)
	}
	var profile struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(env.Data, &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.Email != "jane@example.com" || profile.Role != "patient" {
		t.Errorf("profile = %+v", profile)
	}

	w, env = doJSON(t, router, http.MethodPut, "/api/v1/auth/profile", token, gin.H{
		"phoneNumber": "+1-555-0100",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update profile: status %d", w.Code)
	}
	var updated struct {
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode updated profile: %v", err)
	}
	if updated.PhoneNumber != "+1-555-0100" {
		t.Errorf("phone = %q", updated.PhoneNumber)
	}

	if w, _ := doJSON(t, router, http.MethodGet, "/api/v1/auth/profile", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("profile without token: status %d, want 401", w.Code)
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	router := newTestServer(t, time.Now())

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "john@example.com",
		"password":  "secret-password",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d", w.Code)
	}
	w, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "john@example.com",
		"password": "secret-password",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d", w.Code)
	}
	var login struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil {
		t.Fatalf("decode login: %v", err)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh-token", "", gin.H{
		"refreshToken": login.RefreshToken,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("refresh: status %d: %s", w.Code, w.Body.String())
	}

	// The rotated token is revoked and cannot be replayed.
	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh-token", "", gin.H{
		"refreshToken": login.RefreshToken,
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("replayed refresh: status %d, want 401", w.Code)
	}
}

func TestMedicineAlarmEndpoints(t *testing.T) {
	router := newTestServer(t, time.Now())
	token := registerAndLogin(t, router, "john@example.com")

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/medicine-alarms", token, gin.H{
		"medicineName": "Metformin",
		"time":         "20:00",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create alarm: status %d: %s", w.Code, w.Body.String())
	}
	var alarm struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &alarm); err != nil {
		t.Fatalf("decode alarm: %v", err)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/medicine-alarms", token, gin.H{
		"medicineName": "Aspirin",
		"time":         "late evening",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad time: status %d, want 400", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodPut, "/api/v1/medicine-alarms/"+alarm.ID, token, gin.H{
		"medicineName": "Metformin",
		"time":         "21:30",
	})
	if w.Code != http.StatusOK {
		t.Errorf("update alarm: status %d", w.Code)
	}

	w, env = doJSON(t, router, http.MethodGet, "/api/v1/medicine-alarms", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list alarms: status %d", w.Code)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode alarms: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("alarms: got %d, want 1", len(list))
	}

	w, _ = doJSON(t, router, http.MethodDelete, "/api/v1/medicine-alarms/"+alarm.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete alarm: status %d", w.Code)
	}
	w, _ = doJSON(t, router, http.MethodDelete, "/api/v1/medicine-alarms/"+alarm.ID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete again: status %d, want 404", w.Code)
	}
}

func TestHealthDevices(t *testing.T) {
	router := newTestServer(t, time.Now())
	token := registerAndLogin(t, router, "john@example.com")

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/health-devices", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("devices: status %d", w.Code)
	}
	var devices []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(env.Data, &devices); err != nil {
		t.Fatalf("decode devices: %v", err)
	}
	if len(devices) == 0 {
		t.Error("device catalog should not be empty")
	}
}

func TestAIEndpointsUnavailableWithoutKey(t *testing.T) {
	router := newTestServer(t, time.Now())

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/ai/chat", "", gin.H{
		"userMessage": "Hello there",
	})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("chat without key: status %d, want 503", w.Code)
	}
}
