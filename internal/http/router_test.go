package httpx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ashutosh-sx/Emergo/internal/http/handlers"
	"github.com/ashutosh-sx/Emergo/internal/http/middleware"
	"github.com/ashutosh-sx/Emergo/internal/infrastructure/auth"
	"github.com/ashutosh-sx/Emergo/internal/infrastructure/database"
	"github.com/ashutosh-sx/Emergo/internal/infrastructure/repositories"
	"github.com/ashutosh-sx/Emergo/internal/mocks"
	"github.com/ashutosh-sx/Emergo/internal/services"
)

// newTestServer wires real services over an in-memory database and Redis so
// the full HTTP flows can be exercised end to end. The chat rate limit is
// left wide open; tests for the limiter build their own server.
func newTestServer(t *testing.T) (*httptest.Server, *mocks.MockNotificationService) {
	t.Helper()
	return newTestServerWithRouterConfig(t, RouterConfig{ChatRateRPS: 100, ChatRateBurst: 100})
}

func newTestServerWithRouterConfig(t *testing.T, routerCfg RouterConfig) (*httptest.Server, *mocks.MockNotificationService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	log := zerolog.Nop()
	notifications := mocks.NewMockNotificationService()

	userRepo := repositories.NewUserRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	driverRepo := repositories.NewDriverRepository(db)

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService("test-secret", "emergo", 168*time.Hour)

	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc, notifications, redisClient, auth.GenerateResetToken, services.AuthConfig{
		BaseURL:           "http://localhost:3000",
		ResetTokenTTL:     time.Hour,
		ResetResendWindow: time.Minute,
	}, log)
	bookingSvc := services.NewBookingService(bookingRepo, notifications, log)
	driverSvc := services.NewDriverService(driverRepo, log)
	chatSvc := services.NewChatService(mocks.NewMockChatProvider(), log)

	router := BuildRouter(
		handlers.NewAuthHandlers(authSvc, 168*time.Hour, false, log),
		handlers.NewBookingHandlers(bookingSvc, log),
		handlers.NewDriverHandlers(driverSvc, log),
		handlers.NewChatHandlers(chatSvc, log),
		handlers.NewDirectionsHandlers(mocks.NewMockDirectionsProvider(), log),
		middleware.NewAuthMW(tokenSvc),
		routerCfg,
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, notifications
}

func post(t *testing.T, url string, body map[string]interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	defer resp.Body.Close()
	var decoded map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestPasswordRecoveryFlow(t *testing.T) {
	srv, notifications := newTestServer(t)

	// Sign up.
	resp, body := post(t, srv.URL+"/api/auth/signup", map[string]interface{}{
		"name": "Asha", "email": "asha@example.com", "password": "original1", "phone": "9876543210",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "signup: %v", body)

	// Duplicate signup is rejected.
	resp, body = post(t, srv.URL+"/api/auth/signup", map[string]interface{}{
		"name": "Asha Again", "email": "asha@example.com", "password": "different1",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "User already exists", body["error"])

	// Login with the original password works.
	resp, _ = post(t, srv.URL+"/api/auth/login", map[string]interface{}{
		"email": "asha@example.com", "password": "original1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sessionToken string
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			sessionToken = c.Value
		}
	}
	require.NotEmpty(t, sessionToken, "login must set the session cookie")

	// Request a reset link; the token travels in the emailed link.
	resp, _ = post(t, srv.URL+"/api/auth/forgot-password", map[string]interface{}{
		"email": "asha@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, notifications.Emails, 1)
	link := notifications.Emails[0].Body
	idx := strings.Index(link, "token=")
	require.GreaterOrEqual(t, idx, 0, "reset link must carry a token: %s", link)
	resetToken := link[idx+len("token="):]

	// Immediate resend is throttled.
	resp, _ = post(t, srv.URL+"/api/auth/forgot-password", map[string]interface{}{
		"email": "asha@example.com",
	})
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	// Redeem the token.
	resp, body = post(t, srv.URL+"/api/auth/reset-password", map[string]interface{}{
		"token": resetToken, "password": "replacement1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "reset: %v", body)

	// The token is single use.
	resp, body = post(t, srv.URL+"/api/auth/reset-password", map[string]interface{}{
		"token": resetToken, "password": "replacement2",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Invalid or expired token", body["error"])

	// Old password no longer works, the replacement does.
	resp, _ = post(t, srv.URL+"/api/auth/login", map[string]interface{}{
		"email": "asha@example.com", "password": "original1",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = post(t, srv.URL+"/api/auth/login", map[string]interface{}{
		"email": "asha@example.com", "password": "replacement1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionCookieGuardsProfile(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := post(t, srv.URL+"/api/auth/signup", map[string]interface{}{
		"name": "Ravi", "email": "ravi@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	// Without the cookie the profile endpoint refuses.
	bare, err := http.Get(srv.URL + "/api/auth/me")
	require.NoError(t, err)
	bare.Body.Close()
	require.Equal(t, http.StatusUnauthorized, bare.StatusCode)

	// With it the stored profile comes back.
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/auth/me", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)
	authed, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer authed.Body.Close()
	require.Equal(t, http.StatusOK, authed.StatusCode)

	var body struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(authed.Body).Decode(&body))
	require.Equal(t, "ravi@example.com", body.User.Email)
}

func TestBookingAndTrackingFlow(t *testing.T) {
	srv, notifications := newTestServer(t)

	resp, body := post(t, srv.URL+"/api/bookings", map[string]interface{}{
		"name":        "Asha Rao",
		"phone":       "9876543210",
		"pickup":      "12 MG Road, Bengaluru",
		"destination": "Apollo Hospital, Bannerghatta Road",
		"type":        "ICU",
		"date":        "2026-09-01T10:30",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create: %v", body)
	booking := body["booking"].(map[string]interface{})
	require.Equal(t, "confirmed", booking["status"])
	id := uint(booking["id"].(float64))
	require.Len(t, notifications.SMS, 1)
	require.Contains(t, notifications.SMS[0].Body, fmt.Sprintf("#%d", id))

	// Tracking page fetches the booking back.
	got, err := http.Get(fmt.Sprintf("%s/api/bookings/%d", srv.URL, id))
	require.NoError(t, err)
	defer got.Body.Close()
	require.Equal(t, http.StatusOK, got.StatusCode)

	// Directions for the tracking map.
	dir, err := http.Get(srv.URL + "/api/directions?origin=12+MG+Road&destination=Apollo+Hospital")
	require.NoError(t, err)
	dir.Body.Close()
	require.Equal(t, http.StatusOK, dir.StatusCode)
}

func TestDriverRegistrationConflict(t *testing.T) {
	srv, _ := newTestServer(t)

	application := map[string]interface{}{
		"name":                 "Ravi Kumar",
		"phone":                "9876543210",
		"licenseNumber":        "KA01-2020-0012345",
		"vehicleType":          "ICU",
		"vehicleRegNumber":     "KA01AB1234",
		"driverPhoto":          "uploads/driver.jpg",
		"ambulanceFrontPhoto":  "uploads/front.jpg",
		"ambulanceInsidePhoto": "uploads/inside.jpg",
		"ambulanceSidePhoto":   "uploads/side.jpg",
		"driverIdPhoto":        "uploads/id.jpg",
		"driverLicensePhoto":   "uploads/license.jpg",
	}

	resp, body := post(t, srv.URL+"/api/driver/register", application)
	require.Equal(t, http.StatusOK, resp.StatusCode, "register: %v", body)

	// Same vehicle under a different driver identity is still a conflict.
	application["phone"] = "9000000000"
	application["licenseNumber"] = "KA02-2021-0098765"
	resp, body = post(t, srv.URL+"/api/driver/register", application)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Driver or Vehicle already registered", body["error"])
}

func TestForgotPasswordDoesNotRevealAccounts(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := post(t, srv.URL+"/api/auth/signup", map[string]interface{}{
		"name": "Asha", "email": "known@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Two quick requests per address. A registered and an unregistered
	// address must produce the same status sequence, or the endpoint
	// becomes an account-existence oracle.
	statuses := func(email string) []int {
		var out []int
		for i := 0; i < 2; i++ {
			resp, _ := post(t, srv.URL+"/api/auth/forgot-password", map[string]interface{}{
				"email": email,
			})
			out = append(out, resp.StatusCode)
		}
		return out
	}

	known := statuses("known@example.com")
	unknown := statuses("nobody@example.com")
	require.Equal(t, known, unknown, "status sequences must not depend on account existence")
	require.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, known)
}

func TestChatRateLimit(t *testing.T) {
	srv, _ := newTestServerWithRouterConfig(t, RouterConfig{ChatRateRPS: 1, ChatRateBurst: 2})

	ask := func() int {
		resp, _ := post(t, srv.URL+"/api/chat", map[string]interface{}{"message": "hello"})
		return resp.StatusCode
	}

	require.Equal(t, http.StatusOK, ask())
	require.Equal(t, http.StatusOK, ask())
	require.Equal(t, http.StatusTooManyRequests, ask())

	// Only /api/chat is limited; the rest of the surface stays open.
	for i := 0; i < 5; i++ {
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
