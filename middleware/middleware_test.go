package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fitness-api/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test-secret"

// newTestRouter builds a router with the auth gateway installed, one
// protected route echoing the attached username, and the public paths.
func newTestRouter(tokens *services.TokenService) *gin.Engine {
	router := gin.New()
	router.Use(Auth(tokens))

	router.GET("/routes", func(c *gin.Context) {
		c.String(http.StatusOK, GetUsername(c))
	})
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/console", func(c *gin.Context) {
		c.String(http.StatusOK, "console")
	})
	router.POST("/auth/login", func(c *gin.Context) {
		c.String(http.StatusOK, "login")
	})

	return router
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPublicPathsBypassAuth(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	router := newTestRouter(tokens)

	for _, path := range []string{"/health", "/console"} {
		w := doRequest(router, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Errorf("expected %s to be public, got status %d", path, w.Code)
		}
	}

	w := doRequest(router, http.MethodPost, "/auth/login", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected /auth/login to be public, got status %d", w.Code)
	}
}

func TestProtectedPathWithoutTokenIsRejected(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	router := newTestRouter(tokens)

	w := doRequest(router, http.MethodGet, "/routes", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}

func TestProtectedPathWithValidTokenAttachesIdentity(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	router := newTestRouter(tokens)

	token, err := tokens.Generate("alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w := doRequest(router, http.MethodGet, "/routes", token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", w.Code)
	}
	if w.Body.String() != "alice" {
		t.Errorf("expected attached username %q, got %q", "alice", w.Body.String())
	}
}

func TestInvalidTokenIsTreatedAsAbsentIdentity(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	router := newTestRouter(tokens)

	w := doRequest(router, http.MethodGet, "/routes", "not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with garbage token, got %d", w.Code)
	}
}

func TestExpiredTokenIsTreatedAsAbsentIdentity(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	router := newTestRouter(tokens)

	expired := services.NewTokenService(testSecret, -time.Hour)
	token, err := expired.Generate("alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w := doRequest(router, http.MethodGet, "/routes", token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with expired token, got %d", w.Code)
	}
}

func TestExpiredTokenStillPassesPublicPaths(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	router := newTestRouter(tokens)

	expired := services.NewTokenService(testSecret, -time.Hour)
	token, err := expired.Generate("alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w := doRequest(router, http.MethodGet, "/health", token)
	if w.Code != http.StatusOK {
		t.Errorf("expected public path to ignore expired token, got %d", w.Code)
	}
}
