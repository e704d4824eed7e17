package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	mem "safari/pkg/memcache"
	"safari/pkg/utils"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	handlers = append(handlers, func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/", handlers...)
	return r
}

func do(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTraceIDIsGeneratedAndPropagated(t *testing.T) {
	r := newEngine()

	w := do(r, nil)
	if w.Header().Get(TraceIDHeader) == "" {
		t.Fatal("expected generated trace id")
	}

	const incoming = "0b4f6a8e-2c1d-4b7e-9f3a-5d6c7e8f9a0b"
	w = do(r, map[string]string{TraceIDHeader: incoming})
	if got := w.Header().Get(TraceIDHeader); got != incoming {
		t.Fatalf("expected incoming trace id to be kept, got %q", got)
	}
}

func TestAdminAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	r := newEngine(AdminAuthMiddleware(tokens))

	if w := do(r, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: expected 401, got %d", w.Code)
	}
	if w := do(r, map[string]string{"Authorization": "Bearer garbage"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", w.Code)
	}

	guest, _, _ := tokens.CreateToken("someone", "guest")
	if w := do(r, map[string]string{"Authorization": "Bearer " + guest}); w.Code != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d", w.Code)
	}

	admin, _, _ := tokens.CreateToken("admin", utils.RoleAdmin)
	if w := do(r, map[string]string{"Authorization": "Bearer " + admin}); w.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", w.Code)
	}
}

func TestAdminAuthRejectsEverythingWhenDisabled(t *testing.T) {
	signed, _, _ := utils.NewTokenManager("secret", time.Hour).CreateToken("admin", utils.RoleAdmin)
	r := newEngine(AdminAuthMiddleware(utils.NewTokenManager("", time.Hour)))

	if w := do(r, map[string]string{"Authorization": "Bearer " + signed}); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with admin disabled, got %d", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	store := mem.NewVisitorLimiters(rate.Every(time.Hour), 2, time.Hour)
	r := newEngine(RateLimit(store))

	for i := 0; i < 2; i++ {
		if w := do(r, nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
	if w := do(r, nil); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", w.Code)
	}

	open := newEngine(RateLimit(nil))
	for i := 0; i < 5; i++ {
		if w := do(open, nil); w.Code != http.StatusOK {
			t.Fatalf("disabled limiter should pass, got %d", w.Code)
		}
	}
}
