package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

func newEngine(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/expenses", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return engine
}

func post(engine *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/expenses", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute, true)
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }
	engine := newEngine(rl)

	for i := 0; i < 2; i++ {
		if rec := post(engine, "10.0.0.1:1234"); rec.Code != http.StatusCreated {
			t.Fatalf("request %d: expected 201, got %d", i+1, rec.Code)
		}
	}

	rec := post(engine, "10.0.0.1:1234")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Code != string(domainerror.ErrCodeRateLimited) {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeRateLimited, body.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}

	t.Run("other clients are counted separately", func(t *testing.T) {
		if rec := post(engine, "10.0.0.2:1234"); rec.Code != http.StatusCreated {
			t.Errorf("expected 201, got %d", rec.Code)
		}
	})

	t.Run("window reset", func(t *testing.T) {
		current = current.Add(time.Minute + time.Second)
		if rec := post(engine, "10.0.0.1:1234"); rec.Code != http.StatusCreated {
			t.Errorf("expected 201 after the window, got %d", rec.Code)
		}
	})

	t.Run("cleanup drops expired entries", func(t *testing.T) {
		current = current.Add(2 * time.Minute)
		rl.Cleanup()
		if len(rl.entries) != 0 {
			t.Errorf("expected no entries, got %d", len(rl.entries))
		}
	})
}

func TestRateLimiter_Disabled(t *testing.T) {
	engine := newEngine(NewRateLimiter(1, time.Minute, false))

	for i := 0; i < 5; i++ {
		if rec := post(engine, "10.0.0.1:1234"); rec.Code != http.StatusCreated {
			t.Fatalf("request %d: expected 201, got %d", i+1, rec.Code)
		}
	}
}
