package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestFixedWindowLimiterAdmit(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewFixedWindowLimiter(2, time.Minute)
	limiter.now = func() time.Time { return current }

	if !limiter.Admit("a") {
		t.Error("Expected first request to be admitted")
	}
	if !limiter.Admit("a") {
		t.Error("Expected second request to be admitted")
	}
	if limiter.Admit("a") {
		t.Error("Expected third request to be rejected")
	}

	// Keys are counted independently
	if !limiter.Admit("b") {
		t.Error("Expected request from another client to be admitted")
	}
}

func TestFixedWindowLimiterWindowReset(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewFixedWindowLimiter(1, time.Minute)
	limiter.now = func() time.Time { return current }

	if !limiter.Admit("a") {
		t.Error("Expected first request to be admitted")
	}
	if limiter.Admit("a") {
		t.Error("Expected second request in the same window to be rejected")
	}

	current = current.Add(time.Minute)
	if !limiter.Admit("a") {
		t.Error("Expected request in the next window to be admitted")
	}
}

func TestFixedWindowLimiterConcurrentCounting(t *testing.T) {
	limiter := NewFixedWindowLimiter(50, time.Minute)

	var admitted int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Admit("shared") {
				atomic.AddInt64(&admitted, 1)
			}
		}()
	}
	wg.Wait()

	if admitted != 50 {
		t.Errorf("Expected exactly 50 admitted requests, got %d", admitted)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewFixedWindowLimiter(1, time.Minute)

	r := gin.New()
	r.Use(RateLimit(limiter))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	req, _ = http.NewRequest("GET", "/ping", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status %d, got %d", http.StatusTooManyRequests, w.Code)
	}
	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response["message"] == "" {
		t.Error("Expected a message in the rejection body")
	}
}
