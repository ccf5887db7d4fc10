package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caic-xyz/website/internal/middleware"

	"github.com/gin-gonic/gin"
)

func TestZerologMiddlewarePassesRequestsThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	zerologMiddleware := middleware.NewZerologMiddleware()
	if err := zerologMiddleware.Init(); err != nil {
		t.Fatalf("Failed to initialize middleware: %v", err)
	}

	router := gin.New()
	router.Use(zerologMiddleware.Middleware())
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/boom", func(c *gin.Context) {
		c.JSON(502, gin.H{"status": 502})
	})

	// Logging must never change the response, whatever the status class
	for path, expected := range map[string]int{"/api/health": 200, "/boom": 502, "/missing": 404} {
		recorder := httptest.NewRecorder()
		req, err := http.NewRequest("GET", path, nil)
		if err != nil {
			t.Fatalf("Failed to create request: %v", err)
		}
		router.ServeHTTP(recorder, req)

		if recorder.Code != expected {
			t.Fatalf("Expected %d for %s, got %d", expected, path, recorder.Code)
		}
	}
}
