package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("GeneratesIDWhenMissing", func(t *testing.T) {
		router := gin.New()
		router.Use(CorrelationID())
		var capturedID string
		router.GET("/test", func(c *gin.Context) {
			capturedID = c.GetString(CorrelationIDKey)
			c.Status(http.StatusOK)
		})

		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		headerID := rr.Header().Get(CorrelationIDHeader)
		require.NotEmpty(t, headerID)
		_, err := uuid.Parse(headerID)
		assert.NoError(t, err)
		assert.Equal(t, headerID, capturedID)
	})

	t.Run("ReusesProvidedID", func(t *testing.T) {
		router := gin.New()
		router.Use(CorrelationID())
		var capturedID string
		router.GET("/test", func(c *gin.Context) {
			capturedID = c.GetString(CorrelationIDKey)
			c.Status(http.StatusOK)
		})

		providedID := uuid.New().String()
		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(CorrelationIDHeader, providedID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, providedID, rr.Header().Get(CorrelationIDHeader))
		assert.Equal(t, providedID, capturedID)
	})
}

func TestGetCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ReturnsStoredID", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		expected := uuid.New().String()
		c.Set(CorrelationIDKey, expected)
		assert.Equal(t, expected, GetCorrelationID(c))
	})

	t.Run("EmptyWhenAbsent", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Empty(t, GetCorrelationID(c))
	})

	t.Run("EmptyWhenNotAString", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(CorrelationIDKey, 12345)
		assert.Empty(t, GetCorrelationID(c))
	})
}

func TestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var logBuffer bytes.Buffer
	testLogger := slog.New(slog.NewJSONHandler(&logBuffer, &slog.HandlerOptions{Level: slog.LevelInfo}))

	router := gin.New()
	router.Use(CorrelationID())
	router.Use(Logger(testLogger))
	router.GET("/statements", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	correlationID := uuid.New().String()
	req, _ := http.NewRequest(http.MethodGet, "/statements?party=abc", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set(CorrelationIDHeader, correlationID)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, `"msg":"HTTP request"`)
	assert.Contains(t, logOutput, `"method":"GET"`)
	assert.Contains(t, logOutput, `"path":"/statements?party=abc"`)
	assert.Contains(t, logOutput, `"status":200`)
	assert.Contains(t, logOutput, `"latency":`)
	assert.Contains(t, logOutput, `"user_agent":"test-agent"`)
	assert.Contains(t, logOutput, `"correlation_id":"`+correlationID+`"`)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("RecoversFromPanic", func(t *testing.T) {
		var logBuffer bytes.Buffer
		testLogger := slog.New(slog.NewJSONHandler(&logBuffer, &slog.HandlerOptions{Level: slog.LevelError}))

		router := gin.New()
		router.Use(CorrelationID())
		router.Use(Recovery(testLogger))
		router.GET("/panic", func(c *gin.Context) {
			panic("boom")
		})

		correlationID := uuid.New().String()
		req, _ := http.NewRequest(http.MethodGet, "/panic", nil)
		req.Header.Set(CorrelationIDHeader, correlationID)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		errorField, ok := body["error"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", errorField["code"])
		assert.Equal(t, correlationID, body["correlation_id"])

		logOutput := logBuffer.String()
		assert.Contains(t, logOutput, `"msg":"Panic recovered"`)
		assert.Contains(t, logOutput, `"error":"boom"`)
		assert.Contains(t, logOutput, `"stack":`)
	})

	t.Run("NoPanicNoEffect", func(t *testing.T) {
		var logBuffer bytes.Buffer
		testLogger := slog.New(slog.NewJSONHandler(&logBuffer, nil))

		router := gin.New()
		router.Use(Recovery(testLogger))
		router.GET("/ok", func(c *gin.Context) {
			c.String(http.StatusOK, "OK")
		})

		req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, logBuffer.String())
	})
}
