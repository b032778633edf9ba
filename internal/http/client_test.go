package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	tiltifyhttp "github.com/fivetwenty-io/tiltify-client/internal/http"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/public/campaigns/42", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			_, _ = writer.Write([]byte(`{"data":{"id":"42"}}`))
		}))
		defer server.Close()

		client := tiltifyhttp.NewClient(server.URL)

		resp, err := client.Do(context.Background(), &tiltifyhttp.Request{
			Method:  http.MethodGet,
			Path:    "/api/public/campaigns/42",
			Headers: map[string]string{"Authorization": "Bearer test-token"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"data":{"id":"42"}}`, string(resp.Body))
	})

	t.Run("raw query is sent verbatim", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "limit=50&after=abc%3D", request.URL.RawQuery)
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := tiltifyhttp.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/rewards?limit=50&after=abc%3D", nil)
		require.NoError(t, err)
	})

	t.Run("error status with JSON body is returned", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":{"status":404,"message":"Not Found"}}`))
		}))
		defer server.Close()

		client := tiltifyhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/missing", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("server error is not retried by default", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"error":{"status":500,"message":"boom"}}`))
		}))
		defer server.Close()

		client := tiltifyhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/boom", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})

	t.Run("non-JSON body is a transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte(`<html>bad gateway</html>`))
		}))
		defer server.Close()

		client := tiltifyhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/gateway", nil)
		require.Error(t, err)
		assert.Nil(t, resp)

		transportErr := &tiltify.TransportError{}
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.StatusBadGateway, transportErr.StatusCode)
		assert.ErrorIs(t, err, tiltifyhttp.ErrInvalidJSON)
	})

	t.Run("network failure is a transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		target := server.URL
		server.Close()

		client := tiltifyhttp.NewClient(target)

		_, err := client.Get(context.Background(), "/closed", nil)
		require.Error(t, err)

		transportErr := &tiltify.TransportError{}
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.MethodGet, transportErr.Method)
		assert.Zero(t, transportErr.StatusCode)
	})

	t.Run("absolute path bypasses base URL", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "/oauth/token", request.URL.Path)
			_, _ = writer.Write([]byte(`{"access_token":"t"}`))
		}))
		defer server.Close()

		client := tiltifyhttp.NewClient("http://unused.invalid")

		_, err := client.Post(context.Background(), server.URL+"/oauth/token?grant_type=client_credentials", nil)
		require.NoError(t, err)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "tiltify-test", request.Header.Get("User-Agent"))
			_, _ = writer.Write([]byte(`{"result":"ok"}`))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := tiltifyhttp.NewClient(server.URL,
			tiltifyhttp.WithLogger(logger),
			tiltifyhttp.WithDebug(true),
			tiltifyhttp.WithUserAgent("tiltify-test"),
		)

		_, err := client.Post(context.Background(), "/oauth/token?client_id=id&client_secret=hunter2", nil)
		require.NoError(t, err)

		// Should have logged request and response
		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])

		fields, ok := logger.logs[0]["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.NotContains(t, fields["url"], "hunter2")
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if atomic.AddInt32(&attempts, 1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			}

			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := tiltifyhttp.NewClient(server.URL, tiltifyhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	})

	t.Run("retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if atomic.AddInt32(&attempts, 1) < 2 {
				writer.WriteHeader(http.StatusTooManyRequests)
			}

			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := tiltifyhttp.NewClient(server.URL, tiltifyhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"error":{"status":400}}`))
		}))
		defer server.Close()

		client := tiltifyhttp.NewClient(server.URL, tiltifyhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts)) // Should not retry
	})

	t.Run("context cancellation stops the request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := tiltifyhttp.NewClient(server.URL)

		_, err := client.Get(ctx, "/test", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
