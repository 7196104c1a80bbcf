package resend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dive-demo-tour/api/internal/config"
	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/dive-demo-tour/api/internal/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url, key string) *Client {
	return NewClient(&config.Config{
		EmailAPIURL:  url,
		EmailAPIKey:  key,
		EmailFrom:    "Dive Demo Tour <noreply@example.com>",
		EmailTimeout: 2 * time.Second,
	})
}

func testMsg() email.Message {
	return email.Message{To: "max@example.com", Subject: "Hi", HTML: "<p>Hi</p>", Text: "Hi"}
}

func TestSend_HappyPath(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"msg_1"}`))
	}))
	defer srv.Close()

	err := testClient(srv.URL, "re_test_key").Send(context.Background(), testMsg())

	require.NoError(t, err)
	assert.Equal(t, "max@example.com", got.To)
	assert.Equal(t, "Hi", got.Subject)
	assert.NotEmpty(t, got.From)
	assert.NotEmpty(t, got.HTML)
	assert.NotEmpty(t, got.Text)
}

func TestSend_ProviderError_ReturnsStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	err := testClient(srv.URL, "re_test_key").Send(context.Background(), testMsg())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestSend_PlaceholderKey_SkipsCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	for _, key := range []string{"", "your-api-key", "re_placeholder"} {
		err := testClient(srv.URL, key).Send(context.Background(), testMsg())
		require.Error(t, err, key)
		assert.True(t, errors.Is(err, domain.ErrNotConfigured), key)
	}
	assert.False(t, called, "no provider call expected without a real key")
}
