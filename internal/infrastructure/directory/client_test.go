package directory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestNormalizeOptions(t *testing.T) {
	want := []Option{{Code: "delhi", Label: "Delhi", Position: 1}}

	cases := []struct {
		name string
		body string
	}{
		{"double nested", `{"data":{"data":[{"code":"delhi","label":"Delhi","position":1}]}}`},
		{"single nested", `{"data":[{"code":"delhi","label":"Delhi","position":1}]}`},
		{"bare array", `[{"code":"delhi","label":"Delhi","position":1}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeOptions([]byte(tc.body))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("empty list is valid, not an error", func(t *testing.T) {
		got, err := NormalizeOptions([]byte(`{"data":[]}`))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unrecognizable shape errors instead of returning empty", func(t *testing.T) {
		_, err := NormalizeOptions([]byte(`{"result":"ok"}`))
		assert.Error(t, err)
	})
}

func TestClientFetchOptions(t *testing.T) {
	t.Run("retries with backoff on 429 then succeeds", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) <= 2 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`{"data":[{"code":"civil","label":"Civil Law"}]}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, 3, time.Millisecond, testLogger())
		options, err := client.FetchOptions(context.Background(), "law_types")
		require.NoError(t, err)
		require.Len(t, options, 1)
		assert.Equal(t, "civil", options[0].Code)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("gives up after the retry cap", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, 2, time.Millisecond, testLogger())
		_, err := client.FetchOptions(context.Background(), "cities")
		assert.True(t, errors.Is(err, ErrRateLimited))
		assert.Equal(t, int32(3), calls.Load(), "initial attempt plus two retries")
	})

	t.Run("non-429 failures are not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, 3, time.Millisecond, testLogger())
		_, err := client.FetchOptions(context.Background(), "languages")
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrRateLimited))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("context cancellation stops the backoff wait", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewClient(srv.URL, time.Second, 3, time.Minute, testLogger())
		_, err := client.FetchOptions(ctx, "cities")
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
