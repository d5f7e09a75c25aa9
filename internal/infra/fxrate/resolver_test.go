//go:build unit

package fxrate_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"viajes-backoffice/internal/infra/fxrate"
	"viajes-backoffice/internal/pkg/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func banxicoBody(rate string) string {
	return fmt.Sprintf(`{"bmx":{"series":[{"datos":[{"fecha":"25/08/2026","dato":"%s"}]}]}}`, rate)
}

func dofBody(rate string) string {
	return fmt.Sprintf(`{"ListaIndicadores":[{"valor":"%s","fecha":"25-08-2026"}]}`, rate)
}

func newResolverConfig(primaryURL, fallbackURL string) config.FXConfig {
	return config.FXConfig{
		PrimaryURL:   primaryURL,
		PrimaryToken: "test-token",
		FallbackURL:  fallbackURL,
		Timeout:      2 * time.Second,
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	tuesday := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	t.Run("primary source answers with its token", func(t *testing.T) {
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2026-08-25/2026-08-25", r.URL.Path)
			assert.Equal(t, "test-token", r.Header.Get("Bmx-Token"))
			fmt.Fprint(w, banxicoBody("17.0350"))
		}))
		defer primary.Close()

		resolver := fxrate.NewHTTPResolver(newResolverConfig(primary.URL, "http://unused"))
		quote, err := resolver.Resolve(ctx, tuesday)
		require.NoError(t, err)

		assert.True(t, quote.Rate.Equal(decimal.RequireFromString("17.0350")))
		assert.Equal(t, "banxico", quote.Source)
	})

	t.Run("weekend dates quote the preceding friday", func(t *testing.T) {
		var requestedPath string
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestedPath = r.URL.Path
			fmt.Fprint(w, banxicoBody("17.10"))
		}))
		defer primary.Close()

		resolver := fxrate.NewHTTPResolver(newResolverConfig(primary.URL, "http://unused"))

		quote, err := resolver.Resolve(ctx, saturday)
		require.NoError(t, err)
		assert.Equal(t, "/2026-08-21/2026-08-21", requestedPath)
		assert.Equal(t, "banxico (friday 2026-08-21)", quote.Source)

		quote, err = resolver.Resolve(ctx, sunday)
		require.NoError(t, err)
		assert.Equal(t, "/2026-08-21/2026-08-21", requestedPath)
		assert.Equal(t, "banxico (friday 2026-08-21)", quote.Source)
	})

	t.Run("primary failure falls back to the gazette", func(t *testing.T) {
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer primary.Close()

		fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/25-08-2026", r.URL.Path)
			fmt.Fprint(w, dofBody("17.0890"))
		}))
		defer fallback.Close()

		resolver := fxrate.NewHTTPResolver(newResolverConfig(primary.URL, fallback.URL))
		quote, err := resolver.Resolve(ctx, tuesday)
		require.NoError(t, err)

		assert.True(t, quote.Rate.Equal(decimal.RequireFromString("17.0890")))
		assert.Equal(t, "dof", quote.Source)
	})

	t.Run("empty primary data also falls back", func(t *testing.T) {
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"bmx":{"series":[]}}`)
		}))
		defer primary.Close()

		fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, dofBody("17.20"))
		}))
		defer fallback.Close()

		resolver := fxrate.NewHTTPResolver(newResolverConfig(primary.URL, fallback.URL))
		quote, err := resolver.Resolve(ctx, tuesday)
		require.NoError(t, err)
		assert.Equal(t, "dof", quote.Source)
	})

	t.Run("both sources down is a resolution failure", func(t *testing.T) {
		down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer down.Close()

		resolver := fxrate.NewHTTPResolver(newResolverConfig(down.URL, down.URL))
		_, err := resolver.Resolve(ctx, tuesday)
		require.Error(t, err)
	})

	t.Run("non-positive published rate is rejected", func(t *testing.T) {
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, banxicoBody("0"))
		}))
		defer primary.Close()

		fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, dofBody("-1"))
		}))
		defer fallback.Close()

		resolver := fxrate.NewHTTPResolver(newResolverConfig(primary.URL, fallback.URL))
		_, err := resolver.Resolve(ctx, tuesday)
		require.Error(t, err)
	})
}
