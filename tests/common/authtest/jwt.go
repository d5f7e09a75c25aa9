//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"viajes-backoffice/internal/pkg/config"
	"viajes-backoffice/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// GenerateToken issues a token the way the session service would. Tests talk
// to the API as an authenticated seller without any login round trip.
func GenerateToken(t *testing.T, cfg config.JWTConfig, sellerID uuid.UUID, role string) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)

	service := jwt.NewService(cfg.Secret, duration)
	token, err := service.GenerateToken(sellerID, role)
	require.NoError(t, err)
	return token
}

func GenerateExpiredToken(t *testing.T, cfg config.JWTConfig, sellerID uuid.UUID, role string) string {
	t.Helper()

	service := jwt.NewService(cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(sellerID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
