package hub_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"userhub-go/internal/hub/app"
	"userhub-go/pkg/httpx"
	"userhub-go/pkg/userhub"

	"github.com/stretchr/testify/require"
)

/*
 * Common constants and helper functions for hub emulator end-to-end tests.
 * The emulator runs in-process behind httptest and is driven through the
 * same client SDK that applications embed.
 */

const (
	adminUsername = "admin"
	adminPassword = "Admin123!"
)

// TestMain relaxes the shared rate limit profiles before any router is
// built. Tests make many rapid requests which would otherwise trip the
// strict production limits.
func TestMain(m *testing.M) {
	httpx.StrictLimit = httpx.RateLimitConfig{
		RequestsPerWindow: 1000,
		Window:            time.Minute,
		Burst:             1000,
	}
	httpx.ModerateLimit = httpx.RateLimitConfig{
		RequestsPerWindow: 1000,
		Window:            time.Minute,
		Burst:             1000,
	}

	os.Exit(m.Run())
}

// setupHub starts the emulator in-process and returns its base URL.
func setupHub(t *testing.T) string {
	t.Helper()

	cfg := app.LoadConfig()
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "hub.db")
	cfg.SeedUsername = adminUsername
	cfg.SeedPassword = adminPassword
	cfg.Env = "test"
	cfg.LogFormat = "text"

	application, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	server := httptest.NewServer(application.Handler())
	t.Cleanup(server.Close)

	return server.URL
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *userhub.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
