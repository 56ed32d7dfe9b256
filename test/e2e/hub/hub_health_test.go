package hub_test

import (
	"testing"

	"userhub-go/pkg/userhub"
)

// TestLivezEndpoint verifies the liveness check endpoint works on a fresh server.
func TestLivezEndpoint(t *testing.T) {
	baseURL := setupHub(t)

	client := userhub.NewClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the readiness check endpoint reports the database healthy.
func TestReadyzEndpoint(t *testing.T) {
	baseURL := setupHub(t)

	client := userhub.NewClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
}
