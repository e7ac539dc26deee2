package integration_test

import (
	"os"
	"sync"
	"testing"

	"github.com/sadikshya-ghimire/haatbazar-jobs-backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, starting it on first
// use. Every caller gets a clean database, so these tests run
// sequentially.
func GetTestServer(t *testing.T) *helpers.TestServer {
	helpers.RequireDatabase(t)

	serverOnce.Do(func() {
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration-test-secret-12345")
		}
		os.Setenv("SERVER_ENV", "test")
		globalTestServer = helpers.NewTestServer(t)
	})

	globalTestServer.ClearTables(t)
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()
	if globalTestServer != nil {
		globalTestServer.Close()
	}
	os.Exit(code)
}
