package config

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomLoggerMiddleware(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	h := middleware.RequestID(CustomLoggerMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})))

	req := httptest.NewRequest(http.MethodGet, "/mongo/42", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.InfoLevel, entry.Level)
	assert.Contains(t, entry.Message, "GET /mongo/42")
	assert.Contains(t, entry.Message, "404 Not Found")
	assert.NotEmpty(t, entry.Data["request_id"])
}

func TestCreateUniqueInstance(t *testing.T) {
	id := CreateUniqueInstance("student")
	assert.Len(t, id, 36)
	assert.NotEqual(t, id, CreateUniqueInstance("student"))
}

func TestLoadShared(t *testing.T) {
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("JWT_SECRET_KEY", "")
	assert.Equal(t, Shared{RateLimit: 100}, LoadShared())

	t.Setenv("RATE_LIMIT", "-5")
	assert.Equal(t, 100, LoadShared().RateLimit)

	t.Setenv("RATE_LIMIT", "30")
	t.Setenv("JWT_SECRET_KEY", "k")
	assert.Equal(t, Shared{RateLimit: 30, JWTSecret: "k"}, LoadShared())
}

func TestLoggingToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	t.Setenv("LOG_TO_FILE", "true")
	t.Setenv("LOG_DIR", dir)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	Logging("student_service_test")

	b, err := os.ReadFile(filepath.Join(dir, "student_service_test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "log to file started for service: student_service_test")
}

func TestLoadEnvWithoutFile(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	LoadEnv("student")
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
}
