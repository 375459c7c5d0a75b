package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/catalog"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/notify"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/storage/memory"
	"github.com/squareone-journey/squareone-cli/internal/core/services"
)

func newTestPorts(t *testing.T) *Ports {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	return &Ports{
		Worksheet: services.NewWorksheetService(memory.NewWorksheetStore(), notify.NewRecorder()),
		Tiles:     services.NewTileService(cat),
		Journey:   services.NewJourneyService(),
		Settings:  services.NewSettingsService(memory.NewConfigStore()),
	}
}

func newTestServer(t *testing.T, ports *Ports) *Server {
	t.Helper()
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestNewServer(t *testing.T) {
	t.Run("missing worksheet service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingWorksheetService)
	})

	t.Run("nil ports returns error", func(t *testing.T) {
		_, err := NewServer(nil)
		assert.ErrorIs(t, err, ErrMissingWorksheetService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(newTestPorts(t))
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	full := newTestPorts(t)

	t.Run("missing tile service returns error", func(t *testing.T) {
		ports := &Ports{Worksheet: full.Worksheet}
		assert.ErrorIs(t, ports.Validate(), ErrMissingTileService)
	})

	t.Run("required only is valid", func(t *testing.T) {
		ports := &Ports{Worksheet: full.Worksheet, Tiles: full.Tiles}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		full.Export = &mockExportService{}
		assert.NoError(t, full.Validate())
	})
}

func TestRateLimited(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	// No refill, so only the burst gets through.
	handler := rateLimited(next, rate.NewLimiter(0, 2))

	codes := make([]int, 3)
	for i := range codes {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		codes[i] = rec.Code
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
