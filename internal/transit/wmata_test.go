package transit

import (
	"bytes"
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reference = models.Location{Lat: 38.9072, Lng: -77.0369}

func newTestClient(baseURL string) *Client {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewClient(baseURL, "test-key", reference, clockwork.NewFakeClock(), logger)
}

func TestMetroIncidents_FromAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, incidentsPath, r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("api_key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Incidents":[{"IncidentID":"A1","Description":"Delays","LinesAffected":"RD;","DateUpdated":"2024-05-01T10:00:00"}]}`))
	}))
	defer server.Close()

	status := newTestClient(server.URL).MetroIncidents(context.Background())

	assert.False(t, status.Simulated)
	require.Len(t, status.Incidents, 1)
	assert.Equal(t, "A1", status.Incidents[0].IncidentID)
	assert.Equal(t, "RD;", status.Incidents[0].LinesAffected)
}

func TestMetroIncidents_FallbackOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	status := newTestClient(server.URL).MetroIncidents(context.Background())

	assert.True(t, status.Simulated)
	require.Len(t, status.Incidents, 3)
	assert.Equal(t, "METRO-0", status.Incidents[0].IncidentID)
	assert.Equal(t, "Red", status.Incidents[0].LinesAffected)
	assert.Equal(t, "Simulated incident on Orange line", status.Incidents[2].Description)
}

func TestMetroIncidents_FallbackOnUnreachable(t *testing.T) {
	status := newTestClient("http://127.0.0.1:1").MetroIncidents(context.Background())
	assert.True(t, status.Simulated)
}

func TestBuses(t *testing.T) {
	status := newTestClient("").Buses()

	require.Len(t, status.Buses, busCount)
	assert.Equal(t, "BUS-001", status.Buses[0].ID)
	assert.Equal(t, "BUS-010", status.Buses[9].ID)
	for _, bus := range status.Buses {
		assert.LessOrEqual(t, math.Abs(bus.Location.Lat-reference.Lat), busSpread)
		assert.LessOrEqual(t, math.Abs(bus.Location.Lng-reference.Lng), busSpread)
		assert.Contains(t, busStatuses, bus.Status)
	}
}
