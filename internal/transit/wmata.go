package transit

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/rtcc_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "https://api.wmata.com"
	incidentsPath  = "/Incidents.svc/json/Incidents"
	busCount       = 10
	busSpread      = 0.1
)

var (
	simulatedLines = []string{"Red", "Blue", "Orange"}
	busStatuses    = []string{"in_service", "out_of_service", "delayed"}
)

type MetroIncident struct {
	IncidentID    string `json:"IncidentID"`
	Description   string `json:"Description"`
	IncidentType  string `json:"IncidentType,omitempty"`
	LinesAffected string `json:"LinesAffected"`
	DateUpdated   string `json:"DateUpdated"`
}

// MetroStatus - ответ WMATA Incidents; Simulated = true, если данные сгенерированы локально
type MetroStatus struct {
	Incidents []MetroIncident `json:"Incidents"`
	Simulated bool            `json:"simulated"`
}

type Bus struct {
	ID         string          `json:"id"`
	Route      string          `json:"route"`
	Location   models.Location `json:"location"`
	Status     string          `json:"status"`
	LastUpdate time.Time       `json:"last_update"`
}

type BusStatus struct {
	Buses []Bus `json:"buses"`
}

// Client получает сведения о метро WMATA. Любой сбой API заменяется сгенерированными данными.
type Client struct {
	baseURL    string
	apiKey     string
	reference  models.Location
	httpClient *http.Client
	clock      clockwork.Clock
	logger     *logrus.Logger
}

func NewClient(baseURL, apiKey string, reference models.Location, clock clockwork.Clock, logger *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		reference: reference,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		clock:  clock,
		logger: logger,
	}
}

// MetroIncidents возвращает текущие инциденты метро
func (c *Client) MetroIncidents(ctx context.Context) *MetroStatus {
	status, err := c.fetchMetroIncidents(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("WMATA API unavailable, serving simulated metro data")
		return c.simulatedMetro()
	}
	return status
}

func (c *Client) fetchMetroIncidents(ctx context.Context) (*MetroStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+incidentsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create WMATA request: %w", err)
	}
	req.Header.Set("api_key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call WMATA: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("WMATA responded with status code %d", resp.StatusCode)
	}

	status := &MetroStatus{}
	if err := json.NewDecoder(resp.Body).Decode(status); err != nil {
		return nil, fmt.Errorf("failed to decode WMATA response: %w", err)
	}
	if status.Incidents == nil {
		status.Incidents = []MetroIncident{}
	}
	return status, nil
}

func (c *Client) simulatedMetro() *MetroStatus {
	now := c.clock.Now().UTC().Format(time.RFC3339)
	incidents := make([]MetroIncident, 0, len(simulatedLines))
	for i, line := range simulatedLines {
		incidents = append(incidents, MetroIncident{
			IncidentID:    fmt.Sprintf("METRO-%d", i),
			Description:   fmt.Sprintf("Simulated incident on %s line", line),
			LinesAffected: line,
			DateUpdated:   now,
		})
	}
	return &MetroStatus{Incidents: incidents, Simulated: true}
}

// Buses возвращает сгенерированные позиции автобусов вокруг опорной точки
func (c *Client) Buses() *BusStatus {
	now := c.clock.Now().UTC()
	buses := make([]Bus, 0, busCount)
	for i := 0; i < busCount; i++ {
		buses = append(buses, Bus{
			ID:    fmt.Sprintf("BUS-%03d", i+1),
			Route: fmt.Sprintf("Route %d", 1+rand.IntN(100)),
			Location: models.Location{
				Lat: c.reference.Lat + (rand.Float64()*2-1)*busSpread,
				Lng: c.reference.Lng + (rand.Float64()*2-1)*busSpread,
			},
			Status:     busStatuses[rand.IntN(len(busStatuses))],
			LastUpdate: now,
		})
	}
	return &BusStatus{Buses: buses}
}
