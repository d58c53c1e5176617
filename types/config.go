package types

// DefaultBackendURL is the backend base URL used until, or unless, the
// configuration endpoint reports another one.
const DefaultBackendURL = "http://localhost:8080"

// ConfigURLPath is the path of the endpoint reporting the backend base URL.
const ConfigURLPath = "/api/config/url"

// ConfigURLResponse is the body returned by the configuration endpoint.
// Fields other than url are ignored by consumers.
type ConfigURLResponse struct {
	URL string `json:"url"`
}

// HealthStatus describes the health of a server.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResponse represents the response from the health endpoint
type HealthResponse struct {
	Status HealthStatus `json:"status"`
}
