package types

type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "UP"
	HealthStatusDown     HealthStatus = "DOWN"
	HealthStatusDegraded HealthStatus = "DEGRADED"
)

type HealthComponent struct {
	Status  HealthStatus `json:"status"`
	Details string       `json:"details,omitempty"`
}

// HealthCheck is returned by GET /health. Database reflects the storage
// accessor mode: UP when connected to the primary store, DEGRADED when
// running on the in-memory fallback.
type HealthCheck struct {
	Status    HealthStatus    `json:"status"`
	Database  HealthComponent `json:"database"`
	Version   string          `json:"version,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}
