package model

// HealthStatusUp is the only status a liveness probe reports
const HealthStatusUp = "up"

// HealthStatus represents the health check status
type HealthStatus struct {
	Status string `json:"status"`
}

// NewHealthStatus returns the fixed liveness response
func NewHealthStatus() *HealthStatus {
	return &HealthStatus{Status: HealthStatusUp}
}
