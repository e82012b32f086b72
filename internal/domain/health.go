package domain

// HealthStatus classifies a diagnostic check result.
type HealthStatus string

const (
	HealthOK   HealthStatus = "ok"
	HealthWarn HealthStatus = "warn"
	HealthFail HealthStatus = "fail"
)

// HealthCheck is a single doctor check.
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Details string
}

// HealthReport aggregates doctor checks.
type HealthReport struct {
	Checks []HealthCheck
}

// Healthy reports whether no check failed outright.
func (r HealthReport) Healthy() bool {
	for _, check := range r.Checks {
		if check.Status == HealthFail {
			return false
		}
	}
	return true
}
