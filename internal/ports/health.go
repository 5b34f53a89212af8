package ports

import "context"

// HealthChecker is implemented by components whose availability affects
// service readiness (e.g. the content API client).
type HealthChecker interface {
	// Name identifies the component in readiness responses.
	Name() string

	// HealthCheck returns nil when healthy, or a descriptive error.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry tracks health checkers registered during startup and is
// queried by the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)
	CheckAll(ctx context.Context) map[string]error
}
