package ports

import "context"

// HealthChecker is one dependency a readiness check waits on. The server
// registers the database; "todo ping" registers the todo API client.
type HealthChecker interface {
	// Name keys the checker in the readiness body, e.g. "database".
	Name() string

	// HealthCheck returns nil when the dependency answers before ctx ends.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered checker, for GET /health/ready on the
// server and for "todo ping" in the CLI.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll maps checker names to their errors; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
