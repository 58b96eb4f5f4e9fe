// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Repository ports are implemented by persistence adapters and called by services.
// Client ports are implemented by outbound adapters and called by the client application.
package ports
