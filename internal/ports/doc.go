// Package ports defines the boundary interfaces between layers: the
// dispatcher surface consumed by inbound transports, the content-management
// client consumed by domain handlers, and health check contracts.
// Implementations live in internal/app and internal/adapters.
package ports
