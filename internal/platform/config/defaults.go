package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "30s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"debug.enabled":     false,
		"debug.performance": true,

		"provider.base_url":                        "http://localhost:8081",
		"provider.api_token":                       "",
		"provider.timeout":                         "30s",
		"provider.retry.max_attempts":              defaultRetryMaxAttempts,
		"provider.retry.initial_interval":          "100ms",
		"provider.retry.max_interval":              "10s",
		"provider.retry.multiplier":                defaultRetryMultiplier,
		"provider.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"provider.circuit_breaker.timeout":         "30s",
		"provider.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"provider.rate_limit.requests_per_second":  0.0,
		"provider.rate_limit.burst_size":           1,

		"mcp.enabled": false,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "cmsbridge",
	}
}
