package domain

import "time"

// Envelope is the uniform response wrapper for every dispatched action.
// Exactly one of Data or Error is set, keyed by Success. Debug is attached
// only when the request ran with a debug-enabled context.
type Envelope struct {
	Success bool             `json:"success"`
	Data    any              `json:"data,omitempty"`
	Error   *ErrorDescriptor `json:"error,omitempty"`
	Debug   *DebugInfo       `json:"debug,omitempty"`
}

// ErrorDescriptor describes a failed action. ProviderDetail carries the
// underlying provider error text and is populated only for debug-enabled
// requests; in non-debug mode it is stripped entirely.
type ErrorDescriptor struct {
	Kind           Kind   `json:"kind"`
	Message        string `json:"message"`
	ProviderDetail string `json:"provider_detail,omitempty"`
}

// DebugInfo is the per-request diagnostic payload attached to envelopes for
// debug-enabled requests.
type DebugInfo struct {
	Trace       []string         `json:"trace,omitempty"`
	Performance *PerformanceInfo `json:"performance,omitempty"`
	Context     *ContextInfo     `json:"context,omitempty"`
}

// PerformanceInfo reports request timing. Stage durations are keyed by
// pipeline stage name (validation, handler, ...).
type PerformanceInfo struct {
	StartedAt      time.Time          `json:"started_at"`
	EndedAt        time.Time          `json:"ended_at,omitempty"`
	TotalMs        float64            `json:"total_ms"`
	StageDurations map[string]float64 `json:"stage_durations_ms,omitempty"`
}

// ContextInfo identifies the request a debug payload belongs to. Parameters
// are always sanitized before they reach this type; there is no path that
// stores raw secret values.
type ContextInfo struct {
	RequestID       string         `json:"request_id,omitempty"`
	Operation       string         `json:"operation"`
	HandlerName     string         `json:"handler_name"`
	Domain          string         `json:"domain"`
	CreatedAt       time.Time      `json:"created_at"`
	SanitizedParams map[string]any `json:"sanitized_params,omitempty"`
}
