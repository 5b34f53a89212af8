// Package debug provides the per-request diagnostic context: opt-in trace
// collection, stage timing, and parameter sanitization.
//
// A Context is created fresh for each dispatched action and owned
// exclusively by that request's goroutine; nothing here shares mutable
// state across requests, so no synchronization is needed.
//
//	dc := debug.New("get", "records.get", "records", flags, params, defaults)
//	dc.AddTrace("validation passed")
//	dc.RecordStage("handler", elapsed)
//	info := dc.Snapshot()
package debug

import (
	"fmt"
	"time"

	"github.com/cmsbridge/cmsbridge/internal/domain"
)

// Defaults holds the process-wide diagnostic defaults loaded from
// configuration. A per-request flag always overrides these, never the
// reverse.
type Defaults struct {
	Enabled     bool
	Performance bool
}

// Flags carries the caller's per-request overrides. Nil means "not
// provided": fall back to the process default.
type Flags struct {
	Debug       *bool
	Performance *bool
}

// Context is the request-scoped diagnostic state. It is created per request
// and must not be shared between concurrent requests.
type Context struct {
	requestID   string
	operation   string
	handlerName string
	domainName  string
	createdAt   time.Time

	sanitized map[string]any
	trace     []string

	perfEnabled bool
	startedAt   time.Time
	endedAt     time.Time
	stages      map[string]float64

	enabled bool
}

// New creates a Context for one request. Parameters are routed through
// Sanitize before being stored, on every path, so the context never holds a
// raw secret value even transiently.
func New(operation, handlerName, domainName string, flags Flags, params map[string]any, defaults Defaults) *Context {
	enabled := defaults.Enabled
	if flags.Debug != nil {
		enabled = *flags.Debug
	}
	perf := defaults.Performance
	if flags.Performance != nil {
		perf = *flags.Performance
	}

	c := &Context{
		operation:   operation,
		handlerName: handlerName,
		domainName:  domainName,
		createdAt:   time.Now(),
		enabled:     enabled,
		perfEnabled: enabled && perf,
	}

	if enabled {
		if m, ok := Sanitize(params).(map[string]any); ok {
			c.sanitized = m
		}
	}
	if c.perfEnabled {
		c.startedAt = c.createdAt
		c.stages = make(map[string]float64)
	}

	return c
}

// Enabled reports whether diagnostics are collected for this request.
func (c *Context) Enabled() bool {
	return c != nil && c.enabled
}

// SetRequestID attaches a transport-provided request ID, when one exists.
func (c *Context) SetRequestID(id string) {
	if c != nil {
		c.requestID = id
	}
}

// AddTrace appends a timestamped trace entry of the form "+{elapsed}ms
// {message}", where elapsed is measured from context creation. Entries are
// append-only and therefore time-ordered. No-op unless debug is enabled.
func (c *Context) AddTrace(message string) {
	if !c.Enabled() {
		return
	}
	elapsed := time.Since(c.createdAt).Milliseconds()
	c.trace = append(c.trace, fmt.Sprintf("+%dms %s", elapsed, message))
}

// AddTracef is AddTrace with fmt.Sprintf formatting. Arguments are not
// evaluated into the trace unless debug is enabled.
func (c *Context) AddTracef(format string, args ...any) {
	if !c.Enabled() {
		return
	}
	c.AddTrace(fmt.Sprintf(format, args...))
}

// RecordStage records the duration of a named pipeline stage and refreshes
// the total elapsed time. No-op unless performance tracking is enabled.
func (c *Context) RecordStage(stage string, d time.Duration) {
	if c == nil || !c.perfEnabled {
		return
	}
	c.stages[stage] += float64(d.Milliseconds())
	c.endedAt = time.Now()
}

// Finish stamps the end of the request. Idempotent.
func (c *Context) Finish() {
	if c == nil || !c.perfEnabled {
		return
	}
	c.endedAt = time.Now()
}

// Snapshot renders the debug payload for inclusion in a response envelope.
// Returns nil when debug is disabled, so nothing leaks into non-debug
// responses.
func (c *Context) Snapshot() *domain.DebugInfo {
	if !c.Enabled() {
		return nil
	}

	info := &domain.DebugInfo{
		Trace: c.trace,
		Context: &domain.ContextInfo{
			RequestID:       c.requestID,
			Operation:       c.operation,
			HandlerName:     c.handlerName,
			Domain:          c.domainName,
			CreatedAt:       c.createdAt,
			SanitizedParams: c.sanitized,
		},
	}

	if c.perfEnabled {
		end := c.endedAt
		if end.IsZero() {
			end = time.Now()
		}
		info.Performance = &domain.PerformanceInfo{
			StartedAt:      c.startedAt,
			EndedAt:        end,
			TotalMs:        float64(end.Sub(c.startedAt).Milliseconds()),
			StageDurations: c.stages,
		}
	}

	return info
}
