package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"go.opentelemetry.io/otel/metric"

	"github.com/cmsbridge/cmsbridge/internal/app/debug"
	"github.com/cmsbridge/cmsbridge/internal/app/schema"
	"github.com/cmsbridge/cmsbridge/internal/domain"
	"github.com/cmsbridge/cmsbridge/internal/platform/requestctx"
	"github.com/cmsbridge/cmsbridge/internal/platform/telemetry"
	"github.com/cmsbridge/cmsbridge/internal/ports"
)

// Compile-time check that Dispatcher implements ports.Dispatcher.
var _ ports.Dispatcher = (*Dispatcher)(nil)

// minMutatingArgs is the under-specified-input threshold for create and
// update actions. A mutating call with fewer domain arguments than this is
// rejected with guidance before the handler runs, because an automated
// caller that has not fetched the parameter schema is about to perform a
// malformed side effect.
const minMutatingArgs = 2

// Dispatcher is the action registry and router. Register all actions during
// startup, then treat the table as immutable: Dispatch performs lock-free
// reads and is safe for any number of concurrent callers.
type Dispatcher struct {
	actions  map[string]*action
	byDomain map[string][]string
	defaults debug.Defaults
	logger   *slog.Logger
	metrics  *telemetry.Metrics
}

// NewDispatcher creates an empty registry. metrics may be nil, in which
// case dispatch outcomes are not recorded.
func NewDispatcher(defaults debug.Defaults, metrics *telemetry.Metrics, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		actions:  make(map[string]*action),
		byDomain: make(map[string][]string),
		defaults: defaults,
		logger:   logger,
		metrics:  metrics,
	}
}

// Register adds an action under (domainName, name). Duplicate registration
// is a startup-time fatal error surfaced as domain.ErrDuplicateAction.
// Register is not safe for concurrent use; call it from the startup
// goroutine only.
func (d *Dispatcher) Register(domainName, name string, sch *jsonschema.Schema, h Handler, meta Meta) error {
	if domainName == "" || name == "" {
		return fmt.Errorf("register: domain and action name must not be empty")
	}
	if h == nil {
		return fmt.Errorf("register %s.%s: handler must not be nil", domainName, name)
	}

	key := domainName + "." + name
	if _, exists := d.actions[key]; exists {
		return fmt.Errorf("register %s: %w", key, domain.ErrDuplicateAction)
	}

	engine, err := schema.New(sch)
	if err != nil {
		return fmt.Errorf("register %s: %w", key, err)
	}

	d.actions[key] = &action{
		domainName: domainName,
		name:       name,
		meta:       meta,
		engine:     engine,
		handler:    h,
	}
	d.byDomain[domainName] = append(d.byDomain[domainName], name)
	sort.Strings(d.byDomain[domainName])

	return nil
}

// MustRegister is Register for startup wiring; it panics on error.
func (d *Dispatcher) MustRegister(domainName, name string, sch *jsonschema.Schema, h Handler, meta Meta) {
	if err := d.Register(domainName, name, sch, h, meta); err != nil {
		panic(err)
	}
}

// Domains returns all registered domain names, sorted.
func (d *Dispatcher) Domains() []string {
	names := make([]string, 0, len(d.byDomain))
	for name := range d.byDomain {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Actions returns the catalog for one domain, sorted by action name.
func (d *Dispatcher) Actions(domainName string) []ports.ActionInfo {
	names := d.byDomain[domainName]
	infos := make([]ports.ActionInfo, 0, len(names))
	for _, name := range names {
		act := d.actions[domainName+"."+name]
		infos = append(infos, ports.ActionInfo{
			Domain:      act.domainName,
			Name:        act.name,
			Description: act.meta.Description,
			ReadOnly:    act.meta.Shape.readOnly(),
			Schema:      act.engine.Schema(),
		})
	}
	return infos
}

// Dispatch runs one action end-to-end: lookup, option extraction, schema
// validation, handler execution, and response shaping. It always returns an
// envelope; no handler error or panic escapes this boundary.
func (d *Dispatcher) Dispatch(ctx context.Context, domainName, actionName string, rawArgs map[string]any) *domain.Envelope {
	start := time.Now()

	act, ok := d.actions[domainName+"."+actionName]
	if !ok {
		return d.unknownActionEnvelope(domainName, actionName)
	}

	opts, args := extractOptions(rawArgs)

	dc := debug.New(
		act.name,
		act.operation(),
		act.domainName,
		debug.Flags{Debug: opts.debugFlag, Performance: opts.performanceFlag},
		args,
		d.defaults,
	)
	if id := requestctx.RequestID(ctx); id != "" {
		dc.SetRequestID(id)
	}
	dc.AddTracef("dispatching %s", act.operation())

	env := d.process(ctx, act, opts, args, dc)

	d.recordDispatch(ctx, act, env, time.Since(start))
	return env
}

// process runs the pipeline stages after a successful action lookup.
func (d *Dispatcher) process(ctx context.Context, act *action, opts callOptions, args map[string]any, dc *debug.Context) *domain.Envelope {
	if env := d.checkUnderSpecified(act, args, dc); env != nil {
		return env
	}

	validationStart := time.Now()
	validated, verr := act.engine.Validate(args)
	dc.RecordStage("validation", time.Since(validationStart))

	if verr != nil {
		dc.AddTracef("validation failed on %d fields", len(verr.Fields))
		return BuildErrorEnvelope(domain.KindValidation, verr.Error(), dc, fieldErrorDetail(verr))
	}
	dc.AddTrace("arguments validated")

	return d.execute(ctx, act, opts, validated, dc)
}

// checkUnderSpecified applies the fail-fast heuristic for callers that have
// clearly not consulted the parameter schema. Returns nil when the input
// looks deliberate enough to validate properly.
func (d *Dispatcher) checkUnderSpecified(act *action, args map[string]any, dc *debug.Context) *domain.Envelope {
	if len(args) == 0 {
		dc.AddTrace("rejected: empty argument bag")
		msg := fmt.Sprintf(
			"no arguments provided for %q; fetch the action's parameter schema from the catalog and retry with the required fields",
			act.operation(),
		)
		return BuildErrorEnvelope(domain.KindValidation, msg, dc, "")
	}

	mutating := act.meta.Shape == ShapeCreate || act.meta.Shape == ShapeUpdate
	if mutating && len(args) < minMutatingArgs {
		dc.AddTracef("rejected: %d argument(s) for mutating action", len(args))
		msg := fmt.Sprintf(
			"%q is a mutating action but only %d argument was provided; fetch the parameter schema first and supply the full argument set to avoid a malformed write",
			act.operation(), len(args),
		)
		return BuildErrorEnvelope(domain.KindValidation, msg, dc, "")
	}

	return nil
}

// unknownActionEnvelope builds the usage error for an unregistered action,
// listing the valid alternatives so an automated caller can self-correct.
func (d *Dispatcher) unknownActionEnvelope(domainName, actionName string) *domain.Envelope {
	names, knownDomain := d.byDomain[domainName]
	if !knownDomain {
		msg := fmt.Sprintf("unknown domain %q; registered domains: %s",
			domainName, strings.Join(d.Domains(), ", "))
		return BuildErrorEnvelope(domain.KindUnknown, msg, nil, "")
	}

	msg := fmt.Sprintf("unknown action %q in domain %q; valid actions: %s",
		actionName, domainName, strings.Join(names, ", "))
	return BuildErrorEnvelope(domain.KindUnknown, msg, nil, "")
}

// recordDispatch emits dispatch metrics and a completion log line.
func (d *Dispatcher) recordDispatch(ctx context.Context, act *action, env *domain.Envelope, elapsed time.Duration) {
	result := "success"
	if !env.Success {
		result = string(env.Error.Kind)
	}

	d.logger.InfoContext(ctx, "action dispatched",
		slog.String("operation", act.operation()),
		slog.String("result", result),
		slog.Duration("duration", elapsed),
	)

	if d.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		telemetry.AttrActionDomain.String(act.domainName),
		telemetry.AttrAction.String(act.name),
		telemetry.AttrResult.String(result),
	)
	d.metrics.DispatchDuration.Record(ctx, elapsed.Seconds(), attrs)
	d.metrics.DispatchTotal.Add(ctx, 1, attrs)
}
