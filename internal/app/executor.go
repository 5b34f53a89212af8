package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/cmsbridge/cmsbridge/internal/app/locale"
	"github.com/cmsbridge/cmsbridge/internal/domain"

	debugctx "github.com/cmsbridge/cmsbridge/internal/app/debug"
)

// execute is the handler execution adapter: it enforces the destructive
// action gate, invokes the external handler, and normalizes its outcome
// into an envelope according to the action's shape. Errors and panics are
// intercepted here, exactly once; nothing raw reaches the transport.
func (d *Dispatcher) execute(ctx context.Context, act *action, opts callOptions, args map[string]any, dc *debugctx.Context) (env *domain.Envelope) {
	defer func() {
		if v := recover(); v != nil {
			d.logger.ErrorContext(ctx, "handler panicked",
				slog.String("operation", act.operation()),
				slog.String("panic", fmt.Sprint(v)),
				slog.String("stack", string(debug.Stack())),
			)
			dc.AddTrace("handler panicked")
			env = BuildErrorEnvelope(domain.KindUnknown,
				fmt.Sprintf("%q failed with an internal error", act.operation()),
				dc, fmt.Sprintf("panic: %v", v))
		}
	}()

	if act.meta.Shape == ShapeDelete && !opts.confirmed {
		dc.AddTrace("rejected: missing delete confirmation")
		msg := fmt.Sprintf(
			"%q is destructive; pass \"confirmation\": true to proceed",
			act.operation(),
		)
		return BuildErrorEnvelope(domain.KindValidation, msg, dc, "")
	}

	dc.AddTrace("invoking handler")
	handlerStart := time.Now()
	result, err := act.handler(ctx, args, dc)
	dc.RecordStage("handler", time.Since(handlerStart))

	if err != nil {
		kind := domain.Classify(err)
		dc.AddTracef("handler failed: %s", kind)
		d.logger.WarnContext(ctx, "handler failed",
			slog.String("operation", act.operation()),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		return BuildErrorEnvelope(kind, err.Error(), dc, providerDetail(err))
	}
	dc.AddTrace("handler completed")

	if result == nil {
		return BuildSuccessEnvelope(act.operation()+" completed", dc)
	}
	// Legacy handlers may hand back a pre-built envelope; pass it through.
	if result.Envelope != nil {
		return result.Envelope
	}

	return d.shapeResult(act, opts, result, dc)
}

// shapeResult applies the per-shape response conventions.
func (d *Dispatcher) shapeResult(act *action, opts callOptions, result *HandlerResult, dc *debugctx.Context) *domain.Envelope {
	switch act.meta.Shape {
	case ShapeGet:
		data := result.Entity
		if !opts.allLocales {
			data = locale.Resolve(data)
			dc.AddTrace("resolved dominant locale")
		}
		return BuildSuccessEnvelope(data, dc)

	case ShapeList:
		items := result.Items
		if opts.onlyIDs {
			items = stripToIDs(items)
			dc.AddTracef("stripped %d items to identifiers", len(items))
		}
		data := map[string]any{
			"items": items,
			"count": len(items),
		}
		// Under pagination the page is smaller than the collection; surface
		// the provider-reported size so callers can page without guessing.
		if result.Total > len(items) {
			data["total"] = result.Total
		}
		return BuildSuccessEnvelope(data, dc)

	case ShapeCreate, ShapeUpdate, ShapeDuplicate:
		if opts.onlyConfirm {
			return BuildSuccessEnvelope(confirmation(act, result), dc)
		}
		return BuildSuccessEnvelope(result.Entity, dc)

	case ShapeDelete:
		if result.Confirmation != "" {
			return BuildSuccessEnvelope(result.Confirmation, dc)
		}
		if result.Entity != nil {
			return BuildSuccessEnvelope(result.Entity, dc)
		}
		return BuildSuccessEnvelope(confirmation(act, result), dc)

	default:
		return BuildSuccessEnvelope(result.Entity, dc)
	}
}

// confirmation produces the short success string used when the caller opted
// out of full payloads, or when a delete returns no entity.
func confirmation(act *action, result *HandlerResult) string {
	if result.Confirmation != "" {
		return result.Confirmation
	}
	if id := entityID(result.Entity); id != "" {
		return fmt.Sprintf("%s succeeded (id: %s)", act.operation(), id)
	}
	return act.operation() + " succeeded"
}

// stripToIDs reduces full objects to their identifiers. Items without a
// recognizable id are kept whole rather than dropped.
func stripToIDs(items []any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		if id := entityID(item); id != "" {
			out[i] = id
		} else {
			out[i] = item
		}
	}
	return out
}

// entityID extracts a string or numeric "id" field from a map-shaped
// entity.
func entityID(entity any) string {
	m, ok := entity.(map[string]any)
	if !ok {
		return ""
	}
	switch id := m["id"].(type) {
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return ""
	}
}

// providerDetail surfaces the provider's extended error text, shown to
// debug-enabled callers only.
func providerDetail(err error) string {
	var pe *domain.ProviderError
	if errors.As(err, &pe) && pe.Detail != "" {
		return pe.Detail
	}
	return err.Error()
}
