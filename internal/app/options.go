package app

// Reserved argument keys. These are pipeline options, not handler inputs:
// they are lifted out of the raw argument bag before schema validation so
// schemas only ever describe domain arguments.
const (
	optDebug            = "debug"
	optPerformance      = "performance"
	optAllLocales       = "all_locales"
	optOnlyConfirmation = "return_only_confirmation"
	optOnlyIDs          = "return_only_ids"
	optConfirmation     = "confirmation"
)

// callOptions holds the per-request pipeline options extracted from the
// argument bag. Debug and Performance are tri-state: nil means the caller
// did not say, so the process-wide default applies.
type callOptions struct {
	debugFlag       *bool
	performanceFlag *bool
	allLocales      bool
	onlyConfirm     bool
	onlyIDs         bool
	confirmed       bool
}

// extractOptions splits rawArgs into pipeline options and a copy of the
// remaining domain arguments. rawArgs is not mutated.
func extractOptions(rawArgs map[string]any) (callOptions, map[string]any) {
	var opts callOptions
	args := make(map[string]any, len(rawArgs))

	for k, v := range rawArgs {
		switch k {
		case optDebug:
			opts.debugFlag = boolArg(v)
		case optPerformance:
			opts.performanceFlag = boolArg(v)
		case optAllLocales:
			opts.allLocales = isTrue(v)
		case optOnlyConfirmation:
			opts.onlyConfirm = isTrue(v)
		case optOnlyIDs:
			opts.onlyIDs = isTrue(v)
		case optConfirmation:
			opts.confirmed = isTrue(v)
		default:
			args[k] = v
		}
	}

	return opts, args
}

// boolArg coerces a JSON-ish value into a tri-state bool. Unrecognized
// values count as "not provided" rather than false, so a typo cannot
// silently disable a process-wide default.
func boolArg(v any) *bool {
	switch t := v.(type) {
	case bool:
		return &t
	case string:
		switch t {
		case "true":
			b := true
			return &b
		case "false":
			b := false
			return &b
		}
	}
	return nil
}

func isTrue(v any) bool {
	b := boolArg(v)
	return b != nil && *b
}
