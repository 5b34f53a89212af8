// Package locale collapses multi-locale content trees to a single dominant
// locale. Provider payloads may contain "locale bundles" (maps whose every
// key is a locale code) nested anywhere inside an otherwise ordinary JSON
// tree; shipping every locale inflates responses for callers that almost
// always want one.
package locale

import (
	"regexp"
	"sort"
)

// codePattern matches locale codes like "en", "pt", "fil", "en-US", and
// "pt_br". The base subtag is lowercase; the region part accepts either
// case, as providers are inconsistent about it.
var codePattern = regexp.MustCompile(`^[a-z]{2,3}(?:[-_][A-Za-z0-9]{2,4})?$`)

// IsCode reports whether s is shaped like a locale code.
func IsCode(s string) bool {
	return codePattern.MatchString(s)
}

// Resolve returns a structural copy of tree in which every locale bundle is
// replaced by the value of the dominant locale: the locale whose
// non-empty subtrees occur most often across the whole tree, with ties
// broken by walk encounter order. When the tree contains no bundle the
// input is returned unchanged, without copying. Resolve never mutates its
// input and is idempotent, since its output contains no bundles.
func Resolve(tree any) any {
	counts := make(map[string]int)
	var order []string
	countBundles(tree, counts, &order)

	if len(order) == 0 {
		return tree
	}

	winner := order[0]
	for _, code := range order {
		if counts[code] > counts[winner] {
			winner = code
		}
	}

	return rebuild(tree, winner, counts)
}

// countBundles is the first pass: for every bundle, each locale with a
// non-deeply-empty subtree scores one point, then the subtree is walked for
// nested bundles. Go maps have no insertion order, so keys are visited
// sorted to keep the encounter order (and therefore tie-breaks)
// deterministic.
func countBundles(v any, counts map[string]int, order *[]string) {
	switch t := v.(type) {
	case map[string]any:
		if isBundle(t) {
			for _, code := range sortedKeys(t) {
				sub := t[code]
				if !deeplyEmpty(sub) {
					if _, seen := counts[code]; !seen {
						*order = append(*order, code)
					}
					counts[code]++
				}
				countBundles(sub, counts, order)
			}
			return
		}
		for _, k := range sortedKeys(t) {
			countBundles(t[k], counts, order)
		}
	case []any:
		for _, e := range t {
			countBundles(e, counts, order)
		}
	}
}

// rebuild is the second pass: a structural copy in which every bundle
// collapses to its winning-locale value, itself recursively rebuilt. A
// bundle that lacks the winner falls back to its best-scoring locale so
// content is preserved rather than dropped.
func rebuild(v any, winner string, counts map[string]int) any {
	switch t := v.(type) {
	case map[string]any:
		if isBundle(t) {
			code := winner
			if _, ok := t[code]; !ok {
				code = bestLocal(t, counts)
			}
			return rebuild(t[code], winner, counts)
		}
		out := make(map[string]any, len(t))
		for k, sub := range t {
			out[k] = rebuild(sub, winner, counts)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = rebuild(e, winner, counts)
		}
		return out
	default:
		return v
	}
}

// bestLocal picks the highest globally-scoring locale present in a single
// bundle, for bundles that do not carry the overall winner.
func bestLocal(bundle map[string]any, counts map[string]int) string {
	keys := sortedKeys(bundle)
	best := keys[0]
	for _, k := range keys[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return best
}

// isBundle reports whether m is a locale bundle: non-empty, with every key
// shaped like a locale code.
func isBundle(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for k := range m {
		if !IsCode(k) {
			return false
		}
	}
	return true
}

// deeplyEmpty reports whether v carries no content: nil, an empty string,
// or a list/map whose elements are all deeply empty. Numbers and booleans
// are never empty.
func deeplyEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		for _, e := range t {
			if !deeplyEmpty(e) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, e := range t {
			if !deeplyEmpty(e) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
