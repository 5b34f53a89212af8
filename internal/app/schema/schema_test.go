package schema

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
)

func testSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"item_id"},
		Properties: map[string]*jsonschema.Schema{
			"item_id": {Type: "string"},
			"page_limit": {
				Type:    "integer",
				Default: json.RawMessage(`30`),
			},
			"status": {
				Type: "string",
				Enum: []any{"draft", "published"},
			},
		},
	}
}

func mustEngine(t *testing.T, s *jsonschema.Schema) *Engine {
	t.Helper()
	e, err := New(s)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

func TestNew_NilSchema(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); err == nil {
		t.Fatal("New(nil) error = nil")
	}
}

func TestValidate_Success(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, testSchema())
	got, verr := e.Validate(map[string]any{"item_id": "abc"})
	if verr != nil {
		t.Fatalf("Validate() error = %v", verr)
	}
	if got["item_id"] != "abc" {
		t.Errorf("item_id = %v", got["item_id"])
	}
}

func TestValidate_AppliesDefaults(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, testSchema())
	got, verr := e.Validate(map[string]any{"item_id": "abc"})
	if verr != nil {
		t.Fatalf("Validate() error = %v", verr)
	}
	if got["page_limit"] != float64(30) {
		t.Errorf("page_limit = %v (%T), want 30", got["page_limit"], got["page_limit"])
	}
}

func TestValidate_DefaultDoesNotOverrideProvided(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, testSchema())
	got, verr := e.Validate(map[string]any{"item_id": "abc", "page_limit": float64(5)})
	if verr != nil {
		t.Fatalf("Validate() error = %v", verr)
	}
	if got["page_limit"] != float64(5) {
		t.Errorf("page_limit = %v, want caller's 5", got["page_limit"])
	}
}

func TestValidate_MissingRequiredField(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, testSchema())
	_, verr := e.Validate(map[string]any{})
	if verr == nil {
		t.Fatal("Validate() error = nil, want required-field failure")
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Path != "item_id" {
		t.Errorf("Fields = %+v, want one failure at item_id", verr.Fields)
	}
}

func TestValidate_ReportsEveryOffendingField(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, testSchema())
	_, verr := e.Validate(map[string]any{
		"page_limit": "not-a-number",
		"status":     "bogus",
	})
	if verr == nil {
		t.Fatal("Validate() error = nil")
	}

	paths := make(map[string]bool)
	for _, f := range verr.Fields {
		paths[f.Path] = true
	}
	for _, want := range []string{"item_id", "page_limit", "status"} {
		if !paths[want] {
			t.Errorf("missing failure for %q in %+v", want, verr.Fields)
		}
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, testSchema())
	in := map[string]any{"item_id": "abc"}
	snapshot := map[string]any{"item_id": "abc"}

	out, verr := e.Validate(in)
	if verr != nil {
		t.Fatalf("Validate() error = %v", verr)
	}

	if !reflect.DeepEqual(in, snapshot) {
		t.Errorf("input mutated: %v", in)
	}
	// Defaults land on the returned copy, never the caller's map.
	if _, ok := in["page_limit"]; ok {
		t.Error("default applied to the input map")
	}
	if _, ok := out["page_limit"]; !ok {
		t.Error("default missing from the returned map")
	}
}

func TestValidate_DefaultsDecodedFresh(t *testing.T) {
	t.Parallel()

	s := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"filters": {
				Type:    "object",
				Default: json.RawMessage(`{"status":"draft"}`),
			},
		},
	}
	e := mustEngine(t, s)

	first, verr := e.Validate(map[string]any{})
	if verr != nil {
		t.Fatalf("Validate() error = %v", verr)
	}
	first["filters"].(map[string]any)["status"] = "tampered"

	second, verr := e.Validate(map[string]any{})
	if verr != nil {
		t.Fatalf("Validate() error = %v", verr)
	}
	if second["filters"].(map[string]any)["status"] != "draft" {
		t.Error("default value shared between validations")
	}
}

func TestValidate_DefaultNeverSubstitutesRequiredField(t *testing.T) {
	t.Parallel()

	s := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"item_id"},
		Properties: map[string]*jsonschema.Schema{
			"item_id": {
				Type:    "string",
				Default: json.RawMessage(`"itm_default"`),
			},
		},
	}
	e := mustEngine(t, s)

	_, verr := e.Validate(map[string]any{})
	if verr == nil {
		t.Fatal("Validate() error = nil, want required-field failure")
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Path != "item_id" {
		t.Errorf("Fields = %+v, want one failure at item_id", verr.Fields)
	}
}

func TestSchema_ReturnsRoot(t *testing.T) {
	t.Parallel()

	s := testSchema()
	e := mustEngine(t, s)
	if e.Schema() != s {
		t.Error("Schema() did not return the registered schema")
	}
}
