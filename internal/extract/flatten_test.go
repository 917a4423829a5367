package extract

import (
	"reflect"
	"testing"
)

func TestFlattenPriorityFieldsUnwrapConvention(t *testing.T) {
	in := map[string]any{
		"field1": map[string]any{"value": "val1", "coordinates": []any{}},
		"field2": map[string]any{"nested": map[string]any{"value": "val2"}},
		"field3": "simple_val",
	}

	got := FlattenPriorityFields(in, "")
	want := FlatRecord{
		"field1":        "val1",
		"field2.nested": "val2",
		"field3":        "simple_val",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FlattenPriorityFields = %#v, want %#v", got, want)
	}
}

func TestFlattenPriorityFieldsEmptyAndNil(t *testing.T) {
	if got := FlattenPriorityFields(map[string]any{}, ""); len(got) != 0 {
		t.Fatalf("empty input produced %#v", got)
	}
	if got := FlattenPriorityFields(nil, ""); len(got) != 0 {
		t.Fatalf("nil input produced %#v", got)
	}
}

func TestFlattenPriorityFieldsTerminals(t *testing.T) {
	in := map[string]any{
		"list":   []any{"a", "b"},
		"number": float64(7),
		"null":   nil,
		"deep": map[string]any{
			"deeper": map[string]any{
				"leaf": map[string]any{"value": "x"},
			},
		},
	}
	got := FlattenPriorityFields(in, "")

	if !reflect.DeepEqual(got["list"], []any{"a", "b"}) {
		t.Errorf("list carried through wrong: %#v", got["list"])
	}
	if got["number"] != float64(7) {
		t.Errorf("number = %#v", got["number"])
	}
	if v, ok := got["null"]; !ok || v != nil {
		t.Errorf("null terminal = %#v (present=%t)", v, ok)
	}
	if got["deep.deeper.leaf"] != "x" {
		t.Errorf("deep path = %#v", got["deep.deeper.leaf"])
	}
	// No partial paths appear.
	for _, partial := range []string{"deep", "deep.deeper"} {
		if _, ok := got[partial]; ok {
			t.Errorf("partial path %q leaked into output", partial)
		}
	}
}

func TestFlattenPriorityFieldsNullWrappedValue(t *testing.T) {
	in := map[string]any{"f": map[string]any{"value": nil}}
	got := FlattenPriorityFields(in, "")
	if got["f"] != "" {
		t.Fatalf("null wrapped value = %#v, want \"\"", got["f"])
	}
}

func TestFlattenValuesOnlyParentPath(t *testing.T) {
	in := map[string]any{
		"data": map[string]any{
			"items": []any{
				map[string]any{"name": map[string]any{"value": "Item1"}},
				map[string]any{"name": map[string]any{"value": "Item2"}},
			},
		},
	}
	acc := FlatRecord{}
	FlattenValuesOnly(in, "", acc)

	want := FlatRecord{
		"data.items[0].name": "Item1",
		"data.items[1].name": "Item2",
	}
	if !reflect.DeepEqual(acc, want) {
		t.Fatalf("FlattenValuesOnly = %#v, want %#v", acc, want)
	}
}

func TestFlattenValuesOnlyIgnoresTerminals(t *testing.T) {
	in := map[string]any{
		"plain":  "scalar",
		"coords": []any{float64(1), float64(2)},
		"field":  map[string]any{"value": "v", "coordinates": []any{float64(3)}},
	}
	acc := FlatRecord{}
	FlattenValuesOnly(in, "", acc)

	if len(acc) != 1 || acc["field"] != "v" {
		t.Fatalf("FlattenValuesOnly = %#v, want only field=v", acc)
	}
}

func TestFlattenIdempotent(t *testing.T) {
	in := map[string]any{
		"po_number": map[string]any{"value": "PO-1"},
		"nested":    map[string]any{"inner": map[string]any{"value": "x"}},
	}
	first := FlattenPriorityFields(in, "")
	second := FlattenPriorityFields(in, "")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("flatten not idempotent: %#v vs %#v", first, second)
	}
	// Input must not be mutated.
	if _, ok := in["nested"].(map[string]any)["inner"]; !ok {
		t.Fatal("input structure mutated by flatten")
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"s", "s"},
		{float64(100), "100"},
		{float64(1.5), "1.5"},
		{true, "true"},
		{[]any{"a", "b"}, `["a","b"]`},
	}
	for _, tc := range cases {
		if got := Stringify(tc.in); got != tc.want {
			t.Errorf("Stringify(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
