package extract

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestProjectLineItemsSkipsBadShape(t *testing.T) {
	doc := Document{
		"page_1": {PriorityFields: map[string]any{
			"line_items": "not a list",
		}},
		"page_2": {PriorityFields: map[string]any{
			"line_items": []any{
				map[string]any{
					"item_description": map[string]any{"value": "Item A"},
					"quantity":         "1",
				},
			},
		}},
	}

	rows := ProjectLineItems(doc)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].ItemDescription != "Item A" {
		t.Errorf("item_description = %q", rows[0].ItemDescription)
	}
	if rows[0].Quantity != "1" {
		t.Errorf("quantity = %q", rows[0].Quantity)
	}
	if rows[0].PageNo != "2" {
		t.Errorf("page_no = %q, want 2", rows[0].PageNo)
	}
}

func TestProjectLineItemsAllPagesInOrder(t *testing.T) {
	item := func(desc string) map[string]any {
		return map[string]any{"item_description": map[string]any{"value": desc}}
	}
	doc := Document{
		"page_1": {PriorityFields: map[string]any{
			"line_items": []any{item("a"), item("b")},
		}},
		"page_2": {PriorityFields: map[string]any{
			"line_items": []any{item("c")},
		}},
	}

	rows := ProjectLineItems(doc)
	var got []string
	for _, r := range rows {
		got = append(got, r.ItemDescription+"@"+r.PageNo)
	}
	want := []string{"a@1", "b@1", "c@2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestProjectLineItemsDefaults(t *testing.T) {
	doc := Document{
		"page_1": {PriorityFields: map[string]any{
			"line_items": []any{map[string]any{}},
		}},
	}
	rows := ProjectLineItems(doc)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	r := rows[0]
	for i, v := range r.Values()[:9] {
		if v != "" {
			t.Errorf("%s = %q, want empty", LineItemFieldNames[i], v)
		}
	}
	if r.PageNo != "1" {
		t.Errorf("page_no = %q", r.PageNo)
	}
}

func TestProjectLineItemsUnwrapAndRawFields(t *testing.T) {
	doc := Document{
		"page_1": {PriorityFields: map[string]any{
			"line_items": []any{
				map[string]any{
					"item_description": map[string]any{"value": "Widget", "coordinates": []any{}},
					"timeline":         "Q3", // bare scalar, used as-is
					"rate_type":        nil,  // null -> ""
					"total_price":      map[string]any{"coordinates": []any{}},
					"Serial_no":        "7",
					"UOM":              "EA",
				},
			},
		}},
	}
	r := ProjectLineItems(doc)[0]
	if r.ItemDescription != "Widget" {
		t.Errorf("item_description = %q", r.ItemDescription)
	}
	if r.Timeline != "Q3" {
		t.Errorf("timeline = %q", r.Timeline)
	}
	if r.RateType != "" {
		t.Errorf("rate_type = %q, want empty", r.RateType)
	}
	// wrapper object without a "value" entry resolves to empty
	if r.TotalPrice != "" {
		t.Errorf("total_price = %q, want empty", r.TotalPrice)
	}
	if r.SerialNo != "7" || r.UOM != "EA" {
		t.Errorf("raw fields = %q/%q", r.SerialNo, r.UOM)
	}
}

func TestProjectLineItemsEmptyAndMissing(t *testing.T) {
	doc := Document{
		"page_1": {PriorityFields: map[string]any{"line_items": []any{}}},
		"page_2": {},
		"page_3": {PriorityFields: map[string]any{}},
	}
	if rows := ProjectLineItems(doc); len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}
}

func TestProjectLineItemsSkipsNonObjectItems(t *testing.T) {
	doc := Document{
		"page_1": {PriorityFields: map[string]any{
			"line_items": []any{
				"stray string",
				map[string]any{"item_code": "OK-1"},
			},
		}},
	}
	rows := ProjectLineItems(doc)
	if len(rows) != 1 || rows[0].ItemCode != "OK-1" {
		t.Fatalf("rows = %#v, want single OK-1 row", rows)
	}
}

func TestProjectLineItemsFalsyScalarsCollapse(t *testing.T) {
	doc := Document{
		"page_1": {PriorityFields: map[string]any{
			"line_items": []any{
				map[string]any{
					"timeline":         json.Number("0"),
					"rate_type":        false,
					"total_price":      []any{},
					"item_description": json.Number("3"), // truthy, kept
				},
			},
		}},
	}
	r := ProjectLineItems(doc)[0]
	if r.Timeline != "" {
		t.Errorf("timeline = %q, want empty for zero", r.Timeline)
	}
	if r.RateType != "" {
		t.Errorf("rate_type = %q, want empty for false", r.RateType)
	}
	if r.TotalPrice != "" {
		t.Errorf("total_price = %q, want empty for empty list", r.TotalPrice)
	}
	if r.ItemDescription != "3" {
		t.Errorf("item_description = %q, want 3", r.ItemDescription)
	}
}

func TestProjectLineItemsWrappedFalsyValueKept(t *testing.T) {
	// the falsy collapse applies to bare scalars only; a wrapped value
	// passes through the {"value": ...} path untouched
	doc := Document{
		"page_1": {PriorityFields: map[string]any{
			"line_items": []any{
				map[string]any{
					"timeline": map[string]any{"value": json.Number("0")},
				},
			},
		}},
	}
	if got := ProjectLineItems(doc)[0].Timeline; got != "0" {
		t.Errorf("wrapped zero = %q, want 0", got)
	}
}
