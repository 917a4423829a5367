package extract

import (
	"encoding/json"
	"log/slog"
)

// LineItemRecord is the fixed per-item projection: 10 fields, "" defaults.
// Serial_no and UOM keep their model-reply casing; the warehouse and the CSV
// consumers key on these exact names.
type LineItemRecord struct {
	ItemDescription string `json:"item_description"`
	Timeline        string `json:"timeline"`
	RateType        string `json:"rate_type"`
	TotalPrice      string `json:"total_price"`
	SerialNo        string `json:"Serial_no"`
	ItemCode        string `json:"item_code"`
	Quantity        string `json:"quantity"`
	UOM             string `json:"UOM"`
	UnitPrice       string `json:"unit_price"`
	PageNo          string `json:"page_no"`
}

// LineItemFieldNames is the canonical column order for line-item exports.
var LineItemFieldNames = []string{
	"item_description", "timeline", "rate_type", "total_price",
	"Serial_no", "item_code", "quantity", "UOM", "unit_price", "page_no",
}

// Values returns the field values in LineItemFieldNames order.
func (li LineItemRecord) Values() []string {
	return []string{
		li.ItemDescription, li.Timeline, li.RateType, li.TotalPrice,
		li.SerialNo, li.ItemCode, li.Quantity, li.UOM, li.UnitPrice, li.PageNo,
	}
}

// ProjectLineItems scans every page of the Document (sorted page-key order,
// then item order within a page) and emits one record per line item. Pages
// whose line_items block is missing, empty, or not a list contribute nothing;
// a wrong-shaped block is skipped rather than failing the document.
func ProjectLineItems(doc Document) []LineItemRecord {
	var rows []LineItemRecord
	for _, pageKey := range doc.SortedPageKeys() {
		pageNo := PageNumber(pageKey)
		pf := doc[pageKey].PriorityFields

		raw, ok := pf["line_items"]
		if !ok || raw == nil {
			slog.Debug("no line_items on page", "page", pageKey)
			continue
		}
		items, ok := raw.([]any)
		if !ok {
			slog.Warn("line_items is not a list, skipping page", "page", pageKey)
			continue
		}
		if len(items) == 0 {
			slog.Debug("empty line_items on page", "page", pageKey)
			continue
		}

		for _, el := range items {
			item, ok := el.(map[string]any)
			if !ok {
				slog.Warn("line item is not an object, skipping", "page", pageKey)
				continue
			}
			rows = append(rows, LineItemRecord{
				ItemDescription: unwrapValue(item["item_description"]),
				Timeline:        unwrapValue(item["timeline"]),
				RateType:        unwrapValue(item["rate_type"]),
				TotalPrice:      unwrapValue(item["total_price"]),
				SerialNo:        rawString(item["Serial_no"]),
				ItemCode:        rawString(item["item_code"]),
				Quantity:        rawString(item["quantity"]),
				UOM:             rawString(item["UOM"]),
				UnitPrice:       rawString(item["unit_price"]),
				PageNo:          pageNo,
			})
		}
	}
	return rows
}

// unwrapValue applies the {"value": ...} convention to one field: objects
// yield their "value" entry ("" when absent). Bare scalars collapse to ""
// when falsy (null, false, zero, empty string, empty list) and are kept
// verbatim otherwise.
func unwrapValue(v any) string {
	if m, ok := v.(map[string]any); ok {
		inner, present := m["value"]
		if !present {
			return ""
		}
		return Stringify(inner)
	}
	if isFalsy(v) {
		return ""
	}
	return Stringify(v)
}

func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	case float64:
		return t == 0
	case []any:
		return len(t) == 0
	}
	return false
}

// rawString takes a field without unwrapping, defaulting absent/null to "".
func rawString(v any) string {
	return Stringify(v)
}
