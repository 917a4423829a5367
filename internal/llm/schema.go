package llm

// BuildPODocumentJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the page-keyed reply we ask the model for. We pass
// it to the model as an output constraint and also use it locally to validate
// the reply before it is persisted.
//
// Pages are keyed "page_<n>". Each recognized field is a value wrapper
// {"value": ..., "coordinates": [...]}; line_items is a list of objects.
func BuildPODocumentJSONSchema() map[string]any {
	valueWrapper := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"value":       map[string]any{},
			"coordinates": map[string]any{"type": "array"},
		},
		"required": []string{"value"},
	}

	lineItem := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"item_description": valueWrapper,
			"timeline":         valueWrapper,
			"rate_type":        valueWrapper,
			"total_price":      valueWrapper,
			"Serial_no":        map[string]any{"type": "string"},
			"item_code":        map[string]any{"type": "string"},
			"quantity":         map[string]any{"type": "string"},
			"UOM":              map[string]any{"type": "string"},
			"unit_price":       map[string]any{"type": "string"},
		},
	}

	page := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"priority_fields": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"po_number":        valueWrapper,
					"po_date":          valueWrapper,
					"due_date":         valueWrapper,
					"customer_details": map[string]any{"type": "object"},
					"vendor_details":   map[string]any{"type": "object"},
					"shipping_details": map[string]any{"type": "object"},
					"order_summary":    map[string]any{"type": "object"},
					"line_items":       map[string]any{"type": "array", "items": lineItem},
				},
			},
		},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"data": map[string]any{
				"type":              "object",
				"patternProperties": map[string]any{`^page_\d+$`: page},
			},
		},
		"required": []string{"data"},
	}
}
