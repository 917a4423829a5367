package extract

import "testing"

func TestProjectHeaderEndToEnd(t *testing.T) {
	doc := Document{
		"page_1": {PriorityFields: map[string]any{
			"po_number": map[string]any{"value": "PO-001"},
			"customer_details": map[string]any{
				"buyer_info": map[string]any{"value": "Buyer A"},
			},
			"order_summary": map[string]any{
				"total_amount": map[string]any{"value": "100.00"},
			},
		}},
	}

	h := ProjectHeader(doc)
	if h.PONumber != "PO-001" {
		t.Errorf("po_number = %q", h.PONumber)
	}
	if h.BuyerInfo != "Buyer A" {
		t.Errorf("buyer_info = %q", h.BuyerInfo)
	}
	if h.TotalAmount != "100.00" {
		t.Errorf("total_amount = %q", h.TotalAmount)
	}
	for i, v := range []string{
		h.PODate, h.DueDate, h.BillTo, h.VendorID, h.Name, h.Address,
		h.Contact, h.ShipTo, h.ShipFrom, h.ShipDate, h.ShipVia,
		h.ShippingInstruction,
	} {
		if v != "" {
			t.Errorf("field %d = %q, want empty", i, v)
		}
	}
}

func TestProjectHeaderZeroPages(t *testing.T) {
	h := ProjectHeader(Document{})
	if len(h.Values()) != 15 {
		t.Fatalf("header has %d fields, want 15", len(h.Values()))
	}
	for i, v := range h.Values() {
		if v != "" {
			t.Errorf("%s = %q, want empty", HeaderFieldNames[i], v)
		}
	}
}

func TestProjectHeaderFirstPageOnly(t *testing.T) {
	doc := Document{
		"page_1": {PriorityFields: map[string]any{
			"po_number": map[string]any{"value": "FIRST"},
		}},
		"page_2": {PriorityFields: map[string]any{
			"po_number": map[string]any{"value": "SECOND"},
			"po_date":   map[string]any{"value": "2024-01-01"},
		}},
	}
	h := ProjectHeader(doc)
	if h.PONumber != "FIRST" {
		t.Errorf("po_number = %q, want FIRST", h.PONumber)
	}
	if h.PODate != "" {
		t.Errorf("po_date leaked from second page: %q", h.PODate)
	}
}

// String ordering means page_10 sorts before page_2. The projector keeps this
// ordering; the test pins it down so any change is a deliberate one.
func TestProjectHeaderLexicographicPageOrder(t *testing.T) {
	doc := Document{
		"page_2": {PriorityFields: map[string]any{
			"po_number": map[string]any{"value": "FROM-2"},
		}},
		"page_10": {PriorityFields: map[string]any{
			"po_number": map[string]any{"value": "FROM-10"},
		}},
	}
	if h := ProjectHeader(doc); h.PONumber != "FROM-10" {
		t.Fatalf("po_number = %q, want FROM-10", h.PONumber)
	}
}

func TestProjectHeaderMissingPriorityFields(t *testing.T) {
	h := ProjectHeader(Document{"page_1": {}})
	for i, v := range h.Values() {
		if v != "" {
			t.Errorf("%s = %q, want empty", HeaderFieldNames[i], v)
		}
	}
}
