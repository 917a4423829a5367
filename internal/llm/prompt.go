package llm

import (
	"fmt"
	"os"
	"strings"
)

// DefaultExtractionPrompt is used when no prompt file is configured.
const DefaultExtractionPrompt = `You are given every page of one purchase-order document as images, in order.
Extract the purchase-order fields from each page and return a single JSON object:

{"data": {"page_1": {"priority_fields": {...}}, "page_2": {...}}}

Rules:
- Key each page "page_<n>" by its position in the input, starting at 1.
- Wrap every recognized field as {"value": <text>, "coordinates": [x1, y1, x2, y2]}.
- Under priority_fields extract: po_number, po_date, due_date,
  customer_details (buyer_info, bill_to), vendor_details (vendor_id, name,
  address, contact), shipping_details (ship_to, ship_from, ship_date,
  ship_via, shipping_instruction), order_summary (total_amount), and
  line_items.
- line_items is a list of objects with item_description, timeline, rate_type,
  total_price (wrapped), and Serial_no, item_code, quantity, UOM, unit_price
  (plain strings).
- Use null for the value of any field not present on the page.
- Return ONLY the JSON object, no commentary.`

// LoadPrompt reads the extraction prompt from path, or returns the built-in
// default when path is empty.
func LoadPrompt(path string) (string, error) {
	if path == "" {
		return DefaultExtractionPrompt, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", fmt.Errorf("prompt file %s is empty", path)
	}
	return prompt, nil
}
