package llm

import (
	"testing"
)

func TestValidatePODocument(t *testing.T) {
	good := []byte(`{
		"data": {
			"page_1": {
				"priority_fields": {
					"po_number": {"value": "PO-001", "coordinates": [1, 2, 3, 4]},
					"vendor_details": {
						"name": {"value": "Acme"}
					},
					"line_items": [
						{
							"item_description": {"value": "Widget"},
							"quantity": "5",
							"UOM": "EA"
						}
					]
				}
			}
		}
	}`)
	if err := ValidatePODocument(good); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}

	if err := ValidatePODocument([]byte(`{}`)); err == nil {
		t.Error("document without data key should fail validation")
	}

	if err := ValidatePODocument([]byte(`{"data": []}`)); err == nil {
		t.Error("non-object data should fail validation")
	}

	if err := ValidatePODocument([]byte(`not json`)); err == nil {
		t.Error("malformed JSON should fail validation")
	}
}

func TestValidatePODocumentReusesCompiledSchema(t *testing.T) {
	if _, err := compiledPOSchema(); err != nil {
		t.Fatalf("schema failed to compile: %v", err)
	}
	first, _ := compiledPOSchema()
	second, _ := compiledPOSchema()
	if first != second {
		t.Error("expected the same compiled schema instance across calls")
	}
}
