package extract

// HeaderRecord is the fixed header projection of a purchase order: exactly
// these 15 fields, each "" when the model did not produce it. The JSON tags
// are the interchange names the exports and the warehouse expect.
type HeaderRecord struct {
	PONumber            string `json:"po_number"`
	PODate              string `json:"po_date"`
	DueDate             string `json:"due_date"`
	BuyerInfo           string `json:"buyer_info"`
	BillTo              string `json:"bill_to"`
	VendorID            string `json:"vendor_id"`
	Name                string `json:"name"`
	Address             string `json:"address"`
	Contact             string `json:"contact"`
	ShipTo              string `json:"ship_to"`
	ShipFrom            string `json:"ship_from"`
	ShipDate            string `json:"ship_date"`
	ShipVia             string `json:"ship_via"`
	ShippingInstruction string `json:"shipping_instruction"`
	TotalAmount         string `json:"total_amount"`
}

// HeaderFieldNames is the canonical column order for header exports.
var HeaderFieldNames = []string{
	"po_number", "po_date", "due_date", "buyer_info", "bill_to",
	"vendor_id", "name", "address", "contact",
	"ship_to", "ship_from", "ship_date", "ship_via", "shipping_instruction",
	"total_amount",
}

// Values returns the field values in HeaderFieldNames order.
func (h HeaderRecord) Values() []string {
	return []string{
		h.PONumber, h.PODate, h.DueDate, h.BuyerInfo, h.BillTo,
		h.VendorID, h.Name, h.Address, h.Contact,
		h.ShipTo, h.ShipFrom, h.ShipDate, h.ShipVia, h.ShippingInstruction,
		h.TotalAmount,
	}
}

// ProjectHeader produces the one HeaderRecord for a Document from the first
// page's priority fields. "First" is the lexicographically smallest page key
// (see Document.SortedPageKeys for the ordering caveat). A document with no
// pages yields an all-default record; this operation cannot fail.
func ProjectHeader(doc Document) HeaderRecord {
	keys := doc.SortedPageKeys()
	if len(keys) == 0 {
		return HeaderRecord{}
	}
	first := doc[keys[0]]
	values := FlattenPriorityFields(first.PriorityFields, "")

	return HeaderRecord{
		PONumber:            lookupString(values, "po_number"),
		PODate:              lookupString(values, "po_date"),
		DueDate:             lookupString(values, "due_date"),
		BuyerInfo:           lookupString(values, "customer_details.buyer_info"),
		BillTo:              lookupString(values, "customer_details.bill_to"),
		VendorID:            lookupString(values, "vendor_details.vendor_id"),
		Name:                lookupString(values, "vendor_details.name"),
		Address:             lookupString(values, "vendor_details.address"),
		Contact:             lookupString(values, "vendor_details.contact"),
		ShipTo:              lookupString(values, "shipping_details.ship_to"),
		ShipFrom:            lookupString(values, "shipping_details.ship_from"),
		ShipDate:            lookupString(values, "shipping_details.ship_date"),
		ShipVia:             lookupString(values, "shipping_details.ship_via"),
		ShippingInstruction: lookupString(values, "shipping_details.shipping_instruction"),
		TotalAmount:         lookupString(values, "order_summary.total_amount"),
	}
}
