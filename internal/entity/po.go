package entity

import (
	"time"

	"github.com/google/uuid"
)

// POHeader is the persisted header of one purchase order, for data transfer
// between layers. Dates and the total are typed where coercion succeeded; the
// raw extracted strings are kept alongside so nothing is lost.
type POHeader struct {
	ID                  uuid.UUID  `json:"id"`
	PONumber            string     `json:"po_number"`
	PODate              *time.Time `json:"po_date,omitempty"`
	DueDate             *time.Time `json:"due_date,omitempty"`
	BuyerInfo           string     `json:"buyer_info"`
	BillTo              string     `json:"bill_to"`
	VendorID            string     `json:"vendor_id"`
	Name                string     `json:"name"`
	Address             string     `json:"address"`
	Contact             string     `json:"contact"`
	ShipTo              string     `json:"ship_to"`
	ShipFrom            string     `json:"ship_from"`
	ShipDate            *time.Time `json:"ship_date,omitempty"`
	ShipVia             string     `json:"ship_via"`
	ShippingInstruction string     `json:"shipping_instruction"`
	TotalAmount         *float64   `json:"total_amount,omitempty"`
	PODocName           string     `json:"po_doc_name"`
	ResponseMs          int64      `json:"response_ms"`
	CreatedAt           time.Time  `json:"created_at"`
}

// POLineItem is one persisted purchase-order line. All extracted columns stay
// VARCHAR-shaped; the warehouse consumers do their own typing.
type POLineItem struct {
	ID              uuid.UUID `json:"id"`
	PONumber        string    `json:"po_number"`
	PODocName       string    `json:"po_doc_name"`
	ResponseMs      int64     `json:"response_ms"`
	ItemDescription string    `json:"item_description"`
	Timeline        string    `json:"timeline"`
	RateType        string    `json:"rate_type"`
	TotalPrice      string    `json:"total_price"`
	ItemSerialNo    string    `json:"item_serial_no"`
	ItemCode        string    `json:"item_code"`
	Quantity        string    `json:"quantity"`
	UOM             string    `json:"uom"`
	UnitPrice       string    `json:"unit_price"`
	PageNo          string    `json:"page_no"`
	CreatedAt       time.Time `json:"created_at"`
}
