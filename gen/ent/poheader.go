// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"po-tracker/gen/ent/poheader"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// POHeader is the model entity for the POHeader schema.
type POHeader struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PoNumber holds the value of the "po_number" field.
	PoNumber string `json:"po_number,omitempty"`
	// PoDate holds the value of the "po_date" field.
	PoDate *time.Time `json:"po_date,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// BuyerInfo holds the value of the "buyer_info" field.
	BuyerInfo string `json:"buyer_info,omitempty"`
	// BillTo holds the value of the "bill_to" field.
	BillTo string `json:"bill_to,omitempty"`
	// VendorID holds the value of the "vendor_id" field.
	VendorID string `json:"vendor_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// Contact holds the value of the "contact" field.
	Contact string `json:"contact,omitempty"`
	// ShipTo holds the value of the "ship_to" field.
	ShipTo string `json:"ship_to,omitempty"`
	// ShipFrom holds the value of the "ship_from" field.
	ShipFrom string `json:"ship_from,omitempty"`
	// ShipDate holds the value of the "ship_date" field.
	ShipDate *time.Time `json:"ship_date,omitempty"`
	// ShipVia holds the value of the "ship_via" field.
	ShipVia string `json:"ship_via,omitempty"`
	// ShippingInstruction holds the value of the "shipping_instruction" field.
	ShippingInstruction string `json:"shipping_instruction,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount *float64 `json:"total_amount,omitempty"`
	// PoDocName holds the value of the "po_doc_name" field.
	PoDocName string `json:"po_doc_name,omitempty"`
	// ResponseMs holds the value of the "response_ms" field.
	ResponseMs int64 `json:"response_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the POHeaderQuery when eager-loading is set.
	Edges        POHeaderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// POHeaderEdges holds the relations/edges for other nodes in the graph.
type POHeaderEdges struct {
	// LineItems holds the value of the line_items edge.
	LineItems []*POLineItem `json:"line_items,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LineItemsOrErr returns the LineItems value or an error if the edge
// was not loaded in eager-loading.
func (e POHeaderEdges) LineItemsOrErr() ([]*POLineItem, error) {
	if e.loadedTypes[0] {
		return e.LineItems, nil
	}
	return nil, &NotLoadedError{edge: "line_items"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e POHeaderEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*POHeader) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case poheader.FieldTotalAmount:
			values[i] = new(sql.NullFloat64)
		case poheader.FieldResponseMs:
			values[i] = new(sql.NullInt64)
		case poheader.FieldPoNumber, poheader.FieldBuyerInfo, poheader.FieldBillTo, poheader.FieldVendorID, poheader.FieldName, poheader.FieldAddress, poheader.FieldContact, poheader.FieldShipTo, poheader.FieldShipFrom, poheader.FieldShipVia, poheader.FieldShippingInstruction, poheader.FieldPoDocName:
			values[i] = new(sql.NullString)
		case poheader.FieldPoDate, poheader.FieldDueDate, poheader.FieldShipDate, poheader.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case poheader.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the POHeader fields.
func (_m *POHeader) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case poheader.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case poheader.FieldPoNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field po_number", values[i])
			} else if value.Valid {
				_m.PoNumber = value.String
			}
		case poheader.FieldPoDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field po_date", values[i])
			} else if value.Valid {
				_m.PoDate = new(time.Time)
				*_m.PoDate = value.Time
			}
		case poheader.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case poheader.FieldBuyerInfo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_info", values[i])
			} else if value.Valid {
				_m.BuyerInfo = value.String
			}
		case poheader.FieldBillTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bill_to", values[i])
			} else if value.Valid {
				_m.BillTo = value.String
			}
		case poheader.FieldVendorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_id", values[i])
			} else if value.Valid {
				_m.VendorID = value.String
			}
		case poheader.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case poheader.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case poheader.FieldContact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact", values[i])
			} else if value.Valid {
				_m.Contact = value.String
			}
		case poheader.FieldShipTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ship_to", values[i])
			} else if value.Valid {
				_m.ShipTo = value.String
			}
		case poheader.FieldShipFrom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ship_from", values[i])
			} else if value.Valid {
				_m.ShipFrom = value.String
			}
		case poheader.FieldShipDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ship_date", values[i])
			} else if value.Valid {
				_m.ShipDate = new(time.Time)
				*_m.ShipDate = value.Time
			}
		case poheader.FieldShipVia:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ship_via", values[i])
			} else if value.Valid {
				_m.ShipVia = value.String
			}
		case poheader.FieldShippingInstruction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shipping_instruction", values[i])
			} else if value.Valid {
				_m.ShippingInstruction = value.String
			}
		case poheader.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = new(float64)
				*_m.TotalAmount = value.Float64
			}
		case poheader.FieldPoDocName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field po_doc_name", values[i])
			} else if value.Valid {
				_m.PoDocName = value.String
			}
		case poheader.FieldResponseMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_ms", values[i])
			} else if value.Valid {
				_m.ResponseMs = value.Int64
			}
		case poheader.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the POHeader.
// This includes values selected through modifiers, order, etc.
func (_m *POHeader) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLineItems queries the "line_items" edge of the POHeader entity.
func (_m *POHeader) QueryLineItems() *POLineItemQuery {
	return NewPOHeaderClient(_m.config).QueryLineItems(_m)
}

// QueryJobs queries the "jobs" edge of the POHeader entity.
func (_m *POHeader) QueryJobs() *ExtractJobQuery {
	return NewPOHeaderClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this POHeader.
// Note that you need to call POHeader.Unwrap() before calling this method if this POHeader
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *POHeader) Update() *POHeaderUpdateOne {
	return NewPOHeaderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the POHeader entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *POHeader) Unwrap() *POHeader {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: POHeader is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *POHeader) String() string {
	var builder strings.Builder
	builder.WriteString("POHeader(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("po_number=")
	builder.WriteString(_m.PoNumber)
	builder.WriteString(", ")
	if v := _m.PoDate; v != nil {
		builder.WriteString("po_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("buyer_info=")
	builder.WriteString(_m.BuyerInfo)
	builder.WriteString(", ")
	builder.WriteString("bill_to=")
	builder.WriteString(_m.BillTo)
	builder.WriteString(", ")
	builder.WriteString("vendor_id=")
	builder.WriteString(_m.VendorID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("contact=")
	builder.WriteString(_m.Contact)
	builder.WriteString(", ")
	builder.WriteString("ship_to=")
	builder.WriteString(_m.ShipTo)
	builder.WriteString(", ")
	builder.WriteString("ship_from=")
	builder.WriteString(_m.ShipFrom)
	builder.WriteString(", ")
	if v := _m.ShipDate; v != nil {
		builder.WriteString("ship_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("ship_via=")
	builder.WriteString(_m.ShipVia)
	builder.WriteString(", ")
	builder.WriteString("shipping_instruction=")
	builder.WriteString(_m.ShippingInstruction)
	builder.WriteString(", ")
	if v := _m.TotalAmount; v != nil {
		builder.WriteString("total_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("po_doc_name=")
	builder.WriteString(_m.PoDocName)
	builder.WriteString(", ")
	builder.WriteString("response_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// POHeaders is a parsable slice of POHeader.
type POHeaders []*POHeader
