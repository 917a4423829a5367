// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"po-tracker/gen/ent/poheader"
	"po-tracker/gen/ent/polineitem"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// POLineItem is the model entity for the POLineItem schema.
type POLineItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PoNumber holds the value of the "po_number" field.
	PoNumber string `json:"po_number,omitempty"`
	// PoDocName holds the value of the "po_doc_name" field.
	PoDocName string `json:"po_doc_name,omitempty"`
	// ResponseMs holds the value of the "response_ms" field.
	ResponseMs int64 `json:"response_ms,omitempty"`
	// ItemDescription holds the value of the "item_description" field.
	ItemDescription string `json:"item_description,omitempty"`
	// Timeline holds the value of the "timeline" field.
	Timeline string `json:"timeline,omitempty"`
	// RateType holds the value of the "rate_type" field.
	RateType string `json:"rate_type,omitempty"`
	// TotalPrice holds the value of the "total_price" field.
	TotalPrice string `json:"total_price,omitempty"`
	// ItemSerialNo holds the value of the "item_serial_no" field.
	ItemSerialNo string `json:"item_serial_no,omitempty"`
	// ItemCode holds the value of the "item_code" field.
	ItemCode string `json:"item_code,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity string `json:"quantity,omitempty"`
	// Uom holds the value of the "uom" field.
	Uom string `json:"uom,omitempty"`
	// UnitPrice holds the value of the "unit_price" field.
	UnitPrice string `json:"unit_price,omitempty"`
	// PageNo holds the value of the "page_no" field.
	PageNo string `json:"page_no,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the POLineItemQuery when eager-loading is set.
	Edges                POLineItemEdges `json:"edges"`
	po_header_line_items *uuid.UUID
	selectValues         sql.SelectValues
}

// POLineItemEdges holds the relations/edges for other nodes in the graph.
type POLineItemEdges struct {
	// Header holds the value of the header edge.
	Header *POHeader `json:"header,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// HeaderOrErr returns the Header value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e POLineItemEdges) HeaderOrErr() (*POHeader, error) {
	if e.Header != nil {
		return e.Header, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: poheader.Label}
	}
	return nil, &NotLoadedError{edge: "header"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*POLineItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case polineitem.FieldResponseMs:
			values[i] = new(sql.NullInt64)
		case polineitem.FieldPoNumber, polineitem.FieldPoDocName, polineitem.FieldItemDescription, polineitem.FieldTimeline, polineitem.FieldRateType, polineitem.FieldTotalPrice, polineitem.FieldItemSerialNo, polineitem.FieldItemCode, polineitem.FieldQuantity, polineitem.FieldUom, polineitem.FieldUnitPrice, polineitem.FieldPageNo:
			values[i] = new(sql.NullString)
		case polineitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case polineitem.FieldID:
			values[i] = new(uuid.UUID)
		case polineitem.ForeignKeys[0]: // po_header_line_items
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the POLineItem fields.
func (_m *POLineItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case polineitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case polineitem.FieldPoNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field po_number", values[i])
			} else if value.Valid {
				_m.PoNumber = value.String
			}
		case polineitem.FieldPoDocName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field po_doc_name", values[i])
			} else if value.Valid {
				_m.PoDocName = value.String
			}
		case polineitem.FieldResponseMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_ms", values[i])
			} else if value.Valid {
				_m.ResponseMs = value.Int64
			}
		case polineitem.FieldItemDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_description", values[i])
			} else if value.Valid {
				_m.ItemDescription = value.String
			}
		case polineitem.FieldTimeline:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timeline", values[i])
			} else if value.Valid {
				_m.Timeline = value.String
			}
		case polineitem.FieldRateType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rate_type", values[i])
			} else if value.Valid {
				_m.RateType = value.String
			}
		case polineitem.FieldTotalPrice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field total_price", values[i])
			} else if value.Valid {
				_m.TotalPrice = value.String
			}
		case polineitem.FieldItemSerialNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_serial_no", values[i])
			} else if value.Valid {
				_m.ItemSerialNo = value.String
			}
		case polineitem.FieldItemCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_code", values[i])
			} else if value.Valid {
				_m.ItemCode = value.String
			}
		case polineitem.FieldQuantity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = value.String
			}
		case polineitem.FieldUom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uom", values[i])
			} else if value.Valid {
				_m.Uom = value.String
			}
		case polineitem.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = value.String
			}
		case polineitem.FieldPageNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_no", values[i])
			} else if value.Valid {
				_m.PageNo = value.String
			}
		case polineitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case polineitem.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field po_header_line_items", values[i])
			} else if value.Valid {
				_m.po_header_line_items = new(uuid.UUID)
				*_m.po_header_line_items = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the POLineItem.
// This includes values selected through modifiers, order, etc.
func (_m *POLineItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHeader queries the "header" edge of the POLineItem entity.
func (_m *POLineItem) QueryHeader() *POHeaderQuery {
	return NewPOLineItemClient(_m.config).QueryHeader(_m)
}

// Update returns a builder for updating this POLineItem.
// Note that you need to call POLineItem.Unwrap() before calling this method if this POLineItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *POLineItem) Update() *POLineItemUpdateOne {
	return NewPOLineItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the POLineItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *POLineItem) Unwrap() *POLineItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: POLineItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *POLineItem) String() string {
	var builder strings.Builder
	builder.WriteString("POLineItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("po_number=")
	builder.WriteString(_m.PoNumber)
	builder.WriteString(", ")
	builder.WriteString("po_doc_name=")
	builder.WriteString(_m.PoDocName)
	builder.WriteString(", ")
	builder.WriteString("response_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseMs))
	builder.WriteString(", ")
	builder.WriteString("item_description=")
	builder.WriteString(_m.ItemDescription)
	builder.WriteString(", ")
	builder.WriteString("timeline=")
	builder.WriteString(_m.Timeline)
	builder.WriteString(", ")
	builder.WriteString("rate_type=")
	builder.WriteString(_m.RateType)
	builder.WriteString(", ")
	builder.WriteString("total_price=")
	builder.WriteString(_m.TotalPrice)
	builder.WriteString(", ")
	builder.WriteString("item_serial_no=")
	builder.WriteString(_m.ItemSerialNo)
	builder.WriteString(", ")
	builder.WriteString("item_code=")
	builder.WriteString(_m.ItemCode)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(_m.Quantity)
	builder.WriteString(", ")
	builder.WriteString("uom=")
	builder.WriteString(_m.Uom)
	builder.WriteString(", ")
	builder.WriteString("unit_price=")
	builder.WriteString(_m.UnitPrice)
	builder.WriteString(", ")
	builder.WriteString("page_no=")
	builder.WriteString(_m.PageNo)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// POLineItems is a parsable slice of POLineItem.
type POLineItems []*POLineItem
