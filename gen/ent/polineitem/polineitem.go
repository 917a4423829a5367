// Code generated by ent, DO NOT EDIT.

package polineitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the polineitem type in the database.
	Label = "po_line_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPoNumber holds the string denoting the po_number field in the database.
	FieldPoNumber = "po_number"
	// FieldPoDocName holds the string denoting the po_doc_name field in the database.
	FieldPoDocName = "po_doc_name"
	// FieldResponseMs holds the string denoting the response_ms field in the database.
	FieldResponseMs = "response_ms"
	// FieldItemDescription holds the string denoting the item_description field in the database.
	FieldItemDescription = "item_description"
	// FieldTimeline holds the string denoting the timeline field in the database.
	FieldTimeline = "timeline"
	// FieldRateType holds the string denoting the rate_type field in the database.
	FieldRateType = "rate_type"
	// FieldTotalPrice holds the string denoting the total_price field in the database.
	FieldTotalPrice = "total_price"
	// FieldItemSerialNo holds the string denoting the item_serial_no field in the database.
	FieldItemSerialNo = "item_serial_no"
	// FieldItemCode holds the string denoting the item_code field in the database.
	FieldItemCode = "item_code"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldUom holds the string denoting the uom field in the database.
	FieldUom = "uom"
	// FieldUnitPrice holds the string denoting the unit_price field in the database.
	FieldUnitPrice = "unit_price"
	// FieldPageNo holds the string denoting the page_no field in the database.
	FieldPageNo = "page_no"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeHeader holds the string denoting the header edge name in mutations.
	EdgeHeader = "header"
	// Table holds the table name of the polineitem in the database.
	Table = "po_line_items"
	// HeaderTable is the table that holds the header relation/edge.
	HeaderTable = "po_line_items"
	// HeaderInverseTable is the table name for the POHeader entity.
	// It exists in this package in order to avoid circular dependency with the "poheader" package.
	HeaderInverseTable = "po_header_details"
	// HeaderColumn is the table column denoting the header relation/edge.
	HeaderColumn = "po_header_line_items"
)

// Columns holds all SQL columns for polineitem fields.
var Columns = []string{
	FieldID,
	FieldPoNumber,
	FieldPoDocName,
	FieldResponseMs,
	FieldItemDescription,
	FieldTimeline,
	FieldRateType,
	FieldTotalPrice,
	FieldItemSerialNo,
	FieldItemCode,
	FieldQuantity,
	FieldUom,
	FieldUnitPrice,
	FieldPageNo,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "po_line_items"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"po_header_line_items",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPoNumber holds the default value on creation for the "po_number" field.
	DefaultPoNumber string
	// PoDocNameValidator is a validator for the "po_doc_name" field. It is called by the builders before save.
	PoDocNameValidator func(string) error
	// DefaultResponseMs holds the default value on creation for the "response_ms" field.
	DefaultResponseMs int64
	// DefaultItemDescription holds the default value on creation for the "item_description" field.
	DefaultItemDescription string
	// DefaultTimeline holds the default value on creation for the "timeline" field.
	DefaultTimeline string
	// DefaultRateType holds the default value on creation for the "rate_type" field.
	DefaultRateType string
	// DefaultTotalPrice holds the default value on creation for the "total_price" field.
	DefaultTotalPrice string
	// DefaultItemSerialNo holds the default value on creation for the "item_serial_no" field.
	DefaultItemSerialNo string
	// DefaultItemCode holds the default value on creation for the "item_code" field.
	DefaultItemCode string
	// DefaultQuantity holds the default value on creation for the "quantity" field.
	DefaultQuantity string
	// DefaultUom holds the default value on creation for the "uom" field.
	DefaultUom string
	// DefaultUnitPrice holds the default value on creation for the "unit_price" field.
	DefaultUnitPrice string
	// DefaultPageNo holds the default value on creation for the "page_no" field.
	DefaultPageNo string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the POLineItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPoNumber orders the results by the po_number field.
func ByPoNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoNumber, opts...).ToFunc()
}

// ByPoDocName orders the results by the po_doc_name field.
func ByPoDocName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoDocName, opts...).ToFunc()
}

// ByResponseMs orders the results by the response_ms field.
func ByResponseMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseMs, opts...).ToFunc()
}

// ByItemDescription orders the results by the item_description field.
func ByItemDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemDescription, opts...).ToFunc()
}

// ByTimeline orders the results by the timeline field.
func ByTimeline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeline, opts...).ToFunc()
}

// ByRateType orders the results by the rate_type field.
func ByRateType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateType, opts...).ToFunc()
}

// ByTotalPrice orders the results by the total_price field.
func ByTotalPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPrice, opts...).ToFunc()
}

// ByItemSerialNo orders the results by the item_serial_no field.
func ByItemSerialNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemSerialNo, opts...).ToFunc()
}

// ByItemCode orders the results by the item_code field.
func ByItemCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemCode, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByUom orders the results by the uom field.
func ByUom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUom, opts...).ToFunc()
}

// ByUnitPrice orders the results by the unit_price field.
func ByUnitPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitPrice, opts...).ToFunc()
}

// ByPageNo orders the results by the page_no field.
func ByPageNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageNo, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByHeaderField orders the results by header field.
func ByHeaderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHeaderStep(), sql.OrderByField(field, opts...))
	}
}
func newHeaderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HeaderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HeaderTable, HeaderColumn),
	)
}
