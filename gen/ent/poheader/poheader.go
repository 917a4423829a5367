// Code generated by ent, DO NOT EDIT.

package poheader

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the poheader type in the database.
	Label = "po_header"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPoNumber holds the string denoting the po_number field in the database.
	FieldPoNumber = "po_number"
	// FieldPoDate holds the string denoting the po_date field in the database.
	FieldPoDate = "po_date"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldBuyerInfo holds the string denoting the buyer_info field in the database.
	FieldBuyerInfo = "buyer_info"
	// FieldBillTo holds the string denoting the bill_to field in the database.
	FieldBillTo = "bill_to"
	// FieldVendorID holds the string denoting the vendor_id field in the database.
	FieldVendorID = "vendor_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldContact holds the string denoting the contact field in the database.
	FieldContact = "contact"
	// FieldShipTo holds the string denoting the ship_to field in the database.
	FieldShipTo = "ship_to"
	// FieldShipFrom holds the string denoting the ship_from field in the database.
	FieldShipFrom = "ship_from"
	// FieldShipDate holds the string denoting the ship_date field in the database.
	FieldShipDate = "ship_date"
	// FieldShipVia holds the string denoting the ship_via field in the database.
	FieldShipVia = "ship_via"
	// FieldShippingInstruction holds the string denoting the shipping_instruction field in the database.
	FieldShippingInstruction = "shipping_instruction"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldPoDocName holds the string denoting the po_doc_name field in the database.
	FieldPoDocName = "po_doc_name"
	// FieldResponseMs holds the string denoting the response_ms field in the database.
	FieldResponseMs = "response_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLineItems holds the string denoting the line_items edge name in mutations.
	EdgeLineItems = "line_items"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the poheader in the database.
	Table = "po_header_details"
	// LineItemsTable is the table that holds the line_items relation/edge.
	LineItemsTable = "po_line_items"
	// LineItemsInverseTable is the table name for the POLineItem entity.
	// It exists in this package in order to avoid circular dependency with the "polineitem" package.
	LineItemsInverseTable = "po_line_items"
	// LineItemsColumn is the table column denoting the line_items relation/edge.
	LineItemsColumn = "po_header_line_items"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "extract_jobs"
	// JobsInverseTable is the table name for the ExtractJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractjob" package.
	JobsInverseTable = "extract_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "header_id"
)

// Columns holds all SQL columns for poheader fields.
var Columns = []string{
	FieldID,
	FieldPoNumber,
	FieldPoDate,
	FieldDueDate,
	FieldBuyerInfo,
	FieldBillTo,
	FieldVendorID,
	FieldName,
	FieldAddress,
	FieldContact,
	FieldShipTo,
	FieldShipFrom,
	FieldShipDate,
	FieldShipVia,
	FieldShippingInstruction,
	FieldTotalAmount,
	FieldPoDocName,
	FieldResponseMs,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPoNumber holds the default value on creation for the "po_number" field.
	DefaultPoNumber string
	// DefaultBuyerInfo holds the default value on creation for the "buyer_info" field.
	DefaultBuyerInfo string
	// DefaultBillTo holds the default value on creation for the "bill_to" field.
	DefaultBillTo string
	// DefaultVendorID holds the default value on creation for the "vendor_id" field.
	DefaultVendorID string
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
	// DefaultAddress holds the default value on creation for the "address" field.
	DefaultAddress string
	// DefaultContact holds the default value on creation for the "contact" field.
	DefaultContact string
	// DefaultShipTo holds the default value on creation for the "ship_to" field.
	DefaultShipTo string
	// DefaultShipFrom holds the default value on creation for the "ship_from" field.
	DefaultShipFrom string
	// DefaultShipVia holds the default value on creation for the "ship_via" field.
	DefaultShipVia string
	// DefaultShippingInstruction holds the default value on creation for the "shipping_instruction" field.
	DefaultShippingInstruction string
	// PoDocNameValidator is a validator for the "po_doc_name" field. It is called by the builders before save.
	PoDocNameValidator func(string) error
	// DefaultResponseMs holds the default value on creation for the "response_ms" field.
	DefaultResponseMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the POHeader queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPoNumber orders the results by the po_number field.
func ByPoNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoNumber, opts...).ToFunc()
}

// ByPoDate orders the results by the po_date field.
func ByPoDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoDate, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByBuyerInfo orders the results by the buyer_info field.
func ByBuyerInfo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerInfo, opts...).ToFunc()
}

// ByBillTo orders the results by the bill_to field.
func ByBillTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBillTo, opts...).ToFunc()
}

// ByVendorID orders the results by the vendor_id field.
func ByVendorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByContact orders the results by the contact field.
func ByContact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContact, opts...).ToFunc()
}

// ByShipTo orders the results by the ship_to field.
func ByShipTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShipTo, opts...).ToFunc()
}

// ByShipFrom orders the results by the ship_from field.
func ByShipFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShipFrom, opts...).ToFunc()
}

// ByShipDate orders the results by the ship_date field.
func ByShipDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShipDate, opts...).ToFunc()
}

// ByShipVia orders the results by the ship_via field.
func ByShipVia(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShipVia, opts...).ToFunc()
}

// ByShippingInstruction orders the results by the shipping_instruction field.
func ByShippingInstruction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShippingInstruction, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// ByPoDocName orders the results by the po_doc_name field.
func ByPoDocName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoDocName, opts...).ToFunc()
}

// ByResponseMs orders the results by the response_ms field.
func ByResponseMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLineItemsCount orders the results by line_items count.
func ByLineItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLineItemsStep(), opts...)
	}
}

// ByLineItems orders the results by line_items terms.
func ByLineItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLineItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLineItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LineItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LineItemsTable, LineItemsColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
