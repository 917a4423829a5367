// Code generated by ent, DO NOT EDIT.

package extractjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractjob type in the database.
	Label = "extract_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHeaderID holds the string denoting the header_id field in the database.
	FieldHeaderID = "header_id"
	// FieldPoDocName holds the string denoting the po_doc_name field in the database.
	FieldPoDocName = "po_doc_name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldRawResponse holds the string denoting the raw_response field in the database.
	FieldRawResponse = "raw_response"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeHeader holds the string denoting the header edge name in mutations.
	EdgeHeader = "header"
	// Table holds the table name of the extractjob in the database.
	Table = "extract_jobs"
	// HeaderTable is the table that holds the header relation/edge.
	HeaderTable = "extract_jobs"
	// HeaderInverseTable is the table name for the POHeader entity.
	// It exists in this package in order to avoid circular dependency with the "poheader" package.
	HeaderInverseTable = "po_header_details"
	// HeaderColumn is the table column denoting the header relation/edge.
	HeaderColumn = "header_id"
)

// Columns holds all SQL columns for extractjob fields.
var Columns = []string{
	FieldID,
	FieldHeaderID,
	FieldPoDocName,
	FieldStatus,
	FieldModelName,
	FieldRawResponse,
	FieldErrorMessage,
	FieldStartedAt,
	FieldFinishedAt,
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
	// PoDocNameValidator is a validator for the "po_doc_name" field. It is called by the builders before save.
	PoDocNameValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHeaderID orders the results by the header_id field.
func ByHeaderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeaderID, opts...).ToFunc()
}

// ByPoDocName orders the results by the po_doc_name field.
func ByPoDocName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoDocName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
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
