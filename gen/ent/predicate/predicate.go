// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// POHeader is the predicate function for poheader builders.
type POHeader func(*sql.Selector)

// POLineItem is the predicate function for polineitem builders.
type POLineItem func(*sql.Selector)
