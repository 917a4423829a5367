// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"po-tracker/gen/ent/extractjob"
	"po-tracker/gen/ent/poheader"
	"po-tracker/gen/ent/polineitem"
	"po-tracker/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// POHeaderUpdate is the builder for updating POHeader entities.
type POHeaderUpdate struct {
	config
	hooks    []Hook
	mutation *POHeaderMutation
}

// Where appends a list predicates to the POHeaderUpdate builder.
func (_u *POHeaderUpdate) Where(ps ...predicate.POHeader) *POHeaderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPoNumber sets the "po_number" field.
func (_u *POHeaderUpdate) SetPoNumber(v string) *POHeaderUpdate {
	_u.mutation.SetPoNumber(v)
	return _u
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillablePoNumber(v *string) *POHeaderUpdate {
	if v != nil {
		_u.SetPoNumber(*v)
	}
	return _u
}

// SetPoDate sets the "po_date" field.
func (_u *POHeaderUpdate) SetPoDate(v time.Time) *POHeaderUpdate {
	_u.mutation.SetPoDate(v)
	return _u
}

// SetNillablePoDate sets the "po_date" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillablePoDate(v *time.Time) *POHeaderUpdate {
	if v != nil {
		_u.SetPoDate(*v)
	}
	return _u
}

// ClearPoDate clears the value of the "po_date" field.
func (_u *POHeaderUpdate) ClearPoDate() *POHeaderUpdate {
	_u.mutation.ClearPoDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *POHeaderUpdate) SetDueDate(v time.Time) *POHeaderUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableDueDate(v *time.Time) *POHeaderUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *POHeaderUpdate) ClearDueDate() *POHeaderUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetBuyerInfo sets the "buyer_info" field.
func (_u *POHeaderUpdate) SetBuyerInfo(v string) *POHeaderUpdate {
	_u.mutation.SetBuyerInfo(v)
	return _u
}

// SetNillableBuyerInfo sets the "buyer_info" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableBuyerInfo(v *string) *POHeaderUpdate {
	if v != nil {
		_u.SetBuyerInfo(*v)
	}
	return _u
}

// SetBillTo sets the "bill_to" field.
func (_u *POHeaderUpdate) SetBillTo(v string) *POHeaderUpdate {
	_u.mutation.SetBillTo(v)
	return _u
}

// SetNillableBillTo sets the "bill_to" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableBillTo(v *string) *POHeaderUpdate {
	if v != nil {
		_u.SetBillTo(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *POHeaderUpdate) SetVendorID(v string) *POHeaderUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableVendorID(v *string) *POHeaderUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *POHeaderUpdate) SetName(v string) *POHeaderUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableName(v *string) *POHeaderUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *POHeaderUpdate) SetAddress(v string) *POHeaderUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableAddress(v *string) *POHeaderUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetContact sets the "contact" field.
func (_u *POHeaderUpdate) SetContact(v string) *POHeaderUpdate {
	_u.mutation.SetContact(v)
	return _u
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableContact(v *string) *POHeaderUpdate {
	if v != nil {
		_u.SetContact(*v)
	}
	return _u
}

// SetShipTo sets the "ship_to" field.
func (_u *POHeaderUpdate) SetShipTo(v string) *POHeaderUpdate {
	_u.mutation.SetShipTo(v)
	return _u
}

// SetNillableShipTo sets the "ship_to" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableShipTo(v *string) *POHeaderUpdate {
	if v != nil {
		_u.SetShipTo(*v)
	}
	return _u
}

// SetShipFrom sets the "ship_from" field.
func (_u *POHeaderUpdate) SetShipFrom(v string) *POHeaderUpdate {
	_u.mutation.SetShipFrom(v)
	return _u
}

// SetNillableShipFrom sets the "ship_from" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableShipFrom(v *string) *POHeaderUpdate {
	if v != nil {
		_u.SetShipFrom(*v)
	}
	return _u
}

// SetShipDate sets the "ship_date" field.
func (_u *POHeaderUpdate) SetShipDate(v time.Time) *POHeaderUpdate {
	_u.mutation.SetShipDate(v)
	return _u
}

// SetNillableShipDate sets the "ship_date" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableShipDate(v *time.Time) *POHeaderUpdate {
	if v != nil {
		_u.SetShipDate(*v)
	}
	return _u
}

// ClearShipDate clears the value of the "ship_date" field.
func (_u *POHeaderUpdate) ClearShipDate() *POHeaderUpdate {
	_u.mutation.ClearShipDate()
	return _u
}

// SetShipVia sets the "ship_via" field.
func (_u *POHeaderUpdate) SetShipVia(v string) *POHeaderUpdate {
	_u.mutation.SetShipVia(v)
	return _u
}

// SetNillableShipVia sets the "ship_via" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableShipVia(v *string) *POHeaderUpdate {
	if v != nil {
		_u.SetShipVia(*v)
	}
	return _u
}

// SetShippingInstruction sets the "shipping_instruction" field.
func (_u *POHeaderUpdate) SetShippingInstruction(v string) *POHeaderUpdate {
	_u.mutation.SetShippingInstruction(v)
	return _u
}

// SetNillableShippingInstruction sets the "shipping_instruction" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableShippingInstruction(v *string) *POHeaderUpdate {
	if v != nil {
		_u.SetShippingInstruction(*v)
	}
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *POHeaderUpdate) SetTotalAmount(v float64) *POHeaderUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableTotalAmount(v *float64) *POHeaderUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *POHeaderUpdate) AddTotalAmount(v float64) *POHeaderUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *POHeaderUpdate) ClearTotalAmount() *POHeaderUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetPoDocName sets the "po_doc_name" field.
func (_u *POHeaderUpdate) SetPoDocName(v string) *POHeaderUpdate {
	_u.mutation.SetPoDocName(v)
	return _u
}

// SetNillablePoDocName sets the "po_doc_name" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillablePoDocName(v *string) *POHeaderUpdate {
	if v != nil {
		_u.SetPoDocName(*v)
	}
	return _u
}

// SetResponseMs sets the "response_ms" field.
func (_u *POHeaderUpdate) SetResponseMs(v int64) *POHeaderUpdate {
	_u.mutation.ResetResponseMs()
	_u.mutation.SetResponseMs(v)
	return _u
}

// SetNillableResponseMs sets the "response_ms" field if the given value is not nil.
func (_u *POHeaderUpdate) SetNillableResponseMs(v *int64) *POHeaderUpdate {
	if v != nil {
		_u.SetResponseMs(*v)
	}
	return _u
}

// AddResponseMs adds value to the "response_ms" field.
func (_u *POHeaderUpdate) AddResponseMs(v int64) *POHeaderUpdate {
	_u.mutation.AddResponseMs(v)
	return _u
}

// AddLineItemIDs adds the "line_items" edge to the POLineItem entity by IDs.
func (_u *POHeaderUpdate) AddLineItemIDs(ids ...uuid.UUID) *POHeaderUpdate {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the POLineItem entity.
func (_u *POHeaderUpdate) AddLineItems(v ...*POLineItem) *POHeaderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *POHeaderUpdate) AddJobIDs(ids ...uuid.UUID) *POHeaderUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *POHeaderUpdate) AddJobs(v ...*ExtractJob) *POHeaderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the POHeaderMutation object of the builder.
func (_u *POHeaderUpdate) Mutation() *POHeaderMutation {
	return _u.mutation
}

// ClearLineItems clears all "line_items" edges to the POLineItem entity.
func (_u *POHeaderUpdate) ClearLineItems() *POHeaderUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to POLineItem entities by IDs.
func (_u *POHeaderUpdate) RemoveLineItemIDs(ids ...uuid.UUID) *POHeaderUpdate {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to POLineItem entities.
func (_u *POHeaderUpdate) RemoveLineItems(v ...*POLineItem) *POHeaderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *POHeaderUpdate) ClearJobs() *POHeaderUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *POHeaderUpdate) RemoveJobIDs(ids ...uuid.UUID) *POHeaderUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *POHeaderUpdate) RemoveJobs(v ...*ExtractJob) *POHeaderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *POHeaderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *POHeaderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *POHeaderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *POHeaderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *POHeaderUpdate) check() error {
	if v, ok := _u.mutation.PoDocName(); ok {
		if err := poheader.PoDocNameValidator(v); err != nil {
			return &ValidationError{Name: "po_doc_name", err: fmt.Errorf(`ent: validator failed for field "POHeader.po_doc_name": %w`, err)}
		}
	}
	return nil
}

func (_u *POHeaderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(poheader.Table, poheader.Columns, sqlgraph.NewFieldSpec(poheader.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PoNumber(); ok {
		_spec.SetField(poheader.FieldPoNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoDate(); ok {
		_spec.SetField(poheader.FieldPoDate, field.TypeTime, value)
	}
	if _u.mutation.PoDateCleared() {
		_spec.ClearField(poheader.FieldPoDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(poheader.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(poheader.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.BuyerInfo(); ok {
		_spec.SetField(poheader.FieldBuyerInfo, field.TypeString, value)
	}
	if value, ok := _u.mutation.BillTo(); ok {
		_spec.SetField(poheader.FieldBillTo, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorID(); ok {
		_spec.SetField(poheader.FieldVendorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(poheader.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(poheader.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contact(); ok {
		_spec.SetField(poheader.FieldContact, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShipTo(); ok {
		_spec.SetField(poheader.FieldShipTo, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShipFrom(); ok {
		_spec.SetField(poheader.FieldShipFrom, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShipDate(); ok {
		_spec.SetField(poheader.FieldShipDate, field.TypeTime, value)
	}
	if _u.mutation.ShipDateCleared() {
		_spec.ClearField(poheader.FieldShipDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ShipVia(); ok {
		_spec.SetField(poheader.FieldShipVia, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShippingInstruction(); ok {
		_spec.SetField(poheader.FieldShippingInstruction, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(poheader.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(poheader.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(poheader.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PoDocName(); ok {
		_spec.SetField(poheader.FieldPoDocName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseMs(); ok {
		_spec.SetField(poheader.FieldResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseMs(); ok {
		_spec.AddField(poheader.FieldResponseMs, field.TypeInt64, value)
	}
	if _u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poheader.LineItemsTable,
			Columns: []string{poheader.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(polineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poheader.LineItemsTable,
			Columns: []string{poheader.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(polineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poheader.LineItemsTable,
			Columns: []string{poheader.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(polineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poheader.JobsTable,
			Columns: []string{poheader.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poheader.JobsTable,
			Columns: []string{poheader.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poheader.JobsTable,
			Columns: []string{poheader.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poheader.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// POHeaderUpdateOne is the builder for updating a single POHeader entity.
type POHeaderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *POHeaderMutation
}

// SetPoNumber sets the "po_number" field.
func (_u *POHeaderUpdateOne) SetPoNumber(v string) *POHeaderUpdateOne {
	_u.mutation.SetPoNumber(v)
	return _u
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillablePoNumber(v *string) *POHeaderUpdateOne {
	if v != nil {
		_u.SetPoNumber(*v)
	}
	return _u
}

// SetPoDate sets the "po_date" field.
func (_u *POHeaderUpdateOne) SetPoDate(v time.Time) *POHeaderUpdateOne {
	_u.mutation.SetPoDate(v)
	return _u
}

// SetNillablePoDate sets the "po_date" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillablePoDate(v *time.Time) *POHeaderUpdateOne {
	if v != nil {
		_u.SetPoDate(*v)
	}
	return _u
}

// ClearPoDate clears the value of the "po_date" field.
func (_u *POHeaderUpdateOne) ClearPoDate() *POHeaderUpdateOne {
	_u.mutation.ClearPoDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *POHeaderUpdateOne) SetDueDate(v time.Time) *POHeaderUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableDueDate(v *time.Time) *POHeaderUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *POHeaderUpdateOne) ClearDueDate() *POHeaderUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetBuyerInfo sets the "buyer_info" field.
func (_u *POHeaderUpdateOne) SetBuyerInfo(v string) *POHeaderUpdateOne {
	_u.mutation.SetBuyerInfo(v)
	return _u
}

// SetNillableBuyerInfo sets the "buyer_info" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableBuyerInfo(v *string) *POHeaderUpdateOne {
	if v != nil {
		_u.SetBuyerInfo(*v)
	}
	return _u
}

// SetBillTo sets the "bill_to" field.
func (_u *POHeaderUpdateOne) SetBillTo(v string) *POHeaderUpdateOne {
	_u.mutation.SetBillTo(v)
	return _u
}

// SetNillableBillTo sets the "bill_to" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableBillTo(v *string) *POHeaderUpdateOne {
	if v != nil {
		_u.SetBillTo(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *POHeaderUpdateOne) SetVendorID(v string) *POHeaderUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableVendorID(v *string) *POHeaderUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *POHeaderUpdateOne) SetName(v string) *POHeaderUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableName(v *string) *POHeaderUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *POHeaderUpdateOne) SetAddress(v string) *POHeaderUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableAddress(v *string) *POHeaderUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetContact sets the "contact" field.
func (_u *POHeaderUpdateOne) SetContact(v string) *POHeaderUpdateOne {
	_u.mutation.SetContact(v)
	return _u
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableContact(v *string) *POHeaderUpdateOne {
	if v != nil {
		_u.SetContact(*v)
	}
	return _u
}

// SetShipTo sets the "ship_to" field.
func (_u *POHeaderUpdateOne) SetShipTo(v string) *POHeaderUpdateOne {
	_u.mutation.SetShipTo(v)
	return _u
}

// SetNillableShipTo sets the "ship_to" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableShipTo(v *string) *POHeaderUpdateOne {
	if v != nil {
		_u.SetShipTo(*v)
	}
	return _u
}

// SetShipFrom sets the "ship_from" field.
func (_u *POHeaderUpdateOne) SetShipFrom(v string) *POHeaderUpdateOne {
	_u.mutation.SetShipFrom(v)
	return _u
}

// SetNillableShipFrom sets the "ship_from" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableShipFrom(v *string) *POHeaderUpdateOne {
	if v != nil {
		_u.SetShipFrom(*v)
	}
	return _u
}

// SetShipDate sets the "ship_date" field.
func (_u *POHeaderUpdateOne) SetShipDate(v time.Time) *POHeaderUpdateOne {
	_u.mutation.SetShipDate(v)
	return _u
}

// SetNillableShipDate sets the "ship_date" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableShipDate(v *time.Time) *POHeaderUpdateOne {
	if v != nil {
		_u.SetShipDate(*v)
	}
	return _u
}

// ClearShipDate clears the value of the "ship_date" field.
func (_u *POHeaderUpdateOne) ClearShipDate() *POHeaderUpdateOne {
	_u.mutation.ClearShipDate()
	return _u
}

// SetShipVia sets the "ship_via" field.
func (_u *POHeaderUpdateOne) SetShipVia(v string) *POHeaderUpdateOne {
	_u.mutation.SetShipVia(v)
	return _u
}

// SetNillableShipVia sets the "ship_via" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableShipVia(v *string) *POHeaderUpdateOne {
	if v != nil {
		_u.SetShipVia(*v)
	}
	return _u
}

// SetShippingInstruction sets the "shipping_instruction" field.
func (_u *POHeaderUpdateOne) SetShippingInstruction(v string) *POHeaderUpdateOne {
	_u.mutation.SetShippingInstruction(v)
	return _u
}

// SetNillableShippingInstruction sets the "shipping_instruction" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableShippingInstruction(v *string) *POHeaderUpdateOne {
	if v != nil {
		_u.SetShippingInstruction(*v)
	}
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *POHeaderUpdateOne) SetTotalAmount(v float64) *POHeaderUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableTotalAmount(v *float64) *POHeaderUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *POHeaderUpdateOne) AddTotalAmount(v float64) *POHeaderUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *POHeaderUpdateOne) ClearTotalAmount() *POHeaderUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetPoDocName sets the "po_doc_name" field.
func (_u *POHeaderUpdateOne) SetPoDocName(v string) *POHeaderUpdateOne {
	_u.mutation.SetPoDocName(v)
	return _u
}

// SetNillablePoDocName sets the "po_doc_name" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillablePoDocName(v *string) *POHeaderUpdateOne {
	if v != nil {
		_u.SetPoDocName(*v)
	}
	return _u
}

// SetResponseMs sets the "response_ms" field.
func (_u *POHeaderUpdateOne) SetResponseMs(v int64) *POHeaderUpdateOne {
	_u.mutation.ResetResponseMs()
	_u.mutation.SetResponseMs(v)
	return _u
}

// SetNillableResponseMs sets the "response_ms" field if the given value is not nil.
func (_u *POHeaderUpdateOne) SetNillableResponseMs(v *int64) *POHeaderUpdateOne {
	if v != nil {
		_u.SetResponseMs(*v)
	}
	return _u
}

// AddResponseMs adds value to the "response_ms" field.
func (_u *POHeaderUpdateOne) AddResponseMs(v int64) *POHeaderUpdateOne {
	_u.mutation.AddResponseMs(v)
	return _u
}

// AddLineItemIDs adds the "line_items" edge to the POLineItem entity by IDs.
func (_u *POHeaderUpdateOne) AddLineItemIDs(ids ...uuid.UUID) *POHeaderUpdateOne {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the POLineItem entity.
func (_u *POHeaderUpdateOne) AddLineItems(v ...*POLineItem) *POHeaderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *POHeaderUpdateOne) AddJobIDs(ids ...uuid.UUID) *POHeaderUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *POHeaderUpdateOne) AddJobs(v ...*ExtractJob) *POHeaderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the POHeaderMutation object of the builder.
func (_u *POHeaderUpdateOne) Mutation() *POHeaderMutation {
	return _u.mutation
}

// ClearLineItems clears all "line_items" edges to the POLineItem entity.
func (_u *POHeaderUpdateOne) ClearLineItems() *POHeaderUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to POLineItem entities by IDs.
func (_u *POHeaderUpdateOne) RemoveLineItemIDs(ids ...uuid.UUID) *POHeaderUpdateOne {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to POLineItem entities.
func (_u *POHeaderUpdateOne) RemoveLineItems(v ...*POLineItem) *POHeaderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *POHeaderUpdateOne) ClearJobs() *POHeaderUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *POHeaderUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *POHeaderUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *POHeaderUpdateOne) RemoveJobs(v ...*ExtractJob) *POHeaderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the POHeaderUpdate builder.
func (_u *POHeaderUpdateOne) Where(ps ...predicate.POHeader) *POHeaderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *POHeaderUpdateOne) Select(field string, fields ...string) *POHeaderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated POHeader entity.
func (_u *POHeaderUpdateOne) Save(ctx context.Context) (*POHeader, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *POHeaderUpdateOne) SaveX(ctx context.Context) *POHeader {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *POHeaderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *POHeaderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *POHeaderUpdateOne) check() error {
	if v, ok := _u.mutation.PoDocName(); ok {
		if err := poheader.PoDocNameValidator(v); err != nil {
			return &ValidationError{Name: "po_doc_name", err: fmt.Errorf(`ent: validator failed for field "POHeader.po_doc_name": %w`, err)}
		}
	}
	return nil
}

func (_u *POHeaderUpdateOne) sqlSave(ctx context.Context) (_node *POHeader, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(poheader.Table, poheader.Columns, sqlgraph.NewFieldSpec(poheader.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "POHeader.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, poheader.FieldID)
		for _, f := range fields {
			if !poheader.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != poheader.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PoNumber(); ok {
		_spec.SetField(poheader.FieldPoNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoDate(); ok {
		_spec.SetField(poheader.FieldPoDate, field.TypeTime, value)
	}
	if _u.mutation.PoDateCleared() {
		_spec.ClearField(poheader.FieldPoDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(poheader.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(poheader.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.BuyerInfo(); ok {
		_spec.SetField(poheader.FieldBuyerInfo, field.TypeString, value)
	}
	if value, ok := _u.mutation.BillTo(); ok {
		_spec.SetField(poheader.FieldBillTo, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorID(); ok {
		_spec.SetField(poheader.FieldVendorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(poheader.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(poheader.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.Contact(); ok {
		_spec.SetField(poheader.FieldContact, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShipTo(); ok {
		_spec.SetField(poheader.FieldShipTo, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShipFrom(); ok {
		_spec.SetField(poheader.FieldShipFrom, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShipDate(); ok {
		_spec.SetField(poheader.FieldShipDate, field.TypeTime, value)
	}
	if _u.mutation.ShipDateCleared() {
		_spec.ClearField(poheader.FieldShipDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ShipVia(); ok {
		_spec.SetField(poheader.FieldShipVia, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShippingInstruction(); ok {
		_spec.SetField(poheader.FieldShippingInstruction, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(poheader.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(poheader.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(poheader.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PoDocName(); ok {
		_spec.SetField(poheader.FieldPoDocName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseMs(); ok {
		_spec.SetField(poheader.FieldResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseMs(); ok {
		_spec.AddField(poheader.FieldResponseMs, field.TypeInt64, value)
	}
	if _u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poheader.LineItemsTable,
			Columns: []string{poheader.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(polineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poheader.LineItemsTable,
			Columns: []string{poheader.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(polineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poheader.LineItemsTable,
			Columns: []string{poheader.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(polineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poheader.JobsTable,
			Columns: []string{poheader.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poheader.JobsTable,
			Columns: []string{poheader.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poheader.JobsTable,
			Columns: []string{poheader.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &POHeader{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poheader.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
