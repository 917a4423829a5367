// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"po-tracker/gen/ent/poheader"
	"po-tracker/gen/ent/polineitem"
	"po-tracker/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// POLineItemUpdate is the builder for updating POLineItem entities.
type POLineItemUpdate struct {
	config
	hooks    []Hook
	mutation *POLineItemMutation
}

// Where appends a list predicates to the POLineItemUpdate builder.
func (_u *POLineItemUpdate) Where(ps ...predicate.POLineItem) *POLineItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPoNumber sets the "po_number" field.
func (_u *POLineItemUpdate) SetPoNumber(v string) *POLineItemUpdate {
	_u.mutation.SetPoNumber(v)
	return _u
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_u *POLineItemUpdate) SetNillablePoNumber(v *string) *POLineItemUpdate {
	if v != nil {
		_u.SetPoNumber(*v)
	}
	return _u
}

// SetPoDocName sets the "po_doc_name" field.
func (_u *POLineItemUpdate) SetPoDocName(v string) *POLineItemUpdate {
	_u.mutation.SetPoDocName(v)
	return _u
}

// SetNillablePoDocName sets the "po_doc_name" field if the given value is not nil.
func (_u *POLineItemUpdate) SetNillablePoDocName(v *string) *POLineItemUpdate {
	if v != nil {
		_u.SetPoDocName(*v)
	}
	return _u
}

// SetResponseMs sets the "response_ms" field.
func (_u *POLineItemUpdate) SetResponseMs(v int64) *POLineItemUpdate {
	_u.mutation.ResetResponseMs()
	_u.mutation.SetResponseMs(v)
	return _u
}

// SetNillableResponseMs sets the "response_ms" field if the given value is not nil.
func (_u *POLineItemUpdate) SetNillableResponseMs(v *int64) *POLineItemUpdate {
	if v != nil {
		_u.SetResponseMs(*v)
	}
	return _u
}

// AddResponseMs adds value to the "response_ms" field.
func (_u *POLineItemUpdate) AddResponseMs(v int64) *POLineItemUpdate {
	_u.mutation.AddResponseMs(v)
	return _u
}

// SetItemDescription sets the "item_description" field.
func (_u *POLineItemUpdate) SetItemDescription(v string) *POLineItemUpdate {
	_u.mutation.SetItemDescription(v)
	return _u
}

// SetNillableItemDescription sets the "item_description" field if the given value is not nil.
func (_u *POLineItemUpdate) SetNillableItemDescription(v *string) *POLineItemUpdate {
	if v != nil {
		_u.SetItemDescription(*v)
	}
	return _u
}

// SetTimeline sets the "timeline" field.
func (_u *POLineItemUpdate) SetTimeline(v string) *POLineItemUpdate {
	_u.mutation.SetTimeline(v)
	return _u
}

// SetNillableTimeline sets the "timeline" field if the given value is not nil.
func (_u *POLineItemUpdate) SetNillableTimeline(v *string) *POLineItemUpdate {
	if v != nil {
		_u.SetTimeline(*v)
	}
	return _u
}

// SetRateType sets the "rate_type" field.
func (_u *POLineItemUpdate) SetRateType(v string) *POLineItemUpdate {
	_u.mutation.SetRateType(v)
	return _u
}

// SetNillableRateType sets the "rate_type" field if the given value is not nil.
func (_u *POLineItemUpdate) SetNillableRateType(v *string) *POLineItemUpdate {
	if v != nil {
		_u.SetRateType(*v)
	}
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *POLineItemUpdate) SetTotalPrice(v string) *POLineItemUpdate {
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *POLineItemUpdate) SetNillableTotalPrice(v *string) *POLineItemUpdate {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// SetItemSerialNo sets the "item_serial_no" field.
func (_u *POLineItemUpdate) SetItemSerialNo(v string) *POLineItemUpdate {
	_u.mutation.SetItemSerialNo(v)
	return _u
}

// SetNillableItemSerialNo sets the "item_serial_no" field if the given value is not nil.
func (_u *POLineItemUpdate) SetNillableItemSerialNo(v *string) *POLineItemUpdate {
	if v != nil {
		_u.SetItemSerialNo(*v)
	}
	return _u
}

// SetItemCode sets the "item_code" field.
func (_u *POLineItemUpdate) SetItemCode(v string) *POLineItemUpdate {
	_u.mutation.SetItemCode(v)
	return _u
}

// SetNillableItemCode sets the "item_code" field if the given value is not nil.
func (_u *POLineItemUpdate) SetNillableItemCode(v *string) *POLineItemUpdate {
	if v != nil {
		_u.SetItemCode(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *POLineItemUpdate) SetQuantity(v string) *POLineItemUpdate {
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *POLineItemUpdate) SetNillableQuantity(v *string) *POLineItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// SetUom sets the "uom" field.
func (_u *POLineItemUpdate) SetUom(v string) *POLineItemUpdate {
	_u.mutation.SetUom(v)
	return _u
}

// SetNillableUom sets the "uom" field if the given value is not nil.
func (_u *POLineItemUpdate) SetNillableUom(v *string) *POLineItemUpdate {
	if v != nil {
		_u.SetUom(*v)
	}
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *POLineItemUpdate) SetUnitPrice(v string) *POLineItemUpdate {
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *POLineItemUpdate) SetNillableUnitPrice(v *string) *POLineItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// SetPageNo sets the "page_no" field.
func (_u *POLineItemUpdate) SetPageNo(v string) *POLineItemUpdate {
	_u.mutation.SetPageNo(v)
	return _u
}

// SetNillablePageNo sets the "page_no" field if the given value is not nil.
func (_u *POLineItemUpdate) SetNillablePageNo(v *string) *POLineItemUpdate {
	if v != nil {
		_u.SetPageNo(*v)
	}
	return _u
}

// SetHeaderID sets the "header" edge to the POHeader entity by ID.
func (_u *POLineItemUpdate) SetHeaderID(id uuid.UUID) *POLineItemUpdate {
	_u.mutation.SetHeaderID(id)
	return _u
}

// SetNillableHeaderID sets the "header" edge to the POHeader entity by ID if the given value is not nil.
func (_u *POLineItemUpdate) SetNillableHeaderID(id *uuid.UUID) *POLineItemUpdate {
	if id != nil {
		_u = _u.SetHeaderID(*id)
	}
	return _u
}

// SetHeader sets the "header" edge to the POHeader entity.
func (_u *POLineItemUpdate) SetHeader(v *POHeader) *POLineItemUpdate {
	return _u.SetHeaderID(v.ID)
}

// Mutation returns the POLineItemMutation object of the builder.
func (_u *POLineItemUpdate) Mutation() *POLineItemMutation {
	return _u.mutation
}

// ClearHeader clears the "header" edge to the POHeader entity.
func (_u *POLineItemUpdate) ClearHeader() *POLineItemUpdate {
	_u.mutation.ClearHeader()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *POLineItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *POLineItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *POLineItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *POLineItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *POLineItemUpdate) check() error {
	if v, ok := _u.mutation.PoDocName(); ok {
		if err := polineitem.PoDocNameValidator(v); err != nil {
			return &ValidationError{Name: "po_doc_name", err: fmt.Errorf(`ent: validator failed for field "POLineItem.po_doc_name": %w`, err)}
		}
	}
	return nil
}

func (_u *POLineItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(polineitem.Table, polineitem.Columns, sqlgraph.NewFieldSpec(polineitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PoNumber(); ok {
		_spec.SetField(polineitem.FieldPoNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoDocName(); ok {
		_spec.SetField(polineitem.FieldPoDocName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseMs(); ok {
		_spec.SetField(polineitem.FieldResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseMs(); ok {
		_spec.AddField(polineitem.FieldResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ItemDescription(); ok {
		_spec.SetField(polineitem.FieldItemDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timeline(); ok {
		_spec.SetField(polineitem.FieldTimeline, field.TypeString, value)
	}
	if value, ok := _u.mutation.RateType(); ok {
		_spec.SetField(polineitem.FieldRateType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(polineitem.FieldTotalPrice, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemSerialNo(); ok {
		_spec.SetField(polineitem.FieldItemSerialNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemCode(); ok {
		_spec.SetField(polineitem.FieldItemCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(polineitem.FieldQuantity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Uom(); ok {
		_spec.SetField(polineitem.FieldUom, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(polineitem.FieldUnitPrice, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageNo(); ok {
		_spec.SetField(polineitem.FieldPageNo, field.TypeString, value)
	}
	if _u.mutation.HeaderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   polineitem.HeaderTable,
			Columns: []string{polineitem.HeaderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poheader.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HeaderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   polineitem.HeaderTable,
			Columns: []string{polineitem.HeaderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poheader.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{polineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// POLineItemUpdateOne is the builder for updating a single POLineItem entity.
type POLineItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *POLineItemMutation
}

// SetPoNumber sets the "po_number" field.
func (_u *POLineItemUpdateOne) SetPoNumber(v string) *POLineItemUpdateOne {
	_u.mutation.SetPoNumber(v)
	return _u
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillablePoNumber(v *string) *POLineItemUpdateOne {
	if v != nil {
		_u.SetPoNumber(*v)
	}
	return _u
}

// SetPoDocName sets the "po_doc_name" field.
func (_u *POLineItemUpdateOne) SetPoDocName(v string) *POLineItemUpdateOne {
	_u.mutation.SetPoDocName(v)
	return _u
}

// SetNillablePoDocName sets the "po_doc_name" field if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillablePoDocName(v *string) *POLineItemUpdateOne {
	if v != nil {
		_u.SetPoDocName(*v)
	}
	return _u
}

// SetResponseMs sets the "response_ms" field.
func (_u *POLineItemUpdateOne) SetResponseMs(v int64) *POLineItemUpdateOne {
	_u.mutation.ResetResponseMs()
	_u.mutation.SetResponseMs(v)
	return _u
}

// SetNillableResponseMs sets the "response_ms" field if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillableResponseMs(v *int64) *POLineItemUpdateOne {
	if v != nil {
		_u.SetResponseMs(*v)
	}
	return _u
}

// AddResponseMs adds value to the "response_ms" field.
func (_u *POLineItemUpdateOne) AddResponseMs(v int64) *POLineItemUpdateOne {
	_u.mutation.AddResponseMs(v)
	return _u
}

// SetItemDescription sets the "item_description" field.
func (_u *POLineItemUpdateOne) SetItemDescription(v string) *POLineItemUpdateOne {
	_u.mutation.SetItemDescription(v)
	return _u
}

// SetNillableItemDescription sets the "item_description" field if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillableItemDescription(v *string) *POLineItemUpdateOne {
	if v != nil {
		_u.SetItemDescription(*v)
	}
	return _u
}

// SetTimeline sets the "timeline" field.
func (_u *POLineItemUpdateOne) SetTimeline(v string) *POLineItemUpdateOne {
	_u.mutation.SetTimeline(v)
	return _u
}

// SetNillableTimeline sets the "timeline" field if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillableTimeline(v *string) *POLineItemUpdateOne {
	if v != nil {
		_u.SetTimeline(*v)
	}
	return _u
}

// SetRateType sets the "rate_type" field.
func (_u *POLineItemUpdateOne) SetRateType(v string) *POLineItemUpdateOne {
	_u.mutation.SetRateType(v)
	return _u
}

// SetNillableRateType sets the "rate_type" field if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillableRateType(v *string) *POLineItemUpdateOne {
	if v != nil {
		_u.SetRateType(*v)
	}
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *POLineItemUpdateOne) SetTotalPrice(v string) *POLineItemUpdateOne {
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillableTotalPrice(v *string) *POLineItemUpdateOne {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// SetItemSerialNo sets the "item_serial_no" field.
func (_u *POLineItemUpdateOne) SetItemSerialNo(v string) *POLineItemUpdateOne {
	_u.mutation.SetItemSerialNo(v)
	return _u
}

// SetNillableItemSerialNo sets the "item_serial_no" field if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillableItemSerialNo(v *string) *POLineItemUpdateOne {
	if v != nil {
		_u.SetItemSerialNo(*v)
	}
	return _u
}

// SetItemCode sets the "item_code" field.
func (_u *POLineItemUpdateOne) SetItemCode(v string) *POLineItemUpdateOne {
	_u.mutation.SetItemCode(v)
	return _u
}

// SetNillableItemCode sets the "item_code" field if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillableItemCode(v *string) *POLineItemUpdateOne {
	if v != nil {
		_u.SetItemCode(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *POLineItemUpdateOne) SetQuantity(v string) *POLineItemUpdateOne {
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillableQuantity(v *string) *POLineItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// SetUom sets the "uom" field.
func (_u *POLineItemUpdateOne) SetUom(v string) *POLineItemUpdateOne {
	_u.mutation.SetUom(v)
	return _u
}

// SetNillableUom sets the "uom" field if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillableUom(v *string) *POLineItemUpdateOne {
	if v != nil {
		_u.SetUom(*v)
	}
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *POLineItemUpdateOne) SetUnitPrice(v string) *POLineItemUpdateOne {
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillableUnitPrice(v *string) *POLineItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// SetPageNo sets the "page_no" field.
func (_u *POLineItemUpdateOne) SetPageNo(v string) *POLineItemUpdateOne {
	_u.mutation.SetPageNo(v)
	return _u
}

// SetNillablePageNo sets the "page_no" field if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillablePageNo(v *string) *POLineItemUpdateOne {
	if v != nil {
		_u.SetPageNo(*v)
	}
	return _u
}

// SetHeaderID sets the "header" edge to the POHeader entity by ID.
func (_u *POLineItemUpdateOne) SetHeaderID(id uuid.UUID) *POLineItemUpdateOne {
	_u.mutation.SetHeaderID(id)
	return _u
}

// SetNillableHeaderID sets the "header" edge to the POHeader entity by ID if the given value is not nil.
func (_u *POLineItemUpdateOne) SetNillableHeaderID(id *uuid.UUID) *POLineItemUpdateOne {
	if id != nil {
		_u = _u.SetHeaderID(*id)
	}
	return _u
}

// SetHeader sets the "header" edge to the POHeader entity.
func (_u *POLineItemUpdateOne) SetHeader(v *POHeader) *POLineItemUpdateOne {
	return _u.SetHeaderID(v.ID)
}

// Mutation returns the POLineItemMutation object of the builder.
func (_u *POLineItemUpdateOne) Mutation() *POLineItemMutation {
	return _u.mutation
}

// ClearHeader clears the "header" edge to the POHeader entity.
func (_u *POLineItemUpdateOne) ClearHeader() *POLineItemUpdateOne {
	_u.mutation.ClearHeader()
	return _u
}

// Where appends a list predicates to the POLineItemUpdate builder.
func (_u *POLineItemUpdateOne) Where(ps ...predicate.POLineItem) *POLineItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *POLineItemUpdateOne) Select(field string, fields ...string) *POLineItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated POLineItem entity.
func (_u *POLineItemUpdateOne) Save(ctx context.Context) (*POLineItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *POLineItemUpdateOne) SaveX(ctx context.Context) *POLineItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *POLineItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *POLineItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *POLineItemUpdateOne) check() error {
	if v, ok := _u.mutation.PoDocName(); ok {
		if err := polineitem.PoDocNameValidator(v); err != nil {
			return &ValidationError{Name: "po_doc_name", err: fmt.Errorf(`ent: validator failed for field "POLineItem.po_doc_name": %w`, err)}
		}
	}
	return nil
}

func (_u *POLineItemUpdateOne) sqlSave(ctx context.Context) (_node *POLineItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(polineitem.Table, polineitem.Columns, sqlgraph.NewFieldSpec(polineitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "POLineItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, polineitem.FieldID)
		for _, f := range fields {
			if !polineitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != polineitem.FieldID {
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
		_spec.SetField(polineitem.FieldPoNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.PoDocName(); ok {
		_spec.SetField(polineitem.FieldPoDocName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseMs(); ok {
		_spec.SetField(polineitem.FieldResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseMs(); ok {
		_spec.AddField(polineitem.FieldResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ItemDescription(); ok {
		_spec.SetField(polineitem.FieldItemDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timeline(); ok {
		_spec.SetField(polineitem.FieldTimeline, field.TypeString, value)
	}
	if value, ok := _u.mutation.RateType(); ok {
		_spec.SetField(polineitem.FieldRateType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(polineitem.FieldTotalPrice, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemSerialNo(); ok {
		_spec.SetField(polineitem.FieldItemSerialNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemCode(); ok {
		_spec.SetField(polineitem.FieldItemCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(polineitem.FieldQuantity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Uom(); ok {
		_spec.SetField(polineitem.FieldUom, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(polineitem.FieldUnitPrice, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageNo(); ok {
		_spec.SetField(polineitem.FieldPageNo, field.TypeString, value)
	}
	if _u.mutation.HeaderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   polineitem.HeaderTable,
			Columns: []string{polineitem.HeaderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poheader.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HeaderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   polineitem.HeaderTable,
			Columns: []string{polineitem.HeaderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poheader.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &POLineItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{polineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
