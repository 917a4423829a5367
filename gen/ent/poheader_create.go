// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"po-tracker/gen/ent/extractjob"
	"po-tracker/gen/ent/poheader"
	"po-tracker/gen/ent/polineitem"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// POHeaderCreate is the builder for creating a POHeader entity.
type POHeaderCreate struct {
	config
	mutation *POHeaderMutation
	hooks    []Hook
}

// SetPoNumber sets the "po_number" field.
func (_c *POHeaderCreate) SetPoNumber(v string) *POHeaderCreate {
	_c.mutation.SetPoNumber(v)
	return _c
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillablePoNumber(v *string) *POHeaderCreate {
	if v != nil {
		_c.SetPoNumber(*v)
	}
	return _c
}

// SetPoDate sets the "po_date" field.
func (_c *POHeaderCreate) SetPoDate(v time.Time) *POHeaderCreate {
	_c.mutation.SetPoDate(v)
	return _c
}

// SetNillablePoDate sets the "po_date" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillablePoDate(v *time.Time) *POHeaderCreate {
	if v != nil {
		_c.SetPoDate(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *POHeaderCreate) SetDueDate(v time.Time) *POHeaderCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableDueDate(v *time.Time) *POHeaderCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetBuyerInfo sets the "buyer_info" field.
func (_c *POHeaderCreate) SetBuyerInfo(v string) *POHeaderCreate {
	_c.mutation.SetBuyerInfo(v)
	return _c
}

// SetNillableBuyerInfo sets the "buyer_info" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableBuyerInfo(v *string) *POHeaderCreate {
	if v != nil {
		_c.SetBuyerInfo(*v)
	}
	return _c
}

// SetBillTo sets the "bill_to" field.
func (_c *POHeaderCreate) SetBillTo(v string) *POHeaderCreate {
	_c.mutation.SetBillTo(v)
	return _c
}

// SetNillableBillTo sets the "bill_to" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableBillTo(v *string) *POHeaderCreate {
	if v != nil {
		_c.SetBillTo(*v)
	}
	return _c
}

// SetVendorID sets the "vendor_id" field.
func (_c *POHeaderCreate) SetVendorID(v string) *POHeaderCreate {
	_c.mutation.SetVendorID(v)
	return _c
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableVendorID(v *string) *POHeaderCreate {
	if v != nil {
		_c.SetVendorID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *POHeaderCreate) SetName(v string) *POHeaderCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableName(v *string) *POHeaderCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *POHeaderCreate) SetAddress(v string) *POHeaderCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableAddress(v *string) *POHeaderCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetContact sets the "contact" field.
func (_c *POHeaderCreate) SetContact(v string) *POHeaderCreate {
	_c.mutation.SetContact(v)
	return _c
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableContact(v *string) *POHeaderCreate {
	if v != nil {
		_c.SetContact(*v)
	}
	return _c
}

// SetShipTo sets the "ship_to" field.
func (_c *POHeaderCreate) SetShipTo(v string) *POHeaderCreate {
	_c.mutation.SetShipTo(v)
	return _c
}

// SetNillableShipTo sets the "ship_to" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableShipTo(v *string) *POHeaderCreate {
	if v != nil {
		_c.SetShipTo(*v)
	}
	return _c
}

// SetShipFrom sets the "ship_from" field.
func (_c *POHeaderCreate) SetShipFrom(v string) *POHeaderCreate {
	_c.mutation.SetShipFrom(v)
	return _c
}

// SetNillableShipFrom sets the "ship_from" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableShipFrom(v *string) *POHeaderCreate {
	if v != nil {
		_c.SetShipFrom(*v)
	}
	return _c
}

// SetShipDate sets the "ship_date" field.
func (_c *POHeaderCreate) SetShipDate(v time.Time) *POHeaderCreate {
	_c.mutation.SetShipDate(v)
	return _c
}

// SetNillableShipDate sets the "ship_date" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableShipDate(v *time.Time) *POHeaderCreate {
	if v != nil {
		_c.SetShipDate(*v)
	}
	return _c
}

// SetShipVia sets the "ship_via" field.
func (_c *POHeaderCreate) SetShipVia(v string) *POHeaderCreate {
	_c.mutation.SetShipVia(v)
	return _c
}

// SetNillableShipVia sets the "ship_via" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableShipVia(v *string) *POHeaderCreate {
	if v != nil {
		_c.SetShipVia(*v)
	}
	return _c
}

// SetShippingInstruction sets the "shipping_instruction" field.
func (_c *POHeaderCreate) SetShippingInstruction(v string) *POHeaderCreate {
	_c.mutation.SetShippingInstruction(v)
	return _c
}

// SetNillableShippingInstruction sets the "shipping_instruction" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableShippingInstruction(v *string) *POHeaderCreate {
	if v != nil {
		_c.SetShippingInstruction(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *POHeaderCreate) SetTotalAmount(v float64) *POHeaderCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableTotalAmount(v *float64) *POHeaderCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetPoDocName sets the "po_doc_name" field.
func (_c *POHeaderCreate) SetPoDocName(v string) *POHeaderCreate {
	_c.mutation.SetPoDocName(v)
	return _c
}

// SetResponseMs sets the "response_ms" field.
func (_c *POHeaderCreate) SetResponseMs(v int64) *POHeaderCreate {
	_c.mutation.SetResponseMs(v)
	return _c
}

// SetNillableResponseMs sets the "response_ms" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableResponseMs(v *int64) *POHeaderCreate {
	if v != nil {
		_c.SetResponseMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *POHeaderCreate) SetCreatedAt(v time.Time) *POHeaderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableCreatedAt(v *time.Time) *POHeaderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *POHeaderCreate) SetID(v uuid.UUID) *POHeaderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *POHeaderCreate) SetNillableID(v *uuid.UUID) *POHeaderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddLineItemIDs adds the "line_items" edge to the POLineItem entity by IDs.
func (_c *POHeaderCreate) AddLineItemIDs(ids ...uuid.UUID) *POHeaderCreate {
	_c.mutation.AddLineItemIDs(ids...)
	return _c
}

// AddLineItems adds the "line_items" edges to the POLineItem entity.
func (_c *POHeaderCreate) AddLineItems(v ...*POLineItem) *POHeaderCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLineItemIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *POHeaderCreate) AddJobIDs(ids ...uuid.UUID) *POHeaderCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *POHeaderCreate) AddJobs(v ...*ExtractJob) *POHeaderCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the POHeaderMutation object of the builder.
func (_c *POHeaderCreate) Mutation() *POHeaderMutation {
	return _c.mutation
}

// Save creates the POHeader in the database.
func (_c *POHeaderCreate) Save(ctx context.Context) (*POHeader, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *POHeaderCreate) SaveX(ctx context.Context) *POHeader {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *POHeaderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *POHeaderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *POHeaderCreate) defaults() {
	if _, ok := _c.mutation.PoNumber(); !ok {
		v := poheader.DefaultPoNumber
		_c.mutation.SetPoNumber(v)
	}
	if _, ok := _c.mutation.BuyerInfo(); !ok {
		v := poheader.DefaultBuyerInfo
		_c.mutation.SetBuyerInfo(v)
	}
	if _, ok := _c.mutation.BillTo(); !ok {
		v := poheader.DefaultBillTo
		_c.mutation.SetBillTo(v)
	}
	if _, ok := _c.mutation.VendorID(); !ok {
		v := poheader.DefaultVendorID
		_c.mutation.SetVendorID(v)
	}
	if _, ok := _c.mutation.Name(); !ok {
		v := poheader.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.Address(); !ok {
		v := poheader.DefaultAddress
		_c.mutation.SetAddress(v)
	}
	if _, ok := _c.mutation.Contact(); !ok {
		v := poheader.DefaultContact
		_c.mutation.SetContact(v)
	}
	if _, ok := _c.mutation.ShipTo(); !ok {
		v := poheader.DefaultShipTo
		_c.mutation.SetShipTo(v)
	}
	if _, ok := _c.mutation.ShipFrom(); !ok {
		v := poheader.DefaultShipFrom
		_c.mutation.SetShipFrom(v)
	}
	if _, ok := _c.mutation.ShipVia(); !ok {
		v := poheader.DefaultShipVia
		_c.mutation.SetShipVia(v)
	}
	if _, ok := _c.mutation.ShippingInstruction(); !ok {
		v := poheader.DefaultShippingInstruction
		_c.mutation.SetShippingInstruction(v)
	}
	if _, ok := _c.mutation.ResponseMs(); !ok {
		v := poheader.DefaultResponseMs
		_c.mutation.SetResponseMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := poheader.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := poheader.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *POHeaderCreate) check() error {
	if _, ok := _c.mutation.PoNumber(); !ok {
		return &ValidationError{Name: "po_number", err: errors.New(`ent: missing required field "POHeader.po_number"`)}
	}
	if _, ok := _c.mutation.BuyerInfo(); !ok {
		return &ValidationError{Name: "buyer_info", err: errors.New(`ent: missing required field "POHeader.buyer_info"`)}
	}
	if _, ok := _c.mutation.BillTo(); !ok {
		return &ValidationError{Name: "bill_to", err: errors.New(`ent: missing required field "POHeader.bill_to"`)}
	}
	if _, ok := _c.mutation.VendorID(); !ok {
		return &ValidationError{Name: "vendor_id", err: errors.New(`ent: missing required field "POHeader.vendor_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "POHeader.name"`)}
	}
	if _, ok := _c.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`ent: missing required field "POHeader.address"`)}
	}
	if _, ok := _c.mutation.Contact(); !ok {
		return &ValidationError{Name: "contact", err: errors.New(`ent: missing required field "POHeader.contact"`)}
	}
	if _, ok := _c.mutation.ShipTo(); !ok {
		return &ValidationError{Name: "ship_to", err: errors.New(`ent: missing required field "POHeader.ship_to"`)}
	}
	if _, ok := _c.mutation.ShipFrom(); !ok {
		return &ValidationError{Name: "ship_from", err: errors.New(`ent: missing required field "POHeader.ship_from"`)}
	}
	if _, ok := _c.mutation.ShipVia(); !ok {
		return &ValidationError{Name: "ship_via", err: errors.New(`ent: missing required field "POHeader.ship_via"`)}
	}
	if _, ok := _c.mutation.ShippingInstruction(); !ok {
		return &ValidationError{Name: "shipping_instruction", err: errors.New(`ent: missing required field "POHeader.shipping_instruction"`)}
	}
	if _, ok := _c.mutation.PoDocName(); !ok {
		return &ValidationError{Name: "po_doc_name", err: errors.New(`ent: missing required field "POHeader.po_doc_name"`)}
	}
	if v, ok := _c.mutation.PoDocName(); ok {
		if err := poheader.PoDocNameValidator(v); err != nil {
			return &ValidationError{Name: "po_doc_name", err: fmt.Errorf(`ent: validator failed for field "POHeader.po_doc_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResponseMs(); !ok {
		return &ValidationError{Name: "response_ms", err: errors.New(`ent: missing required field "POHeader.response_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "POHeader.created_at"`)}
	}
	return nil
}

func (_c *POHeaderCreate) sqlSave(ctx context.Context) (*POHeader, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *POHeaderCreate) createSpec() (*POHeader, *sqlgraph.CreateSpec) {
	var (
		_node = &POHeader{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(poheader.Table, sqlgraph.NewFieldSpec(poheader.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PoNumber(); ok {
		_spec.SetField(poheader.FieldPoNumber, field.TypeString, value)
		_node.PoNumber = value
	}
	if value, ok := _c.mutation.PoDate(); ok {
		_spec.SetField(poheader.FieldPoDate, field.TypeTime, value)
		_node.PoDate = &value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(poheader.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.BuyerInfo(); ok {
		_spec.SetField(poheader.FieldBuyerInfo, field.TypeString, value)
		_node.BuyerInfo = value
	}
	if value, ok := _c.mutation.BillTo(); ok {
		_spec.SetField(poheader.FieldBillTo, field.TypeString, value)
		_node.BillTo = value
	}
	if value, ok := _c.mutation.VendorID(); ok {
		_spec.SetField(poheader.FieldVendorID, field.TypeString, value)
		_node.VendorID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(poheader.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(poheader.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Contact(); ok {
		_spec.SetField(poheader.FieldContact, field.TypeString, value)
		_node.Contact = value
	}
	if value, ok := _c.mutation.ShipTo(); ok {
		_spec.SetField(poheader.FieldShipTo, field.TypeString, value)
		_node.ShipTo = value
	}
	if value, ok := _c.mutation.ShipFrom(); ok {
		_spec.SetField(poheader.FieldShipFrom, field.TypeString, value)
		_node.ShipFrom = value
	}
	if value, ok := _c.mutation.ShipDate(); ok {
		_spec.SetField(poheader.FieldShipDate, field.TypeTime, value)
		_node.ShipDate = &value
	}
	if value, ok := _c.mutation.ShipVia(); ok {
		_spec.SetField(poheader.FieldShipVia, field.TypeString, value)
		_node.ShipVia = value
	}
	if value, ok := _c.mutation.ShippingInstruction(); ok {
		_spec.SetField(poheader.FieldShippingInstruction, field.TypeString, value)
		_node.ShippingInstruction = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(poheader.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.PoDocName(); ok {
		_spec.SetField(poheader.FieldPoDocName, field.TypeString, value)
		_node.PoDocName = value
	}
	if value, ok := _c.mutation.ResponseMs(); ok {
		_spec.SetField(poheader.FieldResponseMs, field.TypeInt64, value)
		_node.ResponseMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(poheader.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LineItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// POHeaderCreateBulk is the builder for creating many POHeader entities in bulk.
type POHeaderCreateBulk struct {
	config
	err      error
	builders []*POHeaderCreate
}

// Save creates the POHeader entities in the database.
func (_c *POHeaderCreateBulk) Save(ctx context.Context) ([]*POHeader, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*POHeader, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*POHeaderMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *POHeaderCreateBulk) SaveX(ctx context.Context) []*POHeader {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *POHeaderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *POHeaderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
