// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"po-tracker/gen/ent/poheader"
	"po-tracker/gen/ent/polineitem"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// POLineItemCreate is the builder for creating a POLineItem entity.
type POLineItemCreate struct {
	config
	mutation *POLineItemMutation
	hooks    []Hook
}

// SetPoNumber sets the "po_number" field.
func (_c *POLineItemCreate) SetPoNumber(v string) *POLineItemCreate {
	_c.mutation.SetPoNumber(v)
	return _c
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillablePoNumber(v *string) *POLineItemCreate {
	if v != nil {
		_c.SetPoNumber(*v)
	}
	return _c
}

// SetPoDocName sets the "po_doc_name" field.
func (_c *POLineItemCreate) SetPoDocName(v string) *POLineItemCreate {
	_c.mutation.SetPoDocName(v)
	return _c
}

// SetResponseMs sets the "response_ms" field.
func (_c *POLineItemCreate) SetResponseMs(v int64) *POLineItemCreate {
	_c.mutation.SetResponseMs(v)
	return _c
}

// SetNillableResponseMs sets the "response_ms" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillableResponseMs(v *int64) *POLineItemCreate {
	if v != nil {
		_c.SetResponseMs(*v)
	}
	return _c
}

// SetItemDescription sets the "item_description" field.
func (_c *POLineItemCreate) SetItemDescription(v string) *POLineItemCreate {
	_c.mutation.SetItemDescription(v)
	return _c
}

// SetNillableItemDescription sets the "item_description" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillableItemDescription(v *string) *POLineItemCreate {
	if v != nil {
		_c.SetItemDescription(*v)
	}
	return _c
}

// SetTimeline sets the "timeline" field.
func (_c *POLineItemCreate) SetTimeline(v string) *POLineItemCreate {
	_c.mutation.SetTimeline(v)
	return _c
}

// SetNillableTimeline sets the "timeline" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillableTimeline(v *string) *POLineItemCreate {
	if v != nil {
		_c.SetTimeline(*v)
	}
	return _c
}

// SetRateType sets the "rate_type" field.
func (_c *POLineItemCreate) SetRateType(v string) *POLineItemCreate {
	_c.mutation.SetRateType(v)
	return _c
}

// SetNillableRateType sets the "rate_type" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillableRateType(v *string) *POLineItemCreate {
	if v != nil {
		_c.SetRateType(*v)
	}
	return _c
}

// SetTotalPrice sets the "total_price" field.
func (_c *POLineItemCreate) SetTotalPrice(v string) *POLineItemCreate {
	_c.mutation.SetTotalPrice(v)
	return _c
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillableTotalPrice(v *string) *POLineItemCreate {
	if v != nil {
		_c.SetTotalPrice(*v)
	}
	return _c
}

// SetItemSerialNo sets the "item_serial_no" field.
func (_c *POLineItemCreate) SetItemSerialNo(v string) *POLineItemCreate {
	_c.mutation.SetItemSerialNo(v)
	return _c
}

// SetNillableItemSerialNo sets the "item_serial_no" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillableItemSerialNo(v *string) *POLineItemCreate {
	if v != nil {
		_c.SetItemSerialNo(*v)
	}
	return _c
}

// SetItemCode sets the "item_code" field.
func (_c *POLineItemCreate) SetItemCode(v string) *POLineItemCreate {
	_c.mutation.SetItemCode(v)
	return _c
}

// SetNillableItemCode sets the "item_code" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillableItemCode(v *string) *POLineItemCreate {
	if v != nil {
		_c.SetItemCode(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *POLineItemCreate) SetQuantity(v string) *POLineItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillableQuantity(v *string) *POLineItemCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetUom sets the "uom" field.
func (_c *POLineItemCreate) SetUom(v string) *POLineItemCreate {
	_c.mutation.SetUom(v)
	return _c
}

// SetNillableUom sets the "uom" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillableUom(v *string) *POLineItemCreate {
	if v != nil {
		_c.SetUom(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *POLineItemCreate) SetUnitPrice(v string) *POLineItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillableUnitPrice(v *string) *POLineItemCreate {
	if v != nil {
		_c.SetUnitPrice(*v)
	}
	return _c
}

// SetPageNo sets the "page_no" field.
func (_c *POLineItemCreate) SetPageNo(v string) *POLineItemCreate {
	_c.mutation.SetPageNo(v)
	return _c
}

// SetNillablePageNo sets the "page_no" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillablePageNo(v *string) *POLineItemCreate {
	if v != nil {
		_c.SetPageNo(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *POLineItemCreate) SetCreatedAt(v time.Time) *POLineItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillableCreatedAt(v *time.Time) *POLineItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *POLineItemCreate) SetID(v uuid.UUID) *POLineItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *POLineItemCreate) SetNillableID(v *uuid.UUID) *POLineItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetHeaderID sets the "header" edge to the POHeader entity by ID.
func (_c *POLineItemCreate) SetHeaderID(id uuid.UUID) *POLineItemCreate {
	_c.mutation.SetHeaderID(id)
	return _c
}

// SetNillableHeaderID sets the "header" edge to the POHeader entity by ID if the given value is not nil.
func (_c *POLineItemCreate) SetNillableHeaderID(id *uuid.UUID) *POLineItemCreate {
	if id != nil {
		_c = _c.SetHeaderID(*id)
	}
	return _c
}

// SetHeader sets the "header" edge to the POHeader entity.
func (_c *POLineItemCreate) SetHeader(v *POHeader) *POLineItemCreate {
	return _c.SetHeaderID(v.ID)
}

// Mutation returns the POLineItemMutation object of the builder.
func (_c *POLineItemCreate) Mutation() *POLineItemMutation {
	return _c.mutation
}

// Save creates the POLineItem in the database.
func (_c *POLineItemCreate) Save(ctx context.Context) (*POLineItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *POLineItemCreate) SaveX(ctx context.Context) *POLineItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *POLineItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *POLineItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *POLineItemCreate) defaults() {
	if _, ok := _c.mutation.PoNumber(); !ok {
		v := polineitem.DefaultPoNumber
		_c.mutation.SetPoNumber(v)
	}
	if _, ok := _c.mutation.ResponseMs(); !ok {
		v := polineitem.DefaultResponseMs
		_c.mutation.SetResponseMs(v)
	}
	if _, ok := _c.mutation.ItemDescription(); !ok {
		v := polineitem.DefaultItemDescription
		_c.mutation.SetItemDescription(v)
	}
	if _, ok := _c.mutation.Timeline(); !ok {
		v := polineitem.DefaultTimeline
		_c.mutation.SetTimeline(v)
	}
	if _, ok := _c.mutation.RateType(); !ok {
		v := polineitem.DefaultRateType
		_c.mutation.SetRateType(v)
	}
	if _, ok := _c.mutation.TotalPrice(); !ok {
		v := polineitem.DefaultTotalPrice
		_c.mutation.SetTotalPrice(v)
	}
	if _, ok := _c.mutation.ItemSerialNo(); !ok {
		v := polineitem.DefaultItemSerialNo
		_c.mutation.SetItemSerialNo(v)
	}
	if _, ok := _c.mutation.ItemCode(); !ok {
		v := polineitem.DefaultItemCode
		_c.mutation.SetItemCode(v)
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		v := polineitem.DefaultQuantity
		_c.mutation.SetQuantity(v)
	}
	if _, ok := _c.mutation.Uom(); !ok {
		v := polineitem.DefaultUom
		_c.mutation.SetUom(v)
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		v := polineitem.DefaultUnitPrice
		_c.mutation.SetUnitPrice(v)
	}
	if _, ok := _c.mutation.PageNo(); !ok {
		v := polineitem.DefaultPageNo
		_c.mutation.SetPageNo(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := polineitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := polineitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *POLineItemCreate) check() error {
	if _, ok := _c.mutation.PoNumber(); !ok {
		return &ValidationError{Name: "po_number", err: errors.New(`ent: missing required field "POLineItem.po_number"`)}
	}
	if _, ok := _c.mutation.PoDocName(); !ok {
		return &ValidationError{Name: "po_doc_name", err: errors.New(`ent: missing required field "POLineItem.po_doc_name"`)}
	}
	if v, ok := _c.mutation.PoDocName(); ok {
		if err := polineitem.PoDocNameValidator(v); err != nil {
			return &ValidationError{Name: "po_doc_name", err: fmt.Errorf(`ent: validator failed for field "POLineItem.po_doc_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResponseMs(); !ok {
		return &ValidationError{Name: "response_ms", err: errors.New(`ent: missing required field "POLineItem.response_ms"`)}
	}
	if _, ok := _c.mutation.ItemDescription(); !ok {
		return &ValidationError{Name: "item_description", err: errors.New(`ent: missing required field "POLineItem.item_description"`)}
	}
	if _, ok := _c.mutation.Timeline(); !ok {
		return &ValidationError{Name: "timeline", err: errors.New(`ent: missing required field "POLineItem.timeline"`)}
	}
	if _, ok := _c.mutation.RateType(); !ok {
		return &ValidationError{Name: "rate_type", err: errors.New(`ent: missing required field "POLineItem.rate_type"`)}
	}
	if _, ok := _c.mutation.TotalPrice(); !ok {
		return &ValidationError{Name: "total_price", err: errors.New(`ent: missing required field "POLineItem.total_price"`)}
	}
	if _, ok := _c.mutation.ItemSerialNo(); !ok {
		return &ValidationError{Name: "item_serial_no", err: errors.New(`ent: missing required field "POLineItem.item_serial_no"`)}
	}
	if _, ok := _c.mutation.ItemCode(); !ok {
		return &ValidationError{Name: "item_code", err: errors.New(`ent: missing required field "POLineItem.item_code"`)}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "POLineItem.quantity"`)}
	}
	if _, ok := _c.mutation.Uom(); !ok {
		return &ValidationError{Name: "uom", err: errors.New(`ent: missing required field "POLineItem.uom"`)}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`ent: missing required field "POLineItem.unit_price"`)}
	}
	if _, ok := _c.mutation.PageNo(); !ok {
		return &ValidationError{Name: "page_no", err: errors.New(`ent: missing required field "POLineItem.page_no"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "POLineItem.created_at"`)}
	}
	return nil
}

func (_c *POLineItemCreate) sqlSave(ctx context.Context) (*POLineItem, error) {
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

func (_c *POLineItemCreate) createSpec() (*POLineItem, *sqlgraph.CreateSpec) {
	var (
		_node = &POLineItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(polineitem.Table, sqlgraph.NewFieldSpec(polineitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PoNumber(); ok {
		_spec.SetField(polineitem.FieldPoNumber, field.TypeString, value)
		_node.PoNumber = value
	}
	if value, ok := _c.mutation.PoDocName(); ok {
		_spec.SetField(polineitem.FieldPoDocName, field.TypeString, value)
		_node.PoDocName = value
	}
	if value, ok := _c.mutation.ResponseMs(); ok {
		_spec.SetField(polineitem.FieldResponseMs, field.TypeInt64, value)
		_node.ResponseMs = value
	}
	if value, ok := _c.mutation.ItemDescription(); ok {
		_spec.SetField(polineitem.FieldItemDescription, field.TypeString, value)
		_node.ItemDescription = value
	}
	if value, ok := _c.mutation.Timeline(); ok {
		_spec.SetField(polineitem.FieldTimeline, field.TypeString, value)
		_node.Timeline = value
	}
	if value, ok := _c.mutation.RateType(); ok {
		_spec.SetField(polineitem.FieldRateType, field.TypeString, value)
		_node.RateType = value
	}
	if value, ok := _c.mutation.TotalPrice(); ok {
		_spec.SetField(polineitem.FieldTotalPrice, field.TypeString, value)
		_node.TotalPrice = value
	}
	if value, ok := _c.mutation.ItemSerialNo(); ok {
		_spec.SetField(polineitem.FieldItemSerialNo, field.TypeString, value)
		_node.ItemSerialNo = value
	}
	if value, ok := _c.mutation.ItemCode(); ok {
		_spec.SetField(polineitem.FieldItemCode, field.TypeString, value)
		_node.ItemCode = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(polineitem.FieldQuantity, field.TypeString, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Uom(); ok {
		_spec.SetField(polineitem.FieldUom, field.TypeString, value)
		_node.Uom = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(polineitem.FieldUnitPrice, field.TypeString, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.PageNo(); ok {
		_spec.SetField(polineitem.FieldPageNo, field.TypeString, value)
		_node.PageNo = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(polineitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.HeaderIDs(); len(nodes) > 0 {
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
		_node.po_header_line_items = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// POLineItemCreateBulk is the builder for creating many POLineItem entities in bulk.
type POLineItemCreateBulk struct {
	config
	err      error
	builders []*POLineItemCreate
}

// Save creates the POLineItem entities in the database.
func (_c *POLineItemCreateBulk) Save(ctx context.Context) ([]*POLineItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*POLineItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*POLineItemMutation)
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
func (_c *POLineItemCreateBulk) SaveX(ctx context.Context) []*POLineItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *POLineItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *POLineItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
