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
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractJob = "ExtractJob"
	TypePOHeader   = "POHeader"
	TypePOLineItem = "POLineItem"
)

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	po_doc_name   *string
	status        *string
	model_name    *string
	raw_response  *[]byte
	error_message *string
	started_at    *time.Time
	finished_at   *time.Time
	clearedFields map[string]struct{}
	header        *uuid.UUID
	clearedheader bool
	done          bool
	oldValue      func(context.Context) (*ExtractJob, error)
	predicates    []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHeaderID sets the "header_id" field.
func (m *ExtractJobMutation) SetHeaderID(u uuid.UUID) {
	m.header = &u
}

// HeaderID returns the value of the "header_id" field in the mutation.
func (m *ExtractJobMutation) HeaderID() (r uuid.UUID, exists bool) {
	v := m.header
	if v == nil {
		return
	}
	return *v, true
}

// OldHeaderID returns the old "header_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldHeaderID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeaderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeaderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeaderID: %w", err)
	}
	return oldValue.HeaderID, nil
}

// ClearHeaderID clears the value of the "header_id" field.
func (m *ExtractJobMutation) ClearHeaderID() {
	m.header = nil
	m.clearedFields[extractjob.FieldHeaderID] = struct{}{}
}

// HeaderIDCleared returns if the "header_id" field was cleared in this mutation.
func (m *ExtractJobMutation) HeaderIDCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldHeaderID]
	return ok
}

// ResetHeaderID resets all changes to the "header_id" field.
func (m *ExtractJobMutation) ResetHeaderID() {
	m.header = nil
	delete(m.clearedFields, extractjob.FieldHeaderID)
}

// SetPoDocName sets the "po_doc_name" field.
func (m *ExtractJobMutation) SetPoDocName(s string) {
	m.po_doc_name = &s
}

// PoDocName returns the value of the "po_doc_name" field in the mutation.
func (m *ExtractJobMutation) PoDocName() (r string, exists bool) {
	v := m.po_doc_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPoDocName returns the old "po_doc_name" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldPoDocName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoDocName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoDocName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoDocName: %w", err)
	}
	return oldValue.PoDocName, nil
}

// ResetPoDocName resets all changes to the "po_doc_name" field.
func (m *ExtractJobMutation) ResetPoDocName() {
	m.po_doc_name = nil
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
}

// SetModelName sets the "model_name" field.
func (m *ExtractJobMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractJobMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractJobMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extractjob.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractJobMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractJobMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extractjob.FieldModelName)
}

// SetRawResponse sets the "raw_response" field.
func (m *ExtractJobMutation) SetRawResponse(b []byte) {
	m.raw_response = &b
}

// RawResponse returns the value of the "raw_response" field in the mutation.
func (m *ExtractJobMutation) RawResponse() (r []byte, exists bool) {
	v := m.raw_response
	if v == nil {
		return
	}
	return *v, true
}

// OldRawResponse returns the old "raw_response" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldRawResponse(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawResponse: %w", err)
	}
	return oldValue.RawResponse, nil
}

// ClearRawResponse clears the value of the "raw_response" field.
func (m *ExtractJobMutation) ClearRawResponse() {
	m.raw_response = nil
	m.clearedFields[extractjob.FieldRawResponse] = struct{}{}
}

// RawResponseCleared returns if the "raw_response" field was cleared in this mutation.
func (m *ExtractJobMutation) RawResponseCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldRawResponse]
	return ok
}

// ResetRawResponse resets all changes to the "raw_response" field.
func (m *ExtractJobMutation) ResetRawResponse() {
	m.raw_response = nil
	delete(m.clearedFields, extractjob.FieldRawResponse)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// ClearHeader clears the "header" edge to the POHeader entity.
func (m *ExtractJobMutation) ClearHeader() {
	m.clearedheader = true
	m.clearedFields[extractjob.FieldHeaderID] = struct{}{}
}

// HeaderCleared reports if the "header" edge to the POHeader entity was cleared.
func (m *ExtractJobMutation) HeaderCleared() bool {
	return m.HeaderIDCleared() || m.clearedheader
}

// HeaderIDs returns the "header" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HeaderID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) HeaderIDs() (ids []uuid.UUID) {
	if id := m.header; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHeader resets all changes to the "header" edge.
func (m *ExtractJobMutation) ResetHeader() {
	m.header = nil
	m.clearedheader = false
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.header != nil {
		fields = append(fields, extractjob.FieldHeaderID)
	}
	if m.po_doc_name != nil {
		fields = append(fields, extractjob.FieldPoDocName)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.model_name != nil {
		fields = append(fields, extractjob.FieldModelName)
	}
	if m.raw_response != nil {
		fields = append(fields, extractjob.FieldRawResponse)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldHeaderID:
		return m.HeaderID()
	case extractjob.FieldPoDocName:
		return m.PoDocName()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldModelName:
		return m.ModelName()
	case extractjob.FieldRawResponse:
		return m.RawResponse()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldHeaderID:
		return m.OldHeaderID(ctx)
	case extractjob.FieldPoDocName:
		return m.OldPoDocName(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldModelName:
		return m.OldModelName(ctx)
	case extractjob.FieldRawResponse:
		return m.OldRawResponse(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldHeaderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeaderID(v)
		return nil
	case extractjob.FieldPoDocName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoDocName(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case extractjob.FieldRawResponse:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawResponse(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldHeaderID) {
		fields = append(fields, extractjob.FieldHeaderID)
	}
	if m.FieldCleared(extractjob.FieldModelName) {
		fields = append(fields, extractjob.FieldModelName)
	}
	if m.FieldCleared(extractjob.FieldRawResponse) {
		fields = append(fields, extractjob.FieldRawResponse)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldHeaderID:
		m.ClearHeaderID()
		return nil
	case extractjob.FieldModelName:
		m.ClearModelName()
		return nil
	case extractjob.FieldRawResponse:
		m.ClearRawResponse()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldHeaderID:
		m.ResetHeaderID()
		return nil
	case extractjob.FieldPoDocName:
		m.ResetPoDocName()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldModelName:
		m.ResetModelName()
		return nil
	case extractjob.FieldRawResponse:
		m.ResetRawResponse()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.header != nil {
		edges = append(edges, extractjob.EdgeHeader)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeHeader:
		if id := m.header; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedheader {
		edges = append(edges, extractjob.EdgeHeader)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeHeader:
		return m.clearedheader
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeHeader:
		m.ClearHeader()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeHeader:
		m.ResetHeader()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}

// POHeaderMutation represents an operation that mutates the POHeader nodes in the graph.
type POHeaderMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	po_number            *string
	po_date              *time.Time
	due_date             *time.Time
	buyer_info           *string
	bill_to              *string
	vendor_id            *string
	name                 *string
	address              *string
	contact              *string
	ship_to              *string
	ship_from            *string
	ship_date            *time.Time
	ship_via             *string
	shipping_instruction *string
	total_amount         *float64
	addtotal_amount      *float64
	po_doc_name          *string
	response_ms          *int64
	addresponse_ms       *int64
	created_at           *time.Time
	clearedFields        map[string]struct{}
	line_items           map[uuid.UUID]struct{}
	removedline_items    map[uuid.UUID]struct{}
	clearedline_items    bool
	jobs                 map[uuid.UUID]struct{}
	removedjobs          map[uuid.UUID]struct{}
	clearedjobs          bool
	done                 bool
	oldValue             func(context.Context) (*POHeader, error)
	predicates           []predicate.POHeader
}

var _ ent.Mutation = (*POHeaderMutation)(nil)

// poheaderOption allows management of the mutation configuration using functional options.
type poheaderOption func(*POHeaderMutation)

// newPOHeaderMutation creates new mutation for the POHeader entity.
func newPOHeaderMutation(c config, op Op, opts ...poheaderOption) *POHeaderMutation {
	m := &POHeaderMutation{
		config:        c,
		op:            op,
		typ:           TypePOHeader,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPOHeaderID sets the ID field of the mutation.
func withPOHeaderID(id uuid.UUID) poheaderOption {
	return func(m *POHeaderMutation) {
		var (
			err   error
			once  sync.Once
			value *POHeader
		)
		m.oldValue = func(ctx context.Context) (*POHeader, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().POHeader.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPOHeader sets the old POHeader of the mutation.
func withPOHeader(node *POHeader) poheaderOption {
	return func(m *POHeaderMutation) {
		m.oldValue = func(context.Context) (*POHeader, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m POHeaderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m POHeaderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of POHeader entities.
func (m *POHeaderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *POHeaderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *POHeaderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().POHeader.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPoNumber sets the "po_number" field.
func (m *POHeaderMutation) SetPoNumber(s string) {
	m.po_number = &s
}

// PoNumber returns the value of the "po_number" field in the mutation.
func (m *POHeaderMutation) PoNumber() (r string, exists bool) {
	v := m.po_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPoNumber returns the old "po_number" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldPoNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoNumber: %w", err)
	}
	return oldValue.PoNumber, nil
}

// ResetPoNumber resets all changes to the "po_number" field.
func (m *POHeaderMutation) ResetPoNumber() {
	m.po_number = nil
}

// SetPoDate sets the "po_date" field.
func (m *POHeaderMutation) SetPoDate(t time.Time) {
	m.po_date = &t
}

// PoDate returns the value of the "po_date" field in the mutation.
func (m *POHeaderMutation) PoDate() (r time.Time, exists bool) {
	v := m.po_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPoDate returns the old "po_date" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldPoDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoDate: %w", err)
	}
	return oldValue.PoDate, nil
}

// ClearPoDate clears the value of the "po_date" field.
func (m *POHeaderMutation) ClearPoDate() {
	m.po_date = nil
	m.clearedFields[poheader.FieldPoDate] = struct{}{}
}

// PoDateCleared returns if the "po_date" field was cleared in this mutation.
func (m *POHeaderMutation) PoDateCleared() bool {
	_, ok := m.clearedFields[poheader.FieldPoDate]
	return ok
}

// ResetPoDate resets all changes to the "po_date" field.
func (m *POHeaderMutation) ResetPoDate() {
	m.po_date = nil
	delete(m.clearedFields, poheader.FieldPoDate)
}

// SetDueDate sets the "due_date" field.
func (m *POHeaderMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *POHeaderMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *POHeaderMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[poheader.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *POHeaderMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[poheader.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *POHeaderMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, poheader.FieldDueDate)
}

// SetBuyerInfo sets the "buyer_info" field.
func (m *POHeaderMutation) SetBuyerInfo(s string) {
	m.buyer_info = &s
}

// BuyerInfo returns the value of the "buyer_info" field in the mutation.
func (m *POHeaderMutation) BuyerInfo() (r string, exists bool) {
	v := m.buyer_info
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerInfo returns the old "buyer_info" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldBuyerInfo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerInfo: %w", err)
	}
	return oldValue.BuyerInfo, nil
}

// ResetBuyerInfo resets all changes to the "buyer_info" field.
func (m *POHeaderMutation) ResetBuyerInfo() {
	m.buyer_info = nil
}

// SetBillTo sets the "bill_to" field.
func (m *POHeaderMutation) SetBillTo(s string) {
	m.bill_to = &s
}

// BillTo returns the value of the "bill_to" field in the mutation.
func (m *POHeaderMutation) BillTo() (r string, exists bool) {
	v := m.bill_to
	if v == nil {
		return
	}
	return *v, true
}

// OldBillTo returns the old "bill_to" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldBillTo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillTo: %w", err)
	}
	return oldValue.BillTo, nil
}

// ResetBillTo resets all changes to the "bill_to" field.
func (m *POHeaderMutation) ResetBillTo() {
	m.bill_to = nil
}

// SetVendorID sets the "vendor_id" field.
func (m *POHeaderMutation) SetVendorID(s string) {
	m.vendor_id = &s
}

// VendorID returns the value of the "vendor_id" field in the mutation.
func (m *POHeaderMutation) VendorID() (r string, exists bool) {
	v := m.vendor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorID returns the old "vendor_id" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldVendorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorID: %w", err)
	}
	return oldValue.VendorID, nil
}

// ResetVendorID resets all changes to the "vendor_id" field.
func (m *POHeaderMutation) ResetVendorID() {
	m.vendor_id = nil
}

// SetName sets the "name" field.
func (m *POHeaderMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *POHeaderMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *POHeaderMutation) ResetName() {
	m.name = nil
}

// SetAddress sets the "address" field.
func (m *POHeaderMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *POHeaderMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ResetAddress resets all changes to the "address" field.
func (m *POHeaderMutation) ResetAddress() {
	m.address = nil
}

// SetContact sets the "contact" field.
func (m *POHeaderMutation) SetContact(s string) {
	m.contact = &s
}

// Contact returns the value of the "contact" field in the mutation.
func (m *POHeaderMutation) Contact() (r string, exists bool) {
	v := m.contact
	if v == nil {
		return
	}
	return *v, true
}

// OldContact returns the old "contact" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldContact(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContact: %w", err)
	}
	return oldValue.Contact, nil
}

// ResetContact resets all changes to the "contact" field.
func (m *POHeaderMutation) ResetContact() {
	m.contact = nil
}

// SetShipTo sets the "ship_to" field.
func (m *POHeaderMutation) SetShipTo(s string) {
	m.ship_to = &s
}

// ShipTo returns the value of the "ship_to" field in the mutation.
func (m *POHeaderMutation) ShipTo() (r string, exists bool) {
	v := m.ship_to
	if v == nil {
		return
	}
	return *v, true
}

// OldShipTo returns the old "ship_to" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldShipTo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShipTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShipTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShipTo: %w", err)
	}
	return oldValue.ShipTo, nil
}

// ResetShipTo resets all changes to the "ship_to" field.
func (m *POHeaderMutation) ResetShipTo() {
	m.ship_to = nil
}

// SetShipFrom sets the "ship_from" field.
func (m *POHeaderMutation) SetShipFrom(s string) {
	m.ship_from = &s
}

// ShipFrom returns the value of the "ship_from" field in the mutation.
func (m *POHeaderMutation) ShipFrom() (r string, exists bool) {
	v := m.ship_from
	if v == nil {
		return
	}
	return *v, true
}

// OldShipFrom returns the old "ship_from" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldShipFrom(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShipFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShipFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShipFrom: %w", err)
	}
	return oldValue.ShipFrom, nil
}

// ResetShipFrom resets all changes to the "ship_from" field.
func (m *POHeaderMutation) ResetShipFrom() {
	m.ship_from = nil
}

// SetShipDate sets the "ship_date" field.
func (m *POHeaderMutation) SetShipDate(t time.Time) {
	m.ship_date = &t
}

// ShipDate returns the value of the "ship_date" field in the mutation.
func (m *POHeaderMutation) ShipDate() (r time.Time, exists bool) {
	v := m.ship_date
	if v == nil {
		return
	}
	return *v, true
}

// OldShipDate returns the old "ship_date" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldShipDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShipDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShipDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShipDate: %w", err)
	}
	return oldValue.ShipDate, nil
}

// ClearShipDate clears the value of the "ship_date" field.
func (m *POHeaderMutation) ClearShipDate() {
	m.ship_date = nil
	m.clearedFields[poheader.FieldShipDate] = struct{}{}
}

// ShipDateCleared returns if the "ship_date" field was cleared in this mutation.
func (m *POHeaderMutation) ShipDateCleared() bool {
	_, ok := m.clearedFields[poheader.FieldShipDate]
	return ok
}

// ResetShipDate resets all changes to the "ship_date" field.
func (m *POHeaderMutation) ResetShipDate() {
	m.ship_date = nil
	delete(m.clearedFields, poheader.FieldShipDate)
}

// SetShipVia sets the "ship_via" field.
func (m *POHeaderMutation) SetShipVia(s string) {
	m.ship_via = &s
}

// ShipVia returns the value of the "ship_via" field in the mutation.
func (m *POHeaderMutation) ShipVia() (r string, exists bool) {
	v := m.ship_via
	if v == nil {
		return
	}
	return *v, true
}

// OldShipVia returns the old "ship_via" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldShipVia(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShipVia is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShipVia requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShipVia: %w", err)
	}
	return oldValue.ShipVia, nil
}

// ResetShipVia resets all changes to the "ship_via" field.
func (m *POHeaderMutation) ResetShipVia() {
	m.ship_via = nil
}

// SetShippingInstruction sets the "shipping_instruction" field.
func (m *POHeaderMutation) SetShippingInstruction(s string) {
	m.shipping_instruction = &s
}

// ShippingInstruction returns the value of the "shipping_instruction" field in the mutation.
func (m *POHeaderMutation) ShippingInstruction() (r string, exists bool) {
	v := m.shipping_instruction
	if v == nil {
		return
	}
	return *v, true
}

// OldShippingInstruction returns the old "shipping_instruction" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldShippingInstruction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShippingInstruction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShippingInstruction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShippingInstruction: %w", err)
	}
	return oldValue.ShippingInstruction, nil
}

// ResetShippingInstruction resets all changes to the "shipping_instruction" field.
func (m *POHeaderMutation) ResetShippingInstruction() {
	m.shipping_instruction = nil
}

// SetTotalAmount sets the "total_amount" field.
func (m *POHeaderMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *POHeaderMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldTotalAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *POHeaderMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *POHeaderMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *POHeaderMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	m.clearedFields[poheader.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *POHeaderMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[poheader.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *POHeaderMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	delete(m.clearedFields, poheader.FieldTotalAmount)
}

// SetPoDocName sets the "po_doc_name" field.
func (m *POHeaderMutation) SetPoDocName(s string) {
	m.po_doc_name = &s
}

// PoDocName returns the value of the "po_doc_name" field in the mutation.
func (m *POHeaderMutation) PoDocName() (r string, exists bool) {
	v := m.po_doc_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPoDocName returns the old "po_doc_name" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldPoDocName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoDocName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoDocName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoDocName: %w", err)
	}
	return oldValue.PoDocName, nil
}

// ResetPoDocName resets all changes to the "po_doc_name" field.
func (m *POHeaderMutation) ResetPoDocName() {
	m.po_doc_name = nil
}

// SetResponseMs sets the "response_ms" field.
func (m *POHeaderMutation) SetResponseMs(i int64) {
	m.response_ms = &i
	m.addresponse_ms = nil
}

// ResponseMs returns the value of the "response_ms" field in the mutation.
func (m *POHeaderMutation) ResponseMs() (r int64, exists bool) {
	v := m.response_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseMs returns the old "response_ms" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldResponseMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseMs: %w", err)
	}
	return oldValue.ResponseMs, nil
}

// AddResponseMs adds i to the "response_ms" field.
func (m *POHeaderMutation) AddResponseMs(i int64) {
	if m.addresponse_ms != nil {
		*m.addresponse_ms += i
	} else {
		m.addresponse_ms = &i
	}
}

// AddedResponseMs returns the value that was added to the "response_ms" field in this mutation.
func (m *POHeaderMutation) AddedResponseMs() (r int64, exists bool) {
	v := m.addresponse_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseMs resets all changes to the "response_ms" field.
func (m *POHeaderMutation) ResetResponseMs() {
	m.response_ms = nil
	m.addresponse_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *POHeaderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *POHeaderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the POHeader entity.
// If the POHeader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POHeaderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *POHeaderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddLineItemIDs adds the "line_items" edge to the POLineItem entity by ids.
func (m *POHeaderMutation) AddLineItemIDs(ids ...uuid.UUID) {
	if m.line_items == nil {
		m.line_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.line_items[ids[i]] = struct{}{}
	}
}

// ClearLineItems clears the "line_items" edge to the POLineItem entity.
func (m *POHeaderMutation) ClearLineItems() {
	m.clearedline_items = true
}

// LineItemsCleared reports if the "line_items" edge to the POLineItem entity was cleared.
func (m *POHeaderMutation) LineItemsCleared() bool {
	return m.clearedline_items
}

// RemoveLineItemIDs removes the "line_items" edge to the POLineItem entity by IDs.
func (m *POHeaderMutation) RemoveLineItemIDs(ids ...uuid.UUID) {
	if m.removedline_items == nil {
		m.removedline_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.line_items, ids[i])
		m.removedline_items[ids[i]] = struct{}{}
	}
}

// RemovedLineItems returns the removed IDs of the "line_items" edge to the POLineItem entity.
func (m *POHeaderMutation) RemovedLineItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedline_items {
		ids = append(ids, id)
	}
	return
}

// LineItemsIDs returns the "line_items" edge IDs in the mutation.
func (m *POHeaderMutation) LineItemsIDs() (ids []uuid.UUID) {
	for id := range m.line_items {
		ids = append(ids, id)
	}
	return
}

// ResetLineItems resets all changes to the "line_items" edge.
func (m *POHeaderMutation) ResetLineItems() {
	m.line_items = nil
	m.clearedline_items = false
	m.removedline_items = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *POHeaderMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *POHeaderMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *POHeaderMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *POHeaderMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *POHeaderMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *POHeaderMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *POHeaderMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the POHeaderMutation builder.
func (m *POHeaderMutation) Where(ps ...predicate.POHeader) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the POHeaderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *POHeaderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.POHeader, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *POHeaderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *POHeaderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (POHeader).
func (m *POHeaderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *POHeaderMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.po_number != nil {
		fields = append(fields, poheader.FieldPoNumber)
	}
	if m.po_date != nil {
		fields = append(fields, poheader.FieldPoDate)
	}
	if m.due_date != nil {
		fields = append(fields, poheader.FieldDueDate)
	}
	if m.buyer_info != nil {
		fields = append(fields, poheader.FieldBuyerInfo)
	}
	if m.bill_to != nil {
		fields = append(fields, poheader.FieldBillTo)
	}
	if m.vendor_id != nil {
		fields = append(fields, poheader.FieldVendorID)
	}
	if m.name != nil {
		fields = append(fields, poheader.FieldName)
	}
	if m.address != nil {
		fields = append(fields, poheader.FieldAddress)
	}
	if m.contact != nil {
		fields = append(fields, poheader.FieldContact)
	}
	if m.ship_to != nil {
		fields = append(fields, poheader.FieldShipTo)
	}
	if m.ship_from != nil {
		fields = append(fields, poheader.FieldShipFrom)
	}
	if m.ship_date != nil {
		fields = append(fields, poheader.FieldShipDate)
	}
	if m.ship_via != nil {
		fields = append(fields, poheader.FieldShipVia)
	}
	if m.shipping_instruction != nil {
		fields = append(fields, poheader.FieldShippingInstruction)
	}
	if m.total_amount != nil {
		fields = append(fields, poheader.FieldTotalAmount)
	}
	if m.po_doc_name != nil {
		fields = append(fields, poheader.FieldPoDocName)
	}
	if m.response_ms != nil {
		fields = append(fields, poheader.FieldResponseMs)
	}
	if m.created_at != nil {
		fields = append(fields, poheader.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *POHeaderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case poheader.FieldPoNumber:
		return m.PoNumber()
	case poheader.FieldPoDate:
		return m.PoDate()
	case poheader.FieldDueDate:
		return m.DueDate()
	case poheader.FieldBuyerInfo:
		return m.BuyerInfo()
	case poheader.FieldBillTo:
		return m.BillTo()
	case poheader.FieldVendorID:
		return m.VendorID()
	case poheader.FieldName:
		return m.Name()
	case poheader.FieldAddress:
		return m.Address()
	case poheader.FieldContact:
		return m.Contact()
	case poheader.FieldShipTo:
		return m.ShipTo()
	case poheader.FieldShipFrom:
		return m.ShipFrom()
	case poheader.FieldShipDate:
		return m.ShipDate()
	case poheader.FieldShipVia:
		return m.ShipVia()
	case poheader.FieldShippingInstruction:
		return m.ShippingInstruction()
	case poheader.FieldTotalAmount:
		return m.TotalAmount()
	case poheader.FieldPoDocName:
		return m.PoDocName()
	case poheader.FieldResponseMs:
		return m.ResponseMs()
	case poheader.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *POHeaderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case poheader.FieldPoNumber:
		return m.OldPoNumber(ctx)
	case poheader.FieldPoDate:
		return m.OldPoDate(ctx)
	case poheader.FieldDueDate:
		return m.OldDueDate(ctx)
	case poheader.FieldBuyerInfo:
		return m.OldBuyerInfo(ctx)
	case poheader.FieldBillTo:
		return m.OldBillTo(ctx)
	case poheader.FieldVendorID:
		return m.OldVendorID(ctx)
	case poheader.FieldName:
		return m.OldName(ctx)
	case poheader.FieldAddress:
		return m.OldAddress(ctx)
	case poheader.FieldContact:
		return m.OldContact(ctx)
	case poheader.FieldShipTo:
		return m.OldShipTo(ctx)
	case poheader.FieldShipFrom:
		return m.OldShipFrom(ctx)
	case poheader.FieldShipDate:
		return m.OldShipDate(ctx)
	case poheader.FieldShipVia:
		return m.OldShipVia(ctx)
	case poheader.FieldShippingInstruction:
		return m.OldShippingInstruction(ctx)
	case poheader.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case poheader.FieldPoDocName:
		return m.OldPoDocName(ctx)
	case poheader.FieldResponseMs:
		return m.OldResponseMs(ctx)
	case poheader.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown POHeader field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *POHeaderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case poheader.FieldPoNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoNumber(v)
		return nil
	case poheader.FieldPoDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoDate(v)
		return nil
	case poheader.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case poheader.FieldBuyerInfo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerInfo(v)
		return nil
	case poheader.FieldBillTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillTo(v)
		return nil
	case poheader.FieldVendorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorID(v)
		return nil
	case poheader.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case poheader.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case poheader.FieldContact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContact(v)
		return nil
	case poheader.FieldShipTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShipTo(v)
		return nil
	case poheader.FieldShipFrom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShipFrom(v)
		return nil
	case poheader.FieldShipDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShipDate(v)
		return nil
	case poheader.FieldShipVia:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShipVia(v)
		return nil
	case poheader.FieldShippingInstruction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShippingInstruction(v)
		return nil
	case poheader.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case poheader.FieldPoDocName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoDocName(v)
		return nil
	case poheader.FieldResponseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseMs(v)
		return nil
	case poheader.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown POHeader field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *POHeaderMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, poheader.FieldTotalAmount)
	}
	if m.addresponse_ms != nil {
		fields = append(fields, poheader.FieldResponseMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *POHeaderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case poheader.FieldTotalAmount:
		return m.AddedTotalAmount()
	case poheader.FieldResponseMs:
		return m.AddedResponseMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *POHeaderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case poheader.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case poheader.FieldResponseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseMs(v)
		return nil
	}
	return fmt.Errorf("unknown POHeader numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *POHeaderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(poheader.FieldPoDate) {
		fields = append(fields, poheader.FieldPoDate)
	}
	if m.FieldCleared(poheader.FieldDueDate) {
		fields = append(fields, poheader.FieldDueDate)
	}
	if m.FieldCleared(poheader.FieldShipDate) {
		fields = append(fields, poheader.FieldShipDate)
	}
	if m.FieldCleared(poheader.FieldTotalAmount) {
		fields = append(fields, poheader.FieldTotalAmount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *POHeaderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *POHeaderMutation) ClearField(name string) error {
	switch name {
	case poheader.FieldPoDate:
		m.ClearPoDate()
		return nil
	case poheader.FieldDueDate:
		m.ClearDueDate()
		return nil
	case poheader.FieldShipDate:
		m.ClearShipDate()
		return nil
	case poheader.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	}
	return fmt.Errorf("unknown POHeader nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *POHeaderMutation) ResetField(name string) error {
	switch name {
	case poheader.FieldPoNumber:
		m.ResetPoNumber()
		return nil
	case poheader.FieldPoDate:
		m.ResetPoDate()
		return nil
	case poheader.FieldDueDate:
		m.ResetDueDate()
		return nil
	case poheader.FieldBuyerInfo:
		m.ResetBuyerInfo()
		return nil
	case poheader.FieldBillTo:
		m.ResetBillTo()
		return nil
	case poheader.FieldVendorID:
		m.ResetVendorID()
		return nil
	case poheader.FieldName:
		m.ResetName()
		return nil
	case poheader.FieldAddress:
		m.ResetAddress()
		return nil
	case poheader.FieldContact:
		m.ResetContact()
		return nil
	case poheader.FieldShipTo:
		m.ResetShipTo()
		return nil
	case poheader.FieldShipFrom:
		m.ResetShipFrom()
		return nil
	case poheader.FieldShipDate:
		m.ResetShipDate()
		return nil
	case poheader.FieldShipVia:
		m.ResetShipVia()
		return nil
	case poheader.FieldShippingInstruction:
		m.ResetShippingInstruction()
		return nil
	case poheader.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case poheader.FieldPoDocName:
		m.ResetPoDocName()
		return nil
	case poheader.FieldResponseMs:
		m.ResetResponseMs()
		return nil
	case poheader.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown POHeader field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *POHeaderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.line_items != nil {
		edges = append(edges, poheader.EdgeLineItems)
	}
	if m.jobs != nil {
		edges = append(edges, poheader.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *POHeaderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case poheader.EdgeLineItems:
		ids := make([]ent.Value, 0, len(m.line_items))
		for id := range m.line_items {
			ids = append(ids, id)
		}
		return ids
	case poheader.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *POHeaderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedline_items != nil {
		edges = append(edges, poheader.EdgeLineItems)
	}
	if m.removedjobs != nil {
		edges = append(edges, poheader.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *POHeaderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case poheader.EdgeLineItems:
		ids := make([]ent.Value, 0, len(m.removedline_items))
		for id := range m.removedline_items {
			ids = append(ids, id)
		}
		return ids
	case poheader.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *POHeaderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedline_items {
		edges = append(edges, poheader.EdgeLineItems)
	}
	if m.clearedjobs {
		edges = append(edges, poheader.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *POHeaderMutation) EdgeCleared(name string) bool {
	switch name {
	case poheader.EdgeLineItems:
		return m.clearedline_items
	case poheader.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *POHeaderMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown POHeader unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *POHeaderMutation) ResetEdge(name string) error {
	switch name {
	case poheader.EdgeLineItems:
		m.ResetLineItems()
		return nil
	case poheader.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown POHeader edge %s", name)
}

// POLineItemMutation represents an operation that mutates the POLineItem nodes in the graph.
type POLineItemMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	po_number        *string
	po_doc_name      *string
	response_ms      *int64
	addresponse_ms   *int64
	item_description *string
	timeline         *string
	rate_type        *string
	total_price      *string
	item_serial_no   *string
	item_code        *string
	quantity         *string
	uom              *string
	unit_price       *string
	page_no          *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	header           *uuid.UUID
	clearedheader    bool
	done             bool
	oldValue         func(context.Context) (*POLineItem, error)
	predicates       []predicate.POLineItem
}

var _ ent.Mutation = (*POLineItemMutation)(nil)

// polineitemOption allows management of the mutation configuration using functional options.
type polineitemOption func(*POLineItemMutation)

// newPOLineItemMutation creates new mutation for the POLineItem entity.
func newPOLineItemMutation(c config, op Op, opts ...polineitemOption) *POLineItemMutation {
	m := &POLineItemMutation{
		config:        c,
		op:            op,
		typ:           TypePOLineItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPOLineItemID sets the ID field of the mutation.
func withPOLineItemID(id uuid.UUID) polineitemOption {
	return func(m *POLineItemMutation) {
		var (
			err   error
			once  sync.Once
			value *POLineItem
		)
		m.oldValue = func(ctx context.Context) (*POLineItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().POLineItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPOLineItem sets the old POLineItem of the mutation.
func withPOLineItem(node *POLineItem) polineitemOption {
	return func(m *POLineItemMutation) {
		m.oldValue = func(context.Context) (*POLineItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m POLineItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m POLineItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of POLineItem entities.
func (m *POLineItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *POLineItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *POLineItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().POLineItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPoNumber sets the "po_number" field.
func (m *POLineItemMutation) SetPoNumber(s string) {
	m.po_number = &s
}

// PoNumber returns the value of the "po_number" field in the mutation.
func (m *POLineItemMutation) PoNumber() (r string, exists bool) {
	v := m.po_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPoNumber returns the old "po_number" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldPoNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoNumber: %w", err)
	}
	return oldValue.PoNumber, nil
}

// ResetPoNumber resets all changes to the "po_number" field.
func (m *POLineItemMutation) ResetPoNumber() {
	m.po_number = nil
}

// SetPoDocName sets the "po_doc_name" field.
func (m *POLineItemMutation) SetPoDocName(s string) {
	m.po_doc_name = &s
}

// PoDocName returns the value of the "po_doc_name" field in the mutation.
func (m *POLineItemMutation) PoDocName() (r string, exists bool) {
	v := m.po_doc_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPoDocName returns the old "po_doc_name" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldPoDocName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoDocName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoDocName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoDocName: %w", err)
	}
	return oldValue.PoDocName, nil
}

// ResetPoDocName resets all changes to the "po_doc_name" field.
func (m *POLineItemMutation) ResetPoDocName() {
	m.po_doc_name = nil
}

// SetResponseMs sets the "response_ms" field.
func (m *POLineItemMutation) SetResponseMs(i int64) {
	m.response_ms = &i
	m.addresponse_ms = nil
}

// ResponseMs returns the value of the "response_ms" field in the mutation.
func (m *POLineItemMutation) ResponseMs() (r int64, exists bool) {
	v := m.response_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseMs returns the old "response_ms" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldResponseMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseMs: %w", err)
	}
	return oldValue.ResponseMs, nil
}

// AddResponseMs adds i to the "response_ms" field.
func (m *POLineItemMutation) AddResponseMs(i int64) {
	if m.addresponse_ms != nil {
		*m.addresponse_ms += i
	} else {
		m.addresponse_ms = &i
	}
}

// AddedResponseMs returns the value that was added to the "response_ms" field in this mutation.
func (m *POLineItemMutation) AddedResponseMs() (r int64, exists bool) {
	v := m.addresponse_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseMs resets all changes to the "response_ms" field.
func (m *POLineItemMutation) ResetResponseMs() {
	m.response_ms = nil
	m.addresponse_ms = nil
}

// SetItemDescription sets the "item_description" field.
func (m *POLineItemMutation) SetItemDescription(s string) {
	m.item_description = &s
}

// ItemDescription returns the value of the "item_description" field in the mutation.
func (m *POLineItemMutation) ItemDescription() (r string, exists bool) {
	v := m.item_description
	if v == nil {
		return
	}
	return *v, true
}

// OldItemDescription returns the old "item_description" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldItemDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemDescription: %w", err)
	}
	return oldValue.ItemDescription, nil
}

// ResetItemDescription resets all changes to the "item_description" field.
func (m *POLineItemMutation) ResetItemDescription() {
	m.item_description = nil
}

// SetTimeline sets the "timeline" field.
func (m *POLineItemMutation) SetTimeline(s string) {
	m.timeline = &s
}

// Timeline returns the value of the "timeline" field in the mutation.
func (m *POLineItemMutation) Timeline() (r string, exists bool) {
	v := m.timeline
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeline returns the old "timeline" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldTimeline(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeline: %w", err)
	}
	return oldValue.Timeline, nil
}

// ResetTimeline resets all changes to the "timeline" field.
func (m *POLineItemMutation) ResetTimeline() {
	m.timeline = nil
}

// SetRateType sets the "rate_type" field.
func (m *POLineItemMutation) SetRateType(s string) {
	m.rate_type = &s
}

// RateType returns the value of the "rate_type" field in the mutation.
func (m *POLineItemMutation) RateType() (r string, exists bool) {
	v := m.rate_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRateType returns the old "rate_type" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldRateType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateType: %w", err)
	}
	return oldValue.RateType, nil
}

// ResetRateType resets all changes to the "rate_type" field.
func (m *POLineItemMutation) ResetRateType() {
	m.rate_type = nil
}

// SetTotalPrice sets the "total_price" field.
func (m *POLineItemMutation) SetTotalPrice(s string) {
	m.total_price = &s
}

// TotalPrice returns the value of the "total_price" field in the mutation.
func (m *POLineItemMutation) TotalPrice() (r string, exists bool) {
	v := m.total_price
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPrice returns the old "total_price" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldTotalPrice(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPrice: %w", err)
	}
	return oldValue.TotalPrice, nil
}

// ResetTotalPrice resets all changes to the "total_price" field.
func (m *POLineItemMutation) ResetTotalPrice() {
	m.total_price = nil
}

// SetItemSerialNo sets the "item_serial_no" field.
func (m *POLineItemMutation) SetItemSerialNo(s string) {
	m.item_serial_no = &s
}

// ItemSerialNo returns the value of the "item_serial_no" field in the mutation.
func (m *POLineItemMutation) ItemSerialNo() (r string, exists bool) {
	v := m.item_serial_no
	if v == nil {
		return
	}
	return *v, true
}

// OldItemSerialNo returns the old "item_serial_no" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldItemSerialNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemSerialNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemSerialNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemSerialNo: %w", err)
	}
	return oldValue.ItemSerialNo, nil
}

// ResetItemSerialNo resets all changes to the "item_serial_no" field.
func (m *POLineItemMutation) ResetItemSerialNo() {
	m.item_serial_no = nil
}

// SetItemCode sets the "item_code" field.
func (m *POLineItemMutation) SetItemCode(s string) {
	m.item_code = &s
}

// ItemCode returns the value of the "item_code" field in the mutation.
func (m *POLineItemMutation) ItemCode() (r string, exists bool) {
	v := m.item_code
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCode returns the old "item_code" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldItemCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCode: %w", err)
	}
	return oldValue.ItemCode, nil
}

// ResetItemCode resets all changes to the "item_code" field.
func (m *POLineItemMutation) ResetItemCode() {
	m.item_code = nil
}

// SetQuantity sets the "quantity" field.
func (m *POLineItemMutation) SetQuantity(s string) {
	m.quantity = &s
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *POLineItemMutation) Quantity() (r string, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldQuantity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *POLineItemMutation) ResetQuantity() {
	m.quantity = nil
}

// SetUom sets the "uom" field.
func (m *POLineItemMutation) SetUom(s string) {
	m.uom = &s
}

// Uom returns the value of the "uom" field in the mutation.
func (m *POLineItemMutation) Uom() (r string, exists bool) {
	v := m.uom
	if v == nil {
		return
	}
	return *v, true
}

// OldUom returns the old "uom" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldUom(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUom: %w", err)
	}
	return oldValue.Uom, nil
}

// ResetUom resets all changes to the "uom" field.
func (m *POLineItemMutation) ResetUom() {
	m.uom = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *POLineItemMutation) SetUnitPrice(s string) {
	m.unit_price = &s
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *POLineItemMutation) UnitPrice() (r string, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldUnitPrice(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *POLineItemMutation) ResetUnitPrice() {
	m.unit_price = nil
}

// SetPageNo sets the "page_no" field.
func (m *POLineItemMutation) SetPageNo(s string) {
	m.page_no = &s
}

// PageNo returns the value of the "page_no" field in the mutation.
func (m *POLineItemMutation) PageNo() (r string, exists bool) {
	v := m.page_no
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNo returns the old "page_no" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldPageNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNo: %w", err)
	}
	return oldValue.PageNo, nil
}

// ResetPageNo resets all changes to the "page_no" field.
func (m *POLineItemMutation) ResetPageNo() {
	m.page_no = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *POLineItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *POLineItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the POLineItem entity.
// If the POLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *POLineItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *POLineItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetHeaderID sets the "header" edge to the POHeader entity by id.
func (m *POLineItemMutation) SetHeaderID(id uuid.UUID) {
	m.header = &id
}

// ClearHeader clears the "header" edge to the POHeader entity.
func (m *POLineItemMutation) ClearHeader() {
	m.clearedheader = true
}

// HeaderCleared reports if the "header" edge to the POHeader entity was cleared.
func (m *POLineItemMutation) HeaderCleared() bool {
	return m.clearedheader
}

// HeaderID returns the "header" edge ID in the mutation.
func (m *POLineItemMutation) HeaderID() (id uuid.UUID, exists bool) {
	if m.header != nil {
		return *m.header, true
	}
	return
}

// HeaderIDs returns the "header" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HeaderID instead. It exists only for internal usage by the builders.
func (m *POLineItemMutation) HeaderIDs() (ids []uuid.UUID) {
	if id := m.header; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHeader resets all changes to the "header" edge.
func (m *POLineItemMutation) ResetHeader() {
	m.header = nil
	m.clearedheader = false
}

// Where appends a list predicates to the POLineItemMutation builder.
func (m *POLineItemMutation) Where(ps ...predicate.POLineItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the POLineItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *POLineItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.POLineItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *POLineItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *POLineItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (POLineItem).
func (m *POLineItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *POLineItemMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.po_number != nil {
		fields = append(fields, polineitem.FieldPoNumber)
	}
	if m.po_doc_name != nil {
		fields = append(fields, polineitem.FieldPoDocName)
	}
	if m.response_ms != nil {
		fields = append(fields, polineitem.FieldResponseMs)
	}
	if m.item_description != nil {
		fields = append(fields, polineitem.FieldItemDescription)
	}
	if m.timeline != nil {
		fields = append(fields, polineitem.FieldTimeline)
	}
	if m.rate_type != nil {
		fields = append(fields, polineitem.FieldRateType)
	}
	if m.total_price != nil {
		fields = append(fields, polineitem.FieldTotalPrice)
	}
	if m.item_serial_no != nil {
		fields = append(fields, polineitem.FieldItemSerialNo)
	}
	if m.item_code != nil {
		fields = append(fields, polineitem.FieldItemCode)
	}
	if m.quantity != nil {
		fields = append(fields, polineitem.FieldQuantity)
	}
	if m.uom != nil {
		fields = append(fields, polineitem.FieldUom)
	}
	if m.unit_price != nil {
		fields = append(fields, polineitem.FieldUnitPrice)
	}
	if m.page_no != nil {
		fields = append(fields, polineitem.FieldPageNo)
	}
	if m.created_at != nil {
		fields = append(fields, polineitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *POLineItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case polineitem.FieldPoNumber:
		return m.PoNumber()
	case polineitem.FieldPoDocName:
		return m.PoDocName()
	case polineitem.FieldResponseMs:
		return m.ResponseMs()
	case polineitem.FieldItemDescription:
		return m.ItemDescription()
	case polineitem.FieldTimeline:
		return m.Timeline()
	case polineitem.FieldRateType:
		return m.RateType()
	case polineitem.FieldTotalPrice:
		return m.TotalPrice()
	case polineitem.FieldItemSerialNo:
		return m.ItemSerialNo()
	case polineitem.FieldItemCode:
		return m.ItemCode()
	case polineitem.FieldQuantity:
		return m.Quantity()
	case polineitem.FieldUom:
		return m.Uom()
	case polineitem.FieldUnitPrice:
		return m.UnitPrice()
	case polineitem.FieldPageNo:
		return m.PageNo()
	case polineitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *POLineItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case polineitem.FieldPoNumber:
		return m.OldPoNumber(ctx)
	case polineitem.FieldPoDocName:
		return m.OldPoDocName(ctx)
	case polineitem.FieldResponseMs:
		return m.OldResponseMs(ctx)
	case polineitem.FieldItemDescription:
		return m.OldItemDescription(ctx)
	case polineitem.FieldTimeline:
		return m.OldTimeline(ctx)
	case polineitem.FieldRateType:
		return m.OldRateType(ctx)
	case polineitem.FieldTotalPrice:
		return m.OldTotalPrice(ctx)
	case polineitem.FieldItemSerialNo:
		return m.OldItemSerialNo(ctx)
	case polineitem.FieldItemCode:
		return m.OldItemCode(ctx)
	case polineitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case polineitem.FieldUom:
		return m.OldUom(ctx)
	case polineitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case polineitem.FieldPageNo:
		return m.OldPageNo(ctx)
	case polineitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown POLineItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *POLineItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case polineitem.FieldPoNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoNumber(v)
		return nil
	case polineitem.FieldPoDocName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoDocName(v)
		return nil
	case polineitem.FieldResponseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseMs(v)
		return nil
	case polineitem.FieldItemDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemDescription(v)
		return nil
	case polineitem.FieldTimeline:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeline(v)
		return nil
	case polineitem.FieldRateType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateType(v)
		return nil
	case polineitem.FieldTotalPrice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPrice(v)
		return nil
	case polineitem.FieldItemSerialNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemSerialNo(v)
		return nil
	case polineitem.FieldItemCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCode(v)
		return nil
	case polineitem.FieldQuantity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case polineitem.FieldUom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUom(v)
		return nil
	case polineitem.FieldUnitPrice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case polineitem.FieldPageNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNo(v)
		return nil
	case polineitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown POLineItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *POLineItemMutation) AddedFields() []string {
	var fields []string
	if m.addresponse_ms != nil {
		fields = append(fields, polineitem.FieldResponseMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *POLineItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case polineitem.FieldResponseMs:
		return m.AddedResponseMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *POLineItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case polineitem.FieldResponseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseMs(v)
		return nil
	}
	return fmt.Errorf("unknown POLineItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *POLineItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *POLineItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *POLineItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown POLineItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *POLineItemMutation) ResetField(name string) error {
	switch name {
	case polineitem.FieldPoNumber:
		m.ResetPoNumber()
		return nil
	case polineitem.FieldPoDocName:
		m.ResetPoDocName()
		return nil
	case polineitem.FieldResponseMs:
		m.ResetResponseMs()
		return nil
	case polineitem.FieldItemDescription:
		m.ResetItemDescription()
		return nil
	case polineitem.FieldTimeline:
		m.ResetTimeline()
		return nil
	case polineitem.FieldRateType:
		m.ResetRateType()
		return nil
	case polineitem.FieldTotalPrice:
		m.ResetTotalPrice()
		return nil
	case polineitem.FieldItemSerialNo:
		m.ResetItemSerialNo()
		return nil
	case polineitem.FieldItemCode:
		m.ResetItemCode()
		return nil
	case polineitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case polineitem.FieldUom:
		m.ResetUom()
		return nil
	case polineitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case polineitem.FieldPageNo:
		m.ResetPageNo()
		return nil
	case polineitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown POLineItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *POLineItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.header != nil {
		edges = append(edges, polineitem.EdgeHeader)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *POLineItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case polineitem.EdgeHeader:
		if id := m.header; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *POLineItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *POLineItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *POLineItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedheader {
		edges = append(edges, polineitem.EdgeHeader)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *POLineItemMutation) EdgeCleared(name string) bool {
	switch name {
	case polineitem.EdgeHeader:
		return m.clearedheader
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *POLineItemMutation) ClearEdge(name string) error {
	switch name {
	case polineitem.EdgeHeader:
		m.ClearHeader()
		return nil
	}
	return fmt.Errorf("unknown POLineItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *POLineItemMutation) ResetEdge(name string) error {
	switch name {
	case polineitem.EdgeHeader:
		m.ResetHeader()
		return nil
	}
	return fmt.Errorf("unknown POLineItem edge %s", name)
}
