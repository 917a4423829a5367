package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type POHeader struct{ ent.Schema }

func (POHeader) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "po_header_details"},
	}
}

func (POHeader) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("po_number").Default(""),
		field.Time("po_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Text("buyer_info").Default(""),
		field.Text("bill_to").Default(""),
		field.String("vendor_id").Default(""),
		field.Text("name").Default(""),
		field.Text("address").Default(""),
		field.Text("contact").Default(""),
		field.Text("ship_to").Default(""),
		field.Text("ship_from").Default(""),
		field.Time("ship_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Text("ship_via").Default(""),
		field.Text("shipping_instruction").Default(""),
		field.Float("total_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("po_doc_name").NotEmpty(),
		field.Int64("response_ms").Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (POHeader) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE header -> MANY line items
		edge.To("line_items", POLineItem.Type),
		// ONE header -> MANY jobs that produced it
		edge.To("jobs", ExtractJob.Type),
	}
}
