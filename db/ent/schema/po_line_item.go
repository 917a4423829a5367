package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type POLineItem struct{ ent.Schema }

func (POLineItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "po_line_items"},
	}
}

// All extracted columns are VARCHAR on purpose: the model's output for line
// items is too loose to type at ingest (quantities like "2 boxes", prices
// with currency glyphs). The warehouse views do the typing.
func (POLineItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("po_number").Default(""),
		field.String("po_doc_name").NotEmpty(),
		field.Int64("response_ms").Default(0),
		field.Text("item_description").Default(""),
		field.String("timeline").Default(""),
		field.String("rate_type").Default(""),
		field.String("total_price").Default(""),
		field.String("item_serial_no").Default(""),
		field.String("item_code").Default(""),
		field.String("quantity").Default(""),
		field.String("uom").Default(""),
		field.String("unit_price").Default(""),
		field.String("page_no").Default(""),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (POLineItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY line items -> ONE header (FK: po_line_items.header_id)
		edge.From("header", POHeader.Type).
			Ref("line_items").
			Unique(),
	}
}
