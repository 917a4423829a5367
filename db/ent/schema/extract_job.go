package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"po-tracker/constants"
	"po-tracker/db/ent/schema/utils"
)

type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_jobs"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK, set once parse succeeds
		field.UUID("header_id", uuid.UUID{}).Optional().Nillable(),
		field.String("po_doc_name").NotEmpty(),
		field.String("status").NotEmpty().
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.AllStatuses...)),
		field.String("model_name").Optional(),
		field.Bytes("raw_response").Optional(),
		field.Text("error_message").Optional(),
		field.Time("started_at").Default(time.Now).Immutable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("header", POHeader.Type).
			Ref("jobs").
			Field("header_id").
			Unique(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("po_doc_name", "status", "started_at"),
		index.Fields("header_id"),
	}
}
