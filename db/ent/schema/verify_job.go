package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/lgasparetto/geoverify/constants"
	"github.com/lgasparetto/geoverify/db/ent/schema/utils"
)

// VerifyJob tracks one memorial-vs-plant verification run over a scan file.
type VerifyJob struct{ ent.Schema }

func (VerifyJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verify_jobs"},
	}
}

func (VerifyJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("file_id", uuid.UUID{}),
		field.Int("protocol").Positive().Optional().Nillable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Int("memorial_pages").NonNegative().Default(0),
		field.Int("project_pages").NonNegative().Default(0),
		// model replies are kept verbatim for audit, even when validation failed
		field.String("memorial_raw").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("project_raw").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("memorial_json", json.RawMessage{}).Optional(),
		field.JSON("project_json", json.RawMessage{}).Optional(),
		field.JSON("comparison_json", json.RawMessage{}).Optional(),
		field.Int("divergences").NonNegative().Default(0),
		field.Bool("documents_match").Default(false),
		field.String("model_name").Optional().Nillable(),
		field.JSON("model_params", json.RawMessage{}).Optional(),
	}
}

func (VerifyJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", ScanFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
	}
}

func (VerifyJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("file_id"),
		index.Fields("protocol"),
	}
}
