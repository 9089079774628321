package schema

import (
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

// ScanFile is one scanned filing deposited by the scanner station, keyed by
// the registry protocol (prenotação) number.
type ScanFile struct {
	ent.Schema
}

func (ScanFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_files"},
	}
}

func (ScanFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.Int("protocol").Positive().Optional().Nillable(),
		field.String("source_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.SourceFormats...)),
		field.Int("file_size").NonNegative(),
		field.Int("page_count").NonNegative().Default(0),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (ScanFile) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE file -> MANY jobs
		edge.To("jobs", VerifyJob.Type),
	}
}

func (ScanFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash").Unique(),
		index.Fields("protocol"),
		index.Fields("uploaded_at"),
	}
}
