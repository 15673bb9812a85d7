// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmCallEventsColumns holds the columns for the "llm_call_events" table.
	LlmCallEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmCallEventsTable holds the schema information for the "llm_call_events" table.
	LlmCallEventsTable = &schema.Table{
		Name:       "llm_call_events",
		Columns:    LlmCallEventsColumns,
		PrimaryKey: []*schema.Column{LlmCallEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmcallevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[3]},
			},
			{
				Name:    "llmcallevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[7]},
			},
			{
				Name:    "llmcallevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[11]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "qtype", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "answer_index", Type: field.TypeInt, Default: 0},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "sample_answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_questions", Type: field.TypeUUID},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_sessions_questions",
				Columns:    []*schema.Column{QuestionsColumns[11]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// RefinementsColumns holds the columns for the "refinements" table.
	RefinementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "instruction", Type: field.TypeString, Size: 2147483647},
		{Name: "changes_made", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "question_refinements", Type: field.TypeUUID},
	}
	// RefinementsTable holds the schema information for the "refinements" table.
	RefinementsTable = &schema.Table{
		Name:       "refinements",
		Columns:    RefinementsColumns,
		PrimaryKey: []*schema.Column{RefinementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "refinements_questions_refinements",
				Columns:    []*schema.Column{RefinementsColumns[4]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "source_summary", Type: field.TypeString, Default: ""},
		{Name: "target_language", Type: field.TypeString, Default: ""},
		{Name: "image_ref", Type: field.TypeString, Default: ""},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_kind",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmCallEventsTable,
		QuestionsTable,
		RefinementsTable,
		SessionsTable,
	}
)

func init() {
	QuestionsTable.ForeignKeys[0].RefTable = SessionsTable
	RefinementsTable.ForeignKeys[0].RefTable = QuestionsTable
}
