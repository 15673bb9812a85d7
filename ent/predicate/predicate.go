// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMCallEvent is the predicate function for llmcallevent builders.
type LLMCallEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Refinement is the predicate function for refinement builders.
type Refinement func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
