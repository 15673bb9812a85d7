// Package contract defines the schema contracts that generated output
// must satisfy. A contract couples a JSON Schema (structural shape) with
// named semantic checks (cross-field constraints the schema language
// cannot express). Validation returns human-readable violations rather
// than booleans: the violation list is the feedback signal the
// generation layer sends back to the model when asking for a correction.
package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Violation describes a single way a candidate fell short of the
// contract. Message is phrased so it can be fed back to an LLM verbatim.
type Violation struct {
	// Path is the JSON pointer of the offending value, "" for
	// document-level problems.
	Path string

	// Message describes the problem.
	Message string
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return fmt.Sprintf("at %s: %s", v.Path, v.Message)
}

// Format renders violations as a numbered list for prompts and errors.
func Format(violations []Violation) string {
	var b strings.Builder
	for i, v := range violations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, v.String())
	}
	return strings.TrimRight(b.String(), "\n")
}

// Check is a semantic validation rule run after structural validation
// passes. Checks receive the decoded document and must be stateless.
type Check struct {
	// Name identifies the rule in diagnostics, e.g. "question-count".
	Name string

	// Run returns the violations found, or nil.
	Run func(doc any) []Violation
}

// Contract is the formal shape a generated object must satisfy.
// Pure data plus validation; no side effects.
type Contract struct {
	// Name identifies this contract. Kebab-case, e.g. "mcq-batch".
	Name string

	// Description is a human-readable summary, embedded in prompts.
	Description string

	// Definition is the JSON Schema definition as a map. This exact
	// structure is serialized into the prompt so the model can target it.
	Definition map[string]any

	checks []Check

	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
}

// SchemaJSON returns the schema definition serialized as indented JSON,
// the machine-readable form embedded in prompts.
func (c *Contract) SchemaJSON() string {
	b, err := json.MarshalIndent(c.Definition, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Validate checks raw JSON against the contract. A nil return means the
// candidate satisfies the contract exhaustively. Structural violations
// and semantic violations are both reported; semantic checks only run
// once the document is structurally sound, so they can assume shape.
func (c *Contract) Validate(raw json.RawMessage) []Violation {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return []Violation{{Message: fmt.Sprintf("output is not valid JSON: %v", err)}}
	}

	if structural := c.validateStructure(doc); len(structural) > 0 {
		return structural
	}

	var out []Violation
	for _, check := range c.checks {
		out = append(out, check.Run(doc)...)
	}
	return out
}

func (c *Contract) validateStructure(doc any) []Violation {
	c.compileOnce.Do(func() {
		c.compiled, c.compileErr = compileDefinition(c.Name, c.Definition)
	})
	if c.compileErr != nil {
		return []Violation{{Message: fmt.Sprintf("compile schema %q: %v", c.Name, c.compileErr)}}
	}

	err := c.compiled.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []Violation{{Message: err.Error()}}
	}
	return collectLeaves(verr)
}

func compileDefinition(name string, def map[string]any) (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := compiler.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}

var violationPrinter = message.NewPrinter(language.English)

// collectLeaves flattens the validation error tree into one violation
// per leaf cause, each with its instance location.
func collectLeaves(verr *jsonschema.ValidationError) []Violation {
	if len(verr.Causes) == 0 {
		return []Violation{{
			Path:    pointer(verr.InstanceLocation),
			Message: verr.ErrorKind.LocalizedString(violationPrinter),
		}}
	}

	var out []Violation
	for _, cause := range verr.Causes {
		out = append(out, collectLeaves(cause)...)
	}
	return out
}

func pointer(location []string) string {
	if len(location) == 0 {
		return ""
	}
	return "/" + strings.Join(location, "/")
}
