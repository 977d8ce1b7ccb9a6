package differ

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"

	"github.com/erraggy/kcoas/parser"
)

// ChangeType indicates the type of change
type ChangeType string

const (
	// ChangeTypeAdded indicates a new element in the target
	ChangeTypeAdded ChangeType = "added"
	// ChangeTypeRemoved indicates an element missing from the target
	ChangeTypeRemoved ChangeType = "removed"
	// ChangeTypeModified indicates an element whose schema differs
	ChangeTypeModified ChangeType = "modified"
)

// Change represents a single difference between two documents
type Change struct {
	// Path is the dotted path of the changed element
	// (e.g., "components.schemas.UserRepresentation.properties.email")
	Path string `json:"path"`
	// Schema is the component schema name
	Schema string `json:"schema"`
	// Property is the property name, empty for schema-level changes
	Property string `json:"property,omitempty"`
	// Type indicates if this is an addition, removal, or modification
	Type ChangeType `json:"type"`
	// OldValue is the value in the source document (nil for additions)
	OldValue any `json:"old,omitempty"`
	// NewValue is the value in the target document (nil for removals)
	NewValue any `json:"new,omitempty"`
	// Message is a human-readable description of the change
	Message string `json:"message"`
}

// String returns a formatted string representation of the change
func (c Change) String() string {
	return fmt.Sprintf("%s [%s]: %s", c.Path, c.Type, c.Message)
}

// DiffResult contains the results of comparing two documents
type DiffResult struct {
	// SourceSchemaCount is the number of component schemas in the source
	SourceSchemaCount int `json:"source_schema_count"`
	// TargetSchemaCount is the number of component schemas in the target
	TargetSchemaCount int `json:"target_schema_count"`
	// Changes contains all detected changes, ordered by path
	Changes []Change `json:"changes"`
	// AddedCount is the number of additions
	AddedCount int `json:"added"`
	// RemovedCount is the number of removals
	RemovedCount int `json:"removed"`
	// ModifiedCount is the number of modifications
	ModifiedCount int `json:"modified"`
}

// HasChanges reports whether any difference was found.
func (r *DiffResult) HasChanges() bool {
	return len(r.Changes) > 0
}

// Differ compares component schemas.
type Differ struct {
	// IgnoreAdded drops additions from the result, which is useful when the
	// reference only covers part of the generated document.
	IgnoreAdded bool
	// Parser loads documents for DiffFiles. If nil, parser.New() is used.
	Parser *parser.Parser
}

// New creates a new Differ instance with default settings
func New() *Differ {
	return &Differ{}
}

// DiffFiles loads both documents and compares them.
func (d *Differ) DiffFiles(sourcePath, targetPath string) (*DiffResult, error) {
	p := d.Parser
	if p == nil {
		p = parser.New()
	}

	source, err := p.Parse(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("differ: failed to parse source document: %w", err)
	}
	target, err := p.Parse(targetPath)
	if err != nil {
		return nil, fmt.Errorf("differ: failed to parse target document: %w", err)
	}
	return d.Diff(source.Document, target.Document)
}

// Diff compares the component schemas of two documents.
func (d *Differ) Diff(source, target *parser.OAS3Document) (*DiffResult, error) {
	src, err := normalizeSchemas(source)
	if err != nil {
		return nil, fmt.Errorf("differ: source: %w", err)
	}
	tgt, err := normalizeSchemas(target)
	if err != nil {
		return nil, fmt.Errorf("differ: target: %w", err)
	}

	result := &DiffResult{
		SourceSchemaCount: len(src),
		TargetSchemaCount: len(tgt),
		Changes:           make([]Change, 0),
	}

	for _, name := range unionKeys(src, tgt) {
		oldSchema, inSource := src[name]
		newSchema, inTarget := tgt[name]
		path := "components.schemas." + name
		switch {
		case !inTarget:
			d.add(result, Change{Path: path, Schema: name, Type: ChangeTypeRemoved, OldValue: oldSchema,
				Message: "schema missing from target"})
		case !inSource:
			d.add(result, Change{Path: path, Schema: name, Type: ChangeTypeAdded, NewValue: newSchema,
				Message: "schema not in source"})
		default:
			d.diffSchema(result, name, oldSchema, newSchema)
		}
	}
	return result, nil
}

func (d *Differ) diffSchema(result *DiffResult, name string, oldSchema, newSchema map[string]any) {
	path := "components.schemas." + name
	// Schema-level keywords first so the change sorts ahead of its properties.
	oldRest, newRest := without(oldSchema, "properties"), without(newSchema, "properties")
	if !reflect.DeepEqual(oldRest, newRest) {
		d.add(result, Change{Path: path, Schema: name, Type: ChangeTypeModified,
			OldValue: oldRest, NewValue: newRest,
			Message: fmt.Sprintf("schema changed from %s to %s", compact(oldRest), compact(newRest))})
	}

	oldProps, _ := oldSchema["properties"].(map[string]any)
	newProps, _ := newSchema["properties"].(map[string]any)

	for _, prop := range unionKeys(oldProps, newProps) {
		oldValue, inSource := oldProps[prop]
		newValue, inTarget := newProps[prop]
		propPath := path + ".properties." + prop
		switch {
		case !inTarget:
			d.add(result, Change{Path: propPath, Schema: name, Property: prop, Type: ChangeTypeRemoved,
				OldValue: oldValue, Message: "property missing from target"})
		case !inSource:
			d.add(result, Change{Path: propPath, Schema: name, Property: prop, Type: ChangeTypeAdded,
				NewValue: newValue, Message: "property not in source"})
		case !reflect.DeepEqual(oldValue, newValue):
			d.add(result, Change{Path: propPath, Schema: name, Property: prop, Type: ChangeTypeModified,
				OldValue: oldValue, NewValue: newValue,
				Message: fmt.Sprintf("schema changed from %s to %s", compact(oldValue), compact(newValue))})
		}
	}
}

func (d *Differ) add(result *DiffResult, change Change) {
	switch change.Type {
	case ChangeTypeAdded:
		if d.IgnoreAdded {
			return
		}
		result.AddedCount++
	case ChangeTypeRemoved:
		result.RemovedCount++
	case ChangeTypeModified:
		result.ModifiedCount++
	}
	result.Changes = append(result.Changes, change)
}

// normalizeSchemas converts the component schemas to plain JSON values.
func normalizeSchemas(doc *parser.OAS3Document) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any)
	if doc == nil || doc.Components == nil {
		return out, nil
	}
	data, err := json.Marshal(doc.Components.Schemas)
	if err != nil {
		return nil, fmt.Errorf("marshaling schemas: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("normalizing schemas: %w", err)
	}
	return out, nil
}

func unionKeys[V any](a, b map[string]V) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

func without(m map[string]any, key string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if k != key {
			out[k] = v
		}
	}
	return out
}

func compact(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
