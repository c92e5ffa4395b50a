// Package query constructs SQL queries from projection maps with a fluent
// builder API and automatic parameter numbering.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps logical field names to physical table columns for a
// single table. Ordering of Project calls determines SELECT column order.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	fields  map[string]string
}

// NewProjectionMap creates a projection for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project registers a column under a logical field name and returns the
// projection for chaining.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	col := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns = append(p.columns, col)
	p.fields[field] = col
	return p
}

// Table returns the aliased table reference for FROM clauses.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Columns returns the comma-separated list of projected columns.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// Column resolves a logical field name to its qualified column. Unknown
// fields resolve to the first projected column so a malformed sort parameter
// cannot inject SQL.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.fields[field]; ok {
		return col
	}
	return p.columns[0]
}

// SortField identifies a logical field and sort direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending,omitempty"`
}

// ParseSortFields parses a comma-separated sort expression. A "-" prefix
// marks a field as descending. Empty segments are skipped.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	var fields []SortField
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "-") {
			fields = append(fields, SortField{Field: part[1:], Descending: true})
		} else {
			fields = append(fields, SortField{Field: part})
		}
	}
	return fields
}
