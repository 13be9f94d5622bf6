// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/wolfe-services/tabcat/pkg/table"
)

// Renderer encodes tables for machine consumption.
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// tableDoc keeps column order intact, which a map of cells would lose.
type tableDoc struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// RenderTable encodes the table's columns and rows
func (r *Renderer) RenderTable(t *table.Table) error {
	doc := tableDoc{Rows: [][]string{}}
	for _, c := range t.Columns() {
		doc.Columns = append(doc.Columns, c.Header)
	}
	for _, row := range t.RowValues() {
		doc.Rows = append(doc.Rows, row)
	}
	return r.encoder.Encode(doc)
}

// RenderError encodes an error object
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"error": err.Error()})
}

// RenderMessage encodes a message object
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
