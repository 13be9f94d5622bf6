package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfe-services/tabcat/pkg/table"
)

func sampleTable() *table.Table {
	tbl := table.New(table.Column{Header: "Name"}, table.Column{Header: "Value"})
	tbl.AddRow("foo", "123")
	return tbl
}

func TestNewRendererTable(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatTable, &buf, Options{Style: table.StylePlain, MaxWidth: 80})
	require.NoError(t, err)

	require.NoError(t, r.RenderTable(sampleTable()))
	assert.Contains(t, buf.String(), "Name   Value")
	assert.Contains(t, buf.String(), "----   -----")
}

func TestNewRendererTableColor(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatTable, &buf, Options{Style: table.StylePlain, MaxWidth: 80, Color: true})
	require.NoError(t, err)

	require.NoError(t, r.RenderTable(sampleTable()))
	assert.Contains(t, buf.String(), "\x1b[1m")
}

func TestNewRendererText(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatText, &buf, Options{Style: table.StyleMarkdown, MaxWidth: 80, Color: true})
	require.NoError(t, err)

	require.NoError(t, r.RenderTable(sampleTable()))
	// Text output keeps the chosen style but never emits escapes.
	assert.Contains(t, buf.String(), "| Name | Value |")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNewRendererJSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatJSON, &buf, Options{})
	require.NoError(t, err)

	require.NoError(t, r.RenderTable(sampleTable()))

	var doc struct {
		Columns []string   `json:"columns"`
		Rows    [][]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []string{"Name", "Value"}, doc.Columns)
	assert.Equal(t, [][]string{{"foo", "123"}}, doc.Rows)
}

func TestNewRendererAutoFallsBackToTable(t *testing.T) {
	// A plain buffer has no terminal to probe.
	var buf bytes.Buffer
	r, err := NewRenderer(FormatAuto, &buf, Options{Style: table.StylePlain, MaxWidth: 80})
	require.NoError(t, err)

	require.NoError(t, r.RenderTable(sampleTable()))
	assert.Contains(t, buf.String(), "Name")
}

func TestRenderError(t *testing.T) {
	for _, format := range []Format{FormatTable, FormatText, FormatJSON} {
		var buf bytes.Buffer
		r, err := NewRenderer(format, &buf, Options{})
		require.NoError(t, err)

		require.NoError(t, r.RenderError(fmt.Errorf("boom")))
		assert.Contains(t, buf.String(), "boom", "format %v", format)
	}
}
