// Package input parses delimited and JSON record data into tables.
package input

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/wolfe-services/tabcat/pkg/errors"
	"github.com/wolfe-services/tabcat/pkg/table"
)

// Options controls input parsing and the shape of the produced table.
type Options struct {
	// Format is one of auto, csv, tsv, json. Auto sniffs by file
	// extension, then by the first non-space byte.
	Format    string
	Delimiter rune
	HasHeader bool

	// Column template applied to every produced column.
	MaxColWidth int
	Align       table.Alignment
}

// Read parses r into a table. name is the input's file name (or "-"
// for stdin) and is only used for format sniffing and error messages.
func Read(r io.Reader, name string, opts Options) (*table.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputOpen, "failed to read %s", name)
	}

	format, err := resolveFormat(name, data, opts.Format)
	if err != nil {
		return nil, err
	}

	switch format {
	case "json":
		return readJSON(data, opts)
	case "tsv":
		opts.Delimiter = '\t'
		return readDelimited(data, name, opts)
	default:
		return readDelimited(data, name, opts)
	}
}

func resolveFormat(name string, data []byte, format string) (string, error) {
	switch strings.ToLower(format) {
	case "csv", "tsv", "json":
		return strings.ToLower(format), nil
	case "", "auto":
	default:
		return "", errors.Newf(errors.ErrInputFormat, "unknown input format: %s", format)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return "json", nil
	case ".tsv":
		return "tsv", nil
	case ".csv":
		return "csv", nil
	}

	if first := firstNonSpace(data); first == '[' || first == '{' {
		return "json", nil
	}
	return "csv", nil
}

func firstNonSpace(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b
		}
	}
	return 0
}

func readDelimited(data []byte, name string, opts Options) (*table.Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputParse, "failed to parse %s", name)
	}
	if len(records) == 0 {
		return table.New(), nil
	}

	var headers []string
	var rows [][]string
	if opts.HasHeader {
		headers = records[0]
		rows = records[1:]
	} else {
		widest := 0
		for _, rec := range records {
			if len(rec) > widest {
				widest = len(rec)
			}
		}
		headers = generatedHeaders(widest)
		rows = records
	}

	tbl := table.New(buildColumns(headers, opts)...)
	for _, rec := range rows {
		tbl.AddRow(rec...)
	}
	return tbl, nil
}

// readJSON accepts a top-level array of objects, arrays, or scalars.
// Object keys become columns in first-seen order; the union of keys
// across all records is used.
func readJSON(data []byte, opts Options) (*table.Table, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, errors.Wrap(err, errors.ErrInputParse, "expected a top-level JSON array")
	}
	if len(elements) == 0 {
		return table.New(), nil
	}

	if firstNonSpace(elements[0]) == '{' {
		return readJSONObjects(elements, opts)
	}
	return readJSONArrays(elements, opts)
}

func readJSONObjects(elements []json.RawMessage, opts Options) (*table.Table, error) {
	var headers []string
	seen := map[string]bool{}
	records := make([]map[string]json.RawMessage, 0, len(elements))

	for i, raw := range elements {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInputParse, "record %d is not an object", i)
		}
		keys, err := objectKeys(raw)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInputParse, "record %d", i)
		}
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
		records = append(records, obj)
	}

	tbl := table.New(buildColumns(headers, opts)...)
	for _, obj := range records {
		cells := make([]string, len(headers))
		for i, h := range headers {
			if raw, ok := obj[h]; ok {
				cells[i] = formatValue(raw)
			}
		}
		tbl.AddRow(cells...)
	}
	return tbl, nil
}

func readJSONArrays(elements []json.RawMessage, opts Options) (*table.Table, error) {
	rows := make([][]string, 0, len(elements))
	widest := 0
	for i, raw := range elements {
		if firstNonSpace(raw) == '[' {
			var arr []json.RawMessage
			if err := json.Unmarshal(raw, &arr); err != nil {
				return nil, errors.Wrapf(err, errors.ErrInputParse, "record %d", i)
			}
			cells := make([]string, len(arr))
			for j, v := range arr {
				cells[j] = formatValue(v)
			}
			rows = append(rows, cells)
		} else {
			rows = append(rows, []string{formatValue(raw)})
		}
		if n := len(rows[len(rows)-1]); n > widest {
			widest = n
		}
	}

	tbl := table.New(buildColumns(generatedHeaders(widest), opts)...)
	for _, row := range rows {
		tbl.AddRow(row...)
	}
	return tbl, nil
}

// objectKeys returns an object's keys in document order, which
// json.Unmarshal into a map would lose.
func objectKeys(raw []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // consume '{'
		return nil, err
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		keys = append(keys, key)
		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}
	switch delim {
	case '{':
		for dec.More() {
			if _, err := dec.Token(); err != nil { // key
				return err
			}
			if err := skipValue(dec); err != nil {
				return err
			}
		}
	case '[':
		for dec.More() {
			if err := skipValue(dec); err != nil {
				return err
			}
		}
	default:
		return nil
	}
	_, err = dec.Token() // closing delim
	return err
}

// formatValue renders a JSON value as cell text. Strings lose their
// quotes, null becomes empty, everything else keeps its JSON form.
func formatValue(raw json.RawMessage) string {
	text := strings.TrimSpace(string(raw))
	switch {
	case text == "null":
		return ""
	case strings.HasPrefix(text, `"`):
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return text
	default:
		return text
	}
}

func generatedHeaders(n int) []string {
	headers := make([]string, n)
	for i := range headers {
		headers[i] = fmt.Sprintf("c%d", i+1)
	}
	return headers
}

func buildColumns(headers []string, opts Options) []table.Column {
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		cols[i] = table.Column{
			Header:   h,
			Align:    opts.Align,
			MaxWidth: opts.MaxColWidth,
		}
	}
	return cols
}
