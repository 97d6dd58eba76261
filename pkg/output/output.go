// Package output renders command results in the jiractl display formats.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Result is the display payload of a command: column names and one row of
// cells per record. Single results hold exactly one row and are shown as a
// record rather than a list.
type Result struct {
	Columns []string
	Rows    [][]string
	Single  bool
}

// One builds a single record result.
func One(columns []string, row []string) Result {
	return Result{Columns: columns, Rows: [][]string{row}, Single: true}
}

// List builds a multi record result.
func List(columns []string, rows [][]string) Result {
	return Result{Columns: columns, Rows: rows}
}

// Select restricts a result to the given columns, in the given order.
// An empty selection keeps every column.
func Select(result Result, columns []string) (Result, error) {
	if len(columns) == 0 {
		return result, nil
	}

	index := make(map[string]int, len(result.Columns))
	for i, c := range result.Columns {
		index[c] = i
	}

	positions := make([]int, 0, len(columns))
	for _, c := range columns {
		i, ok := index[c]
		if !ok {
			return Result{}, errors.WithHintf(fmt.Errorf("%w: %q", ErrUnknownColumn, c),
				"available columns are %s", strings.Join(result.Columns, ", "))
		}
		positions = append(positions, i)
	}

	selected := Result{
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, 0, len(result.Rows)),
		Single:  result.Single,
	}
	for _, row := range result.Rows {
		cells := make([]string, 0, len(positions))
		for _, p := range positions {
			cells = append(cells, cellAt(row, p))
		}
		selected.Rows = append(selected.Rows, cells)
	}
	return selected, nil
}

// Render writes the result to w in the given format, keeping only the given columns.
func Render(w io.Writer, result Result, format Format, columns []string) error {
	result, err := Select(result, columns)
	if err != nil {
		return err
	}

	switch format {
	case FormatTable, "":
		return renderTable(w, result)
	case FormatRecords:
		return renderRecords(w, result)
	case FormatCSV:
		return renderCSV(w, result, ',')
	case FormatTSV:
		return renderCSV(w, result, '\t')
	case FormatJSON:
		return renderJSON(w, result)
	case FormatYAML:
		return renderYAML(w, result)
	case FormatValue:
		return renderValue(w, result)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderTable(w io.Writer, result Result) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	if result.Single {
		table.SetHeader([]string{"Field", "Value"})
		row := firstRow(result)
		for i, c := range result.Columns {
			table.Append([]string{c, cellAt(row, i)})
		}
	} else {
		table.SetHeader(result.Columns)
		table.AppendBulk(result.Rows)
	}

	table.Render()
	return nil
}

func renderRecords(w io.Writer, result Result) error {
	width := 0
	for _, c := range result.Columns {
		if n := utf8.RuneCountInString(c); n > width {
			width = n
		}
	}

	for i, row := range result.Rows {
		if _, err := fmt.Fprintf(w, "-[ RECORD %d ]\n", i+1); err != nil {
			return err
		}
		for j, c := range result.Columns {
			for l, line := range strings.Split(cellAt(row, j), "\n") {
				label := c
				if l > 0 {
					label = ""
				}
				if _, err := fmt.Fprintf(w, "%-*s | %s\n", width, label, line); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func renderCSV(w io.Writer, result Result, comma rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = comma
	if err := writer.Write(result.Columns); err != nil {
		return errors.Wrap(err, "cannot write header")
	}
	if err := writer.WriteAll(result.Rows); err != nil {
		return errors.Wrap(err, "cannot write rows")
	}
	return nil
}

func renderValue(w io.Writer, result Result) error {
	for _, row := range result.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}

// record is a JSON object keeping the column order.
type record struct {
	columns []string
	row     []string
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(cellAt(r.row, i))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func renderJSON(w io.Writer, result Result) error {
	var payload interface{}
	if result.Single {
		payload = record{columns: result.Columns, row: firstRow(result)}
	} else {
		records := make([]record, 0, len(result.Rows))
		for _, row := range result.Rows {
			records = append(records, record{columns: result.Columns, row: row})
		}
		payload = records
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot encode result as JSON")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func yamlMapping(columns []string, row []string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, c := range columns {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: cellAt(row, i)},
		)
	}
	return node
}

func renderYAML(w io.Writer, result Result) error {
	var node *yaml.Node
	if result.Single {
		node = yamlMapping(result.Columns, firstRow(result))
	} else {
		node = &yaml.Node{Kind: yaml.SequenceNode}
		for _, row := range result.Rows {
			node.Content = append(node.Content, yamlMapping(result.Columns, row))
		}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(node); err != nil {
		return errors.Wrap(err, "cannot encode result as YAML")
	}
	return encoder.Close()
}

func firstRow(result Result) []string {
	if len(result.Rows) == 0 {
		return nil
	}
	return result.Rows[0]
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
