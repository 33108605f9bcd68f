package pagegrab

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Table is the normalized form of one HTML table.
type Table struct {
	// Index is the 0-based position of the table within one extraction.
	Index int `json:"index"`

	// Caption is the cleaned caption text, empty when the table has none.
	Caption string `json:"caption"`

	// Headers holds one name per logical column. Never nil.
	Headers []string `json:"headers"`

	// Rows holds the data rows in document order.
	Rows []Row `json:"rows"`

	// RowCount always equals len(Rows).
	RowCount int `json:"rowCount"`
}

// Row is one data row of a Table. A keyed row carries one value per table
// header, in header order. A raw row carries its cell values only; raw rows
// appear when a table had no headers while its rows were collected.
type Row struct {
	Keys   []string
	Values []string
}

// Keyed reports whether the row is keyed by header names.
func (r Row) Keyed() bool {
	return r.Keys != nil
}

// Get returns the value stored under header. The first matching header
// wins when a table repeats a header name.
func (r Row) Get(header string) (string, bool) {
	for i, k := range r.Keys {
		if k == header {
			return r.Values[i], true
		}
	}
	return "", false
}

// MarshalJSON encodes keyed rows as objects with keys in header order and
// raw rows as arrays.
func (r Row) MarshalJSON() ([]byte, error) {
	if !r.Keyed() {
		values := r.Values
		if values == nil {
			values = []string{}
		}
		return json.Marshal(values)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RowCells holds the raw cell texts of one table row.
type RowCells struct {
	// Data holds the td texts in order.
	Data []string

	// Header holds the th texts in order.
	Header []string
}

// TableSource exposes the structure of one located table independent of
// how it was located.
type TableSource interface {
	// Caption returns the caption text, or "" when there is none.
	Caption() string

	// HeaderCells returns the header texts in document order.
	HeaderCells() []string

	// Rows returns every table row in document order.
	Rows() []RowCells
}

// NormalizeTable converts a located table into a Table.
//
// A source accessor that panics yields an empty piece (no caption, no
// header cells or no rows) while the rest of the table is kept.
//
// Rows are collected first and keyed against the final header list
// afterwards, so every keyed row carries exactly len(Headers) values even
// when a later row widens the table.
func NormalizeTable(src TableSource, index int) *Table {
	t := &Table{
		Index:   index,
		Caption: CleanText(safeCaption(src)),
		Headers: []string{},
		Rows:    []Row{},
	}

	for _, h := range safeHeaderCells(src) {
		t.Headers = appendHeader(t.Headers, h)
	}

	var values [][]string
	for i, row := range safeRows(src) {
		cells := cleanCells(row.Data)
		if len(cells) == 0 {
			if i == 0 {
				// A leading all-th row is a header row, never data.
				if len(t.Headers) == 0 {
					for _, h := range row.Header {
						t.Headers = appendHeader(t.Headers, h)
					}
				}
				continue
			}
			// Body rows may use th for every cell, e.g. a row label.
			cells = cleanCells(row.Header)
		}
		if len(cells) == 0 {
			continue
		}
		values = append(values, cells)
	}

	keyed := len(t.Headers) > 0
	if !keyed && len(values) > 0 {
		// Headerless tables keep raw rows even though a header list is
		// synthesized here from the first row's width. Consumers rely on
		// that shape; do not key these rows.
		for range values[0] {
			t.Headers = append(t.Headers, columnName(len(t.Headers)+1))
		}
	}

	width := 0
	for _, v := range values {
		width = max(width, len(v))
	}
	for len(t.Headers) < width {
		t.Headers = append(t.Headers, columnName(len(t.Headers)+1))
	}

	headers := t.Headers[:len(t.Headers):len(t.Headers)]
	for _, v := range values {
		if !keyed {
			t.Rows = append(t.Rows, Row{Values: v})
			continue
		}
		padded := make([]string, len(headers))
		copy(padded, v)
		t.Rows = append(t.Rows, Row{Keys: headers, Values: padded})
	}
	t.RowCount = len(t.Rows)

	return t
}

func safeCaption(src TableSource) (caption string) {
	defer func() {
		if recover() != nil {
			caption = ""
		}
	}()
	return src.Caption()
}

func safeHeaderCells(src TableSource) (cells []string) {
	defer func() {
		if recover() != nil {
			cells = nil
		}
	}()
	return src.HeaderCells()
}

func safeRows(src TableSource) (rows []RowCells) {
	defer func() {
		if recover() != nil {
			rows = nil
		}
	}()
	return src.Rows()
}

// CleanText collapses runs of whitespace into single spaces and trims the
// result.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// appendHeader appends a cleaned header, naming it after its position
// among the headers collected so far when the text is empty.
func appendHeader(headers []string, text string) []string {
	text = CleanText(text)
	if text == "" {
		text = columnName(len(headers) + 1)
	}
	return append(headers, text)
}

func cleanCells(cells []string) []string {
	if len(cells) == 0 {
		return nil
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = CleanText(c)
	}
	return out
}

func columnName(n int) string {
	return "Column" + strconv.Itoa(n)
}
