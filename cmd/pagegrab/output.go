package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/pagegrab"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// encoder writes a scrape result to w.
type encoder func(w io.Writer, result *pagegrab.Result) error

func encoderFor(name string) (encoder, error) {
	switch name {
	case "", "json":
		return encodeJSON, nil
	case "yaml":
		return encodeYAML, nil
	case "table":
		return encodeTable, nil
	}
	return nil, pagegrab.Errorf(pagegrab.EINVALID, "unknown output %q", name)
}

func encodeJSON(w io.Writer, result *pagegrab.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(result.Payload())
}

// encodeYAML goes through JSON so keyed rows keep their header order and
// the field names match the JSON output.
func encodeYAML(w io.Writer, result *pagegrab.Result) error {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, result); err != nil {
		return err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		return fmt.Errorf("convert to yaml: %w", err)
	}
	resetStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// resetStyle drops the flow and quoting styles inherited from JSON.
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}

func encodeTable(w io.Writer, result *pagegrab.Result) error {
	switch result.Format {
	case pagegrab.FormatText:
		return writeLine(w, result.Text)
	case pagegrab.FormatRaw:
		return writeLine(w, result.Raw)
	case pagegrab.FormatMarkdown:
		return writeLine(w, result.Markdown)
	case pagegrab.FormatArticle:
		return writeArticle(w, result.Article)
	case pagegrab.FormatLinks:
		writeLinks(w, result.Links)
	case pagegrab.FormatImages:
		writeImages(w, result.Images)
	case pagegrab.FormatTables:
		writeTables(w, result.Tables)
	case pagegrab.FormatAll:
		writeSummary(w, result)
		if len(result.Links) > 0 {
			writeLinks(w, result.Links)
		}
		if len(result.Images) > 0 {
			writeImages(w, result.Images)
		}
		writeTables(w, result.Tables)
	}
	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, strings.TrimRight(s, "\n"))
	return err
}

func writeArticle(w io.Writer, a *pagegrab.Article) error {
	if a == nil {
		return nil
	}
	if a.Title != "" {
		fmt.Fprintf(w, "%s\n\n", a.Title)
	}
	if a.Byline != "" {
		fmt.Fprintf(w, "By %s\n\n", a.Byline)
	}
	return writeLine(w, a.Text)
}

func writeSummary(w io.Writer, r *pagegrab.Result) {
	t := newTable(w)
	t.SetTitle(r.Title)
	t.AppendRows([]table.Row{
		{"URL", r.URL},
		{"Status", r.StatusCode},
		{"Content-Type", r.ContentType},
		{"Size", FormatBytes(r.ContentLength)},
		{"Last-Modified", r.LastModified},
		{"Hash", r.ContentHash},
		{"Links", len(r.Links)},
		{"Images", len(r.Images)},
		{"Tables", len(r.Tables)},
	})
	t.Render()
}

func writeLinks(w io.Writer, links []pagegrab.Link) {
	t := newTable(w)
	t.AppendHeader(table.Row{"URL", "Text"})
	for _, l := range links {
		t.AppendRow(table.Row{TruncateURL(l.URL, maxURLWidth), l.Text})
	}
	t.Render()
}

func writeImages(w io.Writer, images []pagegrab.Image) {
	t := newTable(w)
	t.AppendHeader(table.Row{"URL", "Alt", "Title"})
	for _, img := range images {
		t.AppendRow(table.Row{TruncateURL(img.URL, maxURLWidth), img.Alt, img.Title})
	}
	t.Render()
}

func writeTables(w io.Writer, tables []*pagegrab.Table) {
	if len(tables) == 0 {
		fmt.Fprintln(w, "No tables found")
		return
	}
	for _, tbl := range tables {
		t := newTable(w)
		title := fmt.Sprintf("Table %d", tbl.Index)
		if tbl.Caption != "" {
			title += ": " + tbl.Caption
		}
		t.SetTitle(title)

		header := make(table.Row, 0, len(tbl.Headers))
		for _, h := range tbl.Headers {
			header = append(header, h)
		}
		t.AppendHeader(header)

		for _, row := range tbl.Rows {
			cells := make(table.Row, 0, len(row.Values))
			for _, v := range row.Values {
				cells = append(cells, v)
			}
			t.AppendRow(cells)
		}
		t.Render()
	}
}

const maxURLWidth = 80

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
