// Package docs renders reference tables for the semantic-layer vocabulary
// and for record schemas.
package docs

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/dbtgooddata/pkg/record"
)

// Format selects how tables are rendered.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// ParseFormat converts a string to a Format. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown docs format %q: must be one of text, markdown", s)
	}
}

// Section is a titled table.
type Section struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Render writes the section to w.
func (s Section) Render(w io.Writer, format Format) error {
	t := table.NewWriter()

	header := make(table.Row, len(s.Header))
	for i, h := range s.Header {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, r := range s.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = v
		}
		t.AppendRow(row)
	}

	var err error
	switch format {
	case FormatMarkdown:
		_, err = fmt.Fprintf(w, "## %s\n\n%s\n\n", s.Title, t.RenderMarkdown())
	case FormatText:
		t.SetStyle(table.StyleLight)
		t.SetTitle(s.Title)
		_, err = fmt.Fprintf(w, "%s\n\n", t.Render())
	default:
		err = fmt.Errorf("unknown docs format %q", format)
	}
	return err
}

// RecordSection describes the fields of r in declaration order.
func RecordSection(title string, r record.Record) Section {
	s := Section{
		Title:  title,
		Header: []string{"Field", "Type", "Required"},
	}
	for _, f := range r.Fields() {
		required := "no"
		if f.Required() {
			required = "yes"
		}
		s.Rows = append(s.Rows, []string{f.Name(), f.Type(), required})
	}
	return s
}

// WriteRecord writes the field table of r.
func WriteRecord(w io.Writer, title string, r record.Record, format Format) error {
	return RecordSection(title, r).Render(w, format)
}

var titleCaser = cases.Title(language.English)

// displayName turns a literal such as "DAY_OF_WEEK" or
// "dbt_constraints.primary_key" into "Day Of Week" or
// "Dbt Constraints Primary Key".
func displayName(literal string) string {
	words := strings.NewReplacer("_", " ", ".", " ").Replace(strings.ToLower(literal))
	return titleCaser.String(words)
}
