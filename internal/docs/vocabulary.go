package docs

import (
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/leapstack-labs/dbtgooddata/pkg/core"
)

// VocabularySections returns one section per vocabulary enumeration.
func VocabularySections() []Section {
	literalRows := func(literals []string) [][]string {
		return lo.Map(literals, func(l string, _ int) []string {
			return []string{displayName(l), l}
		})
	}
	header := []string{"Name", "Literal"}

	dataTypes := Section{
		Title:  "Datetime Data Types",
		Header: []string{"Name", "Literal", "Timestamp", "Granularities"},
	}
	for _, t := range core.DatetimeDataTypes() {
		dataTypes.Rows = append(dataTypes.Rows, []string{
			displayName(t.String()),
			t.String(),
			yesNo(t.IsTimestamp()),
			strings.Join(core.GranularitiesFor(t), ", "),
		})
	}

	return []Section{
		{
			Title:  "Element Kinds",
			Header: header,
			Rows:   literalRows(literalsOf(core.ElementKindValues())),
		},
		{
			Title:  "Date Granularities",
			Header: header,
			Rows:   literalRows(literalsOf(core.DateGranularityValues())),
		},
		{
			Title:  "Time Granularities",
			Header: header,
			Rows:   literalRows(literalsOf(core.TimeGranularityValues())),
		},
		{
			Title:  "Built-in Tests",
			Header: header,
			Rows:   literalRows(literalsOf(core.BuiltinTestValues())),
		},
		dataTypes,
	}
}

// WriteVocabulary writes every vocabulary table to w.
func WriteVocabulary(w io.Writer, format Format) error {
	for _, s := range VocabularySections() {
		if err := s.Render(w, format); err != nil {
			return err
		}
	}
	return nil
}

func literalsOf[E interface{ String() string }](values []E) []string {
	return lo.Map(values, func(v E, _ int) string { return v.String() })
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
