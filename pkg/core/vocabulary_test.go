package core_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dbtgooddata/pkg/core"
)

// The literals are part of the interchange format and must never drift.
func TestLiterals(t *testing.T) {
	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{
			name: "element kinds",
			got:  literals(core.ElementKindValues()),
			want: []string{"primary_key", "reference", "date", "fact", "attribute", "label"},
		},
		{
			name: "date granularities",
			got:  literals(core.DateGranularityValues()),
			want: []string{
				"DAY", "WEEK", "MONTH", "QUARTER", "YEAR",
				"DAY_OF_WEEK", "DAY_OF_MONTH", "DAY_OF_YEAR",
				"WEEK_OF_YEAR", "MONTH_OF_YEAR", "QUARTER_OF_YEAR",
			},
		},
		{
			name: "time granularities",
			got:  literals(core.TimeGranularityValues()),
			want: []string{"MINUTE", "HOUR", "MINUTE_OF_HOUR", "HOUR_OF_DAY"},
		},
		{
			name: "builtin tests",
			got:  literals(core.BuiltinTestValues()),
			want: []string{"dbt_constraints.primary_key", "dbt_constraints.foreign_key", "pk_table_name"},
		},
		{
			name: "datetime data types",
			got:  literals(core.DatetimeDataTypes()),
			want: []string{"DATE", "TIMESTAMP", "TIMESTAMPTZ"},
		},
		{
			name: "timestamp data types",
			got:  literals(core.TimestampDataTypes()),
			want: []string{"TIMESTAMP", "TIMESTAMPTZ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func literals[E interface{ String() string }](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func TestManifestPath(t *testing.T) {
	assert.Equal(t, "target/manifest.json", core.ManifestPath)
}

func TestParse_RoundTrip(t *testing.T) {
	for _, k := range core.ElementKindValues() {
		got, ok := core.ParseElementKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	for _, g := range core.DateGranularityValues() {
		got, ok := core.ParseDateGranularity(g.String())
		assert.True(t, ok, g.String())
		assert.Equal(t, g, got)
	}
	for _, g := range core.TimeGranularityValues() {
		got, ok := core.ParseTimeGranularity(g.String())
		assert.True(t, ok, g.String())
		assert.Equal(t, g, got)
	}
	for _, b := range core.BuiltinTestValues() {
		got, ok := core.ParseBuiltinTest(b.String())
		assert.True(t, ok, b.String())
		assert.Equal(t, b, got)
	}
}

func TestParse_Unknown(t *testing.T) {
	_, ok := core.ParseElementKind("PRIMARY_KEY")
	assert.False(t, ok, "element kinds are case-sensitive")

	_, ok = core.ParseDateGranularity("day")
	assert.False(t, ok, "granularities are case-sensitive")

	_, ok = core.ParseTimeGranularity("SECOND")
	assert.False(t, ok)

	_, ok = core.ParseBuiltinTest("not_null")
	assert.False(t, ok)
}

func TestInvalidValues(t *testing.T) {
	assert.Equal(t, "unknown", core.ElementKind(99).String())
	assert.False(t, core.ElementKind(-1).IsValid())
	assert.Equal(t, "unknown", core.DateGranularity(99).String())
	assert.Equal(t, "unknown", core.TimeGranularity(99).String())
	assert.Equal(t, "unknown", core.BuiltinTest(99).String())
	assert.Equal(t, "unknown", core.DataType(99).String())
}

func TestBuiltinTest_IsConstraint(t *testing.T) {
	assert.True(t, core.TestPrimaryKey.IsConstraint())
	assert.True(t, core.TestForeignKey.IsConstraint())
	assert.False(t, core.TestForeignKeyRef.IsConstraint())
}

func TestParseDataType(t *testing.T) {
	tests := []struct {
		in   string
		want core.DataType
		ok   bool
	}{
		{"DATE", core.DataTypeDate, true},
		{"TIMESTAMP", core.DataTypeTimestamp, true},
		{"TIMESTAMPTZ", core.DataTypeTimestampTZ, true},
		{"date", core.DataTypeDate, false},
		{" TIMESTAMP ", core.DataTypeDate, false},
		{"TimestampTZ", core.DataTypeDate, false},
		{"VARCHAR", core.DataTypeDate, false},
		{"", core.DataTypeDate, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := core.ParseDataType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDatetimeType(t *testing.T) {
	assert.True(t, core.IsDatetimeType("DATE"))
	assert.True(t, core.IsDatetimeType("TIMESTAMPTZ"))
	assert.False(t, core.IsDatetimeType("INTEGER"))
	assert.False(t, core.IsDatetimeType("timestamp"), "type names match exactly")

	assert.True(t, core.IsTimestampType("TIMESTAMP"))
	assert.True(t, core.IsTimestampType("TIMESTAMPTZ"))
	assert.False(t, core.IsTimestampType("DATE"))
	assert.False(t, core.IsTimestampType("TEXT"))
	assert.False(t, core.IsTimestampType("timestamptz"))
}

func TestGranularitiesFor(t *testing.T) {
	date := core.GranularitiesFor(core.DataTypeDate)
	assert.Equal(t, literals(core.DateGranularityValues()), date)

	ts := core.GranularitiesFor(core.DataTypeTimestampTZ)
	assert.Len(t, ts, len(core.DateGranularityValues())+len(core.TimeGranularityValues()))
	assert.Equal(t, date, ts[:len(date)])
	assert.Equal(t, literals(core.TimeGranularityValues()), ts[len(date):])

	assert.Nil(t, core.GranularitiesFor(core.DataType(42)))
}

func TestTextMarshaling(t *testing.T) {
	type column struct {
		Kind  core.ElementKind     `json:"kind"`
		Grain core.DateGranularity `json:"grain"`
		Time  core.TimeGranularity `json:"time"`
		Test  core.BuiltinTest     `json:"test"`
		Type  core.DataType        `json:"type"`
	}

	in := column{
		Kind:  core.ElementLabel,
		Grain: core.GranularityWeekOfYear,
		Time:  core.GranularityHourOfDay,
		Test:  core.TestForeignKeyRef,
		Type:  core.DataTypeTimestampTZ,
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "label",
		"grain": "WEEK_OF_YEAR",
		"time": "HOUR_OF_DAY",
		"test": "pk_table_name",
		"type": "TIMESTAMPTZ"
	}`, string(data))

	var out column
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestTextMarshaling_Errors(t *testing.T) {
	_, err := core.ElementKind(42).MarshalText()
	require.Error(t, err)

	var k core.ElementKind
	err = k.UnmarshalText([]byte("measure"))
	require.Error(t, err)

	var lit *core.UnknownLiteralError
	require.True(t, errors.As(err, &lit))
	assert.Equal(t, "element kind", lit.Enum)
	assert.Equal(t, "measure", lit.Value)
	assert.Equal(t, `unknown element kind "measure"`, err.Error())

	var g core.DateGranularity
	assert.Error(t, g.UnmarshalText([]byte("FORTNIGHT")))

	var tg core.TimeGranularity
	assert.Error(t, tg.UnmarshalText([]byte("SECOND")))

	var b core.BuiltinTest
	assert.Error(t, b.UnmarshalText([]byte("unique")))

	var dt core.DataType
	assert.Error(t, dt.UnmarshalText([]byte("INTERVAL")))
	assert.Error(t, dt.UnmarshalText([]byte("timestamp")))
	require.NoError(t, dt.UnmarshalText([]byte("TIMESTAMP")))
	assert.Equal(t, core.DataTypeTimestamp, dt)
}
