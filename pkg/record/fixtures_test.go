package record_test

import (
	"github.com/leapstack-labs/dbtgooddata/pkg/core"
	"github.com/leapstack-labs/dbtgooddata/pkg/record"
	"github.com/leapstack-labs/dbtgooddata/pkg/record/internal/recordtest"
)

type Inner struct {
	X int
}

func (i *Inner) Fields() []record.Field {
	return []record.Field{
		record.Int("x", &i.X),
	}
}

type Outer struct {
	Inner Inner
}

func (o *Outer) Fields() []record.Field {
	return []record.Field{
		record.Nested("inner", &o.Inner),
	}
}

// Column mirrors a semantic-layer column as a manifest builder would declare it.
type Column struct {
	Name        string
	Description string
	DataType    string
	LdmType     core.ElementKind
	Tests       []core.BuiltinTest
	Tags        []string
}

func (c *Column) Fields() []record.Field {
	return []record.Field{
		record.String("name", &c.Name),
		record.Optional(record.String("description", &c.Description)),
		record.String("data_type", &c.DataType),
		record.Enum("ldm_type", &c.LdmType, core.ParseElementKind, core.ElementKindValues()),
		record.ListOf("tests", &c.Tests, record.EnumValue(core.ParseBuiltinTest, core.BuiltinTestValues())),
		record.Optional(record.Strings("tags", &c.Tags)),
	}
}

type Model struct {
	Name          string
	Columns       []Column
	Meta          map[string]string
	PrimaryKey    *Column
	Rows          int64
	Ratio         float64
	Enabled       bool
	ByName        map[string]Column
	Granularities []core.DateGranularity
}

func (m *Model) Fields() []record.Field {
	return []record.Field{
		record.String("name", &m.Name),
		record.List("columns", &m.Columns),
		record.MapOf("meta", &m.Meta, record.StringValue[string]()),
		record.Ref("primary_key", &m.PrimaryKey),
		record.Int("rows", &m.Rows),
		record.Float("ratio", &m.Ratio),
		record.Bool("enabled", &m.Enabled),
		record.Map("by_name", &m.ByName),
		record.Optional(record.ListOf("granularities", &m.Granularities,
			record.EnumValue(core.ParseDateGranularity, core.DateGranularityValues()))),
	}
}

var modelFieldNames = []string{
	"name", "columns", "meta", "primary_key", "rows", "ratio", "enabled", "by_name", "granularities",
}

// Tree refers to itself through its children.
type Tree struct {
	Label    string
	Children []Tree
}

func (t *Tree) Fields() []record.Field {
	return []record.Field{
		record.String("label", &t.Label),
		record.List("children", &t.Children),
	}
}

type Numbers struct {
	I   int
	I8  int8
	F   float64
	F32 float32
}

func (n *Numbers) Fields() []record.Field {
	return []record.Field{
		record.Int("i", &n.I),
		record.Int("i8", &n.I8),
		record.Float("f", &n.F),
		record.Float("f32", &n.F32),
	}
}

// Priority and Weight are named numeric types.
type (
	Priority int
	Weight   float32
)

type Task struct {
	Name     string
	Priority Priority
	Weight   Weight
	Retries  []Priority
}

func (t *Task) Fields() []record.Field {
	return []record.Field{
		record.String("name", &t.Name),
		record.Int("priority", &t.Priority),
		record.Float("weight", &t.Weight),
		record.ListOf("retries", &t.Retries, record.IntValue[Priority]()),
	}
}

// Node shares its unqualified name with recordtest.Node.
type Node struct {
	ID   int
	Peer recordtest.Node
}

func (n *Node) Fields() []record.Field {
	return []record.Field{
		record.Int("id", &n.ID),
		record.Nested("peer", &n.Peer),
	}
}

func keysOf(m *record.Mapping) []string {
	var keys []string
	for p := m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

func sampleModel() Model {
	pk := Column{Name: "id", DataType: "INT", LdmType: core.ElementPrimaryKey, Tests: []core.BuiltinTest{core.TestPrimaryKey}}
	return Model{
		Name: "orders",
		Columns: []Column{
			pk,
			{Name: "customer_id", DataType: "INT", LdmType: core.ElementReference, Tests: []core.BuiltinTest{core.TestForeignKey}},
			{Name: "created_at", Description: "order time", DataType: "TIMESTAMP", LdmType: core.ElementDate, Tags: []string{"time"}},
		},
		Meta:          map[string]string{"owner": "sales", "tier": "gold"},
		PrimaryKey:    &pk,
		Rows:          1200,
		Ratio:         0.25,
		Enabled:       true,
		ByName:        map[string]Column{"id": pk},
		Granularities: []core.DateGranularity{core.GranularityDay, core.GranularityMonth},
	}
}
