package core

// ManifestPath is where dbt writes the compiled project manifest, relative to
// the project root.
const ManifestPath = "target/manifest.json"

// BuiltinTest identifies a data-quality test implemented outside this module,
// or the argument convention such a test uses.
type BuiltinTest int

// Built-in test identifiers.
const (
	// TestPrimaryKey is the dbt_constraints uniqueness + not-null test.
	TestPrimaryKey BuiltinTest = iota
	// TestForeignKey is the dbt_constraints referential integrity test.
	TestForeignKey
	// TestForeignKeyRef is the foreign key test argument naming the referenced table.
	TestForeignKeyRef
)

var builtinTestNames = [...]string{
	TestPrimaryKey:    "dbt_constraints.primary_key",
	TestForeignKey:    "dbt_constraints.foreign_key",
	TestForeignKeyRef: "pk_table_name",
}

// String returns the identifier as it appears in a dbt manifest.
func (b BuiltinTest) String() string {
	if !b.IsValid() {
		return "unknown"
	}
	return builtinTestNames[b]
}

// IsValid reports whether b is one of the declared identifiers.
func (b BuiltinTest) IsValid() bool {
	return b >= TestPrimaryKey && b <= TestForeignKeyRef
}

// IsConstraint reports whether b names a test rather than a test argument.
func (b BuiltinTest) IsConstraint() bool {
	return b == TestPrimaryKey || b == TestForeignKey
}

// ParseBuiltinTest converts an identifier to a BuiltinTest.
func ParseBuiltinTest(s string) (BuiltinTest, bool) {
	for i, name := range builtinTestNames {
		if name == s {
			return BuiltinTest(i), true
		}
	}
	return TestPrimaryKey, false
}

// BuiltinTestValues returns every identifier in declaration order.
func BuiltinTestValues() []BuiltinTest {
	return []BuiltinTest{TestPrimaryKey, TestForeignKey, TestForeignKeyRef}
}

// MarshalText implements encoding.TextMarshaler.
func (b BuiltinTest) MarshalText() ([]byte, error) {
	if !b.IsValid() {
		return nil, &UnknownLiteralError{Enum: "builtin test", Value: b.String()}
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BuiltinTest) UnmarshalText(text []byte) error {
	v, ok := ParseBuiltinTest(string(text))
	if !ok {
		return &UnknownLiteralError{Enum: "builtin test", Value: string(text)}
	}
	*b = v
	return nil
}
