package core

import "fmt"

// =============================================================================
// ElementKind
// =============================================================================

// ElementKind classifies the role a column plays in the semantic layer.
type ElementKind int

// Semantic layer element kinds.
const (
	// ElementPrimaryKey marks the column that identifies a dataset row.
	ElementPrimaryKey ElementKind = iota
	// ElementReference marks a column pointing at another dataset's primary key.
	ElementReference
	// ElementDate marks a date or timestamp column backing a date dimension.
	ElementDate
	// ElementFact marks a numeric column that can be aggregated.
	ElementFact
	// ElementAttribute marks a column used for slicing and grouping.
	ElementAttribute
	// ElementLabel marks an alternative textual representation of an attribute.
	ElementLabel
)

var elementKindNames = [...]string{
	ElementPrimaryKey: "primary_key",
	ElementReference:  "reference",
	ElementDate:       "date",
	ElementFact:       "fact",
	ElementAttribute:  "attribute",
	ElementLabel:      "label",
}

// String returns the literal used by the semantic layer for the kind.
func (k ElementKind) String() string {
	if !k.IsValid() {
		return "unknown"
	}
	return elementKindNames[k]
}

// IsValid reports whether k is one of the declared kinds.
func (k ElementKind) IsValid() bool {
	return k >= ElementPrimaryKey && k <= ElementLabel
}

// ParseElementKind converts a literal to an ElementKind.
// Returns the kind and true if valid, or ElementAttribute and false if invalid.
func ParseElementKind(s string) (ElementKind, bool) {
	for i, name := range elementKindNames {
		if name == s {
			return ElementKind(i), true
		}
	}
	return ElementAttribute, false
}

// ElementKindValues returns every kind in declaration order.
func ElementKindValues() []ElementKind {
	return []ElementKind{
		ElementPrimaryKey,
		ElementReference,
		ElementDate,
		ElementFact,
		ElementAttribute,
		ElementLabel,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ElementKind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, &UnknownLiteralError{Enum: "element kind", Value: k.String()}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ElementKind) UnmarshalText(text []byte) error {
	v, ok := ParseElementKind(string(text))
	if !ok {
		return &UnknownLiteralError{Enum: "element kind", Value: string(text)}
	}
	*k = v
	return nil
}

// UnknownLiteralError is returned when text does not name a variant of a
// vocabulary enumeration.
type UnknownLiteralError struct {
	Enum  string
	Value string
}

func (e *UnknownLiteralError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Enum, e.Value)
}
