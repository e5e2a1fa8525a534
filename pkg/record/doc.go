// Package record converts typed records to and from untyped mappings.
//
// A record type describes its schema by implementing Record: Fields returns
// one descriptor per declared field, bound to the field's storage. The same
// descriptors drive both directions:
//
//   - Materialize reads a mapping (as produced by a JSON or YAML decoder),
//     coerces each declared key to its field type and recurses into nested
//     records, lists and maps. Any shape problem yields a
//     *SchemaMismatchError and no partially built record.
//   - Flatten writes a record into an ordered Mapping whose keys are the
//     declared field names in declaration order. Flatten cannot fail.
//
// For every record v, Materialize(Flatten(v)) equals v.
//
// Coercion is deliberately narrow. Strings and bools accept only their own
// type. Integer fields accept any integer kind in range, number literals,
// and integral floats unless Options.AllowIntegralFloats is off. Float fields
// accept any number. Enum fields accept their exact literal, or any casing
// when Options.CaseInsensitiveEnums is set.
package record
