// Package core defines the shared vocabulary of the semantic layer.
//
// This package contains:
//   - Element kinds (primary_key, reference, date, fact, attribute, label)
//   - Date and time granularities for date dimensions
//   - Built-in data-quality test identifiers
//   - Datetime-compatible source column types
//
// Every enumeration is a closed set. The string literal of each variant is
// part of the interchange format consumed by the semantic layer, so changing
// one is a breaking change.
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
