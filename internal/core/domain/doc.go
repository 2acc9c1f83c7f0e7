// Package domain defines the core entities for trecct.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Mapping: An ordered child-name to value mapping
//   - FieldResult: The outcome of extracting one tag from a document
//   - Record: One flattened trial document
//   - TagSet: The ordered list of tags extracted from every document
//   - RunReport: The outcome of one corpus conversion
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/wk8/go-ordered-map/v2
//   - Cannot Import: Any internal/ package
package domain
