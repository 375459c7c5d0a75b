// Package domain defines the core business entities for SquareOne.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Worksheet: The user's persisted collection of saved items
//   - WorksheetItem: A saved tile, guide, or resource with optional notes
//   - Tile: A read-only node of educational content (stage or sub-tile)
//   - Document: A structured, renderer-agnostic printable document
//   - JourneyResult: The guidance generated from a journey's answers
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
