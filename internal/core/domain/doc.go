// Package domain defines the core business entities for RecipeML.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RecipeRecord: A single recipe in the corpus
//   - Corpus: The frozen, position-indexed recipe collection
//   - SparseVector: A TF-IDF vector in the fitted feature space
//   - Recommendation: A ranked match returned by the matching service
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
