// Package normalisers contains the text normalisation implementations.
//
// Two paths exist, mirroring the two shapes of input text:
//
//   - ingredient: cleans discrete ingredient tokens (lowercase, strip
//     punctuation, deduplicate). Lossless enough for display-adjacent use.
//   - corpustext: normalises free text for vectorisation (stopword removal,
//     stemming). Deliberately lossy to increase term overlap between
//     semantically similar recipes.
//
// Both run identically at ingest time and at query time so corpus and query
// vectors live in the same feature space.
package normalisers
