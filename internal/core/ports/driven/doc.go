// Package driven defines the interfaces that core calls OUT to infrastructure
// and to the algorithmic building blocks.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and adapters implement them.
//
// # Required Interfaces
//
//   - CorpusStore: Recipe record persistence
//   - IngredientNormaliser: Ingredient token cleaning
//   - CorpusNormaliser: Lossy free-text normalisation for the vector space
//   - Vectoriser: TF-IDF fitting and query projection
//   - IndexBuilder: Cosine nearest-neighbour index construction
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - Watcher: Corpus change notifications. Without it, the model is only
//     rebuilt on explicit request.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
