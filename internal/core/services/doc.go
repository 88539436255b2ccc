// Package services implements the core business logic for RecipeML.
//
// Services implement the driving ports and depend only on domain types and
// driven port interfaces. The two services are:
//
//   - MatchingService: builds the vector space model and answers
//     recommend/lookup queries against an atomically swapped snapshot
//   - IngestService: turns a raw recipe dump into the persisted corpus
package services
