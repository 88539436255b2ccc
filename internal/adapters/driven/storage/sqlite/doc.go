// Package sqlite provides the persistent corpus store.
//
// Recipes are kept in a single table ordered by position id. The corpus is
// only ever replaced wholesale inside one transaction, matching the frozen
// corpus lifecycle: a partially written corpus is never observable.
package sqlite
