// Package similarity implements the cosine nearest-neighbour index.
//
// The index stores inverted postings (term -> record weights), so a query
// only scores records that share at least one term with it. Because every
// indexed vector is unit length, cosine similarity is a plain dot product
// and cosine distance is 1 minus that.
package similarity
