package domain

import "math"

// SparseVector maps term index to weight in the fitted TF-IDF space.
// Absent terms are zero. Fitted document vectors are unit length, so the
// cosine similarity between two of them is their dot product.
type SparseVector map[int]float64

// Dot returns the dot product with another sparse vector.
func (v SparseVector) Dot(other SparseVector) float64 {
	// Iterate the smaller vector
	if len(other) < len(v) {
		v, other = other, v
	}
	var sum float64
	for i, w := range v {
		sum += w * other[i]
	}
	return sum
}

// Norm returns the Euclidean length of the vector.
func (v SparseVector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Normalise scales the vector to unit length in place.
// A zero vector is left unchanged.
func (v SparseVector) Normalise() {
	norm := v.Norm()
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] /= norm
	}
}
