// Package vectorspace implements the TF-IDF vector space model.
//
// Fit learns a vocabulary and IDF weights from the normalised corpus texts;
// Transform projects new text into the same space. Fitting is deterministic:
// the vocabulary is ordered lexicographically and weights carry no random
// component, so the same corpus always yields the same model.
package vectorspace
