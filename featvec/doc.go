// Package featvec post-processes flattened float32 descriptor vectors:
// L2 normalization and pairwise comparison.
//
// What:
//
//   - Normalize scales a feature vector to unit Euclidean norm in place —
//     the recommended alternative to volume normalization when supercells of
//     different sizes must map to comparable descriptors.
//   - Cosine and Euclidean measure the distance between two descriptors of
//     equal width, e.g. for nearest-neighbor retrieval over a descriptor set.
//
// Why:
//
//   - Descriptors exist to feed statistical models; magnitude-free
//     comparison between systems is the first thing every consumer needs.
//   - The heavy lifting is delegated to github.com/viant/vec, whose
//     search.Float32s primitives are SIMD-accelerated where the platform
//     allows.
//
// Errors:
//
//   - ErrDimensionMismatch: the two vectors differ in width.
//   - ErrEmptyVector: an empty input.
//   - ErrZeroVector: normalization of an all-zero vector.
package featvec
