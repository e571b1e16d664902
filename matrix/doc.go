// Package matrix provides the dense float64 matrix the numeric
// exercises share.
//
// What:
//
//   - Dense is a row-major matrix with validated constructors and the
//     linear-algebra subset the exercises need: matrix–vector and
//     matrix–matrix products, transpose, elementwise apply, scaling
//     and addition.
//   - ArgMax picks the index of the largest element of a vector —
//     the classifier's "which output neuron fired hardest".
//
// Why:
//
//   - pagerank/ iterates r′ = (1−d)/N + d·M·r over the transition matrix.
//   - nn/ stores layer weights and runs forward/backward passes.
//
// At and Set do not bounds-check; indices are the caller's contract.
// Construction and the binary operations validate shapes and return
// sentinel errors.
//
// Errors:
//
//   - ErrBadDimensions: a constructor got a non-positive dimension.
//   - ErrRaggedRows: input rows have differing lengths.
//   - ErrDimensionMismatch: operand shapes are incompatible.
package matrix
