// Package neighbourhood computes the 26-neighbour index vector of any
// padded point and exposes the compile-time adjacency tables the simple-
// point test in package topology floods over.
//
// The offset order is fixed by convention and must never be reordered:
// indices 0-5 are the 6-adjacent neighbours (U, N, W, E, S, D), indices
// 6-17 are the 12 face-diagonal (18-set) neighbours, and indices 18-25
// are the 8 corner-diagonal neighbours. S26/IDX26 and S6_18/IDX6_18 are
// indexed against this exact order and are reproduced byte-for-byte from
// the reference implementation; they are an intrinsic part of the
// thinning algorithm, not configuration.
package neighbourhood
