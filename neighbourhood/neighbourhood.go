package neighbourhood

import "github.com/katalvlaran/trabecula/volume"

// Offsets returns the 26 signed padded-index offsets of a point, in the
// fixed order documented in doc.go: 6-adjacent, then the 12 face-diagonal
// (18-set) neighbours, then the 8 corner-diagonal neighbours.
//
// Complexity: O(1).
func Offsets(dims volume.Dims) [26]int {
	stride := dims.StrideY()
	plane := dims.Plane()

	var off [26]int

	// 6-adjacent: U, N, W, E, S, D
	off[0] = -stride
	off[1] = plane
	off[2] = -1
	off[3] = 1
	off[4] = -plane
	off[5] = stride

	// 18-adjacent face-diagonals
	off[6] = -stride + plane  // U N
	off[7] = -1 - stride      // W U
	off[8] = 1 - stride       // E U
	off[9] = -stride - plane  // U S
	off[10] = -1 + plane      // W N
	off[11] = 1 + plane       // E N
	off[12] = -1 - plane      // W S
	off[13] = 1 - plane       // E S
	off[14] = stride + plane  // D N
	off[15] = -1 + stride     // W D
	off[16] = 1 + stride      // E D
	off[17] = stride - plane  // D S

	// 26-adjacent corner-diagonals
	off[18] = -1 - stride + plane // W U N
	off[19] = 1 - stride + plane  // E U N
	off[20] = -1 - stride - plane // W U S
	off[21] = 1 - stride - plane  // E U S
	off[22] = -1 + stride + plane // W D N
	off[23] = 1 + stride + plane  // E D N
	off[24] = -1 + stride - plane // W D S
	off[25] = 1 + stride - plane  // E D S

	return off
}

// Neighbours returns the 26 padded linear indices surrounding p, obtained
// by adding the precomputed offset table to p. No bounds checks are
// performed: correctness depends on the border invariant maintained by
// package volume, which guarantees every probe lands inside the buffer.
//
// Complexity: O(1).
func Neighbours(p int, off [26]int) [26]int {
	var nb [26]int
	for i, o := range off {
		nb[i] = p + o
	}

	return nb
}

// LitCount returns how many of the 26 neighbour positions hold foreground
// voxels in vol.
//
// Complexity: O(1).
func LitCount(vol *volume.Volume, nb [26]int) int {
	n := 0
	for _, idx := range nb {
		if vol.Lit(idx) {
			n++
		}
	}

	return n
}
