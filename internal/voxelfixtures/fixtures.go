package voxelfixtures

import "github.com/katalvlaran/trabecula/volume"

func build(nx, ny, nz int, lit func(x, y, z int) bool) *volume.Volume {
	ext := volume.Extents{NX: nx, NY: ny, NZ: nz}
	data := make([]byte, ext.Size())
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				if lit(x, y, z) {
					data[z*nx*ny+y*nx+x] = 1
				}
			}
		}
	}
	v, err := volume.Pad(data, ext)
	if err != nil {
		panic(err) // fixtures always build valid shapes
	}

	return v
}

// StraightRod returns a single row of length foreground voxels along x,
// already one voxel thick: thinning and graph extraction must treat it
// as the identity.
func StraightRod(length int) *volume.Volume {
	return build(length, 1, 1, func(x, y, z int) bool { return true })
}

// Elbow returns two perpendicular arms of armLen voxels each, sharing
// one corner voxel, with no diagonal step between them.
func Elbow(armLen int) *volume.Volume {
	return build(armLen, armLen, 1, func(x, y, z int) bool {
		return x == 0 || y == 0
	})
}

// TJunction returns three arms of armLen voxels radiating from a
// shared center voxel along +x, -x and +y.
func TJunction(armLen int) *volume.Volume {
	size := 2*armLen + 1
	center := armLen
	return build(size, size, 1, func(x, y, z int) bool {
		if y == center && x >= 0 && x <= 2*armLen {
			return true
		}
		if x == center && y >= center {
			return true
		}

		return false
	})
}

// ShortSpur returns a T-junction whose third arm (the +y arm) has
// length spurLen instead of armLen, for pruning tests.
func ShortSpur(armLen, spurLen int) *volume.Volume {
	size := 2*armLen + 1
	center := armLen
	return build(size, size, 1, func(x, y, z int) bool {
		if y == center && x >= 0 && x <= 2*armLen {
			return true
		}
		if x == center && y >= center && y <= center+spurLen {
			return true
		}

		return false
	})
}

// NearDoubleJunction returns two T-junctions (armLen-voxel arms) joined
// by a bridgeLen-voxel internal edge, for fusion tests.
func NearDoubleJunction(armLen, bridgeLen int) *volume.Volume {
	nx := armLen + 1 + bridgeLen + 1 + armLen
	ny := 2*armLen + 1
	centerY := armLen
	left := armLen
	right := left + 1 + bridgeLen

	return build(nx, ny, 1, func(x, y, z int) bool {
		if y == centerY && x >= 0 && x <= nx-1 {
			return true
		}
		if x == left && y >= centerY-armLen && y < centerY {
			return true
		}
		if x == right && y >= centerY-armLen && y < centerY {
			return true
		}

		return false
	})
}

// SolidCube returns a fully lit n x n x n volume.
func SolidCube(n int) *volume.Volume {
	return build(n, n, n, func(x, y, z int) bool { return true })
}
