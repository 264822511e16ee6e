package volume

// Extents describes the shape of an unpadded voxel grid, x-fastest,
// z-slowest, as delivered by the VolumeIO collaborator.
type Extents struct {
	NX, NY, NZ int
}

// Size returns nx*ny*nz, the number of voxels in the unpadded grid.
func (e Extents) Size() int {
	return e.NX * e.NY * e.NZ
}

// Dims describes the padded grid shape: (nx+2, ny+2, nz+2).
type Dims struct {
	NX, NY, NZ int
}

// Padded returns the Dims corresponding to the given Extents.
func Padded(e Extents) Dims {
	return Dims{NX: e.NX + 2, NY: e.NY + 2, NZ: e.NZ + 2}
}

// Plane returns (nx+2)*(ny+2), the stride between consecutive z-slices.
func (d Dims) Plane() int {
	return d.NX * d.NY
}

// StrideY returns nx+2, the stride between consecutive rows.
func (d Dims) StrideY() int {
	return d.NX
}

// Size returns the total number of voxels in the padded grid.
func (d Dims) Size() int {
	return d.NX * d.NY * d.NZ
}

// Volume is a dense padded binary voxel buffer: one byte per voxel, 0 for
// background and 1 for foreground. The outermost layer is always
// background; this invariant is established by Pad and preserved by every
// operation in this module.
type Volume struct {
	Dims Dims
	Data []byte
}

// Index returns the padded linear index of (x,y,z) in padded coordinates.
func (v *Volume) Index(x, y, z int) int {
	return z*v.Dims.Plane() + y*v.Dims.StrideY() + x
}

// Lit reports whether the voxel at padded index i is foreground.
func (v *Volume) Lit(i int) bool {
	return v.Data[i] != 0
}
