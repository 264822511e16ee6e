package volume

import "fmt"

// Pad copies an external nx*ny*nz byte buffer (x-fastest, z-slowest, any
// non-zero byte meaning foreground) into a freshly allocated padded Volume
// with a one-voxel zero border on every side. This is the sole place the
// pipeline converts from external to internal coordinates.
//
// Returns ErrInputShape if ext has a non-positive extent or data does not
// have exactly ext.Size() bytes.
func Pad(data []byte, ext Extents) (*Volume, error) {
	if ext.NX <= 0 || ext.NY <= 0 || ext.NZ <= 0 {
		return nil, fmt.Errorf("volume: extents %+v: %w", ext, ErrInputShape)
	}
	if len(data) != ext.Size() {
		return nil, fmt.Errorf("volume: got %d bytes, want %d: %w", len(data), ext.Size(), ErrInputShape)
	}

	dims := Padded(ext)
	v := &Volume{Dims: dims, Data: make([]byte, dims.Size())}

	plane := ext.NX * ext.NY
	for z := 0; z < ext.NZ; z++ {
		zBase := z * plane
		for y := 0; y < ext.NY; y++ {
			yBase := zBase + y*ext.NX
			for x := 0; x < ext.NX; x++ {
				if data[yBase+x] != 0 {
					v.Data[v.Index(x+1, y+1, z+1)] = 1
				}
			}
		}
	}

	return v, nil
}

// ToExternal maps a padded linear index back to external (x,y,z)
// coordinates in the original, unpadded grid, for use at the boundary
// with the VolumeIO collaborator.
func (v *Volume) ToExternal(i int) (x, y, z int) {
	plane := v.Dims.Plane()
	stride := v.Dims.StrideY()

	z = i/plane - 1
	rem := i % plane
	y = rem/stride - 1
	x = rem%stride - 1

	return x, y, z
}

// Strip returns the non-border region of the volume as an external
// nx*ny*nz byte buffer (0/1 per voxel), the inverse of Pad.
func (v *Volume) Strip(ext Extents) []byte {
	out := make([]byte, ext.Size())
	plane := ext.NX * ext.NY
	for z := 0; z < ext.NZ; z++ {
		zBase := z * plane
		for y := 0; y < ext.NY; y++ {
			yBase := zBase + y*ext.NX
			for x := 0; x < ext.NX; x++ {
				if v.Lit(v.Index(x+1, y+1, z+1)) {
					out[yBase+x] = 1
				}
			}
		}
	}

	return out
}

// Clone returns a deep copy of v, leaving v untouched.
func (v *Volume) Clone() *Volume {
	data := make([]byte, len(v.Data))
	copy(data, v.Data)

	return &Volume{Dims: v.Dims, Data: data}
}

// Foreground returns the padded linear indices of every foreground voxel,
// in ascending index order.
func (v *Volume) Foreground() []int {
	indices := make([]int, 0)
	for i, b := range v.Data {
		if b != 0 {
			indices = append(indices, i)
		}
	}

	return indices
}

// CountForeground returns the number of foreground voxels in the padded
// volume (border voxels are always background, so this equals the count
// over the unpadded region too).
func (v *Volume) CountForeground() int {
	n := 0
	for _, b := range v.Data {
		if b != 0 {
			n++
		}
	}

	return n
}
