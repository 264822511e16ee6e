package volume_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trabecula/volume"
)

func TestPad_Errors(t *testing.T) {
	cases := []struct {
		name string
		ext  volume.Extents
		data []byte
	}{
		{"ZeroX", volume.Extents{NX: 0, NY: 2, NZ: 2}, make([]byte, 0)},
		{"NegativeZ", volume.Extents{NX: 2, NY: 2, NZ: -1}, make([]byte, 4)},
		{"LengthMismatch", volume.Extents{NX: 2, NY: 2, NZ: 2}, make([]byte, 7)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := volume.Pad(tc.data, tc.ext)
			assert.ErrorIs(t, err, volume.ErrInputShape)
		})
	}
}

func TestPad_BorderInvariant(t *testing.T) {
	ext := volume.Extents{NX: 3, NY: 3, NZ: 3}
	data := make([]byte, ext.Size())
	for i := range data {
		data[i] = 1 // solid cube
	}
	v, err := volume.Pad(data, ext)
	require.NoError(t, err)

	dims := v.Dims
	for z := 0; z < dims.NZ; z++ {
		for y := 0; y < dims.NY; y++ {
			for x := 0; x < dims.NX; x++ {
				onBorder := x == 0 || y == 0 || z == 0 ||
					x == dims.NX-1 || y == dims.NY-1 || z == dims.NZ-1
				if onBorder {
					assert.Falsef(t, v.Lit(v.Index(x, y, z)), "border voxel (%d,%d,%d) should be background", x, y, z)
				}
			}
		}
	}
}

func TestPad_CopiesInterior(t *testing.T) {
	ext := volume.Extents{NX: 2, NY: 2, NZ: 1}
	// x-fastest, z-slowest: index = z*(nx*ny) + y*nx + x
	data := []byte{1, 0, 0, 1}
	v, err := volume.Pad(data, ext)
	require.NoError(t, err)

	assert.True(t, v.Lit(v.Index(1, 1, 1)))  // (0,0,0) -> 1
	assert.False(t, v.Lit(v.Index(2, 1, 1))) // (1,0,0) -> 0
	assert.False(t, v.Lit(v.Index(1, 2, 1))) // (0,1,0) -> 0
	assert.True(t, v.Lit(v.Index(2, 2, 1)))  // (1,1,0) -> 1
}

func TestPadStrip_RoundTrip(t *testing.T) {
	ext := volume.Extents{NX: 4, NY: 3, NZ: 2}
	data := make([]byte, ext.Size())
	for i := range data {
		if i%3 == 0 {
			data[i] = 1
		}
	}
	v, err := volume.Pad(data, ext)
	require.NoError(t, err)

	assert.Equal(t, data, v.Strip(ext))
}

func TestToExternal_RoundTrip(t *testing.T) {
	ext := volume.Extents{NX: 5, NY: 4, NZ: 3}
	dims := volume.Padded(ext)
	v := &volume.Volume{Dims: dims, Data: make([]byte, dims.Size())}

	for z := 0; z < ext.NZ; z++ {
		for y := 0; y < ext.NY; y++ {
			for x := 0; x < ext.NX; x++ {
				padded := v.Index(x+1, y+1, z+1)
				gx, gy, gz := v.ToExternal(padded)
				assert.Equal(t, [3]int{x, y, z}, [3]int{gx, gy, gz})
			}
		}
	}
}

func TestClone_Independent(t *testing.T) {
	ext := volume.Extents{NX: 2, NY: 2, NZ: 2}
	data := make([]byte, ext.Size())
	data[0] = 1
	v, err := volume.Pad(data, ext)
	require.NoError(t, err)

	clone := v.Clone()
	clone.Data[v.Index(1, 1, 1)] = 0
	assert.True(t, v.Lit(v.Index(1, 1, 1)), "mutating clone must not affect original")
}

func TestCountForeground(t *testing.T) {
	ext := volume.Extents{NX: 3, NY: 3, NZ: 3}
	data := make([]byte, ext.Size())
	for i := 0; i < 5; i++ {
		data[i] = 1
	}
	v, err := volume.Pad(data, ext)
	require.NoError(t, err)
	assert.Equal(t, 5, v.CountForeground())
}
