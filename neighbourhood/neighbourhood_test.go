package neighbourhood_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/trabecula/neighbourhood"
	"github.com/katalvlaran/trabecula/volume"
)

func TestOffsets_SixAdjacentMatchDirections(t *testing.T) {
	dims := volume.Dims{NX: 5, NY: 5, NZ: 5}
	off := neighbourhood.Offsets(dims)

	stride := dims.StrideY()
	plane := dims.Plane()

	assert.Equal(t, -stride, off[0], "U")
	assert.Equal(t, plane, off[1], "N")
	assert.Equal(t, -1, off[2], "W")
	assert.Equal(t, 1, off[3], "E")
	assert.Equal(t, -plane, off[4], "S")
	assert.Equal(t, stride, off[5], "D")
}

func TestNeighbours_AddsOffsets(t *testing.T) {
	dims := volume.Dims{NX: 5, NY: 5, NZ: 5}
	off := neighbourhood.Offsets(dims)
	p := 62 // arbitrary interior point
	nb := neighbourhood.Neighbours(p, off)
	for i, o := range off {
		assert.Equal(t, p+o, nb[i])
	}
}

func TestLitCount(t *testing.T) {
	ext := volume.Extents{NX: 3, NY: 3, NZ: 3}
	data := make([]byte, ext.Size())
	v, err := volume.Pad(data, ext)
	assert.NoError(t, err)

	center := v.Index(2, 2, 2)
	off := neighbourhood.Offsets(v.Dims)
	nb := neighbourhood.Neighbours(center, off)
	assert.Equal(t, 0, neighbourhood.LitCount(v, nb))

	v.Data[nb[0]] = 1
	v.Data[nb[7]] = 1
	assert.Equal(t, 2, neighbourhood.LitCount(v, nb))
}

func TestIDX26_CoversS26(t *testing.T) {
	assert.Equal(t, len(neighbourhood.S26), neighbourhood.IDX26[18])
	for i := 18; i < 26; i++ {
		assert.Equal(t, neighbourhood.IDX26[18], neighbourhood.IDX26[i+1], "positions 18-25 have no S26 entries")
	}
}

func TestIDX6_18_CoversS6_18(t *testing.T) {
	assert.Equal(t, len(neighbourhood.S6_18), neighbourhood.IDX6_18[18])
}
