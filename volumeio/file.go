package volumeio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/trabecula/volume"
)

// headerMagic identifies the reference adapter's fixed binary header,
// distinguishing it at a glance from an Analyze-7.5 .hdr (which starts
// with a little-endian sizeof_hdr of 348).
var headerMagic = [4]byte{'T', 'R', 'A', 'B'}

// header is the fixed on-disk layout of a <basename>.hdr file: magic,
// extents, and pitch, in that order, all little-endian.
type header struct {
	Magic [4]byte
	NX    int32
	NY    int32
	NZ    int32
	Pitch float64
}

// FileLoader reads the two-file reference format (<basename>.hdr +
// <basename>.img) this package stands in for a real Analyze-7.5
// container with.
type FileLoader struct{}

// Load implements Loader.
func (FileLoader) Load(basename string) ([]byte, volume.Extents, float64, error) {
	hdrFile, err := os.Open(basename + ".hdr")
	if err != nil {
		return nil, volume.Extents{}, 0, fmt.Errorf("volumeio: open header: %w: %w", err, ErrIOFailure)
	}
	defer hdrFile.Close()

	var h header
	if err := binary.Read(hdrFile, binary.LittleEndian, &h); err != nil {
		return nil, volume.Extents{}, 0, fmt.Errorf("volumeio: read header: %w: %w", err, ErrIOFailure)
	}
	if h.Magic != headerMagic {
		return nil, volume.Extents{}, 0, fmt.Errorf("volumeio: bad header magic %q: %w", h.Magic, ErrIOFailure)
	}

	ext := volume.Extents{NX: int(h.NX), NY: int(h.NY), NZ: int(h.NZ)}

	imgFile, err := os.Open(basename + ".img")
	if err != nil {
		return nil, volume.Extents{}, 0, fmt.Errorf("volumeio: open image: %w: %w", err, ErrIOFailure)
	}
	defer imgFile.Close()

	data := make([]byte, ext.Size())
	if _, err := io.ReadFull(imgFile, data); err != nil {
		return nil, volume.Extents{}, 0, fmt.Errorf("volumeio: read image: %w: %w", err, ErrIOFailure)
	}

	return data, ext, h.Pitch, nil
}

// FileSaver writes the skeleton back out as <basename>_skeleton.hdr
// and <basename>_skeleton.img in the same reference format.
type FileSaver struct {
	Pitch float64
}

// SaveSkeleton implements Saver.
func (s FileSaver) SaveSkeleton(basename string, data []byte, ext volume.Extents) error {
	h := header{Magic: headerMagic, NX: int32(ext.NX), NY: int32(ext.NY), NZ: int32(ext.NZ), Pitch: s.Pitch}

	hdrFile, err := os.Create(basename + "_skeleton.hdr")
	if err != nil {
		return fmt.Errorf("volumeio: create header: %w: %w", err, ErrIOFailure)
	}
	defer hdrFile.Close()

	if err := binary.Write(hdrFile, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("volumeio: write header: %w: %w", err, ErrIOFailure)
	}

	imgFile, err := os.Create(basename + "_skeleton.img")
	if err != nil {
		return fmt.Errorf("volumeio: create image: %w: %w", err, ErrIOFailure)
	}
	defer imgFile.Close()

	if _, err := imgFile.Write(data); err != nil {
		return fmt.Errorf("volumeio: write image: %w: %w", err, ErrIOFailure)
	}

	return nil
}
