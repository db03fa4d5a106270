package writers

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/playfulmath/uniformity/engine/core"
	"github.com/playfulmath/uniformity/engine/geometry"
)

// Fixed little-endian layout of one binary STL facet record.
type stlFacet struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

/**
 * @brief Serializes a triangulation as a binary STL stream: an 80-byte
 * text header, a uint32 triangle count, then one 50-byte facet record
 * per triangle, all little-endian. The attribute word carries the low
 * 16 bits of the triangle's packed colour.
 */
func WriteSTL(w io.Writer, header string, tri *geometry.Triangulation) error {
	if tri == nil {
		return core.ErrNoTriangulation
	}

	var head [80]byte
	copy(head[:], header)
	if _, err := w.Write(head[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(tri.Len())); err != nil {
		return err
	}

	for _, t := range tri.Triangles() {
		facet := stlFacet{
			Normal:    [3]float32{t.Normal.X, t.Normal.Y, t.Normal.Z},
			Attribute: uint16(t.Colour & 0xFFFF),
		}
		for i, p := range t.Points {
			facet.Vertices[i] = [3]float32{p.X, p.Y, p.Z}
		}
		if err := binary.Write(w, binary.LittleEndian, &facet); err != nil {
			return err
		}
	}
	return nil
}

/** @brief WriteSTL to a file path, creating or truncating it. */
func ExportSTL(path string, header string, tri *geometry.Triangulation) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := WriteSTL(bw, header, tri); err != nil {
		return err
	}
	return bw.Flush()
}
