package geometry

import (
	"github.com/playfulmath/uniformity/engine/core"
	"github.com/playfulmath/uniformity/engine/math"
)

/**
 * @brief Backing arrays grow and shrink in buckets of this many
 * elements so that appending and removing do not reallocate on every
 * size change.
 */
const capacityAlignShift = 4

// Rounds n up to the next capacity bucket boundary.
func alignCapacity(n int) int {
	granule := 1 << capacityAlignShift
	return (n + granule - 1) &^ (granule - 1)
}

// True when moving from count a to count b crosses a bucket boundary.
func realign(a, b int) bool {
	return alignCapacity(a) != alignCapacity(b)
}

/**
 * @brief A single triangle: three vertex positions in winding order
 * plus the shading data inherited from the face it was cut from.
 */
type Triangle struct {
	Points [3]math.Vec3
	/** @brief The normal of the originating face. */
	Normal math.Vec3
	/** @brief Packed RGBA colour of the originating face. */
	Colour uint32
}

/**
 * @brief An append-only triangle list. The backing storage capacity is
 * always the bucket for the current count; it is reallocated only when
 * an append or a merge crosses a bucket boundary.
 */
type Triangulation struct {
	triangles []Triangle
}

/** @brief Creates a new, empty triangulation. */
func NewTriangulation() *Triangulation {
	return &Triangulation{}
}

/** @brief The number of triangles held. */
func (t *Triangulation) Len() int {
	if t == nil {
		return 0
	}
	return len(t.triangles)
}

/** @brief Returns triangle i. Panics on a bad index, like a slice. */
func (t *Triangulation) At(i int) Triangle {
	return t.triangles[i]
}

/**
 * @brief Read-only view of the triangle list. The slice aliases the
 * backing storage; callers must not keep it across an Add.
 */
func (t *Triangulation) Triangles() []Triangle {
	if t == nil {
		return nil
	}
	return t.triangles
}

/**
 * @brief Appends one triangle, growing the backing storage only when
 * the capacity bucket for count+1 differs from the bucket for count.
 * The triangulation is unmodified on error.
 */
func (t *Triangulation) Add(tri Triangle) error {
	if t == nil {
		return core.ErrNoTriangulation
	}
	count := len(t.triangles)
	if realign(count, count+1) {
		grown := make([]Triangle, count, alignCapacity(count+1))
		copy(grown, t.triangles)
		t.triangles = grown
	}
	t.triangles = append(t.triangles, tri)
	return nil
}

/**
 * @brief Produces one new triangulation containing every triangle from
 * every input, in input order and then in each input's own order. The
 * output owns its storage; the inputs are not mutated and remain owned
 * by the caller.
 */
func Merge(parts []*Triangulation) (*Triangulation, error) {
	output := NewTriangulation()
	for _, part := range parts {
		if part == nil {
			return nil, core.ErrNoTriangulation
		}
		for _, tri := range part.triangles {
			if err := output.Add(tri); err != nil {
				return nil, err
			}
		}
	}
	return output, nil
}

/** @brief Deep copy. The clone shares no storage with the original. */
func (t *Triangulation) Clone() (*Triangulation, error) {
	if t == nil {
		return nil, core.ErrNoTriangulation
	}
	clone := NewTriangulation()
	for _, tri := range t.triangles {
		if err := clone.Add(tri); err != nil {
			return nil, err
		}
	}
	return clone, nil
}
