package resources

import (
	"github.com/playfulmath/uniformity/engine/core"
	"github.com/playfulmath/uniformity/engine/math"
)

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	/** @brief No resource type; files the engine does not recognize. */
	ResourceTypeNone ResourceType = iota
	/** @brief Text resource type. */
	ResourceTypeText
	/** @brief Binary resource type. */
	ResourceTypeBinary
	/** @brief Polyhedron model resource type (OFF files). */
	ResourceTypeModel
	/** @brief Custom resource type. Used by loaders outside the core engine. */
	ResourceTypeCustom
)

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The size of the resource data in bytes. */
	DataSize uint64
	/** @brief The resource data. */
	Data interface{}
}

/**
 * @brief One planar polygon boundary of a polyhedron, given as an
 * ordered loop of indices into the owning polyhedron's vertex array.
 * The shading data (normal and packed colour) belongs to the whole face
 * and is inherited by every triangle cut out of it.
 */
type Face struct {
	/** @brief Ordered vertex-index loop. */
	Indices []int
	/** @brief The face normal, computed at load time. */
	Normal math.Vec3
	/** @brief Packed RGBA colour (0xRRGGBBAA). */
	Colour uint32
}

/**
 * @brief A polyhedron as produced by a model loader: one vertex array
 * shared by all faces plus the per-face index loops. Immutable during
 * triangulation.
 */
type Polyhedron struct {
	Vertices []math.Vec3
	Faces    []Face
}

/** @brief The axis-aligned bounds of the polyhedron's vertices. */
func (p *Polyhedron) Extents() math.Extents3D {
	if len(p.Vertices) == 0 {
		return math.Extents3D{}
	}
	e := math.Extents3D{Min: p.Vertices[0], Max: p.Vertices[0]}
	for _, v := range p.Vertices[1:] {
		if v.X < e.Min.X {
			e.Min.X = v.X
		}
		if v.Y < e.Min.Y {
			e.Min.Y = v.Y
		}
		if v.Z < e.Min.Z {
			e.Min.Z = v.Z
		}
		if v.X > e.Max.X {
			e.Max.X = v.X
		}
		if v.Y > e.Max.Y {
			e.Max.Y = v.Y
		}
		if v.Z > e.Max.Z {
			e.Max.Z = v.Z
		}
	}
	return e
}

/**
 * @brief Resolves face faceIdx into its vertex positions, in loop order.
 * The returned slice is freshly allocated; mutating it never touches
 * the polyhedron.
 */
func (p *Polyhedron) FacePositions(faceIdx int) ([]math.Vec3, error) {
	if faceIdx < 0 || faceIdx >= len(p.Faces) {
		return nil, core.ErrFaceOutOfRange
	}
	face := &p.Faces[faceIdx]
	positions := make([]math.Vec3, len(face.Indices))
	for i, vi := range face.Indices {
		if vi < 0 || vi >= len(p.Vertices) {
			return nil, core.ErrVertexOutOfRange
		}
		positions[i] = p.Vertices[vi]
	}
	return positions, nil
}
