package geometry

import (
	"github.com/playfulmath/uniformity/engine/core"
	"github.com/playfulmath/uniformity/engine/math"
	"github.com/playfulmath/uniformity/engine/resources"
)

/**
 * @brief Runs the whole per-face pipeline: build the PSLG from the
 * boundary loop, split every crossing edge pair, clip the arrangement
 * down to triangles and append them to out. The PSLG and the transient
 * triangulation never outlive the call.
 */
func TriangulateFace(positions []math.Vec3, face *resources.Face, out *Triangulation) error {
	if out == nil {
		return core.ErrNoTriangulation
	}
	pslg, err := NewPSLG(positions, face)
	if err != nil {
		return err
	}
	if err := pslg.SplitEntirely(); err != nil {
		return err
	}
	pt, err := NewPSLGTriangulation(pslg)
	if err != nil {
		return err
	}
	if err := pt.AttackAllVertices(); err != nil {
		return err
	}
	for _, tri := range pt.Triangulation.Triangles() {
		if err := out.Add(tri); err != nil {
			return err
		}
	}
	return nil
}

/**
 * @brief Triangulates every face of the polyhedron and merges the
 * per-face results, in face order, into one triangulation. The first
 * failing face aborts the whole polyhedron.
 */
func TriangulatePolyhedron(poly *resources.Polyhedron) (*Triangulation, error) {
	if poly == nil {
		return nil, core.ErrNoPSLG
	}
	parts := make([]*Triangulation, 0, len(poly.Faces))
	for i := range poly.Faces {
		positions, err := poly.FacePositions(i)
		if err != nil {
			return nil, err
		}
		part := NewTriangulation()
		if err := TriangulateFace(positions, &poly.Faces[i], part); err != nil {
			core.LogError("triangulation of face %d failed: %s", i, err.Error())
			return nil, err
		}
		parts = append(parts, part)
	}
	return Merge(parts)
}
