package geometry

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playfulmath/uniformity/engine/core"
	"github.com/playfulmath/uniformity/engine/math"
	"github.com/playfulmath/uniformity/engine/resources"
)

// A unit cube with quad faces, all outward wound.
func cubePolyhedron() *resources.Polyhedron {
	poly := &resources.Polyhedron{
		Vertices: []math.Vec3{
			math.NewVec3(0, 0, 0),
			math.NewVec3(1, 0, 0),
			math.NewVec3(1, 1, 0),
			math.NewVec3(0, 1, 0),
			math.NewVec3(0, 0, 1),
			math.NewVec3(1, 0, 1),
			math.NewVec3(1, 1, 1),
			math.NewVec3(0, 1, 1),
		},
		Faces: []resources.Face{
			{Indices: []int{0, 3, 2, 1}},
			{Indices: []int{4, 5, 6, 7}},
			{Indices: []int{0, 1, 5, 4}},
			{Indices: []int{1, 2, 6, 5}},
			{Indices: []int{2, 3, 7, 6}},
			{Indices: []int{3, 0, 4, 7}},
		},
	}
	for i := range poly.Faces {
		poly.Faces[i].Colour = uint32(i)
	}
	return poly
}

func TestTriangulateFaceSquare(t *testing.T) {
	out := NewTriangulation()
	err := TriangulateFace(unitSquare(), nil, out)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len())
	assert.InDelta(t, 1.0, totalArea(out), 1e-4)
}

func TestTriangulateFaceHexagon(t *testing.T) {
	// Regular hexagon with circumradius 1; area is 3*sqrt(3)/2.
	positions := make([]math.Vec3, 6)
	for i := range positions {
		angle := 2 * gomath.Pi * float64(i) / 6
		positions[i] = math.NewVec3(float32(gomath.Cos(angle)), float32(gomath.Sin(angle)), 0)
	}
	out := NewTriangulation()
	require.NoError(t, TriangulateFace(positions, nil, out))

	assert.Equal(t, 4, out.Len())
	assert.InDelta(t, 3*gomath.Sqrt(3)/2, totalArea(out), 1e-3)
}

func TestTriangulateFaceCoincidentVertices(t *testing.T) {
	positions := []math.Vec3{
		math.NewVec3(0, 0, 0),
		math.NewVec3(1, 0, 0),
		math.NewVec3(1, 0, 0),
		math.NewVec3(0, 1, 0),
	}
	out := NewTriangulation()
	require.NoError(t, TriangulateFace(positions, nil, out))

	require.Equal(t, 1, out.Len())
	assert.InDelta(t, 0.5, triangleArea(out.At(0)), 1e-4)
}

func TestTriangulateFaceBowtie(t *testing.T) {
	out := NewTriangulation()
	require.NoError(t, TriangulateFace(bowtie(), nil, out))

	assert.Equal(t, 3, out.Len())
	assert.InDelta(t, 0.5, totalArea(out), 1e-4)
}

func TestTriangulateFaceVerticalPlane(t *testing.T) {
	out := NewTriangulation()
	require.NoError(t, TriangulateFace(verticalLShape(), nil, out))

	// Six boundary vertices, no splits, so four clips consume the loop.
	require.Equal(t, 4, out.Len())
	for i := 0; i < out.Len(); i++ {
		for _, p := range out.At(i).Points {
			assert.Equal(t, float32(0), p.X)
			assert.False(t, gomath.IsNaN(float64(p.Y)))
			assert.False(t, gomath.IsNaN(float64(p.Z)))
		}
	}
}

func TestTriangulateFaceAppends(t *testing.T) {
	out := NewTriangulation()
	require.NoError(t, out.Add(markedTriangle(42)))
	require.NoError(t, TriangulateFace(unitSquare(), nil, out))

	// Earlier content stays in place, new triangles follow it.
	require.Equal(t, 3, out.Len())
	assert.Equal(t, uint32(42), out.At(0).Colour)
}

func TestTriangulateFaceErrors(t *testing.T) {
	assert.ErrorIs(t, TriangulateFace(unitSquare(), nil, nil), core.ErrNoTriangulation)
	assert.ErrorIs(t, TriangulateFace(nil, nil, NewTriangulation()), core.ErrEmptyFace)
}

func TestTriangulatePolyhedronCube(t *testing.T) {
	tr, err := TriangulatePolyhedron(cubePolyhedron())
	require.NoError(t, err)
	require.Equal(t, 12, tr.Len())

	// Triangles arrive in face order, two per quad.
	for i := 0; i < tr.Len(); i++ {
		assert.Equal(t, uint32(i/2), tr.At(i).Colour)
	}
	// Six unit faces of surface area.
	assert.InDelta(t, 6.0, totalArea(tr), 1e-3)
}

func TestTriangulatePolyhedronErrors(t *testing.T) {
	_, err := TriangulatePolyhedron(nil)
	assert.ErrorIs(t, err, core.ErrNoPSLG)

	poly := cubePolyhedron()
	poly.Faces[2].Indices = nil
	_, err = TriangulatePolyhedron(poly)
	assert.ErrorIs(t, err, core.ErrEmptyFace)

	poly = cubePolyhedron()
	poly.Faces[1].Indices = []int{0, 1, 99}
	_, err = TriangulatePolyhedron(poly)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}
