package geometry

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playfulmath/uniformity/engine/core"
	"github.com/playfulmath/uniformity/engine/math"
)

// A self-intersecting quad loop; edges 0 and 2 cross at (0.5, 0.5).
func bowtie() []math.Vec3 {
	return []math.Vec3{
		math.NewVec3(0, 0, 0),
		math.NewVec3(1, 1, 0),
		math.NewVec3(1, 0, 0),
		math.NewVec3(0, 1, 0),
	}
}

func TestSplitAdjacentNoOp(t *testing.T) {
	p, err := NewPSLG(unitSquare(), nil)
	require.NoError(t, err)

	applied, err := p.Split(0, 1)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, 4, p.VertexCount())
	assert.Equal(t, 4, p.EdgeCount())
}

func TestSplitEdgeOutOfRange(t *testing.T) {
	p, err := NewPSLG(unitSquare(), nil)
	require.NoError(t, err)

	_, err = p.Split(0, 99)
	assert.ErrorIs(t, err, core.ErrEdgeOutOfRange)
	_, err = p.Split(-1, 2)
	assert.ErrorIs(t, err, core.ErrEdgeOutOfRange)
}

func TestSplitNil(t *testing.T) {
	var p *PSLG
	_, err := p.Split(0, 1)
	assert.ErrorIs(t, err, core.ErrNoPSLG)
	assert.ErrorIs(t, p.SplitEntirely(), core.ErrNoPSLG)
}

func TestSplitCrossingEdges(t *testing.T) {
	p, err := NewPSLG(bowtie(), nil)
	require.NoError(t, err)

	applied, err := p.Split(0, 2)
	require.NoError(t, err)
	assert.True(t, applied)

	// One new branch vertex at the crossing, of degree four.
	require.Equal(t, 5, p.VertexCount())
	assert.Equal(t, 6, p.EdgeCount())
	assert.True(t, p.Vertex(4).Compare(math.NewVec3(0.5, 0.5, 0), math.K_GEOMETRY_EPSILON))
	assert.Equal(t, 4, p.degree(4))

	// Both crossing edges now end at the branch vertex.
	assert.Equal(t, [2]int{0, 4}, p.Edge(0))
	assert.Equal(t, [2]int{2, 4}, p.Edge(2))
	assert.True(t, p.hasEdge(1, 4))
	assert.True(t, p.hasEdge(3, 4))
}

func TestSplitNonCrossingNoOp(t *testing.T) {
	p, err := NewPSLG(unitSquare(), nil)
	require.NoError(t, err)

	// Opposite sides of the square are parallel.
	applied, err := p.Split(0, 2)
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestSplitEntirelyBowtie(t *testing.T) {
	p, err := NewPSLG(bowtie(), nil)
	require.NoError(t, err)
	require.NoError(t, p.SplitEntirely())

	assert.Equal(t, 5, p.VertexCount())
	assert.Equal(t, 6, p.EdgeCount())

	// No two non-adjacent edges may still cross.
	for i := 0; i < p.EdgeCount(); i++ {
		for j := i + 1; j < p.EdgeCount(); j++ {
			e1, e2 := p.Edge(i), p.Edge(j)
			if e1[0] == e2[0] || e1[0] == e2[1] || e1[1] == e2[0] || e1[1] == e2[1] {
				continue
			}
			_, hit := segmentIntersection(
				p.Vertex(e1[0]), p.Vertex(e1[1]),
				p.Vertex(e2[0]), p.Vertex(e2[1]),
			)
			assert.False(t, hit, "edges %d and %d still cross", i, j)
		}
	}
}

func TestSplitEntirelyConvexNoOp(t *testing.T) {
	p, err := NewPSLG(unitSquare(), nil)
	require.NoError(t, err)
	require.NoError(t, p.SplitEntirely())

	assert.Equal(t, 4, p.VertexCount())
	assert.Equal(t, 4, p.EdgeCount())
}

// A non-rectangular face lying in the x=0 plane. Its z-going edges
// project to single points sharing the plane's x, so every edge pair
// hits the degenerate 0/0-ratio path of the intersection test.
func verticalLShape() []math.Vec3 {
	return []math.Vec3{
		math.NewVec3(0, 0, 0),
		math.NewVec3(0, 2, 0),
		math.NewVec3(0, 2, 2),
		math.NewVec3(0, 1, 2),
		math.NewVec3(0, 1, 1),
		math.NewVec3(0, 0, 1),
	}
}

func TestSplitEntirelyVerticalPlane(t *testing.T) {
	p, err := NewPSLG(verticalLShape(), nil)
	require.NoError(t, err)
	require.NoError(t, p.SplitEntirely())

	// Nothing crosses, so the loop must come back untouched and free
	// of manufactured NaN vertices.
	assert.Equal(t, 6, p.VertexCount())
	assert.Equal(t, 6, p.EdgeCount())
	for i := 0; i < p.VertexCount(); i++ {
		v := p.Vertex(i)
		assert.False(t, gomath.IsNaN(float64(v.Y)), "vertex %d has a NaN component", i)
		assert.False(t, gomath.IsNaN(float64(v.Z)), "vertex %d has a NaN component", i)
	}
}

func TestSplitEntirelyCoincidentVertices(t *testing.T) {
	// A quad whose second and third vertices are the same point. The
	// split drops its new vertex onto the coincident pair and the dedup
	// cascade collapses the loop into a plain triangle.
	positions := []math.Vec3{
		math.NewVec3(0, 0, 0),
		math.NewVec3(1, 0, 0),
		math.NewVec3(1, 0, 0),
		math.NewVec3(0, 1, 0),
	}
	p, err := NewPSLG(positions, nil)
	require.NoError(t, err)
	require.NoError(t, p.SplitEntirely())

	assert.Equal(t, 3, p.VertexCount())
	assert.Equal(t, 3, p.EdgeCount())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 2, p.degree(i))
	}
}
