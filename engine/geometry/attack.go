package geometry

import (
	"github.com/playfulmath/uniformity/engine/core"
	"github.com/playfulmath/uniformity/engine/math"
)

/**
 * @brief Transient pairing of one PSLG and the triangulation being cut
 * out of it. Lives only for the duration of one face's pipeline.
 */
type PSLGTriangulation struct {
	PSLG          *PSLG
	Triangulation *Triangulation
}

func NewPSLGTriangulation(p *PSLG) (*PSLGTriangulation, error) {
	if p == nil {
		return nil, core.ErrNoPSLG
	}
	return &PSLGTriangulation{
		PSLG:          p,
		Triangulation: NewTriangulation(),
	}, nil
}

/**
 * @brief Clips one vertex off the boundary chain ("attacks" it).
 *
 * Applies only to a vertex with exactly two incident edges; isolated
 * vertices, chain endpoints and branch points left by unresolved splits
 * are no-ops. The triangle formed by the vertex and its two neighbours
 * is emitted with the face's shading data, both incident edges are
 * removed and the neighbours are reconnected by a single edge, reusing
 * an existing one when the graph already holds it. The attacked vertex
 * is disconnected but never deleted from the vertex array, so every
 * older vertex keeps its index.
 *
 * Note there is deliberately no convexity or visibility test here. The
 * splitting pass is what makes a degree-2 vertex clippable, and faces
 * whose interior stays non-simple after splitting keep whatever
 * triangles this produces.
 */
func (pt *PSLGTriangulation) attackVertex(vertexIdx int) (bool, error) {
	if pt == nil || pt.PSLG == nil {
		return false, core.ErrNoPSLG
	}
	if pt.Triangulation == nil {
		return false, core.ErrNoTriangulation
	}
	p := pt.PSLG

	d := 0
	e1 := -1
	e2 := -1
	for i := range p.edges {
		if p.edges[i][0] == vertexIdx || p.edges[i][1] == vertexIdx {
			d++
			if d > 2 {
				return false, nil
			}
			if d > 1 {
				e2 = i
			} else {
				e1 = i
			}
		}
	}
	if d != 2 {
		return false, nil
	}

	v1 := p.edges[e1][0]
	v2 := p.edges[e2][0]
	v3 := p.edges[e2][1]
	if v1 == vertexIdx {
		v1 = p.edges[e1][1]
	}
	if v2 == vertexIdx {
		// The attacked vertex is e2's first endpoint; swap so the
		// emitted winding stays consistent with the edge direction.
		v2 = p.edges[e2][1]
		v3 = p.edges[e2][0]
	}

	var normal math.Vec3
	var colour uint32
	if p.face != nil {
		normal = p.face.Normal
		colour = p.face.Colour
	}
	err := pt.Triangulation.Add(Triangle{
		Points: [3]math.Vec3{p.vertices[v1], p.vertices[v2], p.vertices[v3]},
		Normal: normal,
		Colour: colour,
	})
	if err != nil {
		return false, err
	}

	reconnected := p.hasEdge(v1, v2)

	// Remove the higher index first so the lower one stays valid.
	if e1 > e2 {
		e1, e2 = e2, e1
	}
	p.removeEdge(e2)
	p.removeEdge(e1)
	if !reconnected {
		p.appendEdge(v1, v2)
	}
	return true, nil
}

/**
 * @brief Scans vertices in index order and attacks the first one that
 * yields a triangle. Returns (false, nil) when a full scan produced
 * nothing, which means the loop is fully consumed.
 */
func (pt *PSLGTriangulation) attackSingleVertex() (bool, error) {
	if pt == nil || pt.PSLG == nil {
		return false, core.ErrNoPSLG
	}
	for i := 0; i < len(pt.PSLG.vertices); i++ {
		applied, err := pt.attackVertex(i)
		if err != nil {
			return false, err
		}
		if applied {
			return true, nil
		}
	}
	return false, nil
}

/** @brief Attacks vertices until a full scan emits no triangle. */
func (pt *PSLGTriangulation) AttackAllVertices() error {
	for {
		applied, err := pt.attackSingleVertex()
		if err != nil {
			return err
		}
		if !applied {
			return nil
		}
	}
}
