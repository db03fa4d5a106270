package geometry

import (
	"github.com/playfulmath/uniformity/engine/core"
)

/**
 * @brief Splits two crossing edges at their intersection point.
 *
 * Adjacent edges (any shared endpoint) never split each other; that
 * would manufacture a spurious self-intersection at the shared vertex.
 * Otherwise, when the two edges' segments cross, the intersection point
 * is appended as a new vertex, each edge's second endpoint is rerouted
 * through it and two new edges reconnect the cut-off halves. The net
 * effect is one new vertex of degree 4, two new edges and two
 * shortened ones.
 *
 * Returns (false, nil) when the split did not apply, which is the
 * fixed-point signal for SplitEntirely, and an error only for a missing
 * handle or a bad edge index.
 */
func (p *PSLG) Split(edge1, edge2 int) (bool, error) {
	if p == nil {
		return false, core.ErrNoPSLG
	}
	if edge1 < 0 || edge1 >= len(p.edges) || edge2 < 0 || edge2 >= len(p.edges) {
		return false, core.ErrEdgeOutOfRange
	}

	e1 := p.edges[edge1]
	e2 := p.edges[edge2]
	if e1[0] == e2[0] || e1[0] == e2[1] || e1[1] == e2[0] || e1[1] == e2[1] {
		return false, nil
	}

	point, hit := segmentIntersection(
		p.vertices[e1[0]],
		p.vertices[e1[1]],
		p.vertices[e2[0]],
		p.vertices[e2[1]],
	)
	if !hit {
		return false, nil
	}

	// The crossing point becomes a shared branch vertex of degree 4.
	steiner := len(p.vertices)
	p.appendVertex(point)
	p.appendEdge(e1[1], steiner)
	p.appendEdge(e2[1], steiner)
	p.edges[edge1][1] = steiner
	p.edges[edge2][1] = steiner
	return true, nil
}

// Finds and applies the first split over all unordered edge pairs.
func (p *PSLG) splitSingle() (bool, error) {
	for i := 0; i < len(p.edges); i++ {
		for j := i + 1; j < len(p.edges); j++ {
			applied, err := p.Split(i, j)
			if err != nil {
				return false, err
			}
			if applied {
				return true, nil
			}
		}
	}
	return false, nil
}

/**
 * @brief Splits every crossing edge pair, iterating to a fixed point.
 *
 * Each round applies at most one split and then re-runs the full dedup
 * pass, since a split can drop its Steiner vertex on top of an existing
 * vertex or edge. Convergence is judged on the post-dedup state: the
 * pass is done only when a full scan finds nothing to split and the
 * dedup changed neither the vertex nor the edge count.
 */
func (p *PSLG) SplitEntirely() error {
	if p == nil {
		return core.ErrNoPSLG
	}
	for {
		split, err := p.splitSingle()
		if err != nil {
			return err
		}
		vertexCount := len(p.vertices)
		edgeCount := len(p.edges)
		if _, err := p.Dedup(); err != nil {
			return err
		}
		if !split && vertexCount == len(p.vertices) && edgeCount == len(p.edges) {
			return nil
		}
	}
}
