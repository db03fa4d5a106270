package geometry

import (
	"github.com/playfulmath/uniformity/engine/core"
	"github.com/playfulmath/uniformity/engine/math"
	"github.com/playfulmath/uniformity/engine/resources"
)

/**
 * @brief A planar straight-line graph: a vertex array plus an edge
 * array of unordered vertex-index pairs. Freshly generated from a face
 * the edges form exactly one cycle visiting every vertex once; after
 * splitting they may branch at inserted intersection vertices but no
 * two edges cross except at a shared vertex.
 *
 * The graph is index based on purpose. Indices stay valid across
 * reallocation, and the ear-removal pass disconnects vertices without
 * ever deleting them, so older indices remain stable for the edges
 * that still reference them.
 */
type PSLG struct {
	vertices []math.Vec3
	edges    [][2]int
	// Originating face, for shading data only. Never used for geometry.
	face *resources.Face
}

/**
 * @brief Builds a PSLG from one face's ordered vertex loop: the vertex
 * array is a copy of the loop and edge i connects i to (i+1) mod n.
 */
func NewPSLG(positions []math.Vec3, face *resources.Face) (*PSLG, error) {
	n := len(positions)
	if n == 0 {
		return nil, core.ErrEmptyFace
	}
	p := &PSLG{
		vertices: make([]math.Vec3, n, alignCapacity(n)),
		edges:    make([][2]int, n, alignCapacity(n)),
		face:     face,
	}
	copy(p.vertices, positions)
	for i := 0; i < n; i++ {
		p.edges[i] = [2]int{i, (i + 1) % n}
	}
	return p, nil
}

func (p *PSLG) VertexCount() int {
	return len(p.vertices)
}

func (p *PSLG) EdgeCount() int {
	return len(p.edges)
}

func (p *PSLG) Vertex(i int) math.Vec3 {
	return p.vertices[i]
}

func (p *PSLG) Edge(i int) [2]int {
	return p.edges[i]
}

// Bucket-aligned append for the vertex array.
func (p *PSLG) appendVertex(v math.Vec3) {
	count := len(p.vertices)
	if realign(count, count+1) {
		grown := make([]math.Vec3, count, alignCapacity(count+1))
		copy(grown, p.vertices)
		p.vertices = grown
	}
	p.vertices = append(p.vertices, v)
}

// Bucket-aligned append for the edge array.
func (p *PSLG) appendEdge(a, b int) {
	count := len(p.edges)
	if realign(count, count+1) {
		grown := make([][2]int, count, alignCapacity(count+1))
		copy(grown, p.edges)
		p.edges = grown
	}
	p.edges = append(p.edges, [2]int{a, b})
}

// Removes vertex i, shifting later vertices down. Shrinks the backing
// storage when the removal crosses a bucket boundary.
func (p *PSLG) removeVertex(i int) {
	count := len(p.vertices)
	copy(p.vertices[i:], p.vertices[i+1:])
	if realign(count, count-1) {
		shrunk := make([]math.Vec3, count-1, alignCapacity(count-1))
		copy(shrunk, p.vertices)
		p.vertices = shrunk
		return
	}
	p.vertices = p.vertices[:count-1]
}

// Removes edge i, shifting later edges down, with the same shrink policy.
func (p *PSLG) removeEdge(i int) {
	count := len(p.edges)
	copy(p.edges[i:], p.edges[i+1:])
	if realign(count, count-1) {
		shrunk := make([][2]int, count-1, alignCapacity(count-1))
		copy(shrunk, p.edges)
		p.edges = shrunk
		return
	}
	p.edges = p.edges[:count-1]
}

/**
 * @brief Merges coincident vertices. Scans every unordered pair; when
 * two positions compare equal within tolerance the later vertex is
 * removed, every edge endpoint referencing it is rewritten to the
 * earlier one, endpoints above it are pulled down by one, and the scan
 * restarts. One merge per scan keeps the index rewrites simple; face
 * loops are small enough that the rescans do not matter.
 *
 * Returns true when at least one merge happened.
 */
func (p *PSLG) dedupVertices() (bool, error) {
	if p == nil {
		return false, core.ErrNoPSLG
	}
	merged := false
	for {
		v1, v2, found := p.findCoincidentVertices()
		if !found {
			return merged, nil
		}
		p.mergeVertex(v1, v2)
		merged = true
	}
}

func (p *PSLG) findCoincidentVertices() (int, int, bool) {
	for v1 := 0; v1 < len(p.vertices); v1++ {
		for v2 := v1 + 1; v2 < len(p.vertices); v2++ {
			if p.vertices[v1].Compare(p.vertices[v2], math.K_GEOMETRY_EPSILON) {
				return v1, v2, true
			}
		}
	}
	return 0, 0, false
}

// Redirects every edge endpoint from v2 to v1 and removes v2. Requires
// v1 < v2.
func (p *PSLG) mergeVertex(v1, v2 int) {
	for i := range p.edges {
		for j := 0; j < 2; j++ {
			if p.edges[i][j] == v2 {
				p.edges[i][j] = v1
			} else if p.edges[i][j] > v2 {
				// Pull in all endpoints higher than v2 by 1.
				p.edges[i][j]--
			}
		}
	}
	p.removeVertex(v2)
}

/**
 * @brief Removes duplicate and degenerate edges. Two edges referencing
 * the same vertex pair in either order are duplicates and the later one
 * is deleted; an edge whose endpoints have collapsed onto one vertex
 * (which vertex merging can produce) is deleted outright. Restarts the
 * scan after every removal and returns true when anything was removed.
 */
func (p *PSLG) dedupEdges() (bool, error) {
	if p == nil {
		return false, core.ErrNoPSLG
	}
	removed := false
	for {
		doomed, found := p.findRemovableEdge()
		if !found {
			return removed, nil
		}
		p.removeEdge(doomed)
		removed = true
	}
}

func (p *PSLG) findRemovableEdge() (int, bool) {
	for e1 := 0; e1 < len(p.edges); e1++ {
		if p.edges[e1][0] == p.edges[e1][1] {
			return e1, true
		}
		for e2 := e1 + 1; e2 < len(p.edges); e2++ {
			if sameEdge(p.edges[e1], p.edges[e2]) {
				return e2, true
			}
		}
	}
	return 0, false
}

func sameEdge(a, b [2]int) bool {
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}

/**
 * @brief Runs both dedup passes to their fixed points, always vertices
 * first and then edges. Idempotent once stable. Returns true when
 * either pass changed the graph.
 */
func (p *PSLG) Dedup() (bool, error) {
	if p == nil {
		return false, core.ErrNoPSLG
	}
	mergedVertices, err := p.dedupVertices()
	if err != nil {
		return false, err
	}
	removedEdges, err := p.dedupEdges()
	if err != nil {
		return false, err
	}
	return mergedVertices || removedEdges, nil
}

// Reports how many edges touch the given vertex.
func (p *PSLG) degree(vertexIdx int) int {
	d := 0
	for i := range p.edges {
		if p.edges[i][0] == vertexIdx || p.edges[i][1] == vertexIdx {
			d++
		}
	}
	return d
}

// Reports whether an edge between a and b already exists, in either
// orientation.
func (p *PSLG) hasEdge(a, b int) bool {
	for i := range p.edges {
		if sameEdge(p.edges[i], [2]int{a, b}) {
			return true
		}
	}
	return false
}
