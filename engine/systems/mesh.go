package systems

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/playfulmath/uniformity/engine/core"
	"github.com/playfulmath/uniformity/engine/geometry"
	"github.com/playfulmath/uniformity/engine/resources"
)

/**
 * @brief A registered, triangulated polyhedron. Generation bumps every
 * time the mesh is re-triangulated (e.g. on a model reload) so
 * consumers can tell stale triangle lists from fresh ones.
 */
type Mesh struct {
	ID            uuid.UUID
	Name          string
	Polyhedron    *resources.Polyhedron
	Triangulation *geometry.Triangulation
	Generation    uint32
}

type MeshSystem struct {
	jobSystem *JobSystem

	mutex  sync.RWMutex
	meshes map[uuid.UUID]*Mesh
}

func NewMeshSystem(js *JobSystem) (*MeshSystem, error) {
	if js == nil {
		return nil, fmt.Errorf("mesh system requires a job system")
	}
	return &MeshSystem{
		jobSystem: js,
		meshes:    make(map[uuid.UUID]*Mesh),
	}, nil
}

func (ms *MeshSystem) Shutdown() error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	ms.meshes = make(map[uuid.UUID]*Mesh)
	return nil
}

/**
 * @brief Triangulates the polyhedron carried by a model resource and
 * registers the result under a fresh mesh id.
 */
func (ms *MeshSystem) CreateFromResource(resource *resources.Resource) (*Mesh, error) {
	poly, ok := resource.Data.(*resources.Polyhedron)
	if !ok {
		return nil, fmt.Errorf("resource '%s' does not carry a polyhedron", resource.Name)
	}

	tri, err := geometry.TriangulatePolyhedron(poly)
	if err != nil {
		return nil, err
	}

	mesh := &Mesh{
		ID:            uuid.New(),
		Name:          resource.Name,
		Polyhedron:    poly,
		Triangulation: tri,
	}
	ms.mutex.Lock()
	ms.meshes[mesh.ID] = mesh
	ms.mutex.Unlock()

	ms.notifyTriangulated(mesh)
	return mesh, nil
}

/**
 * @brief Re-triangulates an already registered mesh from a freshly
 * loaded polyhedron, bumping its generation.
 */
func (ms *MeshSystem) Reload(id uuid.UUID, poly *resources.Polyhedron) (*Mesh, error) {
	ms.mutex.RLock()
	mesh, exists := ms.meshes[id]
	ms.mutex.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no mesh registered under id %s", id)
	}

	tri, err := geometry.TriangulatePolyhedron(poly)
	if err != nil {
		return nil, err
	}

	ms.mutex.Lock()
	mesh.Polyhedron = poly
	mesh.Triangulation = tri
	mesh.Generation++
	ms.mutex.Unlock()

	ms.notifyTriangulated(mesh)
	return mesh, nil
}

func (ms *MeshSystem) Acquire(id uuid.UUID) (*Mesh, error) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	mesh, exists := ms.meshes[id]
	if !exists {
		return nil, fmt.Errorf("no mesh registered under id %s", id)
	}
	return mesh, nil
}

func (ms *MeshSystem) Release(id uuid.UUID) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	delete(ms.meshes, id)
}

func (ms *MeshSystem) notifyTriangulated(mesh *Mesh) {
	core.MetricsRecordTriangulation(mesh.Triangulation.Len())

	context := core.EventContext{}
	context.Data.U32[0] = uint32(mesh.Triangulation.Len())
	context.Data.C[0] = mesh.ID.String()
	core.EventFire(core.EVENT_CODE_TRIANGULATION_COMPLETE, ms, context)
}

/**
 * @brief Per-face parallel variant of the polyhedron pipeline. Every
 * face's PSLG and partial triangulation stay private to the job that
 * owns it; only the final merge touches shared state. Triangle order in
 * the output matches the sequential pipeline since parts are merged in
 * face order, not completion order.
 */
func (ms *MeshSystem) TriangulateConcurrent(poly *resources.Polyhedron) (*geometry.Triangulation, error) {
	if poly == nil {
		return nil, core.ErrNoPSLG
	}
	faceCount := len(poly.Faces)
	parts := make([]*geometry.Triangulation, faceCount)
	faceErrs := make([]error, faceCount)

	var wg sync.WaitGroup
	for i := 0; i < faceCount; i++ {
		wg.Add(1)
		ms.jobSystem.Submit(JobTask{
			InputParams: i,
			OnStart: func(params interface{}, results chan interface{}) error {
				defer wg.Done()
				faceIdx := params.(int)
				positions, err := poly.FacePositions(faceIdx)
				if err != nil {
					faceErrs[faceIdx] = err
					return err
				}
				part := geometry.NewTriangulation()
				if err := geometry.TriangulateFace(positions, &poly.Faces[faceIdx], part); err != nil {
					faceErrs[faceIdx] = err
					return err
				}
				parts[faceIdx] = part
				return nil
			},
		})
	}
	wg.Wait()

	for i, err := range faceErrs {
		if err != nil {
			return nil, fmt.Errorf("triangulation of face %d failed: %w", i, err)
		}
	}
	return geometry.Merge(parts)
}
