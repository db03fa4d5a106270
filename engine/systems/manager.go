package systems

type SystemManager struct {
	jobSystem  *JobSystem
	meshSystem *MeshSystem
}

func NewSystemManager(workerCount int) (*SystemManager, error) {
	js, err := NewJobSystem(workerCount, workerCount*4)
	if err != nil {
		return nil, err
	}

	ms, err := NewMeshSystem(js)
	if err != nil {
		return nil, err
	}

	return &SystemManager{
		jobSystem:  js,
		meshSystem: ms,
	}, nil
}

func (sm *SystemManager) JobSystem() *JobSystem {
	return sm.jobSystem
}

func (sm *SystemManager) MeshSystem() *MeshSystem {
	return sm.meshSystem
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.meshSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.jobSystem.Shutdown(); err != nil {
		return err
	}
	return nil
}
