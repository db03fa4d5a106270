package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/playfulmath/uniformity/engine/assets"
	"github.com/playfulmath/uniformity/engine/core"
	"github.com/playfulmath/uniformity/engine/resources"
	"github.com/playfulmath/uniformity/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     bool
	assetManager  *assets.AssetManager
	systemManager *systems.SystemManager
	clock         *core.Clock
	frameClock    *core.Clock

	// Watched model paths mapped to the meshes built from them, so a
	// file change can re-triangulate the right mesh.
	meshesByPath map[string]uuid.UUID
}

func New(g *Game) (*Engine, error) {
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}

	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	sm, err := systems.NewSystemManager(g.ApplicationConfig.WorkerCount)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	return &Engine{
		currentStage:  EngineStageUninitialized,
		gameInstance:  g,
		clock:         core.NewClock(),
		frameClock:    core.NewClock(),
		assetManager:  am,
		systemManager: sm,
		isRunning:     true,
		meshesByPath:  make(map[string]uuid.UUID),
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}
	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)

	if err := e.assetManager.Initialize(e.gameInstance.ApplicationConfig.AssetsDir); err != nil {
		// A missing assets directory only disables hot reload.
		core.LogWarn("asset watching disabled: %s", err.Error())
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(e); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) SystemManager() *systems.SystemManager {
	return e.systemManager
}

func (e *Engine) AssetManager() *assets.AssetManager {
	return e.assetManager
}

func (e *Engine) Config() *ApplicationConfig {
	return e.gameInstance.ApplicationConfig
}

/**
 * @brief Loads an OFF model, triangulates it and registers the result
 * as a mesh. The path is remembered so a later change to the file
 * re-triangulates the same mesh.
 */
func (e *Engine) LoadModel(path string) (*systems.Mesh, error) {
	resource, err := e.assetManager.LoadAsset(path, resources.ResourceTypeModel, nil)
	if err != nil {
		return nil, err
	}
	mesh, err := e.systemManager.MeshSystem().CreateFromResource(resource)
	if err != nil {
		return nil, err
	}
	e.meshesByPath[path] = mesh.ID
	extents := mesh.Polyhedron.Extents()
	core.LogInfo("model '%s' triangulated into %d triangles, extents (%.2f %.2f %.2f)..(%.2f %.2f %.2f)",
		mesh.Name, mesh.Triangulation.Len(),
		extents.Min.X, extents.Min.Y, extents.Min.Z,
		extents.Max.X, extents.Max.Y, extents.Max.Z)
	return mesh, nil
}

/**
 * @brief Steps the timeline and the game hook across the configured
 * frame range, pacing to the configured frame rate, and services model
 * reloads between frames.
 */
func (e *Engine) Run() error {
	config := e.gameInstance.ApplicationConfig
	e.currentStage = EngineStageRunning
	e.clock.Start()

	var frameBudget float64
	if config.FrameRate > 0 {
		frameBudget = 1.0 / float64(config.FrameRate)
	}

	for t := config.StartFrame; t <= config.EndFrame && e.isRunning; t++ {
		e.frameClock.Start()

		if e.gameInstance.Timeline != nil {
			e.gameInstance.Timeline.Step(t)
		}
		if e.gameInstance.FnFrame != nil {
			if err := e.gameInstance.FnFrame(e, t); err != nil {
				return err
			}
		}
		e.serviceReloads()

		e.frameClock.Update()
		elapsed := e.frameClock.ElapsedSeconds()
		core.MetricsUpdate(elapsed)
		if remaining := frameBudget - elapsed; remaining > 0 {
			time.Sleep(time.Duration(remaining * float64(time.Second)))
		}
	}

	e.clock.Update()
	core.LogInfo("ran %d frames in %.2fs, %d triangles emitted",
		config.EndFrame-config.StartFrame+1, e.clock.ElapsedSeconds(), core.MetricsTrianglesEmitted())
	return e.Shutdown()
}

// Re-triangulates meshes whose source files changed on disk.
func (e *Engine) serviceReloads() {
	for {
		path, ok := e.assetManager.NextReload()
		if !ok {
			return
		}
		id, known := e.meshesByPath[path]
		if !known {
			continue
		}
		resource, err := e.assetManager.LoadAsset(path, resources.ResourceTypeModel, nil)
		if err != nil {
			core.LogError("reload of '%s' failed: %s", path, err.Error())
			continue
		}
		poly, ok := resource.Data.(*resources.Polyhedron)
		if !ok {
			continue
		}
		if _, err := e.systemManager.MeshSystem().Reload(id, poly); err != nil {
			core.LogError("re-triangulation of '%s' failed: %s", path, err.Error())
		}
	}
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(e); err != nil {
			core.LogError(err.Error())
		}
	}
	if err := e.assetManager.Shutdown(); err != nil {
		return err
	}
	if err := e.systemManager.Shutdown(); err != nil {
		return err
	}
	return core.EventSystemShutdown()
}

func (e *Engine) onEvent(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	if code == core.EVENT_CODE_APPLICATION_QUIT {
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down")
		e.isRunning = false
		return true
	}
	return false
}
