package testbed

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/playfulmath/uniformity/engine"
	"github.com/playfulmath/uniformity/engine/animation"
	"github.com/playfulmath/uniformity/engine/assets/writers"
	"github.com/playfulmath/uniformity/engine/core"
	"github.com/playfulmath/uniformity/engine/math"
	"github.com/playfulmath/uniformity/engine/systems"
)

type demoState struct {
	mesh *systems.Mesh
}

/**
 * @brief Builds the demo game: load one OFF polyhedron, triangulate
 * it, spin it across the timeline and export the triangle mesh as a
 * binary STL on the way out.
 */
func NewDemoGame(configPath string) *engine.Game {
	config, err := engine.LoadApplicationConfig(configPath)
	if err != nil {
		core.LogWarn("could not read %s (%s), using defaults", configPath, err.Error())
		config = engine.DefaultApplicationConfig()
	}

	state := &demoState{}
	game := &engine.Game{
		ApplicationConfig: config,
		State:             state,
	}

	game.FnInitialize = func(e *engine.Engine) error {
		mesh, err := e.LoadModel(config.ModelPath)
		if err != nil {
			return err
		}
		state.mesh = mesh
		game.Timeline = buildTimeline(config, state)
		return nil
	}

	game.FnShutdown = func(e *engine.Engine) error {
		if state.mesh == nil {
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(config.OutputPath), 0o755); err != nil {
			return err
		}
		header := fmt.Sprintf("%s %s", config.Name, state.mesh.Name)
		if err := writers.ExportSTL(config.OutputPath, header, state.mesh.Triangulation); err != nil {
			return err
		}
		core.LogInfo("exported %d triangles to %s", state.mesh.Triangulation.Len(), config.OutputPath)
		return nil
	}

	return game
}

func buildTimeline(config *engine.ApplicationConfig, state *demoState) *animation.Timeline {
	span := config.EndFrame - config.StartFrame
	if span < 1 {
		span = 1
	}

	spin := &animation.Animation{
		StartT: config.StartFrame,
		EndT:   config.EndFrame,
		Construct: func(a *animation.Animation) {
			a.State = float32(0)
		},
		Preproc: func(a *animation.Animation, t int) {
			progress := math.Clamp(float32(t-a.StartT)/float32(span), 0, 1)
			a.State = progress * math.K_PI_2
		},
		Render: func(a *animation.Animation, t int) {
			angle := a.State.(float32)
			if t%30 == 0 && state.mesh != nil {
				core.LogDebug("frame %d: %s at %.2f rad, %d triangles",
					t, state.mesh.Name, angle, state.mesh.Triangulation.Len())
			}
		},
		Free: func(a *animation.Animation) {
			a.State = nil
		},
	}

	section := &animation.Section{
		Name:       "spin",
		StartT:     config.StartFrame,
		EndT:       config.EndFrame,
		Animations: []*animation.Animation{spin},
		Init: func(s *animation.Section) {
			core.LogInfo("section '%s' starting at frame %d", s.Name, s.StartT)
		},
	}

	return animation.NewTimeline(section)
}
