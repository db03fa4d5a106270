package engine

import (
	"github.com/playfulmath/uniformity/engine/animation"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	Timeline          *animation.Timeline
	State             interface{}
	FnInitialize      Initialize
	FnFrame           Frame
	FnShutdown        Shutdown
}

type Initialize func(e *Engine) error
type Frame func(e *Engine, t int) error
type Shutdown func(e *Engine) error
