package animation

import (
	"github.com/playfulmath/uniformity/engine/core"
)

/**
 * @brief One animated effect living on the timeline between StartT and
 * EndT (both inclusive, in frames). The hooks are optional; a nil hook
 * is simply skipped. State is scratch storage for whatever the hooks
 * build in Construct and release in Free.
 */
type Animation struct {
	StartT int
	EndT   int

	Construct func(a *Animation)
	Preproc   func(a *Animation, t int)
	Render    func(a *Animation, t int)
	Postproc  func(a *Animation, t int)
	Free      func(a *Animation)

	State interface{}
}

/**
 * @brief A named group of animations sharing a frame range. Init runs
 * once when the timeline first steps into the section.
 */
type Section struct {
	Name       string
	Animations []*Animation
	StartT     int
	EndT       int
	Init       func(s *Section)

	initialized bool
}

func (s *Section) active(t int) bool {
	return s.StartT <= t && t <= s.EndT
}

/** @brief An ordered list of sections driven frame by frame. */
type Timeline struct {
	Sections []*Section
}

func NewTimeline(sections ...*Section) *Timeline {
	return &Timeline{Sections: sections}
}

/** @brief The last frame any section covers. */
func (tl *Timeline) EndT() int {
	end := 0
	for _, s := range tl.Sections {
		if s.EndT > end {
			end = s.EndT
		}
	}
	return end
}

/**
 * @brief Advances every active section to frame t.
 *
 * Within a section the phases run as whole passes over all active
 * animations, in lifecycle order: constructs first (at each
 * animation's StartT), then preprocs, renders, postprocs, and finally
 * frees (at EndT). Running each phase as its own pass keeps one
 * animation's render from observing another's half-finished
 * preprocessing.
 */
func (tl *Timeline) Step(t int) {
	for _, section := range tl.Sections {
		if !section.active(t) {
			continue
		}
		if !section.initialized {
			if section.Init != nil {
				section.Init(section)
			}
			section.initialized = true
		}

		for _, a := range section.Animations {
			if t == a.StartT && a.Construct != nil {
				a.Construct(a)
			}
		}
		for _, a := range section.Animations {
			if a.StartT <= t && t <= a.EndT && a.Preproc != nil {
				a.Preproc(a, t)
			}
		}
		for _, a := range section.Animations {
			if a.StartT <= t && t <= a.EndT && a.Render != nil {
				a.Render(a, t)
			}
		}
		for _, a := range section.Animations {
			if a.StartT <= t && t <= a.EndT && a.Postproc != nil {
				a.Postproc(a, t)
			}
		}
		for _, a := range section.Animations {
			if t == a.EndT && a.Free != nil {
				a.Free(a)
			}
		}
	}

	context := core.EventContext{}
	context.Data.I32[0] = int32(t)
	core.EventFire(core.EVENT_CODE_FRAME_STEPPED, tl, context)
}
