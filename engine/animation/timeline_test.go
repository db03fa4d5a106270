package animation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordingAnimation(name string, startT, endT int, trace *[]string) *Animation {
	return &Animation{
		StartT: startT,
		EndT:   endT,
		Construct: func(a *Animation) {
			*trace = append(*trace, name+":construct")
		},
		Preproc: func(a *Animation, t int) {
			*trace = append(*trace, fmt.Sprintf("%s:preproc@%d", name, t))
		},
		Render: func(a *Animation, t int) {
			*trace = append(*trace, fmt.Sprintf("%s:render@%d", name, t))
		},
		Postproc: func(a *Animation, t int) {
			*trace = append(*trace, fmt.Sprintf("%s:postproc@%d", name, t))
		},
		Free: func(a *Animation) {
			*trace = append(*trace, name+":free")
		},
	}
}

func TestTimelineLifecycle(t *testing.T) {
	var trace []string
	tl := NewTimeline(&Section{
		Name:       "spin",
		StartT:     0,
		EndT:       2,
		Animations: []*Animation{recordingAnimation("a", 0, 2, &trace)},
		Init: func(s *Section) {
			trace = append(trace, "init")
		},
	})

	tl.Step(0)
	assert.Equal(t, []string{
		"init", "a:construct", "a:preproc@0", "a:render@0", "a:postproc@0",
	}, trace)

	trace = nil
	tl.Step(1)
	assert.Equal(t, []string{"a:preproc@1", "a:render@1", "a:postproc@1"}, trace)

	trace = nil
	tl.Step(2)
	assert.Equal(t, []string{
		"a:preproc@2", "a:render@2", "a:postproc@2", "a:free",
	}, trace)
}

func TestTimelineInitRunsOnce(t *testing.T) {
	inits := 0
	tl := NewTimeline(&Section{StartT: 0, EndT: 5, Init: func(s *Section) { inits++ }})
	tl.Step(0)
	tl.Step(1)
	tl.Step(2)
	assert.Equal(t, 1, inits)
}

func TestTimelineInactiveSectionSkipped(t *testing.T) {
	var trace []string
	tl := NewTimeline(&Section{
		Name:       "late",
		StartT:     10,
		EndT:       20,
		Animations: []*Animation{recordingAnimation("b", 10, 20, &trace)},
	})

	tl.Step(5)
	assert.Empty(t, trace)

	tl.Step(10)
	require.NotEmpty(t, trace)
	assert.Equal(t, "b:construct", trace[0])

	trace = nil
	tl.Step(21)
	assert.Empty(t, trace)
}

func TestTimelinePhasesRunAsPasses(t *testing.T) {
	// Two overlapping animations: every preproc must precede every
	// render within a frame.
	var trace []string
	tl := NewTimeline(&Section{
		StartT: 0,
		EndT:   1,
		Animations: []*Animation{
			recordingAnimation("x", 0, 1, &trace),
			recordingAnimation("y", 0, 1, &trace),
		},
	})
	tl.Step(0)
	assert.Equal(t, []string{
		"x:construct", "y:construct",
		"x:preproc@0", "y:preproc@0",
		"x:render@0", "y:render@0",
		"x:postproc@0", "y:postproc@0",
	}, trace)
}

func TestTimelineEndT(t *testing.T) {
	tl := NewTimeline(
		&Section{StartT: 0, EndT: 30},
		&Section{StartT: 10, EndT: 120},
	)
	assert.Equal(t, 120, tl.EndT())
	assert.Equal(t, 0, NewTimeline().EndT())
}
