package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Application codes for the tests, outside the reserved system range.
const (
	testEventCode      SystemEventCode = 0x101
	testEventCodeOther SystemEventCode = 0x102
)

func TestEventRegisterAndFire(t *testing.T) {
	EventSystemInitialize()

	received := 0
	listener := &struct{ name string }{"listener"}
	callback := func(code SystemEventCode, sender interface{}, listenerInst interface{}, data EventContext) bool {
		received++
		assert.Equal(t, testEventCode, code)
		assert.Equal(t, int32(42), data.Data.I32[0])
		return true
	}
	assert.True(t, EventRegister(testEventCode, listener, callback))
	defer EventUnregister(testEventCode, listener, callback)

	context := EventContext{}
	context.Data.I32[0] = 42
	assert.True(t, EventFire(testEventCode, nil, context))
	assert.Equal(t, 1, received)

	// Nothing listens on this one.
	assert.False(t, EventFire(testEventCodeOther, nil, context))
}

func TestEventDuplicateListenerRejected(t *testing.T) {
	EventSystemInitialize()

	listener := &struct{ name string }{"dup"}
	callback := func(SystemEventCode, interface{}, interface{}, EventContext) bool { return false }
	assert.True(t, EventRegister(testEventCodeOther, listener, callback))
	assert.False(t, EventRegister(testEventCodeOther, listener, callback))
	assert.True(t, EventUnregister(testEventCodeOther, listener, callback))
	assert.False(t, EventUnregister(testEventCodeOther, listener, callback))
}

func TestEventHandledStopsPropagation(t *testing.T) {
	EventSystemInitialize()

	first := &struct{ name string }{"first"}
	second := &struct{ name string }{"second"}
	secondCalled := false

	handle := func(SystemEventCode, interface{}, interface{}, EventContext) bool { return true }
	observe := func(SystemEventCode, interface{}, interface{}, EventContext) bool {
		secondCalled = true
		return false
	}
	assert.True(t, EventRegister(testEventCode, first, handle))
	assert.True(t, EventRegister(testEventCode, second, observe))
	defer EventUnregister(testEventCode, first, handle)
	defer EventUnregister(testEventCode, second, observe)

	assert.True(t, EventFire(testEventCode, nil, EventContext{}))
	assert.False(t, secondCalled)
}

func TestMetricsRecordTriangulation(t *testing.T) {
	assert.NoError(t, MetricsInitialize())

	before := MetricsTrianglesEmitted()
	MetricsRecordTriangulation(12)
	MetricsRecordTriangulation(2)
	assert.Equal(t, before+14, MetricsTrianglesEmitted())
}
