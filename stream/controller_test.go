package stream

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/mapanim/animation"
)

func TestController_ApplyRejectsBadCommands(t *testing.T) {
	_, system, controller, _ := newTestStreamer(t)
	frame := &Frame{Scale: 1}

	err := controller.Apply(Command{Type: "teleport"}, frame)
	assert.ErrorIs(t, err, ErrUnknownCommand)

	err = controller.Apply(Command{Type: "finish", Target: "nowhere"}, frame)
	assert.ErrorIs(t, err, ErrUnknownTarget)

	assert.Error(t, controller.Apply(Command{Type: "move"}, frame))
	assert.Error(t, controller.Apply(Command{Type: "scale", Scale: -1}, frame))
	assert.False(t, system.HasAnimations())
}

func TestController_DrainAppliesQueuedCommands(t *testing.T) {
	_, system, controller, metrics := newTestStreamer(t)
	frame := &Frame{Scale: 1}

	controller.Enqueue(Command{Type: "move", Position: point(5, 5)})
	controller.Enqueue(Command{Type: "scale", Scale: 2})
	controller.Enqueue(Command{Type: "bogus"})
	assert.False(t, system.HasAnimations(), "nothing is applied before Drain")

	controller.Drain(frame)
	assert.Equal(t, 1, system.Groups())
	assert.Equal(t, 2, system.FrontSize())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CommandsApplied.WithLabelValues("move")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CommandsApplied.WithLabelValues("scale")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CommandsRejected))
}

func TestController_QueueAppendsGroup(t *testing.T) {
	_, system, controller, _ := newTestStreamer(t)
	frame := &Frame{Scale: 1}

	require.NoError(t, controller.Apply(Command{Type: "move", Position: point(1, 1)}, frame))
	require.NoError(t, controller.Apply(Command{Type: "rotate", Angle: 1, Queue: true}, frame))
	assert.Equal(t, 2, system.Groups())
}

func TestController_FinishByObjectAndType(t *testing.T) {
	_, system, controller, _ := newTestStreamer(t)
	frame := &Frame{Scale: 1}

	require.NoError(t, controller.Apply(Command{Type: "arrow", Position: point(3, 4), Angle: 1}, frame))
	require.NoError(t, controller.Apply(Command{Type: "scale", Scale: 3}, frame))
	require.Equal(t, 2, system.FrontSize())

	require.NoError(t, controller.Apply(Command{Type: "finish", Target: "map-scale", Rewind: true}, frame))
	assert.Equal(t, 1, system.FrontSize())
	v, ok := system.GetProperty(animation.ObjectMapPlane, animation.Scale)
	require.True(t, ok)
	assert.InDelta(t, 3.0, v.Scalar, 1e-9)

	require.NoError(t, controller.Apply(Command{Type: "finish", Target: "arrow"}, frame))
	assert.False(t, system.HasAnimations())
}

func TestParseTargets(t *testing.T) {
	o, ok := parseObject("map-plane")
	assert.True(t, ok)
	assert.Equal(t, animation.ObjectMapPlane, o)

	typ, ok := parseType("kinetic-scroll")
	assert.True(t, ok)
	assert.Equal(t, animation.KineticScroll, typ)

	_, ok = parseType("map-plane")
	assert.False(t, ok)
}
