package stream

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/mapanim/animation"
)

// Streamer drives the animation system once per frame and streams the
// resulting view state to the renderer over MQTT.
type Streamer struct {
	config     Config
	client     mqtt.Client
	system     *animation.System
	controller *Controller
	metrics    *Metrics

	screen      animation.Screen
	perspective bool
	perspAngle  float64
	hasArrow    bool
	arrow       animation.Point
	arrowAngle  float64
	bounds      [4]animation.Point

	markerIdle   colorful.Color
	markerActive colorful.Color
	markerTint   float64

	latest atomic.Pointer[Frame]
}

// NewStreamer creates an instance of a Streamer. client may be nil when
// frames are only consumed through Latest.
func NewStreamer(config Config, client mqtt.Client, system *animation.System,
	controller *Controller, metrics *Metrics) (*Streamer, error) {

	s := new(Streamer)
	s.config = config
	s.client = client
	s.system = system
	s.controller = controller
	s.metrics = metrics

	var err error
	if s.markerIdle, err = colorful.Hex(config.Stream.MarkerColour); err != nil {
		return nil, fmt.Errorf("marker colour: %w", err)
	}
	if s.markerActive, err = colorful.Hex(config.Stream.MarkerActiveColour); err != nil {
		return nil, fmt.Errorf("marker active colour: %w", err)
	}

	s.screen = animation.Screen{
		Scale:       1,
		PixelWidth:  config.Stream.Width,
		PixelHeight: config.Stream.Height,
	}
	local := animation.Rect{MaxX: s.screen.PixelWidth, MaxY: s.screen.PixelHeight}
	s.bounds = animation.AnyRect{Local: local.Offset(local.Center().Mul(-1))}.Corners()
	s.latest.Store(s.snapshot(false))

	return s, nil
}

// Latest returns the most recently computed frame. Safe for concurrent use.
func (s *Streamer) Latest() *Frame {
	return s.latest.Load()
}

// Step applies pending commands, advances the system by elapsedSeconds and
// computes the next frame. Values of properties nobody animates any more are
// carried over from the previous frame.
func (s *Streamer) Step(elapsedSeconds float64) *Frame {
	s.controller.Drain(s.Latest())
	s.system.Advance(elapsedSeconds)

	// Checked before the queries below consume cached arrow values.
	arrowActive := s.system.AnimationExists(animation.ObjectArrow)

	rect := s.system.GetRect(s.screen)
	s.screen.Position = rect.Center
	s.screen.Angle = rect.Angle
	s.bounds = rect.Corners()
	if s.screen.PixelWidth > 0 {
		s.screen.Scale = (rect.Local.MaxX - rect.Local.MinX) / s.screen.PixelWidth
	}

	if params, ok := s.system.SwitchPerspective(); ok {
		s.perspective = params.Enable
	}
	if angle, ok := s.system.GetPerspectiveAngle(); ok {
		s.perspAngle = angle
	}
	if pos, ok := s.system.GetArrowPosition(); ok {
		s.arrow = pos
		s.hasArrow = true
	}
	if angle, ok := s.system.GetArrowAngle(); ok {
		s.arrowAngle = angle
	}

	s.fadeMarker(arrowActive, elapsedSeconds)

	f := s.snapshot(s.system.HasAnimations())
	s.latest.Store(f)
	s.metrics.ChainGroups.Set(float64(s.system.Groups()))
	s.metrics.FrontSize.Set(float64(s.system.FrontSize()))
	return f
}

func (s *Streamer) fadeMarker(active bool, elapsedSeconds float64) {
	delta := elapsedSeconds / s.config.Stream.MarkerFadeSecs
	if active {
		s.markerTint = math.Min(1, s.markerTint+delta)
	} else {
		s.markerTint = math.Max(0, s.markerTint-delta)
	}
}

func (s *Streamer) snapshot(animating bool) *Frame {
	var colour colorful.Color
	switch s.markerTint {
	case 0:
		colour = s.markerIdle
	case 1:
		colour = s.markerActive
	default:
		colour = s.markerIdle.BlendHcl(s.markerActive, s.markerTint).Clamped()
	}
	return &Frame{
		Center:           s.screen.Position,
		Angle:            s.screen.Angle,
		Scale:            s.screen.Scale,
		Perspective:      s.perspective,
		PerspectiveAngle: s.perspAngle,
		HasArrow:         s.hasArrow,
		Arrow:            s.arrow,
		ArrowAngle:       s.arrowAngle,
		Animating:        animating,
		Bounds:           s.bounds,
		MarkerColour:     colour,
		Marker:           colour.Hex(),
	}
}

// SendFrame sends a frame as binary over MQTT to the renderer.
func (s *Streamer) SendFrame(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 0, false, b)
	if token.Wait() && token.Error() != nil {
		s.metrics.PublishErrors.Inc()
		return fmt.Errorf("publish frame: %w", token.Error())
	}
	s.metrics.FramesPublished.Inc()
	return nil
}

// Run computes and sends frames at the configured frame rate until ctx is
// cancelled.
func (s *Streamer) Run(ctx context.Context) error {
	interval := time.Duration(float64(time.Second) / s.config.Stream.FrameRate)
	publishTimer := time.NewTicker(interval)
	defer publishTimer.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-publishTimer.C:
			f := s.Step(now.Sub(last).Seconds())
			last = now
			if err := s.SendFrame(f); err != nil {
				log.Println(err)
			}
		}
	}
}
