package stream

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/mapanim/animation"
	"github.com/matt-g-everett/mapanim/util"
)

const commandBuffer = 64

// Command is a control message received from a client.
type Command struct {
	Type     string           `json:"type"`
	Position *animation.Point `json:"position,omitempty"`
	Scale    float64          `json:"scale,omitempty"`
	Angle    float64          `json:"angle,omitempty"`
	Enable   bool             `json:"enable,omitempty"`
	FOV      float64          `json:"fov,omitempty"`
	Duration float64          `json:"duration,omitempty"`
	Easing   string           `json:"easing,omitempty"`
	Queue    bool             `json:"queue,omitempty"`

	// Finish commands.
	Target string `json:"target,omitempty"`
	Rewind bool   `json:"rewind,omitempty"`
	All    bool   `json:"all,omitempty"`
}

// Controller turns control commands into animations. Commands arrive on MQTT
// goroutines and are queued; they are only applied by Drain, on the frame
// loop, so the animation system is never touched concurrently.
type Controller struct {
	config   Config
	system   *animation.System
	metrics  *Metrics
	commands chan Command
}

// NewController creates a Controller feeding system.
func NewController(config Config, system *animation.System, metrics *Metrics) *Controller {
	c := new(Controller)
	c.config = config
	c.system = system
	c.metrics = metrics
	c.commands = make(chan Command, commandBuffer)
	return c
}

func (c *Controller) handleClientMessages(client mqtt.Client, msg mqtt.Message) {
	var cmd Command
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		log.Printf("Dropping command on %s: %v", msg.Topic(), err)
		c.metrics.CommandsRejected.Inc()
		return
	}
	c.Enqueue(cmd)
}

// Enqueue queues cmd for the next Drain. It drops the command if the queue
// is full.
func (c *Controller) Enqueue(cmd Command) {
	select {
	case c.commands <- cmd:
	default:
		log.Printf("Command queue full, dropping %q", cmd.Type)
		c.metrics.CommandsRejected.Inc()
	}
}

// Subscribe listens for commands on the control topic.
func (c *Controller) Subscribe(client mqtt.Client) error {
	token := client.Subscribe(c.config.Mqtt.Topics.Control, 0, c.handleClientMessages)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", c.config.Mqtt.Topics.Control, token.Error())
	}
	log.Printf("Subscribed to %s", c.config.Mqtt.Topics.Control)
	return nil
}

// Drain applies every queued command against the last rendered frame.
func (c *Controller) Drain(current *Frame) {
	for {
		select {
		case cmd := <-c.commands:
			if err := c.Apply(cmd, current); err != nil {
				log.Printf("Rejected command %q: %v", cmd.Type, err)
				c.metrics.CommandsRejected.Inc()
				continue
			}
			c.metrics.CommandsApplied.WithLabelValues(cmd.Type).Inc()
		default:
			return
		}
	}
}

// Apply builds the animation described by cmd, starting from current, and
// hands it to the system.
func (c *Controller) Apply(cmd Command, current *Frame) error {
	duration := cmd.Duration
	if duration <= 0 {
		duration = c.config.Stream.Duration
	}
	name := cmd.Easing
	if name == "" {
		name = c.config.Stream.Easing
	}
	easing, ok := util.Easing(name)
	if !ok {
		log.Printf("Unknown easing %q, using %s", name, util.DefaultEasing)
	}

	var anim animation.Animation
	switch cmd.Type {
	case "move":
		if cmd.Position == nil {
			return fmt.Errorf("move: missing position")
		}
		to := current.MapState()
		to.Position = *cmd.Position
		anim = NewMapLinear(current.MapState(), to, duration, easing)
	case "scale":
		if cmd.Scale <= 0 {
			return fmt.Errorf("scale: must be positive, got %v", cmd.Scale)
		}
		anim = NewMapScale(current.Scale, cmd.Scale, duration, easing)
	case "rotate":
		to := current.MapState()
		to.Angle = cmd.Angle
		anim = NewMapLinear(current.MapState(), to, duration, easing)
	case "arrow":
		if cmd.Position == nil {
			return fmt.Errorf("arrow: missing position")
		}
		fromPos, fromAngle := *cmd.Position, cmd.Angle
		if current.HasArrow {
			fromPos, fromAngle = current.Arrow, current.ArrowAngle
		}
		anim = NewArrowAnimation(fromPos, *cmd.Position, fromAngle, cmd.Angle, duration, easing)
	case "perspective":
		params := animation.PerspectiveParams{
			Enable:     cmd.Enable,
			StartAngle: current.PerspectiveAngle,
			AngleFOV:   cmd.FOV,
		}
		if cmd.Enable {
			params.EndAngle = cmd.Angle
		}
		anim = NewPerspectiveSwitch(params, duration, easing)
	case "finish":
		return c.finish(cmd)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
	}

	if cmd.Queue {
		c.system.PushAnimation(anim)
	} else {
		c.system.CombineAnimation(anim)
	}
	return nil
}

func (c *Controller) finish(cmd Command) error {
	if object, ok := parseObject(cmd.Target); ok {
		c.system.FinishObjectAnimations(object, cmd.Rewind, cmd.All)
		return nil
	}
	if t, ok := parseType(cmd.Target); ok {
		c.system.FinishTypeAnimations(t, cmd.Rewind, cmd.All)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownTarget, cmd.Target)
}

func parseObject(name string) (animation.Object, bool) {
	for _, o := range []animation.Object{animation.ObjectMapPlane, animation.ObjectArrow} {
		if o.String() == name {
			return o, true
		}
	}
	return 0, false
}

func parseType(name string) (animation.Type, bool) {
	for t := animation.Sequence; t <= animation.KineticScroll; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}
