package stream

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

// Config is read from YAML and then overridden from MAPANIM_* environment
// variables.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url" env:"URL"`
		Username string `yaml:"username" env:"USERNAME"`
		Password string `yaml:"password" env:"PASSWORD"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt" envPrefix:"MQTT_"`
	Stream struct {
		FrameRate          float64 `yaml:"frameRate" env:"FRAME_RATE"`
		Width              float64 `yaml:"width"`
		Height             float64 `yaml:"height"`
		Duration           float64 `yaml:"duration"`
		Easing             string  `yaml:"easing"`
		MarkerColour       string  `yaml:"markerColour"`
		MarkerActiveColour string  `yaml:"markerActiveColour"`
		MarkerFadeSecs     float64 `yaml:"markerFadeSecs"`
	} `yaml:"stream" envPrefix:"STREAM_"`
	Api struct {
		Listen string `yaml:"listen" env:"LISTEN"`
	} `yaml:"api" envPrefix:"API_"`
}

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MAPANIM_"

// LoadConfig reads the YAML file at path and applies overrides and defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return ReadConfig(f)
}

// ReadConfig decodes a YAML config from r and applies overrides and defaults.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := env.ParseWithOptions(&c, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "mapanim/stream"
	}
	if c.Mqtt.Topics.Control == "" {
		c.Mqtt.Topics.Control = "mapanim/control"
	}
	if c.Stream.FrameRate <= 0 {
		c.Stream.FrameRate = 30
	}
	if c.Stream.Width <= 0 {
		c.Stream.Width = 1280
	}
	if c.Stream.Height <= 0 {
		c.Stream.Height = 720
	}
	if c.Stream.Duration <= 0 {
		c.Stream.Duration = 0.5
	}
	if c.Stream.MarkerColour == "" {
		c.Stream.MarkerColour = "#404040"
	}
	if c.Stream.MarkerActiveColour == "" {
		c.Stream.MarkerActiveColour = "#1e90ff"
	}
	if c.Stream.MarkerFadeSecs <= 0 {
		c.Stream.MarkerFadeSecs = 0.3
	}
	if c.Api.Listen == "" {
		c.Api.Listen = ":3000"
	}
}
