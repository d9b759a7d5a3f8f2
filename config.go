package sparks

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scene list.
type Config struct {
	Scenes []SceneConfig `yaml:"scenes"`
}

// SceneConfig describes one scene. Durations are optional; an absent duration
// is an instantaneous phase.
type SceneConfig struct {
	Hold    time.Duration `yaml:"hold"`     // time at full opacity
	FadeIn  time.Duration `yaml:"fade_in"`  // opacity ramp 0 -> 1
	FadeOut time.Duration `yaml:"fade_out"` // opacity ramp 1 -> 0
	Texts   []TextConfig  `yaml:"texts"`
}

// TextConfig is one colored phrase. Color components left out fall back to
// DefaultHSL.
type TextConfig struct {
	Text       string   `yaml:"text"`
	Hue        *float64 `yaml:"hue"`
	Saturation *float64 `yaml:"saturation"`
	Lightness  *float64 `yaml:"lightness"`
}

// LoadConfig reads and validates a YAML scene file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid scene config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates YAML scene data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config for values the engine cannot represent.
func (c *Config) Validate() error {
	if len(c.Scenes) == 0 {
		return fmt.Errorf("at least one scene is required")
	}
	for i, sc := range c.Scenes {
		if sc.Hold < 0 || sc.FadeIn < 0 || sc.FadeOut < 0 {
			return fmt.Errorf("scene %d: durations cannot be negative", i)
		}
		for j, t := range sc.Texts {
			if t.Saturation != nil && (*t.Saturation < 0 || *t.Saturation > 100) {
				return fmt.Errorf("scene %d text %d: saturation %v out of range [0, 100]", i, j, *t.Saturation)
			}
			if t.Lightness != nil && (*t.Lightness < 0 || *t.Lightness > 100) {
				return fmt.Errorf("scene %d text %d: lightness %v out of range [0, 100]", i, j, *t.Lightness)
			}
		}
	}
	return nil
}

// Scenes converts the config into engine scenes for the given tick rate.
func (c *Config) Scenes(tps int) []Scene {
	if tps <= 0 {
		tps = DefaultTPS
	}
	scenes := make([]Scene, len(c.Scenes))
	for i, sc := range c.Scenes {
		segs := make([]TextSegment, len(sc.Texts))
		for j, t := range sc.Texts {
			segs[j] = TextSegment{Text: strings.TrimSpace(t.Text), Color: t.hsl()}
		}
		scenes[i] = Scene{
			HoldTicks:   durationTicks(sc.Hold, tps),
			FadeInRate:  fadeRate(sc.FadeIn, tps),
			FadeOutRate: fadeRate(sc.FadeOut, tps),
			Segments:    segs,
		}
	}
	return scenes
}

func (t TextConfig) hsl() HSL {
	c := DefaultHSL
	if t.Hue != nil {
		c.H = *t.Hue
	}
	if t.Saturation != nil {
		c.S = *t.Saturation
	}
	if t.Lightness != nil {
		c.L = *t.Lightness
	}
	return c
}

func durationTicks(d time.Duration, tps int) int {
	if d <= 0 {
		return 0
	}
	return int(math.Round(d.Seconds() * float64(tps)))
}

// fadeRate returns the per-tick opacity step for a fade lasting d.
// Fades shorter than one tick are instantaneous.
func fadeRate(d time.Duration, tps int) float64 {
	ticks := d.Seconds() * float64(tps)
	if ticks < 1 {
		return 0
	}
	return 1 / ticks
}
