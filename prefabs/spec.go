package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	PlayerSpecFile    = "player.yaml"
	HighlightSpecFile = "highlight.yaml"
	EnergyBarSpecFile = "energy_bar.yaml"
	EnemyTurnSpecFile = "enemy_turn.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name         string          `yaml:"name"`
	JumpDistance int             `yaml:"jump_distance"`
	BaseEnergy   int             `yaml:"base_energy"`
	Sprite       SpriteSpec      `yaml:"sprite"`
	RenderLayer  RenderLayerSpec `yaml:"render_layer"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.JumpDistance < 0 || spec.BaseEnergy < 0 {
		return nil, fmt.Errorf("prefabs: %s: jump_distance and base_energy must not be negative", PlayerSpecFile)
	}
	return &spec, nil
}

type HighlightSpec struct {
	Name        string          `yaml:"name"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	JumpColor   *YAMLColor      `yaml:"jump_color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadHighlightSpec() (*HighlightSpec, error) {
	spec, err := LoadSpec[HighlightSpec](HighlightSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnergyBarSpec struct {
	Name        string          `yaml:"name"`
	MaxWidth    float64         `yaml:"max_width"`
	Transform   TransformSpec   `yaml:"transform"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Background  *YAMLColor      `yaml:"background"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadEnergyBarSpec() (*EnergyBarSpec, error) {
	spec, err := LoadSpec[EnergyBarSpec](EnergyBarSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.MaxWidth <= 0 {
		return nil, fmt.Errorf("prefabs: %s: max_width must be positive", EnergyBarSpecFile)
	}
	return &spec, nil
}

type EnemyTurnSpec struct {
	Script      string `yaml:"script"`
	ThinkFrames int    `yaml:"think_frames"`
}

func LoadEnemyTurnSpec() (*EnemyTurnSpec, error) {
	spec, err := LoadSpec[EnemyTurnSpec](EnemyTurnSpecFile)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(spec.Script) == "" {
		return nil, fmt.Errorf("prefabs: %s: script is required", EnemyTurnSpecFile)
	}
	return &spec, nil
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SpriteSpec struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type YAMLColor struct {
	color.Color
}

// OrDefault converts the colour to RGBA, falling back when it was not set.
func (c *YAMLColor) OrDefault(fallback color.RGBA) color.RGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
