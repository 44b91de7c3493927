package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

const (
	GameFile      = "game.yaml"
	PlayerFile    = "player.yaml"
	DumbbellFile  = "dumbbell.yaml"
	PullUpBarFile = "pullup_bar.yaml"
	LevelFile     = "level.yaml"
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

type GameSpec struct {
	Title     string          `yaml:"title"`
	Width     int             `yaml:"width"`
	Height    int             `yaml:"height"`
	TPS       int             `yaml:"tps"`
	FixedStep float64         `yaml:"fixed_step"`
	Level     string          `yaml:"level"`
	Watch     bool            `yaml:"watch"`
	Keys      KeyBindingsSpec `yaml:"keys"`
}

// KeyBindingsSpec names keys the way ebiten.Key.UnmarshalText accepts them.
type KeyBindingsSpec struct {
	Forward string `yaml:"forward"`
	Back    string `yaml:"back"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Run     string `yaml:"run"`
	Jump    string `yaml:"jump"`
	Engage  string `yaml:"engage"`
	Release string `yaml:"release"`
	Climb   string `yaml:"climb"`
	Lift    string `yaml:"lift"`
	Pause   string `yaml:"pause"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// TransformSpec places an entity. Yaw is in degrees about the up axis.
type TransformSpec struct {
	Position Vec3Spec `yaml:"position"`
	Yaw      float64  `yaml:"yaw"`
}

type ColliderSpec struct {
	HalfExtents Vec3Spec `yaml:"half_extents"`
	Radius      float64  `yaml:"radius"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type InteractableSpec struct {
	Kind        string  `yaml:"kind"`
	Message     string  `yaml:"message"`
	Distance    float64 `yaml:"distance"`
	CanInteract *bool   `yaml:"can_interact"`
	Condition   string  `yaml:"condition"`
}

// Enabled reports the can_interact flag, which defaults to true.
func (s InteractableSpec) Enabled() bool {
	return s.CanInteract == nil || *s.CanInteract
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Mass      float64       `yaml:"mass"`
	Collider  ColliderSpec  `yaml:"collider"`

	WalkSpeed           float64  `yaml:"walk_speed"`
	RunSpeed            float64  `yaml:"run_speed"`
	JumpForce           float64  `yaml:"jump_force"`
	SpeedSmoothTime     float64  `yaml:"speed_smooth_time"`
	FallMultiplier      float64  `yaml:"fall_multiplier"`
	LowJumpMultiplier   float64  `yaml:"low_jump_multiplier"`
	GroundCheckDistance float64  `yaml:"ground_check_distance"`
	FootOffset          Vec3Spec `yaml:"foot_offset"`

	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	LookDelay        float64 `yaml:"look_delay"`
	EyeHeight        float64 `yaml:"eye_height"`

	InteractionRadius float64  `yaml:"interaction_radius"`
	HandOffset        Vec3Spec `yaml:"hand_offset"`

	Audio []AudioSpec `yaml:"audio"`
}

type DumbbellSpec struct {
	Name         string           `yaml:"name"`
	Transform    TransformSpec    `yaml:"transform"`
	Mass         float64          `yaml:"mass"`
	Collider     ColliderSpec     `yaml:"collider"`
	Interactable InteractableSpec `yaml:"interactable"`

	MaxAngle    float64  `yaml:"max_angle"`
	LiftSpeed   float64  `yaml:"lift_speed"`
	LowerSpeed  float64  `yaml:"lower_speed"`
	ElbowOffset Vec3Spec `yaml:"elbow_offset"`
	GripOffset  Vec3Spec `yaml:"grip_offset"`
}

type PullUpBarSpec struct {
	Name         string           `yaml:"name"`
	Transform    TransformSpec    `yaml:"transform"`
	Collider     ColliderSpec     `yaml:"collider"`
	Interactable InteractableSpec `yaml:"interactable"`

	PullUpSpeed       float64 `yaml:"pull_up_speed"`
	DropSpeed         float64 `yaml:"drop_speed"`
	MaxHeight         float64 `yaml:"max_height"`
	ArmAnimationSpeed float64 `yaml:"arm_animation_speed"`

	// Start and End are the hang and top positions. A missing start falls
	// back to the bar transform, a missing end to start raised by MaxHeight.
	Start *TransformSpec `yaml:"start"`
	End   *TransformSpec `yaml:"end"`

	EngageMessage     string `yaml:"engage_message"`
	ReleaseMessage    string `yaml:"release_message"`
	RestorePoseOnDrop bool   `yaml:"restore_pose_on_drop"`
}

type LevelSpec struct {
	Name      string          `yaml:"name"`
	Spawn     TransformSpec   `yaml:"spawn"`
	Platforms []PlatformSpec  `yaml:"platforms"`
	Props     []PlacementSpec `yaml:"props"`
}

type PlatformSpec struct {
	Name        string     `yaml:"name"`
	Center      Vec3Spec   `yaml:"center"`
	HalfExtents Vec3Spec   `yaml:"half_extents"`
	Color       *YAMLColor `yaml:"color"`
}

// PlacementSpec puts a prefab into a level. Overrides are merged over the
// prefab file before it is built.
type PlacementSpec struct {
	Prefab    string         `yaml:"prefab"`
	Transform *TransformSpec `yaml:"transform"`
	Overrides map[string]any `yaml:"overrides"`
}

type YAMLColor struct {
	color.Color
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
