package app

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"orrery/gfx"
	"orrery/solar"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// BodyConfig describes one body of the system.
type BodyConfig struct {
	Name          string
	OrbitRadius   float32
	Radius        float32
	OrbitSpeed    float32 // rad/s
	RotationSpeed float32 // rad/s
	Color         gfx.Color
}

type Config struct {
	Width  int
	Height int

	CameraPosition mgl32.Vec3
	CameraTarget   mgl32.Vec3
	CameraUp       mgl32.Vec3

	Sun     BodyConfig
	Planets []BodyConfig

	// MoveSpeed is in world units per second, RotateSpeed in radians per
	// second.
	MoveSpeed   float32
	RotateSpeed float32

	Background gfx.Color
	Depth      bool

	HUD    bool
	Labels bool

	// StatsEvery is the interval in seconds between fps log lines. Zero
	// disables them.
	StatsEvery float32
}

// DefaultConfig returns the stock four-planet system seen from above and
// behind the sun.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,

		CameraPosition: mgl32.Vec3{0, 150, 400},
		CameraTarget:   mgl32.Vec3{0, 0, 0},
		CameraUp:       mgl32.Vec3{0, 1, 0},

		Sun: BodyConfig{Name: "Sun", Radius: 30, Color: 0xFFFF00},
		Planets: []BodyConfig{
			{Name: "Green", OrbitRadius: 150, Radius: 15, OrbitSpeed: 0.8, RotationSpeed: 2.0, Color: 0x00FF00},
			{Name: "Blue", OrbitRadius: 250, Radius: 20, OrbitSpeed: 0.6, RotationSpeed: 1.5, Color: 0x0000FF},
			{Name: "Red", OrbitRadius: 350, Radius: 18, OrbitSpeed: 0.4, RotationSpeed: 1.8, Color: 0xFF0000},
			{Name: "Magenta", OrbitRadius: 450, Radius: 12, OrbitSpeed: 0.3, RotationSpeed: 1.8, Color: 0xFF00FF},
		},

		MoveSpeed:   100,
		RotateSpeed: 1.5,

		Background: gfx.Black,
		StatsEvery: 5,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width > 1<<15-1 || c.Height > 1<<15-1 {
		return fmt.Errorf("%w: window size %dx%d exceeds %d", ErrInvalidConfig, c.Width, c.Height, 1<<15-1)
	}

	front := c.CameraTarget.Sub(c.CameraPosition)
	if front.Len() < 1e-6 {
		return fmt.Errorf("%w: camera target equals position", ErrInvalidConfig)
	}
	if c.CameraUp.Len() < 1e-6 || front.Normalize().Cross(c.CameraUp.Normalize()).Len() < 1e-6 {
		return fmt.Errorf("%w: camera up %v is parallel to view direction", ErrInvalidConfig, c.CameraUp)
	}

	if c.MoveSpeed < 0 || c.RotateSpeed < 0 {
		return fmt.Errorf("%w: negative camera speed", ErrInvalidConfig)
	}
	if c.StatsEvery < 0 {
		return fmt.Errorf("%w: negative stats interval", ErrInvalidConfig)
	}

	if c.Sun.Radius < 0 {
		return fmt.Errorf("%w: sun radius %v", ErrInvalidConfig, c.Sun.Radius)
	}
	for i, p := range c.Planets {
		if p.Radius < 0 || p.OrbitRadius < 0 {
			return fmt.Errorf("%w: planet %d (%s): negative radius", ErrInvalidConfig, i, p.Name)
		}
	}
	return nil
}

// NewSystemFromConfig builds the system with every planet at angle zero.
func NewSystemFromConfig(c Config) *solar.System {
	sys := solar.NewSystem(c.Sun.Radius, c.Sun.Color)
	sys.Central().Name = c.Sun.Name
	for _, p := range c.Planets {
		b := solar.NewBody(p.OrbitRadius, p.Radius, p.OrbitSpeed, p.RotationSpeed, p.Color)
		b.Name = p.Name
		sys.AddBody(b)
	}
	return sys
}

// NewCameraFromConfig returns the starting camera.
func NewCameraFromConfig(c Config) *gfx.Camera {
	return gfx.NewCamera(c.CameraPosition, c.CameraTarget, c.CameraUp)
}
