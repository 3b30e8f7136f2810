package lighting

import (
	"fmt"

	"github.com/Faultbox/dappled/pkg/math"
)

// Mode selects one of the two lighting setups.
type Mode int

const (
	Day Mode = iota
	Night
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Day:
		return "day"
	case Night:
		return "night"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Night {
		return Day
	}
	return Night
}

// Color is linear-ish RGB in [0, 1].
type Color [3]float32

// Hex builds a Color from 0xRRGGBB.
func Hex(rgb uint32) Color {
	return Color{
		float32(rgb>>16&0xff) / 255,
		float32(rgb>>8&0xff) / 255,
		float32(rgb&0xff) / 255,
	}
}

// Palette is the fixed configuration of one mode.
type Palette struct {
	Background       Color
	LightColor       Color
	LightIntensity   float32
	AmbientIntensity float32
	Accent           Color  // panel accent for the celestial body
	Celestial        string // "Sun" or "Moon"
}

var palettes = [...]Palette{
	Day: {
		Background:       Hex(0xfcfbf9),
		LightColor:       Hex(0xffffff),
		LightIntensity:   2.2,
		AmbientIntensity: 0.65,
		Accent:           Hex(0xff4500),
		Celestial:        "Sun",
	},
	Night: {
		Background:       Hex(0x0a0b1e),
		LightColor:       Hex(0xaaccff),
		LightIntensity:   1.2,
		AmbientIntensity: 0.2,
		Accent:           Hex(0xe0e0e0),
		Celestial:        "Moon",
	},
}

// PaletteFor returns the palette of mode. Unknown modes fall back to Day.
func PaletteFor(m Mode) Palette {
	if m < Day || m > Night {
		return palettes[Day]
	}
	return palettes[m]
}

// Ambient is the uniform fill light.
type Ambient struct {
	Color     Color
	Intensity float32
}

// Directional is the sun or moon.
type Directional struct {
	Color     Color
	Intensity float32
	Position  math.Vec3
	Target    math.Vec3
	Direction math.Vec3 // unit, from Position toward Target
}

// Lights is everything the renderer needs from the lighting model for one
// frame.
type Lights struct {
	Mode       Mode
	Angle      float32
	Background Color
	Ambient    Ambient
	Sun        Directional
	Accent     Color
	Celestial  string
	Heading    float32 // compass needle, degrees
}

// Compute evaluates the lighting for mode and sun angle a. The angle is
// expected in [0, 1]; callers clamp user input first.
func Compute(mode Mode, a float32) Lights {
	p := PaletteFor(mode)
	pos := SunPosition(a)
	return Lights{
		Mode:       mode,
		Angle:      a,
		Background: p.Background,
		Ambient:    Ambient{Color: Hex(0xffffff), Intensity: p.AmbientIntensity},
		Sun: Directional{
			Color:     p.LightColor,
			Intensity: p.LightIntensity,
			Position:  pos,
			Target:    Target,
			Direction: Target.Sub(pos).Normalize(),
		},
		Accent:    p.Accent,
		Celestial: p.Celestial,
		Heading:   CompassHeading(a),
	}
}
