// Package lighting derives the scene lights from the environment mode and
// the sun angle.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/dappled/pkg/math"
)

// Arc geometry of the sun (or moon) path.
const (
	ArcRadius = 20 // horizontal reach east and west
	ArcHeight = 28 // rise above the base height at zenith
	ArcBase   = 12 // height at both horizon ends
)

// Target is the point the light always looks at, near the plant's visual
// center.
var Target = math.Vec3{Y: 2}

// SunPosition maps angle a in [0, 1] onto the east-zenith-west arc:
// 0 is the east horizon, 0.5 noon and 1 the west horizon.
func SunPosition(a float32) math.Vec3 {
	theta := float64(a) * gomath.Pi
	return math.Vec3{
		X: float32(gomath.Cos(theta) * ArcRadius),
		Y: float32(gomath.Sin(theta)*ArcHeight + ArcBase),
		Z: 0,
	}
}

// SunDirection returns the unit direction the light travels, from the
// light position toward Target.
func SunDirection(a float32) math.Vec3 {
	return Target.Sub(SunPosition(a)).Normalize()
}

// CompassHeading returns the panel compass needle rotation in degrees.
func CompassHeading(a float32) float32 {
	return a*180 + 90
}
