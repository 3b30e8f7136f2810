package lighting

import (
	"github.com/Faultbox/dappled/pkg/math"
)

// ShadowFrustum is the orthographic box of the shadow camera, in light space.
type ShadowFrustum struct {
	HalfExtent float32
	Near, Far  float32
}

// DefaultShadowFrustum covers the floor area around the plant.
var DefaultShadowFrustum = ShadowFrustum{HalfExtent: 35, Near: 1, Far: 120}

// ShadowBias is subtracted from the receiver depth before the shadow compare.
const ShadowBias = 0.0005

// ShadowMatrix returns the light view-projection of the directional light.
func (d Directional) ShadowMatrix(f ShadowFrustum) math.Mat4 {
	up := math.AxisY
	if dy := d.Direction.Y; dy > 0.99 || dy < -0.99 {
		up = math.AxisZ
	}
	view := math.LookAt(d.Position, d.Target, up)
	h := f.HalfExtent
	return math.Ortho(-h, h, -h, h, f.Near, f.Far).Mul(view)
}
