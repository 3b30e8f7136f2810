package math

// Euler holds rotation angles in radians applied in XYZ order: the
// resulting rotation is Rx * Ry * Rz, so Z acts on a vector first.
type Euler struct {
	X, Y, Z float32
}

// Add returns the component-wise sum of two angle sets.
func (e Euler) Add(other Euler) Euler {
	return Euler{e.X + other.X, e.Y + other.Y, e.Z + other.Z}
}

// ToMat4 returns the rotation matrix Rx * Ry * Rz.
func (e Euler) ToMat4() Mat4 {
	return RotateX(e.X).Mul(RotateY(e.Y)).Mul(RotateZ(e.Z))
}

// ToQuat returns the same rotation as a quaternion.
func (e Euler) ToQuat() Quat {
	qx := QuatFromAxisAngle(AxisX, e.X)
	qy := QuatFromAxisAngle(AxisY, e.Y)
	qz := QuatFromAxisAngle(AxisZ, e.Z)
	return qx.Mul(qy).Mul(qz)
}
