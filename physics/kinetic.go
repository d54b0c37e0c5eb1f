package physics

import (
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/vmath"
)

// Integrate performs one explicit Euler step: p = p + speed*dir*dt
// No clamping or sub-stepping, a large dt can carry the body through thin obstacles
func Integrate(k *core.Kinetic, dt float64) (x, y float64) {
	k.X += k.Speed * k.DirX * dt
	k.Y += k.Speed * k.DirY * dt
	return k.X, k.Y
}

// ReflectX flips the horizontal heading (vertical surface hit)
func ReflectX(k *core.Kinetic) {
	k.DirX, k.DirY = vmath.ReflectAxisX(k.DirX, k.DirY)
}

// ReflectY flips the vertical heading (horizontal surface hit)
func ReflectY(k *core.Kinetic) {
	k.DirX, k.DirY = vmath.ReflectAxisY(k.DirX, k.DirY)
}
