package physics

import "github.com/lixenwraith/bounce/core"

// ReflectWall applies the boundary response for a labelled wall.
// Side walls flip X; top, bottom and unrecognized labels flip Y.
func ReflectWall(k *core.Kinetic, wallID string) {
	switch wallID {
	case WallLeft, WallRight:
		ReflectX(k)
	default:
		ReflectY(k)
	}
}

// ReflectPaddle applies the paddle response, a plain horizontal flip
func ReflectPaddle(k *core.Kinetic) {
	ReflectX(k)
}
