package vmath

import "math"

// UnitFromAngle returns (cos θ, sin θ)
func UnitFromAngle(theta float64) (x, y float64) {
	return math.Cos(theta), math.Sin(theta)
}

// RandomAngle samples θ uniformly in [0, 2π)
func RandomAngle(src Source) float64 {
	return src.Float64() * TwoPi
}

// RandomUnit returns a unit vector with heading uniform over the full circle
func RandomUnit(src Source) (x, y float64) {
	return UnitFromAngle(RandomAngle(src))
}

// Magnitude returns vector length sqrt(x² + y²)
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// ReflectAxisX returns velocity reflected off a vertical wall (X axis boundary)
// Use for left/right edge and paddle collision
func ReflectAxisX(velX, velY float64) (float64, float64) {
	return -velX, velY
}

// ReflectAxisY returns velocity reflected off a horizontal wall (Y axis boundary)
// Use for top/bottom edge collision
func ReflectAxisY(velX, velY float64) (float64, float64) {
	return velX, -velY
}
