package vecmath

import "gonum.org/v1/gonum/spatial/r2"

// ToR2 converts the vector to gonum's r2.Vec
func (v Vec2) ToR2() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// FromR2 converts a gonum r2.Vec to Vec2
func FromR2(p r2.Vec) Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}
