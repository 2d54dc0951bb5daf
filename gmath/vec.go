// Package gmath holds the pure 2D value types consumed as component fields:
// vectors and rectangles with value-receiver arithmetic and no dependencies.
package gmath

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) String() string {
	return fmt.Sprintf("%5.2f %5.2f", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Lerp interpolates linearly toward o; t outside [0, 1] extrapolates.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
	}
}

// Rotate rotates v by angle radians counterclockwise around the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		v.X*cos - v.Y*sin,
		v.X*sin + v.Y*cos,
	}
}

// Equals compares componentwise to the given number of decimal places.
func (v Vec2) Equals(o Vec2, precision int) bool {
	p := math.Pow(10, float64(-precision))
	return NearlyEquals(v.X, o.X, p) && NearlyEquals(v.Y, o.Y, p)
}
