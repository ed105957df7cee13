// Package camera implements the raycaster's 2D camera: a position, a yaw
// angle, and the derived forward/plane basis vectors the column loop and
// the billboard stage both use to build ray directions.
package camera

import "github.com/gophercraft/raycast2d/pkg/vecmath"

// Camera owns a position, heading angle, and aspect ratio, and keeps a
// derived forward (Direction) and half-extent right (Plane) vector in sync
// with them. Invariants (must hold after any mutation):
//
//	Direction = Rot(angle) * (0, -1)
//	Plane     = Rot(angle) * (aspect/2, 0)
//
// angle == 0 means looking in the -Y direction.
type Camera struct {
	position  vecmath.Vector2
	angle     float64
	aspect    float64
	direction vecmath.Vector2
	plane     vecmath.Vector2
}

// New constructs a Camera at (x, y) with the given heading angle (radians)
// and aspect ratio, deriving Direction and Plane from them.
func New(x, y, angle, aspect float64) *Camera {
	c := &Camera{position: vecmath.Vector2{X: x, Y: y}, aspect: aspect}
	c.RotateTo(angle)
	return c
}

// forwardBasis and planeBasis are the angle-0 reference vectors the
// invariants in the Camera doc comment rotate.
func forwardBasis() vecmath.Vector2 { return vecmath.Vector2{X: 0, Y: -1} }
func (c *Camera) planeBasis() vecmath.Vector2 {
	return vecmath.Vector2{X: c.aspect / 2, Y: 0}
}

// RotateTo sets the heading angle and rebuilds Direction and Plane from
// scratch. This is the canonical way to correct drift accumulated by
// repeated Rotate calls.
func (c *Camera) RotateTo(angle float64) {
	c.angle = angle
	c.direction = forwardBasis().Rotated(angle)
	c.plane = c.planeBasis().Rotated(angle)
}

// Rotate increments the heading angle by delta and rotates Direction and
// Plane by delta in place. It does not re-normalize: callers must not feed
// it a non-unit rotation (i.e. delta must be an angle, not a scale).
func (c *Camera) Rotate(delta float64) {
	c.angle += delta
	c.direction = c.direction.Rotated(delta)
	c.plane = c.plane.Rotated(delta)
}

// MoveLocal translates the camera by dx along its local right axis and dy
// along Direction. At angle == 0, dy > 0 moves toward -Y (i.e. along
// Direction) and dx > 0 moves to the camera's right. Collision detection
// is the caller's responsibility; MoveLocal never rejects a move.
func (c *Camera) MoveLocal(dx, dy float64) {
	right := c.plane.Normalized().Scale(-1)
	c.position = c.position.Add(right.Scale(dx)).Add(c.direction.Scale(dy))
}

// Angle returns the current heading angle in radians.
func (c *Camera) Angle() float64 { return c.angle }

// Direction returns the camera's forward unit vector.
func (c *Camera) Direction() vecmath.Vector2 { return c.direction }

// Plane returns the camera's half-extent right vector (magnitude
// aspect/2).
func (c *Camera) Plane() vecmath.Vector2 { return c.plane }

// AspectRatio returns the camera's aspect ratio.
func (c *Camera) AspectRatio() float64 { return c.aspect }

// SetAspectRatio updates the aspect ratio and rebuilds Plane, preserving
// the current heading angle.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.aspect = aspect
	c.plane = c.planeBasis().Rotated(c.angle)
}

// Position returns the camera's world position.
func (c *Camera) Position() vecmath.Vector2 { return c.position }

// SetPosition overwrites the camera's world position.
func (c *Camera) SetPosition(p vecmath.Vector2) { c.position = p }
