package raycast

import "github.com/gophercraft/raycast2d/pkg/vecmath"

// plane is the set of points p satisfying normal.Dot(p) + d == 0.
type plane struct {
	normal vecmath.Vector3
	d      float64
}

func planeThroughPoint(normal, point vecmath.Vector3) plane {
	return plane{normal: normal, d: -normal.Dot(point)}
}

// intersect returns the ray parameter t at which ray crosses p, and
// whether the ray is not parallel to it (n.Dot(dir) != 0).
func (p plane) intersect(ray Ray3) (t float64, ok bool) {
	denom := p.normal.Dot(ray.Dir)
	if denom == 0 {
		return 0, false
	}
	t = -(p.d + p.normal.Dot(ray.Start)) / denom
	return t, true
}
