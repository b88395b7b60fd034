package emojiscape

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Arrangement selects the active 3D placement pattern. The set is closed:
// adding a pattern means extending Arrange's switch.
type Arrangement int

const (
	ArrangementGrid Arrangement = iota
	ArrangementSwirl
	ArrangementTorus
	ArrangementSphere
)

func (a Arrangement) String() string {
	switch a {
	case ArrangementGrid:
		return "grid"
	case ArrangementSwirl:
		return "swirl"
	case ArrangementTorus:
		return "torus"
	case ArrangementSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Surface3D reports whether the arrangement places sprites on a 3D surface,
// facing outward normals instead of billboarding.
func (a Arrangement) Surface3D() bool {
	return a == ArrangementSwirl || a == ArrangementTorus || a == ArrangementSphere
}

type GridParams struct {
	Cols        int
	CellSize    float32
	SpriteScale float32
}

type SwirlParams struct {
	Turns        float32
	Radius       float32
	HeightFactor float32
	SpriteScale  float32
}

type TorusParams struct {
	MajorRadius float32
	MinorRadius float32
	SpriteScale float32
}

type SphereParams struct {
	Radius      float32
	SpriteScale float32
}

// LayoutParams bundles the shape parameters of every arrangement so a layout
// pass can be described by (arrangement, count, params) alone.
type LayoutParams struct {
	Grid   GridParams
	Swirl  SwirlParams
	Torus  TorusParams
	Sphere SphereParams
}

func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		Grid:   GridParams{Cols: 5, CellSize: 1.2, SpriteScale: 1},
		Swirl:  SwirlParams{Turns: 3, Radius: 3, HeightFactor: 5, SpriteScale: 0.7},
		Torus:  TorusParams{MajorRadius: 3, MinorRadius: 1, SpriteScale: 0.5},
		Sphere: SphereParams{Radius: 3, SpriteScale: 0.6},
	}
}

// Placement is one sprite's rest transform as produced by a layout pass.
type Placement struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	Scale       float32
	Billboard   bool
}

// Arrange computes the placement of n sprites for the given arrangement.
// It is a pure function of its inputs: identical arguments produce
// bit-identical placements, and placement i depends only on (i, n, params).
func Arrange(arrangement Arrangement, n int, params LayoutParams) []Placement {
	if n <= 0 {
		return nil
	}

	switch arrangement {
	case ArrangementGrid:
		return arrangeGrid(n, params.Grid)
	case ArrangementSwirl:
		return arrangeSwirl(n, params.Swirl)
	case ArrangementTorus:
		return arrangeTorus(n, params.Torus)
	case ArrangementSphere:
		return arrangeSphere(n, params.Sphere)
	default:
		return nil
	}
}

func arrangeGrid(n int, p GridParams) []Placement {
	cols := p.Cols
	if cols < 1 {
		cols = 1
	}
	rows := (n + cols - 1) / cols

	placements := make([]Placement, n)
	for i := 0; i < n; i++ {
		c := i % cols
		r := i / cols
		placements[i] = Placement{
			Position: mgl32.Vec3{
				(float32(c) - float32(cols)/2 + 0.5) * p.CellSize,
				(float32(r) - float32(rows)/2 + 0.5) * p.CellSize,
				0,
			},
			Orientation: mgl32.QuatIdent(),
			Scale:       p.SpriteScale,
			Billboard:   true,
		}
	}
	return placements
}

func arrangeSwirl(n int, p SwirlParams) []Placement {
	placements := make([]Placement, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		angle := t * float64(p.Turns) * 2 * math.Pi

		pos := mgl32.Vec3{
			p.Radius * float32(math.Cos(angle)),
			float32(t-0.5) * p.HeightFactor,
			p.Radius * float32(math.Sin(angle)),
		}
		// outward along the horizontal radial from the swirl axis
		normal := mgl32.Vec3{pos.X(), 0, pos.Z()}.Normalize()

		placements[i] = Placement{
			Position:    pos,
			Orientation: surfaceOrientation(pos, normal),
			Scale:       p.SpriteScale,
		}
	}
	return placements
}

// torusWindings is how many times the minor angle wraps while the major
// angle covers the full ring once.
const torusWindings = 5

func arrangeTorus(n int, p TorusParams) []Placement {
	placements := make([]Placement, n)
	for i := 0; i < n; i++ {
		u := float64(i) / float64(n) * 2 * math.Pi
		v := float64(i) * (2 * math.Pi * torusWindings / float64(n))

		cu, su := math.Cos(u), math.Sin(u)
		cv, sv := math.Cos(v), math.Sin(v)

		ring := float64(p.MajorRadius) + float64(p.MinorRadius)*cv
		pos := mgl32.Vec3{
			float32(ring * cu),
			float32(float64(p.MinorRadius) * sv),
			float32(ring * su),
		}
		normal := mgl32.Vec3{
			float32(cu * cv),
			float32(sv),
			float32(su * cv),
		}.Normalize()

		placements[i] = Placement{
			Position:    pos,
			Orientation: surfaceOrientation(pos, normal),
			Scale:       p.SpriteScale,
		}
	}
	return placements
}

// goldenAngle is π(√5−1), the turn between consecutive points of a
// Fibonacci spiral.
var goldenAngle = math.Pi * (math.Sqrt(5) - 1)

func arrangeSphere(n int, p SphereParams) []Placement {
	placements := make([]Placement, n)
	for i := 0; i < n; i++ {
		denom := n - 1
		if denom < 1 {
			denom = 1
		}
		y := 1 - 2*float64(i)/float64(denom)
		radiusAtY := math.Sqrt(math.Max(0, 1-y*y))
		theta := goldenAngle * float64(i)

		unit := mgl32.Vec3{
			float32(math.Cos(theta) * radiusAtY),
			float32(y),
			float32(math.Sin(theta) * radiusAtY),
		}
		pos := unit.Mul(p.Radius)

		placements[i] = Placement{
			Position:    pos,
			Orientation: surfaceOrientation(pos, unit),
			Scale:       p.SpriteScale,
		}
	}
	return placements
}

// surfaceOrientation builds the facing rotation for non-billboard sprites: an
// up-stabilized look-at that points the quad's face (its local -Z axis) along
// the outward normal. QuatLookAtV returns the camera-style inverse rotation,
// hence the Inverse to get the model orientation back.
func surfaceOrientation(pos mgl32.Vec3, normal mgl32.Vec3) mgl32.Quat {
	up := mgl32.Vec3{0, 1, 0}
	if mgl32.Abs(normal.Dot(up)) > 0.9999 {
		// look direction parallel to up degenerates the basis (sphere poles)
		up = mgl32.Vec3{0, 0, 1}
	}
	target := pos.Add(normal)
	return mgl32.QuatLookAtV(pos, target, up).Inverse().Normalize()
}
