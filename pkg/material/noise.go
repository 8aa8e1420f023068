package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

const perlinSize = 256

// Perlin holds randomly generated lattice gradient and permutation tables.
// Tables are built once from the supplied random stream and are read-only
// afterwards, so a single Perlin may be shared by all render workers.
type Perlin struct {
	gradients [perlinSize]core.Vec3
	permX     [perlinSize]int
	permY     [perlinSize]int
	permZ     [perlinSize]int
}

// NewPerlin builds gradient noise tables from random
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = core.NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		).Normalize()
	}
	p.permX = generatePermutation(random)
	p.permY = generatePermutation(random)
	p.permZ = generatePermutation(random)
	return p
}

func generatePermutation(random *rand.Rand) [perlinSize]int {
	var perm [perlinSize]int
	for i := range perm {
		perm[i] = i
	}
	random.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// Noise returns lattice gradient noise at p, roughly in [-1,1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterpolate(&c, u, v, w)
}

// perlinInterpolate blends the 8 corner gradients with a Hermite cubic fade
func perlinInterpolate(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise, halving amplitude and doubling
// frequency each octave, and returns the absolute value
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	return turbulence(p.Noise, point, depth)
}

func turbulence(noise func(core.Vec3) float64, point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// PerlinImproved is the permutation-hash variant of gradient noise with the
// quintic fade 6t⁵-15t⁴+10t³ and 12 fixed edge gradients
type PerlinImproved struct {
	perm [2 * perlinSize]int
}

// NewPerlinImproved builds a shuffled, doubled permutation table from random
func NewPerlinImproved(random *rand.Rand) *PerlinImproved {
	p := &PerlinImproved{}
	base := generatePermutation(random)
	copy(p.perm[:perlinSize], base[:])
	copy(p.perm[perlinSize:], base[:])
	return p
}

// Noise returns improved gradient noise at point, roughly in [-1,1]
func (p *PerlinImproved) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	x, y, z := point.X-fx, point.Y-fy, point.Z-fz
	xi, yi, zi := int(fx)&255, int(fy)&255, int(fz)&255

	u, v, w := fade(x), fade(y), fade(z)

	a, b := p.perm[xi]+yi, p.perm[xi+1]+yi
	aa, ab := p.perm[a]+zi, p.perm[a+1]+zi
	ba, bb := p.perm[b]+zi, p.perm[b+1]+zi

	return lerp(
		lerp(
			lerp(grad(p.perm[aa], x, y, z), grad(p.perm[ba], x-1, y, z), u),
			lerp(grad(p.perm[ab], x, y-1, z), grad(p.perm[bb], x-1, y-1, z), u),
			v),
		lerp(
			lerp(grad(p.perm[aa+1], x, y, z-1), grad(p.perm[ba+1], x-1, y, z-1), u),
			lerp(grad(p.perm[ab+1], x, y-1, z-1), grad(p.perm[bb+1], x-1, y-1, z-1), u),
			v),
		w)
}

// Turbulence sums depth octaves of improved noise
func (p *PerlinImproved) Turbulence(point core.Vec3, depth int) float64 {
	return turbulence(p.Noise, point, depth)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}

	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}

	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
