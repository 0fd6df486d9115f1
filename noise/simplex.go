// Package noise implements 3D simplex noise over a fixed permutation table.
package noise

import "math"

// Skew and unskew factors for the 3D simplex lattice.
const (
	f3 = 1.0 / 3.0
	g3 = 1.0 / 6.0
)

// grad3 holds the 12 gradient directions, the midpoints of a cube's edges.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// permV1 is the reference permutation, version 1. Every rendered frame is a
// pure function of this table; changing it changes all output.
var permV1 = [256]int{
	151, 160, 137, 91, 90, 15, 131, 13, 201,
	95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142, 8, 99, 37,
	240, 21, 10, 23, 190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62,
	94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33, 88, 237, 149, 56,
	87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139,
	48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133,
	230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54, 65, 25,
	63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200,
	196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3,
	64, 52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255,
	82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42,
	223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153,
	101, 155, 167, 43, 172, 9, 129, 22, 39, 253, 19, 98, 108, 110, 79,
	113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228, 251, 34, 242,
	193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249,
	14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204,
	176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93, 222,
	114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// perm is permV1 doubled so corner hashing never wraps an index.
var perm [512]int

func init() {
	for i, v := range permV1 {
		perm[i] = v
		perm[i+256] = v
	}
}

// Simplex is an injectable noise source backed by the fixed table.
// The zero value is ready to use; all instances produce identical output.
type Simplex struct{}

// NewSimplex returns a ready noise source.
func NewSimplex() Simplex {
	return Simplex{}
}

// Noise3 implements the source interface used by the field renderer.
func (Simplex) Noise3(x, y, z float64) float64 {
	return Noise3(x, y, z)
}

// Noise3 returns 3D simplex noise in [-1, 1] for the given coordinates.
// Identical inputs always produce bit-identical output.
func Noise3(xin, yin, zin float64) float64 {
	// Skew the input to find the enclosing simplex cell.
	s := (xin + yin + zin) * f3
	i := math.Floor(xin + s)
	j := math.Floor(yin + s)
	k := math.Floor(zin + s)

	t := (i + j + k) * g3
	x0 := xin - (i - t)
	y0 := yin - (j - t)
	z0 := zin - (k - t)

	// Rank the fractional coordinates to pick the tetrahedron's
	// corner traversal order.
	var i1, j1, k1 int
	var i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, i2, j2 = 1, 1, 1
		case x0 >= z0:
			i1, i2, k2 = 1, 1, 1
		default:
			k1, i2, k2 = 1, 1, 1
		}
	} else {
		switch {
		case y0 < z0:
			k1, j2, k2 = 1, 1, 1
		case x0 < z0:
			j1, j2, k2 = 1, 1, 1
		default:
			j1, i2, j2 = 1, 1, 1
		}
	}

	// Corner offsets in unskewed space. Each lattice step subtracts g3.
	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2.0*g3
	y2 := y0 - float64(j2) + 2.0*g3
	z2 := z0 - float64(k2) + 2.0*g3
	x3 := x0 - 1.0 + 3.0*g3
	y3 := y0 - 1.0 + 3.0*g3
	z3 := z0 - 1.0 + 3.0*g3

	// Hash the corner lattice coordinates to gradient indices.
	ii := int(i) & 255
	jj := int(j) & 255
	kk := int(k) & 255
	gi0 := perm[ii+perm[jj+perm[kk]]] % 12
	gi1 := perm[ii+i1+perm[jj+j1+perm[kk+k1]]] % 12
	gi2 := perm[ii+i2+perm[jj+j2+perm[kk+k2]]] % 12
	gi3 := perm[ii+1+perm[jj+1+perm[kk+1]]] % 12

	// Quartic falloff per corner, zero at the support radius.
	var n0, n1, n2, n3 float64
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * dot3(grad3[gi0], x0, y0, z0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * dot3(grad3[gi1], x1, y1, z1)
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * dot3(grad3[gi2], x2, y2, z2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3; t3 > 0 {
		t3 *= t3
		n3 = t3 * t3 * dot3(grad3[gi3], x3, y3, z3)
	}

	// 32 scales the summed contributions to just inside [-1, 1].
	return 32.0 * (n0 + n1 + n2 + n3)
}

func dot3(g [3]float64, x, y, z float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z
}
