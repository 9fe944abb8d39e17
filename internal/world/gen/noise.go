package gen

// simplex is seeded 2D simplex noise with values in [-1, 1].
type simplex struct {
	perm [512]int
}

var grad2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

func newSimplex(seed int64) *simplex {
	var p [256]int
	for i := range p {
		p[i] = i
	}
	// Fisher-Yates with an LCG stream.
	s := seed
	for i := 255; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int((s>>33)&0x7FFFFFFF) % (i + 1)
		p[i], p[j] = p[j], p[i]
	}
	n := &simplex{}
	for i := range n.perm {
		n.perm[i] = p[i&255]
	}
	return n
}

func floor(x float64) int {
	i := int(x)
	if x < float64(i) {
		return i - 1
	}
	return i
}

func (n *simplex) corner(gi int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	g := grad2[gi&7]
	return t * t * (g[0]*x + g[1]*y)
}

// at returns the noise value at (x, y).
func (n *simplex) at(x, y float64) float64 {
	const (
		skew   = 0.36602540378443864676 // (sqrt(3) - 1) / 2
		unskew = 0.21132486540518711775 // (3 - sqrt(3)) / 6
	)
	s := (x + y) * skew
	i, j := floor(x+s), floor(y+s)
	t := float64(i+j) * unskew
	x0, y0 := x-(float64(i)-t), y-(float64(j)-t)

	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}
	x1, y1 := x0-float64(i1)+unskew, y0-float64(j1)+unskew
	x2, y2 := x0-1+2*unskew, y0-1+2*unskew

	ii, jj := i&255, j&255
	sum := n.corner(n.perm[ii+n.perm[jj]], x0, y0) +
		n.corner(n.perm[ii+i1+n.perm[jj+j1]], x1, y1) +
		n.corner(n.perm[ii+1+n.perm[jj+1]], x2, y2)
	return 70 * sum
}

// octaves sums octaves of noise, each at double the frequency and
// persistence times the amplitude of the previous one, normalised to [-1, 1].
func (n *simplex) octaves(x, y float64, count int, persistence float64) float64 {
	var total, norm float64
	freq, amp := 1.0, 1.0
	for range count {
		total += n.at(x*freq, y*freq) * amp
		norm += amp
		amp *= persistence
		freq *= 2
	}
	return total / norm
}
