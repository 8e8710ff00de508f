package kmeans

import "math"

const (
	subtractiveModulus = math.MaxInt32
	subtractiveSeed    = 161803398
)

// subtractiveSource is Knuth's subtractive generator as seeded by the .NET
// System.Random(int) constructor, so a given seed reproduces the draws
// container clusterings were historically computed with.
type subtractiveSource struct {
	state  [56]int
	inext  int
	inextp int
}

// NewSource returns a reproducible Source for seed.
func NewSource(seed int32) Source {
	s := &subtractiveSource{inextp: 21}

	sub := subtractiveModulus
	if seed != math.MinInt32 {
		sub = int(seed)
		if sub < 0 {
			sub = -sub
		}
	}

	mj := subtractiveSeed - sub
	s.state[55] = mj
	mk := 1
	ii := 0
	for i := 1; i < 55; i++ {
		if ii += 21; ii >= 55 {
			ii -= 55
		}
		s.state[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += subtractiveModulus
		}
		mj = s.state[ii]
	}

	for k := 1; k < 5; k++ {
		for i := 1; i < 56; i++ {
			n := i + 30
			if n >= 55 {
				n -= 55
			}
			s.state[i] -= s.state[1+n]
			if s.state[i] < 0 {
				s.state[i] += subtractiveModulus
			}
		}
	}

	return s
}

// next returns a value in [0, math.MaxInt32).
func (s *subtractiveSource) next() int {
	i := s.inext + 1
	if i >= 56 {
		i = 1
	}
	p := s.inextp + 1
	if p >= 56 {
		p = 1
	}

	v := s.state[i] - s.state[p]
	if v == subtractiveModulus {
		v--
	}
	if v < 0 {
		v += subtractiveModulus
	}

	s.state[i] = v
	s.inext = i
	s.inextp = p
	return v
}

// IntN returns a value in [0, n).
func (s *subtractiveSource) IntN(n int) int {
	return int(float64(s.next()) * (1.0 / subtractiveModulus) * float64(n))
}
