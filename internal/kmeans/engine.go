package kmeans

// State is the phase of a clustering run.
type State int

const (
	Running State = iota
	// Converged: a refinement pass produced no valid change.
	Converged
	// Stalled: centroid estimation found an empty cluster; the membership
	// from before that iteration is kept.
	Stalled
	// Capped: the iteration limit was reached.
	Capped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Stalled:
		return "stalled"
	case Capped:
		return "capped"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of Run. All terminal states carry a usable
// membership.
type Outcome struct {
	Membership []int
	State      State
	Iterations int
}

// MaxIterations bounds the refinement loop for n points.
func MaxIterations(n int) int { return 10 * n }

// Run clusters normalized rows into k groups with Lloyd's iterations.
// The caller guarantees 1 <= k <= len(data).
func Run(data [][]float64, k int, rng Source) Outcome {
	return run(data, k, InitialMembership(len(data), k, rng), MaxIterations(len(data)))
}

func run(data [][]float64, k int, membership []int, limit int) Outcome {
	state := Running
	iterations := 0
	for state == Running {
		if iterations >= limit {
			state = Capped
			break
		}
		iterations++

		centroids, ok := EstimateCentroids(data, membership, k)
		if !ok {
			state = Stalled
			break
		}

		next, changed := RefineMembership(data, centroids, membership)
		if !changed {
			state = Converged
			break
		}
		membership = next
	}

	return Outcome{
		Membership: membership,
		State:      state,
		Iterations: iterations,
	}
}
