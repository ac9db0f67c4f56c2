package services

import (
	"context"
	"fmt"
)

// DefaultMaxPasses bounds local search when no explicit cap is configured.
const DefaultMaxPasses = 1000

// StopReason explains why TwoOptImprove returned.
type StopReason string

const (
	StopConverged StopReason = "converged"
	StopPassLimit StopReason = "pass_limit"
	StopDeadline  StopReason = "deadline"
)

type TwoOptOptions struct {
	// MaxPasses caps the number of full improvement passes.
	// Zero or negative means DefaultMaxPasses.
	MaxPasses int
}

type TwoOptResult struct {
	Tour      []int
	Cost      int
	Passes    int
	Moves     int
	Converged bool
	Reason    StopReason
}

// TwoOptImprove refines a closed tour with 2-opt edge exchanges.
//
// Each pass scans every pair of non-adjacent edges (i,i+1) and (j,j+1 mod N)
// and applies the single best improving reversal of tour[i+1..j]
// (best-improvement; ties keep the first pair found). Passes repeat until no
// improving move remains, the pass cap is hit, or ctx is done. Hitting the
// cap or the deadline is not an error: the best tour found so far is returned
// with Converged set to false.
//
// The input tour is not modified. The depot stays at position 0, and the
// returned cost never exceeds the input cost.
func TwoOptImprove(ctx context.Context, m DistanceMatrix, tour []int, opts TwoOptOptions) (TwoOptResult, error) {
	if err := m.validate(); err != nil {
		return TwoOptResult{}, fmt.Errorf("two-opt: %w", err)
	}

	n := m.Size()
	if err := ValidateTour(tour, n); err != nil {
		return TwoOptResult{}, fmt.Errorf("two-opt: %w", err)
	}

	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	cur := make([]int, n)
	copy(cur, tour)

	res := TwoOptResult{
		Tour: cur,
		Cost: TourCost(m, cur),
	}

	for {
		if ctx.Err() != nil {
			res.Reason = StopDeadline
			return res, nil
		}
		if res.Passes >= maxPasses {
			res.Reason = StopPassLimit
			return res, nil
		}
		res.Passes++

		bestDelta, bestI, bestJ := 0, -1, -1
		for i := 0; i < n-2; i++ {
			a, b := cur[i], cur[i+1]
			for j := i + 2; j < n; j++ {
				// Edges (0,1) and (N-1,0) share the depot.
				if i == 0 && j == n-1 {
					continue
				}
				c, e := cur[j], cur[(j+1)%n]

				delta := m[a][c] + m[b][e] - m[a][b] - m[c][e]
				if delta < bestDelta {
					bestDelta, bestI, bestJ = delta, i, j
				}
			}
		}

		if bestI < 0 {
			res.Converged = true
			res.Reason = StopConverged
			return res, nil
		}

		reverseSegment(cur, bestI+1, bestJ)
		res.Cost += bestDelta
		res.Moves++
	}
}
