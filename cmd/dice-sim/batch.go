package main

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/dice-roller/engine"
)

// ErrNoSettle is returned when a roll exceeds the step budget
var ErrNoSettle = errors.New("roll did not settle")

// batchResult summarises a run of rolls
type batchResult struct {
	Rolls      int
	Counts     [6]int
	MaxSteps   int
	TotalSteps int
	MaxBounces int
}

// Mean returns the average face value
func (b batchResult) Mean() float64 {
	if b.Rolls == 0 {
		return 0
	}
	sum := 0
	for i, n := range b.Counts {
		sum += (i + 1) * n
	}
	return float64(sum) / float64(b.Rolls)
}

// ChiSquare returns the statistic against a uniform die, 5 degrees of freedom
func (b batchResult) ChiSquare() float64 {
	if b.Rolls == 0 {
		return 0
	}
	expected := float64(b.Rolls) / 6
	chi := 0.0
	for _, n := range b.Counts {
		d := float64(n) - expected
		chi += d * d / expected
	}
	return chi
}

// chiSquareCritical5 is the 0.05 critical value for 5 degrees of freedom
const chiSquareCritical5 = 11.070

// runBatch rolls n times, stepping each roll until it settles within limit steps
func runBatch(sim *engine.Simulator, n, limit int) (batchResult, error) {
	res := batchResult{}
	for i := 0; i < n; i++ {
		sim.RequestRoll()
		steps := 0
		for {
			sim.Step()
			steps++
			if face, ok := sim.Result(); ok && !sim.IsRolling() {
				res.Rolls++
				res.Counts[face-1]++
				res.TotalSteps += steps
				if steps > res.MaxSteps {
					res.MaxSteps = steps
				}
				if b := sim.Snapshot().BounceCount; b > res.MaxBounces {
					res.MaxBounces = b
				}
				break
			}
			if steps >= limit {
				return res, fmt.Errorf("%w: roll %d after %d steps", ErrNoSettle, i+1, steps)
			}
		}
	}
	return res, nil
}
