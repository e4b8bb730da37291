package statistics

import (
	"fmt"
	"math"
)

// Showdown values for a single scenario, from the player's side
const (
	Win  = 1.0
	Tie  = 0.5
	Loss = 0.0
)

// Statistics accumulates per-scenario equity values and reports the mean with its
// sampling error. Only running sums are kept, so accumulators can be merged.
type Statistics struct {
	Samples int
	Sum     float64
	SumSq   float64 // Sum of squares for variance calculation
}

// FromCounts builds statistics from showdown counts
func FromCounts(wins, losses, ties int) Statistics {
	var s Statistics
	s.AddN(Win, wins)
	s.AddN(Loss, losses)
	s.AddN(Tie, ties)
	return s
}

// Add incorporates a single value
func (s *Statistics) Add(value float64) {
	s.AddN(value, 1)
}

// AddN incorporates n copies of value
func (s *Statistics) AddN(value float64, n int) {
	if n <= 0 {
		return
	}
	s.Samples += n
	s.Sum += value * float64(n)
	s.SumSq += value * value * float64(n)
}

// Merge folds other into s
func (s *Statistics) Merge(other Statistics) {
	s.Samples += other.Samples
	s.Sum += other.Sum
	s.SumSq += other.SumSq
}

// Mean returns the arithmetic mean of all values
func (s *Statistics) Mean() float64 {
	if s.Samples == 0 {
		return 0
	}
	return s.Sum / float64(s.Samples)
}

// Variance returns the sample variance of all values
func (s *Statistics) Variance() float64 {
	if s.Samples < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.Samples)*mean*mean) / float64(s.Samples-1)
	if v < 0 {
		return 0 // rounding
	}
	return v
}

// StdDev returns the sample standard deviation of all values
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Samples == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Samples))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean, clamped to
// the [Loss, Win] range equity can take.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError() // 95% confidence
	return math.Max(Loss, mean-margin), math.Min(Win, mean+margin)
}

// Validate checks the accumulator is internally consistent
func (s *Statistics) Validate() error {
	if s.Samples < 0 {
		return fmt.Errorf("negative sample count: %d", s.Samples)
	}
	if s.Samples == 0 && (s.Sum != 0 || s.SumSq != 0) {
		return fmt.Errorf("sums without samples: sum=%f sumSq=%f", s.Sum, s.SumSq)
	}
	mean := s.Mean()
	if mean < Loss || mean > Win {
		return fmt.Errorf("mean %f outside [%v, %v]", mean, Loss, Win)
	}
	return nil
}
