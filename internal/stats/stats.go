// Package stats summarizes score samples from stored or simulated rounds
// and formats them as plain-text tables.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CI is a confidence interval.
type CI struct {
	Lo float64
	Hi float64
}

// Summary describes a sample of round scores.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	P90    float64
	Max    float64
	MeanCI CI // 95% interval for the mean
}

// confidence is the level used for MeanCI.
const confidence = 0.95

// Summarize computes a Summary of values. values is not modified.
// An empty sample yields the zero Summary.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if n == 1 {
		std = 0
	}

	return Summary{
		Count:  n,
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(sorted),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:    floats.Max(sorted),
		MeanCI: meanCI(mean, std, n),
	}
}

// meanCI is the Student's t interval for the mean of n samples.
func meanCI(mean, std float64, n int) CI {
	if n < 2 || std == 0 {
		return CI{Lo: mean, Hi: mean}
	}
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	half := t.Quantile(1-(1-confidence)/2) * std / math.Sqrt(float64(n))
	return CI{Lo: mean - half, Hi: mean + half}
}
