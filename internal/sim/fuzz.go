package sim

import (
	"fmt"
	"math"
)

// Fidelity is how precisely a metric is shown at the player's cognition
// level. This table is the single source of truth consulted by both the
// query layer and the health diagnostics, so the two never contradict.
type Fidelity int

const (
	FidelityVague Fidelity = iota
	FidelityApprox
	FidelityExact
)

// Metric names the headline numbers subject to fuzzing.
type Metric string

const (
	MetricRevenue     Metric = "revenue"
	MetricProfit      Metric = "profit"
	MetricDemand      Metric = "demand"
	MetricCompetition Metric = "competition"
	MetricMargin      Metric = "margin"
)

// fuzzTable: minimum cognition level at which a metric becomes approximate,
// then exact.
var fuzzTable = map[Metric][2]int{
	MetricRevenue:     {1, 3},
	MetricProfit:      {1, 3},
	MetricDemand:      {2, 4},
	MetricCompetition: {2, 4},
	MetricMargin:      {3, 5},
}

// MetricFidelity reports how a metric may be displayed at a cognition level.
func MetricFidelity(level int, m Metric) Fidelity {
	th, ok := fuzzTable[m]
	if !ok {
		return FidelityExact
	}
	switch {
	case level >= th[1]:
		return FidelityExact
	case level >= th[0]:
		return FidelityApprox
	default:
		return FidelityVague
	}
}

// FuzzValue renders a number at the given fidelity: exact as-is, approximate
// rounded to a coarse step, vague as an order-of-magnitude bucket.
func FuzzValue(v float64, f Fidelity) string {
	switch f {
	case FidelityExact:
		return fmt.Sprintf("%.0f", v)
	case FidelityApprox:
		step := 100.0
		if math.Abs(v) >= 10_000 {
			step = 1_000
		}
		return fmt.Sprintf("~%.0f", math.Round(v/step)*step)
	default:
		switch {
		case v <= 0:
			return "nothing to speak of"
		case v < 100:
			return "a handful"
		case v < 1_000:
			return "a few hundred"
		case v < 10_000:
			return "a few thousand"
		default:
			return "tens of thousands"
		}
	}
}
