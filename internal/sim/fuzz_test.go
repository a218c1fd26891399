package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricFidelity_Thresholds(t *testing.T) {
	tests := []struct {
		metric Metric
		level  int
		want   Fidelity
	}{
		{MetricRevenue, 0, FidelityVague},
		{MetricRevenue, 1, FidelityApprox},
		{MetricRevenue, 3, FidelityExact},
		{MetricProfit, 2, FidelityApprox},
		{MetricDemand, 1, FidelityVague},
		{MetricDemand, 2, FidelityApprox},
		{MetricDemand, 4, FidelityExact},
		{MetricMargin, 4, FidelityApprox},
		{MetricMargin, 5, FidelityExact},
		{Metric("unknown"), 0, FidelityExact},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MetricFidelity(tt.level, tt.metric), "%s at level %d", tt.metric, tt.level)
	}
}

func TestMetricFidelity_MonotonicInLevel(t *testing.T) {
	for _, m := range []Metric{MetricRevenue, MetricProfit, MetricDemand, MetricCompetition, MetricMargin} {
		prev := MetricFidelity(0, m)
		for level := 1; level <= 5; level++ {
			cur := MetricFidelity(level, m)
			assert.GreaterOrEqual(t, int(cur), int(prev), "%s must never get blurrier as cognition grows", m)
			prev = cur
		}
	}
}

func TestFuzzValue(t *testing.T) {
	assert.Equal(t, "12345", FuzzValue(12345, FidelityExact))
	assert.Equal(t, "~12000", FuzzValue(12345, FidelityApprox))
	assert.Equal(t, "~2300", FuzzValue(2340, FidelityApprox))
	assert.Equal(t, "tens of thousands", FuzzValue(12345, FidelityVague))
	assert.Equal(t, "a few thousand", FuzzValue(2340, FidelityVague))
	assert.Equal(t, "a few hundred", FuzzValue(420, FidelityVague))
	assert.Equal(t, "a handful", FuzzValue(3, FidelityVague))
	assert.Equal(t, "nothing to speak of", FuzzValue(-10, FidelityVague))
}
