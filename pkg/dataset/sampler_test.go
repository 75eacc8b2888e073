package dataset

import (
	"math"
	"testing"
)

func TestSampler_Deterministic(t *testing.T) {
	t.Parallel()

	a := NewSampler(7)
	b := NewSampler(7)
	for i := 0; i < 1000; i++ {
		if x, y := a.Gauss(0, 1), b.Gauss(0, 1); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}

	c := NewSampler(8)
	same := true
	for i := 0; i < 10; i++ {
		if a.Uniform(0, 1) != c.Uniform(0, 1) {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical streams")
	}
}

func TestSampler_IntRange(t *testing.T) {
	t.Parallel()

	s := NewSampler(1)
	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		v := s.IntRange(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("IntRange(2, 5) = %d", v)
		}
		seen[v] = true
	}
	// both ends are inclusive
	for v := 2; v <= 5; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn", v)
		}
	}
}

func TestSampler_Chance(t *testing.T) {
	t.Parallel()

	s := NewSampler(3)
	hits := 0
	const n = 20000
	for i := 0; i < n; i++ {
		if s.Chance(0.25) {
			hits++
		}
	}
	if got := float64(hits) / n; math.Abs(got-0.25) > 0.02 {
		t.Errorf("Chance(0.25) rate = %.3f", got)
	}

	if s.Chance(0) {
		t.Error("Chance(0) returned true")
	}
}

func TestWeightedChoice(t *testing.T) {
	t.Parallel()

	s := NewSampler(11)
	counts := make(map[string]int)
	const n = 20000
	for i := 0; i < n; i++ {
		counts[WeightedChoice(s, severities, severityWeights)]++
	}

	for i, sev := range severities {
		got := float64(counts[sev]) / n
		if math.Abs(got-severityWeights[i]) > 0.02 {
			t.Errorf("%s rate = %.3f, want about %.2f", sev, got, severityWeights[i])
		}
	}

	if got := WeightedChoice(s, []string{"only"}, []float64{1}); got != "only" {
		t.Errorf("single choice = %q", got)
	}
}

func TestClampAndRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"clamp low", Clamp(-3, 0, 1), 0},
		{"clamp high", Clamp(3, 0, 1), 1},
		{"clamp inside", Clamp(0.5, 0, 1), 0.5},
		{"round 1", Round(14.26, 1), 14.3},
		{"round 2", Round(1099.994, 2), 1099.99},
		{"round 3", Round(0.81249, 3), 0.812},
	}

	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
