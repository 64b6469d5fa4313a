package pricing

import "testing"

func TestRoundToStep(t *testing.T) {
	tests := []struct {
		value, step, want float64
	}{
		{value: 152.4, step: 5, want: 150},
		{value: 152.5, step: 5, want: 155},
		{value: 99.99999999, step: 1, want: 100},
		{value: 149.5, step: 1, want: 150},
		{value: 12.34, step: 0.5, want: 12.5},
		{value: 12.34, step: 0, want: 12.34},
		{value: 12.34, step: -1, want: 12.34},
	}

	for _, tt := range tests {
		nearlyEqual(t, "rounded", RoundToStep(tt.value, tt.step), tt.want)
	}
}

func TestRoundToStep_Idempotent(t *testing.T) {
	for _, step := range []float64{1, 5, 10, 0.5} {
		for _, v := range []float64{0, 3.3, 47.2, 152.5, 1999.99} {
			once := RoundToStep(v, step)
			twice := RoundToStep(once, step)
			if once != twice {
				t.Fatalf("step %v: RoundToStep(%v) = %v, again = %v", step, v, once, twice)
			}
		}
	}
}
