package pricing

import "testing"

func TestApplyMarkups(t *testing.T) {
	tests := []struct {
		name           string
		base, item, gl float64
		want           float64
	}{
		{name: "composes multiplicatively", base: 100, item: -50, gl: 100, want: 100},
		{name: "no markup", base: 80, want: 80},
		{name: "item only", base: 80, item: 25, want: 100},
		{name: "global only", base: 100, gl: 50, want: 150},
		{name: "both positive", base: 100, item: 10, gl: 10, want: 121},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nearlyEqual(t, "price", ApplyMarkups(tt.base, tt.item, tt.gl), tt.want)
		})
	}
}
