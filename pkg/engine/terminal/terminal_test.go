package terminal

import "testing"

func TestFitStep(t *testing.T) {
	tests := []struct {
		name                   string
		mapW, mapH, cols, rows int
		cellWidth              int
		want                   int
	}{
		{"fits", 64, 20, 80, 24, 1, 1},
		{"double width", 64, 20, 80, 24, 2, 2},
		{"tall map", 64, 64, 200, 24, 1, 3},
		{"zero width cell", 10, 10, 10, 10, 0, 1},
		{"nothing fits", 4, 4, 0, 0, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitStep(tt.mapW, tt.mapH, tt.cols, tt.rows, tt.cellWidth)
			if got != tt.want {
				t.Errorf("FitStep() = %d, want %d", got, tt.want)
			}
		})
	}
}
