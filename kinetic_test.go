package kinetic

import "testing"

func TestRectIntersects(t *testing.T) {
	view := Rect{X: 100, Y: 100, Width: 1080, Height: 520}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 200, Y: 200, Width: 10, Height: 10}, true},
		{"overlapping bottom", Rect{Y: 570, Width: 1280, Height: 720}, true},
		{"touching edge", Rect{Y: 620, Width: 1280, Height: 720}, true},
		{"below", Rect{Y: 680, Width: 1280, Height: 720}, false},
		{"above", Rect{Y: -800, Width: 1280, Height: 720}, false},
		{"left", Rect{X: 0, Y: 200, Width: 50, Height: 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := view.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %t, want %t", got, tt.want)
			}
			if got := tt.other.Intersects(view); got != tt.want {
				t.Errorf("reverse Intersects = %t, want %t", got, tt.want)
			}
		})
	}
}
