package mapview

import (
	"testing"
)

func TestIntensityFor_Monotonic(t *testing.T) {
	counts := []int{0, 1, 3, 5, 10}

	prev := -1.0
	for _, n := range counts {
		in := IntensityFor(n)
		if in.Opacity < prev {
			t.Errorf("Opacity decreased at count %d: %f < %f", n, in.Opacity, prev)
		}
		prev = in.Opacity
	}
}

func TestIntensityFor_ClampsAtMax(t *testing.T) {
	at5 := IntensityFor(5)
	at10 := IntensityFor(10)

	if at5 != at10 {
		t.Errorf("Expected counts >= 5 to share the max intensity, got %+v vs %+v", at5, at10)
	}
	if at5.Hue != 0 {
		t.Errorf("Expected max intensity hue 0 (red), got %f", at5.Hue)
	}
}

func TestIntensityFor_ZeroIsTransparent(t *testing.T) {
	in := IntensityFor(0)

	if in.Opacity != 0 {
		t.Errorf("Expected zero bookings to be fully transparent, got opacity %f", in.Opacity)
	}
	if in.Hue != 140 {
		t.Errorf("Expected idle hue 140 (green), got %f", in.Hue)
	}
}

func TestColorForCount(t *testing.T) {
	if got := ColorForCount(0); got != "hsl(140 70% 45% / 0.00)" {
		t.Errorf("ColorForCount(0) = %q", got)
	}
	if got := ColorForCount(5); got != "hsl(0 70% 45% / 0.42)" {
		t.Errorf("ColorForCount(5) = %q", got)
	}
}
