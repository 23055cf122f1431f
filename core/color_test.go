package core

import "testing"

func TestRGBScale(t *testing.T) {
	c := RGB{200, 100, 50}

	if got := c.Scale(0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Expected {100 50 25}, got %v", got)
	}
	if got := c.Scale(0); got != RGBBlack {
		t.Errorf("Expected black at zero, got %v", got)
	}
	if got := c.Scale(2); got != c {
		t.Errorf("Expected unchanged above one, got %v", got)
	}
}

func TestRGBBlend(t *testing.T) {
	dst := RGBBlack
	src := RGB{200, 100, 0}

	if got := dst.Blend(src, 0.5); got != (RGB{100, 50, 0}) {
		t.Errorf("Expected {100 50 0}, got %v", got)
	}
	if got := dst.Blend(src, 0); got != dst {
		t.Errorf("Expected dst at alpha 0, got %v", got)
	}
	if got := dst.Blend(src, 1); got != src {
		t.Errorf("Expected src at alpha 1, got %v", got)
	}
}

func TestQuadrantColorsDistinct(t *testing.T) {
	seen := make(map[RGB]Target)
	for _, target := range AllTargets {
		c := QuadrantColors[target]
		if prev, dup := seen[c]; dup {
			t.Errorf("Expected distinct colors, %s and %s share %v", prev, target, c)
		}
		seen[c] = target
	}
}
