package tgl

import "testing"

// S2 - clamped line.
func TestDrawLineClamped(t *testing.T) {
	sink, recorded := newTestSink()
	r := NewRenderer(10, 10, sink, 3)
	r.SetColor(Color{1, 2, 3})

	r.DrawLine(Vec2i{X: -5, Y: 5}, Vec2i{X: 20, Y: 5})

	if len(*recorded) == 0 {
		t.Fatalf("expected at least one emitted pixel")
	}

	seen := map[int]bool{}
	for _, p := range *recorded {
		if p.y != 5 {
			t.Errorf("expected every emitted y to be 5, got %d", p.y)
		}
		if p.x < 0 || p.x > 9 {
			t.Errorf("expected every emitted x in [0,9], got %d", p.x)
		}
		if seen[p.x] {
			t.Errorf("duplicate emission at x=%d", p.x)
		}
		seen[p.x] = true
	}
}

func TestDrawLineZeroLength(t *testing.T) {
	sink, recorded := newTestSink()
	r := NewRenderer(10, 10, sink, 3)
	r.SetColor(Color{1, 2, 3})

	r.DrawLine(Vec2i{X: 3, Y: 3}, Vec2i{X: 3, Y: 3})

	if len(*recorded) != 0 {
		t.Errorf("expected a zero-length line to draw nothing, got %d pixels", len(*recorded))
	}
}

func TestDrawPixelDepthOcclusion(t *testing.T) {
	sink, recorded := newTestSink()
	r := NewRenderer(4, 4, sink, 3)

	r.SetColor(Color{1, 0, 0})
	r.beginDepth(10)
	r.DrawPixel(1, 1)
	r.endDepth()

	r.SetColor(Color{0, 1, 0})
	r.beginDepth(20)
	r.DrawPixel(1, 1)
	r.endDepth()

	if len(*recorded) != 1 {
		t.Fatalf("expected exactly one emission for a farther depth at the same pixel, got %d", len(*recorded))
	}
	if (*recorded)[0].color[0] != 1 {
		t.Errorf("expected the nearer depth's color to win")
	}
}

func TestDrawPixelNoDepthWhenInactive(t *testing.T) {
	sink, recorded := newTestSink()
	r := NewRenderer(4, 4, sink, 3)
	r.SetColor(Color{9, 9, 9})

	r.DrawPixel(0, 0)
	r.DrawPixel(0, 0)

	if len(*recorded) != 2 {
		t.Errorf("expected both emissions outside a 3D draw, got %d", len(*recorded))
	}
}
