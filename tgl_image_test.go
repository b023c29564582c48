package tgl

import "testing"

func TestDrawImageBlitsRowMajor(t *testing.T) {
	sink, recorded := newTestSink()
	r := NewRenderer(10, 10, sink, 3)

	// 2x2 RGB image: top-left red, top-right green, bottom-left blue,
	// bottom-right white.
	buffer := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}

	r.DrawImage(1, 1, buffer, 2, 2, 1)

	colorAt := map[[2]int][]byte{}
	for _, p := range *recorded {
		colorAt[[2]int{p.x, p.y}] = p.color
	}

	if got := colorAt[[2]int{1, 1}]; got[0] != 255 || got[1] != 0 {
		t.Errorf("expected top-left red, got %v", got)
	}
	if got := colorAt[[2]int{2, 1}]; got[1] != 255 {
		t.Errorf("expected top-right green, got %v", got)
	}
	if got := colorAt[[2]int{1, 2}]; got[2] != 255 {
		t.Errorf("expected bottom-left blue, got %v", got)
	}
}

func TestDrawImageOffCanvasOriginNoOp(t *testing.T) {
	sink, recorded := newTestSink()
	r := NewRenderer(4, 4, sink, 3)

	buffer := []byte{1, 2, 3}
	r.DrawImage(10, 10, buffer, 1, 1, 1)

	if len(*recorded) != 0 {
		t.Errorf("expected an off-canvas origin to draw nothing, got %d pixels", len(*recorded))
	}
}

func TestDrawImageScale(t *testing.T) {
	sink, recorded := newTestSink()
	r := NewRenderer(20, 20, sink, 3)

	buffer := []byte{9, 9, 9}
	r.DrawImage(0, 0, buffer, 1, 1, 3)

	if len(*recorded) != 9 {
		t.Errorf("expected a 3x3 square for a single source pixel at scale 3, got %d pixels", len(*recorded))
	}
}

func TestDrawImageMutatesCurrentColor(t *testing.T) {
	sink, _ := newTestSink()
	r := NewRenderer(10, 10, sink, 3)

	p := Color{9, 9, 9}
	r.SetColor(p)

	buffer := []byte{1, 2, 3}
	r.DrawImage(0, 0, buffer, 1, 1, 1)

	if &r.currentColor[0] == &p[0] {
		t.Errorf("expected DrawImage to have replaced current color with a texel from its buffer")
	}
}
