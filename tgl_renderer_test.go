package tgl

import "testing"

type recordedPixel struct {
	x, y  int
	color Color
}

func newTestSink() (PixelSink, *[]recordedPixel) {
	var recorded []recordedPixel
	sink := func(x, y int, color Color) {
		c := append(Color(nil), color...)
		recorded = append(recorded, recordedPixel{x: x, y: y, color: c})
	}
	return sink, &recorded
}

// S1 - single pixel.
func TestDrawPixelSingle(t *testing.T) {
	sink, recorded := newTestSink()
	r := NewRenderer(10, 10, sink, 3)

	color := Color{255, 0, 0}
	r.SetColor(color)
	r.DrawPixel(3, 4)

	if len(*recorded) != 1 {
		t.Fatalf("expected exactly one emission, got %d", len(*recorded))
	}
	got := (*recorded)[0]
	if got.x != 3 || got.y != 4 {
		t.Errorf("expected (3,4), got (%d,%d)", got.x, got.y)
	}
	if got.color[0] != 255 || got.color[1] != 0 || got.color[2] != 0 {
		t.Errorf("expected color [255 0 0], got %v", got.color)
	}
}

func TestNewRendererDefaults(t *testing.T) {
	sink, _ := newTestSink()
	r := NewRenderer(100, 80, sink, 0)

	if r.Channels() != 3 {
		t.Errorf("expected default channels 3, got %d", r.Channels())
	}
	if r.xo != 50 || r.yo != 40 {
		t.Errorf("expected screen center (50,40), got (%d,%d)", r.xo, r.yo)
	}
	if r.wen != 99 || r.hen != 79 {
		t.Errorf("expected inclusive maxima (99,79), got (%d,%d)", r.wen, r.hen)
	}
	if !r.depthEnable {
		t.Errorf("expected depth enabled by default")
	}
	for i, d := range r.depthBuffer {
		if d <= 1e30 {
			t.Fatalf("expected depth buffer entry %d to be +Inf after construction, got %v", i, d)
			break
		}
	}
}

// Color pointer transparency: currentColor equals the slice passed to
// SetColor after ordinary draws (DrawImage and textured triangles are the
// documented exceptions).
func TestSetColorTransparency(t *testing.T) {
	sink, _ := newTestSink()
	r := NewRenderer(10, 10, sink, 3)

	p := Color{10, 20, 30}
	r.SetColor(p)
	r.DrawPixel(1, 1)
	r.DrawLine(Vec2i{X: 0, Y: 0}, Vec2i{X: 5, Y: 5})

	if &r.currentColor[0] != &p[0] {
		t.Errorf("expected current color to remain the caller's slice")
	}
}

func TestSetTextureRequiresSource(t *testing.T) {
	sink, _ := newTestSink()
	r := NewRenderer(10, 10, sink, 3)

	r.SetTexture(true)
	if r.textureEnable {
		t.Errorf("expected SetTexture(true) to stay false with no texture source")
	}

	r.SetTextureSrc(make([]byte, 4*4*3), 4, 4)
	r.SetTexture(true)
	if !r.textureEnable {
		t.Errorf("expected SetTexture(true) to take effect once a source is set")
	}
}

func TestClearDepthRefillsInfinity(t *testing.T) {
	sink, _ := newTestSink()
	r := NewRenderer(4, 4, sink, 3)

	for i := range r.depthBuffer {
		r.depthBuffer[i] = 0
	}
	r.ClearDepth()

	for i, d := range r.depthBuffer {
		if d <= 1e30 {
			t.Fatalf("expected depth_buffer[%d] to be +Inf after ClearDepth, got %v", i, d)
		}
	}
}
