// tgl_renderer.go - Renderer state, lifecycle and configuration
//
// License: GPLv3 or later

/*
tgl_renderer.go defines the Renderer, the single long-lived object the
rest of the package operates on. It owns the depth buffer, the
configuration set by the Set* methods below, and nothing else - it does
not own the color, texture or font bytes handed to it, and it has no
internal framebuffer. Every draw eventually bottoms out in a call to the
PixelSink supplied at construction.
*/

package tgl

import "math"

// PixelSink is the one externally-implemented interface: it receives one
// emitted pixel at a time. The renderer guarantees x < width, y < height,
// and len(color) == channels for the duration of the call; the sink must
// not retain the color slice past the call, since it aliases caller-owned
// color, image or texture bytes that the renderer never copies.
type PixelSink func(x, y int, color Color)

// Renderer is the sole entity in this package. A Renderer is owned by one
// caller at a time, is not safe for concurrent use, and has no reset: a
// second canvas needs a second Renderer.
type Renderer struct {
	width, height int
	xo, yo        int
	wen, hen      int
	channels      int

	sink         PixelSink
	currentColor Color

	depthBuffer  []float32
	depthEnable  bool
	depthActive  bool
	currentDepth float32

	textureBytes   []byte
	tw, th         int // stored as width-1, height-1
	textureEnable  bool
	uvTriangle     Triangle2f
	textureMatrix  Mat3x3f

	rxc, rxs float32
	ryc, rys float32
	rzc, rzs float32

	cam               Vec3f
	dist, scl         float32
	fov               float32
	near, far         float32
}

// NewRenderer constructs a Renderer for a width x height canvas. channels
// is the number of bytes per color tuple; pass 0 to default to 3 (RGB).
// Construction allocates the depth buffer and seeds every piece of state
// to the defaults in spec §3: rotation zero, camera at the origin,
// distance 10, fov equivalent to 80 degrees, clip [1, 255], scale 1,
// color black.
func NewRenderer(width, height int, sink PixelSink, channels int) *Renderer {
	if channels == 0 {
		channels = 3
	}

	r := &Renderer{
		width:    width,
		height:   height,
		xo:       width / 2,
		yo:       height / 2,
		wen:      width - 1,
		hen:      height - 1,
		channels: channels,
		sink:     sink,

		depthBuffer: make([]float32, width*height),
		depthEnable: true,
	}

	r.currentColor = make(Color, channels)

	r.SetRotation(Vec3f{})
	r.SetCamera(Vec3f{})
	r.SetDistance(10)
	r.SetFOV(degToRad(80))
	r.SetClip(1, 255)
	r.SetScale(1)
	r.SetTextureSrc(nil, 0, 0)
	r.SetTexture(false)
	r.ClearDepth()

	return r
}

// Close releases the depth buffer. Not required for correctness (the Go
// runtime will collect it), but mirrors the source's explicit
// destructor-frees-depth-buffer lifecycle.
func (r *Renderer) Close() {
	r.depthBuffer = nil
}

// Width returns the canvas width set at construction.
func (r *Renderer) Width() int { return r.width }

// Height returns the canvas height set at construction.
func (r *Renderer) Height() int { return r.height }

// Channels returns the number of bytes per color tuple.
func (r *Renderer) Channels() int { return r.channels }

// SetColor stores the pointer to a caller-owned color tuple. The bytes
// are not copied; the caller must keep them alive for every draw that
// uses them.
func (r *Renderer) SetColor(c Color) {
	r.currentColor = c
}

// SetDepth toggles the depth test. When disabled, 3D draws still compute
// a pseudo-depth but never activate depthActive, so DrawPixel never
// consults or updates the buffer.
func (r *Renderer) SetDepth(enable bool) {
	r.depthEnable = enable
}

// ClearDepth refills the depth buffer with +Inf, meaning "empty".
func (r *Renderer) ClearDepth() {
	for i := range r.depthBuffer {
		r.depthBuffer[i] = float32(math.Inf(1))
	}
}

// SetTexture enables or disables texture sampling in the triangle
// rasterizer. It is only ever observably true when a texture source has
// been set; textureBytes == nil forces it back to false regardless of
// the argument.
func (r *Renderer) SetTexture(enable bool) {
	if r.textureBytes == nil {
		r.textureEnable = false
		return
	}
	r.textureEnable = enable
}

// SetTextureSrc stores the caller-owned texture buffer (row-major,
// width*height*channels bytes) and records width-1, height-1 as the
// clamping maxima used when sampling. It does not change whether
// texturing is enabled - call SetTexture again after this if needed.
func (r *Renderer) SetTextureSrc(buffer []byte, width, height int) {
	r.textureBytes = buffer
	if width > 0 {
		r.tw = width - 1
	} else {
		r.tw = 0
	}
	if height > 0 {
		r.th = height - 1
	} else {
		r.th = 0
	}
}

// SetTextureUV stores the UV triangle used to build the affine texture
// mapping matrix for the next textured draw.
func (r *Renderer) SetTextureUV(uv Triangle2f) {
	r.uvTriangle = uv
}

// SetRotation precomputes the six sin/cos values used by the projection
// pipeline's Z-then-Y-then-X rotation.
func (r *Renderer) SetRotation(rot Vec3f) {
	r.rxc, r.rxs = cosSin(rot.X)
	r.ryc, r.rys = cosSin(rot.Y)
	r.rzc, r.rzs = cosSin(rot.Z)
}

// SetCamera sets the world-space translation subtracted before scale in
// the projection pipeline.
func (r *Renderer) SetCamera(pos Vec3f) {
	r.cam = pos
}

// SetDistance sets the value added to z before the projection division.
func (r *Renderer) SetDistance(dist float32) {
	r.dist = dist
}

// SetScale sets the uniform world-space scale applied before rotation.
func (r *Renderer) SetScale(scale float32) {
	r.scl = scale
}

// SetFOV stores tan(fov/2) so the projection step avoids recomputing it
// per vertex. fov is in radians.
func (r *Renderer) SetFOV(fov float32) {
	r.fov = float32(math.Tan(float64(fov) / 2))
}

// SetClip sets the near/far pseudo-depth discard thresholds used by
// Draw3DTriangle.
func (r *Renderer) SetClip(near, far float32) {
	r.near = near
	r.far = far
}

func cosSin(rad float32) (cos, sin float32) {
	s, c := math.Sincos(float64(rad))
	return float32(c), float32(s)
}

func degToRad(deg float32) float32 {
	return deg * float32(math.Pi) / 180
}
