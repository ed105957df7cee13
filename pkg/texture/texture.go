// Package texture holds the raw RGBA pixel buffers the raycaster reads
// from (wall/floor/ceiling/billboard textures) and writes to (the
// destination frame buffer). Both share the same 8-bit-per-channel,
// row-major, 4-bytes-per-pixel layout with no row padding.
package texture

// Texture is a width x height RGBA pixel buffer, 4 bytes per pixel,
// row-major with no padding. Data may be nil in environments without raw
// pixel access; a Raycaster must not be constructed against a FrameBuffer
// whose Data is nil.
type Texture struct {
	Width, Height int
	Data          []byte
}

// FrameBuffer is the renderer's mutable destination. It has the exact same
// shape as Texture; the alias keeps the two names distinct in signatures
// while sharing one implementation.
type FrameBuffer = Texture

// New allocates a zeroed (fully transparent black) buffer of the given
// size.
func New(width, height int) *Texture {
	return &Texture{Width: width, Height: height, Data: make([]byte, 4*width*height)}
}

func (t *Texture) offset(x, y int) int {
	return 4 * (t.Width*y + x)
}

// At returns the RGBA bytes at (x, y).
func (t *Texture) At(x, y int) (r, g, b, a uint8) {
	o := t.offset(x, y)
	return t.Data[o], t.Data[o+1], t.Data[o+2], t.Data[o+3]
}

// Set writes the RGBA bytes at (x, y).
func (t *Texture) Set(x, y int, r, g, b, a uint8) {
	o := t.offset(x, y)
	t.Data[o] = r
	t.Data[o+1] = g
	t.Data[o+2] = b
	t.Data[o+3] = a
}

// ClearColor zeroes every pixel (fully transparent black).
func (t *Texture) ClearColor() {
	for i := range t.Data {
		t.Data[i] = 0
	}
}
