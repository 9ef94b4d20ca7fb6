package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/meshtrace/meshtrace/pkg/core"
)

// maxChannelValue is the target integer color depth of the raster
const maxChannelValue = 255

// Frame is the assembled raster: Width*Height colors in canonical
// order, top row first, left to right. Geometric y increases upward,
// so row r of the raster holds geometric row Height-1-r.
type Frame struct {
	Width    int
	Height   int
	MaxValue int
	pixels   []core.Vec3 // raster order
}

// assembleFrame merges the per-worker pixel buffers into a complete
// frame. The scheduler guarantees exactly-once pixel coverage, so a
// count mismatch means a worker died mid-batch; that aborts the
// render rather than emitting an image with undefined pixels.
func assembleFrame(width, height int, buffers [][]pixel) (*Frame, error) {
	f := &Frame{
		Width:    width,
		Height:   height,
		MaxValue: maxChannelValue,
		pixels:   make([]core.Vec3, width*height),
	}
	placed := 0
	for _, buffer := range buffers {
		for _, p := range buffer {
			f.pixels[(height-1-p.y)*width+p.x] = p.color
			placed++
		}
	}
	if placed != width*height {
		return nil, fmt.Errorf("frame assembly incomplete: %d of %d pixels rendered", placed, width*height)
	}
	return f, nil
}

// At returns the color at raster coordinates (x, row), row 0 at the top
func (f *Frame) At(x, row int) core.Vec3 {
	return f.pixels[row*f.Width+x]
}

// rgb8 scales a channel to the integer color depth, truncating
func (f *Frame) rgb8(c float64) uint8 {
	return uint8(c * float64(f.MaxValue))
}

// RGBA converts the frame to an image for the compressed codecs
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for row := 0; row < f.Height; row++ {
		for x := 0; x < f.Width; x++ {
			p := f.At(x, row)
			img.SetRGBA(x, row, color.RGBA{
				R: f.rgb8(p.X),
				G: f.rgb8(p.Y),
				B: f.rgb8(p.Z),
				A: 255,
			})
		}
	}
	return img
}

// WritePPM writes the frame as a plain-text PPM (P3) payload: the
// width/height/max-value header followed by flat RGB triples in
// raster order.
func (f *Frame) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", f.Width, f.Height, f.MaxValue); err != nil {
		return fmt.Errorf("failed to write PPM header: %v", err)
	}
	for row := 0; row < f.Height; row++ {
		for x := 0; x < f.Width; x++ {
			p := f.At(x, row)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", f.rgb8(p.X), f.rgb8(p.Y), f.rgb8(p.Z)); err != nil {
				return fmt.Errorf("failed to write PPM pixel: %v", err)
			}
		}
	}
	return bw.Flush()
}
