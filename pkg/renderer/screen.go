package renderer

import (
	"errors"
	"fmt"

	"github.com/meshtrace/meshtrace/pkg/core"
)

// ErrDegenerateScreen reports camera/screen geometry that cannot form
// a screen basis. It is fatal and raised before any rendering starts.
var ErrDegenerateScreen = errors.New("degenerate camera/screen configuration")

// ScreenBasis maps pixel coordinates onto the virtual screen plane in
// scene space: pixel (x, y) samples Origin + x*HStep + y*VStep.
// Origin is the lower-left screen corner; geometric y increases
// upward, so the frame assembler emits rows in descending y order.
type ScreenBasis struct {
	Origin core.Vec3
	HStep  core.Vec3
	VStep  core.Vec3
}

// NewScreenBasis derives the screen basis from the camera position,
// the screen origin (center) point, the up vector, and the raster
// resolution. The up vector's length sets half the screen height; the
// width follows from the aspect ratio.
func NewScreenBasis(camera, screenOrigin, up core.Vec3, width, height int) (ScreenBasis, error) {
	view := screenOrigin.Subtract(camera)
	if view.IsZero() {
		return ScreenBasis{}, fmt.Errorf("%w: camera position coincides with screen origin", ErrDegenerateScreen)
	}

	h0 := view.Cross(up)
	if h0.IsZero() {
		return ScreenBasis{}, fmt.Errorf("%w: up vector is zero or parallel to the view direction", ErrDegenerateScreen)
	}
	v0 := h0.Cross(view)

	halfHeight := up.Length()
	aspect := float64(width) / float64(height)
	v0 = v0.Normalize().Multiply(halfHeight)
	h0 = h0.Normalize().Multiply(halfHeight * aspect)

	corner := screenOrigin.Subtract(h0).Subtract(v0)
	return ScreenBasis{
		Origin: corner,
		HStep:  h0.Multiply(2.0 / float64(width)),
		VStep:  v0.Multiply(2.0 / float64(height)),
	}, nil
}

// PixelPoint returns the scene-space position sampled by pixel (x, y)
func (sb ScreenBasis) PixelPoint(x, y int) core.Vec3 {
	return sb.Origin.
		Add(sb.HStep.Multiply(float64(x))).
		Add(sb.VStep.Multiply(float64(y)))
}
