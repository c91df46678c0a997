// The input package turns SDL events into changes of the renderer.RenderState.
//
// Arrow keys rotate the cube in fixed steps per key press (held keys don't repeat),
// and the mouse position inside the window moves the light on the X/Y plane.
package input

import (
	"github.com/bloeys/bumpcube/renderer"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	// RotationStepDeg is the rotation applied per arrow key press
	RotationStepDeg float32 = 5

	// LightRange is the span the light moves over across the window, centered on the origin
	LightRange float32 = 10
)

type Controller struct {
	State *renderer.RenderState

	WinWidth  int32
	WinHeight int32

	isQuitRequested bool
}

// HandleEvent dispatches an SDL event to the matching handler. Unrelated events are ignored
func (c *Controller) HandleEvent(event sdl.Event) {

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		c.HandleKeyboardEvent(e)
	case *sdl.MouseMotionEvent:
		c.HandleMouseMotionEvent(e)
	case *sdl.QuitEvent:
		c.HandleQuitEvent(e)
	}
}

func (c *Controller) HandleKeyboardEvent(e *sdl.KeyboardEvent) {

	if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
		return
	}

	switch e.Keysym.Sym {
	case sdl.K_LEFT:
		c.State.RotationY -= RotationStepDeg
	case sdl.K_RIGHT:
		c.State.RotationY += RotationStepDeg
	case sdl.K_UP:
		c.State.RotationX -= RotationStepDeg
	case sdl.K_DOWN:
		c.State.RotationX += RotationStepDeg
	case sdl.K_ESCAPE:
		c.isQuitRequested = true
	}
}

// HandleMouseMotionEvent maps the pointer position to the light's X and Y. Screen Y grows downwards so it is inverted.
// The light's Z is never changed here.
func (c *Controller) HandleMouseMotionEvent(e *sdl.MouseMotionEvent) {
	c.State.LightPos.Data[0], c.State.LightPos.Data[1] = c.LightXY(e.X, e.Y)
}

// LightXY returns the light X/Y for a pointer at (x, y) in window coordinates
func (c *Controller) LightXY(x, y int32) (lightX, lightY float32) {

	if c.WinWidth <= 0 || c.WinHeight <= 0 {
		return c.State.LightPos.Data[0], c.State.LightPos.Data[1]
	}

	w := float32(c.WinWidth)
	h := float32(c.WinHeight)

	lightX = float32(x)/w*LightRange - LightRange/2
	lightY = (h-float32(y))/h*LightRange - LightRange/2
	return lightX, lightY
}

func (c *Controller) HandleQuitEvent(e *sdl.QuitEvent) {
	c.isQuitRequested = true
}

func (c *Controller) IsQuitRequested() bool {
	return c.isQuitRequested
}

func NewController(state *renderer.RenderState, winWidth, winHeight int32) *Controller {
	return &Controller{
		State:     state,
		WinWidth:  winWidth,
		WinHeight: winHeight,
	}
}
