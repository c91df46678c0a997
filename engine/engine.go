package engine

import (
	"runtime"

	"github.com/bloeys/bumpcube/assert"
	"github.com/bloeys/bumpcube/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	isInited = false
)

type Window struct {
	SDLWin         *sdl.Window
	GlCtx          sdl.GLContext
	EventCallbacks []func(sdl.Event)
}

func (w *Window) handleInputs() {

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		//Fire callbacks
		for i := 0; i < len(w.EventCallbacks); i++ {
			w.EventCallbacks[i](event)
		}

		//Internal processing
		switch e := event.(type) {
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.handleWindowResize()
			}
		}
	}
}

func (w *Window) handleWindowResize() {

	fbWidth, fbHeight := w.SDLWin.GLGetDrawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	gl.Viewport(0, 0, fbWidth, fbHeight)
}

// Destroy releases the GL context and the window, then shuts SDL down.
// GPU resources must be deleted before this is called
func (w *Window) Destroy() error {

	if w.GlCtx != nil {
		sdl.GLDeleteContext(w.GlCtx)
		w.GlCtx = nil
	}

	err := w.SDLWin.Destroy()
	sdl.Quit()
	return err
}

func Init() error {

	isInited = true

	runtime.LockOSThread()
	err := initSDL()

	return err
}

func initSDL() error {

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.ShowCursor(1)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	return nil
}

func CreateOpenGLWindowCentered(title string, width, height int32, flags WindowFlags, clearColor [4]float32) (*Window, error) {
	return createWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, WindowFlags_OPENGL|flags, clearColor)
}

func createWindow(title string, x, y, width, height int32, flags WindowFlags, clearColor [4]float32) (*Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	sdlWin, err := sdl.CreateWindow(title, x, y, width, height, uint32(flags))
	if err != nil {
		return nil, err
	}

	win := &Window{
		SDLWin:         sdlWin,
		EventCallbacks: make([]func(sdl.Event), 0),
	}

	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		sdlWin.Destroy()
		return nil, err
	}

	err = initOpenGL(clearColor)
	if err != nil {
		win.Destroy()
		return nil, err
	}

	logging.InfoLog.Printf("Created window '%s' (%dx%d) with OpenGL %s\n", title, width, height, gl.GoStr(gl.GetString(gl.VERSION)))

	// Get rid of the blinding white startup screen
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	sdlWin.GLSwap()

	return win, nil
}

func initOpenGL(clearColor [4]float32) error {

	if err := gl.Init(); err != nil {
		return err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])

	return nil
}

// SetVSync needs a current GL context, so call it after the window is created
func SetVSync(enabled bool) error {

	if enabled {
		return sdl.GLSetSwapInterval(1)
	}

	return sdl.GLSetSwapInterval(0)
}
