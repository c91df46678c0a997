package engine

import (
	"github.com/veandco/go-sdl2/sdl"
)

// FrameDelayMs is slept at the end of every loop iteration. There is no delta-time
const FrameDelayMs uint32 = 10

type Game interface {
	Init()

	Update()
	Render()

	// IsQuitRequested is checked once per iteration after Update
	IsQuitRequested() bool

	DeInit()
}

// Run calls game.Init, then loops polling events, updating, rendering and swapping
// until the game requests a quit. game.DeInit runs before Run returns
func Run(g Game, w *Window) {

	g.Init()

	for {

		w.handleInputs()

		g.Update()
		if g.IsQuitRequested() {
			break
		}

		g.Render()
		w.SDLWin.GLSwap()

		sdl.Delay(FrameDelayMs)
	}

	g.DeInit()
}
