package emojiscape

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyA int = iota
	KeyB
	KeyG
	KeyN
	KeyR
	KeyS
	KeyT
	Key1
	Key2
	Key3
	Key4
	KeyUp
	KeyDown
	KeyEscape
	keyCount
)

type InputModule struct{}

// Input is the polled keyboard state for the current frame. JustPressed is
// true only on the frame a key went down, which is what every toggle binding
// keys off of.
type Input struct {
	Pressed     [keyCount]bool
	JustPressed [keyCount]bool

	WindowWidth, WindowHeight int
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
}

func inputSystem(s *WindowState, input *Input, cmd *Commands) {
	glfw.PollEvents()

	if s.windowGlfw.ShouldClose() {
		cmd.Quit()
	}

	for key, glfwKey := range keyToGlfw {
		action := s.windowGlfw.GetKey(glfwKey)

		input.JustPressed[key] = false

		if glfw.Press == action {
			if !input.Pressed[key] {
				input.JustPressed[key] = true
			}
			input.Pressed[key] = true
		} else if glfw.Release == action {
			input.Pressed[key] = false
		}
	}

	input.WindowWidth, input.WindowHeight = s.windowGlfw.GetSize()
}

var keyToGlfw = map[int]glfw.Key{
	KeyA:      glfw.KeyA,
	KeyB:      glfw.KeyB,
	KeyG:      glfw.KeyG,
	KeyN:      glfw.KeyN,
	KeyR:      glfw.KeyR,
	KeyS:      glfw.KeyS,
	KeyT:      glfw.KeyT,
	Key1:      glfw.Key1,
	Key2:      glfw.Key2,
	Key3:      glfw.Key3,
	Key4:      glfw.Key4,
	KeyUp:     glfw.KeyUp,
	KeyDown:   glfw.KeyDown,
	KeyEscape: glfw.KeyEscape,
}
