package ebiten

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "bspdungeon/pkg/engine/input"
)

// keyCode converts an Ebiten key into the code used by the input bindings.
// Letters and digits map to themselves so rebound keys work here too.
func keyCode(k ebiten.Key) string {
	switch k {
	case ebiten.KeyF5:
		return "f5"
	case ebiten.KeyTab:
		return "tab"
	case ebiten.KeyEscape:
		return "escape"
	}
	name := k.String()
	if d, ok := strings.CutPrefix(name, "Digit"); ok {
		return d
	}
	if len(name) == 1 {
		return strings.ToLower(name)
	}
	return ""
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Viewer window opened (%dx%d)", w, h)
	}

	if e.isQuitting() {
		return ebiten.Termination
	}

	if ebiten.IsWindowBeingClosed() {
		e.send(engineinput.Intent{Action: engineinput.ActionQuit})
		return ebiten.Termination
	}

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		e.send(intent)
	}
	return nil
}

// send delivers an intent without blocking the game loop
func (e *EbitenRenderer) send(intent engineinput.Intent) {
	select {
	case e.inputChan <- intent:
	default:
		// Channel full, drop input
	}
}

// checkInput returns the intent for the first bound key pressed this frame
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	e.pressed = inpututil.AppendJustPressedKeys(e.pressed[:0])
	for _, k := range e.pressed {
		code := keyCode(k)
		if code == "" {
			continue
		}
		intent := engineinput.MapToIntent(engineinput.RawInput{
			Device: engineinput.DeviceKeyboard,
			Code:   code,
		})
		if intent.Action != engineinput.ActionNone {
			return intent
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
