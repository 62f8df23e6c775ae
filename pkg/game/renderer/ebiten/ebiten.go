// Package ebiten provides an Ebiten-based windowed viewer for generated
// dungeons, with the partition lines drawn over the map.
package ebiten

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	engineinput "bspdungeon/pkg/engine/input"
	"bspdungeon/pkg/game/renderer"
)

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// dynamicGet is used for runtime translation key lookups
var dynamicGet = gotext.Get

// EbitenRenderer is the Ebiten-based graphical renderer. Ebiten owns the
// main goroutine; the viewer loop talks to it through RenderFrame and
// GetInput from another goroutine.
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int

	view      *renderer.View
	viewMutex sync.RWMutex

	message      string
	messageMutex sync.RWMutex

	// Intents produced by Update, consumed by GetInput
	inputChan chan engineinput.Intent

	windowOpenedLogged bool
	pressed            []ebiten.Key
	quitting           bool
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		inputChan:    make(chan engineinput.Intent, 8),
	}
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(dynamicGet("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
}

// Clear is a no-op; every Draw repaints the whole screen
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until the window produces an intent
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	return <-e.inputChan
}

// StyleText returns text unchanged; colours are applied when drawing
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message, translating the format string first
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return fmt.Sprintf(dynamicGet(msg), args...)
}

// ShowMessage shows msg in the status area until the next message
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.messageMutex.Lock()
	e.message = msg
	e.messageMutex.Unlock()
}

// RenderFrame stores the view; it is drawn on the next Draw call
func (e *EbitenRenderer) RenderFrame(v *renderer.View) {
	if v == nil {
		return
	}
	snapshot := *v
	e.viewMutex.Lock()
	e.view = &snapshot
	e.viewMutex.Unlock()

	if v.Message != "" {
		e.ShowMessage(v.Message)
	}
}

// currentView returns the most recently rendered view
func (e *EbitenRenderer) currentView() *renderer.View {
	e.viewMutex.RLock()
	defer e.viewMutex.RUnlock()
	return e.view
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *EbitenRenderer) Run() error {
	return ebiten.RunGame(e)
}

// Quit makes the next Update end the game loop
func (e *EbitenRenderer) Quit() {
	e.viewMutex.Lock()
	e.quitting = true
	e.viewMutex.Unlock()
}

func (e *EbitenRenderer) isQuitting() bool {
	e.viewMutex.RLock()
	defer e.viewMutex.RUnlock()
	return e.quitting
}
