package renderer

import (
	"bspdungeon/pkg/engine/input"
	"bspdungeon/pkg/game/generator"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleOpen
	StyleSoft
	StyleSolid
	StyleLedge
	StyleSplit
	StyleHeading
	StyleAction
	StyleActionShort
	StyleSubtle
	StyleDenied
)

// View is everything a renderer needs to draw one frame
type View struct {
	Layout *generator.Layout
	Config generator.Config

	// ShowSplits draws the partition lines over the map
	ShowSplits bool
	// Message is a one-line status shown under the map
	Message string
}

// Renderer defines the interface for dungeon viewing backends
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame draws the map, legend, stats and prompt
	RenderFrame(v *View)

	// GetInput blocks for TUI and polls for GUI
	GetInput() input.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}
