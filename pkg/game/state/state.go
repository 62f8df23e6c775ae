package state

import (
	"bspdungeon/pkg/game/generator"
	"bspdungeon/pkg/game/renderer"
)

const maxMessages = 5

// Session holds the viewer state around one generator
type Session struct {
	Generator *generator.BSPGenerator
	Layout    *generator.Layout

	ShowSplits bool

	// OutputDir receives map dumps and screenshots; empty means the
	// working directory
	OutputDir string

	Messages []string

	Quit bool
}

// NewSession creates a session for gen. No layout exists until the first
// Generate.
func NewSession(gen *generator.BSPGenerator) *Session {
	return &Session{
		Generator: gen,
		Messages:  make([]string, 0),
	}
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// LastMessage returns the newest message or ""
func (s *Session) LastMessage() string {
	if len(s.Messages) == 0 {
		return ""
	}
	return s.Messages[len(s.Messages)-1]
}

// View returns what the renderer should draw for the current state
func (s *Session) View() *renderer.View {
	return &renderer.View{
		Layout:     s.Layout,
		Config:     s.Generator.Config(),
		ShowSplits: s.ShowSplits,
		Message:    s.LastMessage(),
	}
}
