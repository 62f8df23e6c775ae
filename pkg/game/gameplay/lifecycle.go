package gameplay

import (
	"bspdungeon/pkg/game/renderer"
	"bspdungeon/pkg/game/state"
)

// StartLayout generates from the configured seed, replacing any layout
func StartLayout(s *state.Session) error {
	layout, err := s.Generator.Generate()
	if err != nil {
		return err
	}
	s.Layout = layout
	s.ClearMessages()
	return nil
}

// ResetLayout throws the current layout away and builds the next one
func ResetLayout(s *state.Session) error {
	layout, err := s.Generator.Reset()
	if err != nil {
		return err
	}
	s.Layout = layout
	s.ClearMessages()
	return nil
}

// Run renders and processes input until the session quits. The first
// layout is generated if the session has none.
func Run(s *state.Session, r renderer.Renderer) error {
	if s.Layout == nil {
		if err := StartLayout(s); err != nil {
			return err
		}
	}

	for !s.Quit {
		r.Clear()
		r.RenderFrame(s.View())

		if err := ProcessIntent(s, r.GetInput()); err != nil {
			return err
		}
	}
	return nil
}
