// Package gameplay drives the viewer: it turns input intents into
// generator calls and debug output.
package gameplay

import (
	"fmt"
	"path/filepath"

	"github.com/leonelquinteros/gotext"

	engineinput "bspdungeon/pkg/engine/input"
	"bspdungeon/pkg/game/devtools"
	"bspdungeon/pkg/game/state"
)

// ProcessIntent handles a high-level input intent. Generation errors are
// returned; output failures are reported as messages.
func ProcessIntent(s *state.Session, intent engineinput.Intent) error {
	switch intent.Action {
	case engineinput.ActionNone:
		if intent.Unbound != "" {
			logMessage(s, "UNKNOWN_KEY", intent.Unbound)
		}
		return nil

	case engineinput.ActionQuit:
		s.Quit = true
		return nil

	case engineinput.ActionReset:
		return ResetLayout(s)

	case engineinput.ActionRestart:
		return StartLayout(s)

	case engineinput.ActionToggleSplit:
		s.ShowSplits = !s.ShowSplits
		return nil

	case engineinput.ActionDump:
		path, err := devtools.DumpLayout(s.Layout, s.Generator.Config(), filepath.Join(s.OutputDir, "map.txt"))
		if err != nil {
			logMessage(s, "DUMP_FAILED", err)
		} else {
			logMessage(s, "DUMP_WRITTEN", path)
		}
		return nil

	case engineinput.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(s.Layout, s.OutputDir)
		if err != nil {
			logMessage(s, "DUMP_FAILED", err)
		} else {
			logMessage(s, "SCREENSHOT_SAVED", path)
		}
		return nil
	}

	return fmt.Errorf("unhandled action %d", intent.Action)
}

// logMessage translates key, formats it with args and adds it to the log
func logMessage(s *state.Session, key string, args ...any) {
	s.AddMessage(gotext.Get(key, args...))
}
