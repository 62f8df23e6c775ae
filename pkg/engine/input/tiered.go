package input

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the viewer.
type Action int

const (
	ActionNone Action = iota

	ActionReset       // Regenerate the dungeon from the continuing stream
	ActionRestart     // Regenerate from the configured seed
	ActionToggleSplit // Show or hide partition lines
	ActionDump        // Write the current layout to a text file
	ActionScreenshot  // Save the current layout as an HTML page
	ActionQuit
)

// Intent is the high-level description of what the user wants to do.
type Intent struct {
	Action Action

	// Unbound holds the raw code when a key press matched no binding
	Unbound string
}

// RawInput is emitted directly from an input device.
// Code is a device-specific identifier (e.g. "r", "f5", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// bindings maps raw codes to actions. Multiple codes may share an Action.
var bindings = map[string]Action{
	"r":  ActionReset,
	"f5": ActionReset,

	"g": ActionRestart,

	"s":   ActionToggleSplit,
	"tab": ActionToggleSplit,

	"d": ActionDump,

	"p":          ActionScreenshot,
	"screenshot": ActionScreenshot,

	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent applies the current bindings to a raw input
func MapToIntent(ev RawInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone, Unbound: ev.Code}
}

// ActionName returns the translation key naming an action.
func ActionName(a Action) string {
	switch a {
	case ActionReset:
		return "ACTION_RESET"
	case ActionRestart:
		return "ACTION_RESTART"
	case ActionToggleSplit:
		return "ACTION_TOGGLE_SPLIT"
	case ActionDump:
		return "ACTION_DUMP"
	case ActionScreenshot:
		return "ACTION_SCREENSHOT"
	case ActionQuit:
		return "ACTION_QUIT"
	default:
		return "ACTION_NONE"
	}
}

// Actions lists every bindable action in display order
func Actions() []Action {
	return []Action{ActionReset, ActionRestart, ActionToggleSplit, ActionDump, ActionScreenshot, ActionQuit}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between frames
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. The quit bindings for escape and ctrl_c are reserved.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if c == "escape" || c == "ctrl_c" {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && code != "escape" && code != "ctrl_c" {
		bindings[code] = action
	}
}

// ApplyBinding parses an "action=key" pair, such as "reset=n" or
// "toggle_split=v", and makes key the only binding for that action.
func ApplyBinding(pair string) error {
	name, code, ok := strings.Cut(pair, "=")
	if !ok {
		return fmt.Errorf("binding %q is not in action=key form", pair)
	}
	action, ok := actionByName(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return fmt.Errorf("unknown action %q", name)
	}
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || code == "escape" || code == "ctrl_c" {
		return fmt.Errorf("key %q cannot be bound", code)
	}
	SetSingleBinding(action, code)
	return nil
}

// actionByName matches the lower-case suffix of an action's translation key
func actionByName(name string) (Action, bool) {
	for _, a := range Actions() {
		if strings.ToLower(strings.TrimPrefix(ActionName(a), "ACTION_")) == name {
			return a, true
		}
	}
	return ActionNone, false
}

// PrimaryBinding returns the shortest code bound to action, preferring the
// alphabetically first on ties, or "" when the action is unbound.
func PrimaryBinding(action Action) string {
	codes := GetBindingsByAction()[action]
	if len(codes) == 0 {
		return ""
	}
	code := codes[0]
	for _, c := range codes[1:] {
		if len(c) < len(code) {
			code = c
		}
	}
	return code
}
