package keybind

import (
	"errors"
	"fmt"
)

// Action is the closed set of terminal commands a key can be bound to.
type Action int

const (
	ActionHold Action = iota
	ActionRecall
	ActionCashierMenu
	ActionClear
	ActionEditLine
	ActionDeleteLine
	ActionPay
	ActionLock
)

var AllActions = []Action{
	ActionHold,
	ActionRecall,
	ActionCashierMenu,
	ActionClear,
	ActionEditLine,
	ActionDeleteLine,
	ActionPay,
	ActionLock,
}

var actionNames = map[Action]string{
	ActionHold:        "hold",
	ActionRecall:      "recall",
	ActionCashierMenu: "cashier_menu",
	ActionClear:       "clear",
	ActionEditLine:    "edit_line",
	ActionDeleteLine:  "delete_line",
	ActionPay:         "pay",
	ActionLock:        "lock",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownAction, s)
}

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnboundAction = errors.New("action has no key bound")
	ErrDuplicateKey  = errors.New("key bound to more than one action")
)

// Bindings is the user-configurable key → action table.
type Bindings map[Action]string

// Default mirrors the factory layout silk-screened on the terminal keyboard.
func Default() Bindings {
	return Bindings{
		ActionHold:        "F1",
		ActionRecall:      "F2",
		ActionCashierMenu: "F3",
		ActionClear:       "F4",
		ActionEditLine:    "F5",
		ActionDeleteLine:  "Delete",
		ActionPay:         "F12",
		ActionLock:        "F10",
	}
}

// ActionFor resolves a pressed key. The second return is false for keys that
// are not bound to anything.
func (b Bindings) ActionFor(key string) (Action, bool) {
	for action, bound := range b {
		if bound == key {
			return action, true
		}
	}
	return 0, false
}

// Validate checks that every action is bound and no key serves two actions.
func (b Bindings) Validate() error {
	seen := make(map[string]Action, len(b))
	for _, action := range AllActions {
		key, ok := b[action]
		if !ok || key == "" {
			return fmt.Errorf("%w: %s", ErrUnboundAction, action)
		}
		if other, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q bound to %s and %s", ErrDuplicateKey, key, other, action)
		}
		seen[key] = action
	}
	return nil
}

// Clone copies the table, for staging edits in the settings dialog.
func (b Bindings) Clone() Bindings {
	out := make(Bindings, len(b))
	for action, key := range b {
		out[action] = key
	}
	return out
}
