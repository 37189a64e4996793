// Package input maps device key codes to high-level actions.
package input

import "darkmaze/pkg/engine/world"

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast
	ActionSprint

	// Player
	ActionFlashlight

	// Meta / UI
	ActionQuit
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset
	ActionNextLevel
)

// bindings maps key codes to actions. Codes use the Ebiten key names
// ("W", "ArrowUp", "Equal"). Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (WASD, arrows, Vim)
	"W":          ActionMoveNorth,
	"ArrowUp":    ActionMoveNorth,
	"K":          ActionMoveNorth,
	"S":          ActionMoveSouth,
	"ArrowDown":  ActionMoveSouth,
	"J":          ActionMoveSouth,
	"A":          ActionMoveWest,
	"ArrowLeft":  ActionMoveWest,
	"H":          ActionMoveWest,
	"D":          ActionMoveEast,
	"ArrowRight": ActionMoveEast,
	"L":          ActionMoveEast,

	"ShiftLeft":  ActionSprint,
	"ShiftRight": ActionSprint,
	"F":          ActionFlashlight,

	"Escape":         ActionQuit,
	"Q":              ActionQuit,
	"Equal":          ActionZoomIn,
	"NumpadAdd":      ActionZoomIn,
	"Minus":          ActionZoomOut,
	"NumpadSubtract": ActionZoomOut,
	"Digit0":         ActionZoomReset,
	"Enter":          ActionNextLevel,
	"NumpadEnter":    ActionNextLevel,
}

// MapCode returns the action bound to code, or ActionNone.
func MapCode(code string) Action {
	return bindings[code]
}

// Direction returns the grid direction of a movement action.
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	case ActionMoveEast:
		return world.East, true
	default:
		return 0, false
	}
}

// Movement sums the movement actions bound to the held codes into a grid
// direction vector. Opposite keys cancel and duplicate bindings count once.
func Movement(held []string) (dx, dy float64) {
	seen := map[world.Direction]bool{}
	for _, code := range held {
		dir, ok := MapCode(code).Direction()
		if !ok || seen[dir] {
			continue
		}
		seen[dir] = true
		ddx, ddy := dir.Delta()
		dx += float64(ddx)
		dy += float64(ddy)
	}
	return dx, dy
}

// Held reports whether any of the held codes is bound to a.
func Held(held []string, a Action) bool {
	for _, code := range held {
		if MapCode(code) == a {
			return true
		}
	}
	return false
}
