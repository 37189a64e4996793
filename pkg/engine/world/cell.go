// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Tag classifies a single grid cell.
type Tag uint8

const (
	Wall Tag = iota
	Floor
	PlayerStart
	EnemySpawn
	Key
	Exit
)

// AllTags returns every tag in declaration order.
func AllTags() []Tag {
	return []Tag{Wall, Floor, PlayerStart, EnemySpawn, Key, Exit}
}

// String returns the name of the tag.
func (t Tag) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case PlayerStart:
		return "PlayerStart"
	case EnemySpawn:
		return "EnemySpawn"
	case Key:
		return "Key"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Rune returns the single-character debug symbol for the tag.
func (t Tag) Rune() rune {
	switch t {
	case Wall:
		return '#'
	case Floor:
		return ' '
	case PlayerStart:
		return 'P'
	case EnemySpawn:
		return 'E'
	case Key:
		return 'K'
	case Exit:
		return 'X'
	default:
		return '?'
	}
}

// IsWalkable returns true for every tag except Wall.
func (t Tag) IsWalkable() bool {
	return t != Wall
}

// IsSpecial returns true for tags placed on top of carved floor.
func (t Tag) IsSpecial() bool {
	return t == PlayerStart || t == EnemySpawn || t == Key || t == Exit
}
