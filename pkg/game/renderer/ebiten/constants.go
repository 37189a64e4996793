package ebiten

import "image/color"

// Color palette for the preview - bright colours for visibility
var (
	colorBackground   = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorPlayer       = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWallBg       = color.RGBA{60, 60, 80, 255}    // Darker background for walls
	colorFloor        = color.RGBA{100, 100, 120, 255} // Medium gray
	colorStart        = color.RGBA{70, 90, 110, 255}   // Blue-gray start pad
	colorKeycard      = color.RGBA{100, 150, 255, 255} // Bright blue
	colorEnemyIdle    = color.RGBA{255, 165, 0, 255}   // Orange
	colorEnemyChase   = color.RGBA{255, 80, 80, 255}   // Bright red
	colorEnemyAttack  = color.RGBA{255, 255, 0, 255}   // Bright yellow flash
	colorExitLocked   = color.RGBA{255, 100, 100, 255} // Bright red
	colorExitUnlocked = color.RGBA{100, 255, 100, 255} // Bright green
	colorPanel        = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorFog          = color.RGBA{10, 10, 20, 170}    // Remembered but out of sight
	colorStamina      = color.RGBA{240, 200, 80, 255}  // Amber
	colorStaminaDrain = color.RGBA{255, 120, 40, 255}  // Burning orange
	colorTorch        = color.RGBA{255, 255, 200, 255} // Warm white
)

// Tile size constraints
const (
	defaultTileSize = 24
	minTileSize     = 8
	maxTileSize     = 64
	tileSizeStep    = 4
)

// hudHeight is the strip above the map used for status text.
const hudHeight = 64
