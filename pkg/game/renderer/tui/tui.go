// Package tui renders levels to a colour terminal.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"darkmaze/pkg/engine/terminal"
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/renderer"
)

// Icon constants for map cells
const (
	IconWall   = "▒"
	IconFloor  = " "
	IconPlayer = "@"
	IconEnemy  = "☠"
	IconKey    = "⚷"
	IconExit   = "△"
)

// statusLines is the space kept free under the map for the legend and
// warnings.
const statusLines = 9

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out   *os.File
	plain bool

	colorWall   color.Style
	colorFloor  color.Style
	colorPlayer color.Style
	colorEnemy  color.Style
	colorKey    color.Style
	colorExit   color.Style
	colorTitle  color.Style
	colorSubtle color.Style
	colorDenied color.Style
}

// New creates a new TUI renderer writing to out. Colour is dropped when out
// is not a terminal.
func New(out *os.File) *TUIRenderer {
	t := &TUIRenderer{out: out, plain: !terminal.IsTerminal(out)}
	t.Init()
	return t
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgDefault}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorEnemy = color.Style{color.FgRed, color.OpBold}
	t.colorKey = color.Style{color.FgBlue, color.OpBold}
	t.colorExit = color.Style{color.FgGreen}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
}

// Name implements renderer.Renderer.
func (t *TUIRenderer) Name() string {
	return "tui"
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.plain {
		return text
	}
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	case renderer.StyleKey:
		return t.colorKey.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// Render implements renderer.Renderer.
func (t *TUIRenderer) Render(f renderer.Frame) error {
	if err := f.Check(); err != nil {
		return err
	}
	grid := f.Gen.Grid()
	// Two columns per cell keeps corridors square when the terminal is wide
	// enough.
	cellWidth := 2
	if !terminal.Fits(t.out, grid.Width(), grid.Height(), cellWidth, statusLines) {
		cellWidth = 1
	}
	return t.render(t.out, f, grid, cellWidth)
}

func (t *TUIRenderer) render(out io.Writer, f renderer.Frame, grid *world.Grid, cellWidth int) error {
	w := bufio.NewWriter(out)

	header := renderer.Header(f)
	fmt.Fprintln(w, t.StyleText(header[0], renderer.StyleTitle))
	for _, line := range header[1:] {
		fmt.Fprintln(w, t.StyleText(line, renderer.StyleSubtle))
	}
	fmt.Fprintln(w)

	for y := 0; y < grid.Height(); y++ {
		var row strings.Builder
		for x := 0; x < grid.Width(); x++ {
			row.WriteString(t.renderCell(grid.At(world.Coord{X: x, Y: y}), cellWidth))
		}
		fmt.Fprintln(w, row.String())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, t.StyleText(renderer.Legend(), renderer.StyleSubtle))
	for _, line := range renderer.Warnings(f) {
		fmt.Fprintln(w, t.StyleText(line, renderer.StyleDenied))
	}
	return w.Flush()
}

// renderCell returns the styled icon for a tag padded to cellWidth columns.
func (t *TUIRenderer) renderCell(tag world.Tag, cellWidth int) string {
	icon := cellIcon(tag)
	text := icon
	if cellWidth > 1 {
		if tag == world.Wall {
			text = strings.Repeat(icon, cellWidth)
		} else {
			text = icon + strings.Repeat(" ", cellWidth-1)
		}
	}
	return t.StyleText(text, renderer.TagStyle(tag))
}

func cellIcon(tag world.Tag) string {
	switch tag {
	case world.Wall:
		return IconWall
	case world.PlayerStart:
		return IconPlayer
	case world.EnemySpawn:
		return IconEnemy
	case world.Key:
		return IconKey
	case world.Exit:
		return IconExit
	default:
		return IconFloor
	}
}
