package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/flow"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Visual characters for rendering
const (
	WallChar   = '█'
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┆'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorOlive:       lipgloss.NewStyle().Foreground(lipgloss.Color("100")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// sideColor returns the team color of a side.
func sideColor(s registry.Side, bright bool) core.Color {
	switch {
	case s == registry.Left && bright:
		return core.ColorBrightBlue
	case s == registry.Left:
		return core.ColorBlue
	case bright:
		return core.ColorBrightRed
	default:
		return core.ColorRed
	}
}

// Projection maps arena coordinates (origin at the centre, +Y up) onto a
// grid of screen cells (origin top-left, +y down).
type Projection struct {
	arena      config.Arena
	cols, rows int
	top        int // First screen row used by the arena
}

// NewProjection fits the arena into cols x rows cells starting at row top.
func NewProjection(a config.Arena, cols, rows, top int) Projection {
	return Projection{arena: a, cols: max(cols, 1), rows: max(rows, 1), top: top}
}

func (p Projection) col(x float64) float64 {
	return (x + p.arena.HalfWidth()) / p.arena.Width * float64(p.cols)
}

func (p Projection) row(y float64) float64 {
	return (p.arena.HalfHeight() - y) / p.arena.Height * float64(p.rows)
}

// Cell returns the screen cell containing an arena point.
func (p Projection) Cell(v core.Vec2) (x, y int) {
	x = core.Clamp(int(math.Floor(p.col(v.X))), 0, p.cols-1)
	y = core.Clamp(int(math.Floor(p.row(v.Y))), 0, p.rows-1)
	return x, y + p.top
}

// Rect returns the cells covered by a box, at least one cell in each
// direction.
func (p Projection) Rect(center, half core.Vec2) core.Rect {
	x0 := int(math.Floor(p.col(center.X - half.X)))
	x1 := int(math.Ceil(p.col(center.X + half.X)))
	y0 := int(math.Floor(p.row(center.Y + half.Y)))
	y1 := int(math.Ceil(p.row(center.Y - half.Y)))

	x0 = core.Clamp(x0, 0, p.cols-1)
	y0 = core.Clamp(y0, 0, p.rows-1)
	w := core.Clamp(x1-x0, 1, p.cols-x0)
	h := core.Clamp(y1-y0, 1, p.rows-y0)
	return core.NewRect(x0, y0+p.top, w, h)
}

// DrawFrame renders a published frame into the screen buffer.
// Row 0 holds the score line; the arena fills the rest.
func DrawFrame(s *core.Screen, f pong.Frame, a config.Arena) {
	s.Clear()
	if s.Width() == 0 || s.Height() < 2 {
		return
	}
	proj := NewProjection(a, s.Width(), s.Height()-1, 1)

	if f.State == flow.Title {
		drawTitle(s, f)
		return
	}

	drawScore(s, f.Score)
	for y := 1; y < s.Height(); y += 2 {
		s.SetColored(s.Width()/2, y, NetChar, core.ColorGray)
	}

	for _, b := range f.Bodies {
		r := proj.Rect(b.Position, b.HalfExtents)
		switch b.Role.Kind {
		case registry.KindWall:
			s.DrawRect(r, WallChar, core.ColorGray)
		case registry.KindPaddle:
			s.DrawRect(r, PaddleChar, sideColor(b.Role.Side, false))
		case registry.KindBall:
			x, y := proj.Cell(b.Position)
			s.SetColored(x, y, BallChar, core.ColorBrightWhite)
		case registry.KindGoal:
			// Goals are invisible trigger zones.
		}
	}

	drawBanner(s, f)
}

func drawTitle(s *core.Screen, f pong.Frame) {
	mid := s.Height() / 2
	drawBoxedText(s, mid-2, spaced(f.Banner, 1), 1, core.ColorBrightWhite)
	s.DrawTextCentered(mid+2, f.Prompt, core.ColorGray)
}

func drawScore(s *core.Screen, sc pong.Score) {
	left := fmt.Sprintf("LEFT %d", sc.Left)
	right := fmt.Sprintf("%d RIGHT", sc.Right)
	center := s.Width() / 2
	s.DrawText(center-2-utf8.RuneCountInString(left), 0, left, sideColor(registry.Left, true))
	s.DrawText(center+3, 0, right, sideColor(registry.Right, true))
}

// drawBanner draws the countdown, goal and winner banners. Scale grows the
// padding of the box around the text.
func drawBanner(s *core.Screen, f pong.Frame) {
	if !f.Countdown.Active || f.Banner == "" || !f.Countdown.Visible {
		return
	}
	pad := bannerPadding(f.Countdown.Scale)
	mid := s.Height() / 2

	switch f.State {
	case flow.Ready:
		drawBoxedText(s, mid, f.Banner, pad, core.ColorYellow)
	case flow.Goal:
		drawBoxedText(s, mid, spaced(f.Banner, 1), pad, core.ColorBrightWhite)
	case flow.Win:
		drawBoxedText(s, mid, f.Banner, 1, sideColor(f.Winner, true))
	}
}

// bannerPadding converts a banner scale into cells of padding.
func bannerPadding(scale float64) int {
	return max(int((scale-1)*2), 0)
}

// drawBoxedText draws text centred on row y inside a box with pad cells of
// padding on every side.
func drawBoxedText(s *core.Screen, y int, text string, pad int, c core.Color) {
	tw := utf8.RuneCountInString(text)
	w := tw + 2 + 2*pad
	h := 3 + 2*pad
	r := core.NewRect((s.Width()-w)/2, y-h/2, w, h)

	s.DrawRect(r, ' ', c)
	s.DrawBox(r, c)
	s.DrawText(r.X+1+pad, r.Y+1+pad, text, c)
}

// spaced inserts gap spaces between the letters of text.
func spaced(text string, gap int) string {
	if gap <= 0 {
		return text
	}
	return strings.Join(strings.Split(text, ""), strings.Repeat(" ", gap))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
