package grow

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-grow/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	HUDRow     = 0
)

// viewport maps world coordinates onto the arena box drawn on screen.
type viewport struct {
	bounds Bounds
	box    core.Rect // Arena outline, including the border cells
	innerW int
	innerH int
	innerX int
	innerY int
}

func newViewport(b Bounds, screenW, screenH int) viewport {
	box := core.NewRect(0, HUDRow+1, screenW, screenH-HUDRow-1)
	return viewport{
		bounds: b,
		box:    box,
		innerX: box.X + 1,
		innerY: box.Y + 1,
		innerW: core.Max(box.W-2, 1),
		innerH: core.Max(box.H-2, 1),
	}
}

// cell converts a world point to a screen cell inside the arena box.
func (v viewport) cell(p core.Vec2) (int, int) {
	fx := (p.X - v.bounds.Left) / v.bounds.Width()
	fy := (v.bounds.Upper - p.Y) / v.bounds.Height()
	x := v.innerX + int(math.Round(fx*float64(v.innerW-1)))
	y := v.innerY + int(math.Round(fy*float64(v.innerH-1)))
	return core.Clamp(x, v.innerX, v.innerX+v.innerW-1), core.Clamp(y, v.innerY, v.innerY+v.innerH-1)
}

// span converts a world size to a cell count on each axis, at least one cell.
func (v viewport) span(size float64) (int, int) {
	w := int(math.Round(size / v.bounds.Width() * float64(v.innerW)))
	h := int(math.Round(size / v.bounds.Height() * float64(v.innerH)))
	return core.Max(w, 1), core.Max(h, 1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	s := g.sim
	v := newViewport(s.bounds, dst.Width(), dst.Height())

	g.drawHUD(dst)

	if s.state == StatePlaying {
		if len(s.entities.OfKind(KindWall)) > 0 {
			dst.DrawBox(v.box)
		}
		g.drawObstacles(dst, v)
		g.drawPlayer(dst, v)
	}

	if g.paused {
		drawCenteredMessage(dst, []string{"PAUSED", "", "Press P to resume"})
	}

	if s.state == StateGameOver {
		var lines []string
		for _, label := range s.entities.OfKind(KindLabel) {
			lines = append(lines, label.Text)
		}
		lines = append(lines, "", "Press R to restart")
		drawCenteredMessage(dst, lines)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.sim
	_, high := s.Score()

	arrow := "↓"
	if s.GravityInverted() {
		arrow = "↑"
	}

	left := fmt.Sprintf(" Weight: %d ", s.Weight())
	if s.state == StateGameOver {
		left = fmt.Sprintf(" Score: %d ", s.gameOver.Score)
	}
	dst.DrawTextColored(1, HUDRow, left, core.ColorBrightBlue)

	right := fmt.Sprintf(" High: %d  Gravity: %s  Round: %d ", high, arrow, s.round)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(right)-1, HUDRow, right, core.ColorGray)
}

func (g *Game) drawObstacles(dst *core.Screen, v viewport) {
	s := g.sim
	playerWeight := s.Weight()

	for _, e := range s.entities.OfKind(KindObstacle) {
		body, ok := s.world.Body(e.ID)
		if !ok {
			continue
		}
		x, y := v.cell(body.Pos)
		label := strconv.Itoa(e.Weight)

		color := core.ColorRed
		if e.Weight <= playerWeight {
			color = core.ColorGreen
		}
		dst.DrawTextColored(x-len(label)/2, y, label, color)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	s := g.sim
	player := s.mustPlayer()
	body, ok := s.world.Body(player.ID)
	if !ok {
		return
	}

	cx, cy := v.cell(body.Pos)
	w, h := v.span(s.sizeOf(player.Weight))
	rect := core.NewRect(cx-w/2, cy-h/2, w, h)
	dst.DrawRectColored(rect, PlayerChar, core.ColorBlue)

	label := strconv.Itoa(player.Weight)
	dst.DrawTextColored(cx-len(label)/2, cy, label, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines []string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	textW := 0
	for _, l := range lines {
		textW = core.Max(textW, utf8.RuneCountInString(l))
	}
	boxW := textW + 4
	boxH := len(lines) + 2
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, l := range lines {
		dst.DrawTextCentered(boxY+1+i, l)
	}
}
