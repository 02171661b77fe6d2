package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/match"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// hudRows is the number of screen rows above the field.
const hudRows = 1

// projection maps world coordinates (origin at center, Y up) onto screen cells.
type projection struct {
	fieldW, fieldH float64
	cols, rows     int
}

func (p projection) col(x float64) int {
	if p.cols <= 1 {
		return 0
	}
	return int(math.Round((x + p.fieldW/2) / p.fieldW * float64(p.cols-1)))
}

func (p projection) row(y float64) int {
	if p.rows <= 1 {
		return hudRows
	}
	return hudRows + int(math.Round((p.fieldH/2-y)/p.fieldH*float64(p.rows-1)))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	proj := projection{
		fieldW: g.cfg.Field.Width,
		fieldH: g.cfg.Field.Height,
		cols:   dst.Width(),
		rows:   dst.Height() - hudRows,
	}

	// Draw center line (net)
	centerX := dst.Width() / 2
	for y := hudRows; y < dst.Height(); y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	g.drawPaddle(dst, proj, g.left, core.ColorCyan)
	g.drawPaddle(dst, proj, g.right, core.ColorRed)

	// Ball blinks while the next serve is pending
	if g.ctrl.State() != match.StateAwaitingReset || (g.tick/10)%2 == 0 {
		pos := g.ball.Position()
		dst.SetColored(proj.col(pos.X), proj.row(pos.Y), BallChar, core.ColorBrightWhite)
	}

	// Draw scores
	l, r := g.ctrl.Scores()
	dst.DrawTextColored(centerX-5, 0, fmt.Sprintf("%d", l), core.ColorYellow)
	dst.DrawTextColored(centerX+4, 0, fmt.Sprintf("%d", r), core.ColorYellow)

	// Draw labels
	leftLabel, rightLabel := g.labels()
	dst.DrawText(1, 0, leftLabel)
	dst.DrawText(dst.Width()-len([]rune(rightLabel))-1, 0, rightLabel)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if res, ok := g.ctrl.Result(); ok {
		msg := fmt.Sprintf("PLAYER %d WINS", res.WinnerCode())
		g.drawCenteredMessage(dst, msg, fmt.Sprintf("%d - %d  |  Press R to restart", res.LeftScore, res.RightScore))
	}
}

func (g *Game) drawPaddle(dst *core.Screen, proj projection, p *match.Paddle, c core.Color) {
	pos := p.Position()
	top := proj.row(pos.Y + p.HalfHeight())
	bottom := proj.row(pos.Y - p.HalfHeight())
	dst.DrawVLine(proj.col(pos.X), top, bottom-top+1, PaddleChar, c)
}

// labels returns "P1 Player" style captions for both paddles.
func (g *Game) labels() (string, string) {
	caption := func(n int, d registry.Driver) string {
		return fmt.Sprintf("P%d %s", n, d.Title())
	}
	return caption(1, g.drivers[0]), caption(2, g.drivers[1])
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
