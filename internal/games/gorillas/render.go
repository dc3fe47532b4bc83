package gorillas

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas/sim"
)

// Visual characters for rendering
const (
	SceneChar     = '█'
	PlayerChar    = '☻'
	ExplosionChar = '*'
	HeartChar     = '♥'
	LostHeartChar = '·'
)

var bananaFrames = [...]rune{'(', '^', ')', 'v'}

// Layout
const (
	hudRows    = 2
	minScreenW = 40
	minScreenH = 12
)

var playerColors = [2]core.Color{core.ColorBrightYellow, core.ColorBrightMagenta}

// sceneKey identifies a cached rendition of the skyline.
type sceneKey struct {
	generation uint64
	terrain    int
	cols, rows int
}

// sceneCache holds the skyline composited at field resolution and
// downscaled to one pixel per terminal cell. It is rebuilt only when
// the terrain or the terminal size changes.
type sceneCache struct {
	key    sceneKey
	valid  bool
	field  *image.NRGBA
	cells  *image.NRGBA
	colors []core.Color
	lookup map[color.NRGBA]core.Color
}

func newSceneCache() *sceneCache {
	return &sceneCache{lookup: make(map[color.NRGBA]core.Color)}
}

func (c *sceneCache) update(m *sim.Match, cols, rows int) {
	key := sceneKey{
		generation: m.Round().Generation,
		terrain:    m.TerrainVersion(),
		cols:       cols,
		rows:       rows,
	}
	if c.valid && c.key == key {
		return
	}

	fp := m.Params().Field
	if c.field == nil || c.field.Bounds().Dx() != fp.FieldWidth || c.field.Bounds().Dy() != fp.FieldHeight {
		c.field = image.NewNRGBA(image.Rect(0, 0, fp.FieldWidth, fp.FieldHeight))
	}
	composeSkyline(c.field, m.Buildings())

	if c.cells == nil || c.cells.Bounds().Dx() != cols || c.cells.Bounds().Dy() != rows {
		c.cells = image.NewNRGBA(image.Rect(0, 0, cols, rows))
		c.colors = make([]core.Color, cols*rows)
	}
	xdraw.NearestNeighbor.Scale(c.cells, c.cells.Bounds(), c.field, c.field.Bounds(), xdraw.Src, nil)

	for y := range rows {
		for x := range cols {
			c.colors[y*cols+x] = c.terminalColor(c.cells.NRGBAAt(x, y))
		}
	}

	c.key = key
	c.valid = true
}

func (c *sceneCache) colorAt(x, y int) core.Color {
	return c.colors[y*c.key.cols+x]
}

func (c *sceneCache) terminalColor(px color.NRGBA) core.Color {
	if tc, ok := c.lookup[px]; ok {
		return tc
	}
	tc := nearestANSI(px)
	c.lookup[px] = tc
	return tc
}

// composeSkyline paints the sky and every building raster into dst,
// flipping from scene space (y up) to image space (y down).
func composeSkyline(dst *image.NRGBA, buildings []*sim.Building) {
	h := dst.Bounds().Dy()
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(sim.SkyColor), image.Point{}, xdraw.Src)

	for _, b := range buildings {
		left := int(math.Round(b.Left()))
		r := image.Rect(left, h-b.Height, left+b.Width, h)
		xdraw.Draw(dst, r, b.Raster(), image.Point{}, xdraw.Over)
	}
}

// ansiPalette is the fixed part of the xterm 256-color palette
// (indices 16-255); the first 16 depend on the terminal theme.
var ansiPalette = sync.OnceValue(func() []colorful.Color {
	levels := [6]uint8{0, 95, 135, 175, 215, 255}
	pal := make([]colorful.Color, 0, 240)
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				c, _ := colorful.MakeColor(color.NRGBA{R: levels[r], G: levels[g], B: levels[b], A: 0xff})
				pal = append(pal, c)
			}
		}
	}
	for i := range 24 {
		v := uint8(8 + 10*i)
		c, _ := colorful.MakeColor(color.NRGBA{R: v, G: v, B: v, A: 0xff})
		pal = append(pal, c)
	}
	return pal
})

// nearestANSI returns the closest 256-color palette entry by CIE Lab
// distance.
func nearestANSI(px color.NRGBA) core.Color {
	px.A = 0xff
	target, _ := colorful.MakeColor(px)

	best, bestDist := 0, math.MaxFloat64
	for i, c := range ansiPalette() {
		if d := target.DistanceLab(c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return core.ANSI(uint8(16 + best))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		drawCenteredMessage(dst, "CONFIG ERROR", g.err.Error())
		return
	}
	if g.match == nil {
		return
	}
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		drawCenteredMessage(dst, "TOO SMALL", fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := newViewport(g.match.Params().Field, 0, hudRows, dst.Width(), dst.Height()-hudRows)
	g.scene.update(g.match, v.cols, v.rows)
	for y := range v.rows {
		for x := range v.cols {
			dst.SetCell(v.x0+x, v.y0+y, SceneChar, g.scene.colorAt(x, y))
		}
	}

	g.drawExplosions(dst, v)
	g.drawPlayers(dst, v)
	g.drawProjectile(dst, v)
	g.drawHUD(dst)

	if g.hud.banner != "" {
		dst.DrawTextColored((dst.Width()-len([]rune(g.hud.banner)))/2, hudRows+1, g.hud.banner, core.ColorBrightWhite)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if res, ok := g.match.Result(); ok {
		drawCenteredMessage(dst,
			fmt.Sprintf("PLAYER %d WINS", res.Winner),
			fmt.Sprintf("%d - %d  |  R rematch  |  Q quit", res.Score1, res.Score2))
	}
}

// viewport maps scene coordinates onto a block of screen cells.
type viewport struct {
	x0, y0     int
	cols, rows int
	sx, sy     float64 // scene units per cell
	fieldH     float64
}

func newViewport(fp sim.FieldParams, x0, y0, cols, rows int) viewport {
	return viewport{
		x0: x0, y0: y0,
		cols: cols, rows: rows,
		sx:     float64(fp.FieldWidth) / float64(cols),
		sy:     float64(fp.FieldHeight) / float64(rows),
		fieldH: float64(fp.FieldHeight),
	}
}

// cell returns the screen cell for a scene point, and whether it is
// inside the viewport.
func (v viewport) cell(p core.Vec2) (x, y int, ok bool) {
	cx := int(math.Floor(p.X / v.sx))
	cy := int(math.Floor((v.fieldH - p.Y) / v.sy))
	ok = cx >= 0 && cx < v.cols && cy >= 0 && cy < v.rows
	return v.x0 + cx, v.y0 + cy, ok
}

func (g *Game) drawPlayers(dst *core.Screen, v viewport) {
	for _, id := range []sim.PlayerID{sim.Player1, sim.Player2} {
		p := g.match.Player(id)
		if !p.Alive {
			continue
		}
		x, y, ok := v.cell(p.Position)
		if !ok {
			continue
		}
		c := playerColors[id.Index()]
		dst.SetCell(x, y, PlayerChar, c)

		// Throwing arm, raised on the side the banana leaves from.
		if g.hud.arm[id.Index()] > 0 {
			if id == sim.Player1 {
				dst.SetCell(x-1, y-1, '\\', c)
			} else {
				dst.SetCell(x+1, y-1, '/', c)
			}
		}
		if g.match.Turn() == id && g.match.Phase() == sim.PhaseAwaitingLaunch {
			dst.SetCell(x, y-1, '▼', c)
		}
	}
}

func (g *Game) drawProjectile(dst *core.Screen, v viewport) {
	p, ok := g.match.Projectile()
	if !ok {
		return
	}
	x, y, inside := v.cell(p.Position)
	if !inside {
		// Above the field: mark the column so the throw can be followed.
		if p.Position.Y > v.fieldH && x >= v.x0 && x < v.x0+v.cols {
			dst.SetCell(x, v.y0, '↑', core.ColorYellow)
		}
		return
	}
	turns := p.Rotation / (math.Pi / 2)
	frame := int(math.Floor(turns)) % len(bananaFrames)
	if frame < 0 {
		frame += len(bananaFrames)
	}
	dst.SetCell(x, y, bananaFrames[frame], core.ColorBrightYellow)
}

func (g *Game) drawExplosions(dst *core.Screen, v viewport) {
	for _, e := range g.hud.explosions {
		radius := g.match.Params().CarveRadius
		c := core.ColorOrange
		if e.kind == sim.ExplosionPlayer {
			radius *= 2
			c = core.ColorBrightRed
		}
		// Grow then shrink over the effect's lifetime.
		phase := float64(e.ttl) / explosionTicks
		r := radius * math.Sin(phase*math.Pi)

		cx, cy, _ := v.cell(e.pos)
		rx := int(math.Ceil(r / v.sx))
		ry := int(math.Ceil(r / v.sy))
		for dy := -ry; dy <= ry; dy++ {
			for dx := -rx; dx <= rx; dx++ {
				nx, ny := float64(dx)*v.sx, float64(dy)*v.sy
				if nx*nx+ny*ny > r*r {
					continue
				}
				if y := cy + dy; y >= v.y0 && y < v.y0+v.rows {
					dst.SetCell(cx+dx, y, ExplosionChar, c)
				}
			}
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := dst.Width()
	p1, p2 := g.match.Player(sim.Player1), g.match.Player(sim.Player2)

	left := fmt.Sprintf(" P1 %s %d", g.hearts(sim.Player1), p1.Score)
	dst.DrawTextColored(0, 0, left, playerColors[0])

	right := fmt.Sprintf("%d %s P2 ", p2.Score, g.hearts(sim.Player2))
	dst.DrawTextColored(w-len([]rune(right)), 0, right, playerColors[1])

	title := fmt.Sprintf("ROUND %d", g.match.Round().Number)
	dst.DrawTextCentered(0, title)

	turn := g.match.Turn()
	aim := fmt.Sprintf(" Player %d  angle %2d°  velocity %3d", turn, g.angle, g.velocity)
	dst.DrawTextColored(0, 1, aim, playerColors[turn.Index()])

	hint := "←→ angle  ↑↓ power  a/d w/s ×5  space throw "
	if x := w - len([]rune(hint)); x > len([]rune(aim))+1 {
		dst.DrawTextColored(x, 1, hint, core.ColorGray)
	}
}

// hearts renders life indicators. A slot that was just hidden blinks
// before going dark.
func (g *Game) hearts(id sim.PlayerID) string {
	var sb strings.Builder
	for i := range sim.StartingLives {
		switch {
		case g.match.IndicatorVisible(id, i):
			sb.WriteRune(HeartChar)
		case g.hud.blink[id.Index()][i]/8%2 == 1:
			sb.WriteRune(HeartChar)
		default:
			sb.WriteRune(LostHeartChar)
		}
	}
	return sb.String()
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := max(tw, sw) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-sw)/2, boxY+3, subtitle)
}
