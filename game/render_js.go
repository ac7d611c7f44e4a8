//go:build js
// +build js

package game

import (
	"math"
	"strconv"

	"honnef.co/go/js/dom"

	"github.com/simukka/starship-espace/geom"
	"github.com/simukka/starship-espace/particles"
	"github.com/simukka/starship-espace/shield"
)

// Renderer draws a Game onto a 2D canvas.
type Renderer struct {
	Canvas *dom.HTMLCanvasElement
	Ctx    *dom.CanvasRenderingContext2D
}

// NewRenderer sizes the canvas to the playfield.
func NewRenderer(canvas *dom.HTMLCanvasElement) *Renderer {
	canvas.Width = WIDTH
	canvas.Height = HEIGHT
	return &Renderer{Canvas: canvas, Ctx: canvas.GetContext2d()}
}

// Render draws one frame.
func (r *Renderer) Render(g *Game) {
	ctx := r.Ctx
	ctx.FillStyle = Theme.BackgroundColor
	ctx.FillRect(0, 0, WIDTH, HEIGHT)

	ctx.GlobalCompositeOperation = "lighter"
	r.renderParticles(g)
	r.renderEntities(g)
	r.renderShields(g)
	ctx.GlobalCompositeOperation = "source-over"

	r.renderHUD(g)
	r.renderOverlay(g)
	r.renderDebugUI(g.DebugUI)
}

func (r *Renderer) box(b geom.Rect, color string) {
	r.Ctx.FillStyle = color
	r.Ctx.FillRect(b.X, b.Y, b.W, b.H)
}

func (r *Renderer) renderParticles(g *Game) {
	ctx := r.Ctx
	p := g.Particles

	ctx.FillStyle = Theme.ExplosionColor
	p.Sparks.ForEachReverse(func(s *particles.Spark, _ int) {
		ctx.GlobalAlpha = s.Alpha()
		ctx.FillRect(s.X-1, s.Y-1, 2, 2)
	})
	ctx.GlobalAlpha = 1

	ctx.FillStyle = Theme.RedPointColor
	p.RedPoints.ForEachReverse(func(rp *particles.RedPoint, _ int) {
		ctx.BeginPath()
		ctx.Arc(rp.X, rp.Y, 3, 0, 2*math.Pi, false)
		ctx.Fill()
	})

	p.Flashes.ForEachReverse(func(f *particles.Flash, _ int) {
		ctx.StrokeStyle = ShieldColor(f.Shield)
		ctx.GlobalAlpha = float64(f.Life) / 20
		ctx.BeginPath()
		ctx.Arc(f.X, f.Y, float64(24-f.Life), 0, 2*math.Pi, false)
		ctx.Stroke()
	})
	ctx.GlobalAlpha = 1
}

func (r *Renderer) renderEntities(g *Game) {
	w := g.World
	for _, pu := range w.PowerUps.Items() {
		r.box(pu.Rect, ShieldColor(powerUpShield(pu.Kind)))
	}
	for _, e := range w.Enemies.Items() {
		color := Theme.EnemyColor
		if e.Type >= 0 && e.Type < EnemyTypeCount {
			color = Theme.EnemyPalette[e.Type]
		}
		r.box(e.Rect, color)
	}
	for _, m := range w.MiniBosses.Items() {
		r.box(m.Rect, Theme.MiniBossColor)
		r.healthBar(m.Rect, m.Health, m.MaxHealth)
	}
	if b := w.Boss; b != nil {
		r.box(b.Rect, Theme.BossColor)
		r.healthBar(b.Rect, b.Health, b.MaxHealth)
	}
	for _, b := range w.PlayerBullets.Items() {
		r.box(b.Rect, Theme.BulletColor)
	}
	for _, b := range w.EnemyBullets.Items() {
		r.box(b.Rect, Theme.HazardColor)
	}
	for _, l := range w.Lasers.Items() {
		r.box(l.Rect, Theme.LaserColor)
	}
	for _, b := range w.WaveBullets.Items() {
		r.box(b.Rect, Theme.WaveBulletColor)
	}
	for _, rp := range w.Ripostes.Items() {
		r.Ctx.GlobalAlpha = float64(rp.Life) / RiposteLife
		r.box(rp.Rect, Theme.RiposteColor)
	}
	r.Ctx.GlobalAlpha = 1

	p := w.Player
	ctx := r.Ctx
	ctx.StrokeStyle = Theme.ShipColor
	ctx.Set("lineWidth", Theme.ShipLineWidth)
	ctx.BeginPath()
	ctx.MoveTo(p.X+p.W/2, p.Y)
	ctx.LineTo(p.X+p.W, p.Y+p.H)
	ctx.LineTo(p.X, p.Y+p.H)
	ctx.LineTo(p.X+p.W/2, p.Y)
	ctx.Stroke()
}

func (r *Renderer) healthBar(b geom.Rect, health, max int) {
	if max <= 0 {
		return
	}
	frac := float64(health) / float64(max)
	r.box(geom.Rect{X: b.X, Y: b.Y - 8, W: b.W, H: 4}, Theme.PanelBackground)
	r.box(geom.Rect{X: b.X, Y: b.Y - 8, W: b.W * frac, H: 4}, Theme.StatGood)
}

func (r *Renderer) renderShields(g *Game) {
	ctx := r.Ctx
	c := g.PlayerCenter()
	ctx.Set("lineWidth", Theme.ShieldLineWidth)

	if v := g.Simple.Visibility; v > 0 {
		r.ring(c, g.Simple.Radius, Theme.SimpleColor, v)
	}
	if v := g.Riposte.Visibility; v > 0 {
		r.ring(c, g.Riposte.Radius, Theme.RiposteColor, v)
	}

	s := g.Spherical
	if !s.IsActive() {
		return
	}
	r.ring(c, s.Radius, Theme.SphericalColor, s.Visibility*0.5)
	ctx.StrokeStyle = Theme.SphericalColor
	for i, reveal := range s.MeridianReveal {
		if reveal <= 0 {
			continue
		}
		phi := float64(i) * 2 * math.Pi / shield.Meridians
		ctx.GlobalAlpha = reveal * s.Visibility
		ctx.BeginPath()
		ctx.MoveTo(c.X, c.Y)
		ctx.LineTo(c.X+math.Cos(phi)*s.Radius, c.Y+math.Sin(phi)*s.Radius)
		ctx.Stroke()
	}
	for i, reveal := range s.ParallelReveal {
		if reveal <= 0 {
			continue
		}
		ctx.GlobalAlpha = reveal * s.Visibility
		ctx.BeginPath()
		ctx.Arc(c.X, c.Y, s.Radius*float64(i+1)/shield.Parallels, 0, 2*math.Pi, false)
		ctx.Stroke()
	}
	ctx.GlobalAlpha = 1
}

func (r *Renderer) ring(c geom.Point, radius float64, color string, alpha float64) {
	ctx := r.Ctx
	ctx.GlobalAlpha = alpha
	ctx.StrokeStyle = color
	ctx.BeginPath()
	ctx.Arc(c.X, c.Y, radius, 0, 2*math.Pi, false)
	ctx.Stroke()
	ctx.GlobalAlpha = 1
}

func (r *Renderer) renderHUD(g *Game) {
	ctx := r.Ctx
	ctx.Font = Theme.TitleFont
	ctx.TextAlign = "left"
	ctx.FillStyle = Theme.ScoreColor
	if s, ok := g.Score.(*Score); ok {
		ctx.FillText(strconv.Itoa(s.Points), 16, 24, -1)
	}

	// Riposte energy bar
	frac := g.Riposte.Energy / g.Riposte.MaxEnergy
	r.box(geom.Rect{X: 16, Y: HEIGHT - 20, W: 100, H: 6}, Theme.PanelBackground)
	r.box(geom.Rect{X: 16, Y: HEIGHT - 20, W: 100 * frac, H: 6}, Theme.RiposteColor)

	if g.Paused {
		ctx.TextAlign = "center"
		ctx.FillStyle = Theme.TextPrimaryColor
		ctx.FillText("PAUSED", WIDTH/2, HEIGHT/2, -1)
	}
	if g.Over {
		ctx.TextAlign = "center"
		ctx.FillStyle = Theme.TextPrimaryColor
		ctx.FillText("GAME OVER", WIDTH/2, HEIGHT/2, -1)
	}
	ctx.TextAlign = "left"
}

func (r *Renderer) renderOverlay(g *Game) {
	s := g.Overlay
	if !s.Visible {
		return
	}
	ctx := r.Ctx
	lines := s.Lines(g)
	x, y := float64(s.PanelX), float64(s.PanelY)
	w := float64(s.PanelWidth)
	h := float64(len(lines)*s.LineHeight + 40)

	ctx.FillStyle = Theme.PanelBackground
	ctx.FillRect(x, y, w, h)
	ctx.StrokeStyle = Theme.PanelBorder
	ctx.StrokeRect(x, y, w, h)

	ctx.Font = Theme.TitleFont
	ctx.FillStyle = Theme.PanelBorder
	ctx.FillText("GAME STATS [F10]", x+10, y+20, -1)

	ctx.Font = Theme.TextFont
	ly := y + 44
	for _, l := range lines {
		if l.Value == "" {
			ctx.FillStyle = Theme.TextSecondaryColor
			ctx.FillText(l.Label, x+10, ly, -1)
		} else {
			ctx.FillStyle = Theme.TextSecondaryColor
			ctx.FillText(l.Label+":", x+15, ly, -1)
			ctx.FillStyle = l.Color
			ctx.TextAlign = "right"
			ctx.FillText(l.Value, x+w-15, ly, -1)
			ctx.TextAlign = "left"
		}
		ly += float64(s.LineHeight)
	}
}

func (r *Renderer) renderDebugUI(d *DebugUI) {
	if !d.Visible {
		return
	}
	ctx := r.Ctx
	x, y := float64(d.PanelX), float64(d.PanelY)
	w, h := float64(d.PanelWidth), float64(d.PanelHeight)

	ctx.FillStyle = Theme.PanelBackground
	ctx.FillRect(x, y, w, h)
	ctx.StrokeStyle = Theme.StatGood
	ctx.StrokeRect(x, y, w, h)

	ctx.Font = Theme.TitleFont
	ctx.FillStyle = Theme.StatGood
	ctx.FillText("TUNING", x+10, y+25, -1)

	ctx.Font = Theme.TextFont
	ctx.FillStyle = Theme.ScoreColor
	ctx.FillText("< "+d.Section()+" >", x+10, y+50, -1)
	ctx.FillStyle = Theme.TextSecondaryColor
	ctx.FillText("Q/E: Section | W/S: Field | A/D: Value | F9: Close", x+10, y+70, -1)

	fields := d.Fields()
	end := d.ScrollOffset + d.MaxVisibleFields
	if end > len(fields) {
		end = len(fields)
	}
	for i := d.ScrollOffset; i < end; i++ {
		ly := y + 100 + float64((i-d.ScrollOffset)*26)
		if i == d.SelectedField {
			ctx.FillStyle = Theme.PanelHighlight
			ctx.FillRect(x+5, ly-15, w-10, 24)
			ctx.FillStyle = Theme.StatGood
		} else {
			ctx.FillStyle = Theme.TextSecondaryColor
		}
		ctx.FillText(fields[i]+":", x+15, ly, -1)
		ctx.TextAlign = "right"
		ctx.FillText(d.GetFieldValue(fields[i]), x+w-15, ly, -1)
		ctx.TextAlign = "left"
	}
}
