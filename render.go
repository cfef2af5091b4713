package chronogrid

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Fixed drawing metrics, in pixels.
const (
	clockBorderWidth    = 1.0 // face outline stroke
	clockRadiusPadding  = 2.0 // inset of the face inside its cell
	handLengthReduction = 5.0 // gap between hand tip and face edge
	separatorWidth      = 20.0
	separatorDotRadius  = 4.0
	digitGroupGap       = 20.0 // gap around separators between digit pairs
)

// Relative Y positions of the separator dots within the digit height.
const (
	separatorTopDotY    = 0.3
	separatorBottomDotY = 0.7
)

// Renderer draws a Display onto an Ebitengine image. It is stateless with
// respect to animation: it consumes the draw states the clocks resolved
// during the last Advance sweep.
type Renderer struct {
	clockSize   float64
	strokeWidth float64
	clockGap    float64
	digitGap    float64

	face      Color
	border    Color
	separator Color
}

// NewRenderer creates a renderer with geometry and face colors taken from
// the config.
func NewRenderer(cfg *Config) *Renderer {
	pal := cfg.Palette()
	return &Renderer{
		clockSize:   float64(cfg.Clock.Size),
		strokeWidth: cfg.Clock.StrokeWidth,
		clockGap:    float64(cfg.Clock.ClockGap),
		digitGap:    float64(cfg.Clock.DigitGap),
		face:        pal.Face,
		border:      pal.Border,
		separator:   ParseHexColor(cfg.Colors.SeparatorColor),
	}
}

// DigitSize returns the pixel size of one digit grid.
func (r *Renderer) DigitSize() (w, h float64) {
	w = GridCols*r.clockSize + (GridCols-1)*r.clockGap
	h = GridRows*r.clockSize + (GridRows-1)*r.clockGap
	return w, h
}

// Size returns the pixel size of a display with the given number of digit
// positions, separators included.
func (r *Renderer) Size(positions int) (w, h float64) {
	dw, dh := r.DigitSize()
	for i := 0; i < positions; i++ {
		w += dw
		if i == positions-1 {
			break
		}
		if i%2 == 1 {
			w += digitGroupGap + separatorWidth + digitGroupGap
		} else {
			w += r.digitGap
		}
	}
	return w, dh
}

// Draw renders the display centered on the destination image. Digits are
// laid out in pairs with colon separators between pairs: HH:MM:SS for the
// default six positions.
func (r *Renderer) Draw(dst *ebiten.Image, d *Display) {
	bounds := dst.Bounds()
	totalW, totalH := r.Size(d.Positions())
	x := float64(bounds.Min.X) + (float64(bounds.Dx())-totalW)/2
	y := float64(bounds.Min.Y) + (float64(bounds.Dy())-totalH)/2

	dw, dh := r.DigitSize()
	for i := 0; i < d.Positions(); i++ {
		r.drawDigit(dst, d.Digit(i), x, y)
		x += dw
		if i == d.Positions()-1 {
			break
		}
		if i%2 == 1 {
			x += digitGroupGap
			r.drawSeparator(dst, x, y, dh)
			x += separatorWidth + digitGroupGap
		} else {
			x += r.digitGap
		}
	}
}

func (r *Renderer) drawDigit(dst *ebiten.Image, g *DigitGrid, x, y float64) {
	step := r.clockSize + r.clockGap
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			cx := x + float64(col)*step + r.clockSize/2
			cy := y + float64(row)*step + r.clockSize/2
			r.drawClock(dst, cx, cy, g.Clock(row, col).State())
		}
	}
}

// drawClock draws one face from its resolved state: background, border,
// both hands, center dot.
func (r *Renderer) drawClock(dst *ebiten.Image, cx, cy float64, s DrawState) {
	radius := r.clockSize/2 - clockRadiusPadding

	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(radius), r.face.toRGBA(), true)
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(radius), clockBorderWidth, r.border.toRGBA(), true)

	hand := s.Hand.toRGBA()
	length := radius - handLengthReduction
	r.drawHand(dst, cx, cy, length, s.HourRadians(), hand)
	r.drawHand(dst, cx, cy, length, s.MinuteRadians(), hand)

	// Center dot carries its own opacity over the hand color.
	dot := Color{R: s.Hand.R, G: s.Hand.G, B: s.Hand.B, A: s.CenterOpacity}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r.strokeWidth), dot.toRGBA(), true)
}

func (r *Renderer) drawHand(dst *ebiten.Image, cx, cy, length, angle float64, clr color.Color) {
	ex := cx + length*math.Cos(angle)
	ey := cy + length*math.Sin(angle)
	vector.StrokeLine(dst, float32(cx), float32(cy), float32(ex), float32(ey), float32(r.strokeWidth), clr, true)
	// Round cap at the tip; the center dot covers the base.
	vector.DrawFilledCircle(dst, float32(ex), float32(ey), float32(r.strokeWidth)/2, clr, true)
}

func (r *Renderer) drawSeparator(dst *ebiten.Image, x, y, digitHeight float64) {
	cx := x + separatorWidth/2
	clr := r.separator.toRGBA()
	vector.DrawFilledCircle(dst, float32(cx), float32(y+digitHeight*separatorTopDotY), separatorDotRadius, clr, true)
	vector.DrawFilledCircle(dst, float32(cx), float32(y+digitHeight*separatorBottomDotY), separatorDotRadius, clr, true)
}
