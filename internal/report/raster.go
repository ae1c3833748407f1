package report

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"rawdati/internal/model"
)

// SurfaceWidthPx is the fixed raster width: A4 at 96 DPI.
const SurfaceWidthPx = 794

const (
	marginPx     = 40
	lineHeightPx = 18
	barHeightPx  = 12
	bandHeightPx = 20
	labelColPx   = 160
	barMaxPx     = SurfaceWidthPx - 2*marginPx - labelColPx
	blockGapPx   = 24
)

var (
	colInk     = color.RGBA{33, 37, 41, 255}
	colMuted   = color.RGBA{108, 117, 125, 255}
	colBar     = color.RGBA{64, 120, 192, 255}
	colBarAlt  = color.RGBA{190, 205, 225, 255}
	colRule    = color.RGBA{222, 226, 230, 255}
	colHeading = color.RGBA{25, 60, 110, 255}
)

// ErrSurfaceDisposed is returned when a surface is used after Dispose.
var ErrSurfaceDisposed = errors.New("render surface already disposed")

// Surface is the off-screen rendering surface for one export. It is
// exclusively owned by the in-flight export: acquire with NewSurface,
// render once, Dispose on every exit path. Never pooled or shared.
type Surface struct {
	face     font.Face
	img      *image.RGBA
	disposed bool
}

// NewSurface acquires a fresh off-screen surface.
func NewSurface() *Surface {
	return &Surface{face: basicfont.Face7x13}
}

// Dispose releases the surface. Safe to call more than once.
func (s *Surface) Dispose() {
	s.disposed = true
	s.img = nil
}

// Render draws the document at the fixed surface width and returns a
// raster whose height is the document's natural height, unclipped.
func (s *Surface) Render(doc *Document) (*image.RGBA, error) {
	if s.disposed {
		return nil, ErrSurfaceDisposed
	}
	if doc == nil {
		return nil, errors.New("nil document")
	}

	// Measure pass: walk the document without drawing to learn the
	// natural height, then allocate and draw for real. Both passes run
	// the same walk so they cannot drift apart.
	height := s.walk(doc, nil)
	s.img = image.NewRGBA(image.Rect(0, 0, SurfaceWidthPx, height))
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	s.walk(doc, s.img)

	return s.img, nil
}

// walk runs the layout. With img == nil it only measures; otherwise it
// draws. Returns the total height in pixels.
func (s *Surface) walk(doc *Document, img *image.RGBA) int {
	y := marginPx

	// Header
	y = s.text(img, doc.Title, marginPx, y, colHeading, true)
	if doc.Description != "" {
		y = s.wrapped(img, doc.Description, marginPx, y, colMuted)
	}
	y = s.text(img, doc.Tenant.Name, marginPx, y, colInk, false)
	for _, line := range tenantContact(doc.Tenant) {
		y = s.text(img, line, marginPx, y, colMuted, false)
	}
	y = s.rule(img, y)

	// Statistics summary
	y = s.text(img, "Summary", marginPx, y, colHeading, true)
	y = s.text(img, fmt.Sprintf("Total responses: %d", doc.Stats.TotalResponses), marginPx, y, colInk, false)
	y = s.text(img, fmt.Sprintf("Questions: %d", doc.Stats.QuestionCount), marginPx, y, colInk, false)
	y = s.text(img, fmt.Sprintf("Average responses per question: %.1f", doc.Stats.AveragePerQuestion), marginPx, y, colInk, false)
	if doc.NoResults {
		y = s.text(img, "No results are available for this survey yet.", marginPx, y, colMuted, false)
	}
	y = s.rule(img, y)

	// Narrative analysis, only when present; each sub-section guards
	// its own field.
	if doc.Analysis != nil {
		y = s.text(img, "Analysis", marginPx, y, colHeading, true)
		if doc.Analysis.Summary != "" {
			y = s.wrapped(img, doc.Analysis.Summary, marginPx, y, colInk)
		}
		y = s.bulletList(img, "Insights", doc.Analysis.Insights, y)
		y = s.bulletList(img, "Recommendations", doc.Analysis.Recommendations, y)
		y = s.bulletList(img, "Strengths", doc.Analysis.Strengths, y)
		y = s.bulletList(img, "Improvements", doc.Analysis.Improvements, y)
		y = s.rule(img, y)
	}

	// One visual block per question, in original order.
	for i, block := range doc.Blocks {
		y = s.questionBlock(img, i+1, block, y)
	}

	// Footer
	y += blockGapPx
	y = s.rule(img, y)
	y = s.text(img, "Generated "+doc.GeneratedAt.Format("2006-01-02 15:04"), marginPx, y, colMuted, false)
	if contact := strings.Join(tenantContact(doc.Tenant), "  |  "); contact != "" {
		y = s.text(img, contact, marginPx, y, colMuted, false)
	}

	return y + marginPx
}

func (s *Surface) questionBlock(img *image.RGBA, n int, block QuestionBlock, y int) int {
	y += blockGapPx
	y = s.wrapped(img, fmt.Sprintf("%d. %s", n, block.Result.QuestionText), marginPx, y, colHeading)
	y = s.text(img, fmt.Sprintf("%d responses", block.Result.TotalResponses), marginPx, y, colMuted, false)

	switch block.Chart.Kind {
	case model.ChartKindEmpty:
		y = s.text(img, "No responses yet.", marginPx, y, colMuted, false)

	case model.ChartKindNone:
		// Free-text answers have no chart; show the participation count
		// the chart spec carries.
		y = s.text(img, block.Chart.Caption, marginPx, y, colInk, false)

	case model.ChartKindPie:
		y = s.band(img, block.Chart.Segments, y)
		for _, seg := range block.Chart.Segments {
			line := fmt.Sprintf("%s: %d (%.1f%%)", seg.Label, seg.Value, seg.Percent)
			y = s.text(img, line, marginPx, y, colInk, false)
		}

	case model.ChartKindBars:
		for _, seg := range block.Chart.Segments {
			y = s.bar(img, seg, y)
		}
		if block.Chart.Caption != "" {
			y = s.text(img, block.Chart.Caption, marginPx, y, colInk, false)
		}
	}

	return y
}

// band draws proportional horizontal segments (the yes/no visual).
func (s *Surface) band(img *image.RGBA, segments []model.ChartSegment, y int) int {
	if img != nil {
		x := marginPx
		width := SurfaceWidthPx - 2*marginPx
		cols := []color.RGBA{colBar, colBarAlt}
		for i, seg := range segments {
			w := int(seg.Percent / 100 * float64(width))
			if i == len(segments)-1 {
				w = width - (x - marginPx) // absorb rounding in the last segment
			}
			fillRect(img, x, y, w, bandHeightPx, cols[i%len(cols)])
			x += w
		}
	}
	return y + bandHeightPx + 8
}

// bar draws one labelled distribution bar sized by its percentage.
func (s *Surface) bar(img *image.RGBA, seg model.ChartSegment, y int) int {
	s.drawLine(img, truncateLabel(seg.Label), marginPx, y, colInk)
	if img != nil {
		w := int(seg.Percent / 100 * float64(barMaxPx))
		fillRect(img, marginPx+labelColPx, y, w, barHeightPx, colBar)
	}
	s.drawLine(img, fmt.Sprintf("%d", seg.Value), marginPx+labelColPx+barMaxPx+8, y, colMuted)
	return y + lineHeightPx
}

func (s *Surface) bulletList(img *image.RGBA, title string, items []string, y int) int {
	if len(items) == 0 {
		return y
	}
	y = s.text(img, title, marginPx, y, colInk, true)
	for _, item := range items {
		y = s.wrapped(img, "• "+item, marginPx+12, y, colInk)
	}
	return y + 4
}

// text draws one line and returns the next baseline position. Headings
// get a doubled draw one pixel over for a faux-bold face and extra lead.
func (s *Surface) text(img *image.RGBA, str string, x, y int, col color.RGBA, heading bool) int {
	s.drawLine(img, str, x, y, col)
	if heading {
		s.drawLine(img, str, x+1, y, col)
		return y + lineHeightPx + 6
	}
	return y + lineHeightPx
}

// wrapped greedily wraps str to the content width, drawing each line.
func (s *Surface) wrapped(img *image.RGBA, str string, x, y int, col color.RGBA) int {
	maxW := fixed.I(SurfaceWidthPx - marginPx - x)
	words := strings.Fields(str)
	if len(words) == 0 {
		return y
	}

	line := words[0]
	for _, w := range words[1:] {
		if font.MeasureString(s.face, line+" "+w) > maxW {
			y = s.text(img, line, x, y, col, false)
			line = w
			continue
		}
		line += " " + w
	}
	return s.text(img, line, x, y, col, false)
}

func (s *Surface) rule(img *image.RGBA, y int) int {
	y += 6
	if img != nil {
		fillRect(img, marginPx, y, SurfaceWidthPx-2*marginPx, 1, colRule)
	}
	return y + 12
}

// drawLine paints a single text line with its baseline a fixed offset
// below y. A nil img makes it a no-op so the measure pass shares the
// exact layout arithmetic.
func (s *Surface) drawLine(img *image.RGBA, str string, x, y int, col color.RGBA) {
	if img == nil {
		return
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: s.face,
		Dot:  fixed.P(x, y+11),
	}
	d.DrawString(str)
}

// truncateLabel caps bar labels at 20 characters. Cuts on runes so a
// multi-byte label stays valid UTF-8.
func truncateLabel(s string) string {
	r := []rune(s)
	if len(r) <= 20 {
		return s
	}
	return string(r[:19]) + "…"
}

func fillRect(img *image.RGBA, x, y, w, h int, col color.RGBA) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), image.NewUniform(col), image.Point{}, draw.Src)
}

func tenantContact(t model.TenantInfo) []string {
	var lines []string
	if t.Email != "" {
		lines = append(lines, t.Email)
	}
	if t.Phone != "" {
		lines = append(lines, t.Phone)
	}
	if t.Address != "" {
		lines = append(lines, t.Address)
	}
	return lines
}
