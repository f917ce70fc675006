// Package wordcloud renders the aggregated word table as a word-cloud image.
//
// Layout and rasterization are split: Layout computes deterministic, seeded
// glyph placements, Render draws them. Reproducibility is a property of the
// call - the seed is an explicit option and no global random state is touched.
package wordcloud

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/nrennie/sentiment-analysis/internal/domain"
)

// Colors span the score domain [-5, 5]; nil scores fall back to NullColor.
var (
	negativeColor = color.RGBA{R: 0xB2, G: 0x18, B: 0x2B, A: 0xFF}
	neutralColor  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	positiveColor = color.RGBA{R: 0x1A, G: 0x85, B: 0x3B, A: 0xFF}
)

// Options configures layout and rendering.
type Options struct {
	Width       int
	Height      int
	MinFontSize float64
	MaxFontSize float64
	Seed        int64
	Background  color.Color
	NullColor   color.Color // words without a sentiment score
}

// Placement is one positioned word: center coordinates, font size, measured
// box, and resolved color.
type Placement struct {
	Word  string
	X, Y  float64
	Size  float64
	W, H  float64
	Color color.Color
}

var fontData = mustParseFont()

func mustParseFont() *truetype.Font {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("parsing embedded font: %v", err))
	}
	return f
}

func withDefaults(opts Options) Options {
	if opts.Width <= 0 {
		opts.Width = 1500
	}
	if opts.Height <= 0 {
		opts.Height = 1000
	}
	if opts.MaxFontSize <= 0 {
		opts.MaxFontSize = 96
	}
	if opts.MinFontSize <= 0 {
		opts.MinFontSize = 12
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.NullColor == nil {
		opts.NullColor = neutralColor
	}
	return opts
}

// Layout places each word on the canvas along an outward spiral, rejecting
// positions that overlap earlier (larger) words. Words that cannot be placed
// are skipped. Identical input and seed yield identical placements.
func Layout(stats []domain.WordStat, opts Options) []Placement {
	opts = withDefaults(opts)
	rng := rand.New(rand.NewSource(opts.Seed))

	maxCount := 0
	for _, s := range stats {
		if s.Count > maxCount {
			maxCount = s.Count
		}
	}
	if maxCount == 0 {
		return nil
	}

	measure := gg.NewContext(1, 1)

	var placements []Placement
	var boxes []box
	for _, s := range stats {
		size := fontSize(s.Count, maxCount, opts)
		measure.SetFontFace(truetype.NewFace(fontData, &truetype.Options{Size: size}))
		w, h := measure.MeasureString(s.Word)

		x, y, ok := place(rng, w, h, boxes, opts)
		if !ok {
			continue
		}

		placements = append(placements, Placement{
			Word:  s.Word,
			X:     x,
			Y:     y,
			Size:  size,
			W:     w,
			H:     h,
			Color: scoreColor(s.Score, opts),
		})
		boxes = append(boxes, box{x0: x - w/2, y0: y - h/2, x1: x + w/2, y1: y + h/2}.pad(2))
	}
	return placements
}

// Render rasterizes the layout of stats to an image.
func Render(stats []domain.WordStat, opts Options) image.Image {
	opts = withDefaults(opts)
	placements := Layout(stats, opts)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(opts.Background)
	dc.Clear()

	for _, p := range placements {
		dc.SetFontFace(truetype.NewFace(fontData, &truetype.Options{Size: p.Size}))
		dc.SetColor(p.Color)
		dc.DrawStringAnchored(p.Word, p.X, p.Y, 0.5, 0.5)
	}
	return dc.Image()
}

// SavePNG renders stats and writes the image to path.
func SavePNG(path string, stats []domain.WordStat, opts Options) error {
	if err := gg.SavePNG(path, Render(stats, opts)); err != nil {
		return fmt.Errorf("writing word cloud: %w", err)
	}
	return nil
}

// fontSize scales glyph size with the square root of the relative count, so
// area rather than height tracks frequency.
func fontSize(count, maxCount int, opts Options) float64 {
	scale := math.Sqrt(float64(count) / float64(maxCount))
	size := opts.MaxFontSize * scale
	if size < opts.MinFontSize {
		size = opts.MinFontSize
	}
	return size
}

const (
	spiralStep    = 2.0
	spiralTurns   = 120.0
	placeAttempts = 2000
)

func place(rng *rand.Rand, w, h float64, boxes []box, opts Options) (float64, float64, bool) {
	cx := float64(opts.Width) / 2
	cy := float64(opts.Height) / 2
	startAngle := rng.Float64() * 2 * math.Pi

	for i := 0; i < placeAttempts; i++ {
		t := float64(i) / placeAttempts
		angle := startAngle + t*spiralTurns
		radius := t * math.Min(float64(opts.Width), float64(opts.Height)) / spiralStep

		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)

		candidate := box{x0: x - w/2, y0: y - h/2, x1: x + w/2, y1: y + h/2}
		if candidate.x0 < 0 || candidate.y0 < 0 ||
			candidate.x1 > float64(opts.Width) || candidate.y1 > float64(opts.Height) {
			continue
		}
		if overlapsAny(candidate, boxes) {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}

type box struct {
	x0, y0, x1, y1 float64
}

func (b box) pad(p float64) box {
	return box{x0: b.x0 - p, y0: b.y0 - p, x1: b.x1 + p, y1: b.y1 + p}
}

func (b box) overlaps(o box) bool {
	return b.x0 < o.x1 && o.x0 < b.x1 && b.y0 < o.y1 && o.y0 < b.y1
}

func overlapsAny(b box, boxes []box) bool {
	for _, o := range boxes {
		if b.overlaps(o) {
			return true
		}
	}
	return false
}

// scoreColor maps a score in [-5, 5] onto the negative-neutral-positive
// gradient; nil scores use the configured null color.
func scoreColor(score *int, opts Options) color.Color {
	if score == nil {
		return opts.NullColor
	}

	s := float64(*score)
	if s < -5 {
		s = -5
	}
	if s > 5 {
		s = 5
	}
	if s < 0 {
		return lerp(neutralColor, negativeColor, -s/5)
	}
	return lerp(neutralColor, positiveColor, s/5)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: 0xFF,
	}
}
