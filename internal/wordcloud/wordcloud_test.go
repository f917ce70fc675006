package wordcloud

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrennie/sentiment-analysis/internal/domain"
)

func intp(v int) *int { return &v }

func sampleStats() []domain.WordStat {
	return []domain.WordStat{
		{Word: "love", Count: 12, Score: intp(3)},
		{Word: "night", Count: 8, Score: nil},
		{Word: "dead", Count: 6, Score: intp(-3)},
		{Word: "girl", Count: 5, Score: nil},
		{Word: "secret", Count: 3, Score: nil},
	}
}

func TestLayout_SameSeedSameResult(t *testing.T) {
	opts := Options{Width: 600, Height: 400, Seed: 42}

	first := Layout(sampleStats(), opts)
	second := Layout(sampleStats(), opts)
	assert.Equal(t, first, second)
}

func TestLayout_DifferentSeedsDiffer(t *testing.T) {
	stats := sampleStats()

	first := Layout(stats, Options{Width: 600, Height: 400, Seed: 1})
	second := Layout(stats, Options{Width: 600, Height: 400, Seed: 2})
	require.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestLayout_PlacementsInsideCanvas(t *testing.T) {
	opts := Options{Width: 600, Height: 400, Seed: 42}

	for _, p := range Layout(sampleStats(), opts) {
		assert.GreaterOrEqual(t, p.X-p.W/2, 0.0, "word %q left edge", p.Word)
		assert.GreaterOrEqual(t, p.Y-p.H/2, 0.0, "word %q top edge", p.Word)
		assert.LessOrEqual(t, p.X+p.W/2, 600.0, "word %q right edge", p.Word)
		assert.LessOrEqual(t, p.Y+p.H/2, 400.0, "word %q bottom edge", p.Word)
	}
}

func TestLayout_NoOverlap(t *testing.T) {
	placements := Layout(sampleStats(), Options{Width: 600, Height: 400, Seed: 42})

	for i := range placements {
		for j := i + 1; j < len(placements); j++ {
			a, b := placements[i], placements[j]
			ab := box{x0: a.X - a.W/2, y0: a.Y - a.H/2, x1: a.X + a.W/2, y1: a.Y + a.H/2}
			bb := box{x0: b.X - b.W/2, y0: b.Y - b.H/2, x1: b.X + b.W/2, y1: b.Y + b.H/2}
			assert.False(t, ab.overlaps(bb), "%q overlaps %q", a.Word, b.Word)
		}
	}
}

func TestLayout_BiggerCountBiggerGlyph(t *testing.T) {
	placements := Layout(sampleStats(), Options{Width: 600, Height: 400, Seed: 42})
	require.NotEmpty(t, placements)

	bySize := map[string]float64{}
	for _, p := range placements {
		bySize[p.Word] = p.Size
	}
	if love, ok := bySize["love"]; ok {
		if secret, ok := bySize["secret"]; ok {
			assert.Greater(t, love, secret)
		}
	}
}

func TestLayout_Empty(t *testing.T) {
	assert.Empty(t, Layout(nil, Options{Width: 600, Height: 400, Seed: 42}))
}

func TestScoreColor(t *testing.T) {
	opts := withDefaults(Options{})

	assert.Equal(t, opts.NullColor, scoreColor(nil, opts))
	assert.Equal(t, color.Color(positiveColor), scoreColor(intp(5), opts))
	assert.Equal(t, color.Color(negativeColor), scoreColor(intp(-5), opts))
	assert.Equal(t, color.Color(neutralColor), scoreColor(intp(0), opts))
}

func TestRender_CanvasSize(t *testing.T) {
	img := Render(sampleStats(), Options{Width: 320, Height: 200, Seed: 42})

	bounds := img.Bounds()
	assert.Equal(t, 320, bounds.Dx())
	assert.Equal(t, 200, bounds.Dy())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloud.png")

	err := SavePNG(path, sampleStats(), Options{Width: 320, Height: 200, Seed: 42})
	require.NoError(t, err)
	assert.FileExists(t, path)
}
