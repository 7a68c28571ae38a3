package ui

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-layer-dive/internal/config"
	"go-layer-dive/pkg/render"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{0: "", -3: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for in, want := range tests {
		assert.Equal(t, want, toRoman(in), "toRoman(%d)", in)
	}
}

func TestBannerFade(t *testing.T) {
	s := NewBannerStack(2)
	s.Push("a", config.WarningColor)
	require.Len(t, s.Visible(), 1)

	s.Update(config.BannerDuration)
	assert.Equal(t, 1.0, s.Visible()[0].Alpha())

	s.Update(config.BannerFade / 2)
	assert.InDelta(t, 0.5, s.Visible()[0].Alpha(), 1e-9)

	s.Update(config.BannerFade)
	assert.Empty(t, s.Visible())
}

func TestBannerStackDedupAndLimit(t *testing.T) {
	s := NewBannerStack(2)
	s.Push("a", config.WarningColor)
	s.Update(1)
	s.Push("a", config.PenaltyColor)
	require.Len(t, s.Visible(), 1)
	assert.Equal(t, 1.0, s.Visible()[0].Alpha())
	assert.Equal(t, config.PenaltyColor, s.Visible()[0].Color)

	s.Push("b", config.WarningColor)
	s.Push("c", config.WarningColor)
	require.Len(t, s.Visible(), 2)
	assert.Equal(t, "b", s.Visible()[0].Text)
	assert.Equal(t, "c", s.Visible()[1].Text)
}

func TestHUD(t *testing.T) {
	fonts, err := render.LoadFonts()
	require.NoError(t, err)
	h := NewHUD(fonts)

	h.UpdateEconomyDisplay(15, 9, 20, 81)
	lines := h.Lines(HUDStats{Charges: 3, TimeRemaining: 65.4, GameTime: 5, Score: 12, BestScore: 40, Speed: 43, Depth: 2})
	assert.Contains(t, lines, "Charges: 3")
	assert.Contains(t, lines, "Dive cost: 15")
	assert.Contains(t, lines, "Charges on layer: 9")
	assert.Contains(t, lines, "Next dive cost: 20")
	assert.Contains(t, lines, "Next layer time: 1:21")
	assert.Contains(t, lines, "Layer time: 1:05")
	assert.Contains(t, lines, "Score: 12  Best: 40")

	h.ShowPenaltyNotice(config.PenaltyNotice)
	h.ShowWarning("hurry")
	require.Len(t, h.Banners(), 2)
	assert.Equal(t, config.PenaltyColor, h.Banners()[0].Color)

	h.Reset()
	assert.Empty(t, h.Banners())
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", formatClock(-1))
	assert.Equal(t, "0:09", formatClock(9.99))
	assert.Equal(t, "2:00", formatClock(120))
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.0, Fraction(5, 0))
	assert.Equal(t, 0.5, Fraction(5, 10))
	assert.Equal(t, 1.0, Fraction(12, 10))
	assert.Equal(t, 0.0, Fraction(-1, 10))
}

func TestTextField(t *testing.T) {
	f := NewTextField(0, 0, 200, 5, "", nil)
	f.Type([]rune(" Ann\n"))
	assert.Equal(t, "Ann", f.Value(), "leading space and control runes are dropped")

	f.Type([]rune("abcdef"))
	assert.Equal(t, "Annab", f.Value())

	f.Backspace()
	f.Backspace()
	assert.Equal(t, "Ann", f.Value())
}

func TestButtonsHitTest(t *testing.T) {
	b := NewButton(image.Rect(10, 10, 110, 50), "Replay", nil)
	assert.True(t, b.Contains(10, 10))
	assert.True(t, b.Contains(60, 30))
	assert.False(t, b.Contains(110, 50))

	p := NewPauseButton(100, 100, 10, config.ButtonColor, config.PlayerColor)
	assert.True(t, p.Contains(105, 105))
	assert.False(t, p.Contains(130, 100))

	now := time.Now()
	p.TogglePause()
	assert.True(t, p.IsPaused)
	assert.False(t, p.Debounced(now))
	assert.True(t, p.Debounced(now.Add(time.Second)))
}

type fakeGame struct {
	dives  int
	paused bool
}

func (g *fakeGame) RequestDive()   { g.dives++ }
func (g *fakeGame) Pause()         { g.paused = true }
func (g *fakeGame) Unpause()       { g.paused = false }
func (g *fakeGame) IsPaused() bool { return g.paused }

func TestTimerRingClickDives(t *testing.T) {
	fonts, err := render.LoadFonts()
	require.NoError(t, err)
	h := NewHUD(fonts)
	g := &fakeGame{}

	assert.False(t, h.HandleClick(0, 0, g))
	assert.Zero(t, g.dives)

	x, y := int(h.timer.X), int(h.timer.Y)
	assert.True(t, h.HandleClick(x, y, g))
	assert.Equal(t, 1, g.dives)

	g.paused = true
	assert.True(t, h.HandleClick(x, y, g))
	assert.Equal(t, 1, g.dives)
}
