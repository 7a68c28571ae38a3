// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-layer-dive/internal/config"
	"go-layer-dive/internal/interfaces"
	"go-layer-dive/pkg/render"
)

const (
	hudMargin     = 12
	hudLineHeight = 20
	hudPanelWidth = 250
	bannerSpacing = 38
	maxBanners    = 3
)

var _ interfaces.HUD = (*HUD)(nil)

// HUDStats is the live part of the HUD, read every frame.
type HUDStats struct {
	Charges       int
	TimeRemaining float64
	GameTime      float64
	Score         int
	BestScore     int
	Speed         float64
	Depth         int
}

// HUD shows the run economy, timers and transient banners.
type HUD struct {
	DiveCost       int
	RewardCount    int
	NextDiveCost   int
	NextTimeBudget float64

	fonts   *render.Fonts
	banners *BannerStack
	depth   *DepthIndicator
	timer   *TimerIndicator
}

func NewHUD(fonts *render.Fonts) *HUD {
	return &HUD{
		fonts:   fonts,
		banners: NewBannerStack(maxBanners),
		depth:   NewDepthIndicator(config.ScreenWidth/2, 48, fonts.Banner),
		timer:   NewTimerIndicator(config.ScreenWidth-config.IndicatorOffsetX*2, config.IndicatorOffsetX*2+40, config.IndicatorRadius),
	}
}

func (h *HUD) UpdateEconomyDisplay(diveCost, rewardCount, nextDiveCost int, nextTimeBudget float64) {
	h.DiveCost = diveCost
	h.RewardCount = rewardCount
	h.NextDiveCost = nextDiveCost
	h.NextTimeBudget = nextTimeBudget
}

func (h *HUD) ShowWarning(msg string) {
	h.banners.Push(msg, config.WarningColor)
}

func (h *HUD) ShowPenaltyNotice(msg string) {
	h.banners.Push(msg, config.PenaltyColor)
}

// ShowMessage shows a neutral banner.
func (h *HUD) ShowMessage(msg string) {
	h.banners.Push(msg, config.TextLightColor)
}

// HandleClick dives when the timer ring is clicked. It reports whether the
// click was consumed.
func (h *HUD) HandleClick(x, y int, game interfaces.Game) bool {
	if !h.timer.IsClicked(x, y) {
		return false
	}
	h.timer.HandleClick()
	if !game.IsPaused() {
		game.RequestDive()
	}
	return true
}

// Banners exposes the visible messages.
func (h *HUD) Banners() []*Banner {
	return h.banners.Visible()
}

// Reset clears banners between runs.
func (h *HUD) Reset() {
	h.banners.Clear()
}

func (h *HUD) Update(deltaTime float64) {
	h.banners.Update(deltaTime)
}

// Lines renders the panel text.
func (h *HUD) Lines(s HUDStats) []string {
	return []string{
		fmt.Sprintf("Charges: %d", s.Charges),
		fmt.Sprintf("Dive cost: %d", h.DiveCost),
		fmt.Sprintf("Charges on layer: %d", h.RewardCount),
		fmt.Sprintf("Next dive cost: %d", h.NextDiveCost),
		fmt.Sprintf("Next layer time: %s", formatClock(h.NextTimeBudget)),
		fmt.Sprintf("Layer time: %s", formatClock(s.TimeRemaining)),
		fmt.Sprintf("Game time: %s", formatClock(s.GameTime)),
		fmt.Sprintf("Score: %d  Best: %d", s.Score, s.BestScore),
		fmt.Sprintf("Speed: %.0f", s.Speed),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s HUDStats, budget float64) {
	lines := h.Lines(s)
	panelH := float32(len(lines)*hudLineHeight + hudMargin)
	vector.DrawFilledRect(screen, hudMargin, hudMargin, hudPanelWidth, panelH, config.PanelColor, false)
	for i, line := range lines {
		c := config.TextLightColor
		if i == 5 && s.TimeRemaining <= config.WarningThreshold {
			c = config.WarningColor
		}
		text.Draw(screen, line, h.fonts.Regular, hudMargin*2, hudMargin+hudLineHeight*(i+1), c)
	}

	h.depth.Draw(screen, s.Depth)
	h.timer.Draw(screen, s.TimeRemaining, budget)

	y := config.ScreenHeight/2 - bannerSpacing*len(h.banners.Visible())/2
	for _, b := range h.banners.Visible() {
		c := render.WithAlpha(b.Color, b.Alpha())
		x := (config.ScreenWidth - render.TextWidth(h.fonts.Banner, b.Text)) / 2
		text.Draw(screen, b.Text, h.fonts.Banner, x, y, c)
		y += bannerSpacing
	}
}

// formatClock prints seconds as m:ss.
func formatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
