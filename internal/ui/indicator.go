// internal/ui/indicator.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-layer-dive/internal/config"
)

// TimerIndicator рисует кольцо оставшегося времени слоя. Клик по нему запрашивает погружение.
type TimerIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewTimerIndicator(x, y, radius float32) *TimerIndicator {
	return &TimerIndicator{X: x, Y: y, Radius: radius}
}

// Fraction is the share of the budget left, in [0,1].
func Fraction(remaining, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, remaining/budget))
}

func (i *TimerIndicator) Draw(screen *ebiten.Image, remaining, budget float64) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, config.IndicatorFill, true)

	frac := Fraction(remaining, budget)
	if frac > 0 {
		c := config.IndicatorStroke
		if remaining <= config.WarningThreshold {
			c = config.WarningColor
		}
		var path vector.Path
		start := float32(-math.Pi / 2)
		path.Arc(i.X, i.Y, r+4, start, start+float32(2*math.Pi*frac), vector.Clockwise)
		strokePath(screen, &path, config.StrokeWidth*2, c)
	}
	vector.StrokeCircle(screen, i.X, i.Y, r, config.StrokeWidth, config.IndicatorStroke, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *TimerIndicator) IsClicked(x, y int) bool {
	dx := float32(x) - i.X
	dy := float32(y) - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

func (i *TimerIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
