// internal/ui/depth_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-layer-dive/internal/config"
	"go-layer-dive/pkg/render"
)

// DepthIndicator отображает текущую глубину римскими цифрами.
type DepthIndicator struct {
	X, Y             int
	Color            color.RGBA
	MilestoneColor   color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	face             font.Face
}

func NewDepthIndicator(x, y int, face font.Face) *DepthIndicator {
	return &DepthIndicator{
		X:                x,
		Y:                y,
		Color:            config.PlayerColor,
		MilestoneColor:   config.WarningColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 2,
		face:             face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *DepthIndicator) Draw(screen *ebiten.Image, depth int) {
	if depth <= 0 {
		return
	}
	label := toRoman(depth)
	textColor := i.Color
	if depth%10 == 0 {
		textColor = i.MilestoneColor
	}

	x := i.X - render.TextWidth(i.face, label)/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.face, x, i.Y, textColor)
}
