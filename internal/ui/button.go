// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-layer-dive/internal/config"
	"go-layer-dive/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	face       font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: render.DarkenColor(config.ButtonColor),
		face:       face,
	}
}

// Contains проверяет, находится ли точка внутри кнопки.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку; hovered выбирает цвет подсветки.
func (b *Button) Draw(screen *ebiten.Image, hovered bool) {
	bg := b.BgColor
	if hovered {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth, config.IndicatorStroke, false)

	tx := b.Rect.Min.X + (b.Rect.Dx()-render.TextWidth(b.face, b.Text))/2
	ty := b.Rect.Min.Y + b.Rect.Dy()/2 + config.TextOffsetY
	text.Draw(screen, b.Text, b.face, tx, ty, b.TextColor)
}
