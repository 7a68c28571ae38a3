// internal/ui/text_field.go
package ui

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-layer-dive/internal/config"
)

// TextField is a single-line input for the player name.
type TextField struct {
	X, Y, Width int
	MaxLen      int
	value       []rune
	blink       float64
	face        font.Face
}

func NewTextField(x, y, width, maxLen int, initial string, face font.Face) *TextField {
	return &TextField{X: x, Y: y, Width: width, MaxLen: maxLen, value: []rune(initial), face: face}
}

func (f *TextField) Value() string {
	return string(f.value)
}

// Type appends printable runes up to MaxLen.
func (f *TextField) Type(chars []rune) {
	for _, r := range chars {
		if len(f.value) >= f.MaxLen {
			return
		}
		if unicode.IsPrint(r) && !(len(f.value) == 0 && unicode.IsSpace(r)) {
			f.value = append(f.value, r)
		}
	}
}

func (f *TextField) Backspace() {
	if len(f.value) > 0 {
		f.value = f.value[:len(f.value)-1]
	}
}

// Update reads this tick's keyboard input.
func (f *TextField) Update(deltaTime float64, backspace bool) {
	f.blink += deltaTime
	f.Type(ebiten.AppendInputChars(nil))
	if backspace {
		f.Backspace()
	}
}

func (f *TextField) Draw(screen *ebiten.Image) {
	h := float32(32)
	vector.DrawFilledRect(screen, float32(f.X), float32(f.Y), float32(f.Width), h, config.PanelColor, false)
	vector.StrokeRect(screen, float32(f.X), float32(f.Y), float32(f.Width), h, config.StrokeWidth, config.IndicatorStroke, false)

	s := string(f.value)
	if int(f.blink*2)%2 == 0 {
		s += "_"
	}
	text.Draw(screen, s, f.face, f.X+8, f.Y+22, config.TextLightColor)
}
