// pkg/render/font.go
package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the faces used by the HUD and the menus.
type Fonts struct {
	Regular font.Face
	Title   font.Face
	Banner  font.Face
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := newFace(goregular.TTF, 14)
	if err != nil {
		return nil, err
	}
	title, err := newFace(gobold.TTF, 20)
	if err != nil {
		return nil, err
	}
	banner, err := newFace(gobold.TTF, 28)
	if err != nil {
		return nil, err
	}
	return &Fonts{Regular: regular, Title: title, Banner: banner}, nil
}

func newFace(data []byte, size float64) (font.Face, error) {
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// TextWidth measures s in pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Round()
}
