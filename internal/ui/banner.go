// internal/ui/banner.go
package ui

import (
	"image/color"

	"go-layer-dive/internal/config"
)

// Banner is a transient message that stays fully visible, then fades out.
type Banner struct {
	Text  string
	Color color.RGBA
	age   float64
}

// Alpha returns the current opacity in [0,1].
func (b *Banner) Alpha() float64 {
	if b.age <= config.BannerDuration {
		return 1
	}
	fade := (b.age - config.BannerDuration) / config.BannerFade
	if fade >= 1 {
		return 0
	}
	return 1 - fade
}

func (b *Banner) expired() bool {
	return b.age >= config.BannerDuration+config.BannerFade
}

// BannerStack keeps the visible banners, newest last. A banner with the same
// text as a visible one restarts it instead of stacking a duplicate.
type BannerStack struct {
	items []*Banner
	limit int
}

func NewBannerStack(limit int) *BannerStack {
	if limit <= 0 {
		limit = 1
	}
	return &BannerStack{limit: limit}
}

func (s *BannerStack) Push(text string, c color.RGBA) {
	for _, b := range s.items {
		if b.Text == text {
			b.age = 0
			b.Color = c
			return
		}
	}
	s.items = append(s.items, &Banner{Text: text, Color: c})
	if len(s.items) > s.limit {
		s.items = s.items[len(s.items)-s.limit:]
	}
}

func (s *BannerStack) Update(deltaTime float64) {
	kept := s.items[:0]
	for _, b := range s.items {
		b.age += deltaTime
		if !b.expired() {
			kept = append(kept, b)
		}
	}
	s.items = kept
}

// Visible returns the live banners, oldest first.
func (s *BannerStack) Visible() []*Banner {
	return s.items
}

func (s *BannerStack) Clear() {
	s.items = s.items[:0]
}
