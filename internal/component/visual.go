// internal/component/visual.go
package component

// Tween interpolates a scalar from From to To over Duration seconds.
type Tween struct {
	From     float64
	To       float64
	Timer    float64 // сколько времени эффект уже активен
	Duration float64 // общая продолжительность эффекта
}

// Done reports whether the tween has reached its end.
func (t *Tween) Done() bool {
	return t.Timer >= t.Duration
}

// Progress returns linear progress in [0,1].
func (t *Tween) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := t.Timer / t.Duration
	if p > 1 {
		return 1
	}
	return p
}

// LayerFade tweens the look of one layer during a shift.
type LayerFade struct {
	Brightness Tween
	Opacity    *Tween // nil when the opacity stays unchanged
}
