package sparks

// TextSegment is one colored phrase of a scene.
type TextSegment struct {
	Text  string
	Color HSL
}

// Scene is one timed unit of the timeline. Scenes are immutable once handed
// to an Engine.
type Scene struct {
	// HoldTicks is how many ticks the scene stays at full opacity.
	HoldTicks int
	// FadeInRate is the opacity added per tick while entering.
	// Zero means the scene appears instantly.
	FadeInRate float64
	// FadeOutRate is the opacity removed per tick while exiting.
	// Zero means the scene disappears instantly.
	FadeOutRate float64
	// Segments are laid out left to right on a single line.
	Segments []TextSegment
}

// Text returns the concatenation of all segment texts.
func (s Scene) Text() string {
	n := 0
	for _, seg := range s.Segments {
		n += len(seg.Text)
	}
	b := make([]byte, 0, n)
	for _, seg := range s.Segments {
		b = append(b, seg.Text...)
	}
	return string(b)
}
