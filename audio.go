package sill

// Mixer is the audio sibling's channel surface. The windowing core never
// plays anything itself; it only tells the mixer which viewport is worth
// listening to and how much to attenuate for zoom.
type Mixer interface {
	Play(channel int, sound uint32, loop bool)
	Stop(channel int)
	SetVolume(channel int, volume int)
	SetPan(channel int, pan float64)
	SetRate(channel int, rate float64)
}

// ListeningViewport returns the topmost sound-on viewport, its owning
// window, and the zoom-derived volume attenuation in decibel-like units
// (0 at full zoom-in, then 30, then 60 for anything further out). ok is
// false when no viewport is listening.
func (d *Desktop) ListeningViewport() (v *Viewport, w *Window, attenuation int, ok bool) {
	for i := len(d.windows) - 1; i >= 0; i-- {
		w = d.windows[i]
		v = w.Viewport
		if v == nil || v.Flags&ViewportSoundOn == 0 {
			continue
		}
		switch v.Zoom {
		case 0:
			attenuation = 0
		case 1:
			attenuation = 30
		default:
			attenuation = 60
		}
		return v, w, attenuation, true
	}
	return nil, nil, 0, false
}
