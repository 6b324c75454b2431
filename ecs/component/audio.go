package component

// SoundPlayer is a rewindable one-shot player.
type SoundPlayer interface {
	IsPlaying() bool
	Rewind() error
	Play()
	SetVolume(volume float64)
}

// Audio queues sounds by name until the audio system plays them.
type Audio struct {
	Players map[string]SoundPlayer
	Volume  map[string]float64
	Pending []string
}

// Play queues a sound. It satisfies fx.SoundSink.
func (a *Audio) Play(name string) {
	a.Pending = append(a.Pending, name)
}

var AudioComponent = NewComponent[Audio]()
