// Package assets creates the runtime audio players for character sounds.
package assets

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/shooter/ecs/component"
	"github.com/milk9111/shooter/fx"
	"github.com/milk9111/shooter/prefabs"
)

const sampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// Context returns the shared audio context, creating it on first use.
func Context() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// ToneLoader synthesizes sound prefabs into ebiten audio players.
type ToneLoader struct {
	ctx *audio.Context
}

func NewToneLoader() *ToneLoader {
	return &ToneLoader{ctx: Context()}
}

// LoadSound renders the tone described by spec and wraps it in a player.
func (l *ToneLoader) LoadSound(name string, spec prefabs.SoundSpec) (component.SoundPlayer, error) {
	pcm := fx.Tone(spec.Frequency, spec.Duration, 1, l.ctx.SampleRate())
	if len(pcm) == 0 {
		return nil, fmt.Errorf("sound %q: empty tone", name)
	}
	return l.ctx.NewPlayerFromBytes(pcm), nil
}
