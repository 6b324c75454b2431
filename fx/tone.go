package fx

import (
	"encoding/binary"
	"math"
)

// toneAttack and toneRelease shape the envelope in seconds.
const (
	toneAttack  = 0.005
	toneRelease = 0.04
)

// Tone renders a decaying square-ish blip as 16-bit little endian stereo
// PCM. Frequency or duration at or below zero yields no samples.
func Tone(frequency, duration, volume float64, sampleRate int) []byte {
	if frequency <= 0 || duration <= 0 || sampleRate <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))

	n := int(math.Round(duration * float64(sampleRate)))
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		phase := 2 * math.Pi * frequency * t
		// Odd harmonics give the blip some bite.
		s := math.Sin(phase) + math.Sin(3*phase)/3 + math.Sin(5*phase)/5
		s *= envelope(t, duration) * volume / 1.6

		v := int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}

func envelope(t, duration float64) float64 {
	if t < toneAttack {
		return t / toneAttack
	}
	if left := duration - t; left < toneRelease {
		return math.Max(0, left/toneRelease)
	}
	decay := (t - toneAttack) / duration
	return math.Exp(-3 * decay)
}
