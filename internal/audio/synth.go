package audio

import "math"

// SampleRate is the rate cues are rendered at for playback.
const SampleRate = 44100

// Render synthesizes a cue as mono samples in [-1, 1]. The output is
// deterministic; an unknown cue renders to nil.
func Render(c Cue, sampleRate int) []float32 {
	voices := cueVoices[c]
	if len(voices) == 0 || sampleRate <= 0 {
		return nil
	}
	n := int(math.Round(Duration(c) * float64(sampleRate)))
	mix := make([]float64, n)
	for _, v := range voices {
		renderVoice(mix, v, sampleRate)
	}
	out := make([]float32, n)
	for i, s := range mix {
		out[i] = float32(max(-1, min(1, s)))
	}
	return out
}

func renderVoice(mix []float64, v Voice, sampleRate int) {
	sr := float64(sampleRate)
	start := int(math.Round(v.Offset * sr))
	length := int(math.Round(v.Stop * sr))

	var lp *biquad
	if v.Lowpass > 0 {
		lp = newLowpass(v.Lowpass, sr)
	}

	var phase float64
	for i := 0; i < length && start+i < len(mix); i++ {
		t := float64(i) / sr
		s := oscillate(v.Wave, phase)
		phase += v.Freq.At(t) / sr
		phase -= math.Floor(phase)
		if lp != nil {
			s = lp.process(s)
		}
		mix[start+i] += s * v.Gain.At(t)
	}
}

// oscillate returns the waveform value at phase in [0, 1).
func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case Triangle:
		return 1 - 4*math.Abs(phase-0.5)
	case Sawtooth:
		return 2*phase - 1
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// biquad is a second-order IIR filter in direct form I.
type biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

const butterworthQ = math.Sqrt2 / 2

// newLowpass returns a low-pass filter using the RBJ cookbook coefficients.
func newLowpass(cutoff, sampleRate float64) *biquad {
	cutoff = min(cutoff, sampleRate/2*0.99)
	w0 := 2 * math.Pi * cutoff / sampleRate
	alpha := math.Sin(w0) / (2 * butterworthQ)
	cosw := math.Cos(w0)
	a0 := 1 + alpha
	return &biquad{
		b0: (1 - cosw) / 2 / a0,
		b1: (1 - cosw) / a0,
		b2: (1 - cosw) / 2 / a0,
		a1: -2 * cosw / a0,
		a2: (1 - alpha) / a0,
	}
}

func (f *biquad) process(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}
