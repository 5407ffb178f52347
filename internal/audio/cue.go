package audio

// Cue names one of the synthesized sound effects.
type Cue string

const (
	CueClick   Cue = "click"
	CueCorrect Cue = "correct"
	CueWrong   Cue = "wrong"
	CueVictory Cue = "victory"
	CueStart   Cue = "start"
)

// Cues lists every cue in a stable order.
var Cues = []Cue{CueClick, CueCorrect, CueWrong, CueVictory, CueStart}

// Waveform is the oscillator shape of a voice.
type Waveform int

const (
	Sine Waveform = iota
	Triangle
	Sawtooth
	Square
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	case Square:
		return "square"
	}
	return "unknown"
}

// Voice is one oscillator of a cue. Times in Freq, Gain and Stop are
// seconds relative to Offset.
type Voice struct {
	Wave Waveform

	// Freq is the frequency trajectory in Hz.
	Freq Curve

	// Gain is the amplitude envelope.
	Gain Curve

	// Lowpass is the cutoff of a low-pass filter in Hz. Zero disables it.
	Lowpass float64

	// Offset delays the voice from the start of the cue.
	Offset float64

	// Stop ends the voice.
	Stop float64
}

// End returns the cue-relative time the voice stops.
func (v Voice) End() float64 { return v.Offset + v.Stop }

var (
	majorChord   = []float64{523.25, 659.25, 783.99, 1046.50}
	victoryNotes = []float64{523.25, 659.25, 783.99, 1046.50, 1318.51, 1567.98}
)

// arpeggio builds one voice per note, staggered by step seconds.
func arpeggio(wave Waveform, notes []float64, step, lowpass, peak, attack, release, stop float64) []Voice {
	voices := make([]Voice, len(notes))
	for i, f := range notes {
		voices[i] = Voice{
			Wave: wave,
			Freq: Constant(f),
			Gain: Curve{
				SetAt(0, 0),
				LinearTo(peak, attack),
				ExponentialTo(0.001, release),
			},
			Lowpass: lowpass,
			Offset:  float64(i) * step,
			Stop:    stop,
		}
	}
	return voices
}

var cueVoices = map[Cue][]Voice{
	CueClick: {{
		Wave: Sine,
		Freq: Curve{SetAt(600, 0), ExponentialTo(1000, 0.08)},
		Gain: Curve{SetAt(0.05, 0), ExponentialTo(0.001, 0.08)},
		Stop: 0.08,
	}},
	CueCorrect: arpeggio(Triangle, majorChord, 0.08, 2000, 0.05, 0.02, 0.4, 0.5),
	CueWrong: {{
		Wave: Sawtooth,
		Freq: Curve{SetAt(150, 0), LinearTo(100, 0.3)},
		Gain: Curve{SetAt(0.05, 0), LinearTo(0, 0.3)},
		Stop: 0.3,
	}},
	CueVictory: arpeggio(Square, victoryNotes, 0.08, 1200, 0.04, 0.05, 0.3, 0.4),
	CueStart: {{
		Wave: Sine,
		Freq: Curve{SetAt(200, 0), ExponentialTo(800, 0.3)},
		Gain: Curve{SetAt(0, 0), LinearTo(0.08, 0.1), LinearTo(0, 0.3)},
		Stop: 0.3,
	}},
}

// Voices returns the voices of a cue, or nil for an unknown cue.
func Voices(c Cue) []Voice {
	return cueVoices[c]
}

// Duration returns the length of a cue in seconds.
func Duration(c Cue) float64 {
	var d float64
	for _, v := range cueVoices[c] {
		d = max(d, v.End())
	}
	return d
}
