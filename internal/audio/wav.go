package audio

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavBitDepth = 16

// WriteWAV renders a cue and writes it as 16-bit mono PCM WAV.
func WriteWAV(w io.WriteSeeker, c Cue, sampleRate int) error {
	samples := Render(c, sampleRate)
	if samples == nil {
		return fmt.Errorf("unknown cue %q", c)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(math.Round(float64(s) * math.MaxInt16))
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}

	enc := wav.NewEncoder(w, sampleRate, wavBitDepth, 1, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize %s: %w", c, err)
	}
	return nil
}
