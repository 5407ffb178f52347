package audio

import "sync"

// Player renders cues on demand and sends them to an Output. Playback
// failures are dropped silently; sound is never allowed to break the game.
type Player struct {
	out Output

	mu    sync.Mutex
	cache map[Cue][]float32
}

// NewPlayer creates a Player. A nil out discards all sound.
func NewPlayer(out Output) *Player {
	if out == nil {
		out = Discard
	}
	return &Player{out: out, cache: make(map[Cue][]float32)}
}

// Play starts a cue and returns immediately. Unknown cues are ignored.
func (p *Player) Play(c Cue) {
	samples := p.samples(c)
	if samples == nil {
		return
	}
	_ = p.out.Play(samples)
}

func (p *Player) samples(c Cue) []float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.cache[c]; ok {
		return s
	}
	s := Render(c, p.out.SampleRate())
	if s != nil {
		p.cache[c] = s
	}
	return s
}
