package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Output plays rendered samples.
type Output interface {
	// SampleRate is the rate samples passed to Play must be rendered at.
	SampleRate() int

	// Play starts playback of mono samples and returns without waiting
	// for it to finish.
	Play(samples []float32) error
}

var (
	// ErrUnavailable is returned when the audio device cannot be opened.
	ErrUnavailable = errors.New("audio output unavailable")

	// ErrNotReady is returned by Play while the device is still opening.
	// The cue is dropped.
	ErrNotReady = errors.New("audio output still opening")
)

// Discard is an Output that drops everything.
var Discard Output = discard{}

type discard struct{}

func (discard) SampleRate() int              { return SampleRate }
func (discard) Play(samples []float32) error { return nil }

// IdleSuspend is how long after the last Play the device is suspended,
// once nothing is still sounding.
const IdleSuspend = 5 * time.Second

// soundContext is the part of an oto context DeviceOutput drives.
type soundContext interface {
	Suspend() error
	Resume() error
	Err() error
	start(r io.Reader) voice
}

// voice is one sound in flight. *oto.Player satisfies it.
type voice interface {
	IsPlaying() bool
	Close() error
}

type otoContext struct{ *oto.Context }

func (c otoContext) start(r io.Reader) voice {
	p := c.NewPlayer(r)
	p.Play()
	return p
}

func openOto() (soundContext, <-chan struct{}, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, nil, err
	}
	return otoContext{ctx}, ready, nil
}

// DeviceOutput plays samples on the system audio device. The device is
// opened in the background by Warm or the first Play, and suspended after
// it has been idle for idleAfter.
type DeviceOutput struct {
	open      func() (soundContext, <-chan struct{}, error)
	idleAfter time.Duration

	mu        sync.Mutex
	started   bool
	done      chan struct{} // closed once opening finished
	ctx       soundContext
	openErr   error
	suspended bool
	playing   []voice
	idle      *time.Timer
}

var (
	deviceOnce sync.Once
	device     *DeviceOutput
)

// Device returns the process-wide device output. Only one audio device
// context may exist per process.
func Device() *DeviceOutput {
	deviceOnce.Do(func() { device = newDeviceOutput(openOto, IdleSuspend) })
	return device
}

func newDeviceOutput(open func() (soundContext, <-chan struct{}, error), idleAfter time.Duration) *DeviceOutput {
	return &DeviceOutput{open: open, idleAfter: idleAfter, done: make(chan struct{})}
}

func (d *DeviceOutput) SampleRate() int { return SampleRate }

// Warm starts opening the device without waiting for it.
func (d *DeviceOutput) Warm() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.warm()
}

func (d *DeviceOutput) warm() {
	if d.started {
		return
	}
	d.started = true
	go func() {
		ctx, ready, err := d.open()
		if err == nil {
			<-ready
		}
		d.mu.Lock()
		if err != nil {
			d.openErr = fmt.Errorf("%w: %w", ErrUnavailable, err)
		} else {
			d.ctx = ctx
		}
		d.mu.Unlock()
		close(d.done)
	}()
}

// Wait opens the device if needed and blocks until it is usable.
func (d *DeviceOutput) Wait() error {
	d.Warm()
	<-d.done
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.openErr
}

// Play implements Output. It never waits for the device to open.
func (d *DeviceOutput) Play(samples []float32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.warm()
	if d.openErr != nil {
		return d.openErr
	}
	if d.ctx == nil {
		return ErrNotReady
	}
	if d.suspended {
		if err := d.ctx.Resume(); err != nil {
			return fmt.Errorf("resume audio: %w", err)
		}
		d.suspended = false
	}
	if err := d.ctx.Err(); err != nil {
		return fmt.Errorf("audio device: %w", err)
	}

	d.reap()
	d.playing = append(d.playing, d.ctx.start(bytes.NewReader(encodeFloat32LE(samples))))
	d.scheduleIdle()
	return nil
}

// Suspend pauses the device. The next Play resumes it.
func (d *DeviceOutput) Suspend() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.suspend()
}

func (d *DeviceOutput) suspend() error {
	if d.ctx == nil || d.suspended {
		return nil
	}
	if err := d.ctx.Suspend(); err != nil {
		return err
	}
	d.suspended = true
	return nil
}

// Suspended reports whether the device is currently suspended.
func (d *DeviceOutput) Suspended() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.suspended
}

// scheduleIdle restarts the idle countdown. Called with mu held.
func (d *DeviceOutput) scheduleIdle() {
	if d.idleAfter <= 0 {
		return
	}
	if d.idle != nil {
		d.idle.Stop()
	}
	d.idle = time.AfterFunc(d.idleAfter, d.onIdle)
}

func (d *DeviceOutput) onIdle() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reap()
	if len(d.playing) > 0 {
		d.scheduleIdle()
		return
	}
	_ = d.suspend()
}

// reap closes players that finished. Players must stay referenced while
// playing.
func (d *DeviceOutput) reap() {
	live := d.playing[:0]
	for _, p := range d.playing {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	clear(d.playing[len(live):])
	d.playing = live
}

func encodeFloat32LE(samples []float32) []byte {
	buf := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(s))
	}
	return buf
}
