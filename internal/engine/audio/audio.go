// Package audio plays pick feedback sounds.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playing before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Manager mixes short sound effects onto the speaker.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64 // 0.0 to 1.0

	mixer *beep.Mixer
	sfx   map[string][]byte
}

// New creates a new audio manager.
func New(volume float64) *Manager {
	return &Manager{
		sampleRate: DefaultSampleRate,
		volume:     clamp(volume, 0, 1),
		mixer:      &beep.Mixer{},
		sfx:        make(map[string][]byte),
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close stops all sounds.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		speaker.Clear()
		m.initialized = false
	}
	return nil
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// GetVolume returns the volume.
func (m *Manager) GetVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// PlayTone plays a sine blip that fades out over duration.
func (m *Manager) PlayTone(freq float64, duration time.Duration) error {
	m.mu.RLock()
	initialized, sr, vol := m.initialized, m.sampleRate, m.volume
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}

	tone, err := Tone(sr, freq, duration)
	if err != nil {
		return err
	}
	m.add(withVolume(tone, vol))
	return nil
}

// Tone returns a finite sine streamer with a linear fade out.
func Tone(sr beep.SampleRate, freq float64, duration time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}
	total := sr.N(duration)
	return fadeOut(beep.Take(total, sine), total), nil
}

// fadeOut scales samples linearly from 1 to 0 over total samples.
func fadeOut(s beep.Streamer, total int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			gain := 1 - float64(pos)/float64(total)
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}
		return n, ok
	})
}

// LoadSFX reads a WAV file once and caches it under its path.
func (m *Manager) LoadSFX(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read sfx: %w", err)
	}
	// Decode once up front so a bad file fails at load, not at play
	if _, _, err := wav.Decode(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("decode wav %s: %w", path, err)
	}

	m.mu.Lock()
	m.sfx[path] = data
	m.mu.Unlock()
	return nil
}

// PlayLoaded plays a WAV previously loaded with LoadSFX.
func (m *Manager) PlayLoaded(path string) error {
	m.mu.RLock()
	data, ok := m.sfx[path]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("sfx %s not loaded", path)
	}
	return m.PlaySFX(data)
}

// PlaySFX plays a sound effect from WAV data.
func (m *Manager) PlaySFX(data []byte) error {
	m.mu.RLock()
	initialized, sr, vol := m.initialized, m.sampleRate, m.volume
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}

	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}

	var resampled beep.Streamer = streamer
	if format.SampleRate != sr {
		resampled = beep.Resample(4, format.SampleRate, sr, streamer)
	}

	m.add(withVolume(resampled, vol))
	return nil
}

func (m *Manager) add(s beep.Streamer) {
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

func withVolume(s beep.Streamer, vol float64) *effects.Volume {
	return &effects.Volume{
		Streamer: s,
		Base:     10,
		Volume:   volumeToDb(vol) / 20,
		Silent:   vol <= 0,
	}
}

// volumeToDb converts a 0-1 volume to decibels: 1 is 0dB, 0.5 about -6dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
