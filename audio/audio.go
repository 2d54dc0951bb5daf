// Package audio wraps ebiten's audio stack behind name-keyed sounds and
// integer channel ids. Sounds are decoded once into memory at load time;
// playback, volume, and pan are addressed per channel. The ECS core never
// calls in here; entities reference sounds through components.SoundEmitter
// and systems drive a Manager with what they read.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

const (
	DefaultSampleRate = 44100

	// maxSounds bounds the name-keyed bank.
	maxSounds = 256
)

// Manager owns the audio context, the loaded sound bank, and a fixed set of
// playback channels.
type Manager struct {
	ctx        *audio.Context
	sampleRate int
	master     float64
	bank       *soundBank
	channels   []*channel
}

type channel struct {
	player *audio.Player
	stream *panStream
	volume float64
	pan    float64
}

// NewManager creates the audio context at the given sample rate with the
// given number of playback channels. Only one Manager may exist per process
// (ebiten allows a single audio context).
func NewManager(sampleRate, channelCount int) *Manager {
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}
	m := &Manager{
		ctx:        audio.NewContext(sampleRate),
		sampleRate: sampleRate,
		master:     1.0,
		bank:       newSoundBank(maxSounds),
		channels:   make([]*channel, channelCount),
	}
	for i := range m.channels {
		m.channels[i] = &channel{volume: 1.0}
	}
	return m
}

// Load decodes an .mp3 or .ogg file into memory under the given name.
// Loading an already-used name replaces the sound.
func (m *Manager) Load(name, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	var stream io.Reader
	switch filepath.Ext(path) {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(m.sampleRate, file)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(m.sampleRate, file)
	default:
		return fmt.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to decode audio file: %w", err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read audio stream: %w", err)
	}
	return m.bank.register(name, pcm)
}

// LoadPCM registers raw 16-bit little-endian stereo samples at the manager's
// sample rate, for procedurally generated sounds.
func (m *Manager) LoadPCM(name string, pcm []byte) error {
	return m.bank.register(name, pcm)
}

// Play starts the named sound on the given channel, replacing whatever that
// channel was playing. The channel's current volume and pan apply.
func (m *Manager) Play(name string, ch int) error {
	c, err := m.channel(ch)
	if err != nil {
		return err
	}
	pcm, ok := m.bank.lookup(name)
	if !ok {
		return fmt.Errorf("unknown sound: %q", name)
	}
	if c.player != nil {
		c.player.Close()
	}
	c.stream = &panStream{ReadSeeker: bytes.NewReader(pcm)}
	c.stream.SetPan(c.pan)
	player, err := m.ctx.NewPlayer(c.stream)
	if err != nil {
		return fmt.Errorf("failed to create audio player: %w", err)
	}
	c.player = player
	c.player.SetVolume(c.volume * m.master)
	c.player.Play()
	return nil
}

// Stop halts and releases the channel's player.
func (m *Manager) Stop(ch int) error {
	c, err := m.channel(ch)
	if err != nil {
		return err
	}
	if c.player != nil {
		c.player.Close()
		c.player = nil
		c.stream = nil
	}
	return nil
}

// Pause suspends the channel; Resume continues from the paused position.
func (m *Manager) Pause(ch int) error {
	c, err := m.channel(ch)
	if err != nil {
		return err
	}
	if c.player != nil {
		c.player.Pause()
	}
	return nil
}

func (m *Manager) Resume(ch int) error {
	c, err := m.channel(ch)
	if err != nil {
		return err
	}
	if c.player != nil {
		c.player.Play()
	}
	return nil
}

// IsPlaying reports whether the channel currently produces sound.
func (m *Manager) IsPlaying(ch int) bool {
	c, err := m.channel(ch)
	if err != nil {
		return false
	}
	return c.player != nil && c.player.IsPlaying()
}

// SetVolume sets the channel volume in [0, 1]; it stacks with the master
// volume and applies immediately to a live player.
func (m *Manager) SetVolume(ch int, volume float64) error {
	c, err := m.channel(ch)
	if err != nil {
		return err
	}
	c.volume = clamp(volume, 0, 1)
	if c.player != nil {
		c.player.SetVolume(c.volume * m.master)
	}
	return nil
}

// SetPan sets the channel's stereo pan in [-1, 1] (-1 hard left, 1 hard
// right) and applies immediately to a live stream.
func (m *Manager) SetPan(ch int, pan float64) error {
	c, err := m.channel(ch)
	if err != nil {
		return err
	}
	c.pan = clamp(pan, -1, 1)
	if c.stream != nil {
		c.stream.SetPan(c.pan)
	}
	return nil
}

// SetMasterVolume rescales every channel at once.
func (m *Manager) SetMasterVolume(volume float64) {
	m.master = clamp(volume, 0, 1)
	for _, c := range m.channels {
		if c.player != nil {
			c.player.SetVolume(c.volume * m.master)
		}
	}
}

// MasterVolume returns the current master volume.
func (m *Manager) MasterVolume() float64 {
	return m.master
}

func (m *Manager) channel(ch int) (*channel, error) {
	if ch < 0 || ch >= len(m.channels) {
		return nil, fmt.Errorf("channel %d out of range [0, %d)", ch, len(m.channels))
	}
	return m.channels[ch], nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
