package audio

import "fmt"

// soundBank is the capacity-bounded, name-keyed registry of decoded sounds:
// a packed slice of PCM buffers plus a name index.
type soundBank struct {
	sounds      [][]byte
	nameIndices map[string]int
	maxCapacity int
}

func newSoundBank(cap int) *soundBank {
	return &soundBank{
		nameIndices: make(map[string]int),
		maxCapacity: cap,
	}
}

func (b *soundBank) register(name string, pcm []byte) error {
	if idx, exists := b.nameIndices[name]; exists {
		b.sounds[idx] = pcm
		return nil
	}
	if len(b.sounds) >= b.maxCapacity {
		return fmt.Errorf("sound bank at maximum capacity (%d)", b.maxCapacity)
	}
	b.nameIndices[name] = len(b.sounds)
	b.sounds = append(b.sounds, pcm)
	return nil
}

func (b *soundBank) lookup(name string) ([]byte, bool) {
	idx, ok := b.nameIndices[name]
	if !ok {
		return nil, false
	}
	return b.sounds[idx], true
}

func (b *soundBank) len() int {
	return len(b.sounds)
}
