package audio

import (
	"io"
	"math"
)

// panStream scales the left and right channels of a 16-bit little-endian
// stereo stream by a constant-ish power curve: pan -1 mutes the right
// channel, 1 mutes the left, 0 passes samples through untouched.
type panStream struct {
	io.ReadSeeker
	pan float64
}

func (s *panStream) Read(p []byte) (int, error) {
	n, err := s.ReadSeeker.Read(p)
	if s.pan == 0 {
		return n, err
	}

	ls := math.Min(s.pan*-1+1, 1)
	rs := math.Min(s.pan+1, 1)
	for i := 0; i < n/4; i++ {
		lc := int16(float64(int16(uint16(p[4*i])|uint16(p[4*i+1])<<8)) * ls)
		rc := int16(float64(int16(uint16(p[4*i+2])|uint16(p[4*i+3])<<8)) * rs)

		p[4*i] = byte(lc)
		p[4*i+1] = byte(lc >> 8)
		p[4*i+2] = byte(rc)
		p[4*i+3] = byte(rc >> 8)
	}
	return n, err
}

func (s *panStream) SetPan(pan float64) {
	s.pan = math.Min(math.Max(-1, pan), 1)
}

func (s *panStream) Pan() float64 {
	return s.pan
}
