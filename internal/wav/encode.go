package wav

import (
	"encoding/binary"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/dgnsrekt/wavgen/internal/audio"
)

// Encode returns a complete WAV file for the given samples: the 44-byte header
// followed by interleaved little-endian 16-bit frames.
func Encode(samples audio.Samples) ([]byte, error) {
	h, err := NewHeader(len(samples))
	if err != nil {
		return nil, err
	}

	total := uint64(HeaderSize) + uint64(h.DataSize)
	if total > math.MaxInt {
		return nil, fmt.Errorf("%w: %d bytes exceeds addressable size", ErrAllocationFailure, total)
	}

	buf, err := allocBuffer(int(total))
	if err != nil {
		return nil, err
	}

	buf, _ = h.AppendBinary(buf)
	buf = appendSamples(buf, samples)
	return buf, nil
}

func appendSamples(b []byte, samples audio.Samples) []byte {
	le := binary.LittleEndian
	for _, f := range samples {
		b = le.AppendUint16(b, uint16(f.Left))
		b = le.AppendUint16(b, uint16(f.Right))
	}
	return b
}

// allocBuffer returns an empty slice with capacity n, converting a makeslice
// panic into ErrAllocationFailure.
func allocBuffer(n int) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(runtime.Error); ok && strings.Contains(rerr.Error(), "makeslice") {
				b, err = nil, fmt.Errorf("%w: %d bytes: %v", ErrAllocationFailure, n, rerr)
				return
			}
			panic(r)
		}
	}()
	return make([]byte, 0, n), nil
}
