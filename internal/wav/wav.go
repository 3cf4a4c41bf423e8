// Package wav encodes synthesized samples into a RIFF/WAVE PCM container.
package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/dgnsrekt/wavgen/internal/audio"
)

// WAV format constants.
const (
	// HeaderSize is the size of a standard WAV file header in bytes.
	HeaderSize = 44

	// FormatPCM is the audio format code for uncompressed PCM.
	FormatPCM = 1

	// fmtChunkSize is the size of the PCM fmt subchunk body.
	fmtChunkSize = 16

	// riffOverhead is the part of the header counted by the RIFF chunk size.
	riffOverhead = HeaderSize - 8
)

var (
	// ErrSizeOverflow is returned when a size field would not fit in 32 bits.
	ErrSizeOverflow = errors.New("container size overflows 32-bit field")
	// ErrAllocationFailure is returned when the output buffer cannot be allocated.
	ErrAllocationFailure = errors.New("failed to allocate output buffer")
	// ErrInvalidHeader is returned when bytes do not hold a PCM WAV header.
	ErrInvalidHeader = errors.New("invalid WAV header")
)

// Header is the 44-byte canonical PCM header.
type Header struct {
	ChunkSize     uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// DataSize returns the number of sample bytes for the given frame count.
// It fails if either the data size or the RIFF chunk size would overflow.
func DataSize(frames int) (uint32, error) {
	if frames < 0 {
		return 0, fmt.Errorf("negative frame count %d", frames)
	}

	n := uint64(frames)
	if n > (math.MaxUint32-riffOverhead)/audio.BlockAlign {
		return 0, fmt.Errorf("%w: %d frames", ErrSizeOverflow, frames)
	}
	return uint32(n * audio.BlockAlign), nil
}

// NewHeader builds the header for a stereo 16-bit signal of the given frame count.
func NewHeader(frames int) (Header, error) {
	dataSize, err := DataSize(frames)
	if err != nil {
		return Header{}, err
	}

	return Header{
		ChunkSize:     riffOverhead + dataSize,
		AudioFormat:   FormatPCM,
		NumChannels:   audio.Channels,
		SampleRate:    audio.SampleRate,
		ByteRate:      audio.ByteRate,
		BlockAlign:    audio.BlockAlign,
		BitsPerSample: audio.BitsPerSample,
		DataSize:      dataSize,
	}, nil
}

// AppendBinary appends the little-endian header to b.
func (h Header) AppendBinary(b []byte) ([]byte, error) {
	le := binary.LittleEndian

	// RIFF header
	b = append(b, "RIFF"...)
	b = le.AppendUint32(b, h.ChunkSize)
	b = append(b, "WAVE"...)

	// fmt subchunk
	b = append(b, "fmt "...)
	b = le.AppendUint32(b, fmtChunkSize)
	b = le.AppendUint16(b, h.AudioFormat)
	b = le.AppendUint16(b, h.NumChannels)
	b = le.AppendUint32(b, h.SampleRate)
	b = le.AppendUint32(b, h.ByteRate)
	b = le.AppendUint16(b, h.BlockAlign)
	b = le.AppendUint16(b, h.BitsPerSample)

	// data subchunk
	b = append(b, "data"...)
	b = le.AppendUint32(b, h.DataSize)

	return b, nil
}

// MarshalBinary returns the 44 header bytes.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, HeaderSize))
}

// ParseHeader decodes a canonical PCM header from the first 44 bytes of b.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, need %d", ErrInvalidHeader, len(b), HeaderSize)
	}

	for _, tag := range []struct {
		off  int
		want string
	}{
		{0, "RIFF"},
		{8, "WAVE"},
		{12, "fmt "},
		{36, "data"},
	} {
		if got := string(b[tag.off : tag.off+4]); got != tag.want {
			return Header{}, fmt.Errorf("%w: tag at %d is %q, want %q", ErrInvalidHeader, tag.off, got, tag.want)
		}
	}

	le := binary.LittleEndian
	if size := le.Uint32(b[16:20]); size != fmtChunkSize {
		return Header{}, fmt.Errorf("%w: fmt chunk size %d", ErrInvalidHeader, size)
	}

	h := Header{
		ChunkSize:     le.Uint32(b[4:8]),
		AudioFormat:   le.Uint16(b[20:22]),
		NumChannels:   le.Uint16(b[22:24]),
		SampleRate:    le.Uint32(b[24:28]),
		ByteRate:      le.Uint32(b[28:32]),
		BlockAlign:    le.Uint16(b[32:34]),
		BitsPerSample: le.Uint16(b[34:36]),
		DataSize:      le.Uint32(b[40:44]),
	}
	if h.AudioFormat != FormatPCM {
		return Header{}, fmt.Errorf("%w: audio format %d is not PCM", ErrInvalidHeader, h.AudioFormat)
	}
	if uint64(h.ChunkSize) != riffOverhead+uint64(h.DataSize) {
		return Header{}, fmt.Errorf("%w: chunk size %d does not match data size %d", ErrInvalidHeader, h.ChunkSize, h.DataSize)
	}
	return h, nil
}
