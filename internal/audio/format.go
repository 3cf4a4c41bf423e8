// Package audio synthesizes the dual-tone PCM signal written by wavgen.
package audio

import "math"

// Output format. These are fixed for every run.
const (
	// SampleRate is the number of frames per second.
	SampleRate = 44100
	// Channels is the number of interleaved channels (stereo).
	Channels = 2
	// BitsPerSample is the bit depth of a single sample.
	BitsPerSample = 16
	// BytesPerSample is the byte width of a single sample.
	BytesPerSample = BitsPerSample / 8
	// BlockAlign is the size of one complete frame in bytes.
	BlockAlign = Channels * BytesPerSample
	// ByteRate is the number of data bytes per second of audio.
	ByteRate = SampleRate * BlockAlign
)

// Tone parameters.
const (
	// Amplitude is the peak sample magnitude, kept under math.MaxInt16.
	Amplitude = 32000.0
	// LeftFrequency is the left channel tone in Hz.
	LeftFrequency = 440.0
	// RightFrequency is the right channel tone in Hz.
	RightFrequency = 600.0
)

// containerOverhead is the number of bytes a RIFF/WAVE PCM header adds in
// front of the sample data.
const containerOverhead = 44

// MaxDuration is the longest duration, in seconds, whose container still fits
// the 32-bit size fields of the header.
const MaxDuration = (math.MaxUint32 - containerOverhead) / ByteRate

// Frame is one stereo sample pair.
type Frame struct {
	Left  int16
	Right int16
}

// Samples is an ordered sequence of interleaved stereo frames.
type Samples []Frame

// Duration returns the length of the samples in whole seconds.
func (s Samples) Duration() int {
	return len(s) / SampleRate
}
