package audio

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"
)

var (
	// ErrInvalidDuration is returned when the requested duration is below one second.
	ErrInvalidDuration = errors.New("duration must be at least 1 second")
	// ErrDurationTooLarge is returned when the container for the requested
	// duration would not fit in 32-bit size fields.
	ErrDurationTooLarge = errors.New("duration is too long")
	// ErrAllocationFailure is returned when the sample buffer cannot be allocated.
	ErrAllocationFailure = errors.New("failed to allocate sample buffer")
	// ErrSampleOutOfRange is returned when a computed sample exceeds the amplitude.
	ErrSampleOutOfRange = errors.New("sample out of range")
)

// Tone returns the sample function for a sine of the given frequency.
// The returned function maps a frame index to a rounded sample value.
func Tone(frequency float64) func(i int) float64 {
	step := 2 * math.Pi * (frequency / SampleRate)
	return func(i int) float64 {
		return math.Round(Amplitude * math.Sin(step*float64(i)))
	}
}

// FrameCount returns the number of frames in a signal of the given duration.
func FrameCount(seconds int) (int, error) {
	if seconds < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDuration, seconds)
	}
	if seconds > MaxDuration {
		return 0, fmt.Errorf("%w: %d seconds exceeds maximum of %d", ErrDurationTooLarge, seconds, MaxDuration)
	}

	// MaxDuration*SampleRate fits in 32 bits, so this only trips on hosts
	// where int is narrower than that.
	n := uint64(seconds) * SampleRate
	if n > math.MaxInt {
		return 0, fmt.Errorf("%w: %d frames", ErrAllocationFailure, n)
	}
	return int(n), nil
}

// Synthesize generates a stereo signal of the given duration with
// LeftFrequency on the left channel and RightFrequency on the right.
// The result is a pure function of seconds.
func Synthesize(seconds int) (Samples, error) {
	n, err := FrameCount(seconds)
	if err != nil {
		return nil, err
	}

	samples, err := allocSamples(n)
	if err != nil {
		return nil, err
	}

	left := Tone(LeftFrequency)
	right := Tone(RightFrequency)
	for i := range samples {
		l, r := left(i), right(i)
		if !inRange(l) || !inRange(r) {
			return nil, fmt.Errorf("%w: frame %d = (%v, %v)", ErrSampleOutOfRange, i, l, r)
		}
		samples[i] = Frame{Left: int16(l), Right: int16(r)}
	}

	return samples, nil
}

func inRange(v float64) bool {
	return v >= -Amplitude && v <= Amplitude
}

// allocSamples converts a makeslice panic into ErrAllocationFailure.
func allocSamples(n int) (s Samples, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(runtime.Error); ok && strings.Contains(rerr.Error(), "makeslice") {
				s, err = nil, fmt.Errorf("%w: %d frames: %v", ErrAllocationFailure, n, rerr)
				return
			}
			panic(r)
		}
	}()
	return make(Samples, n), nil
}
