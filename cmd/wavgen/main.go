package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dgnsrekt/wavgen/internal/audio"
	"github.com/dgnsrekt/wavgen/internal/config"
	"github.com/dgnsrekt/wavgen/internal/logging"
	"github.com/dgnsrekt/wavgen/internal/metrics"
	"github.com/dgnsrekt/wavgen/internal/output"
	"github.com/dgnsrekt/wavgen/internal/wav"
)

const usage = "usage: wavgen <seconds>"

var errMissingLength = errors.New("missing argument: length in seconds")

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		// Use stderr before logger is initialized
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat).With("run_id", uuid.NewString())
	os.Exit(run(os.Args[1:], cfg, logger))
}

// run generates the tone file and returns the process exit code.
func run(args []string, cfg *config.Config, logger *slog.Logger) int {
	rec := metrics.NewRecorder()
	if cfg.MetricsEnabled() {
		defer func() {
			if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
				logger.Warn("failed to write metrics textfile", "path", cfg.MetricsFile, "error", err)
			}
		}()
	}

	n, err := generate(args, cfg.OutputPath, rec, logger)
	if err != nil {
		rec.Failed()
		logger.Error("wavgen failed", "error", err)
		if errors.Is(err, errMissingLength) {
			logger.Error(usage)
		}
		return 1
	}

	logger.Info("wrote output", "path", cfg.OutputPath, "bytes", n)
	return 0
}

// generate runs synthesis, encoding and the file write in order and
// returns the number of bytes written.
func generate(args []string, path string, rec *metrics.Recorder, logger *slog.Logger) (int, error) {
	seconds, err := parseLength(args)
	if err != nil {
		return 0, err
	}
	logger.Debug("generating tone",
		"seconds", seconds,
		"left_hz", audio.LeftFrequency,
		"right_hz", audio.RightFrequency,
		"sample_rate", audio.SampleRate,
	)

	start := time.Now()
	samples, err := audio.Synthesize(seconds)
	if err != nil {
		return 0, fmt.Errorf("synthesize: %w", err)
	}
	rec.ObserveStage(metrics.StageSynthesize, start)

	start = time.Now()
	buf, err := wav.Encode(samples)
	if err != nil {
		return 0, fmt.Errorf("encode: %w", err)
	}
	rec.ObserveStage(metrics.StageEncode, start)

	h, err := wav.ParseHeader(buf)
	if err != nil {
		return 0, fmt.Errorf("encode: %w", err)
	}
	logger.Debug("encoded container",
		"frames", len(samples),
		"chunk_size", h.ChunkSize,
		"data_size", h.DataSize,
		"byte_rate", h.ByteRate,
	)

	start = time.Now()
	if err := output.WriteFile(path, buf); err != nil {
		return 0, err
	}
	rec.ObserveStage(metrics.StageWrite, start)

	rec.Succeeded(len(samples), len(buf))
	return len(buf), nil
}

// parseLength reads the duration in seconds from the first positional argument.
func parseLength(args []string) (int, error) {
	if len(args) < 1 {
		return 0, errMissingLength
	}

	seconds, err := strconv.Atoi(args[0])
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) && !strings.HasPrefix(args[0], "-") {
			return 0, fmt.Errorf("%w: %q", audio.ErrDurationTooLarge, args[0])
		}
		return 0, fmt.Errorf("%w: %q is not a base-10 integer", audio.ErrInvalidDuration, args[0])
	}
	return seconds, nil
}
