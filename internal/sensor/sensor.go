// Package sensor turns raw breath-sensor samples into BAC values.
//
// The sensor is a potentiometer behind a microcontroller that prints one
// reading per line over a serial link. The link is opened as a plain file so
// any io.Reader works as a source.
package sensor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	// MaxRawValue is the full-scale reading of the sensor's ADC
	MaxRawValue = 4095

	// MaxBAC is the BAC a full-scale reading maps to
	MaxBAC = 0.3

	// DefaultSamples is how many lines a sample run reads
	DefaultSamples = 50

	// DefaultInterval is the pause between lines
	DefaultInterval = 100 * time.Millisecond
)

var (
	// ErrNoSamples is returned when the source ends before a single sample was read
	ErrNoSamples = errors.New("sensor produced no samples")

	// ErrInvalidSample is returned when a line is not a number
	ErrInvalidSample = errors.New("invalid sensor sample")
)

// ToBAC converts a raw sensor value into a BAC estimate
func ToBAC(raw float64) float64 {
	return (MaxBAC / MaxRawValue) * raw
}

// Config holds configuration for a sensor reader
type Config struct {
	// Source supplies newline-separated raw values
	Source io.Reader

	// Samples is how many lines to read, defaults to DefaultSamples
	Samples int

	// Interval is the pause between lines, defaults to DefaultInterval.
	// A negative value disables pacing.
	Interval time.Duration
}

// Reader samples a sensor source
type Reader struct {
	scanner  *bufio.Scanner
	samples  int
	interval time.Duration
}

// New creates a new sensor reader
func New(cfg *Config) (*Reader, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Source == nil {
		return nil, errors.New("source cannot be nil")
	}

	samples := cfg.Samples
	if samples <= 0 {
		samples = DefaultSamples
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = DefaultInterval
	}

	return &Reader{
		scanner:  bufio.NewScanner(cfg.Source),
		samples:  samples,
		interval: interval,
	}, nil
}

// Sample reads up to the configured number of values and converts the peak
// to BAC. A source that ends early yields the peak of what was read.
func (r *Reader) Sample(ctx context.Context) (float64, error) {
	peak := 0.0
	read := 0

	for read < r.samples {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read sensor: %w", err)
			}
			break
		}

		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}

		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSample, line)
		}

		if read == 0 || value > peak {
			peak = value
		}
		read++

		if read < r.samples && r.interval > 0 {
			timer := time.NewTimer(r.interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return 0, ctx.Err()
			case <-timer.C:
			}
		}
	}

	if read == 0 {
		return 0, ErrNoSamples
	}

	return ToBAC(peak), nil
}
