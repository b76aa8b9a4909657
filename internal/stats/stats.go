// Package stats records per-file generation timings and sizes.
package stats

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Config controls histogram ranges.
type Config struct {
	// LatencyMax is the largest recordable latency in microseconds (default: 60s).
	LatencyMax int64

	// SizeMax is the largest recordable file size in bytes (default: 64 MiB).
	SizeMax int64

	// SigFigs is the number of significant figures (default: 3).
	SigFigs int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		LatencyMax: 60_000_000,
		SizeMax:    64 << 20,
		SigFigs:    3,
	}
}

// Recorder accumulates one observation per generated file.
//
// A Recorder is not safe for concurrent use; generation is sequential.
type Recorder struct {
	latency    *hdrhistogram.Histogram
	size       *hdrhistogram.Histogram
	totalBytes int64
	start      time.Time
}

// Snapshot summarises everything recorded so far.
type Snapshot struct {
	Files      int64
	TotalBytes int64
	MaxBytes   int64
	Elapsed    time.Duration

	LatencyP50 time.Duration
	LatencyP95 time.Duration
	LatencyP99 time.Duration
	LatencyMax time.Duration
}

// NewRecorder creates a recorder with default configuration.
func NewRecorder() *Recorder {
	return NewRecorderWithConfig(DefaultConfig())
}

// NewRecorderWithConfig creates a recorder with custom configuration.
func NewRecorderWithConfig(config Config) *Recorder {
	return &Recorder{
		latency: hdrhistogram.New(1, config.LatencyMax, config.SigFigs),
		size:    hdrhistogram.New(1, config.SizeMax, config.SigFigs),
		start:   time.Now(),
	}
}

// Record adds one generated file. Values outside the histogram range are
// clamped.
func (r *Recorder) Record(d time.Duration, bytes int) {
	us := d.Microseconds()
	if us < 1 {
		us = 1
	}
	if limit := r.latency.HighestTrackableValue(); us > limit {
		us = limit
	}
	_ = r.latency.RecordValue(us)

	b := int64(bytes)
	r.totalBytes += b
	if b < 1 {
		b = 1
	}
	if limit := r.size.HighestTrackableValue(); b > limit {
		b = limit
	}
	_ = r.size.RecordValue(b)
}

// Snapshot returns the current summary.
func (r *Recorder) Snapshot() Snapshot {
	snap := Snapshot{
		Files:      r.latency.TotalCount(),
		TotalBytes: r.totalBytes,
		Elapsed:    time.Since(r.start),
	}
	if snap.Files == 0 {
		return snap
	}

	snap.MaxBytes = r.size.Max()
	snap.LatencyP50 = time.Duration(r.latency.ValueAtQuantile(50)) * time.Microsecond
	snap.LatencyP95 = time.Duration(r.latency.ValueAtQuantile(95)) * time.Microsecond
	snap.LatencyP99 = time.Duration(r.latency.ValueAtQuantile(99)) * time.Microsecond
	snap.LatencyMax = time.Duration(r.latency.Max()) * time.Microsecond
	return snap
}
