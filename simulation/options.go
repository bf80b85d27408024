package simulation

import (
	"io"
	"log"
	"time"
)

// TargetPolicy selects which target each unit heads for
type TargetPolicy uint8

const (
	// TargetFirst sends every unit to the first target in row-major order
	TargetFirst TargetPolicy = iota
	// TargetNearest sends each unit to its Manhattan-nearest target, ties to the earlier one
	TargetNearest
)

func (p TargetPolicy) String() string {
	switch p {
	case TargetFirst:
		return "first"
	case TargetNearest:
		return "nearest"
	default:
		return "unknown"
	}
}

// ParseTargetPolicy maps a config name to a policy
func ParseTargetPolicy(name string) (TargetPolicy, bool) {
	switch name {
	case "", "first":
		return TargetFirst, true
	case "nearest":
		return TargetNearest, true
	default:
		return TargetFirst, false
	}
}

// Options configures a Simulation
type Options struct {
	Policy    TargetPolicy
	TickDelay time.Duration
	MaxTicks  int // 0 = unbounded
	Workers   int // >1 enables the parallel planning phase
	Logger    *log.Logger
	Observers []func(Frame)
}

// Option mutates Options
type Option func(*Options)

// WithTargetPolicy sets target assignment
func WithTargetPolicy(p TargetPolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithTickDelay sleeps between ticks in Run
func WithTickDelay(d time.Duration) Option {
	return func(o *Options) { o.TickDelay = d }
}

// WithMaxTicks caps the number of ticks Run performs
func WithMaxTicks(n int) Option {
	return func(o *Options) { o.MaxTicks = n }
}

// WithParallelPlanning plans path-less units on up to workers goroutines before each commit
func WithParallelPlanning(workers int) Option {
	return func(o *Options) { o.Workers = workers }
}

// WithLogger routes per-unit events and the run summary
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithObserver registers a frame callback, invoked after setup and after every tick
func WithObserver(fn func(Frame)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observers = append(o.Observers, fn)
		}
	}
}

func defaultOptions() Options {
	return Options{
		Policy: TargetFirst,
		Logger: log.New(io.Discard, "", 0),
	}
}
